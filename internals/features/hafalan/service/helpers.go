package service

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"hafalanku_backend/internals/constants"
	"hafalanku_backend/internals/features/hafalan/dto"
	"hafalanku_backend/internals/features/hafalan/repository"
)

// Helper murni progress engine: tidak menyentuh DB supaya gampang dites.

// FilterAyatBaru: buang ayat yang sudah pernah TambahHafalan. Return ayat
// tersisa (urutan request dipertahankan) dan jumlah yang dilewati.
func FilterAyatBaru(requested []uint, existing []uint) ([]uint, int) {
	sudahAda := make(map[uint]struct{}, len(existing))
	for _, id := range existing {
		sudahAda[id] = struct{}{}
	}

	remaining := make([]uint, 0, len(requested))
	seen := make(map[uint]struct{}, len(requested))
	for _, id := range requested {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if _, ok := sudahAda[id]; !ok {
			remaining = append(remaining, id)
		}
	}
	return remaining, len(requested) - len(remaining)
}

// PoinDikurangiSaatHapus: berapa poin yang ikut dicabut saat satu grup
// riwayat dihapus. Hanya TambahHafalan yang pernah memberi poin, dan hapus
// grup kosong (delete kedua kali) tidak boleh mengurangi apa pun.
func PoinDikurangiSaatHapus(status string, deleted int64, poinGrup int) int {
	if status != constants.StatusTambahHafalan || deleted == 0 {
		return 0
	}
	return poinGrup
}

// ProgressLabel: "sudah/total" untuk satu surah.
func ProgressLabel(sudah, total int) string {
	return fmt.Sprintf("%d/%d", sudah, total)
}

// DayWindow: batas hari kalender [00:00, 00:00 besok) untuk tanggal
// "YYYY-MM-DD" di zona referensi.
func DayWindow(tanggal string) (time.Time, time.Time, error) {
	start, err := time.ParseInLocation("2006-01-02", tanggal, constants.AppTimezone)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("format tanggal tidak valid (YYYY-MM-DD): %w", err)
	}
	return start, start.AddDate(0, 0, 1), nil
}

// DayWindowAt: window hari kalender yang memuat t.
func DayWindowAt(t time.Time) (time.Time, time.Time) {
	local := t.In(constants.AppTimezone)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, constants.AppTimezone)
	return start, start.AddDate(0, 0, 1)
}

// FormatTanggal: representasi "YYYY-MM-DD" di zona referensi.
func FormatTanggal(t time.Time) string {
	return t.In(constants.AppTimezone).Format("2006-01-02")
}

// GroupRiwayat: kelompokkan baris riwayat per (tanggal, status, surah),
// hitung jumlah ayat dan total poin per grup. Urutan grup mengikuti
// kemunculan pertama di rows (rows sudah diurutkan caller).
func GroupRiwayat(rows []repository.RiwayatRow) []dto.RiwayatGroup {
	index := make(map[string]int, len(rows))
	groups := make([]dto.RiwayatGroup, 0, len(rows))

	for _, r := range rows {
		tanggal := FormatTanggal(r.TanggalHafalan)
		key := fmt.Sprintf("%s-%s-%d", tanggal, r.Status, r.SurahID)

		if i, ok := index[key]; ok {
			groups[i].JumlahAyat++
			groups[i].TotalPoin += r.PoinDidapat
			continue
		}

		index[key] = len(groups)
		groups = append(groups, dto.RiwayatGroup{
			Tanggal:        tanggal,
			Status:         r.Status,
			SurahID:        r.SurahID,
			NamaSurah:      r.NamaSurah,
			NamaSurahLatin: r.NamaSurahLatin,
			JumlahAyat:     1,
			TotalPoin:      r.PoinDidapat,
		})
	}
	return groups
}

// SortRiwayatGroups: sort in-place berdasarkan "tanggal" atau "status".
// Field/arah lain dibiarkan apa adanya.
func SortRiwayatGroups(groups []dto.RiwayatGroup, sortField, sortDir string) {
	if sortField != "tanggal" && sortField != "status" {
		return
	}
	asc := sortDir == "asc"
	if sortDir != "asc" && sortDir != "desc" {
		return
	}

	sort.SliceStable(groups, func(i, j int) bool {
		var less bool
		switch sortField {
		case "tanggal":
			less = groups[i].Tanggal < groups[j].Tanggal
		case "status":
			less = strings.ToLower(groups[i].Status) < strings.ToLower(groups[j].Status)
		}
		if asc {
			return less
		}
		return !less && !equalKey(groups[i], groups[j], sortField)
	})
}

func equalKey(a, b dto.RiwayatGroup, field string) bool {
	switch field {
	case "tanggal":
		return a.Tanggal == b.Tanggal
	case "status":
		return strings.EqualFold(a.Status, b.Status)
	}
	return false
}

// PaginateRiwayatGroups: paginasi di atas grup (bukan baris mentah).
func PaginateRiwayatGroups(groups []dto.RiwayatGroup, page, limit int) []dto.RiwayatGroup {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	skip := (page - 1) * limit
	if skip >= len(groups) {
		return []dto.RiwayatGroup{}
	}
	end := skip + limit
	if end > len(groups) {
		end = len(groups)
	}
	return groups[skip:end]
}

// AyatDetailText: marker "ayat terakhir" untuk list setoran terbaru.
// TambahHafalan → nomor ayat tertinggi hari itu (titik terjauh).
// Murajaah → rentang "min - max", atau satu angka kalau sama.
// Return teks dan nomor tertinggi (kunci sort).
func AyatDetailText(nomorAyat []int, status string) (string, int) {
	if len(nomorAyat) == 0 {
		return "", 0
	}
	min, max := nomorAyat[0], nomorAyat[0]
	for _, n := range nomorAyat[1:] {
		if n < min {
			min = n
		}
		if n > max {
			max = n
		}
	}

	switch status {
	case constants.StatusTambahHafalan:
		return fmt.Sprintf("%d", max), max
	case constants.StatusMurajaah:
		if min == max {
			return fmt.Sprintf("%d", min), max
		}
		return fmt.Sprintf("%d - %d", min, max), max
	}
	return "", 0
}

// SortLatestByAyat: sort item setoran terbaru berdasarkan nomor ayat terjauh.
func SortLatestByAyat(items []dto.LatestSantriItem, dir string) {
	asc := dir == "asc"
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].AyatTerakhirNomor == items[j].AyatTerakhirNomor {
			return false
		}
		if asc {
			return items[i].AyatTerakhirNomor < items[j].AyatTerakhirNomor
		}
		return items[i].AyatTerakhirNomor > items[j].AyatTerakhirNomor
	})
}
