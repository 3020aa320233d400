package service

import (
	"reflect"
	"testing"
	"time"

	"hafalanku_backend/internals/constants"
	"hafalanku_backend/internals/features/hafalan/dto"
	"hafalanku_backend/internals/features/hafalan/repository"
)

func TestFilterAyatBaru(t *testing.T) {
	tests := []struct {
		name         string
		requested    []uint
		existing     []uint
		want         []uint
		wantDilewati int
	}{
		{
			name:         "tidak ada duplikat",
			requested:    []uint{1, 2, 3},
			existing:     nil,
			want:         []uint{1, 2, 3},
			wantDilewati: 0,
		},
		{
			name:         "sebagian sudah pernah disetor",
			requested:    []uint{1, 2, 3, 4},
			existing:     []uint{2, 4},
			want:         []uint{1, 3},
			wantDilewati: 2,
		},
		{
			name:         "semua sudah pernah disetor",
			requested:    []uint{5, 6},
			existing:     []uint{5, 6, 7},
			want:         []uint{},
			wantDilewati: 2,
		},
		{
			name:         "duplikat di dalam request sendiri",
			requested:    []uint{1, 1, 2},
			existing:     nil,
			want:         []uint{1, 2},
			wantDilewati: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, dilewati := FilterAyatBaru(tt.requested, tt.existing)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FilterAyatBaru() = %v, want %v", got, tt.want)
			}
			if dilewati != tt.wantDilewati {
				t.Errorf("dilewati = %d, want %d", dilewati, tt.wantDilewati)
			}
		})
	}
}

func TestPoinDikurangiSaatHapus(t *testing.T) {
	tests := []struct {
		name     string
		status   string
		deleted  int64
		poinGrup int
		want     int
	}{
		{"tambah hafalan ada baris", constants.StatusTambahHafalan, 3, 15, 15},
		{"tambah hafalan grup kosong", constants.StatusTambahHafalan, 0, 15, 0},
		{"murajaah tidak pernah kurangi", constants.StatusMurajaah, 3, 15, 0},
		{"murajaah grup kosong", constants.StatusMurajaah, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PoinDikurangiSaatHapus(tt.status, tt.deleted, tt.poinGrup)
			if got != tt.want {
				t.Errorf("PoinDikurangiSaatHapus(%q, %d, %d) = %d, want %d",
					tt.status, tt.deleted, tt.poinGrup, got, tt.want)
			}
		})
	}
}

func TestProgressLabel(t *testing.T) {
	if got := ProgressLabel(3, 7); got != "3/7" {
		t.Errorf("ProgressLabel(3, 7) = %q, want %q", got, "3/7")
	}
	if got := ProgressLabel(0, 286); got != "0/286" {
		t.Errorf("ProgressLabel(0, 286) = %q, want %q", got, "0/286")
	}
}

func TestDayWindow(t *testing.T) {
	start, end, err := DayWindow("2025-03-10")
	if err != nil {
		t.Fatalf("DayWindow error: %v", err)
	}
	if start.Hour() != 0 || start.Minute() != 0 {
		t.Errorf("start bukan tengah malam: %v", start)
	}
	if got := end.Sub(start); got != 24*time.Hour {
		t.Errorf("lebar window = %v, want 24h", got)
	}
	if start.Location() != constants.AppTimezone {
		t.Errorf("zona window = %v, want %v", start.Location(), constants.AppTimezone)
	}

	if _, _, err := DayWindow("10-03-2025"); err == nil {
		t.Error("format tanggal salah tapi tidak error")
	}
}

func TestDayWindowAtMemuatWaktu(t *testing.T) {
	at := time.Date(2025, 3, 10, 23, 45, 0, 0, constants.AppTimezone)
	start, end := DayWindowAt(at)
	if at.Before(start) || !at.Before(end) {
		t.Errorf("window [%v, %v) tidak memuat %v", start, end, at)
	}
	if start.Day() != 10 {
		t.Errorf("start di hari %d, want 10", start.Day())
	}
}

func riwayatRow(tgl time.Time, status string, surahID uint, poin int) repository.RiwayatRow {
	return repository.RiwayatRow{
		TanggalHafalan: tgl,
		Status:         status,
		PoinDidapat:    poin,
		SurahID:        surahID,
		NamaSurah:      "البقرة",
		NamaSurahLatin: "Al-Baqarah",
	}
}

func TestGroupRiwayat(t *testing.T) {
	hari1 := time.Date(2025, 3, 10, 9, 0, 0, 0, constants.AppTimezone)
	hari1Sore := time.Date(2025, 3, 10, 16, 0, 0, 0, constants.AppTimezone)
	hari2 := time.Date(2025, 3, 11, 9, 0, 0, 0, constants.AppTimezone)

	rows := []repository.RiwayatRow{
		riwayatRow(hari1, constants.StatusTambahHafalan, 2, 5),
		riwayatRow(hari1Sore, constants.StatusTambahHafalan, 2, 5),
		riwayatRow(hari1, constants.StatusMurajaah, 2, 0),
		riwayatRow(hari2, constants.StatusTambahHafalan, 2, 5),
		riwayatRow(hari1, constants.StatusTambahHafalan, 3, 5),
	}

	groups := GroupRiwayat(rows)
	if len(groups) != 4 {
		t.Fatalf("jumlah grup = %d, want 4", len(groups))
	}

	// Grup pertama: 2 ayat TambahHafalan surah 2 di hari yang sama.
	g := groups[0]
	if g.Tanggal != "2025-03-10" || g.Status != constants.StatusTambahHafalan || g.SurahID != 2 {
		t.Errorf("kunci grup pertama salah: %+v", g)
	}
	if g.JumlahAyat != 2 || g.TotalPoin != 10 {
		t.Errorf("agregat grup pertama = (%d ayat, %d poin), want (2, 10)", g.JumlahAyat, g.TotalPoin)
	}

	// Murajaah hari yang sama jadi grup terpisah dengan 0 poin.
	if groups[1].Status != constants.StatusMurajaah || groups[1].TotalPoin != 0 {
		t.Errorf("grup murajaah salah: %+v", groups[1])
	}
}

func TestGroupRiwayatBatasHariKalender(t *testing.T) {
	// 23:30 dan 00:30 keesokan harinya harus masuk grup berbeda.
	malam := time.Date(2025, 3, 10, 23, 30, 0, 0, constants.AppTimezone)
	dini := time.Date(2025, 3, 11, 0, 30, 0, 0, constants.AppTimezone)

	groups := GroupRiwayat([]repository.RiwayatRow{
		riwayatRow(malam, constants.StatusTambahHafalan, 1, 5),
		riwayatRow(dini, constants.StatusTambahHafalan, 1, 5),
	})
	if len(groups) != 2 {
		t.Fatalf("jumlah grup = %d, want 2 (lintas tengah malam)", len(groups))
	}
	if groups[0].Tanggal == groups[1].Tanggal {
		t.Errorf("dua grup punya tanggal sama: %s", groups[0].Tanggal)
	}
}

func TestSortRiwayatGroups(t *testing.T) {
	base := []dto.RiwayatGroup{
		{Tanggal: "2025-03-11", Status: constants.StatusMurajaah},
		{Tanggal: "2025-03-09", Status: constants.StatusTambahHafalan},
		{Tanggal: "2025-03-10", Status: constants.StatusMurajaah},
	}

	groups := append([]dto.RiwayatGroup(nil), base...)
	SortRiwayatGroups(groups, "tanggal", "asc")
	if groups[0].Tanggal != "2025-03-09" || groups[2].Tanggal != "2025-03-11" {
		t.Errorf("sort tanggal asc salah: %v", groups)
	}

	groups = append([]dto.RiwayatGroup(nil), base...)
	SortRiwayatGroups(groups, "tanggal", "desc")
	if groups[0].Tanggal != "2025-03-11" || groups[2].Tanggal != "2025-03-09" {
		t.Errorf("sort tanggal desc salah: %v", groups)
	}

	// Field tak dikenal: urutan tidak berubah.
	groups = append([]dto.RiwayatGroup(nil), base...)
	SortRiwayatGroups(groups, "poin", "asc")
	if !reflect.DeepEqual(groups, base) {
		t.Errorf("sort field tak dikenal mengubah urutan: %v", groups)
	}
}

func TestPaginateRiwayatGroups(t *testing.T) {
	groups := make([]dto.RiwayatGroup, 25)
	for i := range groups {
		groups[i].SurahID = uint(i + 1)
	}

	tests := []struct {
		name      string
		page      int
		limit     int
		wantLen   int
		wantFirst uint
	}{
		{"halaman pertama", 1, 10, 10, 1},
		{"halaman tengah", 2, 10, 10, 11},
		{"halaman terakhir parsial", 3, 10, 5, 21},
		{"lewat dari data", 4, 10, 0, 0},
		{"page nol dianggap satu", 0, 10, 10, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PaginateRiwayatGroups(groups, tt.page, tt.limit)
			if len(got) != tt.wantLen {
				t.Fatalf("len = %d, want %d", len(got), tt.wantLen)
			}
			if tt.wantLen > 0 && got[0].SurahID != tt.wantFirst {
				t.Errorf("item pertama = %d, want %d", got[0].SurahID, tt.wantFirst)
			}
		})
	}
}

func TestAyatDetailText(t *testing.T) {
	tests := []struct {
		name     string
		nomor    []int
		status   string
		wantText string
		wantLast int
	}{
		{"tambah ambil max", []int{3, 7, 5}, constants.StatusTambahHafalan, "7", 7},
		{"tambah satu ayat", []int{12}, constants.StatusTambahHafalan, "12", 12},
		{"murajaah rentang", []int{3, 7, 5}, constants.StatusMurajaah, "3 - 7", 7},
		{"murajaah satu ayat", []int{4}, constants.StatusMurajaah, "4", 4},
		{"kosong", nil, constants.StatusTambahHafalan, "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, last := AyatDetailText(tt.nomor, tt.status)
			if text != tt.wantText {
				t.Errorf("text = %q, want %q", text, tt.wantText)
			}
			if last != tt.wantLast {
				t.Errorf("last = %d, want %d", last, tt.wantLast)
			}
		})
	}
}

func TestSortLatestByAyat(t *testing.T) {
	items := []dto.LatestSantriItem{
		{Nama: "A", AyatTerakhirNomor: 5},
		{Nama: "B", AyatTerakhirNomor: 12},
		{Nama: "C", AyatTerakhirNomor: 0}, // belum pernah setor
		{Nama: "D", AyatTerakhirNomor: 5},
	}

	desc := append([]dto.LatestSantriItem(nil), items...)
	SortLatestByAyat(desc, "desc")
	if desc[0].Nama != "B" || desc[3].Nama != "C" {
		t.Errorf("sort desc salah: %v", namaList(desc))
	}
	// Stabil: A tetap sebelum D saat nomornya sama.
	if desc[1].Nama != "A" || desc[2].Nama != "D" {
		t.Errorf("sort tidak stabil: %v", namaList(desc))
	}

	asc := append([]dto.LatestSantriItem(nil), items...)
	SortLatestByAyat(asc, "asc")
	if asc[0].Nama != "C" || asc[3].Nama != "B" {
		t.Errorf("sort asc salah: %v", namaList(asc))
	}
}

func namaList(items []dto.LatestSantriItem) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Nama)
	}
	return out
}
