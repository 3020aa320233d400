package service

import (
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"hafalanku_backend/internals/constants"
	"hafalanku_backend/internals/features/hafalan/dto"
	hafalanModel "hafalanku_backend/internals/features/hafalan/model"
	"hafalanku_backend/internals/features/hafalan/repository"
	"hafalanku_backend/internals/mailer"
)

var (
	ErrSantriNotFound   = errors.New("santri tidak ditemukan")
	ErrSurahNotFound    = errors.New("surah tidak ditemukan")
	ErrAyatNotFound     = errors.New("ayat tidak ditemukan")
	ErrRiwayatNotFound  = errors.New("riwayat hafalan tidak ditemukan")
	ErrSemuaAyatSudah   = errors.New("semua ayat sudah pernah disetor sebagai hafalan baru")
	ErrStatusTidakValid = errors.New("status hafalan tidak valid")
	ErrTahapTidakValid  = errors.New("tahap hafalan tidak valid")
)

// GetSurahProgress: progress hafalan per surah untuk satu santri,
// "sudah/total" dihitung dari ayat distinct TambahHafalan.
func GetSurahProgress(db *gorm.DB, santriID uint) (*dto.SurahProgressResponse, error) {
	santri, err := repository.GetSantriByID(db, santriID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSantriNotFound
		}
		return nil, err
	}

	surahs, err := repository.GetAllSurah(db)
	if err != nil {
		return nil, err
	}

	hafalIDs, err := repository.GetHafalanAyatIDs(db, santriID)
	if err != nil {
		return nil, err
	}

	items := make([]dto.SurahProgressItem, 0, len(surahs))
	for _, s := range surahs {
		sudah, err := repository.CountAyatHafal(db, s.ID, hafalIDs)
		if err != nil {
			return nil, err
		}
		items = append(items, dto.SurahProgressItem{
			ID:        s.ID,
			Nomor:     s.Nomor,
			Nama:      s.Nama,
			NamaLatin: s.NamaLatin,
			TotalAyat: s.TotalAyat,
			Progress:  ProgressLabel(int(sudah), s.TotalAyat),
		})
	}

	return &dto.SurahProgressResponse{
		Santri: dto.SantriRingkas{
			ID:           santri.ID,
			Nama:         santri.Nama,
			NoInduk:      santri.NoInduk,
			TahapHafalan: santri.TahapHafalan,
			TotalPoin:    santri.TotalPoin,
		},
		Data: items,
	}, nil
}

// GetDetailSurah: daftar ayat satu surah dengan flag checked.
// Mode "tambah": checked = sudah pernah TambahHafalan (pre-check, read-only
// penanda; dedup sesungguhnya dilakukan ulang saat simpan).
// Mode "murajaah": semua unchecked, murajaah boleh diulang kapan saja.
func GetDetailSurah(db *gorm.DB, santriID, surahID uint, mode string) (*dto.DetailSurahResponse, error) {
	switch mode {
	case "tambah", "":
		mode = "tambah"
	case "murajaah":
	default:
		return nil, fmt.Errorf("mode tidak dikenal: %s", mode)
	}

	surah, err := repository.GetSurahByID(db, surahID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSurahNotFound
		}
		return nil, err
	}

	ayat, err := repository.GetAyatBySurah(db, surahID)
	if err != nil {
		return nil, err
	}

	var checkedIDs []uint
	if mode == "tambah" {
		checkedIDs, err = repository.GetHafalanAyatIDsBySurah(db, santriID, surahID, constants.StatusTambahHafalan)
		if err != nil {
			return nil, err
		}
	}
	checked := make(map[uint]struct{}, len(checkedIDs))
	for _, id := range checkedIDs {
		checked[id] = struct{}{}
	}

	list := make([]dto.AyatChecked, 0, len(ayat))
	for _, a := range ayat {
		_, ok := checked[a.ID]
		list = append(list, dto.AyatChecked{
			ID:        a.ID,
			NomorAyat: a.NomorAyat,
			Arab:      a.Arab,
			Latin:     a.Latin,
			Terjemah:  a.Terjemah,
			Juz:       a.Juz,
			Checked:   ok,
		})
	}

	return &dto.DetailSurahResponse{
		Surah:    surah,
		SantriID: santriID,
		Mode:     mode,
		Ayat:     list,
	}, nil
}

// SimpanHafalan: catat setoran satu sesi. TambahHafalan didedup terhadap
// riwayat (ayat yang sudah pernah disetor dilewati diam-diam) dan memberi
// poin per ayat; Murajaah boleh berulang dan 0 poin. Insert event + increment
// poin jalan dalam satu transaksi. Notifikasi email ortu best-effort setelah
// commit.
func SimpanHafalan(db *gorm.DB, m mailer.Mailer, santriID, ustadzID uint, req dto.SimpanHafalanRequest) (*dto.SimpanHafalanResult, error) {
	if !constants.IsValidStatusHafalan(req.Status) {
		return nil, ErrStatusTidakValid
	}

	santri, err := repository.GetSantriByID(db, santriID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSantriNotFound
		}
		return nil, err
	}

	ayatDisimpan := req.AyatIDs
	dilewati := 0
	if req.Status == constants.StatusTambahHafalan {
		existing, err := repository.FindExistingAyatIDs(db, santriID, req.AyatIDs)
		if err != nil {
			return nil, err
		}
		ayatDisimpan, dilewati = FilterAyatBaru(req.AyatIDs, existing)
		if len(ayatDisimpan) == 0 {
			return nil, ErrSemuaAyatSudah
		}
	}

	detailAyat, err := repository.GetAyatByIDs(db, ayatDisimpan)
	if err != nil {
		return nil, err
	}
	if len(detailAyat) == 0 {
		return nil, ErrAyatNotFound
	}

	surah, err := repository.GetSurahByID(db, detailAyat[0].SurahID)
	if err != nil {
		return nil, err
	}

	poinPerAyat := 0
	if req.Status == constants.StatusTambahHafalan {
		poinPerAyat = constants.PoinPerAyat
	}

	now := time.Now()
	rows := make([]hafalanModel.RiwayatHafalanModel, 0, len(detailAyat))
	nomorAyat := make([]int, 0, len(detailAyat))
	for _, a := range detailAyat {
		rows = append(rows, hafalanModel.RiwayatHafalanModel{
			SantriID:       santriID,
			UstadzID:       ustadzID,
			AyatID:         a.ID,
			TanggalHafalan: now,
			Status:         req.Status,
			Catatan:        req.Catatan,
			PoinDidapat:    poinPerAyat,
		})
		nomorAyat = append(nomorAyat, a.NomorAyat)
	}
	totalPoin := poinPerAyat * len(rows)

	if req.Status == constants.StatusTambahHafalan {
		err = db.Transaction(func(tx *gorm.DB) error {
			if err := repository.CreateRiwayatBatch(tx, rows); err != nil {
				return err
			}
			return repository.AdjustSantriPoin(tx, santriID, totalPoin)
		})
	} else {
		err = repository.CreateRiwayatBatch(db, rows)
	}
	if err != nil {
		return nil, err
	}

	// Fanout email per ortu independen: satu gagal tidak menghalangi
	// yang lain, dan tidak pernah menggagalkan setoran yang sudah commit.
	for _, ortu := range santri.OrangTua {
		if ortu.User == nil || ortu.User.Email == "" {
			continue
		}
		m.Send(mailer.NewHafalanMessage(mailer.HafalanEmailParams{
			EmailOrtu:      ortu.User.Email,
			OrtuName:       ortu.Nama,
			SantriName:     santri.Nama,
			TanggalHafalan: now,
			NamaSurah:      surah.NamaLatin,
			JumlahAyat:     len(rows),
			AyatNomorList:  nomorAyat,
			Status:         req.Status,
			Catatan:        req.Catatan,
		}))
	}

	result := &dto.SimpanHafalanResult{
		Message:          "Hafalan berhasil disimpan",
		Count:            len(rows),
		Dilewati:         dilewati,
		TotalPoinDidapat: totalPoin,
	}
	if dilewati > 0 {
		result.Message = fmt.Sprintf("Hafalan berhasil disimpan, %d ayat dilewati karena sudah pernah disetor", dilewati)
		log.Printf("[INFO] simpan hafalan santri %d: %d ayat dilewati (duplikat)", santriID, dilewati)
	}
	return result, nil
}

// GetRiwayat: riwayat setoran santri, dikelompokkan per (hari kalender,
// status, surah). Paginasi berjalan di atas grup.
func GetRiwayat(db *gorm.DB, santriID uint, status, sortField, sortDir string, page, limit int) (*dto.RiwayatResponse, error) {
	if status != "" && !constants.IsValidStatusHafalan(status) {
		return nil, ErrStatusTidakValid
	}

	santri, err := repository.GetSantriByID(db, santriID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSantriNotFound
		}
		return nil, err
	}

	rows, err := repository.GetRiwayatBySantri(db, santriID, status)
	if err != nil {
		return nil, err
	}

	groups := GroupRiwayat(rows)
	SortRiwayatGroups(groups, sortField, sortDir)

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	totalData := len(groups)
	totalPages := (totalData + limit - 1) / limit
	paged := PaginateRiwayatGroups(groups, page, limit)

	return &dto.RiwayatResponse{
		Santri: dto.SantriRingkas{
			ID:           santri.ID,
			Nama:         santri.Nama,
			NoInduk:      santri.NoInduk,
			TahapHafalan: santri.TahapHafalan,
			TotalPoin:    santri.TotalPoin,
		},
		Pagination: dto.RiwayatPagination{
			Page:       page,
			Limit:      limit,
			TotalData:  totalData,
			TotalPages: totalPages,
		},
		Data: paged,
	}, nil
}

// DeleteRiwayat: hapus satu grup riwayat (santri, surah, hari kalender,
// status). Untuk TambahHafalan, poin yang pernah diberikan oleh grup itu
// dikurangkan lagi dalam transaksi yang sama dengan delete. Grup kosong
// bukan error: count 0.
func DeleteRiwayat(db *gorm.DB, santriID uint, req dto.DeleteRiwayatRequest) (int64, int, error) {
	ayatIDs, err := repository.GetAyatIDsBySurah(db, req.SurahID)
	if err != nil {
		return 0, 0, err
	}
	if len(ayatIDs) == 0 {
		return 0, 0, ErrSurahNotFound
	}

	start, end, err := DayWindow(req.Tanggal)
	if err != nil {
		return 0, 0, err
	}

	var deleted int64
	poinDikurangi := 0

	if req.Status == constants.StatusTambahHafalan {
		poin, err := repository.SumPoinInGroup(db, santriID, ayatIDs, start, end, req.Status)
		if err != nil {
			return 0, 0, err
		}
		err = db.Transaction(func(tx *gorm.DB) error {
			n, err := repository.DeleteByDateSurahStatus(tx, santriID, ayatIDs, start, end, req.Status)
			if err != nil {
				return err
			}
			deleted = n
			poinDikurangi = PoinDikurangiSaatHapus(req.Status, n, poin)
			if poinDikurangi == 0 {
				return nil
			}
			return repository.AdjustSantriPoin(tx, santriID, -poinDikurangi)
		})
		if err != nil {
			return 0, 0, err
		}
	} else {
		deleted, err = repository.DeleteByDateSurahStatus(db, santriID, ayatIDs, start, end, req.Status)
		if err != nil {
			return 0, 0, err
		}
	}

	return deleted, poinDikurangi, nil
}

// GetRiwayatDetail: isi satu grup riwayat per ayat, plus ustadz penyimak dan
// total poin grup.
func GetRiwayatDetail(db *gorm.DB, santriID, surahID uint, tanggal, status string) (*dto.RiwayatDetailResponse, error) {
	if !constants.IsValidStatusHafalan(status) {
		return nil, ErrStatusTidakValid
	}

	start, end, err := DayWindow(tanggal)
	if err != nil {
		return nil, err
	}

	rows, err := repository.GetDetailRiwayatAyat(db, santriID, surahID, start, end, status)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrRiwayatNotFound
	}

	surah, err := repository.GetSurahByID(db, surahID)
	if err != nil {
		return nil, err
	}

	daftar := make([]dto.AyatDenganPoin, 0, len(rows))
	totalPoin := 0
	for _, r := range rows {
		daftar = append(daftar, dto.AyatDenganPoin{
			ID:          r.AyatID,
			NomorAyat:   r.NomorAyat,
			Arab:        r.Arab,
			Latin:       r.Latin,
			Terjemah:    r.Terjemah,
			Juz:         r.Juz,
			PoinDidapat: r.PoinDidapat,
		})
		totalPoin += r.PoinDidapat
	}

	return &dto.RiwayatDetailResponse{
		Tanggal: tanggal,
		Status:  status,
		Ustadz: dto.UstadzRingkas{
			ID:   rows[0].UstadzID,
			Nama: rows[0].UstadzNama,
		},
		Catatan:   rows[0].Catatan,
		TotalPoin: totalPoin,
		Surah: dto.SurahRingkas{
			ID:        surah.ID,
			Nama:      surah.Nama,
			NamaLatin: surah.NamaLatin,
		},
		DaftarAyat: daftar,
	}, nil
}

// GetLatestAllSantri: setoran terakhir setiap santri untuk dashboard ustadz.
// Filter tahap/nama jalan di query; sort opsional berdasarkan ayat terjauh
// dan paginasi jalan di memori setelah item lengkap.
func GetLatestAllSantri(db *gorm.DB, page, limit int, tahap, status, sortByAyat, name string) (*dto.LatestResponse, error) {
	if status == "" {
		status = constants.StatusTambahHafalan
	}
	if !constants.IsValidStatusHafalan(status) {
		return nil, ErrStatusTidakValid
	}
	if tahap != "" && !constants.IsValidTahapHafalan(tahap) {
		return nil, ErrTahapTidakValid
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	totalData, err := repository.CountSantri(db, tahap, name)
	if err != nil {
		return nil, err
	}

	santris, err := repository.FindSantriForLatest(db, tahap, name)
	if err != nil {
		return nil, err
	}

	items := make([]dto.LatestSantriItem, 0, len(santris))
	for _, s := range santris {
		item := dto.LatestSantriItem{
			ID:           s.ID,
			Nama:         s.Nama,
			NoInduk:      s.NoInduk,
			TahapHafalan: s.TahapHafalan,
		}

		latest, err := repository.GetLatestRiwayat(db, s.ID, status)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if latest != nil {
			start, end := DayWindowAt(latest.TanggalHafalan)
			nomor, err := repository.GetNomorAyatInGroup(db, s.ID, latest.SurahID, start, end, status)
			if err != nil {
				return nil, err
			}
			detail, lastNomor := AyatDetailText(nomor, status)
			item.TerakhirHafalan = &dto.LatestHafalanInfo{
				Tanggal:    FormatTanggal(latest.TanggalHafalan),
				Status:     latest.Status,
				Surah:      latest.NamaSurahLatin,
				SurahID:    latest.SurahID,
				AyatDetail: detail,
			}
			item.AyatTerakhirNomor = lastNomor
		}

		items = append(items, item)
	}

	if status == constants.StatusTambahHafalan && (sortByAyat == "asc" || sortByAyat == "desc") {
		SortLatestByAyat(items, sortByAyat)
	}

	skip := (page - 1) * limit
	if skip >= len(items) {
		items = []dto.LatestSantriItem{}
	} else {
		end := skip + limit
		if end > len(items) {
			end = len(items)
		}
		items = items[skip:end]
	}

	totalPages := int((totalData + int64(limit) - 1) / int64(limit))

	return &dto.LatestResponse{
		Message: "Data setoran terbaru berhasil diambil",
		Pagination: dto.LatestPagination{
			Page:       page,
			Limit:      limit,
			TotalData:  totalData,
			TotalPages: totalPages,
			Filter: dto.LatestFilter{
				TahapHafalan: tahap,
				Status:       status,
				Name:         name,
			},
		},
		Data: items,
	}, nil
}
