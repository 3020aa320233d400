package repository

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"hafalanku_backend/internals/constants"
	hafalanModel "hafalanku_backend/internals/features/hafalan/model"
	quranModel "hafalanku_backend/internals/features/quran/model"
	santriModel "hafalanku_backend/internals/features/santri/model"
)

// Lapisan query progress engine. Semua fungsi menerima *gorm.DB supaya bisa
// dipanggil di dalam maupun di luar transaksi.

// RiwayatRow: baris flat riwayat + info surah, bahan grouping di service.
type RiwayatRow struct {
	TanggalHafalan time.Time `json:"tanggal_hafalan"`
	Status         string    `json:"status"`
	PoinDidapat    int       `json:"poin_didapat"`
	SurahID        uint      `json:"surah_id"`
	NamaSurah      string    `json:"nama_surah"`
	NamaSurahLatin string    `json:"nama_surah_latin"`
}

// RiwayatAyatRow: baris detail per ayat untuk satu grup riwayat.
type RiwayatAyatRow struct {
	AyatID      uint   `json:"ayat_id"`
	NomorAyat   int    `json:"nomor_ayat"`
	Arab        string `json:"arab"`
	Latin       string `json:"latin"`
	Terjemah    string `json:"terjemah"`
	Juz         int    `json:"juz"`
	PoinDidapat int    `json:"poin_didapat"`
	Status      string `json:"status"`
	Catatan     string `json:"catatan"`
	UstadzID    uint   `json:"ustadz_id"`
	UstadzNama  string `json:"ustadz_nama"`
}

func GetAllSurah(db *gorm.DB) ([]quranModel.SurahModel, error) {
	var surahs []quranModel.SurahModel
	err := db.Select("id", "nomor", "nama", "nama_latin", "total_ayat").
		Order("nomor ASC").
		Find(&surahs).Error
	return surahs, err
}

func GetSurahByID(db *gorm.DB, id uint) (*quranModel.SurahModel, error) {
	var surah quranModel.SurahModel
	if err := db.First(&surah, id).Error; err != nil {
		return nil, err
	}
	return &surah, nil
}

func GetSantriByID(db *gorm.DB, id uint) (*santriModel.SantriModel, error) {
	var santri santriModel.SantriModel
	if err := db.Preload("OrangTua.User").First(&santri, id).Error; err != nil {
		return nil, err
	}
	return &santri, nil
}

// GetHafalanAyatIDs: himpunan ayat yang sudah pernah disetor sebagai
// TambahHafalan oleh santri (distinct, lintas surah).
func GetHafalanAyatIDs(db *gorm.DB, santriID uint) ([]uint, error) {
	var ids []uint
	err := db.Model(&hafalanModel.RiwayatHafalanModel{}).
		Where("santri_id = ? AND status = ?", santriID, constants.StatusTambahHafalan).
		Distinct("ayat_id").
		Pluck("ayat_id", &ids).Error
	return ids, err
}

// CountAyatHafal: berapa dari ayatIDs yang milik surah tersebut.
func CountAyatHafal(db *gorm.DB, surahID uint, ayatIDs []uint) (int64, error) {
	if len(ayatIDs) == 0 {
		return 0, nil
	}
	var count int64
	err := db.Model(&quranModel.AyatModel{}).
		Where("surah_id = ? AND id = ANY(?)", surahID, pq.Array(ayatIDs)).
		Count(&count).Error
	return count, err
}

func GetAyatBySurah(db *gorm.DB, surahID uint) ([]quranModel.AyatModel, error) {
	var ayat []quranModel.AyatModel
	err := db.Where("surah_id = ?", surahID).
		Order("nomor_ayat ASC").
		Find(&ayat).Error
	return ayat, err
}

// GetHafalanAyatIDsBySurah: ayat milik surah yang sudah disetor santri dengan
// status tertentu (kosongkan status untuk semua).
func GetHafalanAyatIDsBySurah(db *gorm.DB, santriID, surahID uint, status string) ([]uint, error) {
	q := db.Model(&hafalanModel.RiwayatHafalanModel{}).
		Joins("JOIN ayats ON ayats.id = riwayat_hafalans.ayat_id").
		Where("riwayat_hafalans.santri_id = ? AND ayats.surah_id = ?", santriID, surahID)
	if status != "" {
		q = q.Where("riwayat_hafalans.status = ?", status)
	}
	var ids []uint
	err := q.Distinct("riwayat_hafalans.ayat_id").Pluck("riwayat_hafalans.ayat_id", &ids).Error
	return ids, err
}

// FindExistingAyatIDs: subset dari ayatIDs yang sudah pernah TambahHafalan.
func FindExistingAyatIDs(db *gorm.DB, santriID uint, ayatIDs []uint) ([]uint, error) {
	if len(ayatIDs) == 0 {
		return nil, nil
	}
	var ids []uint
	err := db.Model(&hafalanModel.RiwayatHafalanModel{}).
		Where("santri_id = ? AND status = ? AND ayat_id = ANY(?)",
			santriID, constants.StatusTambahHafalan, pq.Array(ayatIDs)).
		Distinct("ayat_id").
		Pluck("ayat_id", &ids).Error
	return ids, err
}

func GetAyatByIDs(db *gorm.DB, ids []uint) ([]quranModel.AyatModel, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var ayat []quranModel.AyatModel
	err := db.Where("id = ANY(?)", pq.Array(ids)).
		Order("nomor_ayat ASC").
		Find(&ayat).Error
	return ayat, err
}

func CreateRiwayatBatch(tx *gorm.DB, rows []hafalanModel.RiwayatHafalanModel) error {
	if len(rows) == 0 {
		return nil
	}
	return tx.Create(&rows).Error
}

// AdjustSantriPoin: increment/decrement atomik di SQL, bukan read-modify-write,
// supaya tidak ada lost update saat setoran paralel untuk santri yang sama.
func AdjustSantriPoin(tx *gorm.DB, santriID uint, delta int) error {
	return tx.Model(&santriModel.SantriModel{}).
		Where("id = ?", santriID).
		Updates(map[string]interface{}{
			"total_poin":      gorm.Expr("total_poin + ?", delta),
			"poin_updated_at": time.Now(),
		}).Error
}

func GetRiwayatBySantri(db *gorm.DB, santriID uint, status string) ([]RiwayatRow, error) {
	q := db.Table("riwayat_hafalans AS rh").
		Select("rh.tanggal_hafalan, rh.status, rh.poin_didapat, s.id AS surah_id, s.nama AS nama_surah, s.nama_latin AS nama_surah_latin").
		Joins("JOIN ayats a ON a.id = rh.ayat_id").
		Joins("JOIN surahs s ON s.id = a.surah_id").
		Where("rh.santri_id = ?", santriID).
		Order("rh.tanggal_hafalan DESC")
	if status != "" {
		q = q.Where("rh.status = ?", status)
	}
	var rows []RiwayatRow
	err := q.Scan(&rows).Error
	return rows, err
}

func GetAyatIDsBySurah(db *gorm.DB, surahID uint) ([]uint, error) {
	var ids []uint
	err := db.Model(&quranModel.AyatModel{}).
		Where("surah_id = ?", surahID).
		Pluck("id", &ids).Error
	return ids, err
}

// DeleteByDateSurahStatus: hapus semua baris grup (santri, ayat surah, window
// hari, status). Return jumlah baris terhapus.
func DeleteByDateSurahStatus(tx *gorm.DB, santriID uint, ayatIDs []uint, start, end time.Time, status string) (int64, error) {
	if len(ayatIDs) == 0 {
		return 0, nil
	}
	result := tx.Where(
		"santri_id = ? AND tanggal_hafalan >= ? AND tanggal_hafalan < ? AND status = ? AND ayat_id = ANY(?)",
		santriID, start, end, status, pq.Array(ayatIDs),
	).Delete(&hafalanModel.RiwayatHafalanModel{})
	return result.RowsAffected, result.Error
}

// SumPoinInGroup: total poin baris grup yang akan dihapus.
func SumPoinInGroup(db *gorm.DB, santriID uint, ayatIDs []uint, start, end time.Time, status string) (int, error) {
	if len(ayatIDs) == 0 {
		return 0, nil
	}
	var total int
	err := db.Model(&hafalanModel.RiwayatHafalanModel{}).
		Where("santri_id = ? AND tanggal_hafalan >= ? AND tanggal_hafalan < ? AND status = ? AND ayat_id = ANY(?)",
			santriID, start, end, status, pq.Array(ayatIDs)).
		Select("COALESCE(SUM(poin_didapat), 0)").
		Scan(&total).Error
	return total, err
}

func GetDetailRiwayatAyat(db *gorm.DB, santriID, surahID uint, start, end time.Time, status string) ([]RiwayatAyatRow, error) {
	var rows []RiwayatAyatRow
	err := db.Table("riwayat_hafalans AS rh").
		Select(`a.id AS ayat_id, a.nomor_ayat, a.arab, a.latin, a.terjemah, a.juz,
			rh.poin_didapat, rh.status, rh.catatan, u.id AS ustadz_id, u.nama AS ustadz_nama`).
		Joins("JOIN ayats a ON a.id = rh.ayat_id").
		Joins("JOIN ustadzs u ON u.id = rh.ustadz_id").
		Where("rh.santri_id = ? AND a.surah_id = ? AND rh.status = ?", santriID, surahID, status).
		Where("rh.tanggal_hafalan >= ? AND rh.tanggal_hafalan < ?", start, end).
		Order("a.nomor_ayat ASC").
		Scan(&rows).Error
	return rows, err
}

// LatestRiwayatRow: riwayat terakhir satu santri (satu baris).
type LatestRiwayatRow struct {
	RiwayatID      uint      `json:"riwayat_id"`
	TanggalHafalan time.Time `json:"tanggal_hafalan"`
	Status         string    `json:"status"`
	SurahID        uint      `json:"surah_id"`
	NamaSurahLatin string    `json:"nama_surah_latin"`
}

// GetLatestRiwayat: event paling baru milik santri untuk status tertentu.
// gorm.ErrRecordNotFound kalau belum pernah setor.
func GetLatestRiwayat(db *gorm.DB, santriID uint, status string) (*LatestRiwayatRow, error) {
	var row LatestRiwayatRow
	err := db.Table("riwayat_hafalans AS rh").
		Select("rh.id AS riwayat_id, rh.tanggal_hafalan, rh.status, s.id AS surah_id, s.nama_latin AS nama_surah_latin").
		Joins("JOIN ayats a ON a.id = rh.ayat_id").
		Joins("JOIN surahs s ON s.id = a.surah_id").
		Where("rh.santri_id = ? AND rh.status = ?", santriID, status).
		Order("rh.tanggal_hafalan DESC, rh.id DESC").
		Limit(1).
		Take(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// GetNomorAyatInGroup: nomor-nomor ayat dalam satu grup (santri, surah,
// window hari, status), urut naik.
func GetNomorAyatInGroup(db *gorm.DB, santriID, surahID uint, start, end time.Time, status string) ([]int, error) {
	var nomor []int
	err := db.Table("riwayat_hafalans AS rh").
		Joins("JOIN ayats a ON a.id = rh.ayat_id").
		Where("rh.santri_id = ? AND a.surah_id = ? AND rh.status = ?", santriID, surahID, status).
		Where("rh.tanggal_hafalan >= ? AND rh.tanggal_hafalan < ?", start, end).
		Order("a.nomor_ayat ASC").
		Pluck("a.nomor_ayat", &nomor).Error
	return nomor, err
}

// FindSantriForLatest: daftar santri sesuai filter tahap/nama, urut tahap
// lalu nama.
func FindSantriForLatest(db *gorm.DB, tahap, name string) ([]santriModel.SantriModel, error) {
	q := db.Model(&santriModel.SantriModel{}).
		Select("id", "nama", "no_induk", "tahap_hafalan").
		Order("tahap_hafalan ASC, nama ASC")
	if tahap != "" {
		q = q.Where("tahap_hafalan = ?", tahap)
	}
	if name != "" {
		q = q.Where("nama ILIKE ?", "%"+name+"%")
	}
	var santris []santriModel.SantriModel
	err := q.Find(&santris).Error
	return santris, err
}

func CountSantri(db *gorm.DB, tahap, name string) (int64, error) {
	q := db.Model(&santriModel.SantriModel{})
	if tahap != "" {
		q = q.Where("tahap_hafalan = ?", tahap)
	}
	if name != "" {
		q = q.Where("nama ILIKE ?", "%"+name+"%")
	}
	var count int64
	err := q.Count(&count).Error
	return count, err
}
