package service

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"hafalanku_backend/internals/constants"
	"hafalanku_backend/internals/features/chart/dto"
	hafalanModel "hafalanku_backend/internals/features/hafalan/model"
	santriModel "hafalanku_backend/internals/features/santri/model"
)

var (
	ErrSantriNotFound  = errors.New("santri tidak ditemukan")
	ErrRangeTidakValid = errors.New("range tidak valid, pilih 1w, 1m, atau 3m")
)

// RangeDays memetakan kode range ke jumlah hari. Kode tak dikenal return 0.
func RangeDays(rangeCode string) int {
	switch rangeCode {
	case "1w":
		return 7
	case "1m":
		return 30
	case "3m":
		return 90
	}
	return 0
}

// SetoranEvent: satu event riwayat yang dihitung ke grafik.
type SetoranEvent struct {
	TanggalHafalan time.Time
	Status         string
}

// BuildDailySeries: seri harian padat sepanjang [start, start+days hari),
// jumlah setoran per status, zero-filled untuk hari kosong. Event di luar
// window atau ber-status tak dikenal diabaikan.
func BuildDailySeries(events []SetoranEvent, start time.Time, days int) []dto.ChartPoint {
	series := make([]dto.ChartPoint, days)
	index := make(map[string]int, days)
	for i := 0; i < days; i++ {
		tanggal := start.AddDate(0, 0, i).Format("2006-01-02")
		series[i] = dto.ChartPoint{Tanggal: tanggal}
		index[tanggal] = i
	}

	for _, ev := range events {
		key := ev.TanggalHafalan.In(constants.AppTimezone).Format("2006-01-02")
		i, ok := index[key]
		if !ok {
			continue
		}
		switch ev.Status {
		case constants.StatusTambahHafalan:
			series[i].TambahHafalan++
		case constants.StatusMurajaah:
			series[i].Murajaah++
		}
	}
	return series
}

// WindowStart: awal window N hari yang berakhir pada hari kalender yang
// memuat now (inklusif hari ini).
func WindowStart(now time.Time, days int) time.Time {
	local := now.In(constants.AppTimezone)
	today := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, constants.AppTimezone)
	return today.AddDate(0, 0, -(days - 1))
}

// GetSetoranChart: seri harian jumlah setoran satu santri untuk grafik
// perkembangan, dipisah TambahHafalan dan Murajaah.
func GetSetoranChart(db *gorm.DB, santriID uint, rangeCode string) (*dto.ChartResponse, error) {
	days := RangeDays(rangeCode)
	if days == 0 {
		return nil, ErrRangeTidakValid
	}

	var santri santriModel.SantriModel
	if err := db.Select("id", "nama", "tahap_hafalan", "total_poin").
		First(&santri, santriID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSantriNotFound
		}
		return nil, err
	}

	start := WindowStart(time.Now(), days)
	end := start.AddDate(0, 0, days)

	var events []SetoranEvent
	err := db.Model(&hafalanModel.RiwayatHafalanModel{}).
		Select("tanggal_hafalan", "status").
		Where("santri_id = ?", santriID).
		Where("tanggal_hafalan >= ? AND tanggal_hafalan < ?", start, end).
		Order("tanggal_hafalan ASC").
		Scan(&events).Error
	if err != nil {
		return nil, err
	}

	return &dto.ChartResponse{
		Santri: dto.ChartSantri{
			ID:           santri.ID,
			Nama:         santri.Nama,
			TahapHafalan: santri.TahapHafalan,
			TotalPoin:    santri.TotalPoin,
		},
		Range: rangeCode,
		Data:  BuildDailySeries(events, start, days),
	}, nil
}
