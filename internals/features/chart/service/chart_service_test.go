package service

import (
	"testing"
	"time"

	"hafalanku_backend/internals/constants"
)

func TestRangeDays(t *testing.T) {
	tests := []struct {
		code string
		want int
	}{
		{"1w", 7},
		{"1m", 30},
		{"3m", 90},
		{"6m", 0},
		{"", 0},
	}
	for _, tt := range tests {
		if got := RangeDays(tt.code); got != tt.want {
			t.Errorf("RangeDays(%q) = %d, want %d", tt.code, got, tt.want)
		}
	}
}

func TestBuildDailySeriesPadatTanpaCelah(t *testing.T) {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, constants.AppTimezone)

	events := []SetoranEvent{
		{TanggalHafalan: start.Add(10 * time.Hour), Status: constants.StatusTambahHafalan},
		{TanggalHafalan: start.Add(11 * time.Hour), Status: constants.StatusTambahHafalan},
		{TanggalHafalan: start.Add(19 * time.Hour), Status: constants.StatusMurajaah},
		{TanggalHafalan: start.AddDate(0, 0, 3).Add(9 * time.Hour), Status: constants.StatusMurajaah},
	}

	series := BuildDailySeries(events, start, 7)

	if len(series) != 7 {
		t.Fatalf("panjang seri = %d, want 7", len(series))
	}
	for i := 1; i < len(series); i++ {
		if series[i].Tanggal <= series[i-1].Tanggal {
			t.Errorf("seri tidak naik: %s setelah %s", series[i].Tanggal, series[i-1].Tanggal)
		}
		prev, _ := time.ParseInLocation("2006-01-02", series[i-1].Tanggal, constants.AppTimezone)
		cur, _ := time.ParseInLocation("2006-01-02", series[i].Tanggal, constants.AppTimezone)
		if cur.Sub(prev) != 24*time.Hour {
			t.Errorf("ada celah antara %s dan %s", series[i-1].Tanggal, series[i].Tanggal)
		}
	}

	if series[0].TambahHafalan != 2 || series[0].Murajaah != 1 {
		t.Errorf("hari pertama = (%d, %d), want (2, 1)", series[0].TambahHafalan, series[0].Murajaah)
	}
	if series[3].TambahHafalan != 0 || series[3].Murajaah != 1 {
		t.Errorf("hari keempat = (%d, %d), want (0, 1)", series[3].TambahHafalan, series[3].Murajaah)
	}
	for _, i := range []int{1, 2, 4, 5, 6} {
		if series[i].TambahHafalan != 0 || series[i].Murajaah != 0 {
			t.Errorf("hari kosong (%s) punya hitungan (%d, %d), want (0, 0)",
				series[i].Tanggal, series[i].TambahHafalan, series[i].Murajaah)
		}
	}
}

func TestBuildDailySeriesAbaikanEventDiLuarWindow(t *testing.T) {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, constants.AppTimezone)
	events := []SetoranEvent{
		{TanggalHafalan: start.AddDate(0, 0, -1), Status: constants.StatusTambahHafalan},
		{TanggalHafalan: start.AddDate(0, 0, 7), Status: constants.StatusMurajaah},
	}

	for _, p := range BuildDailySeries(events, start, 7) {
		if p.TambahHafalan != 0 || p.Murajaah != 0 {
			t.Errorf("event di luar window ikut terhitung pada %s", p.Tanggal)
		}
	}
}

func TestWindowStart(t *testing.T) {
	now := time.Date(2025, 3, 10, 14, 30, 0, 0, constants.AppTimezone)

	start := WindowStart(now, 7)
	want := time.Date(2025, 3, 4, 0, 0, 0, 0, constants.AppTimezone)
	if !start.Equal(want) {
		t.Errorf("WindowStart 7 hari = %v, want %v", start, want)
	}

	// Window harus memuat hari ini sebagai hari terakhir.
	end := start.AddDate(0, 0, 7)
	if now.Before(start) || !now.Before(end) {
		t.Errorf("window [%v, %v) tidak memuat now %v", start, end, now)
	}
}
