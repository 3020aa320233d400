package dto

// ChartPoint: jumlah setoran satu hari, dipisah per status.
type ChartPoint struct {
	Tanggal       string `json:"tanggal"` // YYYY-MM-DD
	TambahHafalan int    `json:"tambah_hafalan"`
	Murajaah      int    `json:"murajaah"`
}

type ChartSantri struct {
	ID           uint   `json:"id"`
	Nama         string `json:"nama"`
	TahapHafalan string `json:"tahap_hafalan"`
	TotalPoin    int    `json:"total_poin"`
}

type ChartResponse struct {
	Santri ChartSantri  `json:"santri"`
	Range  string       `json:"range"` // 1w|1m|3m
	Data   []ChartPoint `json:"data"`
}
