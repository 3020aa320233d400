package service

import "testing"

func TestParseTanggal(t *testing.T) {
	if got := parseTanggal("2010-05-17"); got.IsZero() {
		t.Error("tanggal valid tapi hasil zero")
	} else if got.Year() != 2010 || int(got.Month()) != 5 || got.Day() != 17 {
		t.Errorf("parseTanggal salah: %v", got)
	}

	if got := parseTanggal(""); !got.IsZero() {
		t.Errorf("string kosong harus zero, dapat %v", got)
	}
	if got := parseTanggal("17-05-2010"); !got.IsZero() {
		t.Errorf("format salah harus zero, dapat %v", got)
	}
}
