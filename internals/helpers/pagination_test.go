package helper

import "testing"

func TestBuildMeta(t *testing.T) {
	tests := []struct {
		name      string
		total     int64
		page      int
		perPage   int
		wantPages int
		wantNext  bool
		wantPrev  bool
	}{
		{"halaman pertama dari tiga", 25, 1, 10, 3, true, false},
		{"halaman tengah", 25, 2, 10, 3, true, true},
		{"halaman terakhir", 25, 3, 10, 3, false, true},
		{"data kosong", 0, 1, 10, 0, false, false},
		{"pas satu halaman", 10, 1, 10, 1, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := BuildMeta(tt.total, Params{Page: tt.page, PerPage: tt.perPage})
			if meta.TotalPages != tt.wantPages {
				t.Errorf("TotalPages = %d, want %d", meta.TotalPages, tt.wantPages)
			}
			if meta.HasNext != tt.wantNext || meta.HasPrev != tt.wantPrev {
				t.Errorf("HasNext/HasPrev = %v/%v, want %v/%v",
					meta.HasNext, meta.HasPrev, tt.wantNext, tt.wantPrev)
			}
		})
	}
}

func TestParamsOffset(t *testing.T) {
	p := Params{Page: 3, PerPage: 25}
	if p.Offset() != 50 {
		t.Errorf("Offset = %d, want 50", p.Offset())
	}
	if p.Limit() != 25 {
		t.Errorf("Limit = %d, want 25", p.Limit())
	}
}
