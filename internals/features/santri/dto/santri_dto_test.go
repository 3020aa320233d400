package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
)

func validCreate(orangTuaIDs []uint) CreateSantriRequest {
	return CreateSantriRequest{
		Email:        "santri@pesantren.id",
		Password:     "rahasia123",
		Nama:         "Ahmad Fauzi",
		NoInduk:      "S-2024-001",
		JenisKelamin: "LakiLaki",
		TahapHafalan: "Level1",
		OrangTuaIDs:  orangTuaIDs,
	}
}

func TestCreateSantriRequestJumlahOrtu(t *testing.T) {
	v := validator.New()

	tests := []struct {
		name    string
		ids     []uint
		wantErr bool
	}{
		{"tanpa ortu ditolak", nil, true},
		{"slice kosong ditolak", []uint{}, true},
		{"satu ortu", []uint{1}, false},
		{"tiga ortu", []uint{1, 2, 3}, false},
		{"empat ortu ditolak", []uint{1, 2, 3, 4}, true},
		{"lima ortu ditolak", []uint{1, 2, 3, 4, 5}, true},
		{"id nol ditolak", []uint{0}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(validCreate(tt.ids))
			if (err != nil) != tt.wantErr {
				t.Errorf("Struct err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestUpdateSantriRequestJumlahOrtu(t *testing.T) {
	v := validator.New()

	tests := []struct {
		name    string
		ids     []uint
		wantErr bool
	}{
		{"nil artinya tidak diubah", nil, false},
		{"dua ortu", []uint{1, 2}, false},
		{"empat ortu ditolak", []uint{1, 2, 3, 4}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(UpdateSantriRequest{OrangTuaIDs: tt.ids})
			if (err != nil) != tt.wantErr {
				t.Errorf("Struct err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
