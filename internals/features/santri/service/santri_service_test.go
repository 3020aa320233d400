package service

import (
	"errors"
	"testing"

	ortuModel "hafalanku_backend/internals/features/ortu/model"
)

func TestValidateTipeOrtu(t *testing.T) {
	mk := func(tipe ...string) []ortuModel.OrangTuaModel {
		out := make([]ortuModel.OrangTuaModel, 0, len(tipe))
		for i, tp := range tipe {
			out = append(out, ortuModel.OrangTuaModel{ID: uint(i + 1), Tipe: tp})
		}
		return out
	}

	tests := []struct {
		name    string
		ortu    []ortuModel.OrangTuaModel
		wantErr error
	}{
		{"satu ayah", mk("Ayah"), nil},
		{"ayah ibu wali lengkap", mk("Ayah", "Ibu", "Wali"), nil},
		{"dua ayah ditolak", mk("Ayah", "Ayah"), ErrTipeOrtuGanda},
		{"dua ibu ditolak", mk("Ayah", "Ibu", "Ibu"), ErrTipeOrtuGanda},
		{"dua wali ditolak", mk("Wali", "Wali"), ErrTipeOrtuGanda},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := validateTipeOrtu(tt.ortu); !errors.Is(err, tt.wantErr) {
				t.Errorf("validateTipeOrtu = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
