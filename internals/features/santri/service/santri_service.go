package service

import (
	"errors"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hafalanku_backend/internals/constants"
	ortuModel "hafalanku_backend/internals/features/ortu/model"
	"hafalanku_backend/internals/features/santri/dto"
	santriModel "hafalanku_backend/internals/features/santri/model"
	ustadzModel "hafalanku_backend/internals/features/ustadz/model"
	userModel "hafalanku_backend/internals/features/users/user/model"
	helper "hafalanku_backend/internals/helpers"
	"hafalanku_backend/internals/mailer"
)

var (
	ErrEmailTaken           = errors.New("email sudah terdaftar")
	ErrNoIndukTaken         = errors.New("nomor induk sudah terdaftar")
	ErrOrtuNotFound         = errors.New("orang tua tidak ditemukan")
	ErrJumlahOrtuTidakValid = errors.New("santri harus punya 1 sampai 3 orang tua")
	ErrTipeOrtuGanda        = errors.New("tipe orang tua ganda: maksimal satu Ayah, satu Ibu, dan satu Wali")
)

// RegisterSantri: buat akun user + profil santri dalam satu transaksi, lalu
// kirim email kredensial ke santri (best-effort, setelah commit).
func RegisterSantri(db *gorm.DB, m mailer.Mailer, req dto.CreateSantriRequest) (*santriModel.SantriModel, error) {
	var count int64
	if err := db.Model(&userModel.UserModel{}).Where("email = ?", req.Email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}
	if err := db.Model(&santriModel.SantriModel{}).Where("no_induk = ?", req.NoInduk).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrNoIndukTaken
	}

	ortu, err := findOrangTua(db, req.OrangTuaIDs)
	if err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	var santri santriModel.SantriModel
	err = db.Transaction(func(tx *gorm.DB) error {
		user := userModel.UserModel{
			Email:    req.Email,
			Password: string(hashed),
			Role:     constants.RoleSantri,
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		santri = santriModel.SantriModel{
			UserID:        user.ID,
			Nama:          req.Nama,
			NoInduk:       req.NoInduk,
			NomorHp:       req.NomorHp,
			Alamat:        req.Alamat,
			JenisKelamin:  req.JenisKelamin,
			TanggalLahir:  parseTanggal(req.TanggalLahir),
			TahapHafalan:  req.TahapHafalan,
			PoinUpdatedAt: time.Now(),
		}
		if err := tx.Create(&santri).Error; err != nil {
			return err
		}

		if len(ortu) > 0 {
			return tx.Model(&santri).Association("OrangTua").Append(ortu)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	m.Send(mailer.NewAccountMessage(mailer.AccountEmailParams{
		To:       req.Email,
		Name:     req.Nama,
		Email:    req.Email,
		Password: req.Password,
		Role:     "Santri",
	}))

	log.Printf("[INFO] Santri baru terdaftar: %s (%s)", santri.Nama, santri.NoInduk)
	return &santri, nil
}

// UpdateSantri: ubah profil; poin dan peringkat tidak pernah diubah di sini.
func UpdateSantri(db *gorm.DB, santriID uint, req dto.UpdateSantriRequest) (*santriModel.SantriModel, error) {
	var santri santriModel.SantriModel
	if err := db.First(&santri, santriID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSantriNotFound
		}
		return nil, err
	}

	if req.Email != nil {
		var count int64
		if err := db.Model(&userModel.UserModel{}).
			Where("email = ? AND id <> ?", *req.Email, santri.UserID).
			Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrEmailTaken
		}
	}
	if req.NoInduk != nil && *req.NoInduk != santri.NoInduk {
		var count int64
		if err := db.Model(&santriModel.SantriModel{}).
			Where("no_induk = ? AND id <> ?", *req.NoInduk, santriID).
			Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrNoIndukTaken
		}
	}

	var ortu []ortuModel.OrangTuaModel
	if req.OrangTuaIDs != nil {
		// Slice kosong berarti melepas semua ortu dan menyisakan nol.
		if len(req.OrangTuaIDs) == 0 {
			return nil, ErrJumlahOrtuTidakValid
		}
		var err error
		ortu, err = findOrangTua(db, req.OrangTuaIDs)
		if err != nil {
			return nil, err
		}
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{}
		if req.Nama != nil {
			updates["nama"] = *req.Nama
		}
		if req.NoInduk != nil {
			updates["no_induk"] = *req.NoInduk
		}
		if req.NomorHp != nil {
			updates["nomor_hp"] = *req.NomorHp
		}
		if req.Alamat != nil {
			updates["alamat"] = *req.Alamat
		}
		if req.JenisKelamin != nil {
			updates["jenis_kelamin"] = *req.JenisKelamin
		}
		if req.TanggalLahir != nil {
			updates["tanggal_lahir"] = parseTanggal(*req.TanggalLahir)
		}
		if req.TahapHafalan != nil {
			updates["tahap_hafalan"] = *req.TahapHafalan
		}
		if len(updates) > 0 {
			if err := tx.Model(&santri).Updates(updates).Error; err != nil {
				return err
			}
		}

		if req.Email != nil {
			if err := tx.Model(&userModel.UserModel{}).
				Where("id = ?", santri.UserID).
				Update("email", *req.Email).Error; err != nil {
				return err
			}
		}

		if req.OrangTuaIDs != nil {
			if err := tx.Model(&santri).Association("OrangTua").Clear(); err != nil {
				return err
			}
			if len(ortu) > 0 {
				return tx.Model(&santri).Association("OrangTua").Append(ortu)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := db.First(&santri, santriID).Error; err != nil {
		return nil, err
	}
	return &santri, nil
}

// DeleteSantri: hapus profil, relasi ortu, riwayat hafalan, dan akun login
// dalam satu transaksi.
func DeleteSantri(db *gorm.DB, santriID uint) error {
	var santri santriModel.SantriModel
	if err := db.First(&santri, santriID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSantriNotFound
		}
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&santri).Association("OrangTua").Clear(); err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM riwayat_hafalans WHERE santri_id = ?", santriID).Error; err != nil {
			return err
		}
		if err := tx.Delete(&santri).Error; err != nil {
			return err
		}
		return tx.Delete(&userModel.UserModel{}, santri.UserID).Error
	})
}

// GetSantriDetail: profil lengkap termasuk ortu dan wali kelas tahap-nya.
func GetSantriDetail(db *gorm.DB, santriID uint) (*dto.SantriDetailResponse, error) {
	var santri santriModel.SantriModel
	err := db.Preload("User").Preload("OrangTua.User").First(&santri, santriID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSantriNotFound
		}
		return nil, err
	}

	ortuItems := make([]dto.OrangTuaItem, 0, len(santri.OrangTua))
	for _, o := range santri.OrangTua {
		item := dto.OrangTuaItem{
			ID:      o.ID,
			Nama:    o.Nama,
			Tipe:    o.Tipe,
			NomorHp: o.NomorHp,
		}
		if o.User != nil {
			item.Email = o.User.Email
		}
		ortuItems = append(ortuItems, item)
	}

	resp := &dto.SantriDetailResponse{
		ID:           santri.ID,
		Nama:         santri.Nama,
		NoInduk:      santri.NoInduk,
		NomorHp:      santri.NomorHp,
		Alamat:       santri.Alamat,
		JenisKelamin: santri.JenisKelamin,
		TahapHafalan: santri.TahapHafalan,
		TotalPoin:    santri.TotalPoin,
		Peringkat:    santri.Peringkat,
		OrangTua:     ortuItems,
	}
	if santri.User != nil {
		resp.Email = santri.User.Email
	}
	if !santri.TanggalLahir.IsZero() {
		t := santri.TanggalLahir
		resp.TanggalLahir = &t
	}

	// Wali kelas: ustadz yang memegang tahap hafalan santri, kalau ada.
	var wali ustadzModel.UstadzModel
	err = db.Where("wali_kelas_tahap = ?", santri.TahapHafalan).First(&wali).Error
	if err == nil {
		resp.WaliKelas = &dto.WaliKelasItem{ID: wali.ID, Nama: wali.Nama}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return resp, nil
}

// ListSantri: daftar santri dengan filter tahap/orang tua dan pencarian
// nama/no induk.
func ListSantri(db *gorm.DB, p helper.Params, tahap, search string, ortuID uint) (*dto.SantriListResponse, error) {
	q := db.Model(&santriModel.SantriModel{})
	if tahap != "" {
		q = q.Where("tahap_hafalan = ?", tahap)
	}
	if search != "" {
		q = q.Where("nama ILIKE ? OR no_induk ILIKE ?", "%"+search+"%", "%"+search+"%")
	}
	if ortuID != 0 {
		q = q.Where("id IN (SELECT santri_id FROM santri_orang_tua WHERE orang_tua_id = ?)", ortuID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, err
	}

	order := "nama ASC"
	switch p.SortBy {
	case "nama", "no_induk", "total_poin", "peringkat", "tahap_hafalan":
		order = p.SortBy + " " + p.SortOrder
	}

	var santris []santriModel.SantriModel
	if err := q.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&santris).Error; err != nil {
		return nil, err
	}

	items := make([]dto.SantriListItem, 0, len(santris))
	for _, s := range santris {
		items = append(items, dto.SantriListItem{
			ID:           s.ID,
			Nama:         s.Nama,
			NoInduk:      s.NoInduk,
			JenisKelamin: s.JenisKelamin,
			TahapHafalan: s.TahapHafalan,
			TotalPoin:    s.TotalPoin,
			Peringkat:    s.Peringkat,
		})
	}

	return &dto.SantriListResponse{
		Meta: helper.BuildMeta(total, p),
		Data: items,
	}, nil
}

// GetPeringkat: papan peringkat, per tahap kalau difilter, urut peringkat
// hasil ranking engine.
func GetPeringkat(db *gorm.DB, tahap string) ([]dto.PeringkatItem, error) {
	q := db.Model(&santriModel.SantriModel{}).
		Select("id", "nama", "no_induk", "tahap_hafalan", "total_poin", "peringkat").
		Order("tahap_hafalan ASC, peringkat ASC, nama ASC")
	if tahap != "" {
		q = q.Where("tahap_hafalan = ?", tahap)
	}

	var santris []santriModel.SantriModel
	if err := q.Find(&santris).Error; err != nil {
		return nil, err
	}

	items := make([]dto.PeringkatItem, 0, len(santris))
	for _, s := range santris {
		items = append(items, dto.PeringkatItem{
			Peringkat:    s.Peringkat,
			ID:           s.ID,
			Nama:         s.Nama,
			NoInduk:      s.NoInduk,
			TahapHafalan: s.TahapHafalan,
			TotalPoin:    s.TotalPoin,
		})
	}
	return items, nil
}

func findOrangTua(db *gorm.DB, ids []uint) ([]ortuModel.OrangTuaModel, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	if len(ids) > 3 {
		return nil, ErrJumlahOrtuTidakValid
	}
	var ortu []ortuModel.OrangTuaModel
	if err := db.Find(&ortu, ids).Error; err != nil {
		return nil, err
	}
	if len(ortu) != len(ids) {
		return nil, ErrOrtuNotFound
	}
	if err := validateTipeOrtu(ortu); err != nil {
		return nil, err
	}
	return ortu, nil
}

// validateTipeOrtu: satu santri maksimal punya satu Ayah, satu Ibu, dan satu
// Wali. Dipisah dari findOrangTua supaya aturannya bisa dites tanpa DB.
func validateTipeOrtu(ortu []ortuModel.OrangTuaModel) error {
	seen := make(map[string]struct{}, 3)
	for _, o := range ortu {
		if _, dup := seen[o.Tipe]; dup {
			return ErrTipeOrtuGanda
		}
		seen[o.Tipe] = struct{}{}
	}
	return nil
}

func parseTanggal(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.ParseInLocation("2006-01-02", s, constants.AppTimezone)
	if err != nil {
		return time.Time{}
	}
	return t
}
