package service

import (
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hafalanku_backend/internals/constants"
	"hafalanku_backend/internals/features/ortu/dto"
	ortuModel "hafalanku_backend/internals/features/ortu/model"
	userModel "hafalanku_backend/internals/features/users/user/model"
	helper "hafalanku_backend/internals/helpers"
	"hafalanku_backend/internals/mailer"
)

var (
	ErrOrtuNotFound  = errors.New("orang tua tidak ditemukan")
	ErrEmailTaken    = errors.New("email sudah terdaftar")
	ErrOrtuTanpaAkun = errors.New("orang tua ini tidak memiliki akun login")
)

// RegisterOrtu: profil ortu, plus akun login kalau email+password dikirim.
func RegisterOrtu(db *gorm.DB, m mailer.Mailer, req dto.CreateOrtuRequest) (*ortuModel.OrangTuaModel, error) {
	if req.Email != "" {
		var count int64
		if err := db.Model(&userModel.UserModel{}).Where("email = ?", req.Email).Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrEmailTaken
		}
	}

	var ortu ortuModel.OrangTuaModel
	err := db.Transaction(func(tx *gorm.DB) error {
		ortu = ortuModel.OrangTuaModel{
			Nama:      req.Nama,
			NomorHp:   req.NomorHp,
			Alamat:    req.Alamat,
			Tipe:      req.Tipe,
			Pekerjaan: req.Pekerjaan,
		}

		if req.Email != "" {
			hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			user := userModel.UserModel{
				Email:    req.Email,
				Password: string(hashed),
				Role:     constants.RoleOrtu,
			}
			if err := tx.Create(&user).Error; err != nil {
				return err
			}
			ortu.UserID = &user.ID
		}

		return tx.Create(&ortu).Error
	})
	if err != nil {
		return nil, err
	}

	if req.Email != "" {
		m.Send(mailer.NewAccountMessage(mailer.AccountEmailParams{
			To:       req.Email,
			Name:     req.Nama,
			Email:    req.Email,
			Password: req.Password,
			Role:     "Orang Tua",
		}))
	}

	log.Printf("[INFO] Orang tua baru terdaftar: %s (%s)", ortu.Nama, ortu.Tipe)
	return &ortu, nil
}

func UpdateOrtu(db *gorm.DB, ortuID uint, req dto.UpdateOrtuRequest) (*ortuModel.OrangTuaModel, error) {
	var ortu ortuModel.OrangTuaModel
	if err := db.First(&ortu, ortuID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrtuNotFound
		}
		return nil, err
	}

	if req.Email != nil {
		if ortu.UserID == nil {
			return nil, ErrOrtuTanpaAkun
		}
		var count int64
		if err := db.Model(&userModel.UserModel{}).
			Where("email = ? AND id <> ?", *req.Email, *ortu.UserID).
			Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrEmailTaken
		}
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{}
		if req.Nama != nil {
			updates["nama"] = *req.Nama
		}
		if req.NomorHp != nil {
			updates["nomor_hp"] = *req.NomorHp
		}
		if req.Alamat != nil {
			updates["alamat"] = *req.Alamat
		}
		if req.Tipe != nil {
			updates["tipe"] = *req.Tipe
		}
		if req.Pekerjaan != nil {
			updates["pekerjaan"] = *req.Pekerjaan
		}
		if len(updates) > 0 {
			if err := tx.Model(&ortu).Updates(updates).Error; err != nil {
				return err
			}
		}

		if req.Email != nil {
			return tx.Model(&userModel.UserModel{}).
				Where("id = ?", *ortu.UserID).
				Update("email", *req.Email).Error
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := db.First(&ortu, ortuID).Error; err != nil {
		return nil, err
	}
	return &ortu, nil
}

// DeleteOrtu: lepas relasi ke santri dulu, lalu hapus profil dan akun login
// (kalau ada).
func DeleteOrtu(db *gorm.DB, ortuID uint) error {
	var ortu ortuModel.OrangTuaModel
	if err := db.First(&ortu, ortuID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrtuNotFound
		}
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM santri_orang_tua WHERE orang_tua_id = ?", ortuID).Error; err != nil {
			return err
		}
		if err := tx.Delete(&ortu).Error; err != nil {
			return err
		}
		if ortu.UserID != nil {
			return tx.Delete(&userModel.UserModel{}, *ortu.UserID).Error
		}
		return nil
	})
}

// GetOrtuDetail: profil ortu beserta daftar anaknya.
func GetOrtuDetail(db *gorm.DB, ortuID uint) (*dto.OrtuDetailResponse, error) {
	var ortu ortuModel.OrangTuaModel
	if err := db.Preload("User").First(&ortu, ortuID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrtuNotFound
		}
		return nil, err
	}

	var anak []dto.AnakItem
	err := db.Table("santris s").
		Select("s.id, s.nama, s.no_induk, s.tahap_hafalan, s.total_poin, s.peringkat").
		Joins("JOIN santri_orang_tua so ON so.santri_id = s.id").
		Where("so.orang_tua_id = ?", ortuID).
		Order("s.nama ASC").
		Scan(&anak).Error
	if err != nil {
		return nil, err
	}
	if anak == nil {
		anak = []dto.AnakItem{}
	}

	resp := &dto.OrtuDetailResponse{
		ID:        ortu.ID,
		Nama:      ortu.Nama,
		NomorHp:   ortu.NomorHp,
		Alamat:    ortu.Alamat,
		Tipe:      ortu.Tipe,
		Pekerjaan: ortu.Pekerjaan,
		Anak:      anak,
	}
	if ortu.User != nil {
		resp.Email = ortu.User.Email
	}
	return resp, nil
}

func ListOrtu(db *gorm.DB, p helper.Params, search string) (*dto.OrtuListResponse, error) {
	q := db.Model(&ortuModel.OrangTuaModel{})
	if search != "" {
		q = q.Where("nama ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, err
	}

	var ortus []ortuModel.OrangTuaModel
	if err := q.Preload("User").
		Order("nama ASC").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&ortus).Error; err != nil {
		return nil, err
	}

	items := make([]dto.OrtuListItem, 0, len(ortus))
	for _, o := range ortus {
		item := dto.OrtuListItem{
			ID:      o.ID,
			Nama:    o.Nama,
			NomorHp: o.NomorHp,
			Tipe:    o.Tipe,
		}
		if o.User != nil {
			item.Email = o.User.Email
		}
		items = append(items, item)
	}

	return &dto.OrtuListResponse{
		Meta: helper.BuildMeta(total, p),
		Data: items,
	}, nil
}
