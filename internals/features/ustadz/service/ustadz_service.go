package service

import (
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hafalanku_backend/internals/constants"
	"hafalanku_backend/internals/features/ustadz/dto"
	ustadzModel "hafalanku_backend/internals/features/ustadz/model"
	userModel "hafalanku_backend/internals/features/users/user/model"
	helper "hafalanku_backend/internals/helpers"
	"hafalanku_backend/internals/mailer"
)

var (
	ErrUstadzNotFound = errors.New("ustadz tidak ditemukan")
	ErrEmailTaken     = errors.New("email sudah terdaftar")
)

// RegisterUstadz: akun user + profil ustadz satu transaksi, kredensial
// dikirim lewat email setelah commit.
func RegisterUstadz(db *gorm.DB, m mailer.Mailer, req dto.CreateUstadzRequest) (*ustadzModel.UstadzModel, error) {
	var count int64
	if err := db.Model(&userModel.UserModel{}).Where("email = ?", req.Email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	var ustadz ustadzModel.UstadzModel
	err = db.Transaction(func(tx *gorm.DB) error {
		user := userModel.UserModel{
			Email:    req.Email,
			Password: string(hashed),
			Role:     constants.RoleUstadz,
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		ustadz = ustadzModel.UstadzModel{
			UserID:         user.ID,
			Nama:           req.Nama,
			NomorHp:        req.NomorHp,
			Alamat:         req.Alamat,
			WaliKelasTahap: req.WaliKelasTahap,
		}
		return tx.Create(&ustadz).Error
	})
	if err != nil {
		return nil, err
	}

	m.Send(mailer.NewAccountMessage(mailer.AccountEmailParams{
		To:       req.Email,
		Name:     req.Nama,
		Email:    req.Email,
		Password: req.Password,
		Role:     "Ustadz",
	}))

	log.Printf("[INFO] Ustadz baru terdaftar: %s", ustadz.Nama)
	return &ustadz, nil
}

func UpdateUstadz(db *gorm.DB, ustadzID uint, req dto.UpdateUstadzRequest) (*ustadzModel.UstadzModel, error) {
	var ustadz ustadzModel.UstadzModel
	if err := db.First(&ustadz, ustadzID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUstadzNotFound
		}
		return nil, err
	}

	if req.Email != nil {
		var count int64
		if err := db.Model(&userModel.UserModel{}).
			Where("email = ? AND id <> ?", *req.Email, ustadz.UserID).
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
		if req.WaliKelasTahap != nil {
			updates["wali_kelas_tahap"] = *req.WaliKelasTahap
		} else if req.HapusWaliKelas {
			updates["wali_kelas_tahap"] = nil
		}
		if len(updates) > 0 {
			if err := tx.Model(&ustadz).Updates(updates).Error; err != nil {
				return err
			}
		}

		if req.Email != nil {
			return tx.Model(&userModel.UserModel{}).
				Where("id = ?", ustadz.UserID).
				Update("email", *req.Email).Error
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := db.First(&ustadz, ustadzID).Error; err != nil {
		return nil, err
	}
	return &ustadz, nil
}

func DeleteUstadz(db *gorm.DB, ustadzID uint) error {
	var ustadz ustadzModel.UstadzModel
	if err := db.First(&ustadz, ustadzID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUstadzNotFound
		}
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&ustadz).Error; err != nil {
			return err
		}
		return tx.Delete(&userModel.UserModel{}, ustadz.UserID).Error
	})
}

func GetUstadzDetail(db *gorm.DB, ustadzID uint) (*dto.UstadzItem, error) {
	var ustadz ustadzModel.UstadzModel
	if err := db.Preload("User").First(&ustadz, ustadzID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUstadzNotFound
		}
		return nil, err
	}
	item := toItem(ustadz)
	return &item, nil
}

func ListUstadz(db *gorm.DB, p helper.Params, search string) (*dto.UstadzListResponse, error) {
	q := db.Model(&ustadzModel.UstadzModel{})
	if search != "" {
		q = q.Where("nama ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, err
	}

	var ustadzs []ustadzModel.UstadzModel
	if err := q.Preload("User").
		Order("nama ASC").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&ustadzs).Error; err != nil {
		return nil, err
	}

	items := make([]dto.UstadzItem, 0, len(ustadzs))
	for _, u := range ustadzs {
		items = append(items, toItem(u))
	}

	return &dto.UstadzListResponse{
		Meta: helper.BuildMeta(total, p),
		Data: items,
	}, nil
}

func toItem(u ustadzModel.UstadzModel) dto.UstadzItem {
	item := dto.UstadzItem{
		ID:             u.ID,
		Nama:           u.Nama,
		NomorHp:        u.NomorHp,
		Alamat:         u.Alamat,
		WaliKelasTahap: u.WaliKelasTahap,
	}
	if u.User != nil {
		item.Email = u.User.Email
	}
	return item
}
