package model

import "time"

// ResetTokenModel: token 6 digit untuk reset password, umur 5 menit.
// Token kadaluarsa dibersihkan oleh scheduler.
type ResetTokenModel struct {
	ID        uint      `gorm:"column:id;primaryKey" json:"id"`
	UserID    uint      `gorm:"column:user_id;not null;index" json:"user_id"`
	Token     string    `gorm:"column:token;not null;uniqueIndex" json:"token"`
	ExpiresAt time.Time `gorm:"column:expires_at;not null" json:"expires_at"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (ResetTokenModel) TableName() string {
	return "reset_tokens"
}
