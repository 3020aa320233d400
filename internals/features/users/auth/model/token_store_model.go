package model

import "time"

// TokenStoreModel: token mobile yang masih berlaku. Token mobile tidak punya
// exp di JWT, jadi validitasnya dicek ke tabel ini setiap request.
type TokenStoreModel struct {
	ID        uint      `gorm:"column:id;primaryKey" json:"id"`
	UserID    uint      `gorm:"column:user_id;not null;index" json:"user_id"`
	Token     string    `gorm:"column:token;not null;uniqueIndex" json:"token"`
	Platform  string    `gorm:"column:platform;not null" json:"platform"` // web|mobile
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (TokenStoreModel) TableName() string {
	return "token_stores"
}
