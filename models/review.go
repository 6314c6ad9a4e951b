package models

import "time"

type Review struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	CustomerName string  `gorm:"type:varchar(100);not null" json:"customer_name"`
	ReviewText   string  `gorm:"type:text;not null" json:"review_text"`
	Rating       int     `gorm:"not null" json:"rating"`
	ReviewImage  *string `gorm:"type:varchar(255)" json:"review_image,omitempty"`
	UserID       uint    `gorm:"not null;index" json:"user_id"`
	User         User    `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	CreatedAt    time.Time
}
