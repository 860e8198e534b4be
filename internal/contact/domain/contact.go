package domain

import "time"

// Contact is an address-book entry owned by a single user
type Contact struct {
	ID         string    `json:"id" gorm:"primaryKey"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone"`
	Email      string    `json:"email"`
	UserID     string    `json:"user_id" gorm:"index;not null"`
	CreateDate time.Time `json:"create_date"`
	UpdateDate time.Time `json:"update_date"`
}
