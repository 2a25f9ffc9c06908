package entities

import (
	"time"
)

type User struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	Email       string       `gorm:"uniqueIndex;not null" json:"email"`
	Password    string       `gorm:"not null" json:"-"`
	Name        string       `json:"name"`
	IsStaff     bool         `gorm:"default:false" json:"is_staff"`
	IsSuperuser bool         `gorm:"default:false" json:"is_superuser"`
	IsVerified  bool         `gorm:"default:false" json:"is_verified"`
	VerifyToken *string      `json:"-"`
	Tags        []Tag        `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Ingredients []Ingredient `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Recipes     []Recipe     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`

	Timestamp
}

type Timestamp struct {
	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamp" json:"updated_at"`
}

func (u User) String() string {
	return u.Email
}
