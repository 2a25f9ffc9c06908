package entities

type Ingredient struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	UserID uint   `gorm:"not null;index" json:"user_id"`
	Name   string `gorm:"not null" json:"name"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
	Timestamp
}

func (i Ingredient) String() string {
	return i.Name
}
