package entities

type Tag struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	UserID uint   `gorm:"not null;index" json:"user_id"`
	Name   string `gorm:"not null" json:"name"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
	Timestamp
}

func (t Tag) String() string {
	return t.Name
}
