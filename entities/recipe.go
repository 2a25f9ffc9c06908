package entities

type Recipe struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	UserID      uint    `gorm:"not null;index" json:"user_id"`
	Title       string  `gorm:"not null" json:"title"`
	TimeMinutes int     `json:"time_minutes"`
	Cost        float64 `gorm:"type:numeric(8,2)" json:"cost"`
	ImageURL    string  `json:"image_url,omitempty"`

	Tags        []Tag        `gorm:"many2many:recipe_tags" json:"tags"`
	Ingredients []Ingredient `gorm:"many2many:recipe_ingredients" json:"ingredients"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
	Timestamp
}

func (r Recipe) String() string {
	return r.Title
}
