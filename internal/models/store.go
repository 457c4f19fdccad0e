package models

type Store struct {
	BaseModel
	Name    string `gorm:"type:varchar(100);not null" json:"name"`
	Email   string `gorm:"type:varchar(120);uniqueIndex;not null" json:"email"`
	Address string `gorm:"type:varchar(400);not null" json:"address"`
	OwnerID *uint  `gorm:"index" json:"ownerId"`

	// Relations
	Owner   *User    `gorm:"foreignKey:OwnerID" json:"-"`
	Ratings []Rating `gorm:"foreignKey:StoreID" json:"-"`
}
