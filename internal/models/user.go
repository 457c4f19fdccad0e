package models

type User struct {
	BaseModel
	Name         string   `gorm:"type:varchar(60);not null" json:"name"`
	Email        string   `gorm:"type:varchar(120);uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Address      string   `gorm:"type:varchar(400);not null" json:"address"`
	Role         UserRole `gorm:"type:varchar(20);not null;default:'USER'" json:"role"`

	// Relations
	OwnedStores []Store  `gorm:"foreignKey:OwnerID" json:"-"`
	Ratings     []Rating `gorm:"foreignKey:UserID" json:"-"`
}
