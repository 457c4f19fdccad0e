package models

// Rating is a single user's 1-5 score for a store. The composite unique
// index is the race guard for concurrent first submissions: two creates for
// the same pair can both pass the existence check, the second fails here.
type Rating struct {
	BaseModel
	UserID  uint `gorm:"not null;uniqueIndex:idx_ratings_user_store" json:"userId"`
	StoreID uint `gorm:"not null;uniqueIndex:idx_ratings_user_store" json:"storeId"`
	Value   int  `gorm:"not null;check:value >= 1 AND value <= 5" json:"rating"`

	// Relations
	User  User  `gorm:"foreignKey:UserID" json:"-"`
	Store Store `gorm:"foreignKey:StoreID" json:"-"`
}
