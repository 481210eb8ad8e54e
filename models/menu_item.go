package models

import "time"

// Menu categories recognized by the order admission policy. Anything else
// ("Seafood", "Side", ...) is informational only.
const (
	CategoryMeat    = "Meat"
	CategorySpecial = "Special"
)

type MenuItem struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	Category    string    `gorm:"type:varchar(50);index" json:"category,omitempty"`
	Price       *float64  `gorm:"type:decimal(10,2)" json:"price,omitempty"`
	Image       string    `gorm:"type:varchar(500)" json:"image,omitempty"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}
