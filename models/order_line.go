package models

// OrderLine is one normalized row of an order. MenuItemID and Category are
// resolved and snapshotted at admission time, so cap calculations over old
// orders never have to re-resolve against a catalog that may have changed.
type OrderLine struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	OrderID uint `gorm:"not null;index" json:"order_id"`
	// Omitting Order field from JSON to avoid recursive nesting
	Order      Order  `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	MenuItemID uint   `gorm:"not null;index" json:"menu_item_id"`
	Name       string `gorm:"type:varchar(255);not null" json:"name"`
	Quantity   int    `gorm:"not null" json:"quantity"`
	Category   string `gorm:"type:varchar(50);index" json:"category,omitempty"`
}
