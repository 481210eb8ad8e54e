package models

import "time"

const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
)

type Order struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	TableID     uint        `gorm:"not null;index" json:"table_id"`
	Status      string      `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	CreatedAt   time.Time   `gorm:"not null;index" json:"created_at"`
	CompletedAt *time.Time  `json:"completed_at,omitempty"`
	Lines       []OrderLine `gorm:"foreignKey:OrderID" json:"items"`
}
