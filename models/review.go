package models

import "time"

// ServerNames is the fixed staff roster a review must reference.
var ServerNames = []string{"Linh", "Nhan", "Ben", "Tin", "Samantha", "Brandon", "Corey"}

func IsKnownServer(name string) bool {
	for _, s := range ServerNames {
		if s == name {
			return true
		}
	}
	return false
}

type Review struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CustomerName string    `gorm:"type:varchar(255);not null" json:"customer_name"`
	ServerName   string    `gorm:"type:varchar(100);not null" json:"server_name"`
	Rating       int       `gorm:"not null" json:"rating"`
	Comment      string    `gorm:"type:text" json:"comment,omitempty"`
	TableID      *uint     `json:"table_id,omitempty"`
	CreatedAt    time.Time `gorm:"not null;index" json:"created_at"`
}
