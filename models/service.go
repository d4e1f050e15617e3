package models

type Service struct {
	ID              uint    `gorm:"primaryKey" json:"id"`
	Name            string  `gorm:"not null" json:"name"`
	Description     string  `json:"description"`
	Price           float64 `gorm:"type:decimal(10,2);not null" json:"price"`
	DurationMinutes int     `json:"duration_minutes"` // in minutes
	Category        string  `gorm:"default:'General'" json:"category"`
	IsActive        bool    `gorm:"default:true" json:"is_active"`
}
