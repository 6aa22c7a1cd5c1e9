package models

import (
	"time"
)

// MenuItem is a catalog entry. The id is assigned by the create
// handler (max existing id + 1), not by AUTO_INCREMENT, so lookups by
// path parameter and the stored primary key always agree.
type MenuItem struct {
	ID          int       `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Name        string    `json:"name" gorm:"size:255;not null"`
	Category    string    `json:"category" gorm:"size:100;not null;index"`
	Price       float64   `json:"price" gorm:"not null"`
	Calories    float64   `json:"calories"`
	Ingredients []string  `json:"ingredients" gorm:"serializer:json"`
	Description string    `json:"description" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName sets the table name.
func (MenuItem) TableName() string {
	return "menus"
}

// MenuSummary is the projection returned by the group-by-category
// report in list mode.
type MenuSummary struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
}

// Summary returns the reduced projection of an item.
func (m MenuItem) Summary() MenuSummary {
	return MenuSummary{
		ID:       m.ID,
		Name:     m.Name,
		Category: m.Category,
		Price:    m.Price,
	}
}
