package models

import "time"

type Animal struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	TagNumber     string    `gorm:"size:30;uniqueIndex;not null" json:"tag_number"`
	Breed         string    `gorm:"size:50;not null" json:"breed"`
	DateOfBirth   time.Time `json:"date_of_birth"`
	Weight        float64   `json:"weight"` // kg
	PurchasePrice float64   `json:"purchase_price"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// AgeYears derives the age from the birth date, shown as "N Years" in listings.
func (a Animal) AgeYears(now time.Time) int {
	years := now.Year() - a.DateOfBirth.Year()
	if years < 0 {
		return 0
	}
	return years
}
