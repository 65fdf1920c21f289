package models

import "time"

// ContactInfo est une table singleton : au plus une ligne, créée si absente
// sinon mise à jour.
type ContactInfo struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CompanyName string    `gorm:"not null" json:"company_name"`
	Email       string    `gorm:"not null" json:"email"`
	Phone       string    `gorm:"not null" json:"phone"`
	Address     string    `gorm:"not null" json:"address"`
	City        string    `json:"city"`
	State       string    `json:"state"`
	ZipCode     string    `json:"zip_code"`
	Country     string    `json:"country"`
	Website     string    `json:"website"`
	UpdatedAt   time.Time `json:"updated_at"`
}
