package models

import "time"

type Employee struct {
	EmployeeCode   string         `gorm:"primaryKey;size:50" json:"employee_code"`
	EmployeeName   string         `gorm:"size:100;not null" json:"employee_name"`
	EmployeeNumber string         `gorm:"size:20;not null" json:"employee_number"` // phone / contact
	Salary         float64        `json:"salary"`
	Address        string         `gorm:"size:250;not null" json:"address"`
	Tasks          []EmployeeTask `gorm:"foreignKey:EmployeeCode;constraint:OnDelete:CASCADE" json:"tasks,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}
