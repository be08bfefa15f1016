package models

import "time"

// EmployeeTask: one assignment of a master-list task to an (employee, animal)
// pair. A task name may be held by at most one employee per animal; the
// reconciliation logic in internal/tasks enforces that on every write.
type EmployeeTask struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	EmployeeCode string    `gorm:"size:50;index;not null" json:"employee_code"`
	AnimalID     uint      `gorm:"index;not null" json:"animal_id"`
	Animal       *Animal   `json:"animal,omitempty"`
	TaskName     string    `gorm:"size:100;not null" json:"task_name"`
	AssignedAt   time.Time `gorm:"autoCreateTime" json:"assigned_at"`
}
