package models

import "time"

// Project 工程项目，工时记录可以挂在项目下
type Project struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"index;not null" json:"user_id"`
	Name         string    `gorm:"size:64;not null" json:"name"`
	Location     string    `gorm:"size:128" json:"location"`
	PlannedStart string    `gorm:"size:10" json:"planned_start"` // YYYY-MM-DD
	PlannedEnd   string    `gorm:"size:10" json:"planned_end"`
	ActualStart  string    `gorm:"size:10" json:"actual_start"`
	ActualEnd    string    `gorm:"size:10" json:"actual_end"`
	Note         string    `gorm:"size:255" json:"note"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
