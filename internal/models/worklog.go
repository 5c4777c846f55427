package models

import "time"

// WorkLog 一条工时记录。
// Hours 由出发/回家时间推算，也允许手工覆盖；ActualHours 是实际有效工时，
// 统计时优先用 ActualHours，为零再退回 Hours。
type WorkLog struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"index;not null" json:"user_id"`
	ProjectID   *uint     `gorm:"index" json:"project_id"`
	Date        string    `gorm:"size:10;index;not null" json:"date"` // YYYY-MM-DD
	StartTime   string    `gorm:"size:5" json:"start_time"`           // HH:MM
	EndTime     string    `gorm:"size:5" json:"end_time"`
	Hours       float64   `json:"hours"`
	ActualHours float64   `json:"actual_hours"`
	Location    string    `gorm:"size:128" json:"location"`
	Note        string    `gorm:"size:255" json:"note"`
	IsHoliday   bool      `gorm:"default:false" json:"is_holiday"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// EffectiveHours 统计口径：实际工时优先，其次推算工时
func (w *WorkLog) EffectiveHours() float64 {
	if w.ActualHours != 0 {
		return w.ActualHours
	}
	return w.Hours
}
