package model

import "time"

// WeekDraft stores the serialized editor state of one employee week.
type WeekDraft struct {
	ID         uint      `gorm:"primaryKey;autoIncrement"`
	EmployeeID int       `gorm:"column:employee_id;uniqueIndex:idx_draft_employee_week"`
	Monday     string    `gorm:"column:monday;size:10;uniqueIndex:idx_draft_employee_week"`
	State      string    `gorm:"column:state;type:text"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (WeekDraft) TableName() string {
	return "week_drafts"
}
