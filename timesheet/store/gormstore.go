package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"timesheet.app/timesheet/timesheet/core"
	"timesheet.app/timesheet/timesheet/model"
)

// GormStore keeps drafts in the week_drafts table.
type GormStore struct {
	dm *DatabaseManager
}

// NewGormStore migrates the draft table and returns the store.
func NewGormStore(ctx context.Context, dm *DatabaseManager) (*GormStore, error) {
	err := dm.Exec(ctx, func(db *gorm.DB) error {
		return db.AutoMigrate(&model.WeekDraft{})
	})
	if err != nil {
		return nil, err
	}
	return &GormStore{dm: dm}, nil
}

func (s *GormStore) Load(ctx context.Context, employeeID int, monday string) (*core.WeekEditor, error) {
	var draft model.WeekDraft
	err := s.dm.Exec(ctx, func(db *gorm.DB) error {
		return db.Where("employee_id = ? AND monday = ?", employeeID, monday).First(&draft).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrDraftNotFound
	}
	if err != nil {
		return nil, err
	}
	return decodeEditor([]byte(draft.State))
}

func (s *GormStore) Save(ctx context.Context, editor *core.WeekEditor) error {
	state, err := json.Marshal(editor)
	if err != nil {
		return err
	}
	draft := model.WeekDraft{
		EmployeeID: editor.EmployeeID,
		Monday:     editor.Monday,
		State:      string(state),
		UpdatedAt:  time.Now(),
	}
	return s.dm.Exec(ctx, func(db *gorm.DB) error {
		return db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "employee_id"}, {Name: "monday"}},
			DoUpdates: clause.AssignmentColumns([]string{"state", "updated_at"}),
		}).Create(&draft).Error
	})
}

func (s *GormStore) Delete(ctx context.Context, employeeID int, monday string) error {
	return s.dm.Exec(ctx, func(db *gorm.DB) error {
		return db.Where("employee_id = ? AND monday = ?", employeeID, monday).Delete(&model.WeekDraft{}).Error
	})
}
