package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"worktrack/internal/apperr"
	"worktrack/internal/model"
)

type WorkDayService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewWorkDayService(db *gorm.DB) *WorkDayService {
	return &WorkDayService{db: db, now: time.Now}
}

func (s *WorkDayService) today() string {
	return s.now().Format("2006-01-02")
}

// FindOrCreate returns the single day record for (userID, date), inserting
// it on first use. Two concurrent first-writes race on the unique
// (user_id, work_date) index: the loser's insert fails with a duplicate-key
// error and we re-select the winner's row instead of surfacing it.
func (s *WorkDayService) FindOrCreate(ctx context.Context, userID int, date string) (*model.WorkDayRecord, error) {
	var rec model.WorkDayRecord
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND work_date = ?", userID, date).
		First(&rec).Error
	if err == nil {
		return &rec, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("query work day: %w", err)
	}

	rec = model.WorkDayRecord{UserID: userID, WorkDate: date}
	err = s.db.WithContext(ctx).Create(&rec).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// lost the race, the row exists now
		rec = model.WorkDayRecord{}
		if err := s.db.WithContext(ctx).
			Where("user_id = ? AND work_date = ?", userID, date).
			First(&rec).Error; err != nil {
			return nil, fmt.Errorf("reread work day: %w", err)
		}
		return &rec, nil
	}
	if err != nil {
		return nil, fmt.Errorf("insert work day: %w", err)
	}
	return &rec, nil
}

// Find returns the day record for (userID, date) or nil when none exists.
func (s *WorkDayService) Find(ctx context.Context, userID int, date string) (*model.WorkDayRecord, error) {
	var rec model.WorkDayRecord
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND work_date = ?", userID, date).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query work day: %w", err)
	}
	return &rec, nil
}

// CheckIn records today's check-in. A second check-in on the same day is a
// conflict. A record that exists without a check-in (created earlier by an
// activity write) gets its check-in filled in.
func (s *WorkDayService) CheckIn(ctx context.Context, userID int) (*model.WorkDayRecord, error) {
	date := s.today()
	rec, err := s.Find(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	if rec != nil && rec.CheckIn != nil {
		return nil, apperr.ErrAlreadyCheckedIn
	}

	now := s.now()
	if rec == nil {
		created := model.WorkDayRecord{UserID: userID, WorkDate: date, CheckIn: &now}
		if err := s.db.WithContext(ctx).Create(&created).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, apperr.ErrAlreadyCheckedIn
			}
			return nil, fmt.Errorf("insert work day: %w", err)
		}
		return &created, nil
	}

	if err := s.db.WithContext(ctx).Model(rec).Update("check_in", &now).Error; err != nil {
		return nil, fmt.Errorf("update check-in: %w", err)
	}
	rec.CheckIn = &now
	return rec, nil
}

// CheckOut records today's check-out; requires a prior check-in and rejects
// a second check-out.
func (s *WorkDayService) CheckOut(ctx context.Context, userID int) (*model.WorkDayRecord, error) {
	rec, err := s.Find(ctx, userID, s.today())
	if err != nil {
		return nil, err
	}
	if rec == nil || rec.CheckIn == nil {
		return nil, apperr.ErrNoCheckIn
	}
	if rec.CheckOut != nil {
		return nil, apperr.ErrAlreadyCheckedOut
	}

	now := s.now()
	if err := s.db.WithContext(ctx).Model(rec).Update("check_out", &now).Error; err != nil {
		return nil, fmt.Errorf("update check-out: %w", err)
	}
	rec.CheckOut = &now
	return rec, nil
}

// Today returns today's record for the user, nil when none exists.
func (s *WorkDayService) Today(ctx context.Context, userID int) (*model.WorkDayRecord, error) {
	return s.Find(ctx, userID, s.today())
}
