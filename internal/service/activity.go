package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"worktrack/internal/apperr"
	"worktrack/internal/model"
)

type ActivityService struct {
	db       *gorm.DB
	workdays *WorkDayService
}

func NewActivityService(db *gorm.DB, workdays *WorkDayService) *ActivityService {
	return &ActivityService{db: db, workdays: workdays}
}

// normalizeTime pads "HH:MM" to "HH:MM:SS"; full values pass through.
func normalizeTime(t string) string {
	if len(t) == 5 {
		return t + ":00"
	}
	return t
}

// List returns the user's activities for a date ordered by start time.
// A date with no day record yields an empty slice, not an error.
func (s *ActivityService) List(ctx context.Context, userID int, date string) ([]model.Activity, error) {
	if date == "" {
		return nil, apperr.Validation("date is required")
	}
	rec, err := s.workdays.Find(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return []model.Activity{}, nil
	}

	var rows []model.Activity
	if err := s.db.WithContext(ctx).
		Where("work_day_id = ?", rec.ID).
		Order("start_time").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("query activities: %w", err)
	}
	return rows, nil
}

// Create validates and inserts an activity, lazily creating the owning day
// record. End <= start is accepted; the source system never rejected it.
func (s *ActivityService) Create(ctx context.Context, userID int, req model.CreateActivityRequest) (*model.Activity, error) {
	if req.Date == "" || req.Title == "" || req.StartTime == "" || req.EndTime == "" {
		return nil, apperr.Validation("date, title, startTime and endTime are required")
	}

	rec, err := s.workdays.FindOrCreate(ctx, userID, req.Date)
	if err != nil {
		return nil, err
	}

	a := model.Activity{
		WorkDayID:   rec.ID,
		Title:       req.Title,
		Description: req.Description,
		StartTime:   normalizeTime(req.StartTime),
		EndTime:     normalizeTime(req.EndTime),
	}
	if err := s.db.WithContext(ctx).Create(&a).Error; err != nil {
		return nil, fmt.Errorf("insert activity: %w", err)
	}
	return &a, nil
}

// Update applies only the supplied fields. An empty patch is a client error;
// an unknown id is NotFound.
func (s *ActivityService) Update(ctx context.Context, id int, patch model.UpdateActivityPatch) (*model.Activity, error) {
	updates := map[string]interface{}{}
	if patch.Title != nil && *patch.Title != "" {
		updates["title"] = *patch.Title
	}
	if patch.Description != nil {
		if *patch.Description == "" {
			updates["description"] = nil
		} else {
			updates["description"] = *patch.Description
		}
	}
	if patch.StartTime != nil {
		updates["start_time"] = normalizeTime(*patch.StartTime)
	}
	if patch.EndTime != nil {
		updates["end_time"] = normalizeTime(*patch.EndTime)
	}
	if len(updates) == 0 {
		return nil, apperr.Validation("no fields to update")
	}

	var a model.Activity
	err := s.db.WithContext(ctx).First(&a, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("activity %d: %w", id, apperr.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("query activity: %w", err)
	}

	if err := s.db.WithContext(ctx).Model(&a).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("update activity: %w", err)
	}
	if err := s.db.WithContext(ctx).First(&a, id).Error; err != nil {
		return nil, fmt.Errorf("reread activity: %w", err)
	}
	return &a, nil
}

// Delete removes activities in bulk. Unknown ids are ignored; an empty id
// list is a client error.
func (s *ActivityService) Delete(ctx context.Context, ids []int) error {
	if len(ids) == 0 {
		return apperr.Validation("ids are required")
	}
	if err := s.db.WithContext(ctx).Delete(&model.Activity{}, ids).Error; err != nil {
		return fmt.Errorf("delete activities: %w", err)
	}
	return nil
}

// ListForExport loads a day's activities for calendar export, optionally
// restricted to an id subset. Ids outside the day are excluded silently.
// No day record at all is NotFound.
func (s *ActivityService) ListForExport(ctx context.Context, userID int, date string, ids []int) ([]model.Activity, error) {
	if date == "" {
		return nil, apperr.Validation("date is required")
	}
	rec, err := s.workdays.Find(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, fmt.Errorf("work day %s: %w", date, apperr.ErrNotFound)
	}

	q := s.db.WithContext(ctx).Where("work_day_id = ?", rec.ID)
	if len(ids) > 0 {
		q = q.Where("id IN ?", ids)
	}
	var rows []model.Activity
	if err := q.Order("start_time").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("query activities: %w", err)
	}
	return rows, nil
}
