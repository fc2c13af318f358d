package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"worktrack/internal/apperr"
	"worktrack/internal/model"
)

type DirectoryService struct{ db *gorm.DB }

func NewDirectoryService(db *gorm.DB) *DirectoryService { return &DirectoryService{db: db} }

// ListUsers returns every user ordered by id.
func (s *DirectoryService) ListUsers(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := s.db.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	return users, nil
}

func (s *DirectoryService) CreateUser(ctx context.Context, req model.CreateUserRequest) (*model.User, error) {
	fullName := strings.TrimSpace(req.FullName)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if fullName == "" || email == "" || req.Password == "" || req.RoleID == 0 {
		return nil, apperr.Validation("fullName, email, password and roleId are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := model.User{
		FullName:     fullName,
		Email:        email,
		PasswordHash: string(hash),
		RoleID:       req.RoleID,
		IsActive:     true,
	}
	err = s.db.WithContext(ctx).Create(&u).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, fmt.Errorf("email taken: %w", apperr.ErrAlreadyExists)
	}
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return &u, nil
}

func (s *DirectoryService) ChangeRole(ctx context.Context, userID, roleID int) error {
	if userID == 0 || roleID == 0 {
		return apperr.Validation("userId and roleId are required")
	}
	res := s.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", userID).Update("role_id", roleID)
	if res.Error != nil {
		return fmt.Errorf("update role: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("user %d: %w", userID, apperr.ErrNotFound)
	}
	return nil
}

// DeleteUser removes a user. Deleting the calling account is rejected.
func (s *DirectoryService) DeleteUser(ctx context.Context, targetID, callerID int) error {
	if targetID == 0 {
		return apperr.Validation("userId is required")
	}
	if targetID == callerID {
		return apperr.ErrSelfDelete
	}
	res := s.db.WithContext(ctx).Delete(&model.User{}, targetID)
	if res.Error != nil {
		return fmt.Errorf("delete user: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("user %d: %w", targetID, apperr.ErrNotFound)
	}
	return nil
}

// Team resolves a manager's team: active EMPLOYEE users sharing at least one
// group with the manager, ordered by name. A manager with no groups has an
// empty team.
func (s *DirectoryService) Team(ctx context.Context, managerID int) ([]model.User, error) {
	var groupIDs []int
	if err := s.db.WithContext(ctx).Model(&model.UserGroup{}).
		Where("user_id = ?", managerID).
		Pluck("group_id", &groupIDs).Error; err != nil {
		return nil, fmt.Errorf("query manager groups: %w", err)
	}
	if len(groupIDs) == 0 {
		return []model.User{}, nil
	}

	var members []model.User
	err := s.db.WithContext(ctx).
		Distinct("users.*").
		Joins("JOIN user_groups ON user_groups.user_id = users.id").
		Where("user_groups.group_id IN ?", groupIDs).
		Where("users.is_active = ?", true).
		Where("users.role_id = ?", model.RoleEmployee).
		Order("users.full_name").
		Find(&members).Error
	if err != nil {
		return nil, fmt.Errorf("query team: %w", err)
	}
	return members, nil
}

// RoleOf returns the role id stored for the user, the authoritative source
// for role checks regardless of what the token claims.
func (s *DirectoryService) RoleOf(ctx context.Context, userID int) (int, error) {
	var u model.User
	err := s.db.WithContext(ctx).Select("id", "role_id", "is_active").First(&u, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, fmt.Errorf("user %d: %w", userID, apperr.ErrNotFound)
	}
	if err != nil {
		return 0, fmt.Errorf("query user: %w", err)
	}
	if !u.IsActive {
		return 0, apperr.ErrForbidden
	}
	return u.RoleID, nil
}
