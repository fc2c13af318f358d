package service

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"worktrack/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.Role{}, &model.User{}, &model.Group{}, &model.UserGroup{},
		&model.WorkDayRecord{}, &model.Activity{},
	))

	roles := []model.Role{
		{ID: model.RoleAdmin, Name: "ADMIN"},
		{ID: model.RoleManager, Name: "MANAGER"},
		{ID: model.RoleEmployee, Name: "EMPLOYEE"},
	}
	require.NoError(t, db.Create(&roles).Error)
	return db
}

func seedUser(t *testing.T, db *gorm.DB, name, email, password string, roleID int, active bool) *model.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u := &model.User{
		FullName:     name,
		Email:        email,
		PasswordHash: string(hash),
		RoleID:       roleID,
		IsActive:     active,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}
