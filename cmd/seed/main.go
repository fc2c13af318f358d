// Seed provisions the fixed roles and a starter set of accounts. Safe to run
// once against an empty database; reruns stop at the first duplicate.
package main

import (
	"flag"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"

	"worktrack/internal/config"
	"worktrack/internal/logger"
	"worktrack/internal/model"
)

func main() {
	configFile := flag.String("config", "etc/config-dev.yaml", "config file")
	password := flag.String("password", "", "initial password for seeded accounts (or SEED_PASSWORD)")
	flag.Parse()

	logger.Init(config.LogConfig{Level: "info", Console: true})

	if *password == "" {
		*password = os.Getenv("SEED_PASSWORD")
	}
	if *password == "" {
		log.Fatal("seed password required (-password or SEED_PASSWORD)")
	}

	cfg := config.Load(*configFile)
	db, err := cfg.OpenGormDB()
	if err != nil {
		log.Fatal("db connect failed: ", err)
	}

	if err := db.AutoMigrate(
		&model.Role{}, &model.User{}, &model.Group{}, &model.UserGroup{},
		&model.WorkDayRecord{}, &model.Activity{},
	); err != nil {
		log.Fatal("migrate failed: ", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("hash failed: ", err)
	}

	roles := []model.Role{
		{ID: model.RoleAdmin, Name: "ADMIN"},
		{ID: model.RoleManager, Name: "MANAGER"},
		{ID: model.RoleEmployee, Name: "EMPLOYEE"},
	}
	users := []model.User{
		{FullName: "System Administrator", Email: "admin@example.com", PasswordHash: string(hash), RoleID: model.RoleAdmin, IsActive: true},
		{FullName: "Team Manager", Email: "manager@example.com", PasswordHash: string(hash), RoleID: model.RoleManager, IsActive: true},
		{FullName: "First Employee", Email: "employee@example.com", PasswordHash: string(hash), RoleID: model.RoleEmployee, IsActive: true},
	}

	if err := db.Create(&roles).Error; err != nil {
		log.Fatal("seed roles failed: ", err)
	}
	if err := db.Create(&users).Error; err != nil {
		log.Fatal("seed users failed: ", err)
	}

	log.Println("seeded roles and", len(users), "users")
}
