package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"worktrack/internal/auth"
	"worktrack/internal/config"
	"worktrack/internal/handler"
	"worktrack/internal/logger"
	"worktrack/internal/middleware"
	"worktrack/internal/service"
)

func main() {
	configFile := flag.String("config", "", "config file path (e.g. etc/config-dev.yaml)")
	flag.Parse()

	cfg := config.Load(*configFile)
	logger.Init(cfg.Log)

	if cfg.Auth.Secret == "" {
		slog.Error("missing auth secret (AUTH_SECRET or auth.secret)")
		os.Exit(1)
	}

	db, err := cfg.OpenGormDB()
	if err != nil {
		slog.Error("db connect failed", "err", err)
		os.Exit(1)
	}

	tokens := auth.NewTokenService(cfg.Auth.Secret)
	authSvc := service.NewAuthService(db)
	workdaySvc := service.NewWorkDayService(db)
	activitySvc := service.NewActivityService(db, workdaySvc)
	dirSvc := service.NewDirectoryService(db)

	authH := handler.NewAuthHandler(authSvc, tokens, cfg.Production())
	attendanceH := handler.NewAttendanceHandler(workdaySvc)
	activityH := handler.NewActivityHandler(activitySvc)
	adminH := handler.NewAdminHandler(dirSvc, activitySvc)
	teamH := handler.NewTeamHandler(dirSvc)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))
	r.Use(middleware.Gatekeeper())

	r.POST("/api/auth/login", authH.Login)
	r.POST("/api/auth/register", authH.Register)
	r.POST("/api/auth/logout", authH.Logout)
	r.GET("/api/auth/me", authH.Me)

	api := r.Group("/api", middleware.RequireAuth(tokens))
	api.GET("/activities", activityH.List)
	api.POST("/activities", activityH.Create)
	api.DELETE("/activities", activityH.Delete)
	api.GET("/activities/export", activityH.Export)
	api.POST("/attendance/check-in", attendanceH.CheckIn)
	api.POST("/attendance/check-out", attendanceH.CheckOut)
	api.GET("/attendance/today", attendanceH.Today)

	api.GET("/admin/users", adminH.ListUsers)
	api.POST("/admin/users", adminH.CreateUser)
	api.PATCH("/admin/users", adminH.ChangeRole)
	api.DELETE("/admin/users", adminH.DeleteUser)
	api.GET("/admin/activities", adminH.ListActivities)
	api.POST("/admin/activities", adminH.CreateActivity)
	api.PATCH("/admin/activities", adminH.UpdateActivity)
	api.DELETE("/admin/activities", adminH.DeleteActivities)
	api.GET("/team/users", teamH.ListMembers)

	slog.Info("server starting", "addr", cfg.Addr(), "env", cfg.Server.Env)
	if err := r.Run(cfg.Addr()); err != nil {
		slog.Error("server failed", "err", err)
	}
}
