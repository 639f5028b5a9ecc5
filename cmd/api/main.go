package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/workpulse/ems-backend/internal/config"
	appHTTP "github.com/workpulse/ems-backend/internal/handler/http"
	"github.com/workpulse/ems-backend/internal/pkg/database"
	"github.com/workpulse/ems-backend/internal/pkg/jwt"
	"github.com/workpulse/ems-backend/internal/pkg/migrate"
	"github.com/workpulse/ems-backend/internal/repository/postgresql"
	authService "github.com/workpulse/ems-backend/internal/service/auth"
	dashboardService "github.com/workpulse/ems-backend/internal/service/dashboard"
	employeeService "github.com/workpulse/ems-backend/internal/service/employee"
	leaveService "github.com/workpulse/ems-backend/internal/service/leave"
	reportService "github.com/workpulse/ems-backend/internal/service/report"
	taskService "github.com/workpulse/ems-backend/internal/service/task"
	timeclockService "github.com/workpulse/ems-backend/internal/service/timeclock"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	ctx := context.Background()
	dsn := cfg.DatabaseURL()

	if err := migrate.Up(ctx, dsn); err != nil {
		log.Fatal("Error running migrations: ", err)
	}

	db, err := database.NewPostgreSQLDB(ctx, dsn)
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	workSessionRepo := postgresql.NewWorkSessionRepository(db)
	breakSessionRepo := postgresql.NewBreakSessionRepository(db)
	taskRepo := postgresql.NewTaskRepository(db)
	taskSessionRepo := postgresql.NewTaskSessionRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	transactor := postgresql.NewTransactor(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiration)
	resolver := timeclockService.NewStatusResolver(workSessionRepo, breakSessionRepo, taskRepo, taskSessionRepo)

	taskSvc := taskService.NewService(transactor, resolver, taskRepo, taskSessionRepo)
	timeclockSvc := timeclockService.NewService(transactor, resolver, workSessionRepo, breakSessionRepo, taskSvc)
	reportSvc := reportService.NewService(employeeRepo, workSessionRepo, breakSessionRepo, taskRepo, taskSessionRepo)
	dashboardSvc := dashboardService.NewService(timeclockSvc, taskSvc, reportSvc)
	authSvc := authService.NewService(employeeRepo, jwtService)
	leaveSvc := leaveService.NewService(leaveRequestRepo)
	employeeSvc := employeeService.NewService(employeeRepo)

	router := appHTTP.NewRouter(cfg, jwtService, appHTTP.Handlers{
		Auth:      appHTTP.NewAuthHandler(authSvc),
		Dashboard: appHTTP.NewDashboardHandler(dashboardSvc),
		Timeclock: appHTTP.NewTimeclockHandler(timeclockSvc),
		Task:      appHTTP.NewTaskHandler(taskSvc),
		Leave:     appHTTP.NewLeaveHandler(leaveSvc),
		Report:    appHTTP.NewReportHandler(reportSvc),
		Employee:  appHTTP.NewEmployeeHandler(employeeSvc),
	})

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	log.Println("Server listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server error: ", err)
	}
}
