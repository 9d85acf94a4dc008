package main

import (
	"fmt"
	"net/http"

	"github.com/dayflow-hq/dayflow-backend-go/internal/config"
	appHTTP "github.com/dayflow-hq/dayflow-backend-go/internal/handler/http"
	"github.com/dayflow-hq/dayflow-backend-go/internal/pkg/database"
	"github.com/dayflow-hq/dayflow-backend-go/internal/pkg/jwt"
	"github.com/dayflow-hq/dayflow-backend-go/internal/pkg/oauth"
	"github.com/dayflow-hq/dayflow-backend-go/internal/repository/postgresql"
	attendanceService "github.com/dayflow-hq/dayflow-backend-go/internal/service/attendance"
	authService "github.com/dayflow-hq/dayflow-backend-go/internal/service/auth"
	dashboardService "github.com/dayflow-hq/dayflow-backend-go/internal/service/dashboard"
	employeeService "github.com/dayflow-hq/dayflow-backend-go/internal/service/employee"
	leaveService "github.com/dayflow-hq/dayflow-backend-go/internal/service/leave"
	payrollService "github.com/dayflow-hq/dayflow-backend-go/internal/service/payroll"
	reportService "github.com/dayflow-hq/dayflow-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), cfg.Database.MaxConns, cfg.Database.MinConns)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	profileRepo := postgresql.NewProfileRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleSvc := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)

	authSvc := authService.NewAuthService(db, userRepo, profileRepo, jwtSvc, googleSvc)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRequestRepo, cfg.Leave.AnnualAllotment)
	payrollSvc := payrollService.NewPayrollService(payrollRepo, profileRepo)
	employeeSvc := employeeService.NewEmployeeService(profileRepo)
	profileSvc := employeeService.NewProfileService(profileRepo)
	dashboardSvc := dashboardService.NewDashboardService(attendanceRepo, leaveRequestRepo, profileRepo, payrollRepo, leaveSvc)
	reportSvc := reportService.NewReportService(attendanceRepo, leaveRequestRepo)

	router := appHTTP.NewRouter(cfg, jwtSvc, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(jwtSvc, authSvc, googleSvc, cfg.App.FrontendURL),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Leave:      appHTTP.NewLeaveHandler(leaveSvc),
		Payroll:    appHTTP.NewPayrollHandler(payrollSvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Profile:    appHTTP.NewProfileHandler(profileSvc),
		Dashboard:  appHTTP.NewDashboardHandler(dashboardSvc),
		Report:     appHTTP.NewReportHandler(reportSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
