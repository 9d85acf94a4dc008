package http

import (
	"log/slog"
	"os"

	"github.com/dayflow-hq/dayflow-backend-go/internal/config"
	"github.com/dayflow-hq/dayflow-backend-go/internal/handler/http/middleware"
	"github.com/dayflow-hq/dayflow-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type Handlers struct {
	Auth       AuthHandler
	Attendance AttendanceHandler
	Leave      LeaveHandler
	Payroll    PayrollHandler
	Employee   EmployeeHandler
	Profile    ProfileHandler
	Dashboard  DashboardHandler
	Report     ReportHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "dayflow"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  cfg.App.SlogLevel(),
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Auth.Register)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
			r.Route("/oauth/callback", func(r chi.Router) {
				r.Get("/google", h.Auth.OAuthCallbackGoogle)
			})

			r.Route("/login", func(r chi.Router) {
				r.Post("/", h.Auth.Login)
				r.Route("/oauth", func(r chi.Router) {
					r.Get("/google", h.Auth.LoginWithGoogle)
				})
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Get("/auth/me", h.Auth.Me)

			r.Route("/profile", func(r chi.Router) {
				r.Get("/", h.Profile.GetMine)
				r.Patch("/contact", h.Profile.UpdateContactInfo)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/check-in", h.Attendance.CheckIn)
				r.Post("/check-out", h.Attendance.CheckOut)
				r.Get("/today", h.Attendance.Today)
				r.Get("/my", h.Attendance.MyMonth)

				// HR/Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.HrOrAdminOnly)
					r.Get("/", h.Attendance.AllMonth)
				})
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Post("/", h.Leave.Create)
				r.Get("/my", h.Leave.MyRequests)
				r.Get("/balance", h.Leave.Balance)

				// HR/Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.HrOrAdminOnly)
					r.Get("/", h.Leave.AllRequests)
					r.Post("/{id}/approve", h.Leave.Approve)
					r.Post("/{id}/reject", h.Leave.Reject)
				})
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/my", h.Payroll.MyPayroll)
				r.Get("/{id}/slip", h.Payroll.DownloadSlip)

				// HR/Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.HrOrAdminOnly)
					r.Get("/", h.Payroll.AllPayroll)
				})
			})

			// HR/Admin only pages
			r.Route("/employees", func(r chi.Router) {
				r.Use(middleware.HrOrAdminOnly)
				r.Get("/", h.Employee.List)
				r.Get("/departments", h.Employee.Departments)
				r.Get("/{id}", h.Employee.Get)
				r.Patch("/{id}/job", h.Employee.UpdateJobInfo)
			})

			r.Route("/dashboard", func(r chi.Router) {
				r.Get("/", h.Dashboard.Employee)

				r.Group(func(r chi.Router) {
					r.Use(middleware.HrOrAdminOnly)
					r.Get("/admin", h.Dashboard.Admin)
				})
			})

			r.Route("/reports", func(r chi.Router) {
				r.Use(middleware.HrOrAdminOnly)
				r.Get("/overview", h.Report.Overview)
			})
		})
	})

	return r
}
