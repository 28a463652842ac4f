package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/presensia/presensi-backend-go/internal/config"
	"github.com/presensia/presensi-backend-go/internal/handler/http/middleware"
	"github.com/presensia/presensi-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth          AuthHandler
	Monitor       MonitorHandler
	Attendance    AttendanceHandler
	Employee      EmployeeHandler
	Device        DeviceHandler
	UnknownSerial UnknownSerialHandler
	Master        MasterHandler
	Leave         LeaveHandler
	Dashboard     DashboardHandler
	User          UserHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "presensi-backend"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-M2M-Origin"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		// The broker pushes scan notifications here; it cannot authenticate.
		r.Route("/monitor", func(r chi.Router) {
			r.Get("/", h.Monitor.GetMonitor)
			r.Post("/", h.Monitor.PostMonitor)
		})

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			// Operators and admins
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireOperator)

				r.Get("/dashboard", h.Dashboard.Summary)

				r.Route("/attendance", func(r chi.Router) {
					r.Get("/", h.Attendance.List)
					r.Get("/today", h.Attendance.Today)
					r.Get("/{id}", h.Attendance.Get)
					r.Post("/manual", h.Attendance.RecordManual)

					// Admin corrections only
					r.Group(func(r chi.Router) {
						r.Use(middleware.RequireAdmin)
						r.Put("/{id}", h.Attendance.Update)
					})
				})

				r.Route("/employees", func(r chi.Router) {
					r.Get("/", h.Employee.List)
					r.Get("/{id}", h.Employee.Get)

					r.Group(func(r chi.Router) {
						r.Use(middleware.RequireAdmin)
						r.Post("/", h.Employee.Create)
						r.Put("/{id}", h.Employee.Update)
						r.Delete("/{id}", h.Employee.Delete)
					})
				})

				r.Route("/leaves", func(r chi.Router) {
					r.Get("/", h.Leave.List)
					r.Get("/{id}", h.Leave.Get)

					r.Group(func(r chi.Router) {
						r.Use(middleware.RequireAdmin)
						r.Post("/", h.Leave.Create)
						r.Delete("/{id}", h.Leave.Delete)
					})
				})
			})

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin)

				r.Route("/devices", func(r chi.Router) {
					r.Get("/", h.Device.List)
					r.Post("/", h.Device.Create)
					r.Get("/{id}", h.Device.Get)
					r.Put("/{id}", h.Device.Update)
					r.Delete("/{id}", h.Device.Delete)
				})

				r.Route("/unknown-serials", func(r chi.Router) {
					r.Get("/", h.UnknownSerial.List)
					r.Put("/{id}", h.UnknownSerial.Review)
					r.Delete("/{id}", h.UnknownSerial.Delete)
				})

				r.Route("/offices", func(r chi.Router) {
					r.Get("/", h.Master.ListOffices)
					r.Post("/", h.Master.CreateOffice)
					r.Get("/{id}", h.Master.GetOffice)
					r.Put("/{id}", h.Master.UpdateOffice)
					r.Delete("/{id}", h.Master.DeleteOffice)
				})

				r.Route("/divisions", func(r chi.Router) {
					r.Get("/", h.Master.ListDivisions)
					r.Post("/", h.Master.CreateDivision)
					r.Get("/{id}", h.Master.GetDivision)
					r.Put("/{id}", h.Master.UpdateDivision)
					r.Delete("/{id}", h.Master.DeleteDivision)
				})

				r.Route("/users", func(r chi.Router) {
					r.Get("/", h.User.List)
					r.Post("/", h.User.Create)
					r.Get("/{id}", h.User.Get)
					r.Put("/{id}", h.User.Update)
					r.Delete("/{id}", h.User.Delete)
				})
			})
		})
	})

	return r
}
