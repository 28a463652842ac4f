package main

import (
	"fmt"
	"net/http"

	"github.com/presensia/presensi-backend-go/internal/config"
	appHTTP "github.com/presensia/presensi-backend-go/internal/handler/http"
	"github.com/presensia/presensi-backend-go/internal/pkg/clock"
	"github.com/presensia/presensi-backend-go/internal/pkg/database"
	"github.com/presensia/presensi-backend-go/internal/pkg/jwt"
	"github.com/presensia/presensi-backend-go/internal/pkg/relay"
	"github.com/presensia/presensi-backend-go/internal/repository/postgresql"
	attendanceService "github.com/presensia/presensi-backend-go/internal/service/attendance"
	authService "github.com/presensia/presensi-backend-go/internal/service/auth"
	dashboardService "github.com/presensia/presensi-backend-go/internal/service/dashboard"
	deviceService "github.com/presensia/presensi-backend-go/internal/service/device"
	employeeService "github.com/presensia/presensi-backend-go/internal/service/employee"
	"github.com/presensia/presensi-backend-go/internal/service/gateway"
	leaveService "github.com/presensia/presensi-backend-go/internal/service/leave"
	"github.com/presensia/presensi-backend-go/internal/service/master"
	unknownSerialService "github.com/presensia/presensi-backend-go/internal/service/unknownserial"
	userService "github.com/presensia/presensi-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	// Repositories
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	deviceRepo := postgresql.NewDeviceRepository(db)
	unknownSerialRepo := postgresql.NewUnknownSerialRepository(db)
	officeRepo := postgresql.NewOfficeRepository(db)
	divisionRepo := postgresql.NewDivisionRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	userRepo := postgresql.NewUserRepository(db)

	// Infrastructure
	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	systemClock := clock.System()

	var notifier relay.Notifier = relay.NopNotifier{}
	if cfg.Relay.AckURL != "" {
		notifier = relay.NewHTTPNotifier(cfg.Relay.AckURL, cfg.Relay.Origin)
	}

	// Services
	engine := attendanceService.NewEngine(attendanceRepo, attendanceService.EngineOptions{
		EnforceDeviceConsistency: cfg.Attendance.EnforceDeviceConsistency,
	})
	eventGateway := gateway.NewGateway(deviceRepo, employeeRepo, unknownSerialRepo, engine, notifier, systemClock)

	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo)
	authSvc := authService.NewAuthService(userRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, unknownSerialRepo)
	deviceSvc := deviceService.NewDeviceService(deviceRepo)
	unknownSerialSvc := unknownSerialService.NewService(unknownSerialRepo)
	officeSvc := master.NewOfficeService(officeRepo)
	divisionSvc := master.NewDivisionService(divisionRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, employeeRepo)
	dashboardSvc := dashboardService.NewDashboardService(attendanceRepo, employeeRepo, leaveRepo)
	userSvc := userService.NewUserService(userRepo)

	// Handlers
	handlers := appHTTP.Handlers{
		Auth:          appHTTP.NewAuthHandler(authSvc, jwtService),
		Monitor:       appHTTP.NewMonitorHandler(eventGateway, systemClock),
		Attendance:    appHTTP.NewAttendanceHandler(attendanceSvc, eventGateway, systemClock),
		Employee:      appHTTP.NewEmployeeHandler(employeeSvc),
		Device:        appHTTP.NewDeviceHandler(deviceSvc),
		UnknownSerial: appHTTP.NewUnknownSerialHandler(unknownSerialSvc),
		Master:        appHTTP.NewMasterHandler(officeSvc, divisionSvc),
		Leave:         appHTTP.NewLeaveHandler(leaveSvc),
		Dashboard:     appHTTP.NewDashboardHandler(dashboardSvc),
		User:          appHTTP.NewUserHandler(userSvc),
	}

	router := appHTTP.NewRouter(cfg, jwtService, handlers)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Server listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
