package app

import (
	"database/sql"

	"github.com/danishbarkat/bytechsol-portal-sub000/internal/attendance"
	"github.com/danishbarkat/bytechsol-portal-sub000/internal/employee"
	"github.com/danishbarkat/bytechsol-portal-sub000/internal/leave"
	"github.com/danishbarkat/bytechsol-portal-sub000/internal/messaging/kafka"
	"github.com/danishbarkat/bytechsol-portal-sub000/internal/middleware"
	"github.com/danishbarkat/bytechsol-portal-sub000/internal/notification"
	"github.com/danishbarkat/bytechsol-portal-sub000/internal/payroll"
	"github.com/danishbarkat/bytechsol-portal-sub000/internal/reconcile"
	"github.com/danishbarkat/bytechsol-portal-sub000/internal/shiftconfig"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	attendanceRepo := attendance.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	notificationRepo := notification.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	payrollRepo := payroll.NewRepository(gormDB)
	reconcileRepo := reconcile.NewRepository(gormDB)
	shiftConfigRepo := shiftconfig.NewRepository(gormDB)

	// --- Services ---
	shiftConfigService := shiftconfig.NewServiceWithOutbox(db, shiftConfigRepo, outboxRepo, rdb)
	notificationService := notification.NewService(db, notificationRepo)
	attendanceService := attendance.NewService(db, attendanceRepo, shiftConfigService)
	employeeService := employee.NewServiceWithOutbox(db, employeeRepo, outboxRepo)
	leaveService := leave.NewService(db, leaveRepo, notificationService)
	payrollService := payroll.NewService(db, payrollRepo, shiftConfigService)
	reconcileService := reconcile.NewService(db, reconcileRepo, shiftConfigService, notificationService)

	// --- Handlers ---
	attendanceHandler := attendance.NewHandler(attendanceService)
	employeeHandler := employee.NewHandler(employeeService)
	leaveHandler := leave.NewHandler(leaveService)
	notificationHandler := notification.NewHandler(notificationService)
	payrollHandler := payroll.NewHandler(payrollService)
	reconcileHandler := reconcile.NewHandler(reconcileService)
	shiftConfigHandler := shiftconfig.NewHandler(shiftConfigService)

	// --- Middleware ---
	router.Use(middleware.RequestID())
	router.Use(middleware.ContextLogger(zap.L()))
	router.Use(middleware.RateLimitByIP(rate.Limit(50), 100))

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	api.Use(middleware.RateLimitByEmployee(rate.Limit(10), 20))
	if rdb != nil {
		api.Use(middleware.Idempotency(rdb))
	}
	{
		attendance.RegisterRoutes(api, attendanceHandler)
		employee.RegisterRoutes(api, employeeHandler)
		leave.RegisterRoutes(api, leaveHandler)
		notification.RegisterRoutes(api, notificationHandler)
		payroll.RegisterRoutes(api, payrollHandler)
		reconcile.RegisterRoutes(api, reconcileHandler)
		shiftconfig.RegisterRoutes(api, shiftConfigHandler)
	}

	return nil
}
