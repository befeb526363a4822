// main.go
package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/ariebrainware/basis-data-rs/config"
	"github.com/ariebrainware/basis-data-rs/endpoint"
	"github.com/ariebrainware/basis-data-rs/middleware"
	"github.com/ariebrainware/basis-data-rs/model"
	"github.com/ariebrainware/basis-data-rs/util"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func migrateModels(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Patient{},
		&model.Department{},
		&model.Doctor{},
		&model.Appointment{},
		&model.Bill{},
		&model.Medicine{},
		&model.Prescription{},
		&model.Staff{},
		&model.User{},
		&model.AuditLog{},
	)
}

func main() {
	// Load the configuration
	cfg := config.LoadConfig()

	db, err := config.ConnectMySQL()
	if err != nil {
		log.Fatalf("Error connecting to MySQL: %v", err)
	}
	if err := migrateModels(db); err != nil {
		log.Fatalf("Error migrating models: %v", err)
	}

	util.SetAuditLoggerDB(db)
	if err := util.InitGeoIP(""); err != nil {
		log.Printf("GeoIP disabled: %v", err)
	}
	if _, err := config.ConnectRedis(); err != nil {
		log.Printf("Redis unavailable, rate limiting disabled: %v", err)
	}

	if cfg.SeedData {
		if err := model.SeedDemoData(db, util.HashPassword("admin123")); err != nil {
			log.Fatalf("Error seeding demo data: %v", err)
		}
	}

	// Set Gin mode from config
	gin.SetMode(cfg.GinMode)

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DatabaseMiddleware(db))
	router.Use(middleware.EndpointCallLogger())

	// Basic HTTP handler for root path
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": fmt.Sprintf("Welcome to %s!", cfg.AppName),
		})
	})

	router.POST("/login", middleware.RateLimiter(middleware.RateLimitConfig{}), endpoint.Login)

	router.GET("/patient", endpoint.ListPatients)
	router.GET("/patient/:id", endpoint.GetPatient)
	router.GET("/department", endpoint.ListDepartments)
	router.GET("/department/:id", endpoint.GetDepartment)
	router.GET("/doctor", endpoint.ListDoctors)
	router.GET("/doctor/:id", endpoint.GetDoctor)
	router.GET("/appointment", endpoint.ListAppointments)
	router.GET("/appointment/:id", endpoint.GetAppointment)
	router.GET("/bill", endpoint.ListBills)
	router.GET("/bill/:id", endpoint.GetBill)
	router.GET("/medicine", endpoint.ListMedicines)
	router.GET("/medicine/:id", endpoint.GetMedicine)
	router.GET("/prescription", endpoint.ListPrescriptions)
	router.GET("/prescription/:id", endpoint.GetPrescription)
	router.GET("/staff", endpoint.ListStaff)
	router.GET("/staff/:id", endpoint.GetStaff)

	authorized := router.Group("/", middleware.AuthRequired())
	authorized.POST("/patient", endpoint.CreatePatient)
	authorized.POST("/department", endpoint.CreateDepartment)
	authorized.POST("/doctor", endpoint.CreateDoctor)
	authorized.POST("/appointment", endpoint.CreateAppointment)
	authorized.POST("/bill", endpoint.CreateBill)
	authorized.POST("/medicine", endpoint.CreateMedicine)
	authorized.POST("/prescription", endpoint.CreatePrescription)
	authorized.POST("/staff", endpoint.CreateStaff)

	router.GET("/report/appointments", endpoint.AppointmentStatusReport)
	router.GET("/report/unpaid-bills", endpoint.UnpaidBillsReport)
	router.GET("/report/revenue", endpoint.TotalRevenueReport)
	router.GET("/report/top-doctors", endpoint.TopDoctorsReport)
	router.GET("/report/low-stock", endpoint.LowStockReport)
	router.GET("/report/prescriptions", endpoint.PatientPrescriptionsReport)
	router.GET("/report/staff-count", endpoint.StaffCountReport)
	router.GET("/report/frequent-patients", endpoint.FrequentPatientsReport)
	router.GET("/report/paid-bills", endpoint.PaidBillsAboveReport)
	router.GET("/report/department-revenue", endpoint.DepartmentRevenueReport)

	// Start server on specified port
	address := fmt.Sprintf(":%d", cfg.AppPort)
	if err := router.Run(address); err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
