// main.go
package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/clinicore/clinic-api/config"
	"github.com/clinicore/clinic-api/endpoint"
	"github.com/clinicore/clinic-api/middleware"
	"github.com/clinicore/clinic-api/model"
	"github.com/clinicore/clinic-api/util"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load the configuration
	cfg := config.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	if err := db.AutoMigrate(
		&model.Patient{},
		&model.Hospital{},
		&model.Doctor{},
		&model.Appointment{},
		&model.AuditLog{},
	); err != nil {
		log.Fatalf("Error running migrations: %v", err)
	}

	util.SetAuditLoggerDB(db)

	// Redis backs the rate limiter; the app still serves without it.
	if _, err := config.ConnectRedis(); err != nil {
		log.Printf("Redis unavailable, rate limiting disabled: %v", err)
	}

	// Set Gin mode from config
	gin.SetMode(cfg.GinMode)

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DatabaseMiddleware(db))
	router.Use(middleware.EndpointCallLogger())

	// Basic HTTP handler for root path
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": fmt.Sprintf("Welcome to %s!", cfg.AppName),
		})
	})

	writeLimiter := middleware.RateLimiter(middleware.RateLimitConfig{
		Limit:  30,
		Window: 15 * time.Minute,
	})

	router.GET("/patient", endpoint.ListPatients)
	router.POST("/patient", writeLimiter, endpoint.CreatePatient)
	router.GET("/patient/:id", endpoint.GetPatientInfo)
	router.PATCH("/patient/:id", endpoint.UpdatePatient)
	router.DELETE("/patient/:id", endpoint.DeletePatient)

	router.GET("/doctor", endpoint.ListDoctors)
	router.GET("/doctor/specializations", endpoint.GetSpecializations)
	router.GET("/doctor/:id/slots", endpoint.GetDoctorSlots)
	router.POST("/doctor", endpoint.CreateDoctor)
	router.PATCH("/doctor/:id", endpoint.UpdateDoctor)
	router.DELETE("/doctor/:id", endpoint.DeleteDoctor)

	router.GET("/hospital", endpoint.ListHospitals)
	router.POST("/hospital", endpoint.CreateHospital)
	router.GET("/hospital/:id", endpoint.GetHospitalInfo)
	router.PATCH("/hospital/:id", endpoint.UpdateHospital)
	router.DELETE("/hospital/:id", endpoint.DeleteHospital)

	router.GET("/appointment", endpoint.ListAppointments)
	router.POST("/appointment", writeLimiter, endpoint.BookAppointment)
	router.PATCH("/appointment/:id/confirm", endpoint.ConfirmAppointment)
	router.PATCH("/appointment/:id/complete", endpoint.CompleteAppointment)
	router.PATCH("/appointment/:id/cancel", endpoint.CancelAppointment)

	// Start server on specified port
	address := fmt.Sprintf(":%d", cfg.AppPort)
	if err := router.Run(address); err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
