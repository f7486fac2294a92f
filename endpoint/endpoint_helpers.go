package endpoint

import (
	"fmt"
	"strconv"

	"github.com/clinicore/clinic-api/middleware"
	"github.com/clinicore/clinic-api/repository"
	"github.com/clinicore/clinic-api/service"
	"github.com/clinicore/clinic-api/util"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ensureDB returns the request-scoped DB connection or responds with a
// server error when none is available.
func ensureDB(c *gin.Context) (*gorm.DB, bool) {
	db := middleware.GetDB(c)
	if db == nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Database connection not available",
			Err: fmt.Errorf("db is nil"),
		})
		return nil, false
	}
	return db, true
}

// getIDParam parses the :id path parameter, responding with a user error
// when it is missing or not a positive integer.
func getIDParam(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Invalid id",
			Err: fmt.Errorf("id must be a positive integer"),
		})
		return 0, false
	}
	return uint(id), true
}

func patientService(db *gorm.DB) *service.PatientService {
	return service.NewPatientService(repository.NewPatientRepository(db))
}

func doctorService(db *gorm.DB) *service.DoctorService {
	return service.NewDoctorService(repository.NewDoctorRepository(db), repository.NewHospitalRepository(db))
}

func hospitalService(db *gorm.DB) *service.HospitalService {
	return service.NewHospitalService(repository.NewHospitalRepository(db))
}

func appointmentService(db *gorm.DB) *service.AppointmentService {
	return service.NewAppointmentService(repository.NewAppointmentRepository(db))
}
