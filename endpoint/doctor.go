package endpoint

import (
	"errors"
	"fmt"
	"time"

	"github.com/clinicore/clinic-api/model"
	"github.com/clinicore/clinic-api/service"
	"github.com/clinicore/clinic-api/util"
	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

const maxConsultationFee = 100000

type createDoctorRequest struct {
	FullName        string         `json:"full_name" example:"Dr. Jane Smith"`
	Specialization  string         `json:"specialization" example:"Cardiology"`
	ConsultationFee float64        `json:"consultation_fee" example:"500"`
	Availability    datatypes.JSON `json:"availability,omitempty"`
	HospitalIDs     []uint         `json:"hospital_ids" example:"1,2"`
}

func validateDoctorRequest(req createDoctorRequest) error {
	if req.FullName == "" {
		return fmt.Errorf("full_name is required")
	}
	if len(req.FullName) > 100 {
		return fmt.Errorf("full_name must be at most 100 characters")
	}
	if req.Specialization == "" {
		return fmt.Errorf("specialization is required")
	}
	if len(req.Specialization) > 50 {
		return fmt.Errorf("specialization must be at most 50 characters")
	}
	if req.ConsultationFee < 0 || req.ConsultationFee > maxConsultationFee {
		return fmt.Errorf("consultation_fee must be between 0 and %d", maxConsultationFee)
	}
	return nil
}

// ListDoctors godoc
// @Summary      List doctors
// @Description  Get all doctors, optionally filtered by specialization
// @Tags         Doctor
// @Produce      json
// @Param        specialization query string false "Specialization filter"
// @Success      200 {object} util.APIResponse{data=object} "Doctors retrieved"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /doctor [get]
func ListDoctors(c *gin.Context) {
	db, ok := ensureDB(c)
	if !ok {
		return
	}

	doctors, err := doctorService(db).List(c.Request.Context(), c.Query("specialization"))
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Failed to retrieve doctors",
			Err: err,
		})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Doctors retrieved",
		Data: map[string]interface{}{"total": len(doctors), "doctors": doctors},
	})
}

// GetSpecializations godoc
// @Summary      List distinct specializations
// @Tags         Doctor
// @Produce      json
// @Success      200 {object} util.APIResponse{data=[]string} "Specializations retrieved"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /doctor/specializations [get]
func GetSpecializations(c *gin.Context) {
	db, ok := ensureDB(c)
	if !ok {
		return
	}

	specializations, err := doctorService(db).Specializations(c.Request.Context())
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Failed to retrieve specializations",
			Err: err,
		})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Specializations retrieved",
		Data: specializations,
	})
}

// CreateDoctor godoc
// @Summary      Create a new doctor
// @Description  Create a doctor with hospital affiliations. Hospital ids that do not resolve are skipped.
// @Tags         Doctor
// @Accept       json
// @Produce      json
// @Param        request body createDoctorRequest true "Doctor information"
// @Success      200 {object} util.APIResponse{data=model.Doctor} "Doctor created"
// @Failure      400 {object} util.APIResponse "Invalid request"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /doctor [post]
func CreateDoctor(c *gin.Context) {
	doctorRequest := createDoctorRequest{}

	if err := c.ShouldBindJSON(&doctorRequest); err != nil {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Invalid request body",
			Err: err,
		})
		return
	}

	doctorRequest.FullName = util.NormalizeName(doctorRequest.FullName)
	if err := validateDoctorRequest(doctorRequest); err != nil {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Doctor payload is empty or missing required fields",
			Err: err,
		})
		return
	}

	db, ok := ensureDB(c)
	if !ok {
		return
	}

	doctor := model.Doctor{
		FullName:        doctorRequest.FullName,
		Specialization:  doctorRequest.Specialization,
		ConsultationFee: doctorRequest.ConsultationFee,
		Availability:    doctorRequest.Availability,
	}

	if err := doctorService(db).Create(c.Request.Context(), &doctor, doctorRequest.HospitalIDs); err != nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Failed to create doctor",
			Err: err,
		})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Doctor created",
		Data: doctor,
	})
}

// UpdateDoctor godoc
// @Summary      Update a doctor
// @Description  Overwrite the doctor's fields and replace its hospital affiliations
// @Tags         Doctor
// @Accept       json
// @Produce      json
// @Param        id path int true "Doctor ID"
// @Param        request body createDoctorRequest true "Updated doctor information"
// @Success      200 {object} util.APIResponse{data=model.Doctor} "Doctor updated"
// @Failure      400 {object} util.APIResponse "Invalid request"
// @Failure      404 {object} util.APIResponse "Doctor not found"
// @Router       /doctor/{id} [patch]
func UpdateDoctor(c *gin.Context) {
	db, ok := ensureDB(c)
	if !ok {
		return
	}
	id, ok := getIDParam(c)
	if !ok {
		return
	}

	doctorRequest := createDoctorRequest{}
	if err := c.ShouldBindJSON(&doctorRequest); err != nil {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Invalid request body",
			Err: err,
		})
		return
	}

	doctorRequest.FullName = util.NormalizeName(doctorRequest.FullName)
	if err := validateDoctorRequest(doctorRequest); err != nil {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Doctor payload is empty or missing required fields",
			Err: err,
		})
		return
	}

	input := model.Doctor{
		FullName:        doctorRequest.FullName,
		Specialization:  doctorRequest.Specialization,
		ConsultationFee: doctorRequest.ConsultationFee,
		Availability:    doctorRequest.Availability,
	}

	doctor, err := doctorService(db).Update(c.Request.Context(), id, &input, doctorRequest.HospitalIDs)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			util.CallErrorNotFound(c, util.APIErrorParams{
				Msg: "Doctor not found",
				Err: err,
			})
			return
		}
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Failed to update doctor",
			Err: err,
		})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Doctor updated",
		Data: doctor,
	})
}

// DeleteDoctor godoc
// @Summary      Delete a doctor
// @Description  Delete a doctor by ID; fails while appointments still reference it
// @Tags         Doctor
// @Produce      json
// @Param        id path int true "Doctor ID"
// @Success      200 {object} util.APIResponse "Doctor deleted"
// @Failure      500 {object} util.APIResponse "Constraint violation or server error"
// @Router       /doctor/{id} [delete]
func DeleteDoctor(c *gin.Context) {
	db, ok := ensureDB(c)
	if !ok {
		return
	}
	id, ok := getIDParam(c)
	if !ok {
		return
	}

	if err := doctorService(db).Delete(c.Request.Context(), id); err != nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Failed to delete doctor",
			Err: err,
		})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg: "Doctor deleted",
	})
}

// GetDoctorSlots godoc
// @Summary      List a doctor's available time slots
// @Description  Free 30-minute slots within working hours for the given date
// @Tags         Doctor
// @Produce      json
// @Param        id path int true "Doctor ID"
// @Param        date query string true "Date (YYYY-MM-DD)"
// @Success      200 {object} util.APIResponse{data=object} "Slots retrieved"
// @Failure      400 {object} util.APIResponse "Invalid date"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /doctor/{id}/slots [get]
func GetDoctorSlots(c *gin.Context) {
	db, ok := ensureDB(c)
	if !ok {
		return
	}
	id, ok := getIDParam(c)
	if !ok {
		return
	}

	day, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Invalid or missing date, expected YYYY-MM-DD",
			Err: err,
		})
		return
	}

	slots, err := appointmentService(db).AvailableSlots(c.Request.Context(), id, day)
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Failed to retrieve slots",
			Err: err,
		})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Slots retrieved",
		Data: map[string]interface{}{"total": len(slots), "slots": slots},
	})
}
