package endpoint

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/clinicore/clinic-api/model"
	"github.com/clinicore/clinic-api/service"
	"github.com/clinicore/clinic-api/util"
	"github.com/gin-gonic/gin"
)

type bookAppointmentRequest struct {
	PatientID       uint      `json:"patient_id" example:"1"`
	DoctorID        uint      `json:"doctor_id" example:"1"`
	HospitalID      uint      `json:"hospital_id" example:"1"`
	AppointmentDate time.Time `json:"appointment_date" example:"2026-09-10T10:00:00Z"`
}

func validateBookingRequest(req bookAppointmentRequest) error {
	if req.PatientID == 0 {
		return fmt.Errorf("patient_id is required")
	}
	if req.DoctorID == 0 {
		return fmt.Errorf("doctor_id is required")
	}
	if req.HospitalID == 0 {
		return fmt.Errorf("hospital_id is required")
	}
	if req.AppointmentDate.IsZero() {
		return fmt.Errorf("appointment_date is required")
	}
	return nil
}

// ListAppointments godoc
// @Summary      List appointments
// @Description  Get appointments newest first, optionally filtered by doctor and date
// @Tags         Appointment
// @Produce      json
// @Param        doctor_id query int false "Doctor ID filter"
// @Param        date query string false "Date filter (YYYY-MM-DD), used with doctor_id"
// @Success      200 {object} util.APIResponse{data=object} "Appointments retrieved"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /appointment [get]
func ListAppointments(c *gin.Context) {
	db, ok := ensureDB(c)
	if !ok {
		return
	}

	var doctorID uint64
	if raw := c.Query("doctor_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			util.CallUserError(c, util.APIErrorParams{
				Msg: "Invalid doctor_id, expected a positive integer",
				Err: err,
			})
			return
		}
		doctorID = parsed
	}

	day := time.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			util.CallUserError(c, util.APIErrorParams{
				Msg: "Invalid date, expected YYYY-MM-DD",
				Err: err,
			})
			return
		}
		day = parsed
	}

	appointments, err := appointmentService(db).List(c.Request.Context(), uint(doctorID), day)
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Failed to retrieve appointments",
			Err: err,
		})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Appointments retrieved",
		Data: map[string]interface{}{"total": len(appointments), "appointments": appointments},
	})
}

// BookAppointment godoc
// @Summary      Book an appointment
// @Description  Book a doctor's slot. The slot is taken when a non-cancelled appointment already exists at the same timestamp.
// @Tags         Appointment
// @Accept       json
// @Produce      json
// @Param        request body bookAppointmentRequest true "Appointment information"
// @Success      200 {object} util.APIResponse{data=model.Appointment} "Appointment booked"
// @Failure      400 {object} util.APIResponse "Invalid request"
// @Failure      409 {object} util.APIResponse "Slot already booked"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /appointment [post]
func BookAppointment(c *gin.Context) {
	bookingRequest := bookAppointmentRequest{}

	if err := c.ShouldBindJSON(&bookingRequest); err != nil {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Invalid request body",
			Err: err,
		})
		return
	}
	if err := validateBookingRequest(bookingRequest); err != nil {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Appointment payload is empty or missing required fields",
			Err: err,
		})
		return
	}

	db, ok := ensureDB(c)
	if !ok {
		return
	}

	appointment := model.Appointment{
		PatientID:       bookingRequest.PatientID,
		DoctorID:        bookingRequest.DoctorID,
		HospitalID:      bookingRequest.HospitalID,
		AppointmentDate: bookingRequest.AppointmentDate,
	}

	booked, err := appointmentService(db).Book(c.Request.Context(), &appointment)
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Failed to book appointment",
			Err: err,
		})
		return
	}
	if !booked {
		util.LogAuditEvent(util.AuditEvent{
			EventType: util.EventBookingConflict,
			IP:        c.ClientIP(),
			Message:   "booking rejected, slot already taken",
			Details: map[string]interface{}{
				"doctor_id":        bookingRequest.DoctorID,
				"appointment_date": bookingRequest.AppointmentDate,
			},
		})
		util.CallConflict(c, util.APIErrorParams{
			Msg: "The doctor already has an appointment at this time",
			Err: fmt.Errorf("slot is not available"),
		})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Appointment booked",
		Data: appointment,
	})
}

// ConfirmAppointment godoc
// @Summary      Confirm a booked appointment
// @Tags         Appointment
// @Produce      json
// @Param        id path int true "Appointment ID"
// @Success      200 {object} util.APIResponse "Appointment confirmed"
// @Failure      400 {object} util.APIResponse "Invalid status transition"
// @Failure      404 {object} util.APIResponse "Appointment not found"
// @Router       /appointment/{id}/confirm [patch]
func ConfirmAppointment(c *gin.Context) {
	transitionAppointment(c, "Appointment confirmed", func(svc *service.AppointmentService, id uint) error {
		return svc.Confirm(c.Request.Context(), id)
	})
}

// CompleteAppointment godoc
// @Summary      Complete a confirmed appointment
// @Tags         Appointment
// @Produce      json
// @Param        id path int true "Appointment ID"
// @Success      200 {object} util.APIResponse "Appointment completed"
// @Failure      400 {object} util.APIResponse "Invalid status transition"
// @Failure      404 {object} util.APIResponse "Appointment not found"
// @Router       /appointment/{id}/complete [patch]
func CompleteAppointment(c *gin.Context) {
	transitionAppointment(c, "Appointment completed", func(svc *service.AppointmentService, id uint) error {
		return svc.Complete(c.Request.Context(), id)
	})
}

// CancelAppointment godoc
// @Summary      Cancel an appointment
// @Description  Mark the appointment as Cancelled, freeing its slot. A missing id is a no-op.
// @Tags         Appointment
// @Produce      json
// @Param        id path int true "Appointment ID"
// @Success      200 {object} util.APIResponse "Appointment cancelled"
// @Failure      400 {object} util.APIResponse "Invalid status transition"
// @Router       /appointment/{id}/cancel [patch]
func CancelAppointment(c *gin.Context) {
	transitionAppointment(c, "Appointment cancelled", func(svc *service.AppointmentService, id uint) error {
		return svc.Cancel(c.Request.Context(), id)
	})
}

func transitionAppointment(c *gin.Context, successMsg string, op func(svc *service.AppointmentService, id uint) error) {
	db, ok := ensureDB(c)
	if !ok {
		return
	}
	id, ok := getIDParam(c)
	if !ok {
		return
	}

	if err := op(appointmentService(db), id); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			util.CallErrorNotFound(c, util.APIErrorParams{
				Msg: "Appointment not found",
				Err: err,
			})
		case errors.Is(err, service.ErrInvalidTransition):
			util.CallUserError(c, util.APIErrorParams{
				Msg: "The appointment status does not allow this change",
				Err: err,
			})
		default:
			util.CallServerError(c, util.APIErrorParams{
				Msg: "Failed to update appointment",
				Err: err,
			})
		}
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg: successMsg,
	})
}
