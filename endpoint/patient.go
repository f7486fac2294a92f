package endpoint

import (
	"errors"
	"fmt"

	"github.com/clinicore/clinic-api/model"
	"github.com/clinicore/clinic-api/service"
	"github.com/clinicore/clinic-api/util"
	"github.com/gin-gonic/gin"
)

type createPatientRequest struct {
	FullName      string `json:"full_name" example:"John Doe"`
	DateOfBirth   string `json:"date_of_birth" example:"1990-05-20"`
	ContactNumber string `json:"contact_number" example:"081234567890"`
}

func validatePatientRequest(req createPatientRequest) error {
	if req.FullName == "" {
		return fmt.Errorf("full_name is required")
	}
	if len(req.FullName) > 100 {
		return fmt.Errorf("full_name must be at most 100 characters")
	}
	if req.ContactNumber == "" {
		return fmt.Errorf("contact_number is required")
	}
	if !util.IsValidPhoneNumber(req.ContactNumber) {
		return fmt.Errorf("contact_number is not a valid phone number")
	}
	return nil
}

// ListPatients godoc
// @Summary      List or search patients
// @Description  Get all patients, or only those whose name contains the keyword
// @Tags         Patient
// @Accept       json
// @Produce      json
// @Param        keyword query string false "Name search keyword"
// @Success      200 {object} util.APIResponse{data=object} "Patients retrieved"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /patient [get]
func ListPatients(c *gin.Context) {
	db, ok := ensureDB(c)
	if !ok {
		return
	}

	patients, err := patientService(db).Search(c.Request.Context(), c.Query("keyword"))
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Failed to retrieve patients",
			Err: err,
		})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Patients retrieved",
		Data: map[string]interface{}{"total": len(patients), "patients": patients},
	})
}

// CreatePatient godoc
// @Summary      Register a new patient
// @Description  Register a patient; the contact number must not already be registered
// @Tags         Patient
// @Accept       json
// @Produce      json
// @Param        request body createPatientRequest true "Patient information"
// @Success      200 {object} util.APIResponse "Patient registered"
// @Failure      400 {object} util.APIResponse "Invalid request"
// @Failure      409 {object} util.APIResponse "Contact number already registered"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /patient [post]
func CreatePatient(c *gin.Context) {
	patientRequest := createPatientRequest{}

	if err := c.ShouldBindJSON(&patientRequest); err != nil {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Invalid request body",
			Err: err,
		})
		return
	}

	// Normalize before validating so whitespace variations cannot bypass
	// the duplicate check.
	patientRequest.FullName = util.NormalizeName(patientRequest.FullName)
	patientRequest.ContactNumber = util.NormalizePhoneNumber(patientRequest.ContactNumber)

	if err := validatePatientRequest(patientRequest); err != nil {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Patient payload is empty or missing required fields",
			Err: err,
		})
		return
	}

	db, ok := ensureDB(c)
	if !ok {
		return
	}

	patient := model.Patient{
		FullName:      patientRequest.FullName,
		DateOfBirth:   patientRequest.DateOfBirth,
		ContactNumber: patientRequest.ContactNumber,
	}

	id, err := patientService(db).Register(c.Request.Context(), &patient)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateContact) {
			util.CallConflict(c, util.APIErrorParams{
				Msg: "Patient already exists with the same contact number",
				Err: err,
			})
			return
		}
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Failed to register patient",
			Err: err,
		})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Patient registered",
		Data: map[string]interface{}{"id": id},
	})
}

// GetPatientInfo godoc
// @Summary      Get patient information
// @Tags         Patient
// @Produce      json
// @Param        id path int true "Patient ID"
// @Success      200 {object} util.APIResponse{data=model.Patient} "Patient retrieved"
// @Failure      404 {object} util.APIResponse "Patient not found"
// @Router       /patient/{id} [get]
func GetPatientInfo(c *gin.Context) {
	db, ok := ensureDB(c)
	if !ok {
		return
	}
	id, ok := getIDParam(c)
	if !ok {
		return
	}

	patient, err := patientService(db).Get(c.Request.Context(), id)
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Failed to retrieve patient",
			Err: err,
		})
		return
	}
	if patient == nil {
		util.CallErrorNotFound(c, util.APIErrorParams{
			Msg: "Patient not found",
			Err: fmt.Errorf("no patient with id %d", id),
		})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Patient retrieved",
		Data: patient,
	})
}

// UpdatePatient godoc
// @Summary      Update patient information
// @Description  Update an existing patient; only provided fields are changed
// @Tags         Patient
// @Accept       json
// @Produce      json
// @Param        id path int true "Patient ID"
// @Param        request body model.UpdatePatientRequest true "Updated patient information"
// @Success      200 {object} util.APIResponse{data=model.Patient} "Patient updated"
// @Failure      400 {object} util.APIResponse "Invalid request"
// @Failure      404 {object} util.APIResponse "Patient not found"
// @Router       /patient/{id} [patch]
func UpdatePatient(c *gin.Context) {
	db, ok := ensureDB(c)
	if !ok {
		return
	}
	id, ok := getIDParam(c)
	if !ok {
		return
	}

	request := model.UpdatePatientRequest{}
	if err := c.ShouldBindJSON(&request); err != nil {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Invalid request body",
			Err: err,
		})
		return
	}

	svc := patientService(db)
	existing, err := svc.Get(c.Request.Context(), id)
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Failed to retrieve patient",
			Err: err,
		})
		return
	}
	if existing == nil {
		util.CallErrorNotFound(c, util.APIErrorParams{
			Msg: "Patient not found",
			Err: fmt.Errorf("no patient with id %d", id),
		})
		return
	}

	// Merge provided fields into the stored row.
	if request.FullName != "" {
		existing.FullName = util.NormalizeName(request.FullName)
	}
	if request.DateOfBirth != "" {
		existing.DateOfBirth = request.DateOfBirth
	}
	if request.ContactNumber != "" {
		number := util.NormalizePhoneNumber(request.ContactNumber)
		if !util.IsValidPhoneNumber(number) {
			util.CallUserError(c, util.APIErrorParams{
				Msg: "Invalid contact number",
				Err: fmt.Errorf("contact_number is not a valid phone number"),
			})
			return
		}
		existing.ContactNumber = number
	}

	if err := svc.Update(c.Request.Context(), existing); err != nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Failed to update patient",
			Err: err,
		})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Patient updated",
		Data: existing,
	})
}

// DeletePatient godoc
// @Summary      Delete a patient
// @Description  Delete a patient by ID; fails while appointments still reference it
// @Tags         Patient
// @Produce      json
// @Param        id path int true "Patient ID"
// @Success      200 {object} util.APIResponse "Patient deleted"
// @Failure      500 {object} util.APIResponse "Constraint violation or server error"
// @Router       /patient/{id} [delete]
func DeletePatient(c *gin.Context) {
	db, ok := ensureDB(c)
	if !ok {
		return
	}
	id, ok := getIDParam(c)
	if !ok {
		return
	}

	if err := patientService(db).Delete(c.Request.Context(), id); err != nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Failed to delete patient",
			Err: err,
		})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg: "Patient deleted",
	})
}
