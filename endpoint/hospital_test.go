package endpoint

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/clinicore/clinic-api/model"
	"github.com/stretchr/testify/assert"
)

func TestHospitalCRUD(t *testing.T) {
	r, _ := setupEndpointTest(t)

	w := doJSON(t, r, "POST", "/hospital", map[string]interface{}{
		"name":    "General Hospital",
		"address": "123 Main St",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	id := responseData(t, w)["id"]

	w = doJSON(t, r, "GET", fmt.Sprintf("/hospital/%v", id), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "General Hospital", responseData(t, w)["name"])

	w = doJSON(t, r, "PATCH", fmt.Sprintf("/hospital/%v", id), map[string]interface{}{
		"name":    "General Hospital",
		"address": "456 Oak Ave",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "456 Oak Ave", responseData(t, w)["address"])

	w = doJSON(t, r, "GET", "/hospital", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, responseData(t, w)["total"])

	w = doJSON(t, r, "DELETE", fmt.Sprintf("/hospital/%v", id), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, "GET", fmt.Sprintf("/hospital/%v", id), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateHospitalValidation(t *testing.T) {
	r, _ := setupEndpointTest(t)

	w := doJSON(t, r, "POST", "/hospital", map[string]interface{}{"name": "General Hospital"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, "POST", "/hospital", map[string]interface{}{"address": "123 Main St"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateHospitalNotFound(t *testing.T) {
	r, _ := setupEndpointTest(t)

	w := doJSON(t, r, "PATCH", "/hospital/9999", map[string]interface{}{
		"name":    "Nowhere",
		"address": "1 Ghost Rd",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteHospitalReferencedByAppointment(t *testing.T) {
	r, db := setupEndpointTest(t)

	patient := model.Patient{FullName: "John Doe", ContactNumber: "081234567890"}
	doctor := model.Doctor{FullName: "Dr. Jane Smith", Specialization: "Cardiology"}
	hospital := model.Hospital{Name: "General Hospital", Address: "123 Main St"}
	for _, m := range []interface{}{&patient, &doctor, &hospital} {
		if err := db.Create(m).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	appointment := model.Appointment{
		PatientID:       patient.ID,
		DoctorID:        doctor.ID,
		HospitalID:      hospital.ID,
		AppointmentDate: time.Date(2026, 9, 10, 10, 0, 0, 0, time.UTC),
		Status:          model.StatusBooked,
	}
	if err := db.Create(&appointment).Error; err != nil {
		t.Fatalf("seed appointment: %v", err)
	}

	// The restrict constraint keeps referenced hospitals alive.
	w := doJSON(t, r, "DELETE", fmt.Sprintf("/hospital/%d", hospital.ID), nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	w = doJSON(t, r, "GET", fmt.Sprintf("/hospital/%d", hospital.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
