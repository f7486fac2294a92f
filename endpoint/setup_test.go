package endpoint

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/clinicore/clinic-api/config"
	"github.com/clinicore/clinic-api/middleware"
	"github.com/clinicore/clinic-api/model"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// endpointTestModels defines the standard set of models migrated for endpoint tests
var endpointTestModels = []interface{}{
	&model.Patient{},
	&model.Hospital{},
	&model.Doctor{},
	&model.Appointment{},
}

// setupEndpointTestDB initializes a test database with all standard models
// migrated. Cleanup is automatically registered via t.Cleanup().
func setupEndpointTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	t.Setenv("APPENV", "test")

	db, err := config.ConnectDB()
	if err != nil {
		t.Fatalf("failed to connect test DB: %v", err)
	}

	if err := db.AutoMigrate(endpointTestModels...); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	db.Exec("DELETE FROM doctor_hospitals")
	for _, m := range endpointTestModels {
		db.Where("1 = 1").Delete(m)
	}

	t.Cleanup(func() {
		db.Exec("DROP TABLE IF EXISTS doctor_hospitals")
		for _, m := range endpointTestModels {
			_ = db.Migrator().DropTable(m)
		}
	})

	return db
}

// setupEndpointTest returns a Gin engine with all routes registered and a
// database connection configured for endpoint tests.
func setupEndpointTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := setupEndpointTestDB(t)
	r := gin.New()
	r.Use(middleware.DatabaseMiddleware(db))

	r.GET("/patient", ListPatients)
	r.POST("/patient", CreatePatient)
	r.GET("/patient/:id", GetPatientInfo)
	r.PATCH("/patient/:id", UpdatePatient)
	r.DELETE("/patient/:id", DeletePatient)

	r.GET("/doctor", ListDoctors)
	r.GET("/doctor/specializations", GetSpecializations)
	r.GET("/doctor/:id/slots", GetDoctorSlots)
	r.POST("/doctor", CreateDoctor)
	r.PATCH("/doctor/:id", UpdateDoctor)
	r.DELETE("/doctor/:id", DeleteDoctor)

	r.GET("/hospital", ListHospitals)
	r.POST("/hospital", CreateHospital)
	r.GET("/hospital/:id", GetHospitalInfo)
	r.PATCH("/hospital/:id", UpdateHospital)
	r.DELETE("/hospital/:id", DeleteHospital)

	r.GET("/appointment", ListAppointments)
	r.POST("/appointment", BookAppointment)
	r.PATCH("/appointment/:id/confirm", ConfirmAppointment)
	r.PATCH("/appointment/:id/complete", CompleteAppointment)
	r.PATCH("/appointment/:id/cancel", CancelAppointment)

	return r, db
}

// doJSON performs a request with a JSON body against the test router.
func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// parseResponse decodes the standard APIResponse envelope.
func parseResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var response map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return response
}

func responseData(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	data, ok := parseResponse(t, w)["data"].(map[string]interface{})
	if !ok {
		t.Fatalf("response has no data object: %s", w.Body.String())
	}
	return data
}
