package endpoint

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ariebrainware/basis-data-rs/model"
	"github.com/stretchr/testify/assert"
)

func TestCreatePatientSuccess(t *testing.T) {
	r, db := setupEndpointTest(t)
	r.POST("/patient", CreatePatient)

	body := []byte(`{"full_name":"  Andi   Saputra ","age":34,"gender":"M","phone_number":"081100000001","address":"Jl. Merdeka 1"}`)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/patient", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assertStatus(t, w, http.StatusOK)

	var patient model.Patient
	assert.NoError(t, db.Where("phone_number = ?", "081100000001").First(&patient).Error)
	// Name spacing is normalized before the insert.
	assert.Equal(t, "Andi Saputra", patient.FullName)
}

func TestCreatePatientRejectsUnknownGender(t *testing.T) {
	r, _ := setupEndpointTest(t)
	r.POST("/patient", CreatePatient)

	body := []byte(`{"full_name":"Andi Saputra","age":34,"gender":"Male","phone_number":"081100000001"}`)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/patient", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assertStatus(t, w, http.StatusBadRequest)
	response := decodeResponse(t, w)
	assert.Equal(t, false, response["success"])
}

func TestCreatePatientRejectsNegativeAge(t *testing.T) {
	r, _ := setupEndpointTest(t)
	r.POST("/patient", CreatePatient)

	body := []byte(`{"full_name":"Andi Saputra","age":-1,"gender":"M","phone_number":"081100000001"}`)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/patient", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assertStatus(t, w, http.StatusBadRequest)
}

func TestCreatePatientRejectsDuplicatePhone(t *testing.T) {
	r, db := setupEndpointTest(t)
	r.POST("/patient", CreatePatient)

	existing := model.Patient{FullName: "Bunga Melati", Age: 28, Gender: "F", PhoneNumber: "081100000002"}
	assert.NoError(t, db.Create(&existing).Error)

	body := []byte(`{"full_name":"Someone Else","age":30,"gender":"M","phone_number":"081100000002"}`)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/patient", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assertStatus(t, w, http.StatusBadRequest)
}

func TestGetPatientByID(t *testing.T) {
	r, db := setupEndpointTest(t)
	r.GET("/patient/:id", GetPatient)

	patient := model.Patient{FullName: "Candra Kirana", Age: 45, Gender: "O", PhoneNumber: "081100000003"}
	assert.NoError(t, db.Create(&patient).Error)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/patient/1", nil)
	r.ServeHTTP(w, req)
	assertStatus(t, w, http.StatusOK)

	response := decodeResponse(t, w)
	assert.Equal(t, true, response["success"])
}

func TestGetPatientNotFound(t *testing.T) {
	r, _ := setupEndpointTest(t)
	r.GET("/patient/:id", GetPatient)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/patient/9999", nil)
	r.ServeHTTP(w, req)
	assertStatus(t, w, http.StatusNotFound)
}

func TestGetPatientRejectsBadID(t *testing.T) {
	r, _ := setupEndpointTest(t)
	r.GET("/patient/:id", GetPatient)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/patient/abc", nil)
	r.ServeHTTP(w, req)
	assertStatus(t, w, http.StatusBadRequest)
}

func TestListPatients(t *testing.T) {
	r, db := setupEndpointTest(t)
	r.GET("/patient", ListPatients)

	patients := []model.Patient{
		{FullName: "Andi Saputra", Age: 34, Gender: "M", PhoneNumber: "081100000001"},
		{FullName: "Bunga Melati", Age: 28, Gender: "F", PhoneNumber: "081100000002"},
	}
	for i := range patients {
		assert.NoError(t, db.Create(&patients[i]).Error)
	}

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/patient", nil)
	r.ServeHTTP(w, req)
	assertStatus(t, w, http.StatusOK)

	response := decodeResponse(t, w)
	data := response["data"].(map[string]interface{})
	assert.EqualValues(t, 2, data["total"])
}
