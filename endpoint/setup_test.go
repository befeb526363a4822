package endpoint

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/ariebrainware/basis-data-rs/config"
	"github.com/ariebrainware/basis-data-rs/middleware"
	"github.com/ariebrainware/basis-data-rs/model"
	"github.com/ariebrainware/basis-data-rs/util"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// endpointTestModels defines the standard set of models migrated for endpoint tests
var endpointTestModels = []interface{}{
	&model.Patient{},
	&model.Department{},
	&model.Doctor{},
	&model.Appointment{},
	&model.Bill{},
	&model.Medicine{},
	&model.Prescription{},
	&model.Staff{},
	&model.User{},
}

// setupEndpointTestDB initializes a test database with all standard models migrated.
// It sets the APPENV to "test" and initializes the JWT secret for the test.
// Cleanup is automatically registered via t.Cleanup().
func setupEndpointTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	t.Setenv("APPENV", "test")
	t.Setenv("JWTSECRET", "test-secret-123")
	util.SetJWTSecret("test-secret-123")

	db, err := config.ConnectMySQL()
	if err != nil {
		t.Fatalf("failed to connect test DB: %v", err)
	}
	if err := db.AutoMigrate(endpointTestModels...); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	for _, m := range endpointTestModels {
		db.Unscoped().Where("1 = 1").Delete(m)
	}

	t.Cleanup(func() {
		for _, m := range endpointTestModels {
			_ = db.Migrator().DropTable(m)
		}
	})

	return db
}

// setupEndpointTest returns a Gin engine and database connection configured for endpoint tests.
func setupEndpointTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := setupEndpointTestDB(t)
	r := gin.New()
	r.Use(middleware.DatabaseMiddleware(db))
	return r, db
}

// assertStatus asserts that the response HTTP status code matches the expected value
func assertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	assert.Equal(t, expected, w.Code)
}

// decodeResponse unmarshals the API envelope from the recorder body.
func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var response map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	return response
}
