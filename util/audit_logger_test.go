package util

import (
	"bytes"
	"log"
	"testing"

	"github.com/ariebrainware/basis-data-rs/model"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupAuditTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test DB: %v", err)
	}
	if err := db.AutoMigrate(&model.AuditLog{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return db
}

func TestLogAuditEventPersistsToDB(t *testing.T) {
	db := setupAuditTestDB(t)
	SetAuditLoggerDB(db)
	t.Cleanup(func() { SetAuditLoggerDB(nil) })

	LogAuditEvent(AuditEvent{
		EventType: EventEntityCreated,
		IP:        "203.0.113.10",
		Message:   "patient created",
		Details:   map[string]interface{}{"entity": "patient", "id": 1},
	})

	var entry model.AuditLog
	assert.NoError(t, db.First(&entry).Error)
	assert.Equal(t, string(EventEntityCreated), entry.EventType)
	assert.Equal(t, "203.0.113.10", entry.IP)
	assert.NotEmpty(t, entry.Details)
}

func TestLogAuditEventSanitizesMessage(t *testing.T) {
	db := setupAuditTestDB(t)
	SetAuditLoggerDB(db)
	t.Cleanup(func() { SetAuditLoggerDB(nil) })

	var buf bytes.Buffer
	prev := GetAuditLoggerForTest()
	SetAuditLoggerForTest(log.New(&buf, "[AUDIT] ", log.LstdFlags))
	t.Cleanup(func() { SetAuditLoggerForTest(prev) })

	LogAuditEvent(AuditEvent{
		EventType: EventSuspiciousActivity,
		Message:   "line one\nline two\tend",
	})

	assert.NotContains(t, buf.String(), "line one\nline two")

	var entry model.AuditLog
	assert.NoError(t, db.First(&entry).Error)
	assert.NotContains(t, entry.Message, "\n")
	assert.NotContains(t, entry.Message, "\t")
}

func TestLogAuditEventWithoutDBOnlyWrites(t *testing.T) {
	SetAuditLoggerDB(nil)

	var buf bytes.Buffer
	prev := GetAuditLoggerForTest()
	SetAuditLoggerForTest(log.New(&buf, "[AUDIT] ", log.LstdFlags))
	t.Cleanup(func() { SetAuditLoggerForTest(prev) })

	// Must not panic without a DB configured.
	LogLoginFailure("admin@rumahsakit.example", "127.0.0.1", "test-agent", "invalid password")
	assert.Contains(t, buf.String(), "LOGIN_FAILURE")
}
