package util

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/ariebrainware/basis-data-rs/model"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AuditEventType represents different types of audit events
type AuditEventType string

const (
	EventLoginSuccess       AuditEventType = "LOGIN_SUCCESS"
	EventLoginFailure       AuditEventType = "LOGIN_FAILURE"
	EventEntityCreated      AuditEventType = "ENTITY_CREATED"
	EventReportQuery        AuditEventType = "REPORT_QUERY"
	EventRateLimitExceeded  AuditEventType = "RATE_LIMIT_EXCEEDED"
	EventSuspiciousActivity AuditEventType = "SUSPICIOUS_ACTIVITY"
	EventEndpointCall       AuditEventType = "ENDPOINT_CALL"
)

// AuditEvent represents an audit event to be logged
type AuditEvent struct {
	EventType AuditEventType
	UserID    string
	Email     string
	IP        string
	UserAgent string
	Message   string
	Details   map[string]interface{}
}

var auditLogger *log.Logger
var auditDB *gorm.DB

// SetAuditLoggerDB sets a gorm DB instance used by the audit logger.
// Call this during application startup (e.g. in main) after DB initialization.
func SetAuditLoggerDB(db *gorm.DB) {
	auditDB = db
}

func init() {
	auditLogger = log.New(os.Stdout, "[AUDIT] ", log.LstdFlags|log.Lmsgprefix)
}

// sanitizeLogValue removes newlines and other characters that could break log parsing
func sanitizeLogValue(value string) string {
	value = strings.ReplaceAll(value, "\n", " ")
	value = strings.ReplaceAll(value, "\r", " ")
	value = strings.ReplaceAll(value, "\t", " ")
	// Truncate very long values to prevent log flooding
	if len(value) > 200 {
		value = value[:200] + "..."
	}
	return value
}

// LogAuditEvent logs an audit event to stdout and, when a DB has been set,
// persists it to the audit_logs table. Persistence is best-effort and never
// fails the operation being audited.
func LogAuditEvent(event AuditEvent) {
	msg := fmt.Sprintf("Event=%s UserID=%s Email=%s IP=%s UserAgent=%s Message=%s",
		sanitizeLogValue(string(event.EventType)),
		sanitizeLogValue(event.UserID),
		sanitizeLogValue(event.Email),
		sanitizeLogValue(event.IP),
		sanitizeLogValue(event.UserAgent),
		sanitizeLogValue(event.Message),
	)

	if len(event.Details) > 0 {
		// Don't log the Details map directly to avoid injection
		msg = fmt.Sprintf("%s DetailsCount=%d", msg, len(event.Details))
	}

	auditLogger.Println(msg)

	if auditDB == nil {
		return
	}

	var details datatypes.JSON
	if event.Details != nil {
		if b, err := json.Marshal(event.Details); err == nil {
			details = datatypes.JSON(b)
		}
	}

	// Attempt to resolve city/country for the IP (best-effort, local DB then cache)
	city, country := GetIPLocation(event.IP)
	var location string
	switch {
	case city != "" && country != "":
		location = fmt.Sprintf("%s/%s", city, country)
	case country != "":
		location = country
	case city != "":
		location = city
	}

	entry := model.AuditLog{
		EventType: string(event.EventType),
		UserID:    event.UserID,
		Email:     sanitizeLogValue(event.Email),
		IP:        sanitizeLogValue(event.IP),
		Location:  sanitizeLogValue(location),
		UserAgent: sanitizeLogValue(event.UserAgent),
		Message:   sanitizeLogValue(event.Message),
		Details:   details,
	}

	if err := auditDB.Create(&entry).Error; err != nil {
		auditLogger.Printf("Failed to persist audit event: %v", err)
	}
}

// LogLoginSuccess logs a successful login event
func LogLoginSuccess(userID uint, email, ip, userAgent string) {
	LogAuditEvent(AuditEvent{
		EventType: EventLoginSuccess,
		UserID:    fmt.Sprintf("%d", userID),
		Email:     email,
		IP:        ip,
		UserAgent: userAgent,
		Message:   "User logged in successfully",
	})
}

// LogLoginFailure logs a failed login attempt
func LogLoginFailure(email, ip, userAgent, reason string) {
	LogAuditEvent(AuditEvent{
		EventType: EventLoginFailure,
		Email:     email,
		IP:        ip,
		UserAgent: userAgent,
		Message:   fmt.Sprintf("Login failed: %s", reason),
	})
}

// LogEntityCreated logs the creation of a domain row
func LogEntityCreated(entity string, id uint, ip string) {
	LogAuditEvent(AuditEvent{
		EventType: EventEntityCreated,
		IP:        ip,
		Message:   fmt.Sprintf("%s created", entity),
		Details:   map[string]interface{}{"entity": entity, "id": id},
	})
}

// LogRateLimitExceeded logs when rate limiting blocks a request
func LogRateLimitExceeded(email, ip, endpoint string) {
	LogAuditEvent(AuditEvent{
		EventType: EventRateLimitExceeded,
		Email:     email,
		IP:        ip,
		Message:   fmt.Sprintf("Rate limit exceeded for %s", endpoint),
	})
}

// GetAuditLoggerForTest exposes the logger so tests can redirect output.
func GetAuditLoggerForTest() *log.Logger {
	return auditLogger
}

// SetAuditLoggerForTest replaces the logger. This should only be used in tests.
func SetAuditLoggerForTest(logger *log.Logger) {
	auditLogger = logger
}
