package model

import "fmt"

// ValidationError reports a field whose value falls outside its allowed
// domain. It is returned before any statement is issued to the database.
type ValidationError struct {
	Field   string
	Value   interface{}
	Allowed string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid value %v for field %s (allowed: %s)", e.Value, e.Field, e.Allowed)
}

func containsString(v string, allowed []string) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}
