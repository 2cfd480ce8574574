package record

import (
	"fmt"
	"strings"
)

// ValidationError represents a validation finding with context.
type ValidationError struct {
	Field   string // Field name (e.g., "orcid")
	Code    string // Error code (e.g., "required", "invalid_format")
	Message string // Human-readable message
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationResult contains all validation findings for a record.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationError // Non-fatal issues (record still exportable)
}

// IsValid returns true if there are no errors.
func (r *ValidationResult) IsValid() bool {
	return len(r.Errors) == 0
}

// HasWarnings returns true if there are warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// Error returns a combined error message, or nil if valid.
func (r *ValidationResult) Error() error {
	if r.IsValid() {
		return nil
	}
	var msgs []string
	for _, e := range r.Errors {
		msgs = append(msgs, e.Error())
	}
	return fmt.Errorf("validation failed: %s", strings.Join(msgs, "; "))
}

// Validate checks a canonical record against the identity requirements of
// the relational export. A record is in error when it could never reach the
// output tables; weaker defects are warnings.
func Validate(rec *Record) *ValidationResult {
	result := &ValidationResult{}

	hasORCID := ValidORCID(rec.ORCID)
	hasEmail := ValidEmail(rec.Email)

	if !hasORCID && !hasEmail {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "orcid",
			Code:    "no_identity",
			Message: "record has neither a valid ORCID iD nor a valid email",
		})
	}

	if rec.ORCID != "" && !hasORCID {
		result.Warnings = append(result.Warnings, ValidationError{
			Field:   "orcid",
			Code:    "invalid_format",
			Message: fmt.Sprintf("%q is not a valid ORCID iD", rec.ORCID),
		})
	}

	if rec.Email != "" && !hasEmail {
		result.Warnings = append(result.Warnings, ValidationError{
			Field:   "email",
			Code:    "invalid_format",
			Message: fmt.Sprintf("%q is not a valid email address", rec.Email),
		})
	}

	if rec.Email == "" {
		result.Warnings = append(result.Warnings, ValidationError{
			Field:   "email",
			Code:    "missing",
			Message: "record without an email is excluded from tag resolution",
		})
	}

	if hasEmail && !hasORCID {
		result.Warnings = append(result.Warnings, ValidationError{
			Field:   "orcid",
			Code:    "missing",
			Message: "email-keyed record is excluded from the profile table",
		})
	}

	if rec.FullName == "" {
		result.Warnings = append(result.Warnings, ValidationError{
			Field:   "full_name",
			Code:    "missing",
			Message: "full_name is empty",
		})
	}

	if len(rec.Tags) == 0 {
		result.Warnings = append(result.Warnings, ValidationError{
			Field:   "tags",
			Code:    "missing",
			Message: "record has no tag mentions",
		})
	}

	return result
}
