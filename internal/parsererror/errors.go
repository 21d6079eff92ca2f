// Package parsererror defines the error types raised while turning raw SMS
// message bodies into transaction records.
package parsererror

import "fmt"

// ExtractionError represents a failure to extract a mandatory field from a
// message body. Extraction failures are expected for non-transactional
// messages and are logged at warning level by callers.
type ExtractionError struct {
	Field          string
	RawDataSnippet string // Optional: a snippet of the message body for debugging
	Reason         string
}

func (e *ExtractionError) Error() string {
	if e.RawDataSnippet != "" {
		return fmt.Sprintf("extraction failed for field '%s': %s. Raw data snippet: '%s'",
			e.Field, e.Reason, e.RawDataSnippet)
	}
	return fmt.Sprintf("extraction failed for field '%s': %s", e.Field, e.Reason)
}

// ValidationError represents a structurally invalid transaction record
// rejected at the storage boundary.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for field '%s': %s", e.Field, e.Reason)
}

// DuplicateIDError represents a storage-level uniqueness conflict on the
// external transaction id. It is non-fatal to callers: the duplicate record
// is rejected, the original remains untouched.
type DuplicateIDError struct {
	TxID string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("duplicate transaction id '%s'", e.TxID)
}
