package content

import "fmt"

// ValidationError reports a structural problem with decoded content
// that JSON schema validation alone did not catch.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid content: %s: %s", e.Field, e.Reason)
}
