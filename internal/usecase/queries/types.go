package queries

import (
	"time"
)

// CodeView represents read-optimized code record data
type CodeView struct {
	ID        int64     `json:"id"`
	Code      string    `json:"code"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// CheckResult is the outcome of a code check. A missing code is a valid
// negative result, not an error.
type CheckResult struct {
	Found   bool
	Message *string
}
