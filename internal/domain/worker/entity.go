package worker

import (
	"time"
)

// Worker is a field operator who clocks in and out at work sites. Workers
// are payroll subjects, not account holders; there are no credentials here.
type Worker struct {
	ID        string
	RUT       string
	FullName  string
	Phone     *string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
