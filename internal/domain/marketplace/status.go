package marketplace

import "strings"

// ===============================
// Worker Status
// ===============================

// Status is a worker's self-reported availability. Any status may follow
// any other; there is no enforced sequence.
type Status string

const (
	StatusPending Status = "pending"
	StatusReady   Status = "ready"
	StatusBusy    Status = "busy"
)

var Statuses = []Status{StatusPending, StatusReady, StatusBusy}

func ParseStatus(s string) Status {
	return Status(strings.ToLower(strings.TrimSpace(s)))
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusReady, StatusBusy:
		return true
	}
	return false
}

// InitialStatus is the status of every freshly registered worker.
func InitialStatus() Status {
	return StatusPending
}
