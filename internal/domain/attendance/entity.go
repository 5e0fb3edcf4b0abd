package attendance

import (
	"time"
)

type Attendance struct {
	ID          string
	EmployeeID  string
	Date        time.Time
	Status      Status
	HRApproved  bool
	LateMinutes int
	CheckedInAt *time.Time
	Note        *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Status string

const (
	StatusOnTime  Status = "on_time"
	StatusLate    Status = "late"
	StatusHalfDay Status = "half_day"
	StatusAbsent  Status = "absent"
)

var StatusValues = []string{
	string(StatusOnTime),
	string(StatusLate),
	string(StatusHalfDay),
	string(StatusAbsent),
}
