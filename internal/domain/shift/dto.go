package shift

// WindowResponse is the resolved current shift window for one employee.
type WindowResponse struct {
	EmployeeID     string `json:"employee_id"`
	ShiftStart     string `json:"shift_start"`
	ShiftEnd       string `json:"shift_end"`
	StartsAt       string `json:"starts_at"`
	EndsAt         string `json:"ends_at"`
	AttributedDate string `json:"attributed_date"`
	Overnight      bool   `json:"overnight"`
	Paused         bool   `json:"paused"`
}
