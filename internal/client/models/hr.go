package models

// LeaveRequest is the body of the leave application call. Dates are
// YYYY-MM-DD.
type LeaveRequest struct {
	LeaveType string `json:"leave_type"`
	FromDate  string `json:"from_date"`
	ToDate    string `json:"to_date"`
	Reason    string `json:"reason"`
}

// AttendanceMark is the body of check-in and check-out.
type AttendanceMark struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Remarks   string  `json:"remarks,omitempty"`
}

// NewAMC is the body of the AMC contract creation call.
type NewAMC struct {
	Customer     string  `json:"customer"`
	ContractType string  `json:"contract_type"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	Amount       float64 `json:"amount"`
	Notes        string  `json:"notes,omitempty"`
}
