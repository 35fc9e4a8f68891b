package models

import "encoding/json"

// Complaint is an entry of the assigned complaints list.
type Complaint struct {
	ID            string `json:"-"`
	Reference     string `json:"complaint_id"`
	CustomerName  string `json:"customer_name"`
	ComplaintType string `json:"complaint_type"`
	Priority      string `json:"priority"`
	Status        string `json:"status"`
	Description   string `json:"description"`
	CreatedAt     string `json:"created_at"`
}

func (c *Complaint) UnmarshalJSON(b []byte) error {
	type plain Complaint
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	var ids struct {
		ID        any `json:"id"`
		Reference any `json:"reference"`
	}
	if err := json.Unmarshal(b, &ids); err != nil {
		return err
	}
	*c = Complaint(p)
	c.ID = stringify(ids.ID)
	if c.Reference == "" {
		c.Reference = stringify(ids.Reference)
	}
	if c.Reference == "" {
		c.Reference = c.ID
	}
	return nil
}

// StatusUpdate is the body of the update-status call.
type StatusUpdate struct {
	Status  string `json:"status"`
	Remarks string `json:"remarks,omitempty"`
}

// NewComplaint is the body of the create complaint call.
type NewComplaint struct {
	Customer      string `json:"customer"`
	ComplaintType string `json:"complaint_type"`
	Priority      string `json:"priority"`
	AssignedTo    string `json:"assigned_to,omitempty"`
	Description   string `json:"description"`
}
