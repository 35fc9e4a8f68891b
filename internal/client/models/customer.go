package models

import "encoding/json"

type Customer struct {
	ID          string `json:"-"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	City        string `json:"city"`
}

func (c *Customer) UnmarshalJSON(b []byte) error {
	type plain Customer
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	var extra struct {
		ID           any    `json:"id"`
		CustomerName string `json:"customer_name"`
		Phone        string `json:"phone"`
	}
	if err := json.Unmarshal(b, &extra); err != nil {
		return err
	}
	*c = Customer(p)
	c.ID = stringify(extra.ID)
	if c.Name == "" {
		c.Name = extra.CustomerName
	}
	if c.PhoneNumber == "" {
		c.PhoneNumber = extra.Phone
	}
	return nil
}

// NewCustomer is the body of the create customer call.
type NewCustomer struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email,omitempty"`
	Address     string `json:"address,omitempty"`
	City        string `json:"city,omitempty"`
}
