package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/fieldkeeper/internal/client/models"
	"github.com/dmitrijs2005/fieldkeeper/internal/validate"
)

const (
	OpAssignedComplaints = "assigned_complaints"
	OpUpdateStatus       = "update_complaint_status"
	OpCustomers          = "customers"
	OpComplaintTypes     = "complaint_types"
	OpPriorities         = "priorities"
	OpExecutives         = "executives"
	OpCreateComplaint    = "create_complaint"
	OpCreateCustomer     = "create_customer"
)

func (c *Client) AssignedComplaints(ctx context.Context) ([]models.Complaint, error) {
	raw, err := c.do(ctx, call{
		op:       OpAssignedComplaints,
		method:   http.MethodGet,
		path:     pathAssignedComplaints,
		auth:     true,
		fallback: "Failed to fetch assigned complaints",
	})
	if err != nil {
		return nil, err
	}
	return decodeList[models.Complaint](OpAssignedComplaints, raw, "complaints")
}

func (c *Client) Customers(ctx context.Context) ([]models.Customer, error) {
	raw, err := c.do(ctx, call{
		op:       OpCustomers,
		method:   http.MethodGet,
		path:     pathCustomers,
		auth:     true,
		fallback: "Failed to fetch customers",
	})
	if err != nil {
		return nil, err
	}
	return decodeList[models.Customer](OpCustomers, raw, "customers")
}

func (c *Client) lookups(ctx context.Context, op, path, key, fallback string) ([]models.Lookup, error) {
	raw, err := c.do(ctx, call{op: op, method: http.MethodGet, path: path, auth: true, fallback: fallback})
	if err != nil {
		return nil, err
	}
	return decodeList[models.Lookup](op, raw, key)
}

func (c *Client) ComplaintTypes(ctx context.Context) ([]models.Lookup, error) {
	return c.lookups(ctx, OpComplaintTypes, pathComplaintTypes, "complaint_types", "Failed to fetch complaint types")
}

func (c *Client) Priorities(ctx context.Context) ([]models.Lookup, error) {
	return c.lookups(ctx, OpPriorities, pathPriorities, "priorities", "Failed to fetch priorities")
}

func (c *Client) Executives(ctx context.Context) ([]models.Lookup, error) {
	return c.lookups(ctx, OpExecutives, pathExecutives, "executives", "Failed to fetch executives")
}

// Authenticated operations with client-side checks look up the token first,
// so a missing session is reported before any field error.

// submit posts a create/update body and resolves the response. A failure
// verdict is returned together with an ErrRejected error.
func (c *Client) submit(ctx context.Context, op, path string, body any, fallback string) (Verdict, error) {
	raw, err := c.do(ctx, call{op: op, method: http.MethodPost, path: path, body: body, auth: true, fallback: fallback})
	if err != nil {
		return Verdict{}, err
	}

	m, err := decodeResult(op, raw)
	if err != nil {
		return Verdict{}, err
	}

	v := Resolve(m, fallback)
	if !v.Success {
		return v, &Error{Op: op, Kind: ErrRejected, Message: v.Message}
	}
	return v, nil
}

// UpdateComplaintStatus posts a new status for the complaint identified by
// reference. reference goes into the path without escaping.
func (c *Client) UpdateComplaintStatus(ctx context.Context, reference string, upd models.StatusUpdate) (Verdict, error) {
	if _, err := c.token(ctx, OpUpdateStatus); err != nil {
		return Verdict{}, err
	}
	if err := validate.First(
		validate.Required("reference", reference),
		validate.Required("status", upd.Status),
	); err != nil {
		return Verdict{}, validationError(OpUpdateStatus, err)
	}
	return c.submit(ctx, OpUpdateStatus, withReference(pathUpdateStatusPrefix, reference), upd, "Failed to update complaint status")
}

func (c *Client) CreateComplaint(ctx context.Context, nc models.NewComplaint) (Verdict, error) {
	if _, err := c.token(ctx, OpCreateComplaint); err != nil {
		return Verdict{}, err
	}
	if err := validate.First(
		validate.Required("customer", nc.Customer),
		validate.Required("complaint_type", nc.ComplaintType),
		validate.Required("priority", nc.Priority),
		validate.Required("description", nc.Description),
	); err != nil {
		return Verdict{}, validationError(OpCreateComplaint, err)
	}
	return c.submit(ctx, OpCreateComplaint, pathCreateComplaint, nc, "Failed to create complaint")
}

func (c *Client) CreateCustomer(ctx context.Context, nc models.NewCustomer) (Verdict, error) {
	if _, err := c.token(ctx, OpCreateCustomer); err != nil {
		return Verdict{}, err
	}
	checks := []error{
		validate.Required("name", nc.Name),
		validate.Phone("phone_number", nc.PhoneNumber),
	}
	if nc.Email != "" {
		checks = append(checks, validate.Email("email", nc.Email))
	}
	if err := validate.First(checks...); err != nil {
		return Verdict{}, validationError(OpCreateCustomer, err)
	}
	return c.submit(ctx, OpCreateCustomer, pathCreateCustomer, nc, "Failed to create customer")
}
