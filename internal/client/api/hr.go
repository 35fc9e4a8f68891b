package api

import (
	"context"

	"github.com/dmitrijs2005/fieldkeeper/internal/client/models"
	"github.com/dmitrijs2005/fieldkeeper/internal/validate"
)

const (
	OpApplyLeave = "apply_leave"
	OpCheckIn    = "check_in"
	OpCheckOut   = "check_out"
	OpCreateAMC  = "create_amc"
)

func (c *Client) ApplyLeave(ctx context.Context, req models.LeaveRequest) (Verdict, error) {
	if _, err := c.token(ctx, OpApplyLeave); err != nil {
		return Verdict{}, err
	}
	if err := validate.First(
		validate.Required("leave_type", req.LeaveType),
		validate.DateRange("from_date", req.FromDate, "to_date", req.ToDate),
		validate.Required("reason", req.Reason),
	); err != nil {
		return Verdict{}, validationError(OpApplyLeave, err)
	}
	return c.submit(ctx, OpApplyLeave, pathApplyLeave, req, "Failed to apply for leave")
}

func (c *Client) CheckIn(ctx context.Context, m models.AttendanceMark) (Verdict, error) {
	return c.submit(ctx, OpCheckIn, pathCheckIn, m, "Check-in failed")
}

func (c *Client) CheckOut(ctx context.Context, m models.AttendanceMark) (Verdict, error) {
	return c.submit(ctx, OpCheckOut, pathCheckOut, m, "Check-out failed")
}

func (c *Client) CreateAMC(ctx context.Context, amc models.NewAMC) (Verdict, error) {
	if _, err := c.token(ctx, OpCreateAMC); err != nil {
		return Verdict{}, err
	}
	checks := []error{
		validate.Required("customer", amc.Customer),
		validate.Required("contract_type", amc.ContractType),
		validate.DateRange("start_date", amc.StartDate, "end_date", amc.EndDate),
	}
	if amc.Amount <= 0 {
		checks = append(checks, &validate.FieldError{Field: "amount", Message: "must be greater than zero"})
	}
	if err := validate.First(checks...); err != nil {
		return Verdict{}, validationError(OpCreateAMC, err)
	}
	return c.submit(ctx, OpCreateAMC, pathCreateAMC, amc, "Failed to create AMC")
}
