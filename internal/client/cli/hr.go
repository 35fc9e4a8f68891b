package cli

import (
	"context"

	"github.com/dmitrijs2005/fieldkeeper/internal/client/models"
)

func (a *App) ApplyLeave(ctx context.Context) error {
	var req models.LeaveRequest
	var err error
	if req.LeaveType, err = a.ask("Leave type (e.g. casual, sick)"); err != nil {
		return err
	}
	if req.FromDate, err = a.ask("From date (YYYY-MM-DD)"); err != nil {
		return err
	}
	if req.ToDate, err = a.ask("To date (YYYY-MM-DD)"); err != nil {
		return err
	}
	if req.Reason, err = a.ask("Reason"); err != nil {
		return err
	}

	v, err := a.hr.ApplyLeave(ctx, req)
	if err != nil {
		return err
	}
	a.printVerdict(v, "Leave request submitted")
	return nil
}

func (a *App) askAttendance() (models.AttendanceMark, error) {
	var m models.AttendanceMark
	var err error
	if m.Latitude, err = GetFloat(a.reader, "Latitude", 0, a.out); err != nil {
		return m, err
	}
	if m.Longitude, err = GetFloat(a.reader, "Longitude", 0, a.out); err != nil {
		return m, err
	}
	m.Remarks, err = a.ask("Remarks (optional)")
	return m, err
}

func (a *App) CheckIn(ctx context.Context) error {
	m, err := a.askAttendance()
	if err != nil {
		return err
	}
	v, err := a.hr.CheckIn(ctx, m)
	if err != nil {
		return err
	}
	a.printVerdict(v, "Checked in")
	return nil
}

func (a *App) CheckOut(ctx context.Context) error {
	m, err := a.askAttendance()
	if err != nil {
		return err
	}
	v, err := a.hr.CheckOut(ctx, m)
	if err != nil {
		return err
	}
	a.printVerdict(v, "Checked out")
	return nil
}

func (a *App) CreateAMC(ctx context.Context) error {
	var amc models.NewAMC
	var err error
	if amc.Customer, err = a.ask("Customer ID"); err != nil {
		return err
	}
	if amc.ContractType, err = a.ask("Contract type (e.g. comprehensive, labour)"); err != nil {
		return err
	}
	if amc.StartDate, err = a.ask("Start date (YYYY-MM-DD)"); err != nil {
		return err
	}
	if amc.EndDate, err = a.ask("End date (YYYY-MM-DD)"); err != nil {
		return err
	}
	if amc.Amount, err = GetFloat(a.reader, "Amount", 0, a.out); err != nil {
		return err
	}
	if amc.Notes, err = a.ask("Notes (optional)"); err != nil {
		return err
	}

	v, err := a.hr.CreateAMC(ctx, amc)
	if err != nil {
		return err
	}
	a.printVerdict(v, "AMC contract created")
	return nil
}
