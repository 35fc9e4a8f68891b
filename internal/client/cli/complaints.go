package cli

import (
	"context"

	"github.com/dmitrijs2005/fieldkeeper/internal/client/api"
	"github.com/dmitrijs2005/fieldkeeper/internal/client/models"
)

func (a *App) printVerdict(v api.Verdict, fallback string) {
	if v.Message != "" {
		a.println(v.Message)
		return
	}
	a.println(fallback)
}

func (a *App) Complaints(ctx context.Context) error {
	list, err := a.complaints.Assigned(ctx)
	if err != nil {
		return err
	}
	writeComplaints(a.out, list)
	return nil
}

// UpdateStatus posts a new status for reference, asking for it when empty.
func (a *App) UpdateStatus(ctx context.Context, reference string) error {
	var err error
	if reference == "" {
		if reference, err = a.ask("Complaint reference"); err != nil {
			return err
		}
	}
	status, err := a.ask("New status (e.g. in_progress, resolved)")
	if err != nil {
		return err
	}
	remarks, err := a.ask("Remarks (optional)")
	if err != nil {
		return err
	}

	v, err := a.complaints.UpdateStatus(ctx, reference, models.StatusUpdate{Status: status, Remarks: remarks})
	if err != nil {
		return err
	}
	a.printVerdict(v, "Status updated")
	return nil
}

// Customers lists customers, filtered by query when given.
func (a *App) Customers(ctx context.Context, query string) error {
	list, err := a.complaints.SearchCustomers(ctx, query)
	if err != nil {
		return err
	}
	writeCustomers(a.out, list)
	return nil
}

// AddCustomer creates a customer and shows the refreshed list.
func (a *App) AddCustomer(ctx context.Context) error {
	var nc models.NewCustomer
	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Customer name", &nc.Name},
		{"Phone number (10 digits)", &nc.PhoneNumber},
		{"Email (optional)", &nc.Email},
		{"Address (optional)", &nc.Address},
		{"City (optional)", &nc.City},
	}
	for _, f := range fields {
		s, err := a.ask(f.prompt)
		if err != nil {
			return err
		}
		*f.dst = s
	}

	v, err := a.complaints.CreateCustomer(ctx, nc)
	if err != nil {
		return err
	}
	a.printVerdict(v, "Customer created")
	return a.Customers(ctx, "")
}

// NewComplaint shows the form options, collects the complaint and shows the
// refreshed assignment list.
func (a *App) NewComplaint(ctx context.Context) error {
	opts, err := a.complaints.FormOptions(ctx)
	if err != nil {
		return err
	}

	customer, err := a.ask("Customer ID (see 'customers')")
	if err != nil {
		return err
	}

	writeLookups(a.out, "Complaint types", opts.ComplaintTypes)
	ctype, err := a.ask("Complaint type")
	if err != nil {
		return err
	}

	writeLookups(a.out, "Priorities", opts.Priorities)
	priority, err := a.ask("Priority")
	if err != nil {
		return err
	}

	writeLookups(a.out, "Executives", opts.Executives)
	assignee, err := a.ask("Assign to (optional)")
	if err != nil {
		return err
	}

	desc, err := a.ask("Description")
	if err != nil {
		return err
	}

	nc := models.NewComplaint{
		Customer:      customer,
		ComplaintType: pickLookup(opts.ComplaintTypes, ctype),
		Priority:      pickLookup(opts.Priorities, priority),
		Description:   desc,
	}
	if assignee != "" {
		nc.AssignedTo = pickLookup(opts.Executives, assignee)
	}

	v, err := a.complaints.CreateComplaint(ctx, nc)
	if err != nil {
		return err
	}
	a.printVerdict(v, "Complaint created")
	return a.Complaints(ctx)
}

func (a *App) Lookups(ctx context.Context) error {
	opts, err := a.complaints.FormOptions(ctx)
	if err != nil {
		return err
	}
	writeLookups(a.out, "Complaint types", opts.ComplaintTypes)
	writeLookups(a.out, "Priorities", opts.Priorities)
	writeLookups(a.out, "Executives", opts.Executives)
	return nil
}
