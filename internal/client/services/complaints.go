package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/fieldkeeper/internal/client/api"
	"github.com/dmitrijs2005/fieldkeeper/internal/client/models"
	"github.com/dmitrijs2005/fieldkeeper/internal/logging"
	"golang.org/x/sync/errgroup"
)

// ComplaintAPI is the part of api.Client used by ComplaintService.
type ComplaintAPI interface {
	AssignedComplaints(ctx context.Context) ([]models.Complaint, error)
	UpdateComplaintStatus(ctx context.Context, reference string, upd models.StatusUpdate) (api.Verdict, error)
	Customers(ctx context.Context) ([]models.Customer, error)
	ComplaintTypes(ctx context.Context) ([]models.Lookup, error)
	Priorities(ctx context.Context) ([]models.Lookup, error)
	Executives(ctx context.Context) ([]models.Lookup, error)
	CreateComplaint(ctx context.Context, nc models.NewComplaint) (api.Verdict, error)
	CreateCustomer(ctx context.Context, nc models.NewCustomer) (api.Verdict, error)
}

// FormOptions holds the dropdown lists of the new-complaint form.
type FormOptions struct {
	ComplaintTypes []models.Lookup
	Priorities     []models.Lookup
	Executives     []models.Lookup
}

type ComplaintService interface {
	Assigned(ctx context.Context) ([]models.Complaint, error)
	UpdateStatus(ctx context.Context, reference string, upd models.StatusUpdate) (api.Verdict, error)
	Customers(ctx context.Context) ([]models.Customer, error)
	SearchCustomers(ctx context.Context, query string) ([]models.Customer, error)
	FormOptions(ctx context.Context) (*FormOptions, error)
	CreateComplaint(ctx context.Context, nc models.NewComplaint) (api.Verdict, error)
	CreateCustomer(ctx context.Context, nc models.NewCustomer) (api.Verdict, error)
}

type complaintService struct {
	api ComplaintAPI
	log logging.Logger
}

func NewComplaintService(api ComplaintAPI, log logging.Logger) ComplaintService {
	if log == nil {
		log = logging.NewDiscard()
	}
	return &complaintService{api: api, log: log.With("component", "complaints")}
}

func (s *complaintService) Assigned(ctx context.Context) ([]models.Complaint, error) {
	return s.api.AssignedComplaints(ctx)
}

func (s *complaintService) UpdateStatus(ctx context.Context, reference string, upd models.StatusUpdate) (api.Verdict, error) {
	v, err := s.api.UpdateComplaintStatus(ctx, strings.TrimSpace(reference), upd)
	if err == nil {
		s.log.Info(ctx, "complaint status updated", "reference", reference, "status", upd.Status)
	}
	return v, err
}

func (s *complaintService) Customers(ctx context.Context) ([]models.Customer, error) {
	return s.api.Customers(ctx)
}

// SearchCustomers fetches the customer list and filters it locally.
func (s *complaintService) SearchCustomers(ctx context.Context, query string) ([]models.Customer, error) {
	list, err := s.api.Customers(ctx)
	if err != nil {
		return nil, err
	}
	return FilterCustomers(list, query), nil
}

// FormOptions loads the three lookup lists in parallel. The first failure
// cancels the rest and is returned.
func (s *complaintService) FormOptions(ctx context.Context) (*FormOptions, error) {
	var opts FormOptions
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		l, err := s.api.ComplaintTypes(gctx)
		if err != nil {
			return fmt.Errorf("complaint types: %w", err)
		}
		opts.ComplaintTypes = l
		return nil
	})
	g.Go(func() error {
		l, err := s.api.Priorities(gctx)
		if err != nil {
			return fmt.Errorf("priorities: %w", err)
		}
		opts.Priorities = l
		return nil
	})
	g.Go(func() error {
		l, err := s.api.Executives(gctx)
		if err != nil {
			return fmt.Errorf("executives: %w", err)
		}
		opts.Executives = l
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &opts, nil
}

func (s *complaintService) CreateComplaint(ctx context.Context, nc models.NewComplaint) (api.Verdict, error) {
	v, err := s.api.CreateComplaint(ctx, nc)
	if err == nil {
		s.log.Info(ctx, "complaint created", "customer", nc.Customer)
	}
	return v, err
}

func (s *complaintService) CreateCustomer(ctx context.Context, nc models.NewCustomer) (api.Verdict, error) {
	nc.Name = strings.TrimSpace(nc.Name)
	nc.PhoneNumber = strings.TrimSpace(nc.PhoneNumber)
	nc.Email = strings.TrimSpace(nc.Email)
	v, err := s.api.CreateCustomer(ctx, nc)
	if err == nil {
		s.log.Info(ctx, "customer created", "name", nc.Name)
	}
	return v, err
}

// FilterCustomers keeps the customers whose name, phone, email or city
// contains query, ignoring case. An empty query keeps everything.
func FilterCustomers(list []models.Customer, query string) []models.Customer {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return list
	}
	out := make([]models.Customer, 0, len(list))
	for _, c := range list {
		for _, f := range []string{c.Name, c.PhoneNumber, c.Email, c.City} {
			if strings.Contains(strings.ToLower(f), q) {
				out = append(out, c)
				break
			}
		}
	}
	return out
}
