package services

import (
	"context"
	"errors"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/dmitrijs2005/fieldkeeper/internal/client/api"
	"github.com/dmitrijs2005/fieldkeeper/internal/client/models"
	"github.com/dmitrijs2005/fieldkeeper/internal/devserver"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeComplaintAPI struct {
	complaints []models.Complaint
	customers  []models.Customer
	types      []models.Lookup
	priorities []models.Lookup
	executives []models.Lookup

	lookupErr error
	verdict   api.Verdict
	err       error

	lookupCalls atomic.Int32
	lastRef     string
	lastCust    models.NewCustomer
}

func (f *fakeComplaintAPI) AssignedComplaints(context.Context) ([]models.Complaint, error) {
	return f.complaints, f.err
}

func (f *fakeComplaintAPI) UpdateComplaintStatus(_ context.Context, ref string, _ models.StatusUpdate) (api.Verdict, error) {
	f.lastRef = ref
	return f.verdict, f.err
}

func (f *fakeComplaintAPI) Customers(context.Context) ([]models.Customer, error) {
	return f.customers, f.err
}

func (f *fakeComplaintAPI) ComplaintTypes(context.Context) ([]models.Lookup, error) {
	f.lookupCalls.Add(1)
	return f.types, nil
}

func (f *fakeComplaintAPI) Priorities(context.Context) ([]models.Lookup, error) {
	f.lookupCalls.Add(1)
	return f.priorities, f.lookupErr
}

func (f *fakeComplaintAPI) Executives(context.Context) ([]models.Lookup, error) {
	f.lookupCalls.Add(1)
	return f.executives, nil
}

func (f *fakeComplaintAPI) CreateComplaint(context.Context, models.NewComplaint) (api.Verdict, error) {
	return f.verdict, f.err
}

func (f *fakeComplaintAPI) CreateCustomer(_ context.Context, nc models.NewCustomer) (api.Verdict, error) {
	f.lastCust = nc
	return f.verdict, f.err
}

var sampleCustomers = []models.Customer{
	{ID: "1", Name: "Acme Traders", PhoneNumber: "9876500001", Email: "ops@acme.example", City: "Pune"},
	{ID: "2", Name: "Shree Cold Storage", PhoneNumber: "9876500002", City: "Nashik"},
	{ID: "3", Name: "Nova Foods", PhoneNumber: "9123400003", Email: "hello@nova.example", City: "PUNE"},
}

func TestFilterCustomers(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"empty keeps all", "", []string{"1", "2", "3"}},
		{"blank keeps all", "   ", []string{"1", "2", "3"}},
		{"name case-insensitive", "acme", []string{"1"}},
		{"phone fragment", "98765", []string{"1", "2"}},
		{"email", "nova.example", []string{"3"}},
		{"city ignores case", "pune", []string{"1", "3"}},
		{"no match", "zzz", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterCustomers(sampleCustomers, tt.query)
			ids := make([]string, 0, len(got))
			for _, c := range got {
				ids = append(ids, c.ID)
			}
			if diff := cmp.Diff(tt.want, ids); diff != "" {
				t.Errorf("FilterCustomers(%q) mismatch (-want +got):\n%s", tt.query, diff)
			}
		})
	}
}

func TestSearchCustomers_PropagatesError(t *testing.T) {
	boom := &api.Error{Op: api.OpCustomers, Kind: api.ErrTransport, Message: "down"}
	svc := NewComplaintService(&fakeComplaintAPI{err: boom}, nil)

	_, err := svc.SearchCustomers(context.Background(), "acme")
	require.ErrorIs(t, err, api.ErrTransport)
}

func TestFormOptions_LoadsAllThree(t *testing.T) {
	f := &fakeComplaintAPI{
		types:      []models.Lookup{{ID: "1", Name: "Electrical"}},
		priorities: []models.Lookup{{ID: "High", Name: "High"}},
		executives: []models.Lookup{{ID: "7", Name: "Asha Patil"}},
	}
	svc := NewComplaintService(f, nil)

	opts, err := svc.FormOptions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, f.types, opts.ComplaintTypes)
	assert.Equal(t, f.priorities, opts.Priorities)
	assert.Equal(t, f.executives, opts.Executives)
	assert.EqualValues(t, 3, f.lookupCalls.Load())
}

func TestFormOptions_ErrorNamesTheList(t *testing.T) {
	f := &fakeComplaintAPI{lookupErr: errors.New("boom")}
	svc := NewComplaintService(f, nil)

	opts, err := svc.FormOptions(context.Background())
	require.Error(t, err)
	assert.Nil(t, opts)
	assert.Contains(t, err.Error(), "priorities")
}

func TestUpdateStatus_TrimsReference(t *testing.T) {
	f := &fakeComplaintAPI{verdict: api.Verdict{Success: true}}
	svc := NewComplaintService(f, nil)

	_, err := svc.UpdateStatus(context.Background(), "  C-100 ", models.StatusUpdate{Status: "closed"})
	require.NoError(t, err)
	assert.Equal(t, "C-100", f.lastRef)
}

func TestCreateCustomer_TrimsInput(t *testing.T) {
	f := &fakeComplaintAPI{verdict: api.Verdict{Success: true}}
	svc := NewComplaintService(f, nil)

	_, err := svc.CreateCustomer(context.Background(), models.NewCustomer{Name: " Ravi ", PhoneNumber: " 9876543210 "})
	require.NoError(t, err)
	assert.Equal(t, "Ravi", f.lastCust.Name)
	assert.Equal(t, "9876543210", f.lastCust.PhoneNumber)
}

func TestComplaintFlow_DevServer(t *testing.T) {
	srv := httptest.NewServer(devserver.New(devserver.Options{}).Router())
	defer srv.Close()

	ctx := context.Background()
	store := openStore(t)
	client := api.New(srv.URL, store)
	session := NewSessionService(client, store, nil)
	svc := NewComplaintService(client, nil)

	_, err := session.GenerateOTP(ctx, "tech@field.example", models.ChannelEmail)
	require.NoError(t, err)
	_, err = session.Login(ctx, devserver.DefaultOTP, "tech@field.example", models.ChannelEmail)
	require.NoError(t, err)

	opts, err := svc.FormOptions(ctx)
	require.NoError(t, err)
	assert.Len(t, opts.ComplaintTypes, 3)
	assert.Len(t, opts.Priorities, 3)
	assert.Len(t, opts.Executives, 2)

	// message text wins over an explicit success=false
	v, err := svc.CreateCustomer(ctx, models.NewCustomer{Name: "Ravi Kumar", PhoneNumber: "9000000001", Email: "ravi@example.com"})
	require.NoError(t, err)
	assert.True(t, v.Success)
	assert.Equal(t, "Customer created successfully but email failed", v.Message)

	v, err = svc.CreateCustomer(ctx, models.NewCustomer{Name: "Dup", PhoneNumber: "9000000001"})
	require.ErrorIs(t, err, api.ErrRejected)
	assert.False(t, v.Success)
	assert.Equal(t, "Customer with this phone number already exists", v.Message)

	found, err := svc.SearchCustomers(ctx, "ravi")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Ravi Kumar", found[0].Name)

	_, err = svc.CreateComplaint(ctx, models.NewComplaint{
		Customer: found[0].ID, ComplaintType: "1", Priority: "High", Description: "No cooling",
	})
	require.NoError(t, err)

	list, err := svc.Assigned(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	_, err = svc.UpdateStatus(ctx, "C-100", models.StatusUpdate{Status: "resolved", Remarks: "replaced relay"})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, "C-999", models.StatusUpdate{Status: "resolved"})
	require.ErrorIs(t, err, api.ErrServer)
	assert.EqualError(t, err, "Complaint C-999 not found")
}
