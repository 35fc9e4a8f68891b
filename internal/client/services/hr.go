package services

import (
	"context"

	"github.com/dmitrijs2005/fieldkeeper/internal/client/api"
	"github.com/dmitrijs2005/fieldkeeper/internal/client/models"
	"github.com/dmitrijs2005/fieldkeeper/internal/logging"
)

// HRAPI is the part of api.Client used by HRService.
type HRAPI interface {
	ApplyLeave(ctx context.Context, req models.LeaveRequest) (api.Verdict, error)
	CheckIn(ctx context.Context, m models.AttendanceMark) (api.Verdict, error)
	CheckOut(ctx context.Context, m models.AttendanceMark) (api.Verdict, error)
	CreateAMC(ctx context.Context, amc models.NewAMC) (api.Verdict, error)
}

// HRService covers leave, attendance and AMC contracts.
type HRService interface {
	ApplyLeave(ctx context.Context, req models.LeaveRequest) (api.Verdict, error)
	CheckIn(ctx context.Context, m models.AttendanceMark) (api.Verdict, error)
	CheckOut(ctx context.Context, m models.AttendanceMark) (api.Verdict, error)
	CreateAMC(ctx context.Context, amc models.NewAMC) (api.Verdict, error)
}

type hrService struct {
	api HRAPI
	log logging.Logger
}

func NewHRService(api HRAPI, log logging.Logger) HRService {
	if log == nil {
		log = logging.NewDiscard()
	}
	return &hrService{api: api, log: log.With("component", "hr")}
}

func (s *hrService) logged(ctx context.Context, what string, v api.Verdict, err error) (api.Verdict, error) {
	if err != nil {
		s.log.Debug(ctx, what+" not accepted", "error", err)
		return v, err
	}
	s.log.Info(ctx, what+" accepted")
	return v, nil
}

func (s *hrService) ApplyLeave(ctx context.Context, req models.LeaveRequest) (api.Verdict, error) {
	v, err := s.api.ApplyLeave(ctx, req)
	return s.logged(ctx, "leave request", v, err)
}

func (s *hrService) CheckIn(ctx context.Context, m models.AttendanceMark) (api.Verdict, error) {
	v, err := s.api.CheckIn(ctx, m)
	return s.logged(ctx, "check-in", v, err)
}

func (s *hrService) CheckOut(ctx context.Context, m models.AttendanceMark) (api.Verdict, error) {
	v, err := s.api.CheckOut(ctx, m)
	return s.logged(ctx, "check-out", v, err)
}

func (s *hrService) CreateAMC(ctx context.Context, amc models.NewAMC) (api.Verdict, error) {
	v, err := s.api.CreateAMC(ctx, amc)
	return s.logged(ctx, "amc contract", v, err)
}
