package services

import (
	"context"

	"github.com/dmitrijs2005/fieldkeeper/internal/client/models"
	"github.com/dmitrijs2005/fieldkeeper/internal/logging"
)

// AuthAPI is the part of api.Client used by the session service.
type AuthAPI interface {
	GenerateOTP(ctx context.Context, contact string, channel models.Channel) (*models.OTPResponse, error)
	ResendOTP(ctx context.Context, contact string, channel models.Channel) (*models.OTPResponse, error)
	VerifyOTP(ctx context.Context, otp, contact string, channel models.Channel) (*models.LoginResult, error)
	Logout(ctx context.Context) error
}

// Credentials is implemented by credentials.Store.
type Credentials interface {
	Set(ctx context.Context, token string, user models.User)
	Clear(ctx context.Context)
	Token(ctx context.Context) (string, bool)
	User(ctx context.Context) (models.User, bool)
}

// SessionService drives OTP sign-in and sign-out.
//
// Contract:
//   - Login stores the session only when the backend issued a non-empty token,
//     and returns the verification payload either way.
//   - Logout never fails: the remote call is best effort, the local session is
//     always cleared.
type SessionService interface {
	GenerateOTP(ctx context.Context, contact string, channel models.Channel) (*models.OTPResponse, error)
	ResendOTP(ctx context.Context, contact string, channel models.Channel) (*models.OTPResponse, error)
	Login(ctx context.Context, otp, contact string, channel models.Channel) (*models.LoginResult, error)
	Logout(ctx context.Context)
	CurrentUser(ctx context.Context) (models.User, bool)
	IsLoggedIn(ctx context.Context) bool
}

type sessionService struct {
	api   AuthAPI
	creds Credentials
	log   logging.Logger
}

func NewSessionService(api AuthAPI, creds Credentials, log logging.Logger) SessionService {
	if log == nil {
		log = logging.NewDiscard()
	}
	return &sessionService{api: api, creds: creds, log: log.With("component", "session")}
}

func (s *sessionService) GenerateOTP(ctx context.Context, contact string, channel models.Channel) (*models.OTPResponse, error) {
	return s.api.GenerateOTP(ctx, contact, channel)
}

func (s *sessionService) ResendOTP(ctx context.Context, contact string, channel models.Channel) (*models.OTPResponse, error) {
	return s.api.ResendOTP(ctx, contact, channel)
}

func (s *sessionService) Login(ctx context.Context, otp, contact string, channel models.Channel) (*models.LoginResult, error) {
	res, err := s.api.VerifyOTP(ctx, otp, contact, channel)
	if err != nil {
		return nil, err
	}
	if res.Token != "" {
		s.creds.Set(ctx, res.Token, res.User)
		s.log.Info(ctx, "signed in", "user_id", res.User.ID())
	} else {
		s.log.Warn(ctx, "otp verified but no token was issued")
	}
	return res, nil
}

func (s *sessionService) Logout(ctx context.Context) {
	if _, ok := s.creds.Token(ctx); ok {
		if err := s.api.Logout(ctx); err != nil {
			s.log.Warn(ctx, "remote logout failed, clearing local session anyway", "error", err)
		}
	}
	s.creds.Clear(ctx)
	s.log.Info(ctx, "signed out")
}

func (s *sessionService) CurrentUser(ctx context.Context) (models.User, bool) {
	return s.creds.User(ctx)
}

func (s *sessionService) IsLoggedIn(ctx context.Context) bool {
	tok, ok := s.creds.Token(ctx)
	return ok && tok != ""
}
