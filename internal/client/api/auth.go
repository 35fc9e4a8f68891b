package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dmitrijs2005/fieldkeeper/internal/client/models"
	"github.com/dmitrijs2005/fieldkeeper/internal/validate"
)

const (
	OpGenerateOTP = "generate_otp"
	OpVerifyOTP   = "verify_otp"
	OpResendOTP   = "resend_otp"
	OpLogout      = "logout"
)

// contactBody puts contact under "email" or "phone_number" depending on
// channel, after checking its format.
func contactBody(op string, contact string, channel models.Channel) (map[string]any, error) {
	var err error
	switch channel {
	case models.ChannelEmail:
		err = validate.Email("email", contact)
	case models.ChannelPhone:
		err = validate.Phone("phone_number", contact)
	default:
		err = &validate.FieldError{Field: "channel", Message: "must be phone or email"}
	}
	if err != nil {
		return nil, validationError(op, err)
	}

	if channel == models.ChannelEmail {
		return map[string]any{"email": contact}, nil
	}
	return map[string]any{"phone_number": contact}, nil
}

func (c *Client) requestOTP(ctx context.Context, op, path, fallback, contact string, channel models.Channel) (*models.OTPResponse, error) {
	body, err := contactBody(op, contact, channel)
	if err != nil {
		return nil, err
	}

	raw, err := c.do(ctx, call{op: op, method: http.MethodPost, path: path, body: body, fallback: fallback})
	if err != nil {
		return nil, err
	}

	m, err := decodeObject(op, raw)
	if err != nil {
		return nil, err
	}

	var resp models.OTPResponse
	// typed view is best effort; Raw stays authoritative
	_ = json.Unmarshal(raw, &resp)
	resp.Raw = m
	return &resp, nil
}

// GenerateOTP asks the backend to send a one-time code to contact.
func (c *Client) GenerateOTP(ctx context.Context, contact string, channel models.Channel) (*models.OTPResponse, error) {
	return c.requestOTP(ctx, OpGenerateOTP, pathGenerateOTP, "Failed to send OTP", contact, channel)
}

func (c *Client) ResendOTP(ctx context.Context, contact string, channel models.Channel) (*models.OTPResponse, error) {
	return c.requestOTP(ctx, OpResendOTP, pathResendOTP, "Failed to resend OTP", contact, channel)
}

// VerifyOTP exchanges a code for a session. The returned result has an empty
// Token when the server answered 2xx without issuing one.
func (c *Client) VerifyOTP(ctx context.Context, otp, contact string, channel models.Channel) (*models.LoginResult, error) {
	if err := validate.OTP(otp); err != nil {
		return nil, validationError(OpVerifyOTP, err)
	}
	body, err := contactBody(OpVerifyOTP, contact, channel)
	if err != nil {
		return nil, err
	}
	body["otp"] = otp

	raw, err := c.do(ctx, call{
		op:       OpVerifyOTP,
		method:   http.MethodPost,
		path:     pathVerifyOTP,
		body:     body,
		fallback: "OTP verification failed",
	})
	if err != nil {
		return nil, err
	}

	m, err := decodeObject(OpVerifyOTP, raw)
	if err != nil {
		return nil, err
	}

	res := &models.LoginResult{Raw: m, Message: textOf(m["message"])}
	res.Token, _ = m["token"].(string)
	if u, ok := m["user"].(map[string]any); ok {
		res.User = models.User(u)
	}
	return res, nil
}

// Logout tells the backend to drop the session. It needs a token.
func (c *Client) Logout(ctx context.Context) error {
	_, err := c.do(ctx, call{
		op:       OpLogout,
		method:   http.MethodPost,
		path:     pathLogout,
		auth:     true,
		fallback: "Logout failed",
	})
	return err
}
