package models

// Channel selects how the OTP is delivered.
type Channel string

const (
	ChannelPhone Channel = "phone"
	ChannelEmail Channel = "email"
)

func (c Channel) Valid() bool {
	return c == ChannelPhone || c == ChannelEmail
}

// OTPResponse is returned by generate and resend. The raw body is kept so
// callers see the server object unchanged.
type OTPResponse struct {
	Message          string `json:"message"`
	OTPType          string `json:"otp_type"`
	ContactInfo      string `json:"contact_info"`
	ExpiresInMinutes int    `json:"expires_in_minutes"`

	Raw map[string]any `json:"-"`
}

// LoginResult is the verify-otp payload. Token and User are empty when the
// server did not issue a session.
type LoginResult struct {
	Token   string
	User    User
	Message string

	Raw map[string]any
}
