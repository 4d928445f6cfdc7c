// Package notify delivers out-of-band messages to users. The production
// implementation is Twilio SMS; tests substitute the Sender interface.
package notify

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// Sender delivers a message to an E.164 phone number and returns a
// provider message ID.
type Sender interface {
	Send(ctx context.Context, to, body string) (string, error)
}

// TwilioSender sends SMS through the Twilio Messages API.
type TwilioSender struct {
	client *twilio.RestClient
	from   string
}

// NewTwilioSender builds a sender from account credentials and the
// provisioned sending number.
func NewTwilioSender(accountSID, authToken, from string) *TwilioSender {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return &TwilioSender{client: client, from: from}
}

// Send dispatches an SMS and returns the Twilio message SID.
func (s *TwilioSender) Send(_ context.Context, to, body string) (string, error) {
	params := &twilioapi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.from)
	params.SetBody(body)

	msg, err := s.client.Api.CreateMessage(params)
	if err != nil {
		return "", fmt.Errorf("send sms: %w", err)
	}
	if msg.Sid == nil {
		return "", errors.New("send sms: response missing message sid")
	}
	return *msg.Sid, nil
}

// Disabled is the Sender used when Twilio credentials are not configured.
// Every send fails; the caller's swallow-and-log policy keeps the service
// usable without SMS in dev environments.
type Disabled struct{}

func (Disabled) Send(context.Context, string, string) (string, error) {
	return "", errors.New("sms delivery is not configured")
}

// ResetCodeMessage is the SMS body for a password reset code.
func ResetCodeMessage(code string) string {
	return fmt.Sprintf("Your password reset code is: %s. This code will expire in 5 minutes. Do not share this code with anyone.", code)
}

// FormatPhoneNumber coerces a stored mobile number toward E.164: numbers
// already carrying a leading + pass through, anything else is reduced to
// its digits and prefixed. Country-code inference is left to the carrier.
func FormatPhoneNumber(number string) string {
	if strings.HasPrefix(number, "+") {
		return number
	}
	var digits strings.Builder
	for _, r := range number {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	return "+" + digits.String()
}
