package notification

import (
	"farmer-market/utils"

	"github.com/subosito/twilio"
)

// Sender delivers a single SMS message to a phone number.
type Sender interface {
	Send(to, body string) error
}

// Ensure sender implements interface.
var _ Sender = &TwilioSender{}

// TwilioSender sends SMS messages through the Twilio REST API.
type TwilioSender struct {
	// API settings.
	AccountSID string
	AuthToken  string

	// Sender phone number.
	From string
}

// Send sends an SMS message.
func (s *TwilioSender) Send(to, body string) error {
	client := twilio.NewClient(s.AccountSID, s.AuthToken, nil)

	ret, _, err := client.Messages.SendSMS(s.From, to, body)
	if err != nil {
		return err
	}

	utils.Info("sms sent", map[string]any{"to": to, "sid": ret.Sid})
	return nil
}

// Gateway is the fire-and-forget notification surface used by business
// logic. Delivery failures are logged and swallowed; with no sender
// configured, Notify logs the message locally and does nothing else.
type Gateway struct {
	sender Sender
}

// NewGateway creates a gateway around an optional sender. A nil sender
// yields a log-only gateway.
func NewGateway(sender Sender) *Gateway {
	return &Gateway{sender: sender}
}

// Notify sends a message to a phone number. It never fails the caller.
func (g *Gateway) Notify(to, body string) {
	if g.sender == nil {
		utils.Info("sms not sent (provider not configured)", map[string]any{"to": to, "body": body})
		return
	}
	if err := g.sender.Send(to, body); err != nil {
		utils.Error("sms delivery failed", map[string]any{"to": to, "error": err.Error()})
	}
}
