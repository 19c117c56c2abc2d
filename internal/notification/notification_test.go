package notification

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type recordingSender struct {
	sent []string
	err  error
}

func (s *recordingSender) Send(to, body string) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, to+": "+body)
	return nil
}

func TestGateway_NilSenderIsLogOnly(t *testing.T) {
	gateway := NewGateway(nil)

	// Must behave identically to a successful send at the call site.
	require.NotPanics(t, func() {
		gateway.Notify("+911111111111", "hello")
	})
}

func TestGateway_DeliversThroughSender(t *testing.T) {
	sender := &recordingSender{}
	gateway := NewGateway(sender)

	gateway.Notify("+911111111111", "hello")
	require.Equal(t, []string{"+911111111111: hello"}, sender.sent)
}

func TestGateway_SenderFailureIsSwallowed(t *testing.T) {
	sender := &recordingSender{err: errors.New("provider down")}
	gateway := NewGateway(sender)

	require.NotPanics(t, func() {
		gateway.Notify("+911111111111", "hello")
	})
	require.Empty(t, sender.sent)
}
