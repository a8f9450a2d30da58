// Package notification delivers appointment status changes to patients and
// staff. Delivery is a console stub; every send is also journaled.
package notification

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

var ErrUnknownChannel = errors.New("unknown notification channel")

type Channel string

const (
	ChannelEmail Channel = "email"
	ChannelSMS   Channel = "sms"
)

func ParseChannel(raw string) (Channel, error) {
	switch c := Channel(strings.ToLower(strings.TrimSpace(raw))); c {
	case ChannelEmail, ChannelSMS:
		return c, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownChannel, raw)
	}
}

// Sender is a single delivery channel.
type Sender interface {
	Channel() Channel
	Send(ctx context.Context, recipient, message string) error
}

// NewSender builds the sender for channel. Output goes to console.
func NewSender(channel Channel, console io.Writer, log *slog.Logger) (Sender, error) {
	if log == nil {
		log = slog.Default()
	}
	switch channel {
	case ChannelEmail:
		return &EmailSender{stub: newStub(ChannelEmail, console, log)}, nil
	case ChannelSMS:
		return &SMSSender{stub: newStub(ChannelSMS, console, log)}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownChannel, string(channel))
	}
}

type EmailSender struct {
	stub
}

type SMSSender struct {
	stub
}

type stub struct {
	channel Channel
	console io.Writer
	log     *slog.Logger
}

func newStub(channel Channel, console io.Writer, log *slog.Logger) stub {
	if console == nil {
		console = io.Discard
	}
	return stub{
		channel: channel,
		console: console,
		log:     log.With(slog.String("component", "notification."+string(channel))),
	}
}

func (s stub) Channel() Channel {
	return s.channel
}

func (s stub) Send(_ context.Context, recipient, message string) error {
	if _, err := fmt.Fprintf(s.console, "[%s] to=%s: %s\n", strings.ToUpper(string(s.channel)), recipient, message); err != nil {
		return fmt.Errorf("write %s notification: %w", s.channel, err)
	}
	s.log.Info(
		string(s.channel)+" sent",
		slog.String("message_id", uuid.NewString()),
		slog.String("recipient", recipient),
	)
	return nil
}
