package notification

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"hospitalflow/internal/journal"
)

func TestNewSender(t *testing.T) {
	tests := []struct {
		channel Channel
		want    string
	}{
		{channel: ChannelEmail, want: "[EMAIL] to=jane@example.com: hello\n"},
		{channel: ChannelSMS, want: "[SMS] to=jane@example.com: hello\n"},
	}

	for _, tt := range tests {
		t.Run(string(tt.channel), func(t *testing.T) {
			var console bytes.Buffer
			j := journal.New(journal.Options{})

			s, err := NewSender(tt.channel, &console, j.Logger())
			if err != nil {
				t.Fatalf("NewSender error: %v", err)
			}
			if s.Channel() != tt.channel {
				t.Fatalf("channel = %q, want %q", s.Channel(), tt.channel)
			}
			if err := s.Send(context.Background(), "jane@example.com", "hello"); err != nil {
				t.Fatalf("Send error: %v", err)
			}
			if console.String() != tt.want {
				t.Fatalf("console = %q, want %q", console.String(), tt.want)
			}

			lines := j.Lines()
			if len(lines) != 1 {
				t.Fatalf("journal lines = %d, want 1", len(lines))
			}
			if !strings.Contains(lines[0], string(tt.channel)+" sent") || !strings.Contains(lines[0], "recipient=jane@example.com") {
				t.Fatalf("line = %q", lines[0])
			}
			if !strings.Contains(lines[0], "message_id=") {
				t.Fatalf("line %q has no message id", lines[0])
			}
		})
	}
}

func TestNewSender_UnknownChannel(t *testing.T) {
	_, err := NewSender(Channel("pigeon"), nil, nil)
	if !errors.Is(err, ErrUnknownChannel) {
		t.Fatalf("error = %v, want %v", err, ErrUnknownChannel)
	}
}

func TestParseChannel(t *testing.T) {
	got, err := ParseChannel(" SMS ")
	if err != nil {
		t.Fatalf("ParseChannel error: %v", err)
	}
	if got != ChannelSMS {
		t.Fatalf("channel = %q, want %q", got, ChannelSMS)
	}
	if _, err := ParseChannel("fax"); !errors.Is(err, ErrUnknownChannel) {
		t.Fatalf("error = %v, want %v", err, ErrUnknownChannel)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("console closed")
}

func TestSend_ConsoleFailure(t *testing.T) {
	s, err := NewSender(ChannelEmail, failingWriter{}, nil)
	if err != nil {
		t.Fatalf("NewSender error: %v", err)
	}
	if err := s.Send(context.Background(), "a", "b"); err == nil {
		t.Fatalf("expected error")
	}
}
