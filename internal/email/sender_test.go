package email

import (
	"context"
	"strings"
	"testing"
)

func TestDisabledSenderReportsReason(t *testing.T) {
	s := NewDisabledSender("smtp host not configured")
	err := s.SendWelcome(context.Background(), "a@x.com", "alice")
	if err == nil {
		t.Fatalf("expected an error from the disabled sender")
	}
	if !strings.Contains(err.Error(), "smtp host not configured") {
		t.Fatalf("expected the reason in the error, got %q", err.Error())
	}
}

func TestDisabledSenderDefaultReason(t *testing.T) {
	s := NewDisabledSender("")
	if err := s.SendWelcome(context.Background(), "a@x.com", "alice"); err == nil {
		t.Fatalf("expected an error from the disabled sender")
	}
}
