package email

import (
	"context"
	"strings"
	"testing"
)

func TestSMTPConfigIsConfigured(t *testing.T) {
	tests := []struct {
		name string
		cfg  SMTPConfig
		want bool
	}{
		{"fully configured", SMTPConfig{Host: "smtp.example.com", Port: "587", From: "test@example.com"}, true},
		{"missing host", SMTPConfig{From: "test@example.com"}, false},
		{"missing from", SMTPConfig{Host: "smtp.example.com"}, false},
		{"empty", SMTPConfig{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.IsConfigured(); got != tt.want {
				t.Errorf("IsConfigured() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewSMTPSender(t *testing.T) {
	if _, err := NewSMTPSender(SMTPConfig{}); err == nil {
		t.Fatal("expected error for empty config")
	}

	s, err := NewSMTPSender(SMTPConfig{Host: "smtp.example.com", From: "site@example.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.cfg.Port != "587" {
		t.Errorf("port = %q, want default 587", s.cfg.Port)
	}
	if s.Provider() != "smtp" {
		t.Errorf("Provider() = %q, want smtp", s.Provider())
	}
}

func TestSMTPSendRejectsBeforeDialing(t *testing.T) {
	s, err := NewSMTPSender(SMTPConfig{Host: "smtp.invalid", From: "site@example.com"})
	if err != nil {
		t.Fatalf("new sender: %v", err)
	}

	if err := s.Send(context.Background(), Message{Subject: "x"}); err == nil || !strings.Contains(err.Error(), "no recipients") {
		t.Errorf("err = %v, want no recipients", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := s.Send(ctx, Message{To: []string{"a@example.com"}}); err != context.Canceled {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestBuildMessage(t *testing.T) {
	msg := Message{
		To:      []string{"owner@example.com", "backup@example.com"},
		ReplyTo: "jane@example.com",
		Subject: "New Lead: Jane Doe - buying",
		Text:    "hello",
	}

	got := string(buildMessage("Site <noreply@example.com>", msg))

	for _, want := range []string{
		"From: Site <noreply@example.com>\r\n",
		"To: owner@example.com, backup@example.com\r\n",
		"Reply-To: jane@example.com\r\n",
		"Subject: New Lead: Jane Doe - buying\r\n",
		"\r\n\r\nhello",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("message missing %q:\n%s", want, got)
		}
	}
}

func TestBuildMessageWithoutReplyTo(t *testing.T) {
	got := string(buildMessage("a@example.com", Message{To: []string{"b@example.com"}, Subject: "s"}))
	if strings.Contains(got, "Reply-To") {
		t.Error("expected no Reply-To header")
	}
}
