package contact

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

// recordingNotifier counts calls and captures the last message.
type recordingNotifier struct {
	method string
	calls  int
	last   Message
	err    error
}

func (r *recordingNotifier) Notify(ctx context.Context, msg Message) error {
	r.calls++
	r.last = msg
	return r.err
}

func (r *recordingNotifier) Method() string { return r.method }

func TestSubmitValidationGate(t *testing.T) {
	n := &recordingNotifier{method: "resend"}
	svc := NewService(n, "example.com")

	sub := Submission{FirstName: "Jane", LastName: "Doe", Email: "", Interest: "buying"}
	_, err := svc.Submit(context.Background(), sub)

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want *ValidationError", err)
	}
	if n.calls != 0 {
		t.Errorf("notifier called %d times, want 0", n.calls)
	}
}

func TestSubmitEmailRouting(t *testing.T) {
	n := &recordingNotifier{method: "resend"}
	svc := NewService(n, "example.com")

	sub := validSubmission()
	sub.Interest = "selling"
	receipt, err := svc.Submit(context.Background(), sub)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if receipt != (Receipt{Success: true, Method: "resend"}) {
		t.Errorf("receipt = %+v", receipt)
	}
	if n.calls != 1 {
		t.Fatalf("notifier called %d times, want exactly 1", n.calls)
	}
	if n.last.ReplyTo != sub.Email {
		t.Errorf("reply-to = %q, want %q", n.last.ReplyTo, sub.Email)
	}
	if !strings.Contains(n.last.Subject, "selling") {
		t.Errorf("subject %q does not contain interest", n.last.Subject)
	}
	if n.last.Subject != "New Lead: Jane Doe - selling" {
		t.Errorf("subject = %q", n.last.Subject)
	}
}

func TestSubmitLoggedFallback(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	svc := NewService(NewLogNotifier(logger), "samcampolorealestate.com")

	receipt, err := svc.Submit(context.Background(), validSubmission())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if !receipt.Success || receipt.Method != "logged" {
		t.Errorf("receipt = %+v, want success via logged", receipt)
	}
	if receipt.Message == "" {
		t.Error("expected notice that delivery was not attempted")
	}

	out := buf.String()
	for _, want := range []string{"Not provided", "Not specified", "Jane Doe"} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q:\n%s", want, out)
		}
	}
}

func TestSubmitDispatchError(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	n := &recordingNotifier{method: "resend", err: cause}
	svc := NewService(n, "example.com")

	_, err := svc.Submit(context.Background(), validSubmission())

	var derr *DispatchError
	if !errors.As(err, &derr) {
		t.Fatalf("err = %v, want *DispatchError", err)
	}
	if derr.Method != "resend" {
		t.Errorf("method = %q", derr.Method)
	}
	if !errors.Is(err, cause) {
		t.Error("dispatch error should wrap the cause")
	}
	if n.calls != 1 {
		t.Errorf("notifier called %d times, want 1 (no retry)", n.calls)
	}
}

func TestSubmitNotIdempotent(t *testing.T) {
	n := &recordingNotifier{method: "resend"}
	svc := NewService(n, "example.com")

	for i := 0; i < 2; i++ {
		if _, err := svc.Submit(context.Background(), validSubmission()); err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
	}
	if n.calls != 2 {
		t.Errorf("notifier called %d times, want 2", n.calls)
	}
}
