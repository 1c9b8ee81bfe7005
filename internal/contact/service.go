package contact

import (
	"context"
	"fmt"
)

const loggedNotice = "Form submitted successfully. Email delivery requires RESEND_API_KEY."

// Receipt acknowledges a processed submission.
type Receipt struct {
	Success bool   `json:"success"`
	Method  string `json:"method"`
	Message string `json:"message,omitempty"`
}

// DispatchError wraps a failed delivery attempt.
type DispatchError struct {
	Method string
	Err    error
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("dispatching via %s: %v", e.Method, e.Err)
}

func (e *DispatchError) Unwrap() error {
	return e.Err
}

// Service processes contact submissions. It holds no per-request state and
// is safe for concurrent use when its notifier is.
type Service struct {
	notifier   Notifier
	siteDomain string
}

// NewService creates a contact service. siteDomain appears in the summary
// footer.
func NewService(notifier Notifier, siteDomain string) *Service {
	return &Service{notifier: notifier, siteDomain: siteDomain}
}

// Method returns the delivery path chosen at startup.
func (s *Service) Method() string {
	return s.notifier.Method()
}

// Submit validates sub and relays it once. Identical submissions are relayed
// independently; there is no dedup and no retry.
func (s *Service) Submit(ctx context.Context, sub Submission) (Receipt, error) {
	if err := sub.Validate(); err != nil {
		return Receipt{}, err
	}

	msg := Message{
		ReplyTo: sub.Email,
		Subject: Subject(sub),
		Body:    FormatSummary(sub, s.siteDomain),
	}

	method := s.notifier.Method()
	if err := s.notifier.Notify(ctx, msg); err != nil {
		return Receipt{}, &DispatchError{Method: method, Err: err}
	}

	r := Receipt{Success: true, Method: method}
	if method == MethodLogged {
		r.Message = loggedNotice
	}
	return r, nil
}
