// Package contact validates contact-form leads and relays them to the site
// owner by email or, when no email provider is configured, to the log.
package contact

import (
	"bytes"
	"fmt"
	"strings"
)

// Submission is one contact-form post.
type Submission struct {
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	Email            string `json:"email"`
	Phone            string `json:"phone,omitempty"`
	Interest         string `json:"interest"`
	Message          string `json:"message,omitempty"`
	PreferredContact string `json:"preferredContact,omitempty"`
	Timeline         string `json:"timeline,omitempty"`
}

// ValidationError reports missing required fields.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Missing, ", ")
}

// Validate checks that firstName, lastName, email and interest are present.
// Only emptiness is checked; email and phone formats are accepted as given.
func (s Submission) Validate() error {
	var missing []string
	for _, f := range []struct {
		name, value string
	}{
		{"firstName", s.FirstName},
		{"lastName", s.LastName},
		{"email", s.Email},
		{"interest", s.Interest},
	} {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}

// Subject returns the lead email subject line.
func Subject(s Submission) string {
	return fmt.Sprintf("New Lead: %s %s - %s", s.FirstName, s.LastName, s.Interest)
}

// FormatSummary renders the plain-text lead summary sent to the site owner.
// Output is deterministic for a given submission and domain.
func FormatSummary(s Submission, siteDomain string) string {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "New Contact Form Submission\n")
	fmt.Fprintf(&buf, "============================\n\n")
	fmt.Fprintf(&buf, "Name: %s %s\n", s.FirstName, s.LastName)
	fmt.Fprintf(&buf, "Email: %s\n", s.Email)
	fmt.Fprintf(&buf, "Phone: %s\n", orDefault(s.Phone, "Not provided"))
	fmt.Fprintf(&buf, "Interested In: %s\n", s.Interest)
	fmt.Fprintf(&buf, "Timeline: %s\n", orDefault(s.Timeline, "Not specified"))
	fmt.Fprintf(&buf, "Preferred Contact: %s\n", orDefault(s.PreferredContact, "email"))
	fmt.Fprintf(&buf, "\nMessage:\n%s\n", orDefault(s.Message, "Not provided"))
	fmt.Fprintf(&buf, "\n---\nSent from %s", siteDomain)

	return buf.String()
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
