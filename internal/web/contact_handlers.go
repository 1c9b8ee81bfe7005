package web

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/evcraddock/agent-site/internal/contact"
	"github.com/evcraddock/agent-site/internal/logging"
)

const maxContactBody = 64 << 10

// handleAPIContact accepts a contact form submission and relays it.
// Failures other than missing fields get one generic 500 body; the cause is
// logged, never returned.
func (s *Server) handleAPIContact(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	log := slog.With("request_id", logging.RequestID(r.Context()))

	var sub contact.Submission
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxContactBody)).Decode(&sub); err != nil {
		log.Error("contact form error", "error", err)
		apiError(w, "Failed to process submission", http.StatusInternalServerError)
		return
	}

	receipt, err := s.contact.Submit(r.Context(), sub)
	if err != nil {
		var verr *contact.ValidationError
		if errors.As(err, &verr) {
			log.Warn("contact form rejected", "missing", verr.Missing)
			apiError(w, "Missing required fields", http.StatusBadRequest)
			return
		}
		log.Error("contact form error", "error", err)
		apiError(w, "Failed to process submission", http.StatusInternalServerError)
		return
	}

	log.Info("contact form relayed", "method", receipt.Method, "interest", sub.Interest)
	apiJSON(w, receipt, http.StatusOK)
}
