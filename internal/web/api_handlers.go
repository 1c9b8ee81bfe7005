package web

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/evcraddock/agent-site/internal/content"
	"github.com/evcraddock/agent-site/internal/intro"
	"github.com/evcraddock/agent-site/internal/listing"
)

// apiError writes a JSON error response.
func apiError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	resp := map[string]string{"error": msg}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, `{"error":"encode failed"}`, http.StatusInternalServerError)
	}
}

// apiJSON writes a JSON response with the given status code.
func apiJSON(w http.ResponseWriter, data interface{}, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, `{"error":"encode failed"}`, http.StatusInternalServerError)
	}
}

// handleAPIListings routes /api/listings requests.
func (s *Server) handleAPIListings(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	path := strings.TrimPrefix(r.URL.Path, "/api/listings")
	path = strings.TrimPrefix(path, "/")

	switch path {
	case "":
		s.apiListListings(w, r)
	case "featured":
		apiJSON(w, s.catalog.Featured(), http.StatusOK)
	default:
		id, err := strconv.ParseInt(path, 10, 64)
		if err != nil {
			apiError(w, "invalid listing ID", http.StatusBadRequest)
			return
		}
		l, ok := s.catalog.Get(id)
		if !ok {
			apiError(w, "listing not found", http.StatusNotFound)
			return
		}
		apiJSON(w, l, http.StatusOK)
	}
}

// apiListListings returns the listings matching the query criteria.
// Unparseable numeric parameters are ignored rather than rejected.
func (s *Server) apiListListings(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	crit := listing.ParseCriteria(listing.RawCriteria{
		PriceMin: q.Get("priceMin"),
		PriceMax: q.Get("priceMax"),
		Beds:     q.Get("beds"),
		Location: q.Get("location"),
		Status:   q.Get("status"),
	})
	apiJSON(w, s.catalog.Filter(crit), http.StatusOK)
}

// handleAPINeighborhoods returns all neighborhoods or one by slug.
func (s *Server) handleAPINeighborhoods(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	slug := strings.TrimPrefix(r.URL.Path, "/api/neighborhoods")
	slug = strings.Trim(slug, "/")
	if slug == "" {
		apiJSON(w, content.Neighborhoods(), http.StatusOK)
		return
	}

	n, ok := content.NeighborhoodBySlug(slug)
	if !ok {
		apiError(w, "neighborhood not found", http.StatusNotFound)
		return
	}
	apiJSON(w, n, http.StatusOK)
}

func (s *Server) handleAPITestimonials(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	apiJSON(w, content.Testimonials(), http.StatusOK)
}

func (s *Server) handleAPIStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	apiJSON(w, content.Stats(), http.StatusOK)
}

// handleAPIIntro reports whether this visitor has seen the intro.
func (s *Server) handleAPIIntro(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	apiJSON(w, intro.FromRequest(r), http.StatusOK)
}

// handleAPIIntroSeen records that the intro finished or was skipped.
func (s *Server) handleAPIIntroSeen(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	st := intro.FromRequest(r).MarkSeen()
	intro.Write(w, st)
	apiJSON(w, st, http.StatusOK)
}
