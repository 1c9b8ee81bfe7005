// Package intro tracks whether a visitor has already watched the splash
// intro. The state is per browser and moves one way: once seen, it stays
// seen until the cookie expires.
package intro

import (
	"net/http"
	"time"
)

const (
	// CookieName is shared with the front end, which reads it to decide
	// whether to play the splash.
	CookieName = "hasSeenIntro"
	cookieTTL  = 24 * time.Hour
)

// State is the visitor's intro state for one request.
type State struct {
	Seen bool `json:"hasSeenIntro"`
}

// FromRequest reads the intro state from the request cookie.
func FromRequest(r *http.Request) State {
	c, err := r.Cookie(CookieName)
	if err != nil {
		return State{}
	}
	return State{Seen: c.Value == "true"}
}

// MarkSeen returns the seen state. Marking an already-seen state is a no-op.
func (s State) MarkSeen() State {
	return State{Seen: true}
}

// Write persists s on the response. An unseen state writes nothing, so the
// flag can never be reset from the server side.
func Write(w http.ResponseWriter, s State) {
	if !s.Seen {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "true",
		Path:     "/",
		MaxAge:   int(cookieTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
