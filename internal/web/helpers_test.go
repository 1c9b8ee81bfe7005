package web

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/evcraddock/agent-site/internal/contact"
	"github.com/evcraddock/agent-site/internal/listing"
)

// fakeNotifier records notifications and optionally fails.
type fakeNotifier struct {
	method string
	calls  int
	last   contact.Message
	err    error
}

func (f *fakeNotifier) Notify(ctx context.Context, msg contact.Message) error {
	f.calls++
	f.last = msg
	return f.err
}

func (f *fakeNotifier) Method() string { return f.method }

// testServer creates a server over the default catalog.
func testServer(t *testing.T, n contact.Notifier) *Server {
	t.Helper()
	return NewServer(listing.DefaultCatalog(), contact.NewService(n, "samcampolorealestate.com"), "https://samcampolorealestate.com/")
}

// captureLogs swaps the default logger for a buffer for the test's duration.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	old := slog.Default()
	t.Cleanup(func() { slog.SetDefault(old) })
	var buf bytes.Buffer
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return &buf
}

func apiRequest(t *testing.T, h http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reqBody *bytes.Buffer
	switch b := body.(type) {
	case nil:
		reqBody = &bytes.Buffer{}
	case string:
		reqBody = bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reqBody = bytes.NewBuffer(data)
	}

	r := httptest.NewRequest(method, path, reqBody)
	if body != nil {
		r.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

func listingIDs(ls []listing.Listing) []int64 {
	ids := make([]int64, 0, len(ls))
	for _, l := range ls {
		ids = append(ids, l.ID)
	}
	return ids
}

func apiRequestWithCookie(t *testing.T, h http.Handler, path string, c *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	r := httptest.NewRequest("GET", path, nil)
	r.AddCookie(c)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}
