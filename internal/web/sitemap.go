package web

import (
	"encoding/xml"
	"net/http"
	"time"
)

const sitemapNS = "http://www.sitemaps.org/schemas/sitemap/0.9"

type sitemapPage struct {
	Path       string
	ChangeFreq string
	Priority   string
}

var sitemapPages = []sitemapPage{
	{"", "weekly", "1.0"},
	{"/listings", "daily", "0.9"},
	{"/neighborhoods", "weekly", "0.8"},
	{"/about", "monthly", "0.8"},
	{"/contact", "monthly", "0.8"},
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

// buildSitemap returns the sitemap for the public pages under baseURL.
func buildSitemap(baseURL string, lastMod time.Time) urlSet {
	set := urlSet{Xmlns: sitemapNS}
	for _, p := range sitemapPages {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        baseURL + p.Path,
			LastMod:    lastMod.Format("2006-01-02"),
			ChangeFreq: p.ChangeFreq,
			Priority:   p.Priority,
		})
	}
	return set
}

func (s *Server) handleSitemap(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	data, err := xml.MarshalIndent(buildSitemap(s.baseURL, s.started), "", "  ")
	if err != nil {
		http.Error(w, "building sitemap", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(xml.Header))
	_, _ = w.Write(data)
}
