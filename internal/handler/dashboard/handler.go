// Package dashboard renders the clinician-facing pages. It is a pure
// read-side consumer of the session store: summary numbers and a
// recent-sessions table, charting left to the client.
package dashboard

import (
	"context"
	"html/template"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	sessionModel "github.com/quddos/vr-rehab-dashboard/internal/model/session"
)

const recentLimit = 8

// Store is the read-only slice of the session gateway the pages need.
type Store interface {
	List(ctx context.Context) ([]sessionModel.Session, error)
}

// Handler serves the landing and dashboard pages.
type Handler struct {
	store Store
}

// New creates a dashboard handler backed by the given store.
func New(store Store) *Handler {
	return &Handler{store: store}
}

// RegisterRoutes mounts the pages on the router root.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.handleHome)
	r.Get("/dashboard", h.handleDashboard)
}

type dashboardData struct {
	Total             int
	AverageSmoothness float64
	BestScore         float64
	Recent            []sessionModel.Session
}

func (h *Handler) handleHome(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := homeTmpl.Execute(w, nil); err != nil {
		log.Printf("[dashboard] render home: %v", err)
	}
}

func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.store.List(r.Context())
	if err != nil {
		log.Printf("[dashboard] list sessions: %v", err)
		http.Error(w, "unable to load dashboard", http.StatusInternalServerError)
		return
	}

	data := summarize(sessions)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := dashboardTmpl.Execute(w, data); err != nil {
		log.Printf("[dashboard] render dashboard: %v", err)
	}
}

// summarize computes the header stats and trims the table to the most
// recent sessions. The store already returns newest first.
func summarize(sessions []sessionModel.Session) dashboardData {
	data := dashboardData{Total: len(sessions)}

	var sum float64
	for _, s := range sessions {
		sum += float64(s.Smoothness)
		if float64(s.FinalScore) > data.BestScore {
			data.BestScore = float64(s.FinalScore)
		}
	}
	if len(sessions) > 0 {
		data.AverageSmoothness = sum / float64(len(sessions))
	}

	data.Recent = sessions
	if len(data.Recent) > recentLimit {
		data.Recent = data.Recent[:recentLimit]
	}
	return data
}

// formatDate renders an ISO 8601 timestamp as a short readable date.
// Dates are stored as opaque strings, so anything unparseable is shown
// as-is rather than dropped.
func formatDate(raw string) string {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("Mon, Jan 2")
		}
	}
	return raw
}

var tmplFuncs = template.FuncMap{
	"formatDate": formatDate,
}

var homeTmpl = template.Must(template.New("home").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>VR Stroke Rehab</title>
</head>
<body>
  <main>
    <p>VR Stroke Rehabilitation</p>
    <h1>Real-time insights for clinicians and patients</h1>
    <p>Monitor Unity Quest therapy sessions, track smoothness, balance, and final scores, and share progress transparently.</p>
    <p><a href="/dashboard">Open Dashboard</a></p>
  </main>
</body>
</html>
`))

var dashboardTmpl = template.Must(template.New("dashboard").Funcs(tmplFuncs).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>VR Stroke Rehab | Dashboard</title>
</head>
<body>
  <header>
    <p>VR Stroke Rehabilitation</p>
    <h1>Patient Progress Dashboard</h1>
    <p>Live session data from Meta Quest headsets.</p>
    <p>{{.Total}} total sessions</p>
  </header>
  <section>
    <div><p>Average Smoothness</p><p>{{printf "%.1f" .AverageSmoothness}}</p><span>Higher is better</span></div>
    <div><p>Best Score</p><p>{{printf "%.1f" .BestScore}}</p><span>Peak performance</span></div>
    <div><p>Session Count</p><p>{{.Total}}</p><span>Lifetime total</span></div>
  </section>
  <section>
    <h2>Recent Sessions</h2>
    <p>Showing last {{len .Recent}} sessions</p>
    <table>
      <thead>
        <tr>
          <th>Session ID</th>
          <th>Date</th>
          <th>Smoothness</th>
          <th>Time Score</th>
          <th>Final Score</th>
          <th>Duration (s)</th>
          <th>Left / Right</th>
        </tr>
      </thead>
      <tbody>
        {{range .Recent}}
        <tr>
          <td>{{.SessionID}}</td>
          <td>{{formatDate .Date}}</td>
          <td>{{printf "%.2f" .Smoothness}}</td>
          <td>{{printf "%.2f" .TimeScore}}</td>
          <td>{{printf "%.2f" .FinalScore}}</td>
          <td>{{printf "%.0f" .Duration}}</td>
          <td>{{printf "%.2f" .LeftSmoothness}} / {{printf "%.2f" .RightSmoothness}}</td>
        </tr>
        {{else}}
        <tr><td colspan="7">No sessions recorded yet.</td></tr>
        {{end}}
      </tbody>
    </table>
  </section>
</body>
</html>
`))
