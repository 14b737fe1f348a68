package store

import (
	"context"
	"errors"
	"math"
	"path/filepath"
	"testing"

	sessionModel "github.com/quddos/vr-rehab-dashboard/internal/model/session"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := New(filepath.Join(t.TempDir(), "sessions.db"))
	t.Cleanup(func() { s.Close() })
	return s
}

func payload(id, date string) sessionModel.Payload {
	return sessionModel.Payload{
		SessionID:       id,
		Smoothness:      0.82,
		TimeScore:       0.74,
		FinalScore:      0.78,
		Duration:        320,
		LeftSmoothness:  0.85,
		RightSmoothness: 0.79,
		Date:            date,
	}
}

func TestInsertAndListRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.Insert(ctx, payload("UNITY-001", "2025-03-24T10:30:00Z")); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	sessions, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("got %d sessions, want 1", len(sessions))
	}

	got := sessions[0]
	if got.ID == 0 {
		t.Error("id was not assigned")
	}
	if got.SessionID != "UNITY-001" {
		t.Errorf("session_id = %q", got.SessionID)
	}
	if got.Date != "2025-03-24T10:30:00Z" {
		t.Errorf("date = %q", got.Date)
	}
	checks := map[string]float64{
		"smoothness":       float64(got.Smoothness) - 0.82,
		"time_score":       float64(got.TimeScore) - 0.74,
		"final_score":      float64(got.FinalScore) - 0.78,
		"duration":         float64(got.Duration) - 320,
		"left_smoothness":  float64(got.LeftSmoothness) - 0.85,
		"right_smoothness": float64(got.RightSmoothness) - 0.79,
	}
	for field, diff := range checks {
		if math.Abs(diff) > 1e-9 {
			t.Errorf("%s off by %v", field, diff)
		}
	}
}

func TestListOrdersByDateDescending(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, date := range []string{"2025-01-01", "2025-01-03", "2025-01-02"} {
		if err := s.Insert(ctx, payload("UNITY-"+date, date)); err != nil {
			t.Fatalf("Insert %s: %v", date, err)
		}
	}

	sessions, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	want := []string{"2025-01-03", "2025-01-02", "2025-01-01"}
	if len(sessions) != len(want) {
		t.Fatalf("got %d sessions, want %d", len(sessions), len(want))
	}
	for i, date := range want {
		if sessions[i].Date != date {
			t.Errorf("sessions[%d].Date = %q, want %q", i, sessions[i].Date, date)
		}
	}
}

func TestListBreaksDateTiesByInsertionOrder(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.Insert(ctx, payload("FIRST", "2025-01-01")); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if err := s.Insert(ctx, payload("SECOND", "2025-01-01")); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	sessions, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("got %d sessions, want 2", len(sessions))
	}
	if sessions[0].SessionID != "SECOND" {
		t.Errorf("sessions[0] = %q, want the later insert first", sessions[0].SessionID)
	}
	if sessions[0].ID <= sessions[1].ID {
		t.Errorf("ids not descending: %d then %d", sessions[0].ID, sessions[1].ID)
	}
}

func TestDuplicateSessionIDsAccepted(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if err := s.Insert(ctx, payload("UNITY-001", "2025-01-01")); err != nil {
			t.Fatalf("Insert %d: %v", i, err)
		}
	}

	sessions, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(sessions) != 2 {
		t.Errorf("got %d sessions, want 2", len(sessions))
	}
}

func TestOperationsFailWithoutDSN(t *testing.T) {
	s := New("")
	ctx := context.Background()

	if err := s.Insert(ctx, payload("UNITY-001", "2025-01-01")); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("Insert error = %v, want ErrNotConfigured", err)
	}
	if _, err := s.List(ctx); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("List error = %v, want ErrNotConfigured", err)
	}
}

// Legacy rows written before strict validation can hold strings or
// NULLs in numeric columns; the read path must normalize them to
// numbers instead of failing.
func TestListNormalizesLegacyRows(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	db, err := s.conn()
	if err != nil {
		t.Fatalf("conn: %v", err)
	}
	raw := `INSERT INTO sessions
		(session_id, smoothness, time_score, final_score, duration, left_smoothness, right_smoothness, date)
		VALUES ('LEGACY-1', 'abc', '0.5', NULL, 300, '', 0.7, '2025-01-01')`
	if err := db.Exec(raw).Error; err != nil {
		t.Fatalf("raw insert: %v", err)
	}

	sessions, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("got %d sessions, want 1", len(sessions))
	}

	got := sessions[0]
	if got.Smoothness != 0 {
		t.Errorf("smoothness = %v, want 0", got.Smoothness)
	}
	if got.TimeScore != 0.5 {
		t.Errorf("time_score = %v, want 0.5", got.TimeScore)
	}
	if got.FinalScore != 0 {
		t.Errorf("final_score = %v, want 0", got.FinalScore)
	}
	if got.Duration != 300 {
		t.Errorf("duration = %v, want 300", got.Duration)
	}
	if got.LeftSmoothness != 0 {
		t.Errorf("left_smoothness = %v, want 0", got.LeftSmoothness)
	}
	if got.RightSmoothness != 0.7 {
		t.Errorf("right_smoothness = %v, want 0.7", got.RightSmoothness)
	}
}
