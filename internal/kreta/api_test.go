package kreta_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/kretatools/internal/credentials"
	"github.com/kretatools/internal/kreta"
)

func testContext() context.Context {
	return credentials.NewContext(context.Background(), &credentials.Credentials{
		ID:        "id",
		TeacherID: "12345",
		Token:     "session-token",
	})
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSchedule(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(kreta.CookieName)
		if err != nil {
			t.Errorf("missing %s cookie: %s", kreta.CookieName, err)
		} else if cookie.Value != "session-token" {
			t.Errorf("cookie value: expected \"session-token\" got %q", cookie.Value)
		}
		query := r.URL.Query()
		if got := query.Get("tanarId"); got != "12345" {
			t.Errorf("tanarId: expected \"12345\" got %q", got)
		}
		if got := query.Get("start"); got != "2025-03-01" {
			t.Errorf("start: expected \"2025-03-01\" got %q", got)
		}
		if got := query.Get("end"); got != "2025-04-01" {
			t.Errorf("end: expected \"2025-04-01\" got %q", got)
		}
		if got := query.Get("kellCsengetesiRendMegjelenites"); got != "True" {
			t.Errorf("kellCsengetesiRendMegjelenites: expected \"True\" got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `[{"title":"Matematika - 9.A","datum":"2025-03-03T00:00:00","color":"#60BF55"}]`)
	}))
	defer server.Close()

	client := kreta.NewClient(testLogger(), server.URL)

	from, to := kreta.MonthWindow(2025, time.March)
	entries, err := client.Schedule(testContext(), kreta.ScheduleInput{From: from, To: to})
	if err != nil {
		t.Fatal(err)
	}

	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Title != "Matematika - 9.A" {
		t.Fatalf("entries[0].Title: got %q", entries[0].Title)
	}
}

func TestScheduleUnauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := kreta.NewClient(testLogger(), server.URL)

	from, to := kreta.MonthWindow(2025, time.March)
	if _, err := client.Schedule(testContext(), kreta.ScheduleInput{From: from, To: to}); !errors.Is(err, kreta.ErrUnauthorized) {
		t.Fatalf("expected %q, got %q", kreta.ErrUnauthorized, err)
	}
}

func TestScheduleMissingCredentials(t *testing.T) {
	client := kreta.NewClient(testLogger(), "http://localhost")

	from, to := kreta.MonthWindow(2025, time.March)
	if _, err := client.Schedule(context.Background(), kreta.ScheduleInput{From: from, To: to}); !errors.Is(err, kreta.ErrCredentialsMissingFromContext) {
		t.Fatalf("expected %q, got %q", kreta.ErrCredentialsMissingFromContext, err)
	}
}

func TestMonthWindow(t *testing.T) {
	from, to := kreta.MonthWindow(2025, time.December)
	if from.Format(time.DateOnly) != "2025-12-01" {
		t.Fatalf("from: got %s", from.Format(time.DateOnly))
	}
	if to.Format(time.DateOnly) != "2026-01-01" {
		t.Fatalf("to: got %s", to.Format(time.DateOnly))
	}
}
