package main

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/kretatools/internal/attendance"
	"github.com/kretatools/internal/calendars"
)

func TestAggregateInvalidMonth(t *testing.T) {
	databasePath := filepath.Join(t.TempDir(), "kretatools.db")
	t.Setenv("KRETATOOLS_DATABASE_PATH", databasePath)

	root := newRootCommand(slog.New(slog.NewTextHandler(io.Discard, nil)))
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"aggregate", "--year", "2025", "--month", "13"})

	if err := root.Execute(); !errors.Is(err, attendance.ErrInvalidMonth) {
		t.Fatalf("expected %q, got %q", attendance.ErrInvalidMonth, err)
	}

	if _, err := os.Stat(databasePath); !os.IsNotExist(err) {
		t.Fatal("database must not be created for an invalid month")
	}
}

func TestCalendarInvalidMonth(t *testing.T) {
	databasePath := filepath.Join(t.TempDir(), "kretatools.db")
	t.Setenv("KRETATOOLS_DATABASE_PATH", databasePath)

	root := newRootCommand(slog.New(slog.NewTextHandler(io.Discard, nil)))
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"calendar", "--year", "2025", "--month", "0"})

	if err := root.Execute(); !errors.Is(err, calendars.ErrInvalidMonth) {
		t.Fatalf("expected %q, got %q", calendars.ErrInvalidMonth, err)
	}

	if _, err := os.Stat(databasePath); !os.IsNotExist(err) {
		t.Fatal("database must not be created for an invalid month")
	}
}
