package source

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestLoadFixture(t *testing.T) {
	src := NewSimulated(0)
	records, err := src.Load(context.Background(), "leave_requests")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 4 {
		t.Fatalf("expected 4 leave requests, got %d", len(records))
	}
	if got := records[0].String("employee.name"); got != "Alice Johnson" {
		t.Fatalf("expected nested employee name, got %q", got)
	}
	if records[0].Float("days") != 2 {
		t.Fatalf("expected 2 days, got %v", records[0]["days"])
	}
}

func TestLoadReturnsFreshCopies(t *testing.T) {
	src := NewSimulated(0)
	first, err := src.Load(context.Background(), "employees")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	first[0]["name"] = "changed"
	second, err := src.Load(context.Background(), "employees")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second[0]["name"] == "changed" {
		t.Fatal("expected an independent copy")
	}
}

func TestLoadUnknownFixture(t *testing.T) {
	_, err := NewSimulated(0).Load(context.Background(), "missing")
	if !errors.Is(err, ErrFixtureNotFound) {
		t.Fatalf("expected ErrFixtureNotFound, got %v", err)
	}
}

func TestLoadHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewSimulated(time.Hour).Load(ctx, "employees")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestAllFixturesDecode(t *testing.T) {
	src := NewSimulated(0)
	names, err := src.Names()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(names) == 0 {
		t.Fatal("expected embedded fixtures")
	}
	for _, name := range names {
		records, err := src.Load(context.Background(), name)
		if err != nil {
			t.Fatalf("fixture %s: %v", name, err)
		}
		if len(records) == 0 {
			t.Fatalf("fixture %s has no records", name)
		}
	}
}
