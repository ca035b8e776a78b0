package dates

import (
	"testing"
	"time"
)

func TestResolveFormats(t *testing.T) {
	tests := []struct {
		raw      string
		wantISO  string
		wantLong string
	}{
		{"2025-09-01", "2025-09-01", "1 September 2025"},
		{"01/09/2025", "2025-09-01", "1 September 2025"},
		{" 2025-12-24 ", "2025-12-24", "24 December 2025"},
	}
	for _, tt := range tests {
		got := Resolve(tt.raw, time.UTC)
		if got.ISO != tt.wantISO {
			t.Errorf("Resolve(%q).ISO = %q, want %q", tt.raw, got.ISO, tt.wantISO)
		}
		if got.Long != tt.wantLong {
			t.Errorf("Resolve(%q).Long = %q, want %q", tt.raw, got.Long, tt.wantLong)
		}
	}
}

func TestResolveFallsBackToToday(t *testing.T) {
	got := Resolve("not-a-date", time.UTC)
	now := time.Now().In(time.UTC)
	wantISO := now.Format("2006-01-02")
	if got.ISO != wantISO {
		t.Fatalf("Resolve(not-a-date).ISO = %q, want today %q", got.ISO, wantISO)
	}
}

func TestResolveStrict(t *testing.T) {
	if _, e := ResolveStrict("", time.UTC); e == nil {
		t.Error("ResolveStrict(empty): expected error, got none")
	}
	if _, e := ResolveStrict("not-a-date", time.UTC); e == nil {
		t.Error("ResolveStrict(not-a-date): expected error, got none")
	}
	if _, e := ResolveStrict("2025-09-01", time.UTC); e != nil {
		t.Errorf("ResolveStrict(2025-09-01): unexpected error %v", e)
	}
}

func TestAddDays(t *testing.T) {
	due := Resolve("2025-09-01", time.UTC).AddDays(7)
	if due.ISO != "2025-09-08" {
		t.Fatalf("due.ISO = %q, want 2025-09-08", due.ISO)
	}
	if due.Long != "8 September 2025" {
		t.Fatalf("due.Long = %q, want 8 September 2025", due.Long)
	}
}
