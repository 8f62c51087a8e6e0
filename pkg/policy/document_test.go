package policy

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gravitas-hq/callisto/pkg/budget"
)

const samplePolicy = `
interval: WEEKLY
entries:
  - prefix: forge/repo
    periods:
      - start: 2026-01-05T00:00:00Z
        budget: 500
      - start: 2026-03-02T00:00:00Z
        budget: null
  - prefix: forge/chat
    periods: []
`

func TestParse(t *testing.T) {
	p, err := Parse([]byte(samplePolicy))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if p.Interval != budget.Weekly {
		t.Errorf("Interval = %q, want %q", p.Interval, budget.Weekly)
	}
	if len(p.Entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(p.Entries))
	}

	entry := p.Entries[0]
	if entry.Prefix.String() != "forge/repo" {
		t.Errorf("prefix = %q, want forge/repo", entry.Prefix)
	}
	if len(entry.Periods) != 2 {
		t.Fatalf("got %d periods, want 2", len(entry.Periods))
	}

	amount, ok := entry.Periods[0].Limit.Amount()
	if !ok || amount != 500 {
		t.Errorf("first period limit = %v/%v, want 500", amount, ok)
	}
	wantStart := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	if !entry.Periods[0].Start.Equal(wantStart) {
		t.Errorf("first period start = %v, want %v", entry.Periods[0].Start, wantStart)
	}

	// Null budget means unlimited.
	if !entry.Periods[1].Limit.IsUnlimited() {
		t.Error("null budget should parse as unlimited")
	}

	if len(p.Entries[1].Periods) != 0 {
		t.Errorf("empty periods list should stay empty, got %d", len(p.Entries[1].Periods))
	}
}

func TestParseOmittedBudgetIsUnlimited(t *testing.T) {
	doc := `
interval: WEEKLY
entries:
  - prefix: forge
    periods:
      - start: 2026-01-05T00:00:00Z
`
	p, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !p.Entries[0].Periods[0].Limit.IsUnlimited() {
		t.Error("omitted budget should parse as unlimited")
	}
}

func TestParseNegativeBudget(t *testing.T) {
	doc := `
interval: WEEKLY
entries:
  - prefix: forge
    periods:
      - start: 2026-01-05T00:00:00Z
        budget: -5
`
	_, err := Parse([]byte(doc))
	if err == nil {
		t.Fatal("expected error for negative budget")
	}
	if !strings.Contains(err.Error(), "non-negative") {
		t.Errorf("error %q should mention non-negative", err)
	}
}

func TestParseMalformedYAML(t *testing.T) {
	if _, err := Parse([]byte("interval: [")); err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}

func TestParsedPolicyValidates(t *testing.T) {
	p, err := Parse([]byte(samplePolicy))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if err := p.Validate(); err != nil {
		t.Errorf("sample policy should validate, got %v", err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "budgets.yaml")
	if err := os.WriteFile(path, []byte(samplePolicy), 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(p.Entries) != 2 {
		t.Errorf("got %d entries, want 2", len(p.Entries))
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
