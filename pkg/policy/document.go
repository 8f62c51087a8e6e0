package policy

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"gravitas-hq/callisto/pkg/address"
	"gravitas-hq/callisto/pkg/budget"
)

// Document mirrors the on-disk YAML shape of a budget policy.
type Document struct {
	// Interval is the bucketing granularity. Only "WEEKLY" is supported;
	// other values are rejected when the policy is applied.
	Interval string `yaml:"interval"`

	// Entries lists one budget per address prefix.
	Entries []EntryDoc `yaml:"entries"`
}

// EntryDoc is one prefix's budget schedule.
type EntryDoc struct {
	// Prefix selects the nodes this entry governs, in address text form.
	Prefix address.Address `yaml:"prefix"`

	// Periods is the budget schedule, sorted ascending by start.
	Periods []PeriodDoc `yaml:"periods"`
}

// PeriodDoc is one budget period.
type PeriodDoc struct {
	// Start is when this period takes effect (RFC 3339).
	Start time.Time `yaml:"start"`

	// Budget is the per-interval weight cap. Null or omitted means
	// unlimited from Start onward.
	Budget *float64 `yaml:"budget"`
}

// Load reads and parses the policy file at path.
func Load(path string) (budget.Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return budget.Policy{}, fmt.Errorf("failed to read policy file %q: %w", path, err)
	}
	p, err := Parse(data)
	if err != nil {
		return budget.Policy{}, fmt.Errorf("failed to parse policy file %q: %w", path, err)
	}
	return p, nil
}

// Parse decodes a YAML policy document and converts it to a budget.Policy.
// Budgets must be non-negative where present. Parse does not check prefix
// overlap or period ordering; budget.Apply does.
func Parse(data []byte) (budget.Policy, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return budget.Policy{}, err
	}
	return doc.ToPolicy()
}

// ToPolicy converts the document into the engine's policy type.
func (d Document) ToPolicy() (budget.Policy, error) {
	policy := budget.Policy{
		Interval: budget.IntervalLength(d.Interval),
		Entries:  make([]budget.Entry, len(d.Entries)),
	}

	for i, entry := range d.Entries {
		periods := make([]budget.Period, len(entry.Periods))
		for j, period := range entry.Periods {
			limit := budget.Unlimited()
			if period.Budget != nil {
				if *period.Budget < 0 {
					return budget.Policy{}, fmt.Errorf(
						"entry %q period %d: budget must be non-negative, got %g",
						entry.Prefix, j, *period.Budget)
				}
				limit = budget.Capped(*period.Budget)
			}
			periods[j] = budget.Period{Start: period.Start, Limit: limit}
		}
		policy.Entries[i] = budget.Entry{Prefix: entry.Prefix, Periods: periods}
	}

	return policy, nil
}
