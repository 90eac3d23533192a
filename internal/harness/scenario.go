package harness

import (
	_ "embed"
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"gopkg.in/yaml.v3"

	"github.com/roach88/uidbench/internal/bench"
)

//go:embed schema.cue
var schemaCUE string

// Scenario defines one harness run: optional demo followed by a
// benchmark with the given dimensions.
//
// Field names and constraints are pinned by the embedded CUE schema;
// LoadScenario rejects files that do not satisfy it.
type Scenario struct {
	// Name uniquely identifies the scenario; golden files use it as
	// their base name.
	Name string `yaml:"name" json:"name"`

	// Description explains what the scenario covers.
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	// Records and Searches are the benchmark dimensions (N and M).
	// Zero means the driver default.
	Records  int `yaml:"records,omitempty" json:"records,omitempty"`
	Searches int `yaml:"searches,omitempty" json:"searches,omitempty"`

	// HitRatio is the fraction of searches drawn from inserted UIDs.
	HitRatio float64 `yaml:"hit_ratio,omitempty" json:"hit_ratio,omitempty"`

	// Seed fixes the PRNG streams. Deterministic scenarios must set it.
	Seed uint64 `yaml:"seed,omitempty" json:"seed,omitempty"`

	// Locale selects number formatting for rendered output (BCP 47).
	Locale string `yaml:"locale,omitempty" json:"locale,omitempty"`

	// Demo runs the fixed-record demo before the benchmark.
	Demo bool `yaml:"demo,omitempty" json:"demo,omitempty"`
}

// ScenarioError reports a scenario file that failed schema validation.
type ScenarioError struct {
	Path    string
	Message string
}

// Error implements the error interface.
func (e *ScenarioError) Error() string {
	return fmt.Sprintf("invalid scenario %s: %s", e.Path, e.Message)
}

// LoadScenario reads a YAML scenario file and validates it against the
// embedded CUE schema.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}

	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, &ScenarioError{Path: path, Message: err.Error()}
	}
	if err := s.Validate(); err != nil {
		return nil, &ScenarioError{Path: path, Message: err.Error()}
	}
	return &s, nil
}

// Validate checks the scenario against the embedded CUE schema.
func (s *Scenario) Validate() error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaCUE).LookupPath(cue.ParsePath("#Scenario"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile scenario schema: %w", err)
	}

	val := ctx.Encode(s)
	if err := val.Err(); err != nil {
		return fmt.Errorf("encode scenario: %w", err)
	}

	unified := schema.Unify(val)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("%s", cueerrors.Details(err, nil))
	}
	return nil
}

// Config converts the scenario's benchmark dimensions to a driver
// config; zero-valued fields keep the driver defaults.
func (s *Scenario) Config() bench.Config {
	return bench.Config{
		Records:  s.Records,
		Searches: s.Searches,
		HitRatio: s.HitRatio,
		Seed:     s.Seed,
	}
}
