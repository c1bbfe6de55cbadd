// Package seed loads the initial dataset a ledger is seeded with.
//
// A dataset lists entries under the top-level "gene" key:
//
//	{"gene": [{"label": "TP53", "value": 87}]}
//
// JSON and YAML are both accepted. [Default] returns the embedded example
// dataset.
package seed

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/shopspring/decimal"
	"sigs.k8s.io/yaml"

	"github.com/MacroPower/genebar/pkg/ledger"
)

// ErrInvalidSeed is returned when a dataset cannot be used to seed a ledger.
var ErrInvalidSeed = errors.New("invalid seed")

//go:embed example_data.json
var exampleData []byte

// Dataset is the seed file format.
type Dataset struct {
	Genes []Gene `json:"gene" jsonschema:"title=Genes,description=Entries to seed the ledger with."`
}

// Gene is one row of a [Dataset].
type Gene struct {
	Label string      `json:"label" jsonschema:"required,minLength=1,description=Gene name. Matching is case-insensitive."`
	Value json.Number `json:"value" jsonschema:"required,description=Expression value. Must be positive."`
}

// Default returns the embedded example dataset.
func Default() Dataset {
	ds, err := Parse(exampleData)
	if err != nil {
		panic(fmt.Errorf("embedded example data: %w", err))
	}

	return ds
}

// Load reads a dataset from path.
func Load(path string) (Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("failed to read seed: %w", err)
	}

	ds, err := Parse(data)
	if err != nil {
		return Dataset{}, fmt.Errorf("%s: %w", path, err)
	}

	return ds, nil
}

// Parse decodes and validates a JSON or YAML dataset.
func Parse(data []byte) (Dataset, error) {
	ds := Dataset{}
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return Dataset{}, fmt.Errorf("%w: %w", ErrInvalidSeed, err)
	}

	if err := ds.Validate(); err != nil {
		return Dataset{}, err
	}

	return ds, nil
}

// Validate reports every unusable row.
func (ds Dataset) Validate() error {
	var merr error

	for i, g := range ds.Genes {
		if strings.TrimSpace(g.Label) == "" {
			merr = multierror.Append(merr, fmt.Errorf("gene[%d]: label is empty", i))
		}

		v, err := decimal.NewFromString(g.Value.String())
		if err != nil {
			merr = multierror.Append(merr, fmt.Errorf("gene[%d]: value %q: %w", i, g.Value, err))

			continue
		}

		if !v.IsPositive() {
			merr = multierror.Append(merr, fmt.Errorf("gene[%d]: value must be positive, got %s", i, v))
		}
	}

	if merr != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSeed, merr)
	}

	return nil
}

// Entries converts the dataset to ledger entries. Rows that do not parse
// are skipped; call [Dataset.Validate] first to report them.
func (ds Dataset) Entries() []ledger.Entry {
	out := make([]ledger.Entry, 0, len(ds.Genes))

	for _, g := range ds.Genes {
		v, err := decimal.NewFromString(g.Value.String())
		if err != nil {
			continue
		}

		out = append(out, ledger.Entry{Name: g.Label, Value: v})
	}

	return out
}
