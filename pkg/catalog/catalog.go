package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/ja7ad/divider/pkg/types"
)

// Set is the collection of distinct resistance values available to a design.
// Iteration through Values is ascending by ohms.
type Set struct {
	values []types.Ohms
}

// NewSet builds a Set from arbitrary values. Duplicates collapse and
// non-positive values are dropped.
func NewSet(values ...types.Ohms) Set {
	out := make([]types.Ohms, 0, len(values))
	for _, v := range values {
		if v > 0 {
			out = append(out, v)
		}
	}
	slices.Sort(out)
	return Set{values: slices.Compact(out)}
}

// Len returns the number of distinct values.
func (s Set) Len() int { return len(s.values) }

// Values returns a copy of the values in ascending order.
func (s Set) Values() []types.Ohms { return slices.Clone(s.values) }

// Load reads the catalog file at path.
//
// The file is comma separated with a header row, which is always skipped.
// Only the first column is read and must hold a positive integer number of
// ohms; any other value fails the whole load with ErrMalformed.
func Load(path string) (Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return Set{}, fmt.Errorf("%w: %s: %w", ErrNotFound, path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	set, err := LoadReader(f)
	if err != nil {
		return Set{}, fmt.Errorf("%s: %w", path, err)
	}
	return set, nil
}

// LoadReader parses a catalog from r. See Load for the format.
func LoadReader(r io.Reader) (Set, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // single-column files are fine
	cr.TrimLeadingSpace = true

	var (
		values []types.Ohms
		header = true
	)
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				return Set{}, fmt.Errorf("%w: line %d: %w", ErrMalformed, pe.Line, err)
			}
			return Set{}, fmt.Errorf("%w: %w", ErrNotFound, err)
		}
		if header {
			header = false
			continue
		}

		line, _ := cr.FieldPos(0)
		field := strings.TrimSpace(row[0])
		n, err := strconv.Atoi(field)
		if err != nil {
			return Set{}, fmt.Errorf("%w: line %d: %q is not an integer", ErrMalformed, line, field)
		}
		if n <= 0 {
			return Set{}, fmt.Errorf("%w: line %d: resistance must be positive, got %d", ErrMalformed, line, n)
		}
		values = append(values, types.Ohms(n))
	}

	return NewSet(values...), nil
}
