package suite

import (
	"fmt"

	"github.com/matzehuels/topogen/pkg/rng"
)

// Range is an inclusive integer interval. The zero value means "unset".
type Range struct {
	Min int
	Max int
}

// Fixed returns the range holding exactly v.
func Fixed(v int) Range { return Range{Min: v, Max: v} }

// Between returns the range [lo, hi].
func Between(lo, hi int) Range { return Range{Min: lo, Max: hi} }

// IsZero reports whether the range is unset.
func (r Range) IsZero() bool { return r.Min == 0 && r.Max == 0 }

// Valid reports whether the range is non-empty.
func (r Range) Valid() bool { return r.Min <= r.Max }

// Draw returns a uniform value from the range, or 0 without consuming
// randomness when the range is unset.
func (r Range) Draw(src *rng.Source) (int, error) {
	if r.IsZero() {
		return 0, nil
	}
	return src.Int(r.Min, r.Max)
}

func (r Range) String() string {
	if r.Min == r.Max {
		return fmt.Sprint(r.Min)
	}
	return fmt.Sprintf("[%d, %d]", r.Min, r.Max)
}

// UnmarshalTOML accepts either an integer or a two-element integer array.
func (r *Range) UnmarshalTOML(data any) error {
	switch v := data.(type) {
	case int64:
		*r = Fixed(int(v))
		return nil
	case []any:
		if len(v) != 2 {
			return fmt.Errorf("range must have 2 elements, got %d", len(v))
		}
		lo, ok1 := v[0].(int64)
		hi, ok2 := v[1].(int64)
		if !ok1 || !ok2 {
			return fmt.Errorf("range elements must be integers")
		}
		*r = Between(int(lo), int(hi))
		return nil
	default:
		return fmt.Errorf("range must be an integer or [min, max], got %T", data)
	}
}

// MarshalTOML writes the range in the form UnmarshalTOML reads.
func (r Range) MarshalTOML() ([]byte, error) {
	if r.Min == r.Max {
		return []byte(fmt.Sprint(r.Min)), nil
	}
	return []byte(fmt.Sprintf("[%d, %d]", r.Min, r.Max)), nil
}
