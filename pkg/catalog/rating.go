package catalog

import (
	"fmt"
	"strings"

	"github.com/ja7ad/divider/pkg/types"
)

// Rating is the wattage class of a resistor batch.
type Rating int

const (
	Unknown Rating = iota // source matched no known class
	Quarter               // 1/4 W parts
	Half                  // 1/2 W parts
)

func (r Rating) String() string {
	switch r {
	case Quarter:
		return "quarter"
	case Half:
		return "half"
	default:
		return "unknown"
	}
}

// MilliWatts returns the per-resistor dissipation ceiling of the class.
// Unknown yields 0, under which no candidate can pass a power check.
func (r Rating) MilliWatts() types.MilliWatts {
	switch r {
	case Quarter:
		return 250
	case Half:
		return 500
	default:
		return 0
	}
}

// ParseRating maps a user supplied class name to a Rating.
// "auto" and "" return Unknown with no error so callers fall back to ClassifyRating.
func ParseRating(s string) (Rating, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return Unknown, nil
	case "quarter", "1/4", "0.25", "250":
		return Quarter, nil
	case "half", "1/2", "0.5", "500":
		return Half, nil
	default:
		return Unknown, fmt.Errorf("catalog: unknown rating %q (want quarter or half)", s)
	}
}

// ClassifyRating derives the wattage class from a catalog source name:
// "quarter" anywhere in it means Quarter, otherwise "half" means Half.
// The match is case sensitive, like the file naming convention it serves.
func ClassifyRating(source string) Rating {
	switch {
	case strings.Contains(source, "quarter"):
		return Quarter
	case strings.Contains(source, "half"):
		return Half
	default:
		return Unknown
	}
}
