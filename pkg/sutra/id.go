package sutra

import (
	"fmt"
	"strconv"
	"strings"
)

// ID is the three-part hierarchical sūtra number (adhyāya.pāda.sūtra),
// e.g. 6.1.77. IDs are globally unique and totally ordered; the ordering
// is the "textual order" the last-resort tie-break clause appeals to.
type ID struct {
	Adhyaya int
	Pada    int
	Sutra   int
}

// ParseID parses "a.p.n" with positive decimal components.
func ParseID(s string) (ID, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return ID{}, fmt.Errorf("sutra: invalid id %q: want a.p.n", s)
	}
	var nums [3]int
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n <= 0 {
			return ID{}, fmt.Errorf("sutra: invalid id %q: component %q", s, part)
		}
		nums[i] = n
	}
	return ID{Adhyaya: nums[0], Pada: nums[1], Sutra: nums[2]}, nil
}

// MustID is ParseID for known-good literals; it panics on error.
func MustID(s string) ID {
	id, err := ParseID(s)
	if err != nil {
		panic(err)
	}
	return id
}

func (id ID) String() string {
	return fmt.Sprintf("%d.%d.%d", id.Adhyaya, id.Pada, id.Sutra)
}

// Compare orders IDs numerically, adhyāya first.
func (id ID) Compare(other ID) int {
	switch {
	case id.Adhyaya != other.Adhyaya:
		return id.Adhyaya - other.Adhyaya
	case id.Pada != other.Pada:
		return id.Pada - other.Pada
	default:
		return id.Sutra - other.Sutra
	}
}

// Before reports whether id textually precedes other.
func (id ID) Before(other ID) bool { return id.Compare(other) < 0 }
