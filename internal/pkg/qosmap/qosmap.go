// Package qosmap decodes VLAN priority-remap lists.
//
// A mapping list is a sequence of "from:to" strings with a bounded
// capacity. Decoding is all-or-nothing: a single bad entry rejects the
// entire list so a half-applied remap table can never be produced, and
// the caller degrades to "no remapping".
package qosmap

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang-vlandevd/internal/types"
)

// DefaultCapacity is the maximum number of entries a mapping table holds.
const DefaultCapacity = 8

var (
	// ErrTooMany indicates the list exceeds the table capacity.
	ErrTooMany = errors.New("too many qos mappings")
	// ErrNotString indicates a list item is not a string.
	ErrNotString = errors.New("qos mapping entry is not a string")
	// ErrMalformed indicates an entry is not of the form "<from>:<to>".
	ErrMalformed = errors.New("qos mapping not in form <from_nr>:<to_nr>")
)

// Parse decodes a mapping list of at most capacity entries. On success
// the returned table holds exactly one pair per input item, in input
// order. Any failure discards the entire list and returns a nil table.
func Parse(items []any, capacity int) ([]types.QosMapping, error) {
	if len(items) > capacity {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooMany, len(items), capacity)
	}

	mappings := make([]types.QosMapping, 0, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("%w (entry %d)", ErrNotString, i)
		}

		mapping, err := parseEntry(s)
		if err != nil {
			return nil, fmt.Errorf("%w (entry %d: %q)", err, i, s)
		}
		mappings = append(mappings, mapping)
	}
	return mappings, nil
}

func parseEntry(s string) (types.QosMapping, error) {
	from, to, found := strings.Cut(s, ":")
	if !found {
		return types.QosMapping{}, ErrMalformed
	}

	fromNr, err := strconv.ParseUint(from, 10, 32)
	if err != nil {
		return types.QosMapping{}, ErrMalformed
	}
	toNr, err := strconv.ParseUint(to, 10, 32)
	if err != nil {
		return types.QosMapping{}, ErrMalformed
	}

	return types.QosMapping{From: uint32(fromNr), To: uint32(toNr)}, nil
}
