// File: label.go
// Role: Two-letter label codec for NodeIDs.
//
// Labels are read as base-36 numbers, so "AA" is 10*36+10 = 370 and "ZZ" is 1295.
// Every two-character label maps to a NodeID below labelSpace and back.

package core

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBadLabel indicates a label that is not two base-36 characters.
var ErrBadLabel = errors.New("core: label must be two base-36 characters")

const (
	labelRadix = 36
	labelLen   = 2
	labelSpace = labelRadix * labelRadix
)

// ParseLabel converts a two-character base-36 label (case-insensitive) to a NodeID.
func ParseLabel(label string) (NodeID, error) {
	if len(label) != labelLen {
		return 0, fmt.Errorf("%w: %q", ErrBadLabel, label)
	}
	v, err := strconv.ParseUint(strings.ToLower(label), labelRadix, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadLabel, label)
	}

	return NodeID(v), nil
}

// MustLabel is ParseLabel for constant labels in tests and examples. It panics on error.
func MustLabel(label string) NodeID {
	id, err := ParseLabel(label)
	if err != nil {
		panic(err)
	}

	return id
}

// String renders id as its two-letter upper-case label, or "#<n>" when id lies
// outside the two-letter space.
func (id NodeID) String() string {
	if id >= labelSpace {
		return "#" + strconv.FormatUint(uint64(id), 10)
	}
	hi := strconv.FormatUint(uint64(id)/labelRadix, labelRadix)
	lo := strconv.FormatUint(uint64(id)%labelRadix, labelRadix)

	return strings.ToUpper(hi + lo)
}

// String renders the key as "A-B" using node labels.
func (k EdgeKey) String() string { return k.A.String() + "-" + k.B.String() }
