package coin

import (
	"errors"
	"fmt"
	"strings"
)

// specLink is appended to lookup errors so callers can check the numbering
// standard themselves.
const specLink = "https://github.com/satoshilabs/slips/blob/master/slip-0044.md"

var (
	// ErrNotFound is returned when an identifier, name, key or symbol does not
	// resolve to any coin in the registry.
	ErrNotFound = errors.New("not found")

	// ErrNoSymbol is returned when a coin exists but has no symbol bound to it
	// in the symbol index.
	ErrNoSymbol = errors.New("coin does not have associated symbol")

	// ErrMalformedEntryList is matched by every *MalformedEntryListError.
	ErrMalformedEntryList = errors.New("malformed entry list")
)

func notFound(kind string, key any) error {
	return fmt.Errorf("%w: unknown %s %v. See %s", ErrNotFound, kind, key, specLink)
}

func noSymbol(c *Coin) error {
	return fmt.Errorf("%w: %q (coin type %d). See %s", ErrNoSymbol, c.name, c.ID(), specLink)
}

// MalformedEntryListError reports every authoring problem found while building
// a registry.
type MalformedEntryListError struct {
	Problems []string
}

func (e *MalformedEntryListError) Error() string {
	return fmt.Sprintf("%s:\n- %s", ErrMalformedEntryList, strings.Join(e.Problems, "\n- "))
}

// Is makes errors.Is(err, ErrMalformedEntryList) true.
func (e *MalformedEntryListError) Is(target error) bool {
	return target == ErrMalformedEntryList
}
