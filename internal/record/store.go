package record

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidRecord is returned when a stored record is not a non-negative integer.
var ErrInvalidRecord = errors.New("invalid record")

// Store persists the single best score.
type Store interface {
	Read() (int, error)
	Write(score int) error
}

// parseRecord parses the textual form written by FileStore. Surrounding
// whitespace is ignored; an empty value is a zero record.
func parseRecord(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidRecord, raw)
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: negative value %d", ErrInvalidRecord, n)
	}
	return n, nil
}
