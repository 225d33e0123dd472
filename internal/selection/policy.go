package selection

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownPolicy is returned for unrecognised commit policy names
var ErrUnknownPolicy = errors.New("unknown commit policy")

// CommitPolicy decides when a highlighted voice reaches the host
type CommitPolicy int

const (
	// ConfirmGated commits only on the OK action
	ConfirmGated CommitPolicy = iota

	// CommitOnSelect commits and closes as soon as a card is clicked
	CommitOnSelect
)

// String returns the config name of the policy
func (p CommitPolicy) String() string {
	switch p {
	case ConfirmGated:
		return "confirm"
	case CommitOnSelect:
		return "select"
	default:
		return "unknown"
	}
}

// ParsePolicy parses a config value. Empty means ConfirmGated.
func ParsePolicy(s string) (CommitPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "confirm":
		return ConfirmGated, nil
	case "select":
		return CommitOnSelect, nil
	default:
		return ConfirmGated, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}
