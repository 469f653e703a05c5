package msort

import (
	"os"
	"strings"

	"github.com/pkg/errors"
)

// Strategy selects the schedule used to drive the merges of a sort.
type Strategy int

const (
	// StrategyRecursive sorts top-down, splitting each range at its upper middle.
	StrategyRecursive Strategy = iota

	// StrategyIterative sorts bottom-up, one pass per level of the merge tree,
	// without recursion.
	StrategyIterative
)

// String returns a human-readable name for the strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyRecursive:
		return "recursive"
	case StrategyIterative:
		return "iterative"
	default:
		return "unknown"
	}
}

// MergeKind selects the merge-range primitive.
type MergeKind int

const (
	// MergeBuffered merges through a scratch buffer holding both runs.
	MergeBuffered MergeKind = iota

	// MergeInPlace merges without auxiliary storage by shifting the left run.
	// It moves up to O(left*right) elements per merge.
	MergeInPlace
)

// String returns a human-readable name for the merge kind.
func (k MergeKind) String() string {
	switch k {
	case MergeBuffered:
		return "buffered"
	case MergeInPlace:
		return "inplace"
	default:
		return "unknown"
	}
}

var (
	// ErrUnknownStrategy is returned by ParseStrategy for unrecognized names.
	ErrUnknownStrategy = errors.New("msort: unknown strategy")

	// ErrUnknownMerge is returned by ParseMergeKind for unrecognized names.
	ErrUnknownMerge = errors.New("msort: unknown merge kind")
)

// ParseStrategy parses a strategy name as printed by Strategy.String.
// Matching is case-insensitive.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "recursive":
		return StrategyRecursive, nil
	case "iterative":
		return StrategyIterative, nil
	}
	return 0, errors.Wrapf(ErrUnknownStrategy, "%q", name)
}

// ParseMergeKind parses a merge kind name as printed by MergeKind.String.
// "in-place" and "in_place" are accepted as spellings of "inplace".
func ParseMergeKind(name string) (MergeKind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "buffered":
		return MergeBuffered, nil
	case "inplace", "in-place", "in_place":
		return MergeInPlace, nil
	}
	return 0, errors.Wrapf(ErrUnknownMerge, "%q", name)
}

// Environment variables consulted once at init.
const (
	EnvStrategy = "MSORT_STRATEGY"
	EnvMerge    = "MSORT_MERGE"
)

// currentStrategy is the schedule used by sort.Sort and sort.SortFunc.
// Set by init() from EnvStrategy.
var currentStrategy = StrategyRecursive

// currentMerge is the primitive used by merge.Range and the default sort.
// Set by init() from EnvMerge.
var currentMerge = MergeBuffered

func init() {
	configureFromEnv()
}

// configureFromEnv applies EnvStrategy and EnvMerge. Values that do not parse
// leave the corresponding default in place.
func configureFromEnv() {
	if val := os.Getenv(EnvStrategy); val != "" {
		if s, err := ParseStrategy(val); err == nil {
			currentStrategy = s
		}
	}
	if val := os.Getenv(EnvMerge); val != "" {
		if k, err := ParseMergeKind(val); err == nil {
			currentMerge = k
		}
	}
}

// CurrentStrategy returns the default sort schedule.
func CurrentStrategy() Strategy {
	return currentStrategy
}

// CurrentMerge returns the default merge-range primitive.
func CurrentMerge() MergeKind {
	return currentMerge
}

// CurrentName returns a human-readable name for the current configuration.
// For example: "recursive+buffered".
func CurrentName() string {
	return currentStrategy.String() + "+" + currentMerge.String()
}
