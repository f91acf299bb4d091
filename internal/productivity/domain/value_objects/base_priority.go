package value_objects

import (
	"errors"
	"strings"
)

// BasePriority represents the user-assigned coarse priority tier.
type BasePriority int

const (
	BasePriorityLow    BasePriority = 1
	BasePriorityMedium BasePriority = 2
	BasePriorityHigh   BasePriority = 3
)

var (
	ErrInvalidBasePriority = errors.New("invalid base priority value")
)

var basePriorityNames = map[BasePriority]string{
	BasePriorityLow:    "low",
	BasePriorityMedium: "medium",
	BasePriorityHigh:   "high",
}

var basePriorityValues = map[string]BasePriority{
	"low":    BasePriorityLow,
	"medium": BasePriorityMedium,
	"high":   BasePriorityHigh,
}

// ParseBasePriority creates a BasePriority from a string.
func ParseBasePriority(s string) (BasePriority, error) {
	p, ok := basePriorityValues[strings.ToLower(s)]
	if !ok {
		return BasePriorityMedium, ErrInvalidBasePriority
	}
	return p, nil
}

// String returns the string representation of the priority tier.
func (p BasePriority) String() string {
	if name, ok := basePriorityNames[p]; ok {
		return name
	}
	return "unknown"
}

// IsValid returns true if the priority is a valid tier.
func (p BasePriority) IsValid() bool {
	_, ok := basePriorityNames[p]
	return ok
}

// Weight returns the numeric tier encoding (1=low, 2=medium, 3=high).
func (p BasePriority) Weight() int {
	return int(p)
}
