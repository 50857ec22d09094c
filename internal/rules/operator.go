package rules

import (
	"fmt"
	"time"

	"binday-scheduler/internal/common/errors"
)

// Operator is one of the six comparison symbols a rule may use to compare
// its threshold date against an event date.
type Operator string

const (
	OpEqual          Operator = "="
	OpNotEqual       Operator = "!="
	OpLess           Operator = "<"
	OpLessOrEqual    Operator = "<="
	OpGreater        Operator = ">"
	OpGreaterOrEqual Operator = ">="
)

// ParseOperator validates a comparison symbol.
func ParseOperator(value string) (Operator, error) {
	switch Operator(value) {
	case OpEqual, OpNotEqual, OpLess, OpLessOrEqual, OpGreater, OpGreaterOrEqual:
		return Operator(value), nil
	default:
		return "", errors.NewConfigError(
			fmt.Sprintf("operator '%s' not supported", value),
			"expected one of =, !=, <, <=, >, >=",
		)
	}
}

// Compare applies the operator as threshold OP date. Both arguments must be
// midnight-truncated dates; time of day is already discarded by the caller.
func (o Operator) Compare(threshold, date time.Time) bool {
	switch o {
	case OpEqual:
		return threshold.Equal(date)
	case OpNotEqual:
		return !threshold.Equal(date)
	case OpLess:
		return threshold.Before(date)
	case OpLessOrEqual:
		return threshold.Before(date) || threshold.Equal(date)
	case OpGreater:
		return threshold.After(date)
	case OpGreaterOrEqual:
		return threshold.After(date) || threshold.Equal(date)
	default:
		return false
	}
}
