// SPDX-License-Identifier: MPL-2.0

package cookbook

import (
	"errors"
	"fmt"
	"strings"

	mm "github.com/Masterminds/semver/v3"
)

const pessimisticOp = "~>"

var (
	// ErrInvalidConstraint is the sentinel error wrapped by InvalidConstraintError.
	ErrInvalidConstraint = errors.New("invalid version constraint")
	// ErrInvalidVersion is the sentinel error wrapped by InvalidVersionError.
	ErrInvalidVersion = errors.New("invalid cookbook version")
)

type (
	// InvalidConstraintError is returned when a depends constraint cannot be parsed.
	InvalidConstraintError struct {
		Value string
		Err   error
	}

	// InvalidVersionError is returned when a declared cookbook version cannot be parsed.
	InvalidVersionError struct {
		Value string
		Err   error
	}
)

// Error implements the error interface.
func (e *InvalidConstraintError) Error() string {
	return fmt.Sprintf("invalid version constraint %q: %v", e.Value, e.Err)
}

// Unwrap returns ErrInvalidConstraint for errors.Is() compatibility.
func (e *InvalidConstraintError) Unwrap() error { return ErrInvalidConstraint }

// Error implements the error interface.
func (e *InvalidVersionError) Error() string {
	return fmt.Sprintf("invalid cookbook version %q: %v", e.Value, e.Err)
}

// Unwrap returns ErrInvalidVersion for errors.Is() compatibility.
func (e *InvalidVersionError) Unwrap() error { return ErrInvalidVersion }

// Satisfies reports whether version meets the constraint. An unset constraint
// accepts everything. Chef operators are supported: "= 1.0", ">= 1.0",
// "< 2.0", "~> 1.2" and a bare "1.0" meaning an exact match.
func (c Constraint) Satisfies(version string) (bool, error) {
	if !c.Set {
		return true, nil
	}

	v, err := mm.NewVersion(strings.TrimSpace(version))
	if err != nil {
		return false, &InvalidVersionError{Value: version, Err: err}
	}

	expr, err := translateConstraint(c.Value)
	if err != nil {
		return false, &InvalidConstraintError{Value: c.Value, Err: err}
	}
	constraints, err := mm.NewConstraint(expr)
	if err != nil {
		return false, &InvalidConstraintError{Value: c.Value, Err: err}
	}

	return constraints.Check(v), nil
}

// translateConstraint rewrites a Chef constraint into Masterminds syntax.
// The pessimistic operator drops the last given segment and bumps the one
// before it: "~> 1.2" is ">= 1.2, < 2.0" and "~> 1.2.3" is ">= 1.2.3, < 1.3.0".
func translateConstraint(raw string) (string, error) {
	expr := strings.TrimSpace(raw)
	if !strings.HasPrefix(expr, pessimisticOp) {
		if expr != "" && (expr[0] >= '0' && expr[0] <= '9') {
			return "= " + expr, nil
		}
		return expr, nil
	}

	base := strings.TrimSpace(strings.TrimPrefix(expr, pessimisticOp))
	lower, err := mm.NewVersion(base)
	if err != nil {
		return "", err
	}

	switch strings.Count(base, ".") {
	case 0:
		return ">= " + lower.String(), nil
	case 1:
		upper := lower.IncMajor()
		return fmt.Sprintf(">= %s, < %s", lower, upper.String()), nil
	default:
		upper := lower.IncMinor()
		return fmt.Sprintf(">= %s, < %s", lower, upper.String()), nil
	}
}
