package order

import (
	"fmt"

	"pedidos/internal/pkg/errs"
)

// RoleClass is the coarse actor category used to gate status transitions.
// The core never inspects authentication tokens; callers classify the actor
// and pass the class in.
type RoleClass int

const (
	// RoleUnknown represents an unclassified actor. Invalid.
	RoleUnknown RoleClass = iota

	// RoleCustomer is the order's customer: may submit, cancel early, and
	// acknowledge delivery.
	RoleCustomer

	// RoleInternal is staff: drives the order through confirmation,
	// production and delivery.
	RoleInternal
)

func getRoleClassStrings() map[RoleClass]string {
	return map[RoleClass]string{
		RoleCustomer: "CUSTOMER",
		RoleInternal: "INTERNAL",
	}
}

// RoleClassFromString parses the wire representation ("CUSTOMER", "INTERNAL").
func RoleClassFromString(s string) (RoleClass, error) {
	for role, str := range getRoleClassStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause(
		"role class is invalid", fmt.Errorf("%q is not a valid role class", s))
}

// Validate checks that the RoleClass is one of the known classes.
func (r RoleClass) Validate() error {
	if _, ok := getRoleClassStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"role class is invalid", fmt.Errorf("%d is not a valid role class", r))
	}
	return nil
}

// String returns the wire name of the role class, "UNKNOWN" for invalid values.
func (r RoleClass) String() string {
	if str, ok := getRoleClassStrings()[r]; ok {
		return str
	}
	return "UNKNOWN"
}
