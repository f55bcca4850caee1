package order

import "fmt"

// unrestrictedTransitions is the role-independent ceiling: every edge any
// actor could ever take. Role tables below must be subsets of it.
func unrestrictedTransitions() map[Status][]Status {
	return map[Status][]Status{
		Rascunho:   {Pendente, Cancelado},
		Pendente:   {Confirmado, Cancelado},
		Confirmado: {EmProducao, Cancelado},
		EmProducao: {Pronto, Cancelado},
		Pronto:     {Entregue},
		Entregue:   {},
		Cancelado:  {},
	}
}

// roleTransitions refines the unrestricted table per role class. A source
// status with no entry for a role means that role has no permitted outbound
// edge from it.
func roleTransitions() map[RoleClass]map[Status][]Status {
	return map[RoleClass]map[Status][]Status{
		RoleCustomer: {
			Rascunho: {Pendente, Cancelado},
			Pendente: {Cancelado},
			Pronto:   {Entregue},
		},
		RoleInternal: {
			Pendente:   {Confirmado, Cancelado},
			Confirmado: {EmProducao, Cancelado},
			EmProducao: {Pronto, Cancelado},
			Pronto:     {Entregue},
		},
	}
}

// ValidateTransitionTables verifies at startup that every role table is a
// subset of the unrestricted table, guarding against configuration drift.
func ValidateTransitionTables() error {
	unrestricted := unrestrictedTransitions()

	for role, table := range roleTransitions() {
		for source, targets := range table {
			if err := source.Validate(); err != nil {
				return fmt.Errorf("role %s: %w", role, err)
			}
			for _, target := range targets {
				if !containsStatus(unrestricted[source], target) {
					return fmt.Errorf("role %s permits %s -> %s, which the unrestricted table does not",
						role, source, target)
				}
			}
		}
	}
	return nil
}

func containsStatus(set []Status, s Status) bool {
	for _, candidate := range set {
		if candidate == s {
			return true
		}
	}
	return false
}

func init() {
	if err := ValidateTransitionTables(); err != nil {
		panic(err)
	}
}
