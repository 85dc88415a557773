package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContractStatusTransitions(t *testing.T) {
	all := []ContractStatus{ContractNegotiating, ContractActive, ContractCompleted, ContractCancelled}

	// Допустимы только переходы NEGOTIATING → ACTIVE → COMPLETED
	// и {NEGOTIATING, ACTIVE} → CANCELLED
	allowed := map[ContractStatus][]ContractStatus{
		ContractNegotiating: {ContractActive, ContractCancelled},
		ContractActive:      {ContractCompleted, ContractCancelled},
		ContractCompleted:   {},
		ContractCancelled:   {},
	}

	for _, from := range all {
		for _, to := range all {
			expected := false
			for _, a := range allowed[from] {
				if a == to {
					expected = true
				}
			}
			assert.Equal(t, expected, from.CanTransitionTo(to), "переход %s → %s", from, to)
		}
	}
}

func TestContractStatusTerminal(t *testing.T) {
	assert.False(t, ContractNegotiating.IsTerminal())
	assert.False(t, ContractActive.IsTerminal())
	assert.True(t, ContractCompleted.IsTerminal())
	assert.True(t, ContractCancelled.IsTerminal())
}
