package models

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCartIncreaseAccumulates(t *testing.T) {
	cart := Cart{}

	cart.Increase("1")
	assert.Equal(t, 1, cart["1"])

	cart.Increase("1")
	cart.Increase("1")
	assert.Equal(t, 3, cart["1"])
}

func TestCartDecreaseRemovesLastUnit(t *testing.T) {
	cart := Cart{"7": 2}

	cart.Decrease("7")
	assert.Equal(t, 1, cart["7"])

	cart.Decrease("7")
	_, exists := cart["7"]
	assert.False(t, exists, "decreasing the last unit must delete the key")
}

func TestCartDecreaseAbsentKeyIsNoop(t *testing.T) {
	cart := Cart{}
	cart.Decrease("42")
	assert.Empty(t, cart)
}

func TestCartRemoveUnconditional(t *testing.T) {
	cart := Cart{"3": 5}
	cart.Remove("3")
	assert.Empty(t, cart)

	// Clé absente : no-op
	cart.Remove("3")
	assert.Empty(t, cart)
}

// Aucune séquence d'opérations ne doit laisser une quantité ≤ 0.
func TestCartQuantitiesAlwaysPositive(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	pids := []string{"1", "2", "3"}
	cart := Cart{}

	for i := 0; i < 10000; i++ {
		pid := pids[rng.Intn(len(pids))]
		switch rng.Intn(3) {
		case 0:
			cart.Increase(pid)
		case 1:
			cart.Decrease(pid)
		case 2:
			cart.Remove(pid)
		}

		for pid, qty := range cart {
			assert.GreaterOrEqual(t, qty, 1, "pid %s has non-positive quantity", pid)
		}
	}
}
