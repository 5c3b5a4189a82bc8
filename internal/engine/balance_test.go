package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBalance_RoundCapBounds(t *testing.T) {
	b := DefaultBalance()
	assert.NoError(t, b.Validate())

	b.RoundCap = MaxRoundCap
	assert.NoError(t, b.Validate())

	for _, rc := range []int{0, -1, MaxRoundCap + 1, 2000000000} {
		b.RoundCap = rc
		assert.Error(t, b.Validate(), "round_cap %d", rc)
	}
}
