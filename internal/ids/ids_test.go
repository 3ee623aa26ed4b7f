package ids

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShortToken_Format(t *testing.T) {
	gen := ShortToken{}
	for i := 0; i < 100; i++ {
		id := gen.NewID()
		assert.Len(t, id, 7)
		for _, ch := range id {
			assert.Contains(t, base36Charset, string(ch))
		}
	}
}

func TestShortToken_NoImmediateCollisions(t *testing.T) {
	// Uniqueness is advisory, but 100 draws from a 36^7 space colliding
	// would indicate a broken generator.
	gen := ShortToken{}
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := gen.NewID()
		assert.False(t, seen[id], "collision on %s", id)
		seen[id] = true
	}
}

func TestUUID_ParsesAsUUID(t *testing.T) {
	gen := UUID{}
	id := gen.NewID()
	_, err := uuid.Parse(id)
	require.NoError(t, err)
}

func TestGeneratorsAreInterchangeable(t *testing.T) {
	var gen Generator = ShortToken{}
	assert.NotEmpty(t, gen.NewID())

	gen = UUID{}
	assert.NotEmpty(t, gen.NewID())
}
