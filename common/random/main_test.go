package random_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qa-demo/casegen/common/random"
)

func TestGetUUID(t *testing.T) {
	seen := make(map[string]struct{}, 1000)
	for range 1000 {
		id := random.GetUUID()
		require.Len(t, id, 32)
		require.NotContains(t, id, "-")
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}
