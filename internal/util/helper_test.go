package util

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCloneSlice(t *testing.T) {
	t.Run("default size", func(t *testing.T) {
		src := []string{"a", "b", "c"}
		dst := CloneSlice(src, 0)
		require.Equal(t, src, dst)

		// the clone is independent of the source
		dst[0] = "x"
		require.Equal(t, "a", src[0])
	})

	t.Run("larger clone size pads with zero values", func(t *testing.T) {
		src := []int{1, 2}
		dst := CloneSlice(src, 4)
		require.Equal(t, []int{1, 2, 0, 0}, dst)
	})

	t.Run("smaller clone size truncates", func(t *testing.T) {
		src := []int{1, 2, 3}
		dst := CloneSlice(src, 1)
		require.Equal(t, []int{1}, dst)
	})

	t.Run("empty source", func(t *testing.T) {
		dst := CloneSlice([]int{}, 0)
		require.Empty(t, dst)
	})
}
