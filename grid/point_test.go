package grid

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestManhattanDistance(t *testing.T) {
	t.Run("zero for identical points", func(t *testing.T) {
		require.Equal(t, 0, ManhattanDistance(Point{4, 7}, Point{4, 7}))
	})

	t.Run("sums absolute axis differences", func(t *testing.T) {
		require.Equal(t, 7, ManhattanDistance(Point{1, 2}, Point{4, 6}))
		require.Equal(t, 7, ManhattanDistance(Point{4, 2}, Point{1, 6}))
	})

	t.Run("symmetric and positive for distinct points", func(t *testing.T) {
		points := []Point{{0, 0}, {3, 9}, {9, 3}, {5, 5}, {0, 9}}
		for _, a := range points {
			for _, b := range points {
				require.Equal(t, ManhattanDistance(a, b), ManhattanDistance(b, a))
				if a != b {
					require.Positive(t, ManhattanDistance(a, b))
				}
			}
		}
	})

	t.Run("satisfies the triangle inequality", func(t *testing.T) {
		points := []Point{{0, 0}, {3, 9}, {9, 3}, {5, 5}, {0, 9}, {7, 1}}
		for _, a := range points {
			for _, b := range points {
				for _, c := range points {
					require.LessOrEqual(t, ManhattanDistance(a, c),
						ManhattanDistance(a, b)+ManhattanDistance(b, c))
				}
			}
		}
	})
}

func TestCenter(t *testing.T) {
	require.Equal(t, Point{50, 50}, Center(100, 100))
	require.Equal(t, Point{1, 0}, Center(3, 1))
	require.Equal(t, Point{0, 0}, Center(1, 1))
}

func TestClamp(t *testing.T) {
	require.Equal(t, Point{0, 9}, Clamp(Point{-4, 30}, 10, 10))
	require.Equal(t, Point{3, 4}, Clamp(Point{3, 4}, 10, 10))
	require.Equal(t, Point{0, 0}, Clamp(Point{5, -5}, 1, 1))
}
