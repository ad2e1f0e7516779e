package transform

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSquare(t *testing.T) {
	assert.Equal(t, 36, Square(6))
	assert.Equal(t, int64(36), Square(int64(-6)))
	assert.Equal(t, uint8(225), Square(uint8(15)))
	assert.Equal(t, 6.25, Square(2.5))
	assert.Equal(t, float32(0.25), Square(float32(-0.5)))
}

func TestSquareRange(t *testing.T) {
	for x := -1000; x <= 1000; x++ {
		if got := Square(x); got != x*x {
			t.Fatalf("Square(%d) = %d, want %d", x, got, x*x)
		}
	}
}

func TestSquareSpecialFloats(t *testing.T) {
	assert.True(t, math.IsNaN(Square(math.NaN())))
	assert.True(t, math.IsInf(Square(math.Inf(-1)), 1))
}

func TestFunc(t *testing.T) {
	var f Func[float64] = Square[float64]
	assert.Equal(t, 9.0, f(3))
}
