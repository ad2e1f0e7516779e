// Package transform holds scalar transforms over Go's numeric types.
package transform

import "golang.org/x/exp/constraints"

type Number interface {
	constraints.Integer | constraints.Float
}

// Func maps one number to another. Implementations must be pure.
type Func[T Number] func(T) T

// Square returns x*x. Integer overflow wraps.
func Square[T Number](x T) T {
	return x * x
}
