package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/magmast/sq/pkg/apply"
	"github.com/magmast/sq/pkg/transform"
	"github.com/magmast/sq/pkg/utils"
	"golang.org/x/exp/slices"
)

var (
	ErrNotNumber          = errors.New("not a number")
	ErrStrategiesDisagree = errors.New("strategies produced different results")
)

// numbers holds parsed arguments. When any argument is not an integer the
// whole sequence is kept as floats.
type numbers struct {
	ints   []int64
	floats []float64
	float  bool
}

func parseNumbers(args []string) (numbers, error) {
	ints := make([]int64, 0, len(args))
	for _, a := range args {
		v, err := strconv.ParseInt(strings.TrimSpace(a), 10, 64)
		if err != nil {
			break
		}
		ints = append(ints, v)
	}
	if len(ints) == len(args) {
		return numbers{ints: ints}, nil
	}

	floats := make([]float64, 0, len(args))
	for _, a := range args {
		v, err := strconv.ParseFloat(strings.TrimSpace(a), 64)
		if err != nil {
			return numbers{}, fmt.Errorf("%w: %q", ErrNotNumber, a)
		}
		floats = append(floats, v)
	}

	return numbers{floats: floats, float: true}, nil
}

// squareAll applies f with st and, when compare is set, checks that every
// other strategy agrees.
func squareAll[T transform.Number](st apply.Strategy, f transform.Func[T], xs []T, compare bool) ([]T, error) {
	res, err := apply.BulkApply[T, T](st, f, xs)
	if err != nil {
		return nil, err
	}

	if !compare {
		return res, nil
	}

	for _, other := range apply.Strategies {
		if other == st {
			continue
		}

		alt, err := apply.BulkApply[T, T](other, f, xs)
		if err != nil {
			return nil, err
		}

		if !slices.EqualFunc(res, alt, sameNumber[T]) {
			return nil, fmt.Errorf("%w: %s=%v %s=%v", ErrStrategiesDisagree, st, res, other, alt)
		}
	}

	return res, nil
}

// sameNumber is == except that NaN equals NaN.
func sameNumber[T transform.Number](a, b T) bool {
	return a == b || (a != a && b != b)
}

func format[T transform.Number](xs []T) string {
	return strings.Join(utils.Map(xs, func(v T) string { return fmt.Sprint(v) }), " ")
}
