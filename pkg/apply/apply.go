// Package apply applies a scalar function across every element of a slice.
//
// Two strategies are provided and are interchangeable: Vectorize lifts the
// function into one that consumes the whole slice in a single call, and Map
// walks the slice element by element. Both preserve order and length and
// never modify their input.
package apply

import (
	"errors"
	"fmt"
	"strings"

	"github.com/magmast/sq/pkg/utils"
)

var ErrUnknownStrategy = errors.New("unknown strategy")

type Strategy string

const (
	StrategyVectorized Strategy = "vectorized"
	StrategyMap        Strategy = "map"

	DefaultStrategy = StrategyVectorized
)

// Strategies lists every supported strategy.
var Strategies = []Strategy{StrategyVectorized, StrategyMap}

func ParseStrategy(s string) (Strategy, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultStrategy, nil
	}

	for _, st := range Strategies {
		if string(st) == s {
			return st, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
}

// Vectorize returns f lifted to whole slices. The returned function
// allocates the full result before filling it, so slot i only ever holds
// f(s[i]).
func Vectorize[T any, U any](f func(T) U) func([]T) []U {
	return func(s []T) []U {
		out := make([]U, len(s))
		for i := range s {
			out[i] = f(s[i])
		}
		return out
	}
}

// Map applies f to each element of s one at a time, in order.
func Map[T any, U any](s []T, f func(T) U) []U {
	return utils.Map(s, f)
}

func BulkApply[T any, U any](st Strategy, f func(T) U, s []T) ([]U, error) {
	switch st {
	case StrategyVectorized:
		return Vectorize(f)(s), nil
	case StrategyMap:
		return Map(s, f), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, string(st))
	}
}
