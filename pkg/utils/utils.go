package utils

// Map calls f on each element of s in order and collects the results in a
// new slice. The result is never nil.
func Map[I any, O any](s []I, f func(I) O) []O {
	result := make([]O, 0, len(s))
	for _, v := range s {
		result = append(result, f(v))
	}
	return result
}
