package records

// Number covers the field types summary cards aggregate.
type Number interface {
	~int | ~int64 | ~float64
}

// Sum adds value(item) over items.
func Sum[T any, N Number](items []T, value func(T) N) N {
	var total N
	for _, item := range items {
		total += value(item)
	}
	return total
}

// SumWhere adds value(item) over the items accepted by keep.
func SumWhere[T any, N Number](items []T, keep func(T) bool, value func(T) N) N {
	var total N
	for _, item := range items {
		if keep(item) {
			total += value(item)
		}
	}
	return total
}

// Average is the arithmetic mean; an empty input averages to 0.
func Average[T any, N Number](items []T, value func(T) N) float64 {
	if len(items) == 0 {
		return 0
	}
	return float64(Sum(items, value)) / float64(len(items))
}

// Count returns how many items satisfy keep.
func Count[T any](items []T, keep func(T) bool) int {
	n := 0
	for _, item := range items {
		if keep(item) {
			n++
		}
	}
	return n
}

// CountBy tallies items per key.
func CountBy[T any](items []T, key func(T) string) map[string]int {
	out := make(map[string]int)
	for _, item := range items {
		out[key(item)]++
	}
	return out
}
