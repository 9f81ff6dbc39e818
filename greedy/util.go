package greedy

import "golang.org/x/exp/constraints"

func gcd[T constraints.Signed](a, b T) T {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// ceilDiv divides a non-negative numerator by a positive denominator, rounding up
func ceilDiv[T constraints.Signed](numerator, denominator T) T {
	return (numerator + denominator - 1) / denominator
}

func maxOf[T constraints.Signed](first T, rest ...T) T {
	result := first
	for _, value := range rest {
		if value > result {
			result = value
		}
	}
	return result
}
