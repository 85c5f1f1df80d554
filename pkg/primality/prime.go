// Package primality decides whether integers are prime using trial division.
package primality

import "golang.org/x/exp/constraints"

// Integer is any signed or unsigned integer type.
type Integer interface {
	constraints.Integer
}

// IsPrime reports whether n is prime. Zero, one and every negative value
// are not prime.
//
// Odd candidates are tried while i <= n/i, which is i*i <= n without the
// multiplication and therefore cannot overflow for any integer width.
func IsPrime[T Integer](n T) bool {
	if n <= 1 {
		return false
	}
	if n == 2 {
		return true
	}
	if n%2 == 0 {
		return false
	}
	for i := T(3); i <= n/i; i += 2 {
		if n%i == 0 {
			return false
		}
	}
	return true
}

// Filter returns the primes in values, in their original order.
func Filter[T Integer](values []T) []T {
	primes := make([]T, 0, len(values))
	for _, v := range values {
		if IsPrime(v) {
			primes = append(primes, v)
		}
	}
	return primes
}
