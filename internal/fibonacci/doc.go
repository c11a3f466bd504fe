// Package fibonacci computes Fibonacci terms and prefix sums with
// arbitrary-precision integers.
package fibonacci
