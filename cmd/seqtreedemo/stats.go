package main

import (
	"golang.org/x/exp/constraints"

	"github.com/alexkupri/array"
)

// sumTree adds up every element of t. Written against constraints.Integer
// rather than a hand-rolled numeric interface so the demo can be pointed at
// any integer element type without extra plumbing.
func sumTree[T constraints.Integer](t *array.Tree[T]) T {
	var total T
	for i := 0; i < t.Len(); i++ {
		v, err := t.At(i)
		if err != nil {
			break
		}
		total += v
	}
	return total
}
