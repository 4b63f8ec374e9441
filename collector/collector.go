// Package collector implements the signal return-value aggregation
// strategies: first, last, minimum, maximum, range, and the optional-wrapped
// default, translated from _examples/original_source/rocket.hpp's collector
// classes (the teacher has no aggregation concept of its own).
package collector

import "cmp"

// Optional stands in for the source's optional<T>: Valid is false when no
// slot ran, matching default_collector<T>'s "empty if no slot ran" contract.
type Optional[T any] struct {
	Value T
	Valid bool
}

// Collector aggregates a sequence of slot return values of type T into a
// result of type R.
type Collector[T, R any] interface {
	Collect(v T)
	Result() R
}

// First keeps the first value seen and discards the rest.
type First[T any] struct {
	v   T
	has bool
}

func (c *First[T]) Collect(v T) {
	if !c.has {
		c.v, c.has = v, true
	}
}

func (c *First[T]) Result() Optional[T] { return Optional[T]{Value: c.v, Valid: c.has} }

// Last keeps the most recently seen value.
type Last[T any] struct {
	v   T
	has bool
}

func (c *Last[T]) Collect(v T) { c.v, c.has = v, true }

func (c *Last[T]) Result() Optional[T] { return Optional[T]{Value: c.v, Valid: c.has} }

// Minimum keeps the smallest value seen.
type Minimum[T cmp.Ordered] struct {
	v   T
	has bool
}

func (c *Minimum[T]) Collect(v T) {
	if !c.has || v < c.v {
		c.v, c.has = v, true
	}
}

func (c *Minimum[T]) Result() Optional[T] { return Optional[T]{Value: c.v, Valid: c.has} }

// Maximum keeps the largest value seen.
type Maximum[T cmp.Ordered] struct {
	v   T
	has bool
}

func (c *Maximum[T]) Collect(v T) {
	if !c.has || v > c.v {
		c.v, c.has = v, true
	}
}

func (c *Maximum[T]) Result() Optional[T] { return Optional[T]{Value: c.v, Valid: c.has} }

// Range accumulates every value in emission order.
type Range[T any] struct {
	vs []T
}

func (c *Range[T]) Collect(v T) { c.vs = append(c.vs, v) }

func (c *Range[T]) Result() []T { return c.vs }

// Default is the signal's implicit collector when none is requested: it
// keeps the last value and reports whether any slot ran at all.
type Default[T any] struct {
	Last[T]
}
