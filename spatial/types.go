// Package spatial - core value types and configuration options.
//
// This file declares Point, Location, Bounds, the sentinel errors, and the
// functional options accepted by Generate.
package spatial

import (
	"errors"
	"fmt"
)

// Sentinel errors for spatial operations.
var (
	// ErrBadCount indicates a negative location count was requested.
	ErrBadCount = errors.New("spatial: location count must be non-negative")

	// ErrBadBounds indicates a degenerate sampling square (min >= max).
	// Surfaced through the WithBounds option constructor as a panic,
	// since a bad square is a programmer error, not runtime input.
	ErrBadBounds = errors.New("spatial: bounds min must be strictly below max")
)

// Point is a position in the plane.
type Point struct {
	X float64
	Y float64
}

// Location is a delivery stop: a stable label plus its position.
// Locations are immutable once generated; a new analysis run replaces
// them wholesale instead of mutating them.
type Location struct {
	// ID uniquely identifies the location within one run ("A", "B", …).
	ID string

	// Pos is the location's coordinate in the sampling square.
	Pos Point
}

// Bounds describes the axis-aligned sampling square [Min,Max)×[Min,Max).
type Bounds struct {
	Min float64
	Max float64
}

// UnitBounds is the default sampling square.
var UnitBounds = Bounds{Min: 0, Max: 1}

// LabelFn maps a vertex index to its stable identifier.
type LabelFn func(i int) string

// Options configures Generate.
//
// Bounds  – sampling square; defaults to UnitBounds.
// LabelFn – identifier scheme; defaults to DefaultLabel.
type Options struct {
	Bounds  Bounds
	LabelFn LabelFn
}

// Option is a functional option for Generate.
type Option func(*Options)

// WithBounds sets the sampling square to [min,max)×[min,max).
// Panics on min >= max (invalid configuration is a programmer error).
func WithBounds(min, max float64) Option {
	if min >= max {
		panic(ErrBadBounds.Error())
	}

	return func(o *Options) {
		o.Bounds = Bounds{Min: min, Max: max}
	}
}

// WithLabelFn overrides the identifier scheme. Panics on nil.
func WithLabelFn(fn LabelFn) Option {
	if fn == nil {
		panic("spatial: WithLabelFn requires a non-nil LabelFn")
	}

	return func(o *Options) {
		o.LabelFn = fn
	}
}

// DefaultLabel labels the first 26 vertices "A".."Z" and falls back to a
// numbered scheme beyond that. Deterministic by construction.
func DefaultLabel(i int) string {
	if i >= 0 && i < 26 {
		return string(rune('A' + i))
	}

	return fmt.Sprintf("V%d", i)
}

// defaultOptions returns the resolved defaults applied before user options.
func defaultOptions() Options {
	return Options{
		Bounds:  UnitBounds,
		LabelFn: DefaultLabel,
	}
}
