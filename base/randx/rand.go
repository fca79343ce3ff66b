// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package randx provides the injectable uniform random source
// used for all randomized defaults, so that callers needing
// reproducible ramps can supply a seeded source.
package randx

import "math/rand"

// Rand provides an interface with the subset of the standard
// rand.Rand methods used in rampensau, to support the use of either
// the global rand generator, a separate Rand source,
// or a plain function (see [Func]).
type Rand interface {
	// Float64 returns, as a float64, a pseudo-random number in the half-open interval [0.0,1.0).
	Float64() float64

	// Intn returns, as an int, a non-negative pseudo-random number in the half-open interval [0,n).
	// It panics if n <= 0.
	Intn(n int) int
}

// SysRand supports the system random number generator
// for either a separate rand.Rand source, or, if that
// is nil, the global rand stream.
type SysRand struct {

	// if non-nil, use this random number source instead of the global default one
	Rand *rand.Rand
}

// NewGlobalRand returns a new SysRand that implements the
// randx.Rand interface, with the system global rand source.
func NewGlobalRand() *SysRand {
	return &SysRand{}
}

// NewSysRand returns a new SysRand with a new
// rand.Rand random source with given initial seed.
func NewSysRand(seed int64) *SysRand {
	r := &SysRand{}
	r.NewRand(seed)
	return r
}

// NewRand sets Rand to a new rand.Rand source using given seed.
func (r *SysRand) NewRand(seed int64) {
	r.Rand = rand.New(rand.NewSource(seed))
}

// Float64 returns, as a float64, a pseudo-random number in the half-open interval [0.0,1.0).
func (r *SysRand) Float64() float64 {
	if r.Rand == nil {
		return rand.Float64()
	}
	return r.Rand.Float64()
}

// Intn returns, as an int, a non-negative pseudo-random number in the half-open interval [0,n).
// It panics if n <= 0.
func (r *SysRand) Intn(n int) int {
	if r.Rand == nil {
		return rand.Intn(n)
	}
	return r.Rand.Intn(n)
}

// Func is a function returning uniform values in [0,1),
// usable as a [Rand]. It is the simplest way to plug in a
// deterministic sequence for tests.
type Func func() float64

// Float64 returns the next value of the function.
func (f Func) Float64() float64 {
	return f()
}

// Intn returns floor(f() * n).
func (f Func) Intn(n int) int {
	if n <= 0 {
		panic("randx: invalid argument to Intn")
	}
	i := int(f() * float64(n))
	return min(max(i, 0), n-1)
}

// Sequence returns a [Func] that cycles through the given values,
// which should all be in [0,1).
func Sequence(vals ...float64) Func {
	i := 0
	return func() float64 {
		v := vals[i%len(vals)]
		i++
		return v
	}
}

// OrGlobal returns rnd if it is non-nil, and the system
// global random source otherwise.
func OrGlobal(rnd Rand) Rand {
	if rnd == nil {
		return NewGlobalRand()
	}
	return rnd
}
