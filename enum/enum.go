// Copyright (C) 2026 Kestrel Games, Inc.
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

// Package enum implements an immutable bijection between a set of
// string keys and a set of distinct integer values, ordered by value.
//
// The design mirrors ion.Symtab: a forward slice holding entries in
// sort order, plus a map-based reverse index built once at
// construction time. Unlike Symtab, an Enum never grows after
// construction — every write-shaped operation fails with ErrReadOnly.
package enum

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"golang.org/x/exp/slices"
)

// ErrInvalidArgument is returned when construction arguments violate
// one of the bijection's rules (numeric key, out-of-range or
// duplicate value).
var ErrInvalidArgument = errors.New("enum: invalid argument")

// ErrNotFound is returned by ByKey/ByValue when the lookup key is not
// part of the bijection.
var ErrNotFound = errors.New("enum: not found")

// ErrReadOnly is returned by any operation that would mutate an Enum
// after construction.
var ErrReadOnly = errors.New("enum: read-only")

// Entry is one (key, value) pair of the bijection.
type Entry struct {
	Key   string
	Value int
}

// Enum is an immutable, ordered key<->value bijection.
type Enum struct {
	entries []Entry      // sorted by value (ascending, or descending if desc)
	byKey   map[string]int
	byValue map[int]string
	desc    bool
}

// Option configures New.
type Option func(*config)

type config struct {
	min, max   int
	haveRange  bool
	descending bool
}

// WithRange restricts every value to [min, max], inclusive. Without
// this option the full int range is allowed.
func WithRange(min, max int) Option {
	return func(c *config) {
		c.min, c.max = min, max
		c.haveRange = true
	}
}

// Descending sorts Iterate/the entry slice by value, highest first.
func Descending() Option {
	return func(c *config) { c.descending = true }
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

// New validates kv, sorts it by value, and builds the reverse index.
// Keys must be non-numeric strings; values must be distinct integers
// within the configured range (the full int range by default).
func New(kv map[string]int, opts ...Option) (*Enum, error) {
	cfg := config{min: math.MinInt, max: math.MaxInt}
	for _, o := range opts {
		o(&cfg)
	}

	e := &Enum{
		entries: make([]Entry, 0, len(kv)),
		byKey:   make(map[string]int, len(kv)),
		byValue: make(map[int]string, len(kv)),
		desc:    cfg.descending,
	}
	for k, v := range kv {
		if isNumeric(k) {
			return nil, fmt.Errorf("%w: key %q must not be numeric", ErrInvalidArgument, k)
		}
		if v < cfg.min || v > cfg.max {
			return nil, fmt.Errorf("%w: value %d for key %q outside [%d,%d]", ErrInvalidArgument, v, k, cfg.min, cfg.max)
		}
		if _, dup := e.byValue[v]; dup {
			return nil, fmt.Errorf("%w: duplicate value %d", ErrInvalidArgument, v)
		}
		e.byKey[k] = v
		e.byValue[v] = k
		e.entries = append(e.entries, Entry{Key: k, Value: v})
	}

	if cfg.descending {
		slices.SortFunc(e.entries, func(a, b Entry) bool { return a.Value > b.Value })
	} else {
		slices.SortFunc(e.entries, func(a, b Entry) bool { return a.Value < b.Value })
	}
	return e, nil
}

// ByKey returns the integer value associated with k.
func (e *Enum) ByKey(k string) (int, error) {
	v, ok := e.byKey[k]
	if !ok {
		return 0, fmt.Errorf("%w: key %q", ErrNotFound, k)
	}
	return v, nil
}

// ByValue returns the key associated with the integer v.
func (e *Enum) ByValue(v int) (string, error) {
	k, ok := e.byValue[v]
	if !ok {
		return "", fmt.Errorf("%w: value %d", ErrNotFound, v)
	}
	return k, nil
}

// Len returns the number of entries in the bijection.
func (e *Enum) Len() int { return len(e.entries) }

// Iterate calls fn for every (key, value) pair in sort order, stopping
// early if fn returns false.
func (e *Enum) Iterate(fn func(key string, value int) bool) {
	for _, ent := range e.entries {
		if !fn(ent.Key, ent.Value) {
			return
		}
	}
}

// Entries returns a copy of the sorted entry list.
func (e *Enum) Entries() []Entry {
	out := make([]Entry, len(e.entries))
	copy(out, e.entries)
	return out
}

// IsIn reports whether min equals the smallest value in the bijection
// and max is at least as large as the largest value.
func (e *Enum) IsIn(min, max int) bool {
	if len(e.entries) == 0 {
		return false
	}
	smallest, largest := e.entries[0].Value, e.entries[0].Value
	for _, ent := range e.entries {
		if ent.Value < smallest {
			smallest = ent.Value
		}
		if ent.Value > largest {
			largest = ent.Value
		}
	}
	return min == smallest && max >= largest
}

// Set always fails: an Enum is immutable after construction. It exists
// to give callers holding an Enum behind a mutable-looking interface a
// well-defined rejection rather than a panic.
func (e *Enum) Set(string, int) error {
	return ErrReadOnly
}
