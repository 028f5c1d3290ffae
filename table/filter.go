// Copyright 2024 Northern.tech AS
//
//    Licensed under the Apache License, Version 2.0 (the "License");
//    you may not use this file except in compliance with the License.
//    You may obtain a copy of the License at
//
//        http://www.apache.org/licenses/LICENSE-2.0
//
//    Unless required by applicable law or agreed to in writing, software
//    distributed under the License is distributed on an "AS IS" BASIS,
//    WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//    See the License for the specific language governing permissions and
//    limitations under the License.
package table

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/haulwise/console/model"
)

// Criteria maps filter names to the selected value. A missing or empty
// value leaves the filter inactive.
type Criteria map[string]string

// Clone returns a copy of c without its inactive entries.
func (c Criteria) Clone() Criteria {
	out := make(Criteria, len(c))
	for k, v := range c {
		if v != "" {
			out[k] = v
		}
	}
	return out
}

// Predicate selects records.
type Predicate[T any] func(rec *T) bool

// Filter narrows a record set by the value selected for one criterion.
// The implementations are BoolFilter, EqualFilter, DateRangeFilter,
// MinFilter and MaxFilter.
type Filter[T any] interface {
	// predicate returns nil when value does not activate the filter.
	predicate(value string, now time.Time, diag *Diagnostics) Predicate[T]
	validate(value string) error
}

// Predicate composes the active criteria of c into a single predicate. A
// record passes only if it satisfies every active criterion; criteria the
// schema does not know are ignored.
func (s *Schema[T]) Predicate(c Criteria, now time.Time, diag *Diagnostics) Predicate[T] {
	if diag == nil {
		diag = &Diagnostics{}
	}
	preds := make([]Predicate[T], 0, len(c))
	for name, value := range c {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		f, ok := s.Filters[name]
		if !ok {
			continue
		}
		if p := f.predicate(value, now, diag); p != nil {
			preds = append(preds, p)
		}
	}
	return func(rec *T) bool {
		for _, p := range preds {
			if !p(rec) {
				return false
			}
		}
		return true
	}
}

// BoolFilter matches a boolean field against the tokens True and False,
// e.g. "active"/"inactive".
type BoolFilter[T any] struct {
	Value func(rec *T) bool
	True  string
	False string
}

func (f BoolFilter[T]) token(rec *T) string {
	if f.Value(rec) {
		return f.True
	}
	return f.False
}

func (f BoolFilter[T]) predicate(value string, _ time.Time, _ *Diagnostics) Predicate[T] {
	return func(rec *T) bool {
		return strings.EqualFold(f.token(rec), value)
	}
}

func (f BoolFilter[T]) validate(value string) error {
	return validation.Validate(strings.ToLower(value), validation.In(f.True, f.False))
}

// EqualFilter keeps records whose field equals the value, ignoring case.
// When Options is set, values outside of it are reported by validation.
type EqualFilter[T any] struct {
	Value   TextFunc[T]
	Options []string
}

func (f EqualFilter[T]) predicate(value string, _ time.Time, _ *Diagnostics) Predicate[T] {
	return func(rec *T) bool {
		v, ok := f.Value(rec)
		return ok && strings.EqualFold(v, value)
	}
}

func (f EqualFilter[T]) validate(value string) error {
	if len(f.Options) == 0 {
		return nil
	}
	for _, o := range f.Options {
		if strings.EqualFold(o, value) {
			return nil
		}
	}
	return validation.ErrInInvalid
}

// DateRangeFilter keeps records whose timestamp falls in the interval of
// a model.DateRange token. Records without a parseable timestamp never
// match.
type DateRangeFilter[T any] struct {
	Value TextFunc[T]
}

func (f DateRangeFilter[T]) timestamp(rec *T, diag *Diagnostics) (time.Time, bool) {
	raw, ok := f.Value(rec)
	if !ok {
		return time.Time{}, false
	}
	t, ok := parseTimestamp(raw)
	if !ok {
		diag.InvalidTimestamps++
	}
	return t, ok
}

func (f DateRangeFilter[T]) predicate(value string, now time.Time, diag *Diagnostics) Predicate[T] {
	r, err := model.ParseDateRange(value)
	if err != nil {
		return nil
	}
	start, end, bounded := r.Interval(now)
	if bounded {
		return func(rec *T) bool {
			t, ok := f.timestamp(rec, diag)
			return ok && !t.Before(start) && t.Before(end)
		}
	}
	return func(rec *T) bool {
		t, ok := f.timestamp(rec, diag)
		return ok && !t.Before(start)
	}
}

func (f DateRangeFilter[T]) validate(value string) error {
	return validation.Validate(value, validation.In(model.DateRanges...))
}

// ParseNumber parses a plain decimal number.
func ParseNumber(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.TrimSpace(s))
}

// NumberField reads a numeric field stored as text. A present value that
// Parse rejects counts as zero.
type NumberField[T any] struct {
	Value TextFunc[T]
	// Parse defaults to ParseNumber.
	Parse func(string) (decimal.Decimal, error)
}

func (f NumberField[T]) parse(s string) (decimal.Decimal, error) {
	if f.Parse != nil {
		return f.Parse(s)
	}
	return ParseNumber(s)
}

// number returns the value of rec and false when the field is absent.
func (f NumberField[T]) number(rec *T, diag *Diagnostics) (decimal.Decimal, bool) {
	raw, ok := f.Value(rec)
	if !ok {
		return decimal.Zero, false
	}
	d, err := f.parse(raw)
	if err != nil {
		if diag != nil {
			diag.InvalidNumbers++
		}
		return decimal.Zero, true
	}
	return d, true
}

func (f NumberField[T]) validate(value string) error {
	if _, err := f.parse(value); err != nil {
		return errors.New("must be a number")
	}
	return nil
}

// MinFilter keeps records whose numeric field is at least the value.
type MinFilter[T any] struct {
	NumberField[T]
}

func (f MinFilter[T]) predicate(value string, _ time.Time, diag *Diagnostics) Predicate[T] {
	bound, err := f.parse(value)
	if err != nil {
		return nil
	}
	return func(rec *T) bool {
		d, ok := f.number(rec, diag)
		return ok && d.GreaterThanOrEqual(bound)
	}
}

// MaxFilter keeps records whose numeric field is at most the value.
type MaxFilter[T any] struct {
	NumberField[T]
}

func (f MaxFilter[T]) predicate(value string, _ time.Time, diag *Diagnostics) Predicate[T] {
	bound, err := f.parse(value)
	if err != nil {
		return nil
	}
	return func(rec *T) bool {
		d, ok := f.number(rec, diag)
		return ok && d.LessThanOrEqual(bound)
	}
}
