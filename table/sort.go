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
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type Direction int

const (
	Ascending Direction = iota
	Descending
)

func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// SortSpec selects the single active sort column.
type SortSpec struct {
	Field     Field
	Direction Direction
}

// Comparator orders two records; negative when a sorts before b.
type Comparator[T any] func(a, b *T) int

// SortStrategy decides how the values of one sort key compare. The
// implementations are Composite, Temporal, Numeric and Default.
type SortStrategy[T any] interface {
	comparator(c *collate.Collator) Comparator[T]
	check(rec *T, diag *Diagnostics)
}

// Composite compares "First Second", lowercased, using the collation of
// the schema language.
type Composite[T any] struct {
	First  TextFunc[T]
	Second TextFunc[T]
}

func (s Composite[T]) key(rec *T) string {
	first, _ := s.First(rec)
	second, _ := s.Second(rec)
	return strings.ToLower(first + " " + second)
}

func (s Composite[T]) comparator(c *collate.Collator) Comparator[T] {
	return func(a, b *T) int {
		return c.CompareString(s.key(a), s.key(b))
	}
}

func (s Composite[T]) check(*T, *Diagnostics) {}

// Temporal compares parsed timestamps. A record whose timestamp cannot be
// parsed compares equal to everything, which may leave pathological input
// in a non-transitive order.
type Temporal[T any] struct {
	Value TextFunc[T]
}

func (s Temporal[T]) comparator(*collate.Collator) Comparator[T] {
	return func(a, b *T) int {
		rawA, _ := s.Value(a)
		rawB, _ := s.Value(b)
		ta, okA := parseTimestamp(rawA)
		tb, okB := parseTimestamp(rawB)
		if !okA || !okB {
			return 0
		}
		return ta.Compare(tb)
	}
}

func (s Temporal[T]) check(rec *T, diag *Diagnostics) {
	raw, ok := s.Value(rec)
	if !ok {
		return
	}
	if _, ok := parseTimestamp(raw); !ok {
		diag.InvalidTimestamps++
	}
}

// Numeric compares numbers stored as text, such as "250 kg". Missing or
// unparseable values count as zero.
type Numeric[T any] struct {
	NumberField[T]
}

func (s Numeric[T]) comparator(*collate.Collator) Comparator[T] {
	return func(a, b *T) int {
		da, _ := s.number(a, nil)
		db, _ := s.number(b, nil)
		return da.Cmp(db)
	}
}

func (s Numeric[T]) check(rec *T, diag *Diagnostics) {
	s.number(rec, diag)
}

// Default compares the raw text of a field; missing values compare as the
// empty string.
type Default[T any] struct {
	Value TextFunc[T]
}

func (s Default[T]) comparator(*collate.Collator) Comparator[T] {
	return func(a, b *T) int {
		va, _ := s.Value(a)
		vb, _ := s.Value(b)
		return strings.Compare(va, vb)
	}
}

func (s Default[T]) check(*T, *Diagnostics) {}

func (s *Schema[T]) collator() *collate.Collator {
	tag := s.Language
	if tag == language.Und {
		tag = language.English
	}
	return collate.New(tag)
}

// Comparator returns the comparison for spec with its direction applied.
// The returned function is not safe for concurrent use.
func (s *Schema[T]) Comparator(spec SortSpec) (Comparator[T], error) {
	strategy, err := s.sortStrategy(spec.Field)
	if err != nil {
		return nil, err
	}
	compare := strategy.comparator(s.collator())
	if spec.Direction == Descending {
		return func(a, b *T) int {
			return -compare(a, b)
		}, nil
	}
	return compare, nil
}

// Compare orders a and b by spec and returns -1, 0 or 1.
func (s *Schema[T]) Compare(a, b *T, spec SortSpec) (int, error) {
	compare, err := s.Comparator(spec)
	if err != nil {
		return 0, err
	}
	return sign(compare(a, b)), nil
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}

// SortStable returns a sorted copy of records. Records that compare equal
// keep their original relative order whatever the direction of compare.
func SortStable[T any](records []T, compare Comparator[T]) []T {
	order := make([]int, len(records))
	for i := range order {
		order[i] = i
	}
	slices.SortFunc(order, func(i, j int) int {
		if c := compare(&records[i], &records[j]); c != 0 {
			return c
		}
		return cmp.Compare(i, j)
	})
	sorted := make([]T, len(records))
	for k, i := range order {
		sorted[k] = records[i]
	}
	return sorted
}
