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
	"sort"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/pkg/errors"
	"golang.org/x/text/language"
)

var (
	ErrUnknownField = errors.New("unknown field")
	ErrInvalidPage  = errors.New("invalid page")
	ErrInvalidState = errors.New("operation not allowed in current state")
)

// Field identifies a sortable column of a schema.
type Field string

// TextFunc reads a textual field of a record. The boolean is false when the
// record has no value for the field.
type TextFunc[T any] func(rec *T) (string, bool)

// Text builds a TextFunc treating the empty string as an absent value.
func Text[T any](get func(rec *T) string) TextFunc[T] {
	return func(rec *T) (string, bool) {
		s := get(rec)
		return s, s != ""
	}
}

// Schema describes one entity type to the engine: how to identify, search,
// filter and sort its records.
type Schema[T any] struct {
	Name string
	ID   func(rec *T) string

	// Search lists the fields tested by the free-text query.
	Search []TextFunc[T]

	// Filters maps criterion names to their filter.
	Filters map[string]Filter[T]

	// Sorts maps the sortable fields to their comparison strategy.
	Sorts map[Field]SortStrategy[T]

	DefaultSort SortSpec

	// Language selects the collation used by composite keys. Defaults to
	// English.
	Language language.Tag
}

// Diagnostics counts record values that could not be interpreted during a
// recompute.
type Diagnostics struct {
	InvalidTimestamps int
	InvalidNumbers    int
}

func (d Diagnostics) Total() int {
	return d.InvalidTimestamps + d.InvalidNumbers
}

func (s *Schema[T]) sortStrategy(f Field) (SortStrategy[T], error) {
	strategy, ok := s.Sorts[f]
	if !ok {
		names := make([]string, 0, len(s.Sorts))
		for _, field := range s.Fields() {
			names = append(names, string(field))
		}
		return nil, errors.Wrapf(ErrUnknownField, "%s: cannot sort by %q (sortable: %s)",
			s.Name, f, strings.Join(names, ", "))
	}
	return strategy, nil
}

// Fields returns the sortable fields of the schema in lexical order.
func (s *Schema[T]) Fields() []Field {
	fields := make([]Field, 0, len(s.Sorts))
	for f := range s.Sorts {
		fields = append(fields, f)
	}
	sort.Slice(fields, func(i, j int) bool { return fields[i] < fields[j] })
	return fields
}

// ValidateCriteria reports values of known criteria that no record could
// ever match because they are malformed. Unknown and inactive criteria are
// not checked.
func (s *Schema[T]) ValidateCriteria(c Criteria) error {
	errs := validation.Errors{}
	for name, value := range c {
		f, ok := s.Filters[name]
		if !ok || strings.TrimSpace(value) == "" {
			continue
		}
		if err := f.validate(value); err != nil {
			errs[name] = err
		}
	}
	return errs.Filter()
}

// timestampLayouts are tried in order when parsing record timestamps. Only
// the first carries a zone; the others are read as local time, like the
// date buckets they are compared with.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseTimestamp(s string) (time.Time, bool) {
	return parseTimestampIn(s, time.Local)
}

func parseTimestampIn(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
