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
	"context"
	"sync"
	"time"

	"github.com/mendersoftware/go-lib-micro/log"
	"github.com/pkg/errors"

	"github.com/haulwise/console/store"
)

type State int

const (
	StateIdle State = iota
	StateLoading
	StateError
	StateReady
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateError:
		return "error"
	case StateReady:
		return "ready"
	}
	return "idle"
}

// Observer receives the filtered, sorted and unpaginated records after
// every recompute, together with their count. It is called with the view
// locked and must not call back into the view.
type Observer[T any] func(filtered []T, total int)

type Option[T any] func(v *View[T])

func WithObserver[T any](o Observer[T]) Option[T] {
	return func(v *View[T]) {
		v.observer = o
	}
}

// WithClock overrides the time source used to resolve date ranges.
func WithClock[T any](now func() time.Time) Option[T] {
	return func(v *View[T]) {
		v.now = now
	}
}

func WithLogger[T any](l *log.Logger) Option[T] {
	return func(v *View[T]) {
		v.logger = l
	}
}

func WithPageSize[T any](size int) Option[T] {
	return func(v *View[T]) {
		v.page.Size = size
	}
}

// View derives a searched, filtered, sorted and paginated window from the
// records of its store, recomputing synchronously on every change.
type View[T any] struct {
	schema   *Schema[T]
	store    *store.Store[T]
	observer Observer[T]
	now      func() time.Time
	logger   *log.Logger

	mu       sync.Mutex
	state    State
	err      error
	query    string
	criteria Criteria
	sort     SortSpec
	compare  Comparator[T]
	page     Page
	result   Result[T]
	diag     Diagnostics
}

func NewView[T any](schema *Schema[T], st *store.Store[T], opts ...Option[T]) (*View[T], error) {
	v := &View[T]{
		schema:   schema,
		store:    st,
		now:      time.Now,
		criteria: Criteria{},
		sort:     schema.DefaultSort,
		page:     Page{Size: DefaultPageSize},
		result:   Result[T]{Rows: []T{}},
	}
	for _, opt := range opts {
		opt(v)
	}
	if v.logger == nil {
		v.logger = log.New(log.Ctx{"view": schema.Name})
	}
	if err := v.page.Validate(); err != nil {
		return nil, errors.Wrap(ErrInvalidPage, err.Error())
	}
	compare, err := schema.Comparator(v.sort)
	if err != nil {
		return nil, errors.Wrap(err, "invalid default sort")
	}
	v.compare = compare
	return v, nil
}

// Refresh loads the store and recomputes the view. On failure the view
// enters the error state and shows no rows. A response overtaken by a
// newer refresh is dropped silently.
func (v *View[T]) Refresh(ctx context.Context) error {
	v.mu.Lock()
	v.state = StateLoading
	v.mu.Unlock()

	_, err := v.store.Load(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()
	if err == store.ErrStaleResponse {
		log.FromContext(ctx).Debugf("%s: dropped stale response", v.schema.Name)
		return nil
	}
	if err != nil {
		v.state = StateError
		v.err = err
		v.result = Result[T]{Rows: []T{}}
		return err
	}
	v.state = StateReady
	v.err = nil
	v.recompute()
	return nil
}

// Retry re-enters loading from the error state.
func (v *View[T]) Retry(ctx context.Context) error {
	v.mu.Lock()
	state := v.state
	v.mu.Unlock()
	if state != StateError {
		return errors.Wrapf(ErrInvalidState, "cannot retry in state %s", state)
	}
	return v.Refresh(ctx)
}

func (v *View[T]) SetQuery(query string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.query = query
	v.update()
}

// SetCriteria replaces all criteria.
func (v *View[T]) SetCriteria(c Criteria) error {
	if err := v.schema.ValidateCriteria(c); err != nil {
		return err
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	v.criteria = c.Clone()
	v.update()
	return nil
}

// SetFilter changes a single criterion; the empty value clears it.
func (v *View[T]) SetFilter(name, value string) error {
	if err := v.schema.ValidateCriteria(Criteria{name: value}); err != nil {
		return err
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	c := v.criteria.Clone()
	if value == "" {
		delete(c, name)
	} else {
		c[name] = value
	}
	v.criteria = c
	v.update()
	return nil
}

func (v *View[T]) SetSort(spec SortSpec) error {
	compare, err := v.schema.Comparator(spec)
	if err != nil {
		return err
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	v.sort = spec
	v.compare = compare
	v.update()
	return nil
}

// ToggleSort sorts by f, flipping the direction when f is already sorted
// ascending and starting ascending otherwise.
func (v *View[T]) ToggleSort(f Field) error {
	return v.Apply(Change{ToggleSort: f})
}

// Change is a set of parameter updates applied together. Nil and empty
// fields leave the corresponding parameter unchanged.
type Change struct {
	Query *string
	// Filters are merged into the active criteria; an empty value clears
	// a criterion.
	Filters Criteria
	Sort    *SortSpec
	// ToggleSort is used when Sort is nil, see View.ToggleSort.
	ToggleSort Field
	PageSize   *int
	// Page is applied after PageSize.
	Page *int
}

// Apply validates the whole change before touching the view, so a
// rejected change leaves it as it was. An accepted change is applied with
// a single recompute.
func (v *View[T]) Apply(c Change) error {
	if c.PageSize != nil && *c.PageSize <= 0 {
		return errors.Wrapf(ErrInvalidPage, "page size %d", *c.PageSize)
	}
	if c.Page != nil && *c.Page < 0 {
		return errors.Wrapf(ErrInvalidPage, "page index %d", *c.Page)
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	criteria := v.criteria
	if len(c.Filters) > 0 {
		criteria = v.criteria.Clone()
		for name, value := range c.Filters {
			if value == "" {
				delete(criteria, name)
			} else {
				criteria[name] = value
			}
		}
		if err := v.schema.ValidateCriteria(criteria); err != nil {
			return errors.Wrap(err, "filters")
		}
	}

	spec, compare := v.sort, v.compare
	switch {
	case c.Sort != nil:
		spec = *c.Sort
	case c.ToggleSort != "":
		spec = SortSpec{Field: c.ToggleSort}
		if v.sort.Field == c.ToggleSort && v.sort.Direction == Ascending {
			spec.Direction = Descending
		}
	}
	if spec != v.sort {
		var err error
		if compare, err = v.schema.Comparator(spec); err != nil {
			return err
		}
	}

	if c.Query != nil {
		v.query = *c.Query
	}
	v.criteria = criteria
	v.sort, v.compare = spec, compare
	if c.PageSize != nil {
		v.page = Page{Index: 0, Size: *c.PageSize}
	}
	if c.Page != nil {
		v.page.Index = *c.Page
	}
	v.update()
	return nil
}

func (v *View[T]) SetPage(index int) error {
	if index < 0 {
		return errors.Wrapf(ErrInvalidPage, "page index %d", index)
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	v.page.Index = index
	v.update()
	return nil
}

// SetPageSize changes the number of rows per page and goes back to the
// first page.
func (v *View[T]) SetPageSize(size int) error {
	if size <= 0 {
		return errors.Wrapf(ErrInvalidPage, "page size %d", size)
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	v.page = Page{Index: 0, Size: size}
	v.update()
	return nil
}

func (v *View[T]) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

func (v *View[T]) Result() Result[T] {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.result
}

// Snapshot is a consistent copy of the state of a view.
type Snapshot[T any] struct {
	State       State
	Err         error
	Query       string
	Criteria    Criteria
	Sort        SortSpec
	Page        Page
	Result      Result[T]
	Diagnostics Diagnostics
	LoadedAt    time.Time
}

func (v *View[T]) Snapshot() Snapshot[T] {
	v.mu.Lock()
	defer v.mu.Unlock()
	return Snapshot[T]{
		State:       v.state,
		Err:         v.err,
		Query:       v.query,
		Criteria:    v.criteria.Clone(),
		Sort:        v.sort,
		Page:        v.page,
		Result:      v.result,
		Diagnostics: v.diag,
		LoadedAt:    v.store.LoadedAt(),
	}
}

// update recomputes when records are available; otherwise the new state
// is applied by the next successful load.
func (v *View[T]) update() {
	if v.state == StateReady {
		v.recompute()
	}
}

func (v *View[T]) recompute() {
	var diag Diagnostics
	match := v.schema.Predicate(v.criteria, v.now(), &diag)

	records := v.store.Records()
	filtered := make([]T, 0, len(records))
	for i := range records {
		rec := &records[i]
		if v.schema.Matches(rec, v.query) && match(rec) {
			filtered = append(filtered, *rec)
		}
	}

	if strategy, err := v.schema.sortStrategy(v.sort.Field); err == nil {
		for i := range filtered {
			strategy.check(&filtered[i], &diag)
		}
	}
	sorted := SortStable(filtered, v.compare)

	if v.page.Index*v.page.Size >= len(sorted) && len(sorted) > 0 {
		v.page.Index = 0
	}
	v.result = Result[T]{
		Rows:         Paginate(sorted, v.page.Index, v.page.Size),
		TotalMatched: len(sorted),
	}

	v.diag = diag
	if diag.Total() > 0 {
		v.logger.Warnf("%s: %d unparseable timestamps and %d unparseable numbers",
			v.schema.Name, diag.InvalidTimestamps, diag.InvalidNumbers)
	}
	if v.observer != nil {
		v.observer(sorted, len(sorted))
	}
}
