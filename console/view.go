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
package console

import (
	"context"

	"github.com/pkg/errors"

	"github.com/haulwise/console/model"
	"github.com/haulwise/console/store"
	"github.com/haulwise/console/table"
	"github.com/haulwise/console/views"
)

// ParamsError reports request parameters that fail validation.
type ParamsError struct {
	Err error
}

func (e *ParamsError) Error() string {
	return "invalid parameters: " + e.Err.Error()
}

func (e *ParamsError) Unwrap() error {
	return e.Err
}

// mountedView hides the record type of a view from the registry.
type mountedView interface {
	Kind() model.ViewKind
	Refresh(ctx context.Context) error
	Apply(params model.ViewParams) error
	Snapshot(id string) *model.ViewSnapshot
}

type viewEntry[T, S any] struct {
	kind    model.ViewKind
	view    *table.View[T]
	summary *views.Summarizer[T, S]
}

func newViewEntry[T, S any](
	kind model.ViewKind,
	schema *table.Schema[T],
	source func(ctx context.Context) ([]T, error),
	summarize func([]T) S,
	opts ...table.Option[T],
) (*viewEntry[T, S], error) {
	summary := views.NewSummarizer(summarize)
	opts = append(opts, table.WithObserver[T](summary.Observe))
	v, err := table.NewView(schema, store.NewStore[T](store.SourceFunc[T](source)), opts...)
	if err != nil {
		return nil, err
	}
	return &viewEntry[T, S]{kind: kind, view: v, summary: summary}, nil
}

func (e *viewEntry[T, S]) Kind() model.ViewKind {
	return e.kind
}

// Refresh reloads the view, retrying it when it is in the error state. A
// failed fetch leaves the view in the error state and is reported through
// its snapshot, not as an error.
func (e *viewEntry[T, S]) Refresh(ctx context.Context) error {
	err := e.view.Retry(ctx)
	if errors.Cause(err) == table.ErrInvalidState {
		err = e.view.Refresh(ctx)
	}
	if err != nil {
		var fetchErr *store.FetchError
		if errors.As(err, &fetchErr) {
			return nil
		}
	}
	return err
}

// Apply sets all parameters at once or none of them. An explicit page
// wins over the reset caused by the other changes. A sort without an
// order toggles the direction of the field.
func (e *viewEntry[T, S]) Apply(params model.ViewParams) error {
	if err := params.Validate(); err != nil {
		return &ParamsError{Err: err}
	}
	change := table.Change{
		Query:    params.Query,
		Filters:  table.Criteria(params.Filters),
		PageSize: params.PerPage,
		Page:     params.Page,
	}
	if params.Sort != nil {
		field := table.Field(params.Sort.Field)
		switch params.Sort.Order {
		case "":
			change.ToggleSort = field
		case model.SortOrderDesc:
			change.Sort = &table.SortSpec{Field: field, Direction: table.Descending}
		default:
			change.Sort = &table.SortSpec{Field: field}
		}
	}
	if err := e.view.Apply(change); err != nil {
		return &ParamsError{Err: err}
	}
	return nil
}

func (e *viewEntry[T, S]) Snapshot(id string) *model.ViewSnapshot {
	snap := e.view.Snapshot()
	out := &model.ViewSnapshot{
		ID:      id,
		Kind:    e.kind,
		State:   snap.State.String(),
		Query:   snap.Query,
		Filters: snap.Criteria,
		Sort: model.SortParam{
			Field: string(snap.Sort.Field),
			Order: snap.Sort.Direction.String(),
		},
		Page:         snap.Page.Index,
		PerPage:      snap.Page.Size,
		TotalMatched: snap.Result.TotalMatched,
		Rows:         snap.Result.Rows,
		Warnings:     snap.Diagnostics.Total(),
	}
	if snap.Err != nil {
		out.Error = snap.Err.Error()
	}
	if snap.State == table.StateReady {
		out.Summary = e.summary.Summary()
	}
	if !snap.LoadedAt.IsZero() {
		loadedAt := snap.LoadedAt
		out.LoadedAt = &loadedAt
	}
	return out
}
