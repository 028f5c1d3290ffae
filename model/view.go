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
package model

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/pkg/errors"
)

// ViewKind names one of the list views of the console.
type ViewKind string

const (
	ViewUsers   ViewKind = "users"
	ViewDrivers ViewKind = "drivers"
	ViewPricing ViewKind = "pricing"
)

var validViewKinds = []interface{}{
	string(ViewUsers),
	string(ViewDrivers),
	string(ViewPricing),
}

func (k ViewKind) Validate() error {
	return validation.Validate(string(k), validation.Required, validation.In(validViewKinds...))
}

const (
	SortOrderAsc  = "asc"
	SortOrderDesc = "desc"

	sortParamSeparator = ":"

	MaxPerPage = 500
)

var validSortOrders = []interface{}{SortOrderAsc, SortOrderDesc}

// SortParam selects the sort of a view. An empty order toggles the
// direction of the field.
type SortParam struct {
	Field string `json:"field"`
	Order string `json:"order,omitempty"`
}

func (s SortParam) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Field, validation.Required),
		validation.Field(&s.Order, validation.In(validSortOrders...)),
	)
}

// ParseSortParam parses the "field[:asc|desc]" notation. The order
// defaults to ascending.
func ParseSortParam(s string) (*SortParam, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.SplitN(s, sortParamSeparator, 2)
	sort := &SortParam{Field: parts[0], Order: SortOrderAsc}
	if len(parts) == 2 {
		sort.Order = parts[1]
	}
	if err := sort.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid sort")
	}
	return sort, nil
}

// ViewParams carries the user controlled state of a list view. Nil fields
// are left unchanged. Filters are merged into the active criteria; an empty
// value switches the named filter off.
type ViewParams struct {
	Query   *string           `json:"query,omitempty"`
	Filters map[string]string `json:"filters,omitempty"`
	Sort    *SortParam        `json:"sort,omitempty"`
	Page    *int              `json:"page,omitempty"`
	PerPage *int              `json:"per_page,omitempty"`
}

func (p ViewParams) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Sort),
		validation.Field(&p.Page, validation.Min(0)),
		validation.Field(&p.PerPage, validation.Min(1), validation.Max(MaxPerPage)),
	)
}

// MountRequest opens a new list view.
type MountRequest struct {
	Kind ViewKind `json:"kind"`
	ViewParams
}

func (m MountRequest) Validate() error {
	if err := m.Kind.Validate(); err != nil {
		return errors.Wrap(err, "kind")
	}
	return m.ViewParams.Validate()
}

// ViewSnapshot is the rendered state of a mounted view.
type ViewSnapshot struct {
	ID           string            `json:"id"`
	Kind         ViewKind          `json:"kind"`
	State        string            `json:"state"`
	Error        string            `json:"error,omitempty"`
	Query        string            `json:"query"`
	Filters      map[string]string `json:"filters"`
	Sort         SortParam         `json:"sort"`
	Page         int               `json:"page"`
	PerPage      int               `json:"per_page"`
	TotalMatched int               `json:"total_matched"`
	Rows         interface{}       `json:"rows"`
	Summary      interface{}       `json:"summary,omitempty"`
	Warnings     int               `json:"warnings,omitempty"`
	LoadedAt     *time.Time        `json:"loaded_at,omitempty"`
}
