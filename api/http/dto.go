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
package http

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/haulwise/console/model"
	"github.com/haulwise/console/table"
)

// ViewDto is the wire form of a mounted view.
type ViewDto struct {
	ID           string            `json:"id"`
	Kind         model.ViewKind    `json:"kind"`
	State        string            `json:"state"`
	Error        string            `json:"error,omitempty"`
	Query        string            `json:"query"`
	Filters      map[string]string `json:"filters"`
	Sort         string            `json:"sort"`
	Page         int               `json:"page"`
	PerPage      int               `json:"per_page"`
	Pages        int               `json:"pages"`
	TotalMatched int               `json:"total_matched"`
	Rows         interface{}       `json:"rows"`
	Summary      interface{}       `json:"summary,omitempty"`
	Warnings     int               `json:"warnings,omitempty"`
	LoadedAt     *time.Time        `json:"loaded_at,omitempty"`
}

func NewViewDto(s *model.ViewSnapshot) *ViewDto {
	dto := &ViewDto{
		ID:           s.ID,
		Kind:         s.Kind,
		State:        s.State,
		Error:        s.Error,
		Query:        s.Query,
		Filters:      s.Filters,
		Page:         s.Page,
		PerPage:      s.PerPage,
		Pages:        table.PageCount(s.TotalMatched, s.PerPage),
		TotalMatched: s.TotalMatched,
		Rows:         s.Rows,
		Summary:      s.Summary,
		Warnings:     s.Warnings,
		LoadedAt:     s.LoadedAt,
	}
	if dto.Filters == nil {
		dto.Filters = map[string]string{}
	}
	if s.Sort.Field != "" {
		dto.Sort = s.Sort.Field + ":" + s.Sort.Order
	}
	return dto
}

// DriverVerificationDto is the body of a driver verification change.
type DriverVerificationDto struct {
	Verified *bool `json:"verified"`
}

func (d DriverVerificationDto) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Verified, validation.NotNil),
	)
}
