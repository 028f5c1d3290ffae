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
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const DefaultPageSize = 10

// Page is a window over the sorted records: Index is zero based.
type Page struct {
	Index int
	Size  int
}

func (p Page) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Index, validation.Min(0)),
		validation.Field(&p.Size, validation.Required, validation.Min(1)),
	)
}

// Result is the rendered window of a view.
type Result[T any] struct {
	Rows []T
	// TotalMatched counts every record that passed search and filters,
	// not only the rows of the page.
	TotalMatched int
}

// Paginate returns the records of the page at index. Windows beyond the
// end of records are empty.
func Paginate[T any](records []T, index, size int) []T {
	if index < 0 || size <= 0 {
		return []T{}
	}
	start := index * size
	if start >= len(records) {
		return []T{}
	}
	end := min(start+size, len(records))
	return records[start:end]
}

// PageCount returns the number of pages needed to show total records.
func PageCount(total, size int) int {
	if size <= 0 || total <= 0 {
		return 0
	}
	return (total + size - 1) / size
}
