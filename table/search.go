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

import "strings"

// Matches reports whether any search field of rec contains query, ignoring
// case. The empty query matches every record.
func (s *Schema[T]) Matches(rec *T, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	for _, field := range s.Search {
		v, ok := field(rec)
		if !ok {
			continue
		}
		if strings.Contains(strings.ToLower(v), q) {
			return true
		}
	}
	return false
}
