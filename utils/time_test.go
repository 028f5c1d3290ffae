// Copyright 2023 Northern.tech AS
//
//	Licensed under the Apache License, Version 2.0 (the "License");
//	you may not use this file except in compliance with the License.
//	You may obtain a copy of the License at
//
//	    http://www.apache.org/licenses/LICENSE-2.0
//
//	Unless required by applicable law or agreed to in writing, software
//	distributed under the License is distributed on an "AS IS" BASIS,
//	WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//	See the License for the specific language governing permissions and
//	limitations under the License.
package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTruncateToDay(t *testing.T) {
	t.Parallel()

	plus5 := time.FixedZone("UTC+5", 5*60*60)
	testCases := map[string]struct {
		in  time.Time
		out time.Time
	}{
		"afternoon": {
			in:  time.Date(2024, 3, 10, 15, 30, 12, 500, time.UTC),
			out: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		},
		"already midnight": {
			in:  time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
			out: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		},
		"keeps the location": {
			in:  time.Date(2024, 3, 10, 2, 0, 0, 0, plus5),
			out: time.Date(2024, 3, 10, 0, 0, 0, 0, plus5),
		},
		"leap day": {
			in:  time.Date(2024, 2, 29, 23, 59, 59, 0, time.UTC),
			out: time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
		},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.out, TruncateToDay(tc.in))
		})
	}
}
