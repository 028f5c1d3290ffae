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
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortStable(t *testing.T) {
	t.Parallel()

	schema := newTestSchema()
	testCases := map[string]struct {
		records []testRecord
		spec    SortSpec
		ids     []string
	}{
		"composite name uses collation": {
			records: []testRecord{
				{ID: "eve", First: "Eve", Last: "Young"},
				{ID: "bob-z", First: "Bob", Last: "Zed"},
				{ID: "emile", First: "Émile", Last: "Abel"},
				{ID: "alice", First: "alice", Last: "Young"},
				{ID: "bob-a", First: "bob", Last: "Adams"},
			},
			spec: SortSpec{Field: "name"},
			ids:  []string{"alice", "bob-a", "bob-z", "emile", "eve"},
		},
		"created at descending": {
			records: []testRecord{
				{ID: "t1", Created: "2024-01-01T00:00:00Z"},
				{ID: "t3", Created: "2024-03-01T00:00:00Z"},
				{ID: "t2", Created: "2024-02-01T00:00:00.5+01:00"},
			},
			spec: SortSpec{Field: "createdAt", Direction: Descending},
			ids:  []string{"t3", "t2", "t1"},
		},
		"created at ascending": {
			records: []testRecord{
				{ID: "t1", Created: "2024-01-01T00:00:00Z"},
				{ID: "t3", Created: "2024-03-01T00:00:00Z"},
				{ID: "t2", Created: "2024-02-01"},
			},
			spec: SortSpec{Field: "createdAt", Direction: Ascending},
			ids:  []string{"t1", "t2", "t3"},
		},
		"numeric with unit": {
			records: []testRecord{
				{ID: "1000", Load: "1000 kg"},
				{ID: "250", Load: "250 kg"},
				{ID: "bad", Load: "n/a"},
				{ID: "50", Load: "50KG"},
				{ID: "12.5", Load: "12.5"},
			},
			spec: SortSpec{Field: "load"},
			ids:  []string{"bad", "12.5", "50", "250", "1000"},
		},
		"default puts missing values first": {
			records: []testRecord{
				{ID: "1", Kind: "van"},
				{ID: "2"},
				{ID: "3", Kind: "bike"},
			},
			spec: SortSpec{Field: "kind"},
			ids:  []string{"2", "3", "1"},
		},
		"ties keep their order ascending": {
			records: []testRecord{
				{ID: "1", Kind: "van"},
				{ID: "2", Kind: "truck"},
				{ID: "3", Kind: "van"},
				{ID: "4", Kind: "truck"},
				{ID: "5", Kind: "van"},
			},
			spec: SortSpec{Field: "kind"},
			ids:  []string{"2", "4", "1", "3", "5"},
		},
		"ties keep their order descending": {
			records: []testRecord{
				{ID: "1", Kind: "van"},
				{ID: "2", Kind: "truck"},
				{ID: "3", Kind: "van"},
				{ID: "4", Kind: "truck"},
				{ID: "5", Kind: "van"},
			},
			spec: SortSpec{Field: "kind", Direction: Descending},
			ids:  []string{"1", "3", "5", "2", "4"},
		},
		"unparseable timestamps keep their place among ties": {
			records: []testRecord{
				{ID: "x", Created: "garbage"},
				{ID: "y", Created: "garbage"},
			},
			spec: SortSpec{Field: "createdAt", Direction: Descending},
			ids:  []string{"x", "y"},
		},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			compare, err := schema.Comparator(tc.spec)
			require.NoError(t, err)
			before := ids(tc.records)

			sorted := SortStable(tc.records, compare)

			assert.Equal(t, tc.ids, ids(sorted))
			assert.Equal(t, before, ids(tc.records), "input must not be reordered")
		})
	}
}

func TestCompare(t *testing.T) {
	t.Parallel()

	schema := newTestSchema()
	early := testRecord{ID: "a", Created: "2024-01-01T00:00:00Z", Load: "10 kg"}
	late := testRecord{ID: "b", Created: "2024-06-01T00:00:00Z", Load: "2 kg"}
	broken := testRecord{ID: "c", Created: "yesterday-ish"}

	testCases := map[string]struct {
		a, b   testRecord
		spec   SortSpec
		result int
		err    error
	}{
		"temporal ascending": {
			a: early, b: late,
			spec:   SortSpec{Field: "createdAt"},
			result: -1,
		},
		"direction flips the sign": {
			a: early, b: late,
			spec:   SortSpec{Field: "createdAt", Direction: Descending},
			result: 1,
		},
		"invalid timestamp is neither less nor greater": {
			a: broken, b: late,
			spec:   SortSpec{Field: "createdAt"},
			result: 0,
		},
		"numeric is not lexicographic": {
			a: early, b: late,
			spec:   SortSpec{Field: "load"},
			result: 1,
		},
		"equal values": {
			a: early, b: early,
			spec:   SortSpec{Field: "kind"},
			result: 0,
		},
		"unknown field": {
			a: early, b: late,
			spec: SortSpec{Field: "color"},
			err:  ErrUnknownField,
		},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			result, err := schema.Compare(&tc.a, &tc.b, tc.spec)
			if tc.err != nil {
				assert.Equal(t, tc.err, errors.Cause(err))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.result, result)
		})
	}
}
