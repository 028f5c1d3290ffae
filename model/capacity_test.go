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
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseCapacity(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		in  string
		out decimal.Decimal
		err string
	}{
		"with unit": {
			in:  "250 kg",
			out: decimal.NewFromInt(250),
		},
		"upper case unit, no space": {
			in:  "1000KG",
			out: decimal.NewFromInt(1000),
		},
		"plain number": {
			in:  " 12.5 ",
			out: decimal.RequireFromString("12.5"),
		},
		"blank": {
			in:  "  kg",
			err: ErrCapacityEmpty.Error(),
		},
		"not a number": {
			in:  "heavy",
			err: `invalid capacity "heavy"`,
		},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			out, err := ParseCapacity(tc.in)
			if tc.err != "" {
				assert.ErrorContains(t, err, tc.err)
				return
			}
			assert.NoError(t, err)
			assert.True(t, tc.out.Equal(out), "got %s", out)
		})
	}
}

func TestFormatCapacity(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		in, out string
	}{
		"appends the unit":     {in: "250", out: "250 kg"},
		"idempotent":           {in: "250 kg", out: "250 kg"},
		"normalizes the unit":  {in: " 250KG ", out: "250 kg"},
		"blank stays blank":    {in: " ", out: ""},
		"keeps decimal places": {in: "12.50", out: "12.50 kg"},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.out, FormatCapacity(tc.in))
			assert.Equal(t, tc.out, FormatCapacity(FormatCapacity(tc.in)))
		})
	}
}

func TestCapacityRoundTrip(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"250", "250 kg", "0.75", "3000kg"} {
		formatted := FormatCapacity(in)
		parsed, err := ParseCapacity(formatted)
		assert.NoError(t, err)

		direct, err := ParseCapacity(in)
		assert.NoError(t, err)
		assert.True(t, direct.Equal(parsed), in)
	}

	c, err := ParseCapacity(FormatCapacity("250"))
	assert.NoError(t, err)
	assert.True(t, decimal.NewFromInt(250).Equal(c))
}
