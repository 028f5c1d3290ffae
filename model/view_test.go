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

func intPtr(i int) *int       { return &i }
func strPtr(s string) *string { return &s }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestParseSortParam(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		in  string
		out *SortParam
		err string
	}{
		"empty": {},
		"field only": {
			in:  "createdAt",
			out: &SortParam{Field: "createdAt", Order: SortOrderAsc},
		},
		"descending": {
			in:  "name:desc",
			out: &SortParam{Field: "name", Order: SortOrderDesc},
		},
		"bad order": {
			in:  "name:up",
			err: "invalid sort: order: must be a valid value.",
		},
		"missing field": {
			in:  ":asc",
			err: "invalid sort: field: cannot be blank.",
		},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			out, err := ParseSortParam(tc.in)
			if tc.err != "" {
				assert.EqualError(t, err, tc.err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.out, out)
		})
	}
}

func TestMountRequestValidate(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		req MountRequest
		err string
	}{
		"ok": {
			req: MountRequest{
				Kind: ViewDrivers,
				ViewParams: ViewParams{
					Query:   strPtr("van"),
					Filters: map[string]string{"vehicleType": "van"},
					Sort:    &SortParam{Field: "name", Order: SortOrderDesc},
					Page:    intPtr(0),
					PerPage: intPtr(25),
				},
			},
		},
		"ok, defaults": {
			req: MountRequest{Kind: ViewPricing},
		},
		"missing kind": {
			req: MountRequest{},
			err: "kind: cannot be blank",
		},
		"unknown kind": {
			req: MountRequest{Kind: "shipments"},
			err: "kind: must be a valid value",
		},
		"negative page": {
			req: MountRequest{Kind: ViewUsers, ViewParams: ViewParams{Page: intPtr(-1)}},
			err: "page: must be no less than 0.",
		},
		"page too large": {
			req: MountRequest{Kind: ViewUsers, ViewParams: ViewParams{PerPage: intPtr(MaxPerPage + 1)}},
			err: "per_page: must be no greater than 500.",
		},
		"bad sort": {
			req: MountRequest{Kind: ViewUsers, ViewParams: ViewParams{Sort: &SortParam{Field: "name", Order: "sideways"}}},
			err: "sort: (order: must be a valid value.).",
		},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			err := tc.req.Validate()
			if tc.err != "" {
				assert.EqualError(t, err, tc.err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestVehiclePricingUpdate(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		update VehiclePricingUpdate
		err    string
	}{
		"ok": {
			update: VehiclePricingUpdate{
				Capacity:  strPtr("250"),
				BaseFare:  decPtr("49.90"),
				PerKmRate: decPtr("1.25"),
			},
		},
		"ok, nothing to change": {},
		"empty vehicle type": {
			update: VehiclePricingUpdate{VehicleType: strPtr("")},
			err:    "vehicleType: cannot be blank.",
		},
		"bad capacity": {
			update: VehiclePricingUpdate{Capacity: strPtr("lots")},
			err:    `capacity: invalid capacity "lots"`,
		},
		"zero capacity": {
			update: VehiclePricingUpdate{Capacity: strPtr("0 kg")},
			err:    "capacity: must be greater than zero.",
		},
		"negative fare": {
			update: VehiclePricingUpdate{BaseFare: decPtr("-1")},
			err:    "baseFare: must not be negative.",
		},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			err := tc.update.Validate()
			if tc.err != "" {
				assert.ErrorContains(t, err, tc.err)
			} else {
				assert.NoError(t, err)
			}
		})
	}

	normalized := VehiclePricingUpdate{Capacity: strPtr("250")}.Normalized()
	assert.Equal(t, "250 kg", *normalized.Capacity)
	assert.Nil(t, VehiclePricingUpdate{}.Normalized().Capacity)
}
