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
package platform

import (
	"bytes"
	"encoding/json"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/haulwise/console/model"
)

type listResponse[T any] struct {
	Data []T `json:"data"`
}

type countResponse struct {
	Count int `json:"count"`
}

type verificationRequest struct {
	IsVerified bool `json:"isVerified"`
}

type apiError struct {
	Message string `json:"message"`
}

// pricingRow keeps the amounts raw: a malformed price must not fail the
// whole collection.
type pricingRow struct {
	ID          string          `json:"id"`
	VehicleType string          `json:"vehicleType"`
	Capacity    string          `json:"capacity"`
	BaseFare    json.RawMessage `json:"baseFare"`
	PerKmRate   json.RawMessage `json:"perKmRate"`
	Description string          `json:"description"`
	CreatedAt   string          `json:"createdAt"`
	UpdatedAt   string          `json:"updatedAt"`
}

// pricing converts the row; amounts that are not numbers are reported and
// read as zero.
func (r *pricingRow) pricing() (model.VehiclePricing, error) {
	p := model.VehiclePricing{
		ID:          r.ID,
		VehicleType: r.VehicleType,
		Capacity:    r.Capacity,
		Description: r.Description,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
	var fareErr, rateErr error
	p.BaseFare, fareErr = parseAmount(r.BaseFare)
	p.PerKmRate, rateErr = parseAmount(r.PerKmRate)
	return p, validation.Errors{
		"baseFare":  fareErr,
		"perKmRate": rateErr,
	}.Filter()
}

// parseAmount accepts a JSON number or a numeric string; absent and null
// amounts are zero.
func parseAmount(raw json.RawMessage) (decimal.Decimal, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return decimal.Zero, nil
	}
	s := string(raw)
	if raw[0] == '"' {
		if err := json.Unmarshal(raw, &s); err != nil {
			return decimal.Zero, err
		}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, errors.Errorf("not a number: %s", raw)
	}
	return d, nil
}
