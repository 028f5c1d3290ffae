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
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// VehiclePricing is the tariff applied to one vehicle type.
type VehiclePricing struct {
	ID          string `json:"id"`
	VehicleType string `json:"vehicleType"`
	// Capacity uses the "<number> kg" convention, see FormatCapacity.
	Capacity    string          `json:"capacity"`
	BaseFare    decimal.Decimal `json:"baseFare"`
	PerKmRate   decimal.Decimal `json:"perKmRate"`
	Description string          `json:"description,omitempty"`
	CreatedAt   string          `json:"createdAt"`
	UpdatedAt   string          `json:"updatedAt,omitempty"`
}

// VehiclePricingUpdate is an edit of a pricing row. Nil fields are left
// unchanged.
type VehiclePricingUpdate struct {
	VehicleType *string          `json:"vehicleType,omitempty"`
	Capacity    *string          `json:"capacity,omitempty"`
	BaseFare    *decimal.Decimal `json:"baseFare,omitempty"`
	PerKmRate   *decimal.Decimal `json:"perKmRate,omitempty"`
	Description *string          `json:"description,omitempty"`
}

var errNegative = errors.New("must not be negative")

func nonNegative(value interface{}) error {
	d, _ := value.(*decimal.Decimal)
	if d != nil && d.IsNegative() {
		return errNegative
	}
	return nil
}

func validCapacity(value interface{}) error {
	s, _ := value.(*string)
	if s == nil {
		return nil
	}
	c, err := ParseCapacity(*s)
	if err != nil {
		return err
	}
	if !c.IsPositive() {
		return errors.New("must be greater than zero")
	}
	return nil
}

func (u VehiclePricingUpdate) Validate() error {
	return validation.ValidateStruct(&u,
		validation.Field(&u.VehicleType, validation.NilOrNotEmpty, validation.Length(1, 64)),
		validation.Field(&u.Capacity, validation.By(validCapacity)),
		validation.Field(&u.BaseFare, validation.By(nonNegative)),
		validation.Field(&u.PerKmRate, validation.By(nonNegative)),
		validation.Field(&u.Description, validation.Length(0, 1024)),
	)
}

// Normalized returns a copy of the update with the capacity rewritten to
// the stored "<number> kg" form.
func (u VehiclePricingUpdate) Normalized() VehiclePricingUpdate {
	if u.Capacity != nil {
		c := FormatCapacity(*u.Capacity)
		u.Capacity = &c
	}
	return u
}
