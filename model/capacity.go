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

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const (
	capacityUnit       = "kg"
	capacityUnitSuffix = " " + capacityUnit
)

var ErrCapacityEmpty = errors.New("capacity cannot be blank")

// trimCapacityUnit removes surrounding whitespace and a trailing,
// case-insensitive "kg" unit.
func trimCapacityUnit(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= len(capacityUnit) &&
		strings.EqualFold(s[len(s)-len(capacityUnit):], capacityUnit) {
		s = strings.TrimSpace(s[:len(s)-len(capacityUnit)])
	}
	return s
}

// ParseCapacity parses a capacity string such as "250 kg", "250KG" or
// "12.5" into a decimal.
func ParseCapacity(s string) (decimal.Decimal, error) {
	num := trimCapacityUnit(s)
	if num == "" {
		return decimal.Zero, ErrCapacityEmpty
	}
	d, err := decimal.NewFromString(num)
	if err != nil {
		return decimal.Zero, errors.Wrapf(err, "invalid capacity %q", s)
	}
	return d, nil
}

// FormatCapacity normalizes a capacity to the "<number> kg" form stored by
// the platform. Formatting an already formatted value is a no-op.
func FormatCapacity(s string) string {
	num := trimCapacityUnit(s)
	if num == "" {
		return ""
	}
	return num + capacityUnitSuffix
}
