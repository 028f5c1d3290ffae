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
	"time"

	"github.com/shopspring/decimal"
)

// UserSummary feeds the statistics panel of the user list.
type UserSummary struct {
	Total    int            `json:"total"`
	Active   int            `json:"active"`
	Inactive int            `json:"inactive"`
	ByRole   map[string]int `json:"by_role"`
}

// DriverSummary feeds the statistics panel of the driver list.
type DriverSummary struct {
	Total          int            `json:"total"`
	Verified       int            `json:"verified"`
	Unverified     int            `json:"unverified"`
	ByAvailability map[string]int `json:"by_availability"`
	ByVehicleType  map[string]int `json:"by_vehicle_type"`
}

// PricingSummary feeds the statistics panel of the vehicle pricing list.
type PricingSummary struct {
	Total           int             `json:"total"`
	ByVehicleType   map[string]int  `json:"by_vehicle_type"`
	AverageBaseFare decimal.Decimal `json:"average_base_fare"`
	MaxCapacity     decimal.Decimal `json:"max_capacity"`
}

// Badges are the counters shown next to the navigation entries.
type Badges struct {
	PendingDrivers   int        `json:"pending_drivers"`
	PendingShipments int        `json:"pending_shipments"`
	UpdatedAt        *time.Time `json:"updated_at,omitempty"`
}
