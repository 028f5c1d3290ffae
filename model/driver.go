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

const (
	AvailabilityAvailable = "available"
	AvailabilityBusy      = "busy"
	AvailabilityOffline   = "offline"
)

// Driver is a registered driver together with the vehicle they operate.
type Driver struct {
	ID                 string `json:"id"`
	FirstName          string `json:"firstName"`
	LastName           string `json:"lastName"`
	Email              string `json:"email"`
	Phone              string `json:"phone,omitempty"`
	VehicleType        string `json:"vehicleType,omitempty"`
	VehicleNumber      string `json:"vehicleNumber,omitempty"`
	AvailabilityStatus string `json:"availabilityStatus,omitempty"`
	IsVerified         bool   `json:"isVerified"`
	IsActive           bool   `json:"isActive"`
	CreatedAt          string `json:"createdAt"`
}

func (d *Driver) FullName() string {
	return FullName(d.FirstName, d.LastName)
}
