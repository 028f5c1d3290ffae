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
package views

import (
	"golang.org/x/text/language"

	"github.com/haulwise/console/model"
	"github.com/haulwise/console/table"
)

const (
	FieldVehicleType   table.Field = "vehicleType"
	FieldVehicleNumber table.Field = "vehicleNumber"
	FieldAvailability  table.Field = "availability"
	FieldVerified      table.Field = "verified"
)

const (
	FilterVerified     = "verified"
	FilterAvailability = "availability"
	FilterVehicleType  = "vehicleType"

	VerifiedTrue  = "true"
	VerifiedFalse = "false"
)

var availabilityStatuses = []string{
	model.AvailabilityAvailable,
	model.AvailabilityBusy,
	model.AvailabilityOffline,
}

func driverVerified(d *model.Driver) string {
	if d.IsVerified {
		return VerifiedTrue
	}
	return VerifiedFalse
}

// NewDriverSchema describes the driver list: newest registrations first.
func NewDriverSchema(lang language.Tag) *table.Schema[model.Driver] {
	first := table.Text(func(d *model.Driver) string { return d.FirstName })
	last := table.Text(func(d *model.Driver) string { return d.LastName })
	email := table.Text(func(d *model.Driver) string { return d.Email })
	phone := table.Text(func(d *model.Driver) string { return d.Phone })
	vehicleType := table.Text(func(d *model.Driver) string { return d.VehicleType })
	vehicleNumber := table.Text(func(d *model.Driver) string { return d.VehicleNumber })
	availability := table.Text(func(d *model.Driver) string { return d.AvailabilityStatus })
	created := table.Text(func(d *model.Driver) string { return d.CreatedAt })

	return &table.Schema[model.Driver]{
		Name: string(model.ViewDrivers),
		ID:   func(d *model.Driver) string { return d.ID },
		Search: []table.TextFunc[model.Driver]{
			first,
			last,
			table.Text((*model.Driver).FullName),
			email,
			phone,
			vehicleType,
			vehicleNumber,
			availability,
		},
		Filters: map[string]table.Filter[model.Driver]{
			FilterStatus: table.BoolFilter[model.Driver]{
				Value: func(d *model.Driver) bool { return d.IsActive },
				True:  StatusActive,
				False: StatusInactive,
			},
			FilterVerified: table.BoolFilter[model.Driver]{
				Value: func(d *model.Driver) bool { return d.IsVerified },
				True:  VerifiedTrue,
				False: VerifiedFalse,
			},
			FilterAvailability: table.EqualFilter[model.Driver]{
				Value:   availability,
				Options: availabilityStatuses,
			},
			FilterVehicleType: table.EqualFilter[model.Driver]{Value: vehicleType},
			FilterDateRange:   table.DateRangeFilter[model.Driver]{Value: created},
		},
		Sorts: map[table.Field]table.SortStrategy[model.Driver]{
			FieldName:          table.Composite[model.Driver]{First: first, Second: last},
			FieldEmail:         table.Default[model.Driver]{Value: email},
			FieldPhone:         table.Default[model.Driver]{Value: phone},
			FieldVehicleType:   table.Default[model.Driver]{Value: vehicleType},
			FieldVehicleNumber: table.Default[model.Driver]{Value: vehicleNumber},
			FieldAvailability:  table.Default[model.Driver]{Value: availability},
			FieldVerified:      table.Default[model.Driver]{Value: table.Text(driverVerified)},
			FieldCreatedAt:     table.Temporal[model.Driver]{Value: created},
		},
		DefaultSort: table.SortSpec{Field: FieldCreatedAt, Direction: table.Descending},
		Language:    lang,
	}
}

// SummarizeDrivers counts drivers by verification, availability and
// vehicle type.
func SummarizeDrivers(drivers []model.Driver) model.DriverSummary {
	s := model.DriverSummary{
		Total:          len(drivers),
		ByAvailability: map[string]int{},
		ByVehicleType:  map[string]int{},
	}
	for i := range drivers {
		d := &drivers[i]
		if d.IsVerified {
			s.Verified++
		} else {
			s.Unverified++
		}
		if d.AvailabilityStatus != "" {
			s.ByAvailability[d.AvailabilityStatus]++
		}
		if d.VehicleType != "" {
			s.ByVehicleType[d.VehicleType]++
		}
	}
	return s
}
