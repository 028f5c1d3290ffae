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
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"

	"github.com/haulwise/console/model"
	"github.com/haulwise/console/table"
)

const (
	FieldCapacity  table.Field = "capacity"
	FieldBaseFare  table.Field = "baseFare"
	FieldPerKmRate table.Field = "perKmRate"
)

const (
	FilterCapacityMin = "capacityMin"
	FilterCapacityMax = "capacityMax"
	FilterBaseFareMin = "baseFareMin"
	FilterBaseFareMax = "baseFareMax"
)

const averageFarePlaces = 2

// NewPricingSchema describes the vehicle pricing list. Capacities are
// compared by their numeric value, "1000 kg" after "250 kg".
func NewPricingSchema(lang language.Tag) *table.Schema[model.VehiclePricing] {
	vehicleType := table.Text(func(p *model.VehiclePricing) string { return p.VehicleType })
	created := table.Text(func(p *model.VehiclePricing) string { return p.CreatedAt })
	capacity := table.NumberField[model.VehiclePricing]{
		Value: table.Text(func(p *model.VehiclePricing) string { return p.Capacity }),
		Parse: model.ParseCapacity,
	}
	baseFare := table.NumberField[model.VehiclePricing]{
		Value: table.Text(func(p *model.VehiclePricing) string { return p.BaseFare.String() }),
	}
	perKmRate := table.NumberField[model.VehiclePricing]{
		Value: table.Text(func(p *model.VehiclePricing) string { return p.PerKmRate.String() }),
	}

	return &table.Schema[model.VehiclePricing]{
		Name: string(model.ViewPricing),
		ID:   func(p *model.VehiclePricing) string { return p.ID },
		Search: []table.TextFunc[model.VehiclePricing]{
			vehicleType,
			capacity.Value,
			table.Text(func(p *model.VehiclePricing) string { return p.Description }),
		},
		Filters: map[string]table.Filter[model.VehiclePricing]{
			FilterVehicleType: table.EqualFilter[model.VehiclePricing]{Value: vehicleType},
			FilterCapacityMin: table.MinFilter[model.VehiclePricing]{NumberField: capacity},
			FilterCapacityMax: table.MaxFilter[model.VehiclePricing]{NumberField: capacity},
			FilterBaseFareMin: table.MinFilter[model.VehiclePricing]{NumberField: baseFare},
			FilterBaseFareMax: table.MaxFilter[model.VehiclePricing]{NumberField: baseFare},
			FilterDateRange:   table.DateRangeFilter[model.VehiclePricing]{Value: created},
		},
		Sorts: map[table.Field]table.SortStrategy[model.VehiclePricing]{
			FieldVehicleType: table.Default[model.VehiclePricing]{Value: vehicleType},
			FieldCapacity:    table.Numeric[model.VehiclePricing]{NumberField: capacity},
			FieldBaseFare:    table.Numeric[model.VehiclePricing]{NumberField: baseFare},
			FieldPerKmRate:   table.Numeric[model.VehiclePricing]{NumberField: perKmRate},
			FieldCreatedAt:   table.Temporal[model.VehiclePricing]{Value: created},
		},
		DefaultSort: table.SortSpec{Field: FieldCreatedAt, Direction: table.Descending},
		Language:    lang,
	}
}

// SummarizePricing counts tariffs per vehicle type and computes the
// average base fare and the largest capacity. Unparseable capacities are
// skipped.
func SummarizePricing(rows []model.VehiclePricing) model.PricingSummary {
	s := model.PricingSummary{
		Total:         len(rows),
		ByVehicleType: map[string]int{},
	}
	sum := decimal.Zero
	for i := range rows {
		p := &rows[i]
		if p.VehicleType != "" {
			s.ByVehicleType[p.VehicleType]++
		}
		sum = sum.Add(p.BaseFare)
		if c, err := model.ParseCapacity(p.Capacity); err == nil && c.GreaterThan(s.MaxCapacity) {
			s.MaxCapacity = c
		}
	}
	if len(rows) > 0 {
		s.AverageBaseFare = sum.Div(decimal.NewFromInt(int64(len(rows)))).Round(averageFarePlaces)
	}
	return s
}
