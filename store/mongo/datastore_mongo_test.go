// Copyright 2018 Northern.tech AS
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

package mongo

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/haulwise/console/model"
)

func TestPing(t *testing.T) {
	db := newTestDataStore(t)
	ctx, cancel := context.WithTimeout(context.TODO(), 10*time.Second)
	defer cancel()
	assert.NoError(t, db.Ping(ctx))
}

func TestMongoListUsers(t *testing.T) {
	db := newTestDataStore(t)
	ctx := context.Background()

	oid := primitive.NewObjectID()
	created := time.Date(2024, time.May, 1, 10, 0, 0, 0, time.UTC)
	_, err := db.collection(DbUsersColl).InsertMany(ctx, []interface{}{
		bson.M{
			"_id":       oid,
			"firstName": "John",
			"lastName":  "Smith",
			"email":     "john@example.com",
			"role":      model.RoleAdmin,
			"isActive":  true,
			"createdAt": created,
		},
		bson.M{
			"_id":       "u-2",
			"firstName": "Jane",
			"createdAt": "2024-05-02T08:00:00Z",
		},
	})
	require.NoError(t, err)

	users, err := db.ListUsers(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []model.User{
		{
			ID:        oid.Hex(),
			FirstName: "John",
			LastName:  "Smith",
			Email:     "john@example.com",
			Role:      model.RoleAdmin,
			IsActive:  true,
			CreatedAt: "2024-05-01T10:00:00Z",
		},
		{
			ID:        "u-2",
			FirstName: "Jane",
			CreatedAt: "2024-05-02T08:00:00Z",
		},
	}, users)
}

func TestMongoListDrivers(t *testing.T) {
	db := newTestDataStore(t)
	ctx := context.Background()

	drivers, err := db.ListDrivers(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.Driver{}, drivers)

	_, err = db.collection(DbDriversColl).InsertOne(ctx, bson.M{
		"_id":                "d-1",
		"firstName":          "Ann",
		"vehicleType":        "van",
		"vehicleNumber":      "KA-01-1234",
		"availabilityStatus": model.AvailabilityBusy,
		"isVerified":         true,
	})
	require.NoError(t, err)

	drivers, err = db.ListDrivers(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.Driver{{
		ID:                 "d-1",
		FirstName:          "Ann",
		VehicleType:        "van",
		VehicleNumber:      "KA-01-1234",
		AvailabilityStatus: model.AvailabilityBusy,
		IsVerified:         true,
	}}, drivers)
}

func TestMongoListVehiclePricing(t *testing.T) {
	db := newTestDataStore(t)
	ctx := context.Background()

	fare, err := primitive.ParseDecimal128("45.50")
	require.NoError(t, err)
	_, err = db.collection(DbPricingColl).InsertMany(ctx, []interface{}{
		bson.M{"_id": "p-1", "vehicleType": "van", "capacity": "250 kg", "baseFare": fare, "perKmRate": 1.5},
		bson.M{"_id": "p-2", "vehicleType": "truck", "capacity": 1000, "baseFare": int32(120), "perKmRate": "n/a"},
	})
	require.NoError(t, err)

	rows, err := db.ListVehiclePricing(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	byID := map[string]model.VehiclePricing{}
	for _, p := range rows {
		byID[p.ID] = p
	}
	assert.Equal(t, "250 kg", byID["p-1"].Capacity)
	assert.True(t, decimal.RequireFromString("45.5").Equal(byID["p-1"].BaseFare))
	assert.True(t, decimal.RequireFromString("1.5").Equal(byID["p-1"].PerKmRate))

	assert.Equal(t, "1000 kg", byID["p-2"].Capacity)
	assert.True(t, decimal.NewFromInt(120).Equal(byID["p-2"].BaseFare))
	assert.True(t, byID["p-2"].PerKmRate.IsZero())
}

func TestRawString(t *testing.T) {
	oid := primitive.NewObjectID()
	testCases := map[string]struct {
		value interface{}
		out   string
	}{
		"string":    {value: "abc", out: "abc"},
		"object id": {value: oid, out: oid.Hex()},
		"date":      {value: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), out: "2024-01-02T03:04:05Z"},
		"int32":     {value: int32(7), out: "7"},
		"int64":     {value: int64(1) << 40, out: "1099511627776"},
		"double":    {value: 12.5, out: "12.5"},
		"bool":      {value: true, out: ""},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			raw, err := bson.Marshal(bson.M{"v": tc.value})
			require.NoError(t, err)
			assert.Equal(t, tc.out, rawString(bson.Raw(raw).Lookup("v")))
		})
	}
	assert.Equal(t, "", rawString(bson.RawValue{}))
}

func TestPricingDocAmounts(t *testing.T) {
	testCases := map[string]struct {
		doc bson.M

		baseFare  string
		perKmRate string
		err       string
	}{
		"both amounts": {
			doc:       bson.M{"_id": "p-1", "baseFare": "45.50", "perKmRate": 1.5},
			baseFare:  "45.5",
			perKmRate: "1.5",
		},
		"missing amounts read as zero": {
			doc:       bson.M{"_id": "p-2"},
			baseFare:  "0",
			perKmRate: "0",
		},
		"bad base fare keeps the rate": {
			doc:       bson.M{"_id": "p-3", "baseFare": "n/a", "perKmRate": int32(2)},
			baseFare:  "0",
			perKmRate: "2",
			err:       "baseFare: ",
		},
		"both amounts bad": {
			doc:       bson.M{"_id": "p-4", "baseFare": true, "perKmRate": "cheap"},
			baseFare:  "0",
			perKmRate: "0",
			err:       "perKmRate: ",
		},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			raw, err := bson.Marshal(tc.doc)
			require.NoError(t, err)
			var doc pricingDoc
			require.NoError(t, bson.Unmarshal(raw, &doc))

			p, err := doc.pricing()
			if tc.err != "" {
				assert.ErrorContains(t, err, tc.err)
			} else {
				assert.NoError(t, err)
			}
			assert.True(t, decimal.RequireFromString(tc.baseFare).Equal(p.BaseFare), p.BaseFare.String())
			assert.True(t, decimal.RequireFromString(tc.perKmRate).Equal(p.PerKmRate), p.PerKmRate.String())
		})
	}
}
