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
	"crypto/tls"
	"strconv"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/mendersoftware/go-lib-micro/log"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	mopts "go.mongodb.org/mongo-driver/mongo/options"

	"github.com/haulwise/console/model"
)

const (
	DbName        = "logistics"
	DbUsersColl   = "users"
	DbDriversColl = "drivers"
	DbPricingColl = "vehicle_pricing"

	findBatchSize = 100
	dialTimeout   = 10 * time.Second
)

type DataStoreMongoConfig struct {
	// connection string
	ConnectionString string

	// SSL support
	SSL           bool
	SSLSkipVerify bool

	// Overwrites credentials provided in connection string if provided
	Username string
	Password string

	// DbName defaults to DbName
	DbName string
}

// DataStoreMongo reads the entity collections of a reporting replica of
// the platform database. It never writes.
type DataStoreMongo struct {
	client *mongo.Client
	dbName string
}

func NewDataStoreMongoWithClient(client *mongo.Client, dbName string) *DataStoreMongo {
	if dbName == "" {
		dbName = DbName
	}
	return &DataStoreMongo{client: client, dbName: dbName}
}

func NewDataStoreMongo(config DataStoreMongoConfig) (*DataStoreMongo, error) {
	opts := mopts.Client().
		ApplyURI(config.ConnectionString).
		SetConnectTimeout(dialTimeout)
	if config.Username != "" {
		opts.SetAuth(mopts.Credential{
			Username: config.Username,
			Password: config.Password,
		})
	}
	if config.SSL {
		opts.SetTLSConfig(&tls.Config{
			InsecureSkipVerify: config.SSLSkipVerify,
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), dialTimeout)
	defer cancel()
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to mongo")
	}
	if err = client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, errors.Wrap(err, "failed to ping mongo")
	}
	return NewDataStoreMongoWithClient(client, config.DbName), nil
}

func (db *DataStoreMongo) Ping(ctx context.Context) error {
	return db.client.Ping(ctx, nil)
}

func (db *DataStoreMongo) Close(ctx context.Context) error {
	return db.client.Disconnect(ctx)
}

func (db *DataStoreMongo) collection(name string) *mongo.Collection {
	return db.client.Database(db.dbName).Collection(name)
}

// findAll decodes every document of coll into D and converts it.
func findAll[D, T any](
	ctx context.Context,
	coll *mongo.Collection,
	convert func(doc *D) T,
) ([]T, error) {
	cur, err := coll.Find(ctx, bson.D{}, mopts.Find().SetBatchSize(findBatchSize))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch %s", coll.Name())
	}
	defer cur.Close(ctx)

	res := []T{}
	for cur.Next(ctx) {
		var doc D
		if err := cur.Decode(&doc); err != nil {
			return nil, errors.Wrapf(err, "failed to decode %s document", coll.Name())
		}
		res = append(res, convert(&doc))
	}
	if err := cur.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to fetch %s", coll.Name())
	}
	return res, nil
}

func (db *DataStoreMongo) ListUsers(ctx context.Context) ([]model.User, error) {
	return findAll(ctx, db.collection(DbUsersColl), (*userDoc).user)
}

func (db *DataStoreMongo) ListDrivers(ctx context.Context) ([]model.Driver, error) {
	return findAll(ctx, db.collection(DbDriversColl), (*driverDoc).driver)
}

func (db *DataStoreMongo) ListVehiclePricing(ctx context.Context) ([]model.VehiclePricing, error) {
	l := log.FromContext(ctx)
	return findAll(ctx, db.collection(DbPricingColl), func(doc *pricingDoc) model.VehiclePricing {
		p, err := doc.pricing()
		if err != nil {
			l.Warnf("vehicle pricing %s: %v", p.ID, err)
		}
		return p
	})
}

// Documents keep the identifier, timestamps and amounts as raw values: the
// replica holds them with mixed BSON types.

type userDoc struct {
	ID        bson.RawValue `bson:"_id"`
	FirstName string        `bson:"firstName"`
	LastName  string        `bson:"lastName"`
	Email     string        `bson:"email"`
	Phone     string        `bson:"phone"`
	Role      string        `bson:"role"`
	IsActive  bool          `bson:"isActive"`
	CreatedAt bson.RawValue `bson:"createdAt"`
}

func (d *userDoc) user() model.User {
	return model.User{
		ID:        rawString(d.ID),
		FirstName: d.FirstName,
		LastName:  d.LastName,
		Email:     d.Email,
		Phone:     d.Phone,
		Role:      d.Role,
		IsActive:  d.IsActive,
		CreatedAt: rawString(d.CreatedAt),
	}
}

type driverDoc struct {
	ID                 bson.RawValue `bson:"_id"`
	FirstName          string        `bson:"firstName"`
	LastName           string        `bson:"lastName"`
	Email              string        `bson:"email"`
	Phone              string        `bson:"phone"`
	VehicleType        string        `bson:"vehicleType"`
	VehicleNumber      string        `bson:"vehicleNumber"`
	AvailabilityStatus string        `bson:"availabilityStatus"`
	IsVerified         bool          `bson:"isVerified"`
	IsActive           bool          `bson:"isActive"`
	CreatedAt          bson.RawValue `bson:"createdAt"`
}

func (d *driverDoc) driver() model.Driver {
	return model.Driver{
		ID:                 rawString(d.ID),
		FirstName:          d.FirstName,
		LastName:           d.LastName,
		Email:              d.Email,
		Phone:              d.Phone,
		VehicleType:        d.VehicleType,
		VehicleNumber:      d.VehicleNumber,
		AvailabilityStatus: d.AvailabilityStatus,
		IsVerified:         d.IsVerified,
		IsActive:           d.IsActive,
		CreatedAt:          rawString(d.CreatedAt),
	}
}

type pricingDoc struct {
	ID          bson.RawValue `bson:"_id"`
	VehicleType string        `bson:"vehicleType"`
	Capacity    bson.RawValue `bson:"capacity"`
	BaseFare    bson.RawValue `bson:"baseFare"`
	PerKmRate   bson.RawValue `bson:"perKmRate"`
	Description string        `bson:"description"`
	CreatedAt   bson.RawValue `bson:"createdAt"`
	UpdatedAt   bson.RawValue `bson:"updatedAt"`
}

// pricing converts the document; amounts that are not numbers are
// reported and read as zero.
func (d *pricingDoc) pricing() (model.VehiclePricing, error) {
	p := model.VehiclePricing{
		ID:          rawString(d.ID),
		VehicleType: d.VehicleType,
		Capacity:    model.FormatCapacity(rawString(d.Capacity)),
		Description: d.Description,
		CreatedAt:   rawString(d.CreatedAt),
		UpdatedAt:   rawString(d.UpdatedAt),
	}
	var fareErr, rateErr error
	p.BaseFare, fareErr = rawDecimal(d.BaseFare)
	p.PerKmRate, rateErr = rawDecimal(d.PerKmRate)
	return p, validation.Errors{
		"baseFare":  fareErr,
		"perKmRate": rateErr,
	}.Filter()
}

// rawString renders identifiers, timestamps and numbers as text. Dates
// become RFC 3339 in UTC.
func rawString(v bson.RawValue) string {
	switch v.Type {
	case bson.TypeString:
		return v.StringValue()
	case bson.TypeObjectID:
		return v.ObjectID().Hex()
	case bson.TypeDateTime:
		return v.Time().UTC().Format(time.RFC3339Nano)
	case bson.TypeInt32:
		return strconv.FormatInt(int64(v.Int32()), 10)
	case bson.TypeInt64:
		return strconv.FormatInt(v.Int64(), 10)
	case bson.TypeDouble:
		return strconv.FormatFloat(v.Double(), 'f', -1, 64)
	case bson.TypeDecimal128:
		return v.Decimal128().String()
	}
	return ""
}

// rawDecimal reads an amount; the result is zero when err is set.
func rawDecimal(v bson.RawValue) (decimal.Decimal, error) {
	s := rawString(v)
	if s == "" {
		if v.Type != 0 && v.Type != bson.TypeNull {
			return decimal.Zero, errors.Errorf("not a number: %s", v.Type)
		}
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, err
	}
	return d, nil
}
