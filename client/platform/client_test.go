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
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mendersoftware/go-lib-micro/requestid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haulwise/console/model"
)

type recordedRequest struct {
	Method string
	Path   string
	Header http.Header
	Body   []byte
}

// newTestServer responds to every request with code and body, and pushes
// the received requests onto the returned channel.
func newTestServer(t *testing.T, code int, body interface{}) (*httptest.Server, <-chan recordedRequest) {
	reqs := make(chan recordedRequest, 1)
	h := func(w http.ResponseWriter, r *http.Request) {
		b, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		reqs <- recordedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Header: r.Header.Clone(),
			Body:   b,
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		if body != nil {
			_ = json.NewEncoder(w).Encode(body)
		}
	}
	srv := httptest.NewServer(http.HandlerFunc(h))
	t.Cleanup(srv.Close)
	return srv, reqs
}

func TestListDrivers(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		code int
		body interface{}

		drivers []model.Driver
		err     string
	}{
		"ok": {
			code: http.StatusOK,
			body: map[string]interface{}{
				"data": []map[string]interface{}{
					{"id": "d1", "firstName": "Ann", "vehicleType": "van", "isVerified": true, "createdAt": "2024-05-01T10:00:00Z"},
					{"id": "d2", "firstName": "Bob", "vehicleType": "truck"},
				},
			},
			drivers: []model.Driver{
				{ID: "d1", FirstName: "Ann", VehicleType: "van", IsVerified: true, CreatedAt: "2024-05-01T10:00:00Z"},
				{ID: "d2", FirstName: "Bob", VehicleType: "truck"},
			},
		},
		"ok, empty": {
			code:    http.StatusOK,
			body:    map[string]interface{}{},
			drivers: []model.Driver{},
		},
		"error, platform message": {
			code: http.StatusInternalServerError,
			body: map[string]string{"message": "database unavailable"},
			err:  "platform: GET /api/admin/drivers: 500 Internal Server Error: database unavailable",
		},
		"error, bad status": {
			code: http.StatusBadGateway,
			err:  "platform: GET /api/admin/drivers: unexpected HTTP status: 502 Bad Gateway",
		},
		"error, bad response": {
			code: http.StatusOK,
			body: "dummy",
			err:  "platform: failed to decode response: json: cannot unmarshal string",
		},
	}
	for name, tc := range testCases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			srv, reqs := newTestServer(t, tc.code, tc.body)
			client := NewClient(srv.URL+"/", ClientOptions{Token: "secret"})

			ctx := requestid.WithContext(context.Background(), "req-1")
			drivers, err := client.ListDrivers(ctx)

			req := <-reqs
			assert.Equal(t, http.MethodGet, req.Method)
			assert.Equal(t, DriversURI, req.Path)
			assert.Equal(t, "Bearer secret", req.Header.Get("Authorization"))
			assert.Equal(t, "req-1", req.Header.Get(hdrRequestID))

			if tc.err != "" {
				assert.ErrorContains(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.drivers, drivers)
		})
	}
}

func TestListUsersAndPricing(t *testing.T) {
	t.Parallel()

	srv, reqs := newTestServer(t, http.StatusOK, map[string]interface{}{
		"data": []map[string]interface{}{{"id": "u1", "role": "admin", "isActive": true}},
	})
	client := NewClient(srv.URL)
	users, err := client.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []model.User{{ID: "u1", Role: "admin", IsActive: true}}, users)
	assert.Equal(t, UsersURI, (<-reqs).Path)

	srv, reqs = newTestServer(t, http.StatusOK, map[string]interface{}{
		"data": []map[string]interface{}{{"id": "p1", "capacity": "250 kg", "baseFare": "45.5", "perKmRate": 1.2}},
	})
	client = NewClient(srv.URL)
	pricing, err := client.ListVehiclePricing(context.Background())
	require.NoError(t, err)
	assert.Equal(t, VehiclePricingURI, (<-reqs).Path)
	require.Len(t, pricing, 1)
	assert.Equal(t, "250 kg", pricing[0].Capacity)
	assert.True(t, decimal.RequireFromString("45.5").Equal(pricing[0].BaseFare))
	assert.True(t, decimal.RequireFromString("1.2").Equal(pricing[0].PerKmRate))
}

func TestListVehiclePricingMalformedAmounts(t *testing.T) {
	t.Parallel()

	srv, _ := newTestServer(t, http.StatusOK, map[string]interface{}{
		"data": []map[string]interface{}{
			{"id": "p1", "baseFare": "", "perKmRate": "2.5"},
			{"id": "p2", "baseFare": 30, "perKmRate": "abc"},
			{"id": "p3", "baseFare": "12.75", "perKmRate": nil},
		},
	})
	pricing, err := NewClient(srv.URL).ListVehiclePricing(context.Background())
	require.NoError(t, err)
	require.Len(t, pricing, 3)

	assert.Equal(t, "p1", pricing[0].ID)
	assert.True(t, pricing[0].BaseFare.IsZero())
	assert.True(t, decimal.RequireFromString("2.5").Equal(pricing[0].PerKmRate))

	assert.True(t, decimal.NewFromInt(30).Equal(pricing[1].BaseFare))
	assert.True(t, pricing[1].PerKmRate.IsZero())

	assert.True(t, decimal.RequireFromString("12.75").Equal(pricing[2].BaseFare))
	assert.True(t, pricing[2].PerKmRate.IsZero())
}

func TestPricingRowErrors(t *testing.T) {
	t.Parallel()

	row := pricingRow{
		ID:        "p1",
		BaseFare:  json.RawMessage(`"n/a"`),
		PerKmRate: json.RawMessage(`1.5`),
	}
	p, err := row.pricing()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "baseFare: ")
	assert.NotContains(t, err.Error(), "perKmRate")
	assert.True(t, decimal.RequireFromString("1.5").Equal(p.PerKmRate))
}

func TestUpdateVehiclePricing(t *testing.T) {
	t.Parallel()

	srv, reqs := newTestServer(t, http.StatusOK, nil)
	client := NewClient(srv.URL)

	capacity := "250"
	fare := decimal.RequireFromString("49.90")
	err := client.UpdateVehiclePricing(context.Background(), "p1", model.VehiclePricingUpdate{
		Capacity: &capacity,
		BaseFare: &fare,
	})
	require.NoError(t, err)

	req := <-reqs
	assert.Equal(t, http.MethodPut, req.Method)
	assert.Equal(t, "/api/admin/vehicle-pricing/p1", req.Path)
	assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
	assert.JSONEq(t, `{"capacity": "250 kg", "baseFare": "49.9"}`, string(req.Body))
	assert.Equal(t, "250", capacity, "caller's update must not be modified")
}

func TestMutations(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		call   func(c Client) error
		code   int
		method string
		path   string
		body   string
		err    error
	}{
		"delete user": {
			call:   func(c Client) error { return c.DeleteUser(context.Background(), "u1") },
			code:   http.StatusNoContent,
			method: http.MethodDelete,
			path:   "/api/admin/users/u1",
		},
		"delete driver": {
			call:   func(c Client) error { return c.DeleteDriver(context.Background(), "d1") },
			code:   http.StatusNoContent,
			method: http.MethodDelete,
			path:   "/api/admin/drivers/d1",
		},
		"delete missing driver": {
			call:   func(c Client) error { return c.DeleteDriver(context.Background(), "d9") },
			code:   http.StatusNotFound,
			method: http.MethodDelete,
			path:   "/api/admin/drivers/d9",
			err:    ErrNotFound,
		},
		"verify driver": {
			call:   func(c Client) error { return c.SetDriverVerified(context.Background(), "d1", true) },
			code:   http.StatusOK,
			method: http.MethodPut,
			path:   "/api/admin/drivers/d1/verify",
			body:   `{"isVerified": true}`,
		},
		"health": {
			call:   func(c Client) error { return c.CheckHealth(context.Background()) },
			code:   http.StatusNoContent,
			method: http.MethodGet,
			path:   HealthURI,
		},
	}
	for name, tc := range testCases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			srv, reqs := newTestServer(t, tc.code, nil)

			err := tc.call(NewClient(srv.URL))

			req := <-reqs
			assert.Equal(t, tc.method, req.Method)
			assert.Equal(t, tc.path, req.Path)
			if tc.body != "" {
				assert.JSONEq(t, tc.body, string(req.Body))
			} else {
				assert.Empty(t, req.Body)
			}
			if tc.err != nil {
				assert.Equal(t, tc.err, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCountPending(t *testing.T) {
	t.Parallel()

	srv, reqs := newTestServer(t, http.StatusOK, map[string]int{"count": 4})
	client := NewClient(srv.URL)
	n, err := client.CountPendingDrivers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, PendingDriversURI, (<-reqs).Path)

	n, err = client.CountPendingShipments(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, PendingShipmentsURI, (<-reqs).Path)
}

func TestClientDeadline(t *testing.T) {
	t.Parallel()

	srv, _ := newTestServer(t, http.StatusOK, nil)
	client := NewClient(srv.URL)

	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()
	err := client.CheckHealth(ctx)
	assert.ErrorContains(t, err, context.DeadlineExceeded.Error())
}
