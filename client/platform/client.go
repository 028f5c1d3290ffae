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
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mendersoftware/go-lib-micro/log"
	"github.com/mendersoftware/go-lib-micro/requestid"
	"github.com/pkg/errors"

	"github.com/haulwise/console/model"
	"github.com/haulwise/console/utils"
)

const (
	UsersURI                = "/api/admin/users"
	UserURI                 = "/api/admin/users/:id"
	DriversURI              = "/api/admin/drivers"
	DriverURI               = "/api/admin/drivers/:id"
	DriverVerificationURI   = "/api/admin/drivers/:id/verify"
	PendingDriversURI       = "/api/admin/drivers/pending/count"
	PendingShipmentsURI     = "/api/admin/shipments/pending/count"
	VehiclePricingURI       = "/api/admin/vehicle-pricing"
	VehiclePricingEntityURI = "/api/admin/vehicle-pricing/:id"
	HealthURI               = "/api/health"
)

const (
	defaultTimeout = time.Duration(5) * time.Second

	hdrRequestID = "X-Request-ID"
)

var ErrNotFound = errors.New("platform: not found")

// Client talks to the logistics platform admin API. List calls always
// return the complete collection.
//
//go:generate mockery --name Client --output mocks
type Client interface {
	CheckHealth(ctx context.Context) error
	ListUsers(ctx context.Context) ([]model.User, error)
	ListDrivers(ctx context.Context) ([]model.Driver, error)
	ListVehiclePricing(ctx context.Context) ([]model.VehiclePricing, error)
	UpdateVehiclePricing(ctx context.Context, id string, update model.VehiclePricingUpdate) error
	DeleteUser(ctx context.Context, id string) error
	DeleteDriver(ctx context.Context, id string) error
	SetDriverVerified(ctx context.Context, id string, verified bool) error
	CountPendingDrivers(ctx context.Context) (int, error)
	CountPendingShipments(ctx context.Context) (int, error)
}

type ClientOptions struct {
	Client *http.Client
	// Token is sent as a bearer token with every request.
	Token string
}

// NewClient returns a new platform client
func NewClient(url string, opts ...ClientOptions) Client {
	var clientOpts = ClientOptions{
		Client: &http.Client{},
	}
	for _, opt := range opts {
		if opt.Client != nil {
			clientOpts.Client = opt.Client
		}
		if opt.Token != "" {
			clientOpts.Token = opt.Token
		}
	}

	return &client{
		url:    strings.TrimSuffix(url, "/"),
		token:  clientOpts.Token,
		client: clientOpts.Client,
	}
}

type client struct {
	url    string
	token  string
	client *http.Client
}

func entityPath(template, id string) string {
	return strings.Replace(template, ":id", id, 1)
}

// do sends a request and decodes a successful JSON response into out when
// out is not nil.
func (c *client) do(ctx context.Context, method, path string, body, out interface{}) error {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, defaultTimeout)
		defer cancel()
	}

	var payload io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "platform: failed to serialize request")
		}
		payload = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method,
		utils.JoinURL(c.url, path), payload)
	if err != nil {
		return errors.Wrap(err, "platform: error preparing HTTP request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if reqID := requestid.FromContext(ctx); reqID != "" {
		req.Header.Set(hdrRequestID, reqID)
	}

	rsp, err := c.client.Do(req)
	if err != nil {
		return errors.Wrapf(err, "platform: %s %s", method, path)
	}
	defer rsp.Body.Close()

	switch {
	case rsp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case rsp.StatusCode >= 300:
		var apiErr apiError
		if err := json.NewDecoder(rsp.Body).Decode(&apiErr); err == nil && apiErr.Message != "" {
			return errors.Errorf("platform: %s %s: %s: %s",
				method, path, rsp.Status, apiErr.Message)
		}
		return errors.Errorf("platform: %s %s: unexpected HTTP status: %s",
			method, path, rsp.Status)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(rsp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "platform: failed to decode response")
	}
	return nil
}

func list[T any](ctx context.Context, c *client, path string) ([]T, error) {
	var rsp listResponse[T]
	if err := c.do(ctx, http.MethodGet, path, nil, &rsp); err != nil {
		return nil, err
	}
	if rsp.Data == nil {
		rsp.Data = []T{}
	}
	return rsp.Data, nil
}

func (c *client) count(ctx context.Context, path string) (int, error) {
	var rsp countResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &rsp); err != nil {
		return 0, err
	}
	return rsp.Count, nil
}

func (c *client) CheckHealth(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, HealthURI, nil, nil)
}

func (c *client) ListUsers(ctx context.Context) ([]model.User, error) {
	return list[model.User](ctx, c, UsersURI)
}

func (c *client) ListDrivers(ctx context.Context) ([]model.Driver, error) {
	return list[model.Driver](ctx, c, DriversURI)
}

func (c *client) ListVehiclePricing(ctx context.Context) ([]model.VehiclePricing, error) {
	rows, err := list[pricingRow](ctx, c, VehiclePricingURI)
	if err != nil {
		return nil, err
	}
	l := log.FromContext(ctx)
	pricing := make([]model.VehiclePricing, len(rows))
	for i := range rows {
		p, err := rows[i].pricing()
		if err != nil {
			l.Warnf("vehicle pricing %s: %v", p.ID, err)
		}
		pricing[i] = p
	}
	return pricing, nil
}

// UpdateVehiclePricing sends the edit with the capacity in its stored
// "<number> kg" form.
func (c *client) UpdateVehiclePricing(
	ctx context.Context,
	id string,
	update model.VehiclePricingUpdate,
) error {
	return c.do(ctx, http.MethodPut,
		entityPath(VehiclePricingEntityURI, id), update.Normalized(), nil)
}

func (c *client) DeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, entityPath(UserURI, id), nil, nil)
}

func (c *client) DeleteDriver(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, entityPath(DriverURI, id), nil, nil)
}

func (c *client) SetDriverVerified(ctx context.Context, id string, verified bool) error {
	return c.do(ctx, http.MethodPut, entityPath(DriverVerificationURI, id),
		verificationRequest{IsVerified: verified}, nil)
}

func (c *client) CountPendingDrivers(ctx context.Context) (int, error) {
	return c.count(ctx, PendingDriversURI)
}

func (c *client) CountPendingShipments(ctx context.Context) (int, error) {
	return c.count(ctx, PendingShipmentsURI)
}
