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
package console

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/mendersoftware/go-lib-micro/log"
	"github.com/pkg/errors"
	"golang.org/x/text/language"

	"github.com/haulwise/console/client/platform"
	"github.com/haulwise/console/model"
	"github.com/haulwise/console/table"
	"github.com/haulwise/console/views"
)

var (
	ErrViewNotFound     = errors.New("view not found")
	ErrBadgesNotEnabled = errors.New("badge polling is not enabled")
)

// EntitySource lists complete entity collections.
type EntitySource interface {
	ListUsers(ctx context.Context) ([]model.User, error)
	ListDrivers(ctx context.Context) ([]model.Driver, error)
	ListVehiclePricing(ctx context.Context) ([]model.VehiclePricing, error)
}

// BadgeSource provides the navigation badges.
type BadgeSource interface {
	Snapshot() (model.Badges, error)
	PollNow(ctx context.Context) (model.Badges, error)
}

type pinger interface {
	Ping(ctx context.Context) error
}

// ConsoleApp is the admin console service
//
//go:generate mockery --name ConsoleApp --output mocks
type ConsoleApp interface {
	HealthCheck(ctx context.Context) error
	MountView(ctx context.Context, req model.MountRequest) (*model.ViewSnapshot, error)
	GetView(ctx context.Context, id string) (*model.ViewSnapshot, error)
	UpdateView(ctx context.Context, id string, params model.ViewParams) (*model.ViewSnapshot, error)
	RefreshView(ctx context.Context, id string) (*model.ViewSnapshot, error)
	UnmountView(ctx context.Context, id string) error
	UpdateVehiclePricing(ctx context.Context, id string, update model.VehiclePricingUpdate) error
	DeleteUser(ctx context.Context, id string) error
	DeleteDriver(ctx context.Context, id string) error
	SetDriverVerified(ctx context.Context, id string, verified bool) error
	Badges(ctx context.Context) (model.Badges, error)
}

type Console struct {
	source   EntitySource
	platform platform.Client
	badges   BadgeSource

	pageSize int
	language language.Tag

	mu    sync.RWMutex
	views map[string]mountedView
}

var _ ConsoleApp = (*Console)(nil)

// NewConsole lists entities from source and sends mutations to the
// platform. The platform is also the source when source is nil.
func NewConsole(source EntitySource, client platform.Client) *Console {
	if source == nil {
		source = client
	}
	return &Console{
		source:   source,
		platform: client,
		pageSize: table.DefaultPageSize,
		language: language.English,
		views:    map[string]mountedView{},
	}
}

func (c *Console) WithBadges(badges BadgeSource) *Console {
	c.badges = badges
	return c
}

func (c *Console) WithPageSize(size int) *Console {
	if size > 0 {
		c.pageSize = size
	}
	return c
}

func (c *Console) WithLanguage(tag language.Tag) *Console {
	c.language = tag
	return c
}

func (c *Console) HealthCheck(ctx context.Context) error {
	if p, ok := c.source.(pinger); ok {
		if err := p.Ping(ctx); err != nil {
			return errors.Wrap(err, "error reaching MongoDB")
		}
	}
	if err := c.platform.CheckHealth(ctx); err != nil {
		return errors.Wrap(err, "error reaching the platform")
	}
	return nil
}

func (c *Console) newView(kind model.ViewKind) (mountedView, error) {
	switch kind {
	case model.ViewUsers:
		return newViewEntry(kind,
			views.NewUserSchema(c.language),
			c.source.ListUsers,
			views.SummarizeUsers,
			table.WithPageSize[model.User](c.pageSize),
		)
	case model.ViewDrivers:
		return newViewEntry(kind,
			views.NewDriverSchema(c.language),
			c.source.ListDrivers,
			views.SummarizeDrivers,
			table.WithPageSize[model.Driver](c.pageSize),
		)
	case model.ViewPricing:
		return newViewEntry(kind,
			views.NewPricingSchema(c.language),
			c.source.ListVehiclePricing,
			views.SummarizePricing,
			table.WithPageSize[model.VehiclePricing](c.pageSize),
		)
	}
	return nil, &ParamsError{Err: errors.Errorf("unknown view kind %q", kind)}
}

// MountView creates a view, applies the initial parameters and loads it.
// A view whose load failed stays mounted in the error state.
func (c *Console) MountView(ctx context.Context, req model.MountRequest) (*model.ViewSnapshot, error) {
	if err := req.Validate(); err != nil {
		return nil, &ParamsError{Err: err}
	}
	v, err := c.newView(req.Kind)
	if err != nil {
		return nil, err
	}
	if err := v.Apply(req.ViewParams); err != nil {
		return nil, err
	}
	if err := v.Refresh(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to load view")
	}

	id := uuid.NewString()
	c.mu.Lock()
	c.views[id] = v
	c.mu.Unlock()

	log.FromContext(ctx).Infof("mounted %s view %s", req.Kind, id)
	return v.Snapshot(id), nil
}

func (c *Console) view(id string) (mountedView, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.views[id]
	if !ok {
		return nil, ErrViewNotFound
	}
	return v, nil
}

func (c *Console) GetView(ctx context.Context, id string) (*model.ViewSnapshot, error) {
	v, err := c.view(id)
	if err != nil {
		return nil, err
	}
	return v.Snapshot(id), nil
}

func (c *Console) UpdateView(
	ctx context.Context,
	id string,
	params model.ViewParams,
) (*model.ViewSnapshot, error) {
	v, err := c.view(id)
	if err != nil {
		return nil, err
	}
	if err := v.Apply(params); err != nil {
		return nil, err
	}
	return v.Snapshot(id), nil
}

// RefreshView reloads a view; from the error state this is the retry.
func (c *Console) RefreshView(ctx context.Context, id string) (*model.ViewSnapshot, error) {
	v, err := c.view(id)
	if err != nil {
		return nil, err
	}
	if err := v.Refresh(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to refresh view")
	}
	return v.Snapshot(id), nil
}

func (c *Console) UnmountView(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.views[id]; !ok {
		return ErrViewNotFound
	}
	delete(c.views, id)
	log.FromContext(ctx).Infof("unmounted view %s", id)
	return nil
}

// refreshKind reloads every mounted view of kind after a mutation. Load
// failures are left to the views' error state.
func (c *Console) refreshKind(ctx context.Context, kind model.ViewKind) {
	c.mu.RLock()
	mounted := make([]mountedView, 0, len(c.views))
	for _, v := range c.views {
		if v.Kind() == kind {
			mounted = append(mounted, v)
		}
	}
	c.mu.RUnlock()

	l := log.FromContext(ctx)
	for _, v := range mounted {
		if err := v.Refresh(ctx); err != nil {
			l.Errorf("failed to refresh %s view: %v", kind, err)
		}
	}
}

func (c *Console) UpdateVehiclePricing(
	ctx context.Context,
	id string,
	update model.VehiclePricingUpdate,
) error {
	if err := update.Validate(); err != nil {
		return &ParamsError{Err: err}
	}
	if err := c.platform.UpdateVehiclePricing(ctx, id, update); err != nil {
		return errors.Wrap(err, "failed to update vehicle pricing")
	}
	c.refreshKind(ctx, model.ViewPricing)
	return nil
}

func (c *Console) DeleteUser(ctx context.Context, id string) error {
	if err := c.platform.DeleteUser(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete user")
	}
	c.refreshKind(ctx, model.ViewUsers)
	return nil
}

func (c *Console) DeleteDriver(ctx context.Context, id string) error {
	if err := c.platform.DeleteDriver(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete driver")
	}
	c.refreshKind(ctx, model.ViewDrivers)
	return nil
}

func (c *Console) SetDriverVerified(ctx context.Context, id string, verified bool) error {
	if err := c.platform.SetDriverVerified(ctx, id, verified); err != nil {
		return errors.Wrap(err, "failed to update driver verification")
	}
	c.refreshKind(ctx, model.ViewDrivers)
	return nil
}

// Badges returns the last polled badges, polling first if there are none
// yet.
func (c *Console) Badges(ctx context.Context) (model.Badges, error) {
	if c.badges == nil {
		return model.Badges{}, ErrBadgesNotEnabled
	}
	badges, err := c.badges.Snapshot()
	if badges.UpdatedAt != nil {
		return badges, nil
	}
	if err == nil {
		badges, err = c.badges.PollNow(ctx)
	}
	if err != nil {
		return model.Badges{}, errors.Wrap(err, "failed to fetch badges")
	}
	return badges, nil
}
