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
package badges

import (
	"context"
	"sync"
	"time"

	"github.com/mendersoftware/go-lib-micro/log"
	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"github.com/sethvargo/go-retry"
	"golang.org/x/sync/errgroup"

	"github.com/haulwise/console/model"
)

const (
	DefaultSchedule = "@every 5m"
	DefaultRetries  = 2
	DefaultBackoff  = 500 * time.Millisecond
	DefaultTimeout  = 30 * time.Second
)

// Counter provides the counters shown as navigation badges.
type Counter interface {
	CountPendingDrivers(ctx context.Context) (int, error)
	CountPendingShipments(ctx context.Context) (int, error)
}

type Config struct {
	// Schedule is a cron spec, descriptors such as "@every 5m" included.
	Schedule string
	// Retries is the number of extra attempts per counter and poll.
	Retries uint64
	Backoff time.Duration
	// Timeout bounds one poll.
	Timeout time.Duration
}

func (c *Config) setDefaults() {
	if c.Schedule == "" {
		c.Schedule = DefaultSchedule
	}
	if c.Backoff <= 0 {
		c.Backoff = DefaultBackoff
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
}

// Poller refreshes the badge counters on a fixed schedule and keeps the
// last successful result.
type Poller struct {
	counter Counter
	config  Config
	cron    *cron.Cron
	logger  *log.Logger
	now     func() time.Time
	polls   sync.WaitGroup

	mu     sync.RWMutex
	badges model.Badges
	err    error
}

func NewPoller(counter Counter, config Config) (*Poller, error) {
	config.setDefaults()
	if _, err := cron.ParseStandard(config.Schedule); err != nil {
		return nil, errors.Wrapf(err, "invalid badge poll schedule %q", config.Schedule)
	}
	l := log.New(log.Ctx{"module": "badges"})
	return &Poller{
		counter: counter,
		config:  config,
		logger:  l,
		now:     time.Now,
		cron: cron.New(
			cron.WithLogger(cron.PrintfLogger(l)),
			cron.WithChain(cron.SkipIfStillRunning(cron.PrintfLogger(l))),
		),
	}, nil
}

// Start polls once right away and then on schedule until Stop is called
// or ctx is done.
func (p *Poller) Start(ctx context.Context) error {
	_, err := p.cron.AddFunc(p.config.Schedule, func() {
		_, _ = p.PollNow(ctx)
	})
	if err != nil {
		return errors.Wrap(err, "failed to schedule badge poll")
	}
	p.polls.Add(1)
	go func() {
		defer p.polls.Done()
		_, _ = p.PollNow(ctx)
	}()
	p.cron.Start()
	go func() {
		<-ctx.Done()
		p.cron.Stop()
	}()
	return nil
}

// Stop halts the schedule and waits for running polls to finish, the
// first one included.
func (p *Poller) Stop() {
	<-p.cron.Stop().Done()
	p.polls.Wait()
}

// PollNow fetches all counters concurrently. On failure the previous
// badges are kept.
func (p *Poller) PollNow(ctx context.Context) (model.Badges, error) {
	ctx, cancel := context.WithTimeout(ctx, p.config.Timeout)
	defer cancel()

	var drivers, shipments int
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := p.count(gctx, "pending drivers", p.counter.CountPendingDrivers)
		drivers = n
		return err
	})
	g.Go(func() error {
		n, err := p.count(gctx, "pending shipments", p.counter.CountPendingShipments)
		shipments = n
		return err
	})
	err := g.Wait()

	p.mu.Lock()
	defer p.mu.Unlock()
	p.err = err
	if err != nil {
		p.logger.Warnf("badge poll failed: %v", err)
		return p.badges, err
	}
	updated := p.now()
	p.badges = model.Badges{
		PendingDrivers:   drivers,
		PendingShipments: shipments,
		UpdatedAt:        &updated,
	}
	return p.badges, nil
}

func (p *Poller) count(
	ctx context.Context,
	name string,
	fetch func(context.Context) (int, error),
) (int, error) {
	var n int
	backoff := retry.WithMaxRetries(p.config.Retries, retry.NewConstant(p.config.Backoff))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		var err error
		n, err = fetch(ctx)
		if err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		return 0, errors.Wrapf(err, "failed to count %s", name)
	}
	return n, nil
}

// Snapshot returns the last successfully polled badges and the error of
// the most recent poll, if any.
func (p *Poller) Snapshot() (model.Badges, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.badges, p.err
}
