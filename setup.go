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
package main

import (
	"context"
	"strings"
	"time"

	"github.com/mendersoftware/go-lib-micro/config"
	"github.com/mendersoftware/go-lib-micro/log"
	"github.com/pkg/errors"
	"golang.org/x/text/language"

	"github.com/haulwise/console/badges"
	"github.com/haulwise/console/client/platform"
	"github.com/haulwise/console/console"
	"github.com/haulwise/console/model"
	"github.com/haulwise/console/store/mongo"
)

type consoleApp struct {
	console *console.Console
	poller  *badges.Poller
	db      *mongo.DataStoreMongo
}

func (a *consoleApp) close() {
	if a.db == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := a.db.Close(ctx); err != nil {
		log.New(log.Ctx{}).Warnf("failed to disconnect from mongo: %v", err)
	}
}

func makeDataStoreConfig(c config.Reader) mongo.DataStoreMongoConfig {
	return mongo.DataStoreMongoConfig{
		ConnectionString: c.GetString(SettingDb),

		SSL:           c.GetBool(SettingDbSSL),
		SSLSkipVerify: c.GetBool(SettingDbSSLSkipVerify),

		Username: c.GetString(SettingDbUsername),
		Password: c.GetString(SettingDbPassword),

		DbName: c.GetString(SettingDbName),
	}
}

// setupConsole wires the console from configuration; badge polling is set
// up only when withBadges is true and a schedule is configured.
func setupConsole(ctx context.Context, c config.Reader, withBadges bool) (*consoleApp, error) {
	l := log.FromContext(ctx)

	tag, err := language.Parse(c.GetString(SettingCollationLanguage))
	if err != nil {
		return nil, errors.Wrapf(err, "invalid %s", SettingCollationLanguage)
	}

	client := platform.NewClient(c.GetString(SettingPlatformAddr),
		platform.ClientOptions{Token: c.GetString(SettingPlatformToken)})

	app := &consoleApp{}
	var source console.EntitySource
	switch c.GetString(SettingSource) {
	case SourceAPI:
	case SourceMongo:
		db, err := mongo.NewDataStoreMongo(makeDataStoreConfig(c))
		if err != nil {
			return nil, errors.Wrap(err, "database connection failed")
		}
		app.db = db
		source = db
	default:
		return nil, errors.Errorf("unknown entity source %q", c.GetString(SettingSource))
	}
	l.Infof("listing entities from %s", c.GetString(SettingSource))

	app.console = console.NewConsole(source, client).
		WithPageSize(c.GetInt(SettingPageSize)).
		WithLanguage(tag)

	schedule := c.GetString(SettingBadgePollSchedule)
	if withBadges && schedule != "" {
		poller, err := badges.NewPoller(client, badges.Config{
			Schedule: schedule,
			Retries:  badges.DefaultRetries,
		})
		if err != nil {
			app.close()
			return nil, err
		}
		app.poller = poller
		app.console.WithBadges(poller)
	}

	return app, nil
}

// makeMountRequest builds the view request of the list command. Filters
// are given as "key=value".
func makeMountRequest(
	kind, query string,
	filters []string,
	sort string,
	page, perPage *int,
) (model.MountRequest, error) {
	req := model.MountRequest{Kind: model.ViewKind(kind)}
	if query != "" {
		req.Query = &query
	}
	for _, f := range filters {
		key, value, ok := strings.Cut(f, "=")
		if !ok || key == "" {
			return req, errors.Errorf("invalid filter %q, expected key=value", f)
		}
		if req.Filters == nil {
			req.Filters = map[string]string{}
		}
		req.Filters[key] = value
	}
	sortParam, err := model.ParseSortParam(sort)
	if err != nil {
		return req, err
	}
	req.Sort = sortParam
	req.Page = page
	req.PerPage = perPage
	return req, req.Validate()
}
