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
	"net/http"

	"github.com/ant0ine/go-json-rest/rest"
	"github.com/mendersoftware/go-lib-micro/config"
	"github.com/mendersoftware/go-lib-micro/log"
	"github.com/pkg/errors"

	api_http "github.com/haulwise/console/api/http"
)

func SetupAPI(stacktype string) (*rest.Api, error) {
	api := rest.NewApi()
	if err := SetupMiddleware(api, stacktype); err != nil {
		return nil, errors.Wrap(err, "failed to setup middleware")
	}

	//this will override the framework's error resp to the desired one:
	// {"error": "msg"}
	// instead of:
	// {"Error": "msg"}
	rest.ErrorFieldName = "error"

	return api, nil
}

// setupServerConsole wires the console the way the server runs it, with
// badge polling.
func setupServerConsole(ctx context.Context, c config.Reader) (*consoleApp, error) {
	return setupConsole(ctx, c, true)
}

func RunServer(c config.Reader) error {
	l := log.New(log.Ctx{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app, err := setupServerConsole(ctx, c)
	if err != nil {
		return err
	}
	defer app.close()

	if app.poller != nil {
		if err := app.poller.Start(ctx); err != nil {
			return errors.Wrap(err, "failed to start badge poller")
		}
		defer app.poller.Stop()
	}

	consoleapi := api_http.NewConsoleApiHandlers(app.console)

	api, err := SetupAPI(c.GetString(SettingMiddleware))
	if err != nil {
		return errors.Wrap(err, "API setup failed")
	}

	apph, err := consoleapi.GetApp()
	if err != nil {
		return errors.Wrap(err, "console API handlers setup failed")
	}
	api.SetApp(apph)

	addr := c.GetString(SettingListen)
	l.Printf("listening on %s", addr)

	return http.ListenAndServe(addr, api.MakeHandler())
}
