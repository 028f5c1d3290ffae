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
	"encoding/json"
	"fmt"
	"os"

	"github.com/mendersoftware/go-lib-micro/config"
	"github.com/mendersoftware/go-lib-micro/log"
	"github.com/urfave/cli"

	api_http "github.com/haulwise/console/api/http"
)

func main() {
	doMain(os.Args)
}

func doMain(args []string) {
	var configPath string
	var debug bool

	app := cli.NewApp()
	app.Usage = "Logistics Admin Console Service"

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name: "config",
			Usage: "Configuration `FILE`." +
				" Supports JSON, TOML, YAML and HCL formatted configs.",
			Destination: &configPath,
		},
		cli.BoolFlag{
			Name:  "dev",
			Usage: "Use development setup",
		},
		cli.BoolFlag{
			Name:        "debug",
			Usage:       "Enable debug logging",
			Destination: &debug,
		},
	}

	app.Commands = []cli.Command{
		{
			Name:   "server",
			Usage:  "Run the service as a server",
			Action: cmdServer,
		},
		{
			Name:  "list",
			Usage: "Load one view and print the visible page as JSON",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "kind, k",
					Usage: "View `KIND`: users, drivers or pricing.",
				},
				cli.StringFlag{
					Name:  "query, q",
					Usage: "Free-text search `QUERY`.",
				},
				cli.StringSliceFlag{
					Name: "filter, f",
					Usage: "Filter as `KEY=VALUE`. " +
						"Flag can be provided multiple times.",
				},
				cli.StringFlag{
					Name:  "sort, s",
					Usage: "Sort as `FIELD[:asc|desc]`.",
				},
				cli.IntFlag{
					Name:  "page",
					Usage: "Zero-based page index.",
				},
				cli.IntFlag{
					Name:  "per-page",
					Usage: "Page size.",
				},
			},
			Action: cmdList,
		},
	}

	app.Action = cmdServer
	app.Before = func(args *cli.Context) error {
		log.Setup(debug)

		err := config.FromConfigFile(configPath, configDefaults)
		if err != nil {
			return cli.NewExitError(
				fmt.Sprintf("error loading configuration: %s", err),
				1)
		}

		// Enable setting config values by environment variables
		config.Config.SetEnvPrefix("CONSOLE")
		config.Config.AutomaticEnv()

		return nil
	}

	_ = app.Run(args)
}

func cmdServer(args *cli.Context) error {
	devSetup := args.GlobalBool("dev")

	l := log.New(log.Ctx{})

	if devSetup {
		l.Infof("setting up development configuration")
		config.Config.Set(SettingMiddleware, EnvDev)
	}

	l.Print("Admin Console Service starting up")

	err := RunServer(config.Config)
	if err != nil {
		return cli.NewExitError(err.Error(), 4)
	}

	return nil
}

func cmdList(args *cli.Context) error {
	var page, perPage *int
	if args.IsSet("page") {
		p := args.Int("page")
		page = &p
	}
	if args.IsSet("per-page") {
		p := args.Int("per-page")
		perPage = &p
	}
	req, err := makeMountRequest(
		args.String("kind"),
		args.String("query"),
		args.StringSlice("filter"),
		args.String("sort"),
		page, perPage,
	)
	if err != nil {
		return cli.NewExitError(fmt.Sprintf("invalid arguments: %v", err), 2)
	}

	ctx := context.Background()
	app, err := setupConsole(ctx, config.Config, false)
	if err != nil {
		return cli.NewExitError(err.Error(), 3)
	}
	defer app.close()

	snap, err := app.console.MountView(ctx, req)
	if err != nil {
		return cli.NewExitError(err.Error(), 4)
	}
	if snap.Error != "" {
		return cli.NewExitError(snap.Error, 5)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(api_http.NewViewDto(snap)); err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	return nil
}
