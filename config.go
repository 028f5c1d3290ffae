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
	"github.com/mendersoftware/go-lib-micro/config"

	"github.com/haulwise/console/badges"
	"github.com/haulwise/console/store/mongo"
	"github.com/haulwise/console/table"
)

const (
	SettingListen        = "listen"
	SettingListenDefault = ":8080"

	SettingMiddleware        = "middleware"
	SettingMiddlewareDefault = EnvProd

	// SettingSource selects where entity collections are listed from:
	// "api" for the platform API, "mongo" for a read replica.
	SettingSource        = "source"
	SettingSourceDefault = SourceAPI

	SettingPlatformAddr        = "platform_addr"
	SettingPlatformAddrDefault = "http://logistics-api:8080"

	SettingPlatformToken = "platform_token"

	SettingDb        = "mongo"
	SettingDbDefault = "mongodb://mongo-logistics:27017"

	SettingDbSSL        = "mongo_ssl"
	SettingDbSSLDefault = false

	SettingDbSSLSkipVerify        = "mongo_ssl_skipverify"
	SettingDbSSLSkipVerifyDefault = false

	SettingDbUsername = "mongo_username"
	SettingDbPassword = "mongo_password"

	SettingDbName        = "mongo_db"
	SettingDbNameDefault = mongo.DbName

	SettingPageSize        = "page_size"
	SettingPageSizeDefault = table.DefaultPageSize

	SettingCollationLanguage        = "collation_language"
	SettingCollationLanguageDefault = "en"

	// SettingBadgePollSchedule disables badge polling when empty.
	SettingBadgePollSchedule        = "badge_poll_schedule"
	SettingBadgePollScheduleDefault = badges.DefaultSchedule
)

const (
	SourceAPI   = "api"
	SourceMongo = "mongo"
)

var (
	configDefaults = []config.Default{
		{Key: SettingListen, Value: SettingListenDefault},
		{Key: SettingMiddleware, Value: SettingMiddlewareDefault},
		{Key: SettingSource, Value: SettingSourceDefault},
		{Key: SettingPlatformAddr, Value: SettingPlatformAddrDefault},
		{Key: SettingDb, Value: SettingDbDefault},
		{Key: SettingDbSSL, Value: SettingDbSSLDefault},
		{Key: SettingDbSSLSkipVerify, Value: SettingDbSSLSkipVerifyDefault},
		{Key: SettingDbName, Value: SettingDbNameDefault},
		{Key: SettingPageSize, Value: SettingPageSizeDefault},
		{Key: SettingCollationLanguage, Value: SettingCollationLanguageDefault},
		{Key: SettingBadgePollSchedule, Value: SettingBadgePollScheduleDefault},
	}
)
