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
	"os"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	mopts "go.mongodb.org/mongo-driver/mongo/options"
)

// testClient is connected to TEST_MONGO_URL; tests needing a database are
// skipped when it is nil.
var testClient *mongo.Client

func TestMain(m *testing.M) {
	if url := os.Getenv("TEST_MONGO_URL"); url != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		client, err := mongo.Connect(ctx, mopts.Client().ApplyURI(url))
		cancel()
		if err != nil {
			panic(err)
		}
		testClient = client
	}
	code := m.Run()
	if testClient != nil {
		_ = testClient.Disconnect(context.Background())
	}
	os.Exit(code)
}

func newTestDataStore(t *testing.T) *DataStoreMongo {
	if testing.Short() || testClient == nil {
		t.Skip("skipping mongo test: TEST_MONGO_URL not set or short mode")
	}
	dbName := "console_test_" + time.Now().Format("150405.000000")
	db := NewDataStoreMongoWithClient(testClient, dbName)
	t.Cleanup(func() {
		_ = testClient.Database(dbName).Drop(context.Background())
	})
	return db
}
