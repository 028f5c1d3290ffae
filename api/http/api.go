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
package http

import (
	"net/http"
	"sort"
	"strings"

	"github.com/ant0ine/go-json-rest/rest"
)

const headerAllow = "Allow"

// ApiHandler builds the routing app of one API.
type ApiHandler interface {
	GetApp() (rest.App, error)
}

// OptionsHandler makes the handler answering OPTIONS on a path that
// accepts methods.
type OptionsHandler func(methods map[string]bool) rest.HandlerFunc

// AllowHeaderOptionsGenerator answers OPTIONS with the Allow header listing
// the methods of the path.
func AllowHeaderOptionsGenerator(methods map[string]bool) rest.HandlerFunc {
	allowed := make([]string, 0, len(methods)+1)
	for m := range methods {
		allowed = append(allowed, m)
	}
	allowed = append(allowed, http.MethodOptions)
	sort.Strings(allowed)
	allow := strings.Join(allowed, ", ")

	return func(w rest.ResponseWriter, r *rest.Request) {
		w.Header().Set(headerAllow, allow)
		w.WriteHeader(http.StatusOK)
	}
}

// AutogenOptionsRoutes adds an OPTIONS route for every path in routes that
// does not define one.
func AutogenOptionsRoutes(routes []*rest.Route, gen OptionsHandler) []*rest.Route {
	methods := map[string]map[string]bool{}
	paths := []string{}
	for _, r := range routes {
		if _, ok := methods[r.PathExp]; !ok {
			methods[r.PathExp] = map[string]bool{}
			paths = append(paths, r.PathExp)
		}
		methods[r.PathExp][r.HttpMethod] = true
	}

	out := routes
	for _, path := range paths {
		if methods[path][http.MethodOptions] {
			continue
		}
		out = append(out, rest.Options(path, gen(methods[path])))
	}
	return out
}
