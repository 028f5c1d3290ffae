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

	"github.com/ant0ine/go-json-rest/rest"
	"github.com/mendersoftware/go-lib-micro/log"
	u "github.com/mendersoftware/go-lib-micro/rest_utils"
	"github.com/pkg/errors"

	"github.com/haulwise/console/client/platform"
	"github.com/haulwise/console/console"
	"github.com/haulwise/console/model"
	"github.com/haulwise/console/utils"
)

const (
	uriViews       = "/api/management/v1/console/views"
	uriView        = "/api/management/v1/console/views/:id"
	uriViewRefresh = "/api/management/v1/console/views/:id/refresh"
	uriPricing     = "/api/management/v1/console/pricing/:id"
	uriUser        = "/api/management/v1/console/users/:id"
	uriDriver      = "/api/management/v1/console/drivers/:id"
	uriDriverVerif = "/api/management/v1/console/drivers/:id/verification"
	uriBadges      = "/api/management/v1/console/badges"

	uriInternalHealth = "/api/internal/v1/console/health"
)

type consoleHandlers struct {
	console console.ConsoleApp
}

// return an ApiHandler for the admin console app
func NewConsoleApiHandlers(c console.ConsoleApp) ApiHandler {
	return &consoleHandlers{
		console: c,
	}
}

func (h *consoleHandlers) GetApp() (rest.App, error) {
	routes := []*rest.Route{
		rest.Post(uriViews, h.MountViewHandler),
		rest.Get(uriView, h.GetViewHandler),
		rest.Patch(uriView, h.UpdateViewHandler),
		rest.Delete(uriView, h.UnmountViewHandler),
		rest.Post(uriViewRefresh, h.RefreshViewHandler),

		rest.Put(uriPricing, h.UpdateVehiclePricingHandler),
		rest.Delete(uriUser, h.DeleteUserHandler),
		rest.Delete(uriDriver, h.DeleteDriverHandler),
		rest.Put(uriDriverVerif, h.SetDriverVerifiedHandler),
		rest.Get(uriBadges, h.GetBadgesHandler),

		rest.Get(uriInternalHealth, h.HealthCheckHandler),
	}

	app, err := rest.MakeRouter(
		// augment routes with OPTIONS handler
		AutogenOptionsRoutes(routes, AllowHeaderOptionsGenerator)...,
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create router")
	}

	return app, nil
}

// restErr maps console errors onto response codes
func restErr(w rest.ResponseWriter, r *rest.Request, l *log.Logger, err error) {
	var paramsErr *console.ParamsError
	switch {
	case errors.As(err, &paramsErr):
		u.RestErrWithLog(w, r, l, err, http.StatusBadRequest)
	case errors.Is(err, console.ErrViewNotFound),
		errors.Is(err, console.ErrBadgesNotEnabled),
		errors.Is(err, platform.ErrNotFound):
		u.RestErrWithLog(w, r, l, err, http.StatusNotFound)
	default:
		u.RestErrWithLogInternal(w, r, l, err)
	}
}

func (h *consoleHandlers) HealthCheckHandler(w rest.ResponseWriter, r *rest.Request) {
	ctx := r.Context()

	l := log.FromContext(ctx)

	if err := h.console.HealthCheck(ctx); err != nil {
		u.RestErrWithLog(w, r, l, err, http.StatusServiceUnavailable)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *consoleHandlers) MountViewHandler(w rest.ResponseWriter, r *rest.Request) {
	ctx := r.Context()

	l := log.FromContext(ctx)

	var req model.MountRequest
	if err := r.DecodeJsonPayload(&req); err != nil {
		u.RestErrWithLog(
			w, r, l, errors.Wrap(err, "failed to decode request body"),
			http.StatusBadRequest)
		return
	}

	snap, err := h.console.MountView(ctx, req)
	if err != nil {
		restErr(w, r, l, err)
		return
	}

	location := utils.BuildURL(r, uriView, map[string]string{":id": snap.ID})
	w.Header().Add("Location", location.String())
	w.WriteHeader(http.StatusCreated)
	_ = w.WriteJson(NewViewDto(snap))
}

func (h *consoleHandlers) GetViewHandler(w rest.ResponseWriter, r *rest.Request) {
	ctx := r.Context()

	l := log.FromContext(ctx)

	snap, err := h.console.GetView(ctx, r.PathParam("id"))
	if err != nil {
		restErr(w, r, l, err)
		return
	}

	_ = w.WriteJson(NewViewDto(snap))
}

func (h *consoleHandlers) UpdateViewHandler(w rest.ResponseWriter, r *rest.Request) {
	ctx := r.Context()

	l := log.FromContext(ctx)

	var params model.ViewParams
	if err := r.DecodeJsonPayload(&params); err != nil {
		u.RestErrWithLog(
			w, r, l, errors.Wrap(err, "failed to decode request body"),
			http.StatusBadRequest)
		return
	}

	snap, err := h.console.UpdateView(ctx, r.PathParam("id"), params)
	if err != nil {
		restErr(w, r, l, err)
		return
	}

	_ = w.WriteJson(NewViewDto(snap))
}

func (h *consoleHandlers) RefreshViewHandler(w rest.ResponseWriter, r *rest.Request) {
	ctx := r.Context()

	l := log.FromContext(ctx)

	snap, err := h.console.RefreshView(ctx, r.PathParam("id"))
	if err != nil {
		restErr(w, r, l, err)
		return
	}

	_ = w.WriteJson(NewViewDto(snap))
}

func (h *consoleHandlers) UnmountViewHandler(w rest.ResponseWriter, r *rest.Request) {
	ctx := r.Context()

	l := log.FromContext(ctx)

	if err := h.console.UnmountView(ctx, r.PathParam("id")); err != nil {
		restErr(w, r, l, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *consoleHandlers) UpdateVehiclePricingHandler(w rest.ResponseWriter, r *rest.Request) {
	ctx := r.Context()

	l := log.FromContext(ctx)

	var update model.VehiclePricingUpdate
	if err := r.DecodeJsonPayload(&update); err != nil {
		u.RestErrWithLog(
			w, r, l, errors.Wrap(err, "failed to decode request body"),
			http.StatusBadRequest)
		return
	}

	err := h.console.UpdateVehiclePricing(ctx, r.PathParam("id"), update)
	if err != nil {
		restErr(w, r, l, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *consoleHandlers) DeleteUserHandler(w rest.ResponseWriter, r *rest.Request) {
	ctx := r.Context()

	l := log.FromContext(ctx)

	if err := h.console.DeleteUser(ctx, r.PathParam("id")); err != nil {
		restErr(w, r, l, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *consoleHandlers) DeleteDriverHandler(w rest.ResponseWriter, r *rest.Request) {
	ctx := r.Context()

	l := log.FromContext(ctx)

	if err := h.console.DeleteDriver(ctx, r.PathParam("id")); err != nil {
		restErr(w, r, l, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *consoleHandlers) SetDriverVerifiedHandler(w rest.ResponseWriter, r *rest.Request) {
	ctx := r.Context()

	l := log.FromContext(ctx)

	var verification DriverVerificationDto
	if err := r.DecodeJsonPayload(&verification); err != nil {
		u.RestErrWithLog(
			w, r, l, errors.Wrap(err, "failed to decode request body"),
			http.StatusBadRequest)
		return
	}
	if err := verification.Validate(); err != nil {
		u.RestErrWithLog(w, r, l, err, http.StatusBadRequest)
		return
	}

	err := h.console.SetDriverVerified(ctx, r.PathParam("id"), *verification.Verified)
	if err != nil {
		restErr(w, r, l, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *consoleHandlers) GetBadgesHandler(w rest.ResponseWriter, r *rest.Request) {
	ctx := r.Context()

	l := log.FromContext(ctx)

	badges, err := h.console.Badges(ctx)
	if err != nil {
		restErr(w, r, l, err)
		return
	}

	_ = w.WriteJson(badges)
}
