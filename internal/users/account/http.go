// Copyright (c) 2026 Campus. All rights reserved.

package account

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ozgekara/campus/internal/platform/middleware"
	requestutil "github.com/ozgekara/campus/internal/platform/request"
	"github.com/ozgekara/campus/internal/platform/respond"
	"github.com/ozgekara/campus/internal/platform/sec"
	"github.com/ozgekara/campus/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for /users. Directory access is admin only.
//
// /stats is registered before /{id} so the literal path wins.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireRole(sec.RoleAdmin))

	router.Get("/", handler.listAccounts)
	router.Get("/stats", handler.getStats)
	router.Get("/{id}", handler.getAccount)

	return router
}

func (handler *Handler) listAccounts(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	entries, total, err := handler.service.ListAccounts(request.Context(), paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, "users", entries, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getStats(writer http.ResponseWriter, request *http.Request) {
	stats, err := handler.service.GetStats(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, stats)
}

func (handler *Handler) getAccount(writer http.ResponseWriter, request *http.Request) {
	detail, err := handler.service.GetAccount(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, detail)
}
