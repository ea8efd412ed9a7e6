// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api

import (
	"net/http"
	"slices"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/tutorbook/internal/core/person"
	"github.com/taibuivan/tutorbook/internal/core/tuition"
	"github.com/taibuivan/tutorbook/internal/logic"
	"github.com/taibuivan/tutorbook/internal/platform/apperr"
	"github.com/taibuivan/tutorbook/internal/platform/ctxutil"
	"github.com/taibuivan/tutorbook/internal/platform/request"
	"github.com/taibuivan/tutorbook/internal/platform/respond"
	"github.com/taibuivan/tutorbook/pkg/slice"
)

// # View Handler

// Handler serves the address book over HTTP.
//
// It reads and commands through the same [logic.Manager] as the terminal, so
// both front ends see one consistent state.
type Handler struct {
	manager *logic.Manager
}

// NewHandler constructs a [Handler] over manager.
func NewHandler(manager *logic.Manager) *Handler {
	return &Handler{manager: manager}
}

// Routes returns the view's router, to be mounted under /api/v1.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/persons", handler.listPersons)
	router.Get("/persons/{personID}", handler.getPerson)
	router.Get("/classes", handler.listClasses)
	router.Post("/commands", handler.executeCommand)
	return router
}

// listPersons handles GET /persons: the currently filtered list with its indices.
func (handler *Handler) listPersons(writer http.ResponseWriter, request *http.Request) {
	persons := handler.manager.FilteredPersons()
	respond.List(writer, newIndexedPersonResponses(persons), len(persons))
}

// getPerson handles GET /persons/{personID}, looking in the whole book.
func (handler *Handler) getPerson(writer http.ResponseWriter, httpRequest *http.Request) {
	id, err := person.ParseID(request.Param(httpRequest, "personID"))
	if err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}

	found, ok := handler.manager.PersonByID(id)
	if !ok {
		respond.Error(writer, httpRequest, apperr.NotFound("Person"))
		return
	}
	respond.OK(writer, newPersonResponse(found))
}

// listClasses handles GET /classes, in weekly order.
func (handler *Handler) listClasses(writer http.ResponseWriter, request *http.Request) {
	classes := handler.manager.TuitionClasses()
	slices.SortFunc(classes, tuition.CompareSlots)
	respond.List(writer, slice.Map(classes, newClassResponse), len(classes))
}

// executeCommand handles POST /commands with {"command": "<line>"}.
func (handler *Handler) executeCommand(writer http.ResponseWriter, httpRequest *http.Request) {
	var body CommandRequest
	if err := request.DecodeJSON(httpRequest, &body); err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}
	if strings.TrimSpace(body.Command) == "" {
		respond.Error(writer, httpRequest, apperr.InvalidInput("command", "Command must not be empty"))
		return
	}

	ctx := ctxutil.WithSource(httpRequest.Context(), ctxutil.SourceView)
	result, err := handler.manager.Execute(ctx, body.Command)
	if err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}
	respond.OK(writer, result)
}
