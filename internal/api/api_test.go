// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/tutorbook/internal/api"
	"github.com/taibuivan/tutorbook/internal/core/person"
	"github.com/taibuivan/tutorbook/internal/logic"
	"github.com/taibuivan/tutorbook/internal/model"
	"github.com/taibuivan/tutorbook/internal/platform/config"
	"github.com/taibuivan/tutorbook/internal/platform/constants"
	"github.com/taibuivan/tutorbook/internal/storage"
	"github.com/taibuivan/tutorbook/internal/testutil"
)

// envelope mirrors the success and error bodies written by the respond package.
type envelope struct {
	Data  json.RawMessage `json:"data"`
	Total int             `json:"total"`
	Error string          `json:"error"`
	Code  string          `json:"code"`
}

type fixture struct {
	router  http.Handler
	manager *logic.Manager
	family  testutil.Family
}

func newFixture(t *testing.T, environment string, checkStorage func() error) fixture {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	family := testutil.NewFamily(t)
	store := storage.NewJSONAddressBookStorage(filepath.Join(t.TempDir(), "addressbook.json"))
	manager := logic.NewManager(model.NewManager(family.Book, model.UserPrefs{}), store)

	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{CheckStorage: checkStorage}, logger)
	router := api.NewRouter(ctx, &config.Config{Environment: environment}, logger, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		View:      api.NewHandler(manager),
	})
	return fixture{router: router, manager: manager, family: family}
}

func (f fixture) do(t *testing.T, method, path, body string, headers ...string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	request := httptest.NewRequest(method, path, reader)
	for i := 0; i+1 < len(headers); i += 2 {
		request.Header.Set(headers[i], headers[i+1])
	}

	recorder := httptest.NewRecorder()
	f.router.ServeHTTP(recorder, request)

	var decoded envelope
	if recorder.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &decoded))
	}
	return recorder, decoded
}

func TestHealth(t *testing.T) {
	f := newFixture(t, "development", nil)

	recorder, body := f.do(t, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"status":"ok","app":"tutorbook","version":"`+constants.AppVersion+`"}`, string(body.Data))
	assert.NotEmpty(t, recorder.Header().Get(constants.HeaderXRequestID))
}

/*
TestReady reports the storage check and degrades when it fails.
*/
func TestReady(t *testing.T) {
	f := newFixture(t, "development", func() error { return nil })
	recorder, body := f.do(t, http.MethodGet, "/ready", "")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, string(body.Data), `"status":"ready"`)

	f = newFixture(t, "development", func() error { return errors.New("read-only file system") })
	recorder, body = f.do(t, http.MethodGet, "/ready", "")
	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	assert.Contains(t, string(body.Data), `"status":"degraded"`)
	assert.Contains(t, string(body.Data), "read-only file system")
}

/*
TestListPersons returns the filtered list with 1-based indices.
*/
func TestListPersons(t *testing.T) {
	f := newFixture(t, "development", nil)

	recorder, body := f.do(t, http.MethodGet, "/api/v1/persons", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, 3, body.Total)

	var persons []api.PersonResponse
	require.NoError(t, json.Unmarshal(body.Data, &persons))
	require.Len(t, persons, 3)
	assert.Equal(t, 1, persons[0].Index)
	assert.Equal(t, "Reyna Bong", persons[0].Name)
	assert.Len(t, persons[0].ChildrenIDs, 2)
	require.NotNil(t, persons[1].Class)
	assert.Equal(t, "MON", persons[1].Class.Day)
	assert.Equal(t, f.family.Parent.ID.String(), persons[1].ParentID)
	assert.Equal(t, []string{}, persons[2].Tags)
}

func TestGetPerson(t *testing.T) {
	f := newFixture(t, "development", nil)

	recorder, body := f.do(t, http.MethodGet, "/api/v1/persons/"+f.family.Sibling.ID.String(), "")
	require.Equal(t, http.StatusOK, recorder.Code)

	var found api.PersonResponse
	require.NoError(t, json.Unmarshal(body.Data, &found))
	assert.Equal(t, "Mary Jane", found.Name)
	assert.Zero(t, found.Index)

	recorder, body = f.do(t, http.MethodGet, "/api/v1/persons/"+person.NewID().String(), "")
	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, "Person not found", body.Error)

	recorder, body = f.do(t, http.MethodGet, "/api/v1/persons/not-an-id", "")
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "VALIDATION_ERROR", body.Code)
}

/*
TestListClasses returns every class in weekly order, not insertion order.
*/
func TestListClasses(t *testing.T) {
	f := newFixture(t, "development", nil)

	recorder, body := f.do(t, http.MethodGet, "/api/v1/classes", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, 1, body.Total)
	assert.Contains(t, string(body.Data), f.family.Class.ID.String())

	for _, line := range []string{"addclass d/SUN tm/08:00", "addclass d/MON tm/09:00"} {
		recorder, _ = f.do(t, http.MethodPost, "/api/v1/commands", `{"command":"`+line+`"}`)
		require.Equal(t, http.StatusOK, recorder.Code)
	}

	_, body = f.do(t, http.MethodGet, "/api/v1/classes", "")
	var classes []api.ClassResponse
	require.NoError(t, json.Unmarshal(body.Data, &classes))

	slots := make([]string, 0, len(classes))
	for _, class := range classes {
		slots = append(slots, class.Day+" "+class.Time)
	}
	assert.Equal(t, []string{"MON 09:00", "MON 17:00", "SUN 08:00"}, slots)
}

/*
TestExecuteCommand runs commands through the view and sees the shared state change.
*/
func TestExecuteCommand(t *testing.T) {
	f := newFixture(t, "development", nil)

	recorder, body := f.do(t, http.MethodPost, "/api/v1/commands", `{"command":"list c/parent"}`)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, string(body.Data), "Listed all parents")
	assert.Len(t, f.manager.FilteredPersons(), 1)

	recorder, body = f.do(t, http.MethodPost, "/api/v1/commands", `{"command":"delete 9"}`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "INVALID_INDEX", body.Code)

	recorder, body = f.do(t, http.MethodPost, "/api/v1/commands", `{"command":"addclass d/MON tm/17:00"}`)
	assert.Equal(t, http.StatusConflict, recorder.Code)
	assert.Equal(t, "This tuition class already exists", body.Error)

	recorder, body = f.do(t, http.MethodPost, "/api/v1/commands", `{"command":"   "}`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "Command must not be empty", body.Error)

	recorder, body = f.do(t, http.MethodPost, "/api/v1/commands", `{"cmd":"list"}`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "Request body must be valid JSON", body.Error)
}

/*
TestCORS allows any origin in development and only loopback origins otherwise.
*/
func TestCORS(t *testing.T) {
	const allowOrigin = "Access-Control-Allow-Origin"

	f := newFixture(t, "development", nil)
	recorder, _ := f.do(t, http.MethodGet, "/health", "", constants.HeaderOrigin, "https://example.com")
	assert.Equal(t, "https://example.com", recorder.Header().Get(allowOrigin))

	f = newFixture(t, "production", nil)
	recorder, _ = f.do(t, http.MethodGet, "/health", "", constants.HeaderOrigin, "https://example.com")
	assert.Empty(t, recorder.Header().Get(allowOrigin))

	recorder, _ = f.do(t, http.MethodGet, "/health", "", constants.HeaderOrigin, "http://localhost:5173")
	assert.Equal(t, "http://localhost:5173", recorder.Header().Get(allowOrigin))

	recorder, _ = f.do(t, http.MethodOptions, "/api/v1/persons", "", constants.HeaderOrigin, "http://127.0.0.1:5173")
	assert.Equal(t, http.StatusNoContent, recorder.Code)
}
