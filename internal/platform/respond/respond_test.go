// Copyright (c) 2026 Campus. All rights reserved.

package respond_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ozgekara/campus/internal/platform/apperr"
	"github.com/ozgekara/campus/internal/platform/respond"
	"github.com/ozgekara/campus/pkg/pagination"
)

/*
TestPaginated checks the list envelope: resource-named array plus flattened
pagination metadata.
*/
func TestPaginated(t *testing.T) {
	recorder := httptest.NewRecorder()

	items := []map[string]string{{"id": "a"}, {"id": "b"}}
	respond.Paginated(recorder, "students", items, pagination.NewMeta(1, 10, 15))

	assert.Equal(t, http.StatusOK, recorder.Code)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))

	assert.Contains(t, body, "students")
	assert.JSONEq(t, "15", string(body["totalCount"]))
	assert.JSONEq(t, "1", string(body["page"]))
	assert.JSONEq(t, "2", string(body["totalPages"]))
}

/*
TestError_AppError checks that a typed error controls status and body.
*/
func TestError_AppError(t *testing.T) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("GET", "/", nil)

	respond.Error(recorder, request, apperr.NotFound("Course"))

	assert.Equal(t, http.StatusNotFound, recorder.Code)

	var envelope respond.ErrorEnvelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	assert.Equal(t, "Course not found", envelope.Message)
	assert.Equal(t, "NOT_FOUND", envelope.Code)
}

/*
TestError_UnknownError checks that unclassified errors are hidden behind a
generic 500 body.
*/
func TestError_UnknownError(t *testing.T) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("GET", "/", nil)

	respond.Error(recorder, request, assert.AnError)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)

	var envelope respond.ErrorEnvelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	assert.Equal(t, "An unexpected error occurred", envelope.Message)
	assert.NotContains(t, envelope.Message, assert.AnError.Error(), "internal detail never leaks")
}
