package response

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestSuccessEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()

	Success(rec, map[string]string{"kind": "checked_in"})

	assert.Equal(t, 200, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	resp := decode(t, rec)
	assert.True(t, resp.Success)
	assert.Nil(t, resp.Error)
}

func TestSuccessWithMetaCarriesPagination(t *testing.T) {
	rec := httptest.NewRecorder()

	SuccessWithMeta(rec, []string{}, &Meta{Page: 2, Limit: 20, TotalItems: 41, TotalPages: 3})

	resp := decode(t, rec)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, 2, resp.Meta.Page)
	assert.Equal(t, int64(41), resp.Meta.TotalItems)
}

func TestErrorEnvelopes(t *testing.T) {
	tests := []struct {
		name     string
		write    func(rec *httptest.ResponseRecorder)
		wantCode int
		wantErr  string
	}{
		{"bad request", func(rec *httptest.ResponseRecorder) { BadRequest(rec, "nope", nil) }, 400, "BAD_REQUEST"},
		{"validation", func(rec *httptest.ResponseRecorder) { ValidationError(rec, map[string]string{"email": "required"}) }, 422, "VALIDATION_ERROR"},
		{"unauthorized", func(rec *httptest.ResponseRecorder) { Unauthorized(rec, "no token") }, 401, "UNAUTHORIZED"},
		{"forbidden", func(rec *httptest.ResponseRecorder) { Forbidden(rec, "admins only") }, 403, "FORBIDDEN"},
		{"not found", func(rec *httptest.ResponseRecorder) { NotFound(rec, "gone") }, 404, "NOT_FOUND"},
		{"conflict", func(rec *httptest.ResponseRecorder) { Conflict(rec, "exists") }, 409, "CONFLICT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.write(rec)

			assert.Equal(t, tt.wantCode, rec.Code)
			resp := decode(t, rec)
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantErr, resp.Error.Code)
		})
	}
}
