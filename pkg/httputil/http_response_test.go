package httputil_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/limbo/cocoon/pkg/httputil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteErrorResponse(t *testing.T) {
	t.Run("with details", func(t *testing.T) {
		rr := httptest.NewRecorder()
		httputil.WriteErrorResponse(rr, http.StatusBadRequest, "invalid appointment", errors.New("Kind: required"))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
		var resp httputil.ErrorResponse
		require.NoError(t, sonic.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, httputil.ErrorResponse{Code: 400, Message: "invalid appointment", Details: "Kind: required"}, resp)
	})
	t.Run("details omitted", func(t *testing.T) {
		rr := httptest.NewRecorder()
		httputil.WriteErrorResponse(rr, http.StatusNotFound, "element not found", nil)
		assert.NotContains(t, rr.Body.String(), "details")
	})
}

func TestWriteJSONResponse(t *testing.T) {
	t.Run("body", func(t *testing.T) {
		rr := httptest.NewRecorder()
		httputil.WriteJSONResponse(rr, http.StatusCreated, map[string]string{"uid": "42"})
		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.JSONEq(t, `{"uid":"42"}`, rr.Body.String())
	})
	t.Run("nil body", func(t *testing.T) {
		rr := httptest.NewRecorder()
		httputil.WriteJSONResponse(rr, http.StatusOK, nil)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Empty(t, rr.Body.String())
	})
}

func TestWriteNoContent(t *testing.T) {
	rr := httptest.NewRecorder()
	httputil.WriteNoContent(rr)
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())
}
