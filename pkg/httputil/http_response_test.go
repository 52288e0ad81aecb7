package httputil_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/limbo/hydration/pkg/httputil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteErrorResponse(t *testing.T) {
	rr := httptest.NewRecorder()
	httputil.WriteErrorResponse(rr, http.StatusUnprocessableEntity, "stored history is malformed", errors.New("bad row"))
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	var resp httputil.ErrorResponse
	require.NoError(t, sonic.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, httputil.ErrorResponse{
		Code:    http.StatusUnprocessableEntity,
		Message: "stored history is malformed",
		Details: "bad row",
	}, resp)
}

func TestWriteAttachment(t *testing.T) {
	t.Run("written", func(t *testing.T) {
		rr := httptest.NewRecorder()
		err := httputil.WriteAttachment(rr, "text/csv", "hydration_log.csv", func(w io.Writer) error {
			_, err := io.WriteString(w, "timestamp,amount_ml\n")
			return err
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "text/csv", rr.Header().Get("Content-Type"))
		assert.Equal(t, `attachment; filename=hydration_log.csv`, rr.Header().Get("Content-Disposition"))
		assert.Equal(t, "20", rr.Header().Get("Content-Length"))
		assert.Equal(t, "timestamp,amount_ml\n", rr.Body.String())
	})
	t.Run("render error leaves response untouched", func(t *testing.T) {
		rr := httptest.NewRecorder()
		err := httputil.WriteAttachment(rr, "text/csv", "hydration_log.csv", func(w io.Writer) error {
			return errors.New("render failed")
		})
		assert.Error(t, err)
		assert.Empty(t, rr.Header().Get("Content-Disposition"))
		assert.Zero(t, rr.Body.Len())
	})
}
