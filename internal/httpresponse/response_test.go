package httpresponse

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteResponseWithStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteResponseWithStatus(rec, http.StatusCreated, map[string]string{"sgf": "(;)"})

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.JSONEq(t, `{"Status": 201, "Body": {"sgf": "(;)"}}`, rec.Body.String())
}

func TestWriteErrorWithStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteErrorWithStatus(rec, http.StatusNotFound, "sgf not found")

	require.Equal(t, http.StatusNotFound, rec.Code)
	var resp Response[ErrorResponse]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "sgf not found", resp.Body.ErrorDescription)
}

func TestWriteResponseUnmarshalable(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteResponseWithStatus(rec, http.StatusOK, func() {})

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.JSONEq(t, INTERNALERRORJSON, rec.Body.String())
}
