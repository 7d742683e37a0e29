package utils

import (
	"fmt"
	"io"
	"net/http"
)

// MaxRecordSize ограничивает тело запроса с записью партии
const MaxRecordSize = 16 << 20

func ReadRequestBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	defer r.Body.Close()
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxRecordSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}
	return body, nil
}
