package utils

import (
	"encoding/json"
	"io"
	"net/http"
)

// Request bodies are small flat documents; 1 MiB is generous.
const maxBodyBytes = 1 << 20

// ReadBody drains the request body up to maxBodyBytes.
func ReadBody(r *http.Request) ([]byte, error) {
	defer r.Body.Close()
	return io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
}

// ParseJSON parses JSON request body
func ParseJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}
