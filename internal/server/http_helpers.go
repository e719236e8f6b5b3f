package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"script-sheets/internal/script"

	"github.com/gin-gonic/gin"
)

func readJSON(body io.Reader, dest any) error {
	decoder := json.NewDecoder(body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dest)
}

func writeError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"error": message,
	})
}

// decodeOptions reads sheet options over the defaults, so a partial object
// only changes the fields it names.
func decodeOptions(raw json.RawMessage) (script.Options, error) {
	opts := script.DefaultOptions()
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return opts, nil
	}
	if err := readJSON(bytes.NewReader(trimmed), &opts); err != nil {
		return opts, fmt.Errorf("invalid options: %w", err)
	}
	opts = opts.Normalize()
	if err := opts.Validate(); err != nil {
		return opts, fmt.Errorf("invalid options: %w", err)
	}
	return opts, nil
}
