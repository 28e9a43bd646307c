// Package diag provides the diagnostic framework handler served by
// the reference binary. It echoes the translated request back as JSON,
// which makes adapter behavior observable end to end when smoke
// testing a deployment.
package diag

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/shininglovestar/remix/runtime"
)

type echoPayload struct {
	Method      string              `json:"method"`
	URL         string              `json:"url"`
	Headers     map[string][]string `json:"headers"`
	BodyBytes   int64               `json:"bodyBytes"`
	Mode        string              `json:"mode"`
	LoadContext any                 `json:"loadContext,omitempty"`
}

// NewHandler creates the diagnostic handler.
func NewHandler(mode runtime.Mode, log *zap.Logger) runtime.Handler {
	return runtime.HandlerFunc(func(ctx context.Context, r *http.Request, loadContext any) (*runtime.Response, error) {
		var bodyBytes int64
		if r.Body != nil {
			n, err := io.Copy(io.Discard, r.Body)
			if err != nil {
				return nil, fmt.Errorf("drain request body: %w", err)
			}
			bodyBytes = n
		}

		log.Debug("echoing request",
			zap.String("method", r.Method),
			zap.String("url", r.URL.String()),
			zap.Int64("body_bytes", bodyBytes),
		)

		payload := echoPayload{
			Method:      r.Method,
			URL:         r.URL.String(),
			Headers:     r.Header,
			BodyBytes:   bodyBytes,
			Mode:        mode.String(),
			LoadContext: loadContext,
		}

		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode echo payload: %w", err)
		}

		return &runtime.Response{
			StatusCode: http.StatusOK,
			Header: http.Header{
				"Content-Type": {"application/json"},
			},
			Body: bytes.NewReader(data),
		}, nil
	})
}

// NewBuild creates the build artifact served by the reference binary.
func NewBuild(mode runtime.Mode, log *zap.Logger) *runtime.Build {
	return &runtime.Build{
		Handler: NewHandler(mode, log.Named("diag")),
		Mode:    mode,
	}
}
