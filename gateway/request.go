package gateway

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"
)

// newStandardRequest translates a gateway event into a standard
// request. The URL is rebuilt from the forwarded host header (falling
// back to the plain host header) plus the raw path and raw query
// string; the scheme is https, or http when sandbox is set.
func newStandardRequest(ctx context.Context, event events.APIGatewayV2HTTPRequest, sandbox bool) (*http.Request, error) {
	host := headerValue(event.Headers, "x-forwarded-host")
	if host == "" {
		host = headerValue(event.Headers, "host")
	}

	scheme := "https"
	if sandbox {
		scheme = "http"
	}

	rawURL := scheme + "://" + host + event.RawPath
	if event.RawQueryString != "" {
		rawURL += "?" + event.RawQueryString
	}

	body, err := eventBody(event)
	if err != nil {
		return nil, err
	}

	method := event.RequestContext.HTTP.Method
	if method == "" {
		method = http.MethodGet
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return nil, err
	}

	for name, value := range event.Headers {
		req.Header.Set(name, value)
	}

	// The gateway delivers cookies out-of-band; merge them back
	// into a single Cookie header.
	if len(event.Cookies) > 0 {
		req.Header.Set("Cookie", strings.Join(event.Cookies, "; "))
	}

	return req, nil
}

// eventBody decodes the event body. Base64-encoded bodies decode to
// their raw bytes regardless of content type; multipart form data and
// textual payloads alike resolve to the same byte sequence here.
func eventBody(event events.APIGatewayV2HTTPRequest) (io.Reader, error) {
	if event.Body == "" {
		return nil, nil
	}

	if !event.IsBase64Encoded {
		return strings.NewReader(event.Body), nil
	}

	decoded, err := base64.StdEncoding.DecodeString(event.Body)
	if err != nil {
		return nil, fmt.Errorf("decode base64 body: %w", err)
	}

	return bytes.NewReader(decoded), nil
}

// headerValue looks up a header in the event's header map without
// assuming the casing the gateway delivered it with.
func headerValue(headers map[string]string, name string) string {
	if v, ok := headers[name]; ok {
		return v
	}

	for k, v := range headers {
		if strings.EqualFold(k, name) {
			return v
		}
	}

	return ""
}
