package gateway

import (
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"

	"github.com/shininglovestar/remix/runtime"
)

// newGatewayResponse serializes a standard response into the event
// result shape. Every Set-Cookie header is extracted into the result's
// cookie list; the gateway requires cookies out-of-band and would
// otherwise collapse repeated values. Binary content types are base64
// encoded with the flag set, textual ones pass through verbatim.
func newGatewayResponse(res *runtime.Response, isBinary func(string) bool) (events.APIGatewayV2HTTPResponse, error) {
	statusCode := res.StatusCode
	if statusCode == 0 {
		statusCode = http.StatusOK
	}

	headers := make(map[string]string, len(res.Header))
	var cookies []string

	for name, values := range res.Header {
		if http.CanonicalHeaderKey(name) == "Set-Cookie" {
			cookies = append(cookies, values...)
			continue
		}

		// The result header map is single-valued.
		headers[name] = strings.Join(values, ", ")
	}

	out := events.APIGatewayV2HTTPResponse{
		StatusCode: statusCode,
		Headers:    headers,
		Cookies:    cookies,
	}

	if res.Body == nil {
		return out, nil
	}

	// The result format requires a single encoded payload, so the
	// body is buffered in full.
	body, err := io.ReadAll(res.Body)
	if err != nil {
		return events.APIGatewayV2HTTPResponse{}, fmt.Errorf("read response body: %w", err)
	}

	if isBinary(res.Header.Get("Content-Type")) {
		out.Body = base64.StdEncoding.EncodeToString(body)
		out.IsBase64Encoded = true
	} else {
		out.Body = string(body)
	}

	return out, nil
}
