package web

import (
	"fmt"
	"io"
	"net/http"
)

// newStandardRequest translates a native request into a standard
// request. The URL is rebuilt from the forwarded host and protocol
// headers, since the server-side request URL carries neither; the
// scheme defaults to https. The native request context rides along,
// so closing the response stream cancels the standard request.
func newStandardRequest(r *http.Request) (*http.Request, error) {
	host := r.Header.Get("X-Forwarded-Host")
	if host == "" {
		host = r.Host
	}

	scheme := r.Header.Get("X-Forwarded-Proto")
	if scheme == "" {
		scheme = "https"
	}

	u := *r.URL
	u.Scheme = scheme
	u.Host = host

	// GET and HEAD carry no body; everything else streams the
	// native body through without buffering.
	var body io.Reader
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		body = r.Body
	}

	req, err := http.NewRequestWithContext(r.Context(), r.Method, u.String(), body)
	if err != nil {
		return nil, fmt.Errorf("translate request: %w", err)
	}

	// Append each header occurrence individually; multi-valued
	// headers must not collapse.
	for name, values := range r.Header {
		for _, value := range values {
			req.Header.Add(name, value)
		}
	}

	return req, nil
}
