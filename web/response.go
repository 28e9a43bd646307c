package web

import (
	"io"
	"net/http"

	"github.com/shininglovestar/remix/runtime"
)

const copyBufferSize = 32 * 1024

// writeResponse writes a standard response onto the native response.
// Headers are copied occurrence-by-occurrence so repeated keys such as
// Set-Cookie survive, then the status line goes out and the body is
// streamed through with a flush per chunk. The native surface derives
// the reason phrase from the status code; res.Status is not written.
func writeResponse(w http.ResponseWriter, res *runtime.Response) error {
	header := w.Header()
	for name, values := range res.Header {
		for _, value := range values {
			header.Add(name, value)
		}
	}

	statusCode := res.StatusCode
	if statusCode == 0 {
		statusCode = http.StatusOK
	}

	w.WriteHeader(statusCode)

	if res.Body == nil {
		return nil
	}

	if closer, ok := res.Body.(io.Closer); ok {
		defer closer.Close()
	}

	flusher, _ := w.(http.Flusher)

	buf := make([]byte, copyBufferSize)
	for {
		n, err := res.Body.Read(buf)
		if n > 0 {
			if _, werr := w.Write(buf[:n]); werr != nil {
				return werr
			}
			if flusher != nil {
				flusher.Flush()
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
