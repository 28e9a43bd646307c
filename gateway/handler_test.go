package gateway

import (
	"context"
	"encoding/base64"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/shininglovestar/remix/runtime"
)

// --- Mock handler ---
type MockHandler struct {
	mock.Mock
}

func (m *MockHandler) Handle(ctx context.Context, r *http.Request, loadContext any) (*runtime.Response, error) {
	args := m.Called(ctx, r, loadContext)
	return args.Get(0).(*runtime.Response), args.Error(1)
}

func newEvent(headers map[string]string, rawPath, rawQuery string) events.APIGatewayV2HTTPRequest {
	return events.APIGatewayV2HTTPRequest{
		RawPath:        rawPath,
		RawQueryString: rawQuery,
		Headers:        headers,
		RequestContext: events.APIGatewayV2HTTPRequestContext{
			HTTP: events.APIGatewayV2HTTPRequestContextHTTPDescription{
				Method: http.MethodGet,
				Path:   rawPath,
			},
		},
	}
}

func emptyResponse() *runtime.Response {
	return &runtime.Response{StatusCode: http.StatusOK, Header: http.Header{}}
}

// captureBuild returns a build whose handler records the standard
// request it was invoked with.
func captureBuild(captured **http.Request, res *runtime.Response) *runtime.Build {
	return &runtime.Build{
		Handler: runtime.HandlerFunc(func(ctx context.Context, r *http.Request, loadContext any) (*runtime.Response, error) {
			*captured = r
			if res == nil {
				return emptyResponse(), nil
			}
			return res, nil
		}),
	}
}

func TestHandler_BuildsURLFromForwardedHost(t *testing.T) {
	var captured *http.Request

	handler := NewHandler(captureBuild(&captured, nil))

	event := newEvent(map[string]string{
		"x-forwarded-host": "example.com",
		"host":             "internal.example.net",
	}, "/foo", "x=1")

	_, err := handler(context.Background(), event)
	require.NoError(t, err)

	require.NotNil(t, captured)
	assert.Equal(t, "https://example.com/foo?x=1", captured.URL.String())
}

func TestHandler_BuildsPlainURLInSandbox(t *testing.T) {
	var captured *http.Request

	handler := NewHandler(captureBuild(&captured, nil), WithSandbox(true))

	event := newEvent(map[string]string{"host": "localhost:3333"}, "/foo", "x=1")

	_, err := handler(context.Background(), event)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:3333/foo?x=1", captured.URL.String())
}

func TestHandler_FallsBackToHostHeader(t *testing.T) {
	var captured *http.Request

	handler := NewHandler(captureBuild(&captured, nil))

	event := newEvent(map[string]string{"Host": "example.org"}, "/", "")

	_, err := handler(context.Background(), event)
	require.NoError(t, err)

	assert.Equal(t, "https://example.org/", captured.URL.String())
}

func TestHandler_MergesCookieListIntoHeader(t *testing.T) {
	var captured *http.Request

	handler := NewHandler(captureBuild(&captured, nil))

	event := newEvent(map[string]string{"host": "example.com"}, "/", "")
	event.Cookies = []string{"session=abc", "theme=dark"}

	_, err := handler(context.Background(), event)
	require.NoError(t, err)

	assert.Equal(t, "session=abc; theme=dark", captured.Header.Get("Cookie"))

	// both cookies survive the merge
	cookies := captured.Cookies()
	require.Len(t, cookies, 2)
	assert.Equal(t, "session", cookies[0].Name)
	assert.Equal(t, "theme", cookies[1].Name)
}

func TestHandler_DecodesBase64MultipartBody(t *testing.T) {
	var captured *http.Request

	handler := NewHandler(captureBuild(&captured, nil))

	raw := []byte("--x\r\nContent-Disposition: form-data; name=\"f\"\r\n\r\n\x00\x01\x02\r\n--x--\r\n")

	event := newEvent(map[string]string{
		"host":         "example.com",
		"content-type": "multipart/form-data; boundary=x",
	}, "/upload", "")
	event.RequestContext.HTTP.Method = http.MethodPost
	event.Body = base64.StdEncoding.EncodeToString(raw)
	event.IsBase64Encoded = true

	_, err := handler(context.Background(), event)
	require.NoError(t, err)

	body, err := io.ReadAll(captured.Body)
	require.NoError(t, err)
	assert.Equal(t, raw, body)
}

func TestHandler_PassesPlainBodyThrough(t *testing.T) {
	var captured *http.Request

	handler := NewHandler(captureBuild(&captured, nil))

	event := newEvent(map[string]string{"host": "example.com"}, "/submit", "")
	event.RequestContext.HTTP.Method = http.MethodPost
	event.Body = `{"hello":"world"}`

	_, err := handler(context.Background(), event)
	require.NoError(t, err)

	body, err := io.ReadAll(captured.Body)
	require.NoError(t, err)
	assert.Equal(t, `{"hello":"world"}`, string(body))
}

func TestHandler_RejectsMalformedBase64Body(t *testing.T) {
	handler := NewHandler(&runtime.Build{
		Handler: runtime.HandlerFunc(func(context.Context, *http.Request, any) (*runtime.Response, error) {
			t.Fatal("handler must not be invoked")
			return nil, nil
		}),
	})

	event := newEvent(map[string]string{"host": "example.com"}, "/", "")
	event.Body = "not&base64"
	event.IsBase64Encoded = true

	_, err := handler(context.Background(), event)
	assert.Error(t, err)
}

func TestHandler_ExtractsSetCookiesOutOfBand(t *testing.T) {
	res := &runtime.Response{
		StatusCode: http.StatusOK,
		Header: http.Header{
			"Set-Cookie":   {"a=1; Path=/", "b=2; HttpOnly"},
			"Content-Type": {"text/html"},
		},
		Body: strings.NewReader("<html></html>"),
	}

	var captured *http.Request
	handler := NewHandler(captureBuild(&captured, res))

	out, err := handler(context.Background(), newEvent(map[string]string{"host": "example.com"}, "/", ""))
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"a=1; Path=/", "b=2; HttpOnly"}, out.Cookies)

	for name := range out.Headers {
		assert.NotEqual(t, "set-cookie", strings.ToLower(name))
	}
}

func TestHandler_Base64EncodesBinaryBody(t *testing.T) {
	payload := []byte{0x89, 0x50, 0x4e, 0x47, 0x00}

	res := &runtime.Response{
		StatusCode: http.StatusOK,
		Header:     http.Header{"Content-Type": {"image/png"}},
		Body:       strings.NewReader(string(payload)),
	}

	var captured *http.Request
	handler := NewHandler(captureBuild(&captured, res))

	out, err := handler(context.Background(), newEvent(map[string]string{"host": "example.com"}, "/logo.png", ""))
	require.NoError(t, err)

	assert.True(t, out.IsBase64Encoded)

	decoded, err := base64.StdEncoding.DecodeString(out.Body)
	require.NoError(t, err)
	assert.Equal(t, payload, decoded)
}

func TestHandler_ReturnsTextBodyVerbatim(t *testing.T) {
	res := &runtime.Response{
		StatusCode: http.StatusOK,
		Header:     http.Header{"Content-Type": {"text/html; charset=utf-8"}},
		Body:       strings.NewReader("<html></html>"),
	}

	var captured *http.Request
	handler := NewHandler(captureBuild(&captured, res))

	out, err := handler(context.Background(), newEvent(map[string]string{"host": "example.com"}, "/", ""))
	require.NoError(t, err)

	assert.False(t, out.IsBase64Encoded)
	assert.Equal(t, "<html></html>", out.Body)
}

func TestHandler_DefaultsStatusCode(t *testing.T) {
	res := &runtime.Response{Header: http.Header{}}

	var captured *http.Request
	handler := NewHandler(captureBuild(&captured, res))

	out, err := handler(context.Background(), newEvent(map[string]string{"host": "example.com"}, "/", ""))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, out.StatusCode)
}

func TestHandler_InvokesHandlerOnceWithLoadContext(t *testing.T) {
	mockHandler := new(MockHandler)

	type appContext struct{ Region string }

	mockHandler.On("Handle", mock.Anything, mock.Anything, appContext{Region: "eu-west-1"}).
		Return(emptyResponse(), nil).
		Once()

	handler := NewHandler(
		&runtime.Build{Handler: mockHandler},
		WithLoadContext(func(ctx context.Context, event events.APIGatewayV2HTTPRequest) any {
			return appContext{Region: "eu-west-1"}
		}),
	)

	_, err := handler(context.Background(), newEvent(map[string]string{"host": "example.com"}, "/", ""))
	require.NoError(t, err)

	mockHandler.AssertExpectations(t)
}

func TestHandler_PropagatesHandlerError(t *testing.T) {
	mockHandler := new(MockHandler)
	mockHandler.On("Handle", mock.Anything, mock.Anything, mock.Anything).
		Return((*runtime.Response)(nil), assert.AnError)

	handler := NewHandler(&runtime.Build{Handler: mockHandler})

	_, err := handler(context.Background(), newEvent(map[string]string{"host": "example.com"}, "/", ""))
	assert.ErrorIs(t, err, assert.AnError)
}
