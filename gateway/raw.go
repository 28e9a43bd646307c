package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-lambda-go/events"

	"github.com/shininglovestar/remix/gateway/schema"
	"github.com/shininglovestar/remix/runtime"
)

// RawHandlerFunc handles a gateway event delivered as its raw JSON
// payload.
type RawHandlerFunc func(ctx context.Context, payload json.RawMessage) (events.APIGatewayV2HTTPResponse, error)

// NewRawHandler creates a handler that decodes raw event payloads
// before dispatching to the typed handler. When event validation is
// enabled, the raw payload is first validated against the gateway
// event schema; a malformed event fails the invocation instead of
// surfacing as a half-translated request.
func NewRawHandler(build *runtime.Build, opts ...Option) (RawHandlerFunc, error) {
	o := newOptions(build, opts...)

	var eventSchema *schema.Schema
	if o.validate {
		s, err := schema.NewEventSchema()
		if err != nil {
			return nil, fmt.Errorf("load event schema: %w", err)
		}
		eventSchema = s
	}

	handler := NewHandler(build, opts...)

	return func(ctx context.Context, payload json.RawMessage) (events.APIGatewayV2HTTPResponse, error) {
		if eventSchema != nil {
			if err := eventSchema.Validate(payload); err != nil {
				return events.APIGatewayV2HTTPResponse{}, err
			}
		}

		var event events.APIGatewayV2HTTPRequest
		if err := json.Unmarshal(payload, &event); err != nil {
			return events.APIGatewayV2HTTPResponse{}, fmt.Errorf("decode event: %w", err)
		}

		return handler(ctx, event)
	}, nil
}
