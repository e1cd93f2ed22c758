package dispatch

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/dalemusser/tendadmin/internal/app/system/envelope"
)

// HandleAPIGateway serves an API Gateway proxy event. It never returns an
// error: failures are reported in the response envelope so the gateway
// always receives a JSON body.
func (d *Dispatcher[S]) HandleAPIGateway(ctx context.Context, ev events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	resp := d.Dispatch(ctx, envelope.Request{
		Method:          ev.HTTPMethod,
		Path:            ev.Path,
		PathParameters:  ev.PathParameters,
		QueryParameters: ev.QueryStringParameters,
		Body:            ev.Body,
	})
	return events.APIGatewayProxyResponse{
		StatusCode: resp.StatusCode,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       resp.Body,
	}, nil
}
