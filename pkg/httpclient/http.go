package httpclient

import (
	"context"
)

type BaseResponse struct {
	StatusCode int
	Body       []byte
}

type HTTPClient interface {
	Post(ctx context.Context, endpoint string, body interface{}, headers map[string]string) (*BaseResponse, error)
}
