package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient wraps resty.Client. Embedding exposes the full resty API
// while leaving room for application-specific behaviour.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent HTTPClient with a
// default-configured underlying resty.Client.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}
