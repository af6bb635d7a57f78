//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=profile_test
package profile

import (
	"context"
	"net/http"
)

type httpClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}
