package restyutil

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	DefaultTimeout = time.Second * 15
)

func GetWithCtx(ctx context.Context, url string) (*resty.Response, error) {
	return resty.New().SetTimeout(DefaultTimeout).R().SetContext(ctx).Get(url)
}
