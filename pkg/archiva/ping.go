package archiva

import (
	"context"
	"net/http"
	"strings"

	"github.com/pkg/errors"

	"github.com/xompass/archctl/pkg/util/restyutil"
)

const pingPath = "/restServices/archivaServices/pingService/ping"

// Ping probes the unauthenticated ping service of the instance at
// host. Useful to tell connectivity problems from credential ones.
func Ping(ctx context.Context, host string) error {
	resp, err := restyutil.GetWithCtx(ctx, strings.TrimSuffix(host, "/")+pingPath)
	if err != nil {
		return errors.Wrap(err, "ping request failed")
	}
	if resp.StatusCode() != http.StatusOK {
		return &ErrorResponse{StatusCode: resp.StatusCode()}
	}
	return nil
}
