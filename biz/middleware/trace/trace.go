package trace

import (
	"context"

	"contact_book/be/biz/util/id_gen"
	"contact_book/be/biz/util/trace_info"

	"github.com/cloudwego/hertz/pkg/app"
)

const (
	headerKeyLogId = "X-Log-ID"
)

// New puts the caller's X-Log-ID, or a fresh one, on the context and echoes it
// back so log lines of one request can be found together.
func New() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		logID := string(c.Request.Header.Peek(headerKeyLogId))
		if logID == "" {
			logID = id_gen.NewID()
		}
		ctx = trace_info.WithLogId(ctx, logID)
		c.Header(headerKeyLogId, logID)
		c.Next(ctx)
	}
}
