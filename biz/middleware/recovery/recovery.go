package recovery

import (
	"context"

	"contact_book/be/biz/model/errs"
	"contact_book/be/biz/util/resp"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/middlewares/server/recovery"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// New turns a panic in any handler into a 500 with the common error body.
func New() app.HandlerFunc {
	return recovery.Recovery(recovery.WithRecoveryHandler(
		func(ctx context.Context, c *app.RequestContext, err interface{}, stack []byte) {
			hlog.CtxErrorf(ctx, "[Recovery] panic recovered: %v\n%s", err, stack)
			resp.AbortWithErr(c, errs.ServerError)
		},
	))
}
