package accesslog

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/hertz-contrib/logger/accesslog"
)

const format = "${status} ${latency} ${method} ${path} ${queryParams} ${ip}"

func New() app.HandlerFunc {
	return newWithLogFunc(hlog.CtxInfof)
}

// request bodies are never logged, they carry passwords
func newWithLogFunc(logFunc func(ctx context.Context, format string, v ...interface{})) app.HandlerFunc {
	return accesslog.New(
		accesslog.WithAccessLogFunc(logFunc),
		accesslog.WithFormat(format),
	)
}
