// Package trace_info carries per-request values that log lines pick up.
package trace_info

import (
	"context"
)

type logIdKey struct{}

// WithLogId returns ctx carrying logId. An empty logId leaves ctx unchanged.
func WithLogId(ctx context.Context, logId string) context.Context {
	if logId == "" {
		return ctx
	}
	return context.WithValue(ctx, logIdKey{}, logId)
}

func GetLogId(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	logId, _ := ctx.Value(logIdKey{}).(string)
	return logId
}
