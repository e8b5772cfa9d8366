package logger

import (
	"context"
	"fmt"
	"io"

	"contact_book/be/biz/util/trace_info"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/sirupsen/logrus"
)

// Init routes hlog through logrus, writing JSON lines to the rotated file.
func Init() {
	hlog.SetLogger(newLogger(newOutput(), newLevel()))
}

// hertzLogger adapts a logrus.Logger to hlog.FullLogger. Context calls carry
// the request log id.
type hertzLogger struct {
	l *logrus.Logger
}

var _ hlog.FullLogger = (*hertzLogger)(nil)

func newLogger(out io.Writer, level hlog.Level) *hertzLogger {
	l := logrus.New()
	l.SetFormatter(&logrus.JSONFormatter{TimestampFormat: "2006-01-02 15:04:05.000"})
	l.SetOutput(out)
	l.SetLevel(toLogrusLevel(level))
	return &hertzLogger{l: l}
}

func toLogrusLevel(level hlog.Level) logrus.Level {
	switch level {
	case hlog.LevelTrace:
		return logrus.TraceLevel
	case hlog.LevelDebug:
		return logrus.DebugLevel
	case hlog.LevelInfo, hlog.LevelNotice:
		return logrus.InfoLevel
	case hlog.LevelWarn:
		return logrus.WarnLevel
	case hlog.LevelError:
		return logrus.ErrorLevel
	case hlog.LevelFatal:
		return logrus.FatalLevel
	}
	return logrus.InfoLevel
}

func (h *hertzLogger) entry(ctx context.Context) *logrus.Entry {
	e := logrus.NewEntry(h.l)
	if logID := trace_info.GetLogId(ctx); logID != "" {
		e = e.WithField("log_id", logID)
	}
	return e.WithContext(ctx)
}

func (h *hertzLogger) log(ctx context.Context, level hlog.Level, msg string) {
	e := h.entry(ctx)
	if level == hlog.LevelNotice {
		e = e.WithField("notice", true)
	}
	e.Log(toLogrusLevel(level), msg)
	if level == hlog.LevelFatal {
		h.l.Exit(1)
	}
}

func (h *hertzLogger) Trace(v ...interface{}) {
	h.log(context.Background(), hlog.LevelTrace, fmt.Sprint(v...))
}
func (h *hertzLogger) Debug(v ...interface{}) {
	h.log(context.Background(), hlog.LevelDebug, fmt.Sprint(v...))
}
func (h *hertzLogger) Info(v ...interface{}) {
	h.log(context.Background(), hlog.LevelInfo, fmt.Sprint(v...))
}
func (h *hertzLogger) Notice(v ...interface{}) {
	h.log(context.Background(), hlog.LevelNotice, fmt.Sprint(v...))
}
func (h *hertzLogger) Warn(v ...interface{}) {
	h.log(context.Background(), hlog.LevelWarn, fmt.Sprint(v...))
}
func (h *hertzLogger) Error(v ...interface{}) {
	h.log(context.Background(), hlog.LevelError, fmt.Sprint(v...))
}
func (h *hertzLogger) Fatal(v ...interface{}) {
	h.log(context.Background(), hlog.LevelFatal, fmt.Sprint(v...))
}

func (h *hertzLogger) Tracef(format string, v ...interface{}) {
	h.log(context.Background(), hlog.LevelTrace, fmt.Sprintf(format, v...))
}

func (h *hertzLogger) Debugf(format string, v ...interface{}) {
	h.log(context.Background(), hlog.LevelDebug, fmt.Sprintf(format, v...))
}

func (h *hertzLogger) Infof(format string, v ...interface{}) {
	h.log(context.Background(), hlog.LevelInfo, fmt.Sprintf(format, v...))
}

func (h *hertzLogger) Noticef(format string, v ...interface{}) {
	h.log(context.Background(), hlog.LevelNotice, fmt.Sprintf(format, v...))
}

func (h *hertzLogger) Warnf(format string, v ...interface{}) {
	h.log(context.Background(), hlog.LevelWarn, fmt.Sprintf(format, v...))
}

func (h *hertzLogger) Errorf(format string, v ...interface{}) {
	h.log(context.Background(), hlog.LevelError, fmt.Sprintf(format, v...))
}

func (h *hertzLogger) Fatalf(format string, v ...interface{}) {
	h.log(context.Background(), hlog.LevelFatal, fmt.Sprintf(format, v...))
}

func (h *hertzLogger) CtxTracef(ctx context.Context, format string, v ...interface{}) {
	h.log(ctx, hlog.LevelTrace, fmt.Sprintf(format, v...))
}

func (h *hertzLogger) CtxDebugf(ctx context.Context, format string, v ...interface{}) {
	h.log(ctx, hlog.LevelDebug, fmt.Sprintf(format, v...))
}

func (h *hertzLogger) CtxInfof(ctx context.Context, format string, v ...interface{}) {
	h.log(ctx, hlog.LevelInfo, fmt.Sprintf(format, v...))
}

func (h *hertzLogger) CtxNoticef(ctx context.Context, format string, v ...interface{}) {
	h.log(ctx, hlog.LevelNotice, fmt.Sprintf(format, v...))
}

func (h *hertzLogger) CtxWarnf(ctx context.Context, format string, v ...interface{}) {
	h.log(ctx, hlog.LevelWarn, fmt.Sprintf(format, v...))
}

func (h *hertzLogger) CtxErrorf(ctx context.Context, format string, v ...interface{}) {
	h.log(ctx, hlog.LevelError, fmt.Sprintf(format, v...))
}

func (h *hertzLogger) CtxFatalf(ctx context.Context, format string, v ...interface{}) {
	h.log(ctx, hlog.LevelFatal, fmt.Sprintf(format, v...))
}

func (h *hertzLogger) SetLevel(level hlog.Level) {
	h.l.SetLevel(toLogrusLevel(level))
}

func (h *hertzLogger) SetOutput(w io.Writer) {
	h.l.SetOutput(w)
}
