package middleware

import (
	"contact_book/be/biz/middleware/accesslog"
	"contact_book/be/biz/middleware/cors"
	"contact_book/be/biz/middleware/recovery"
	"contact_book/be/biz/middleware/trace"

	"github.com/cloudwego/hertz/pkg/app"
)

func Suite() []app.HandlerFunc {
	return []app.HandlerFunc{
		recovery.New(),  // panic handler
		trace.New(),     // 链路ID
		accesslog.New(), // 接口日志
		cors.New(),      // 跨域请求
	}
}
