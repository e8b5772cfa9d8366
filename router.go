package be

import (
	"contact_book/be/biz/config"
	"contact_book/be/biz/handler"
	"contact_book/be/biz/middleware"
	"contact_book/be/biz/middleware/jwt"
	"contact_book/be/biz/service/session"
	"contact_book/be/biz/util/validate"
	_ "contact_book/be/docs"

	"github.com/cloudwego/hertz/pkg/app/server"
	hertzconfig "github.com/cloudwego/hertz/pkg/common/config"
	"github.com/hertz-contrib/swagger"
	swaggerFiles "github.com/swaggo/files"
)

// NewEngine builds the HTTP server with every route mounted. Config, storage
// and the token registry must be initialised first.
func NewEngine(opts ...hertzconfig.Option) *server.Hertz {
	serverConf := config.GetServerConf()
	addr := serverConf.Addr
	if addr == "" {
		addr = ":8080"
	}

	opts = append([]hertzconfig.Option{
		server.WithHostPorts(addr),
		server.WithCustomValidatorFunc(validate.New().ValidateRequest),
	}, opts...)
	h := server.New(opts...)
	h.Use(middleware.Suite()...)

	register(h, serverConf)
	return h
}

func register(h *server.Hertz, serverConf config.ServerConf) {
	auth := jwt.ValidateMW(session.NewDefault())

	userGroup := h.Group("/api/user")
	userGroup.POST("/register", handler.Register)
	userGroup.POST("/login", handler.Login)
	userGroup.GET("/info", auth, handler.GetUserInfo)
	userGroup.POST("/logout", auth, handler.Logout)

	contactGroup := userGroup.Group("/contacts", auth)
	contactGroup.POST("", handler.CreateContact)
	contactGroup.GET("", handler.ListContacts)
	contactGroup.PUT("/:id", handler.UpdateContact)
	contactGroup.DELETE("/:id", handler.DeleteContact)

	if serverConf.EnableSwagger {
		h.GET("/swagger/*any", swagger.WrapHandler(swaggerFiles.Handler))
	}
}
