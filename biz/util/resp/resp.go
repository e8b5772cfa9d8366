package resp

import (
	"net/http"

	"contact_book/be/biz/model/dto"
	"contact_book/be/biz/model/errs"

	"github.com/cloudwego/hertz/pkg/app"
)

func errBody(bizErr errs.Error) *dto.CommonResp {
	return &dto.CommonResp{
		Success: false,
		Code:    int(bizErr.Code()),
		Message: bizErr.Msg(),
	}
}

// SuccessResp writes data as the bare response body.
func SuccessResp(c *app.RequestContext, status int, data any) {
	c.JSON(status, data)
}

func NoContent(c *app.RequestContext) {
	c.SetStatusCode(http.StatusNoContent)
}

func FailResp(c *app.RequestContext, bizErr errs.Error) {
	if bizErr == nil {
		bizErr = errs.ServerError
	}
	c.JSON(bizErr.HTTPStatus(), errBody(bizErr))
}

func AbortWithErr(c *app.RequestContext, bizErr errs.Error) {
	if bizErr == nil {
		bizErr = errs.ServerError
	}
	c.AbortWithStatusJSON(bizErr.HTTPStatus(), errBody(bizErr))
}
