package handler

import (
	"context"
	"net/http"

	"contact_book/be/biz/middleware/jwt"
	"contact_book/be/biz/model/dto"
	"contact_book/be/biz/model/errs"
	"contact_book/be/biz/service/user"
	"contact_book/be/biz/util/resp"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// Register 用户注册接口
//
//	@Tags			user
//	@Summary		用户注册接口
//	@Description	Create an account. The username must be unused.
//	@Accept			json
//	@Produce		json
//	@Param			req	body		dto.RegisterReq	true	"register request body"
//	@Success		201	{object}	dto.RegisterResp
//	@Failure		400	{object}	dto.CommonResp
//	@Failure		409	{object}	dto.CommonResp
//	@Router			/api/user/register [POST]
func Register(ctx context.Context, c *app.RequestContext) {
	var req dto.RegisterReq
	if err := c.BindAndValidate(&req); err != nil {
		hlog.CtxNoticef(ctx, "BindAndValidate err: %v", err)
		resp.AbortWithErr(c, errs.ParamError.SetMsg(err.Error()))
		return
	}

	u, bizErr := user.NewDefault().Register(ctx, req.Username, req.Password, req.OrganizationName)
	if bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}

	resp.SuccessResp(c, http.StatusCreated, dto.RegisterResp{
		Message: "User registered successfully",
		UserID:  u.UserID,
	})
}

// Login 用户登录接口
//
//	@Tags			user
//	@Summary		用户登录接口
//	@Description	Exchange credentials for a bearer token.
//	@Accept			json
//	@Produce		json
//	@Param			req	body		dto.LoginReq	true	"login request body"
//	@Success		200	{object}	dto.LoginResp
//	@Failure		400	{object}	dto.CommonResp
//	@Failure		401	{object}	dto.CommonResp
//	@Router			/api/user/login [POST]
func Login(ctx context.Context, c *app.RequestContext) {
	var req dto.LoginReq
	if err := c.BindAndValidate(&req); err != nil {
		hlog.CtxNoticef(ctx, "BindAndValidate err: %v", err)
		resp.AbortWithErr(c, errs.ParamError.SetMsg(err.Error()))
		return
	}

	token, bizErr := user.NewDefault().Login(ctx, req.Username, req.Password)
	if bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}

	resp.SuccessResp(c, http.StatusOK, dto.LoginResp{
		Token:     token.Token,
		ExpiresAt: token.ExpiresAt.Unix(),
	})
}

// Logout 用户登出接口
//
//	@Tags			user
//	@Summary		用户登出接口
//	@Description	Revoke the presented token.
//	@Produce		json
//	@Param			Authorization	header	string	true	"Bearer token"
//	@Success		204
//	@Failure		401	{object}	dto.CommonResp
//	@Router			/api/user/logout [POST]
func Logout(ctx context.Context, c *app.RequestContext) {
	if bizErr := user.NewDefault().Logout(ctx, jwt.GetIdentity(ctx)); bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}
	hlog.CtxInfof(ctx, "Logout success")
	resp.NoContent(c)
}

// GetUserInfo 获取用户信息接口
//
//	@Tags			user
//	@Summary		获取用户信息接口
//	@Produce		json
//	@Param			Authorization	header		string	true	"Bearer token"
//	@Success		200				{object}	dto.GetUserInfoResp
//	@Failure		401				{object}	dto.CommonResp
//	@Router			/api/user/info [GET]
func GetUserInfo(ctx context.Context, c *app.RequestContext) {
	var req dto.GetUserInfoReq
	if err := c.BindAndValidate(&req); err != nil {
		hlog.CtxNoticef(ctx, "BindAndValidate err: %v", err)
		resp.AbortWithErr(c, errs.ParamError)
		return
	}

	identity := jwt.GetIdentity(ctx)
	if identity == nil {
		resp.FailResp(c, errs.Unauthorized)
		return
	}

	u, bizErr := user.NewDefault().GetByUserID(ctx, identity.UserID)
	if bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}

	resp.SuccessResp(c, http.StatusOK, dto.GetUserInfoResp{
		UserID:           u.UserID,
		Username:         u.Username,
		OrganizationName: u.OrganizationName,
		CreatedAt:        u.CreatedAt.Unix(),
	})
}
