package handler

import (
	"context"
	"net/http"

	"contact_book/be/biz/middleware/jwt"
	"contact_book/be/biz/model/convert"
	"contact_book/be/biz/model/dto"
	"contact_book/be/biz/model/errs"
	"contact_book/be/biz/service/contact"
	"contact_book/be/biz/util/resp"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// CreateContact 新建联系人
//
//	@Tags			contact
//	@Summary		新建联系人
//	@Accept			json
//	@Produce		json
//	@Param			Authorization	header		string					true	"Bearer token"
//	@Param			req				body		dto.CreateContactReq	true	"contact"
//	@Success		201				{object}	dto.ContactResp
//	@Failure		400				{object}	dto.CommonResp
//	@Failure		401				{object}	dto.CommonResp
//	@Router			/api/user/contacts [POST]
func CreateContact(ctx context.Context, c *app.RequestContext) {
	identity := jwt.GetIdentity(ctx)
	if identity == nil {
		resp.FailResp(c, errs.Unauthorized)
		return
	}

	var req dto.CreateContactReq
	if err := c.BindAndValidate(&req); err != nil {
		hlog.CtxNoticef(ctx, "BindAndValidate err: %v", err)
		resp.AbortWithErr(c, errs.ParamError.SetMsg(err.Error()))
		return
	}

	created, bizErr := contact.NewDefault().Create(ctx, identity.UserID, convert.ContactReqToDomain(&req))
	if bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}

	resp.SuccessResp(c, http.StatusCreated, convert.ContactDomainToResp(created))
}

// ListContacts 联系人列表
//
//	@Tags			contact
//	@Summary		联系人列表
//	@Produce		json
//	@Param			Authorization	header		string	true	"Bearer token"
//	@Success		200				{array}		dto.ContactResp
//	@Failure		401				{object}	dto.CommonResp
//	@Router			/api/user/contacts [GET]
func ListContacts(ctx context.Context, c *app.RequestContext) {
	identity := jwt.GetIdentity(ctx)
	if identity == nil {
		resp.FailResp(c, errs.Unauthorized)
		return
	}

	list, bizErr := contact.NewDefault().List(ctx, identity.UserID)
	if bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}

	resp.SuccessResp(c, http.StatusOK, convert.ContactsDomainToResp(list))
}

// UpdateContact 更新联系人
//
//	@Tags			contact
//	@Summary		更新联系人
//	@Description	Only the submitted fields change.
//	@Accept			json
//	@Produce		json
//	@Param			Authorization	header		string					true	"Bearer token"
//	@Param			id				path		string					true	"contact id"
//	@Param			req				body		dto.UpdateContactReq	true	"fields to change"
//	@Success		200				{object}	dto.ContactResp
//	@Failure		400				{object}	dto.CommonResp
//	@Failure		404				{object}	dto.CommonResp
//	@Router			/api/user/contacts/{id} [PUT]
func UpdateContact(ctx context.Context, c *app.RequestContext) {
	identity := jwt.GetIdentity(ctx)
	if identity == nil {
		resp.FailResp(c, errs.Unauthorized)
		return
	}

	var req dto.UpdateContactReq
	if err := c.BindAndValidate(&req); err != nil {
		hlog.CtxNoticef(ctx, "BindAndValidate err: %v", err)
		resp.AbortWithErr(c, errs.ParamError.SetMsg(err.Error()))
		return
	}

	updated, bizErr := contact.NewDefault().Update(ctx, identity.UserID, c.Param("id"), convert.ContactPatchFromReq(&req))
	if bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}

	resp.SuccessResp(c, http.StatusOK, convert.ContactDomainToResp(updated))
}

// DeleteContact 删除联系人
//
//	@Tags			contact
//	@Summary		删除联系人
//	@Param			Authorization	header	string	true	"Bearer token"
//	@Param			id				path	string	true	"contact id"
//	@Success		204
//	@Failure		404	{object}	dto.CommonResp
//	@Router			/api/user/contacts/{id} [DELETE]
func DeleteContact(ctx context.Context, c *app.RequestContext) {
	identity := jwt.GetIdentity(ctx)
	if identity == nil {
		resp.FailResp(c, errs.Unauthorized)
		return
	}

	if bizErr := contact.NewDefault().Delete(ctx, identity.UserID, c.Param("id")); bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}

	resp.NoContent(c)
}
