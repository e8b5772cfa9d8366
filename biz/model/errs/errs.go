package errs

import (
	"fmt"
	"net/http"
)

type Error interface {
	Error() string
	Code() int32
	Msg() string
	HTTPStatus() int
	SetErr(err error) Error
	SetMsg(msg string) Error
}

type bizError struct {
	code   int32
	status int
	msg    string
}

func (bizErr *bizError) Error() string {
	return fmt.Sprintf("%d:%s", bizErr.code, bizErr.msg)
}

func (bizErr *bizError) Code() int32 {
	return bizErr.code
}

func (bizErr *bizError) Msg() string {
	return bizErr.msg
}

func (bizErr *bizError) HTTPStatus() int {
	return bizErr.status
}

func (bizErr *bizError) SetErr(err error) Error {
	return New(bizErr.code, bizErr.status, err.Error())
}

func (bizErr *bizError) SetMsg(msg string) Error {
	return New(bizErr.code, bizErr.status, msg)
}

func New(code int32, status int, msg string) Error {
	return &bizError{
		code:   code,
		status: status,
		msg:    msg,
	}
}

func ErrorEqual(err1, err2 Error) bool {
	// 都为空
	if err1 == nil && err2 == nil {
		return true
	}

	// 只有一个不为空
	if err1 == nil || err2 == nil {
		return false
	}

	// 都不为空
	return err1.Code() == err2.Code()
}

var (
	ServerError  = New(1_0001, http.StatusInternalServerError, "internal server error")
	ParamError   = New(1_0002, http.StatusBadRequest, "param error")
	Unauthorized = New(1_0003, http.StatusUnauthorized, "Unauthorized")

	// unknown user and wrong password share one error on purpose
	InvalidCredentials = New(2_0001, http.StatusUnauthorized, "Invalid username or password")
	UsernameDuplicated = New(2_0003, http.StatusConflict, "User already exists")

	ContactNotFound = New(3_0001, http.StatusNotFound, "Contact not found")
)
