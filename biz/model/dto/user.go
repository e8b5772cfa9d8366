package dto

type RegisterReq struct {
	Username         string `json:"username" validate:"required,max=64"`
	Password         string `json:"password" validate:"required,max=72"`
	OrganizationName string `json:"organizationName" validate:"required,max=128"`
}

type RegisterResp struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

type LoginReq struct {
	Username string `json:"username" validate:"max=64"`
	Password string `json:"password" validate:"max=72"`
}

type LoginResp struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
}

type GetUserInfoReq struct{}

type GetUserInfoResp struct {
	UserID           string `json:"id"`
	Username         string `json:"username"`
	OrganizationName string `json:"organizationName"`
	CreatedAt        int64  `json:"createdAt"`
}
