package dto

// CommonResp is the body of every failed request.
type CommonResp struct {
	Success bool   `json:"success"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}
