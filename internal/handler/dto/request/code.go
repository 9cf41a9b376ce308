package request

type CheckCodeRequest struct {
	Code string `json:"code"`
}

type AddCodeRequest struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
