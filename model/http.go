package model

type RenderRequestBody struct {
	Path string `json:"path"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Success bool   `json:"success"`
}
