package http

// APIResponse represents standard API error envelope. Successful list
// endpoints return bare JSON arrays; this envelope is for errors only.
type APIResponse struct {
	Status  int         `json:"status" example:"500"`
	Message string      `json:"message" example:"Internal Server Error"`
	Data    interface{} `json:"data,omitempty"`
}

// ValidationError represents validation error detail.
type ValidationError struct {
	Code    string                 `json:"code,omitempty" example:"ERR_REQUIRED"`
	Field   string                 `json:"field,omitempty" example:"limit"`
	Message string                 `json:"message,omitempty" example:"limit must be at least 1"`
	Params  map[string]interface{} `json:"params,omitempty"`
}
