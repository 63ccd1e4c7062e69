package common

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error string `json:"error" example:"File not found"`
}

// HealthResponse represents the health check payload
type HealthResponse struct {
	Status      string                 `json:"status"`
	Environment string                 `json:"environment"`
	LLMProvider string                 `json:"llm_provider"`
	Model       string                 `json:"model"`
	Storage     map[string]interface{} `json:"storage,omitempty"`
}
