package dto

type TaskListResponse struct {
	Success bool           `json:"success"`
	Data    []TaskResponse `json:"data"`
}

type TaskEnvelope struct {
	Success bool         `json:"success"`
	Data    TaskResponse `json:"data"`
	Message string       `json:"message"`
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// BareErrorResponse is used by the endpoints whose failure body carries only
// the error text.
type BareErrorResponse struct {
	Error string `json:"error"`
}

type APIInfoResponse struct {
	Message   string   `json:"message"`
	Endpoints []string `json:"endpoints"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Port    int    `json:"port"`
}
