package api

import "fmt"

type GenerateRequest struct {
	Template string `json:"template"`
	Input    string `json:"input"`
}

type GenerateResponse struct {
	Code  string `json:"code"`
	Error string `json:"error,omitempty"`
}

type GeneratorInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type ListGeneratorsResponse struct {
	Generators []GeneratorInfo `json:"generators"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// errorBody is the shape of every non-2xx response from the generator service
type errorBody struct {
	Error string `json:"error"`
}

// Error is returned when the generator service answers but rejects the call.
// Message holds the service's own explanation and may be empty.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("generator service returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("generator service returned status %d: %s", e.StatusCode, e.Message)
}
