package handlers

type ErrorDetail struct {
	Message string `json:"message"`
}

// ErrorEnvelope is the body of every error response.
type ErrorEnvelope struct {
	Error ErrorDetail `json:"error"`
}

type HealthResponse struct {
	Status      string `json:"status"`
	Timestamp   string `json:"timestamp"`
	Environment string `json:"environment"`
}

type Endpoints struct {
	Weather string `json:"weather"`
	Health  string `json:"health"`
}

type IndexResponse struct {
	Message   string    `json:"message"`
	Endpoints Endpoints `json:"endpoints"`
}
