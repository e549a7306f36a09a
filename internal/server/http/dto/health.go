package dto

// HealthResponse reports service readiness.
type HealthResponse struct {
	Status string `json:"status"`
}

const (
	StatusOK          = "ok"
	StatusUnavailable = "unavailable"
)
