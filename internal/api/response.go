package api

import (
	"encoding/json"
	"net/http"

	"github.com/nais/person-gateway/internal/person"
	"github.com/sirupsen/logrus"
)

const (
	msgPersonCreated   = "Person created successfully"
	msgNotFound        = "Endpoint not found"
	msgSeeDocs         = "Please check the API documentation at /"
	msgInternalError   = "Internal server error"
	statusHealthy      = "healthy"
	statusUnhealthy    = "unhealthy"
	databaseConnected  = "connected"
	databaseDisconnect = "disconnected"
)

// Failure is the envelope of every failed request
type Failure struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`
	Message   string `json:"message,omitempty"`
	Timestamp string `json:"timestamp"`
}

type PersonList struct {
	Persons []*person.Person `json:"persons"`
	Total   int              `json:"total"`
}

type ListPersonsResponse struct {
	Success   bool       `json:"success"`
	Data      PersonList `json:"data"`
	Timestamp string     `json:"timestamp"`
}

type CreatePersonResponse struct {
	Success   bool           `json:"success"`
	Message   string         `json:"message"`
	Data      *person.Person `json:"data"`
	Timestamp string         `json:"timestamp"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Error     string `json:"error,omitempty"`
	Timestamp string `json:"timestamp"`
}

type DocsResponse struct {
	Message     string            `json:"message"`
	Description string            `json:"description"`
	Timestamp   string            `json:"timestamp"`
	Endpoints   map[string]string `json:"endpoints"`
}

func writeJSON(w http.ResponseWriter, code int, v any, log logrus.FieldLogger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Warn("writing response")
	}
}
