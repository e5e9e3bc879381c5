// Package api serves the person endpoints over HTTP.
//
// Every response is JSON and carries a timestamp. Store failures are reported with status 500
// and the store error message in the "error" field.
package api

import (
	"net/http"
	"time"

	"github.com/nais/person-gateway/internal/database"
	"github.com/nais/person-gateway/internal/person"
	"github.com/nais/person-gateway/internal/search"
	"github.com/sirupsen/logrus"
)

const (
	serviceName        = "Neo4j Person API"
	serviceDescription = "API to access Neo4j Person database"
)

var endpoints = map[string]string{
	"GET /":                      "API documentation",
	"GET /persons":               "Get all persons",
	"GET /persons?search=<name>": "Get persons with a name matching the search",
	"POST /persons":              "Create a new person with random data",
	"GET /health":                "Health check",
	"GET /metrics":               "Prometheus metrics",
}

type Handler struct {
	repo      database.Repo
	generator *person.Generator
	log       logrus.FieldLogger
	metrics   *Metrics
	now       func() time.Time
}

// Option is a function that can be used to set custom options for the handler
type Option func(*Handler)

// WithClock sets the clock used for response timestamps
func WithClock(now func() time.Time) Option {
	return func(h *Handler) {
		h.now = now
	}
}

// WithMetrics records request durations
func WithMetrics(m *Metrics) Option {
	return func(h *Handler) {
		h.metrics = m
	}
}

func New(repo database.Repo, generator *person.Generator, log logrus.FieldLogger, opts ...Option) *Handler {
	h := &Handler{
		repo:      repo,
		generator: generator,
		log:       log,
		now:       time.Now,
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// Routes returns the http.Handler serving all endpoints
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	h.handle(mux, "GET /{$}", h.docs)
	h.handle(mux, "GET /health", h.health)
	h.handle(mux, "GET /persons", h.listPersons)
	h.handle(mux, "POST /persons", h.createPerson)
	h.handle(mux, "/", h.notFound)

	return chain(mux, requestLogger(h.log), recoverer(h.log, h.timestamp))
}

func (h *Handler) handle(mux *http.ServeMux, pattern string, fn http.HandlerFunc) {
	var handler http.Handler = fn
	if h.metrics != nil {
		handler = h.metrics.Instrument(pattern, handler)
	}
	mux.Handle(pattern, handler)
}

func (h *Handler) docs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, DocsResponse{
		Message:     serviceName,
		Description: serviceDescription,
		Timestamp:   h.timestamp(),
		Endpoints:   endpoints,
	}, logFrom(r.Context(), h.log))
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	log := logFrom(r.Context(), h.log)
	if err := h.repo.Ping(r.Context()); err != nil {
		log.WithError(err).Error("database health check")
		writeJSON(w, http.StatusInternalServerError, HealthResponse{
			Status:    statusUnhealthy,
			Database:  databaseDisconnect,
			Error:     err.Error(),
			Timestamp: h.timestamp(),
		}, log)
		return
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    statusHealthy,
		Database:  databaseConnected,
		Timestamp: h.timestamp(),
	}, log)
}

func (h *Handler) listPersons(w http.ResponseWriter, r *http.Request) {
	log := logFrom(r.Context(), h.log)
	persons, err := h.repo.ListPersons(r.Context())
	if err != nil {
		log.WithError(err).Error("listing persons")
		h.fail(w, http.StatusInternalServerError, err.Error(), "", log)
		return
	}

	if q := r.URL.Query().Get("search"); q != "" {
		persons = search.Filter(persons, q, func(p *person.Person) string { return p.Name })
	} else if persons == nil {
		persons = []*person.Person{}
	}

	writeJSON(w, http.StatusOK, ListPersonsResponse{
		Success: true,
		Data: PersonList{
			Persons: persons,
			Total:   len(persons),
		},
		Timestamp: h.timestamp(),
	}, log)
}

func (h *Handler) createPerson(w http.ResponseWriter, r *http.Request) {
	log := logFrom(r.Context(), h.log)
	name, email := h.generator.Generate()

	p, err := h.repo.CreatePerson(r.Context(), name, email)
	if err != nil {
		log.WithError(err).Error("creating person")
		h.fail(w, http.StatusInternalServerError, err.Error(), "", log)
		return
	}

	log.WithField("person_id", p.ID).Debug("person created")
	writeJSON(w, http.StatusCreated, CreatePersonResponse{
		Success:   true,
		Message:   msgPersonCreated,
		Data:      p,
		Timestamp: h.timestamp(),
	}, log)
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.fail(w, http.StatusNotFound, msgNotFound, msgSeeDocs, logFrom(r.Context(), h.log))
}

func (h *Handler) fail(w http.ResponseWriter, code int, msg, details string, log logrus.FieldLogger) {
	writeJSON(w, code, Failure{
		Success:   false,
		Error:     msg,
		Message:   details,
		Timestamp: h.timestamp(),
	}, log)
}

func (h *Handler) timestamp() string {
	return h.now().Format(time.RFC3339Nano)
}
