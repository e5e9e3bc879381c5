package logger

import (
	"fmt"
	"strings"

	neo4jlog "github.com/neo4j/neo4j-go-driver/v5/neo4j/log"
	"github.com/nais/person-gateway/internal/config"
	"github.com/sirupsen/logrus"
)

// New creates a new logger with the given format and level
func New(cfg config.Logger) (*logrus.Logger, error) {
	log := logrus.StandardLogger()

	switch strings.ToLower(cfg.Format) {
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	case "text":
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	default:
		return nil, fmt.Errorf("invalid log format: %q", cfg.Format)
	}

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	log.SetLevel(level)
	return log, nil
}

// Neo4jLogger routes log output from the neo4j driver into logrus
type Neo4jLogger struct {
	log logrus.FieldLogger
}

var _ neo4jlog.Logger = &Neo4jLogger{}

// NewNeo4jLogger wraps the given logger for use as the driver log
func NewNeo4jLogger(log logrus.FieldLogger) *Neo4jLogger {
	return &Neo4jLogger{log: log}
}

func (l *Neo4jLogger) Error(name, id string, err error) {
	l.entry(name, id).WithError(err).Error("neo4j driver error")
}

func (l *Neo4jLogger) Warnf(name, id, msg string, args ...any) {
	l.entry(name, id).Warnf(msg, args...)
}

func (l *Neo4jLogger) Infof(name, id, msg string, args ...any) {
	l.entry(name, id).Infof(msg, args...)
}

func (l *Neo4jLogger) Debugf(name, id, msg string, args ...any) {
	l.entry(name, id).Debugf(msg, args...)
}

func (l *Neo4jLogger) entry(name, id string) logrus.FieldLogger {
	return l.log.WithFields(logrus.Fields{
		"driver_component": name,
		"driver_id":        id,
	})
}
