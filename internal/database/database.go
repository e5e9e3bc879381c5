package database

import (
	"context"
	"fmt"

	"github.com/nais/person-gateway/internal/config"
	"github.com/nais/person-gateway/internal/logger"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/sirupsen/logrus"
)

// Session runs cypher statements. A session is opened for a single store operation and closed when it returns.
type Session interface {
	Run(ctx context.Context, cypher string, params map[string]any) ([]*neo4j.Record, error)
	Close(ctx context.Context) error
}

// SessionFunc opens a new session with the given access mode
type SessionFunc func(ctx context.Context, mode neo4j.AccessMode) Session

// NewDriver creates the neo4j driver. When verify is set, connectivity is checked and failures are logged, not returned.
func NewDriver(ctx context.Context, cfg config.Neo4j, verify bool, log logrus.FieldLogger) (neo4j.DriverWithContext, error) {
	driver, err := neo4j.NewDriverWithContext(cfg.URI, neo4j.BasicAuth(cfg.User, cfg.Password, ""), func(c *neo4j.Config) {
		c.Log = logger.NewNeo4jLogger(log)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create neo4j driver: %w", err)
	}

	if verify {
		if err := driver.VerifyConnectivity(ctx); err != nil {
			log.WithError(err).WithField("uri", cfg.URI).Warn("neo4j is not reachable, continuing")
		}
	}

	return driver, nil
}

// DriverSessions opens sessions on the given driver
func DriverSessions(driver neo4j.DriverWithContext) SessionFunc {
	return func(ctx context.Context, mode neo4j.AccessMode) Session {
		return &driverSession{
			session: driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: mode}),
		}
	}
}

type driverSession struct {
	session neo4j.SessionWithContext
}

func (s *driverSession) Run(ctx context.Context, cypher string, params map[string]any) ([]*neo4j.Record, error) {
	result, err := s.session.Run(ctx, cypher, params)
	if err != nil {
		return nil, err
	}
	return result.Collect(ctx)
}

func (s *driverSession) Close(ctx context.Context) error {
	return s.session.Close(ctx)
}
