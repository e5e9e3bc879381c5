package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/nais/person-gateway/internal/person"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	listPersonsQuery = `MATCH (p:Person)
RETURN p.id AS id, p.name AS name, p.email AS email
ORDER BY p.id`

	maxPersonIDQuery = `MATCH (p:Person) RETURN max(p.id) AS maxId`

	createPersonQuery = `CREATE (p:Person {id: $id, name: $name, email: $email})
RETURN p.id AS id, p.name AS name, p.email AS email`

	atomicCreatePersonQuery = `OPTIONAL MATCH (p:Person)
WITH coalesce(max(p.id), 0) + 1 AS id
CREATE (n:Person {id: id, name: $name, email: $email})
RETURN n.id AS id, n.name AS name, n.email AS email`

	pingQuery = `RETURN 1`
)

// ErrNoRecord is returned when a write statement did not echo back the created node
var ErrNoRecord = errors.New("creation returned no record")

// StoreError wraps every failure from the graph database. The message is the underlying error message.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return e.Err.Error()
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

//go:generate go run github.com/vektra/mockery/v2 --name Repo --inpackage --with-expecter --filename mock_repo.go

// Repo is the person store
type Repo interface {
	ListPersons(ctx context.Context) ([]*person.Person, error)
	NextPersonID(ctx context.Context) (int64, error)
	CreatePerson(ctx context.Context, name, email string) (*person.Person, error)
	Ping(ctx context.Context) error

	Close(ctx context.Context) error
	Metrics(meter metric.Meter) error
}

type repo struct {
	sessions     SessionFunc
	closer       func(ctx context.Context) error
	atomicCreate bool
	log          logrus.FieldLogger

	storeErrors    metric.Int64Counter
	personsCreated metric.Int64Counter
}

// Option is a function that can be used to set custom options for the repo
type Option func(*repo)

// WithAtomicCreate makes CreatePerson allocate the id and create the node in a single statement.
//
// Without it the next id is read and the node is written in two statements, and concurrent
// creates may be given the same id.
func WithAtomicCreate(atomic bool) Option {
	return func(r *repo) {
		r.atomicCreate = atomic
	}
}

// WithCloser sets the function called by Close, typically the driver Close
func WithCloser(closer func(ctx context.Context) error) Option {
	return func(r *repo) {
		r.closer = closer
	}
}

func New(sessions SessionFunc, log logrus.FieldLogger, opts ...Option) Repo {
	r := &repo{
		sessions: sessions,
		log:      log,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

func (r *repo) Metrics(meter metric.Meter) (err error) {
	r.storeErrors, err = meter.Int64Counter("store_errors", metric.WithDescription("Number of failed person store operations"))
	if err != nil {
		return fmt.Errorf("failed to create store_errors counter: %w", err)
	}

	r.personsCreated, err = meter.Int64Counter("persons_created", metric.WithDescription("Number of persons created"))
	if err != nil {
		return fmt.Errorf("failed to create persons_created counter: %w", err)
	}

	return nil
}

func (r *repo) ListPersons(ctx context.Context) ([]*person.Person, error) {
	session := r.sessions(ctx, neo4j.AccessModeRead)
	defer r.closeSession(ctx, session)

	records, err := session.Run(ctx, listPersonsQuery, nil)
	if err != nil {
		return nil, r.fail(ctx, "list persons", err)
	}

	persons := make([]*person.Person, 0, len(records))
	for _, record := range records {
		p, err := toPerson(record)
		if err != nil {
			return nil, r.fail(ctx, "list persons", err)
		}
		persons = append(persons, p)
	}

	return persons, nil
}

func (r *repo) NextPersonID(ctx context.Context) (int64, error) {
	session := r.sessions(ctx, neo4j.AccessModeRead)
	defer r.closeSession(ctx, session)

	id, err := nextPersonID(ctx, session)
	if err != nil {
		return 0, r.fail(ctx, "next person id", err)
	}

	return id, nil
}

func (r *repo) CreatePerson(ctx context.Context, name, email string) (*person.Person, error) {
	session := r.sessions(ctx, neo4j.AccessModeWrite)
	defer r.closeSession(ctx, session)

	var (
		records []*neo4j.Record
		err     error
	)
	if r.atomicCreate {
		records, err = session.Run(ctx, atomicCreatePersonQuery, map[string]any{
			"name":  name,
			"email": email,
		})
	} else {
		var id int64
		id, err = nextPersonID(ctx, session)
		if err != nil {
			return nil, r.fail(ctx, "create person", err)
		}

		records, err = session.Run(ctx, createPersonQuery, map[string]any{
			"id":    id,
			"name":  name,
			"email": email,
		})
	}
	if err != nil {
		return nil, r.fail(ctx, "create person", err)
	}

	if len(records) == 0 {
		return nil, r.fail(ctx, "create person", ErrNoRecord)
	}

	p, err := toPerson(records[0])
	if err != nil {
		return nil, r.fail(ctx, "create person", err)
	}

	if r.personsCreated != nil {
		r.personsCreated.Add(ctx, 1)
	}

	return p, nil
}

func (r *repo) Ping(ctx context.Context) error {
	session := r.sessions(ctx, neo4j.AccessModeRead)
	defer r.closeSession(ctx, session)

	if _, err := session.Run(ctx, pingQuery, nil); err != nil {
		return r.fail(ctx, "ping", err)
	}

	return nil
}

func (r *repo) Close(ctx context.Context) error {
	if r.closer == nil {
		return nil
	}
	return r.closer(ctx)
}

func (r *repo) closeSession(ctx context.Context, session Session) {
	if err := session.Close(ctx); err != nil {
		r.log.WithError(err).Warn("closing neo4j session")
	}
}

func (r *repo) fail(ctx context.Context, op string, err error) error {
	if r.storeErrors != nil {
		r.storeErrors.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", op)))
	}
	return &StoreError{Op: op, Err: err}
}

// nextPersonID returns one more than the highest stored id, or 1 when there are no persons
func nextPersonID(ctx context.Context, session Session) (int64, error) {
	records, err := session.Run(ctx, maxPersonIDQuery, nil)
	if err != nil {
		return 0, err
	}

	if len(records) == 0 {
		return 1, nil
	}

	maxID, isNil, err := neo4j.GetRecordValue[int64](records[0], "maxId")
	if err != nil {
		return 0, err
	}
	if isNil {
		return 1, nil
	}

	return maxID + 1, nil
}

func toPerson(record *neo4j.Record) (*person.Person, error) {
	id, _, err := neo4j.GetRecordValue[int64](record, "id")
	if err != nil {
		return nil, err
	}

	name, _, err := neo4j.GetRecordValue[string](record, "name")
	if err != nil {
		return nil, err
	}

	email, _, err := neo4j.GetRecordValue[string](record, "email")
	if err != nil {
		return nil, err
	}

	return &person.Person{ID: id, Name: name, Email: email}, nil
}
