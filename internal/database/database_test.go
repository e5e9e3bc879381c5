package database

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

type fakeNode struct {
	id    int64
	name  string
	email string
}

// fakeGraph understands the statements issued by the repo and keeps persons in memory
type fakeGraph struct {
	lock      sync.Mutex
	nodes     []fakeNode
	executed  []string
	modes     []neo4j.AccessMode
	opened    int
	closed    int
	failOn    map[string]error
	noRecords bool
	closeErr  error
}

func newFakeGraph(nodes ...fakeNode) *fakeGraph {
	return &fakeGraph{nodes: nodes, failOn: map[string]error{}}
}

func (g *fakeGraph) sessions() SessionFunc {
	return func(_ context.Context, mode neo4j.AccessMode) Session {
		g.lock.Lock()
		defer g.lock.Unlock()
		g.opened++
		g.modes = append(g.modes, mode)
		return &fakeSession{graph: g}
	}
}

type fakeSession struct {
	graph  *fakeGraph
	closed bool
}

func (s *fakeSession) Close(context.Context) error {
	s.graph.lock.Lock()
	defer s.graph.lock.Unlock()
	if s.closed {
		return fmt.Errorf("session closed twice")
	}
	s.closed = true
	s.graph.closed++
	return s.graph.closeErr
}

func (s *fakeSession) Run(_ context.Context, cypher string, params map[string]any) ([]*neo4j.Record, error) {
	g := s.graph
	g.lock.Lock()
	defer g.lock.Unlock()

	if s.closed {
		return nil, fmt.Errorf("run on closed session")
	}

	g.executed = append(g.executed, cypher)
	if err, ok := g.failOn[cypher]; ok {
		return nil, err
	}

	switch cypher {
	case pingQuery:
		return []*neo4j.Record{{Keys: []string{"1"}, Values: []any{int64(1)}}}, nil
	case listPersonsQuery:
		nodes := append([]fakeNode{}, g.nodes...)
		sort.Slice(nodes, func(i, j int) bool { return nodes[i].id < nodes[j].id })
		ret := make([]*neo4j.Record, 0, len(nodes))
		for _, n := range nodes {
			ret = append(ret, personRecord(n))
		}
		return ret, nil
	case maxPersonIDQuery:
		var maxID any
		for _, n := range g.nodes {
			if maxID == nil || n.id > maxID.(int64) {
				maxID = n.id
			}
		}
		return []*neo4j.Record{{Keys: []string{"maxId"}, Values: []any{maxID}}}, nil
	case createPersonQuery:
		n := fakeNode{id: params["id"].(int64), name: params["name"].(string), email: params["email"].(string)}
		return g.write(n), nil
	case atomicCreatePersonQuery:
		id := int64(0)
		for _, n := range g.nodes {
			if n.id > id {
				id = n.id
			}
		}
		n := fakeNode{id: id + 1, name: params["name"].(string), email: params["email"].(string)}
		return g.write(n), nil
	}

	return nil, fmt.Errorf("unexpected statement: %s", cypher)
}

func (g *fakeGraph) write(n fakeNode) []*neo4j.Record {
	g.nodes = append(g.nodes, n)
	if g.noRecords {
		return nil
	}
	return []*neo4j.Record{personRecord(n)}
}

func personRecord(n fakeNode) *neo4j.Record {
	return &neo4j.Record{
		Keys:   []string{"id", "name", "email"},
		Values: []any{n.id, n.name, n.email},
	}
}
