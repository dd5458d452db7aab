package graph

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/shedrachokonofua/lute-graph-connector/internal/logger"
)

// Querier is the slice of the store the repository needs. Satisfied by
// *Store and by test mocks.
type Querier interface {
	ExecuteQuery(ctx context.Context, query string, params map[string]interface{}) (neo4j.EagerResult, error)
}

// Store wraps the Neo4j driver connection.
type Store struct {
	Driver neo4j.DriverWithContext
}

func NewStore(ctx context.Context, uri, username, password string) (*Store, error) {
	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(username, password, ""))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create neo4j driver")
	}

	if err := driver.VerifyConnectivity(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to connect to neo4j at %s", uri)
	}

	logger.Logger.Infow("Connected to graph store", "uri", uri)
	return &Store{Driver: driver}, nil
}

func (s *Store) Close(ctx context.Context) error {
	return s.Driver.Close(ctx)
}

func (s *Store) ExecuteQuery(ctx context.Context, query string, params map[string]interface{}) (neo4j.EagerResult, error) {
	result, err := neo4j.ExecuteQuery(ctx, s.Driver, query, params, neo4j.EagerResultTransformer)
	if err != nil {
		return neo4j.EagerResult{}, errors.Wrap(err, "failed to execute query")
	}
	return *result, nil
}
