package graph

import (
	"context"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

type QueryCall struct {
	Query  string
	Params map[string]interface{}
}

// MockStore records executed queries in order and answers them from
// per-query canned results.
type MockStore struct {
	Calls   []QueryCall
	Results map[string]neo4j.EagerResult
	Errs    map[string]error
}

func (m *MockStore) ExecuteQuery(ctx context.Context, query string, params map[string]interface{}) (neo4j.EagerResult, error) {
	m.Calls = append(m.Calls, QueryCall{Query: query, Params: params})
	if err, ok := m.Errs[query]; ok {
		return neo4j.EagerResult{}, err
	}
	if result, ok := m.Results[query]; ok {
		return result, nil
	}
	return neo4j.EagerResult{}, nil
}

func (m *MockStore) Queries() []string {
	queries := make([]string, len(m.Calls))
	for i, call := range m.Calls {
		queries[i] = call.Query
	}
	return queries
}

func (m *MockStore) ParamsFor(query string) map[string]interface{} {
	for _, call := range m.Calls {
		if call.Query == query {
			return call.Params
		}
	}
	return nil
}
