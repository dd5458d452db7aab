package graph

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastRPRecord(fileName string, embedding []interface{}) *neo4j.Record {
	return &neo4j.Record{
		Keys:   []string{"nodeId", "fileName", "embedding"},
		Values: []interface{}{int64(1), fileName, embedding},
	}
}

func TestApplyDefaults(t *testing.T) {
	weights := AlbumRelationWeights{}
	weights.ApplyDefaults()
	assert.Equal(t, AlbumRelationWeights{AlbumArtist: 4, Credited: 2, Descriptor: 1, Language: 1}, weights)

	weights = AlbumRelationWeights{Credited: 7}
	weights.ApplyDefaults()
	assert.Equal(t, AlbumRelationWeights{AlbumArtist: 4, Credited: 7, Descriptor: 1, Language: 1}, weights)
}

func TestIsZeroMagnitude(t *testing.T) {
	assert.True(t, EmbeddingDocument{Embedding: []float32{0, 0, 0}}.IsZeroMagnitude())
	assert.False(t, EmbeddingDocument{Embedding: []float32{0, 0.5, 0}}.IsZeroMagnitude())
	assert.True(t, EmbeddingDocument{}.IsZeroMagnitude())
}

func TestGenerateAlbumEmbeddings(t *testing.T) {
	db := &MockStore{
		Results: map[string]neo4j.EagerResult{
			StreamFastRPQuery: {
				Records: []*neo4j.Record{
					fastRPRecord("release/album/nas/illmatic", []interface{}{0.5, -0.25}),
					fastRPRecord("release/album/gza/liquid-swords", []interface{}{0.0, 0.0}),
				},
			},
		},
	}
	repo := NewRepository(db)

	weights := AlbumRelationWeights{AlbumArtist: 4, Credited: 2, Descriptor: 1, Language: 1}
	docs, err := repo.GenerateAlbumEmbeddings(context.Background(), "lute_graph", weights)
	require.NoError(t, err)

	require.Len(t, docs, 2)
	assert.Equal(t, "release/album/nas/illmatic", docs[0].FileName)
	assert.Equal(t, []float32{0.5, -0.25}, docs[0].Embedding)
	assert.Equal(t, "lute_graph", docs[0].EmbeddingKey)
	assert.False(t, docs[0].IsZeroMagnitude())
	assert.True(t, docs[1].IsZeroMagnitude())

	require.Equal(t, []string{ProjectGraphQuery, StreamFastRPQuery, DropProjectionQuery}, db.Queries())

	// GENRE keeps its stored weight; the other four types fall back to the
	// supplied defaults.
	projection := db.ParamsFor(ProjectGraphQuery)
	relationships := projection["relationship_projection"].(map[string]interface{})
	genre := relationships["GENRE"].(map[string]interface{})
	assert.Equal(t, "weight", genre["properties"])

	albumArtist := relationships["ALBUM_ARTIST"].(map[string]interface{})
	assert.Equal(t, "UNDIRECTED", albumArtist["orientation"])
	defaultWeight := albumArtist["properties"].(map[string]interface{})["weight"].(map[string]interface{})["defaultValue"]
	assert.Equal(t, 4, defaultWeight)

	credited := relationships["CREDITED"].(map[string]interface{})
	assert.Equal(t, 2, credited["properties"].(map[string]interface{})["weight"].(map[string]interface{})["defaultValue"])

	// Drop targets the projection that was created.
	assert.Equal(t, projection["projection_id"], db.ParamsFor(DropProjectionQuery)["projection_id"])
}

func TestGenerateAlbumEmbeddings_DropsProjectionOnStreamFailure(t *testing.T) {
	db := &MockStore{
		Errs: map[string]error{
			StreamFastRPQuery: errors.New("gds out of memory"),
		},
	}
	repo := NewRepository(db)

	_, err := repo.GenerateAlbumEmbeddings(context.Background(), "lute_graph", AlbumRelationWeights{AlbumArtist: 4, Credited: 2, Descriptor: 1, Language: 1})
	require.Error(t, err)

	assert.Equal(t, []string{ProjectGraphQuery, StreamFastRPQuery, DropProjectionQuery}, db.Queries())
}

func TestGenerateAlbumEmbeddings_NoDropWhenProjectionFails(t *testing.T) {
	db := &MockStore{
		Errs: map[string]error{
			ProjectGraphQuery: errors.New("a graph with name 'p_1' already exists"),
		},
	}
	repo := NewRepository(db)

	_, err := repo.GenerateAlbumEmbeddings(context.Background(), "lute_graph", AlbumRelationWeights{AlbumArtist: 4, Credited: 2, Descriptor: 1, Language: 1})
	require.Error(t, err)

	assert.Equal(t, []string{ProjectGraphQuery}, db.Queries())
}
