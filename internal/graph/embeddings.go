package graph

import (
	"context"
	"fmt"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/shedrachokonofua/lute-graph-connector/internal/logger"
)

// AlbumRelationWeights are the default edge weights used by the embedding
// projection for relationship types that carry no stored weight property.
// GENRE edges keep their stored weight. All weights must be positive; the
// admin API rejects non-positive values before they reach this package.
type AlbumRelationWeights struct {
	AlbumArtist int
	Credited    int
	Descriptor  int
	Language    int
}

// ApplyDefaults fills unset weights with the reference defaults.
func (w *AlbumRelationWeights) ApplyDefaults() {
	if w.AlbumArtist == 0 {
		w.AlbumArtist = 4
	}
	if w.Credited == 0 {
		w.Credited = 2
	}
	if w.Descriptor == 0 {
		w.Descriptor = 1
	}
	if w.Language == 0 {
		w.Language = 1
	}
}

type EmbeddingDocument struct {
	FileName     string
	Embedding    []float32
	EmbeddingKey string
}

// IsZeroMagnitude reports whether every component of the embedding is zero.
func (d EmbeddingDocument) IsZeroMagnitude() bool {
	for _, v := range d.Embedding {
		if v != 0 {
			return false
		}
	}
	return true
}

func undirectedWithDefaultWeight(weight int) map[string]interface{} {
	return map[string]interface{}{
		"orientation": "UNDIRECTED",
		"properties": map[string]interface{}{
			"weight": map[string]interface{}{"defaultValue": weight},
		},
	}
}

// GenerateAlbumEmbeddings projects the album graph, streams FastRP
// embeddings over it, and returns one document per Album node. The
// projection is ephemeral: it is dropped on every exit path.
func (r *Repository) GenerateAlbumEmbeddings(ctx context.Context, embeddingKey string, weights AlbumRelationWeights) ([]EmbeddingDocument, error) {
	projectionID := fmt.Sprintf("p_%d", time.Now().Unix())

	nodeProjection := []interface{}{"Album", "Genre", "Artist", "Descriptor", "Language"}
	relationshipProjection := map[string]interface{}{
		"GENRE": map[string]interface{}{
			"orientation": "UNDIRECTED",
			"properties":  "weight",
		},
		"DESCRIPTOR":   undirectedWithDefaultWeight(weights.Descriptor),
		"LANGUAGE":     undirectedWithDefaultWeight(weights.Language),
		"ALBUM_ARTIST": undirectedWithDefaultWeight(weights.AlbumArtist),
		"CREDITED":     undirectedWithDefaultWeight(weights.Credited),
	}

	projectStart := time.Now()
	projected, err := r.db.ExecuteQuery(ctx, ProjectGraphQuery, map[string]interface{}{
		"projection_id":           projectionID,
		"node_projection":         nodeProjection,
		"relationship_projection": relationshipProjection,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create graph projection %s", projectionID)
	}
	defer func() {
		// Background context: the projection must be dropped even when the
		// request context is already cancelled.
		dropCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if _, err := r.db.ExecuteQuery(dropCtx, DropProjectionQuery, map[string]interface{}{
			"projection_id": projectionID,
		}); err != nil {
			logger.Logger.Warnw("Failed to drop graph projection",
				"projection_id", projectionID,
				"error", err,
			)
		}
	}()

	var projectedNodes, projectedRelationships int64
	if len(projected.Records) > 0 {
		if v, ok := projected.Records[0].Get("nodeCount"); ok {
			projectedNodes, _ = v.(int64)
		}
		if v, ok := projected.Records[0].Get("relationshipCount"); ok {
			projectedRelationships, _ = v.(int64)
		}
	}

	logger.Logger.Infow("Created graph projection, generating embeddings",
		"projection_id", projectionID,
		"node_count", projectedNodes,
		"relationship_count", projectedRelationships,
		"duration_ms", time.Since(projectStart).Milliseconds(),
	)

	start := time.Now()
	result, err := r.db.ExecuteQuery(ctx, StreamFastRPQuery, map[string]interface{}{
		"projection_id": projectionID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to stream album embeddings")
	}

	documents := make([]EmbeddingDocument, 0, len(result.Records))
	for _, record := range result.Records {
		fileNameValue, _ := record.Get("fileName")
		fileName, ok := fileNameValue.(string)
		if !ok {
			continue
		}

		embeddingValue, _ := record.Get("embedding")
		components, ok := embeddingValue.([]interface{})
		if !ok {
			continue
		}
		embedding := make([]float32, 0, len(components))
		for _, component := range components {
			f, ok := component.(float64)
			if !ok {
				return nil, errors.Newf("unexpected embedding component type %T for %s", component, fileName)
			}
			embedding = append(embedding, float32(f))
		}

		documents = append(documents, EmbeddingDocument{
			FileName:     fileName,
			Embedding:    embedding,
			EmbeddingKey: embeddingKey,
		})
	}

	logger.Logger.Infow("Generated embeddings",
		"duration_sec", time.Since(start).Seconds(),
		"embedding_count", len(documents),
	)

	return documents, nil
}
