package server

import (
	"context"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/shedrachokonofua/lute-graph-connector/internal/graph"
	"github.com/shedrachokonofua/lute-graph-connector/internal/ingest"
	"github.com/shedrachokonofua/lute-graph-connector/internal/logger"
	"github.com/shedrachokonofua/lute-graph-connector/internal/lutepb"
)

const (
	embeddingKey       = "lute_graph"
	embeddingBatchSize = 1500
)

// LuteClient is the slice of the lute client the admin API needs.
type LuteClient interface {
	GetSubscriberCursor(ctx context.Context, subscriberID string) (string, bool, error)
	BulkUploadAlbumEmbeddings(ctx context.Context, batches <-chan []*lutepb.AlbumEmbeddingItem) (uint32, error)
}

// EmbeddingGenerator is the slice of the graph repository the admin API needs.
type EmbeddingGenerator interface {
	GenerateAlbumEmbeddings(ctx context.Context, embeddingKey string, weights graph.AlbumRelationWeights) ([]graph.EmbeddingDocument, error)
}

// Server is the admin HTTP surface: cursor introspection and the embedding
// sync trigger. It shares the lute client with the ingestion loop.
type Server struct {
	Client LuteClient
	Repo   EmbeddingGenerator
	Port   int

	syncInFlight atomic.Bool
}

func NewServer(client LuteClient, repo EmbeddingGenerator, port int) *Server {
	return &Server{
		Client: client,
		Repo:   repo,
		Port:   port,
	}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(requestLogger(), gin.Recovery())

	r.GET("/", s.GetCursors)
	r.POST("/embeddings/albums/sync", s.SyncAlbumEmbeddings)

	return r
}

// requestLogger tags each request with an id and logs its outcome.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.New().String()
		c.Set("request_id", requestID)
		start := time.Now()

		c.Next()

		logger.Logger.Infow("Handled request",
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}

func (s *Server) GetCursors(c *gin.Context) {
	cursor, ok, err := s.Client.GetSubscriberCursor(c.Request.Context(), ingest.SubscriberID)
	if err != nil {
		logger.Logger.Errorw("Failed to get subscriber cursor", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get subscriber cursor"})
		return
	}

	var value interface{}
	if ok {
		value = cursor
	}
	c.JSON(http.StatusOK, gin.H{
		"lute_cursors": gin.H{
			ingest.SubscriberID: value,
		},
	})
}

// syncAlbumEmbeddingsRequest carries optional weight overrides. Pointer
// fields distinguish an absent weight (falls back to the default) from an
// explicit zero, which fails validation.
type syncAlbumEmbeddingsRequest struct {
	AlbumArtist *int `json:"album_artist" binding:"omitempty,gt=0"`
	Credited    *int `json:"credited" binding:"omitempty,gt=0"`
	Descriptor  *int `json:"descriptor" binding:"omitempty,gt=0"`
	Language    *int `json:"language" binding:"omitempty,gt=0"`
}

func (r *syncAlbumEmbeddingsRequest) weights() graph.AlbumRelationWeights {
	var w graph.AlbumRelationWeights
	if r.AlbumArtist != nil {
		w.AlbumArtist = *r.AlbumArtist
	}
	if r.Credited != nil {
		w.Credited = *r.Credited
	}
	if r.Descriptor != nil {
		w.Descriptor = *r.Descriptor
	}
	if r.Language != nil {
		w.Language = *r.Language
	}
	w.ApplyDefaults()
	return w
}

func (s *Server) SyncAlbumEmbeddings(c *gin.Context) {
	var request syncAlbumEmbeddingsRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	weights := request.weights()

	// One sync at a time: concurrent runs would double-upload and contend
	// for GDS memory.
	if !s.syncInFlight.CompareAndSwap(false, true) {
		c.JSON(http.StatusConflict, gin.H{"error": "Embedding sync already in progress"})
		return
	}
	defer s.syncInFlight.Store(false)

	ctx := c.Request.Context()

	embeddings, err := s.Repo.GenerateAlbumEmbeddings(ctx, embeddingKey, weights)
	if err != nil {
		logger.Logger.Errorw("Failed to generate album embeddings", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate album embeddings"})
		return
	}

	logger.Logger.Infow("Generated embeddings", "embedding_count", len(embeddings))

	items := make([]*lutepb.AlbumEmbeddingItem, len(embeddings))
	for i, embedding := range embeddings {
		items[i] = &lutepb.AlbumEmbeddingItem{
			FileName:     embedding.FileName,
			Embedding:    embedding.Embedding,
			EmbeddingKey: embedding.EmbeddingKey,
		}
	}

	batches := make(chan []*lutepb.AlbumEmbeddingItem)
	go func() {
		defer close(batches)
		for cursor := 0; cursor < len(items); cursor += embeddingBatchSize {
			end := cursor + embeddingBatchSize
			if end > len(items) {
				end = len(items)
			}
			logger.Logger.Infow("Uploading embeddings batch",
				"batch_size", end-cursor,
				"cursor", cursor,
			)
			select {
			case batches <- items[cursor:end]:
			case <-ctx.Done():
				return
			}
		}
	}()

	nodeCount, err := s.Client.BulkUploadAlbumEmbeddings(ctx, batches)
	if err != nil {
		logger.Logger.Errorw("Failed to upload album embeddings", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload album embeddings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"node_count": nodeCount})
}

// Serve runs the HTTP server until the context is cancelled. Implements
// suture.Service so the admin API sits on the same supervision tree as the
// ingestion pump.
func (s *Server) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", s.Port),
		Handler: s.SetupRouter(),
	}

	errs := make(chan error, 1)
	go func() {
		errs <- srv.ListenAndServe()
	}()

	logger.Logger.Infow("Admin API listening", "port", s.Port)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		return ctx.Err()
	case err := <-errs:
		return err
	}
}

func (s *Server) String() string {
	return "admin-api"
}
