package ingest

import (
	"context"

	"github.com/shedrachokonofua/lute-graph-connector/internal/graph"
	"github.com/shedrachokonofua/lute-graph-connector/internal/logger"
	"github.com/shedrachokonofua/lute-graph-connector/internal/lute"
)

const (
	// Lute's parser stream carries the FileParsed events this connector
	// projects into the graph.
	StreamID     = "parser"
	SubscriberID = "build"
	MaxBatchSize = 500
)

// GraphUpdater is the slice of the graph repository the pump needs.
type GraphUpdater interface {
	UpdateGraph(ctx context.Context, albums []graph.AlbumUpdate) error
}

// Streamer is the slice of the lute client the pump needs.
type Streamer interface {
	StreamEvents(ctx context.Context, streamID, subscriberID string, maxBatchSize uint32) (*lute.EventStream, error)
}

// Pump is a suture service running the ingestion loop: receive a batch,
// project albums into the graph, then let the next Recv acknowledge the
// batch's cursor. Any transport or store error ends the run without acking
// the failed batch; the supervisor restarts the pump with backoff and the
// server replays from the last acknowledged cursor.
type Pump struct {
	client Streamer
	repo   GraphUpdater
}

func NewPump(client Streamer, repo GraphUpdater) *Pump {
	return &Pump{client: client, repo: repo}
}

func (p *Pump) Serve(ctx context.Context) error {
	stream, err := p.client.StreamEvents(ctx, StreamID, SubscriberID, MaxBatchSize)
	if err != nil {
		return err
	}

	for {
		batch, err := stream.Recv(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return err
		}

		albums := make([]graph.AlbumUpdate, 0, len(batch.Items))
		for _, item := range batch.Items {
			fileName, album, ok := AlbumFromItem(item)
			if !ok {
				continue
			}
			albums = append(albums, graph.AlbumUpdate{FileName: fileName, Album: album})
		}

		if len(albums) > 0 {
			if err := p.repo.UpdateGraph(ctx, albums); err != nil {
				return err
			}
		}

		logger.Logger.Infow("Processed event batch",
			"cursor", batch.Cursor,
			"item_count", len(batch.Items),
			"album_count", len(albums),
		)
	}
}

func (p *Pump) String() string {
	return "ingest-pump"
}
