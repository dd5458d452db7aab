// Package lute implements the client side of the lute gRPC API: the
// cursor-acknowledged event stream, subscriber introspection, album lookup,
// and bulk embedding upload.
package lute

import (
	"context"
	"fmt"
	"time"

	"github.com/cockroachdb/errors"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/shedrachokonofua/lute-graph-connector/internal/logger"
	"github.com/shedrachokonofua/lute-graph-connector/internal/lutepb"
)

// ErrNotInitialized is returned when a client method runs before Connect.
var ErrNotInitialized = errors.New("lute client not initialized")

// Message size caps must fit a full batch of parsed albums.
const maxMessageSize = 1 << 30 // 1 GiB

// ackDelay throttles chatty streams: each acknowledgement waits this long
// after the consumer finishes the batch.
const ackDelay = 250 * time.Millisecond

type Client struct {
	conn             *grpc.ClientConn
	eventService     lutepb.EventServiceClient
	albumService     lutepb.AlbumServiceClient
	subscriberPrefix string

	// AckDelay is the inter-acknowledgement pacing delay. Tests shrink it.
	AckDelay time.Duration
}

func NewClient(subscriberPrefix string) *Client {
	return &Client{
		subscriberPrefix: subscriberPrefix,
		AckDelay:         ackDelay,
	}
}

// Connect opens the gRPC channel. The channel is shared by the ingestion
// loop and the admin API; it is safe for concurrent use.
func (c *Client) Connect(url string, opts ...grpc.DialOption) error {
	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(
			grpc.MaxCallRecvMsgSize(maxMessageSize),
			grpc.MaxCallSendMsgSize(maxMessageSize),
		),
	}, opts...)
	conn, err := grpc.NewClient(url, opts...)
	if err != nil {
		return errors.Wrapf(err, "failed to connect to lute at %s", url)
	}

	c.conn = conn
	c.eventService = lutepb.NewEventServiceClient(conn)
	c.albumService = lutepb.NewAlbumServiceClient(conn)

	logger.Logger.Infow("Connected to lute", "url", url)
	return nil
}

func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// WireSubscriberID namespaces a logical subscriber id with the configured
// prefix, matching how lute tracks cursors.
func (c *Client) WireSubscriberID(subscriberID string) string {
	return fmt.Sprintf("%s:%s", c.subscriberPrefix, subscriberID)
}

// GetAlbum fetches a single parsed album by file name.
func (c *Client) GetAlbum(ctx context.Context, fileName string) (*lutepb.ParsedAlbum, error) {
	if c.albumService == nil {
		return nil, ErrNotInitialized
	}

	reply, err := c.albumService.GetAlbum(ctx, &lutepb.GetAlbumRequest{FileName: fileName})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get album %s", fileName)
	}
	return reply.GetAlbum(), nil
}

// GetSubscriberCursor returns the server's cursor for the given logical
// subscriber id, or ok=false when the server does not know the subscriber.
func (c *Client) GetSubscriberCursor(ctx context.Context, subscriberID string) (string, bool, error) {
	if c.eventService == nil {
		return "", false, ErrNotInitialized
	}

	reply, err := c.eventService.GetMonitor(ctx, &emptypb.Empty{})
	if err != nil {
		return "", false, errors.Wrap(err, "failed to get event monitor")
	}

	wireID := c.WireSubscriberID(subscriberID)
	for _, subscriber := range reply.GetMonitor().Subscribers {
		if subscriber.Id == wireID {
			return subscriber.Cursor, true, nil
		}
	}
	return "", false, nil
}

// EventBatch is one server reply: ordered items plus the cursor to
// acknowledge once the batch has been applied.
type EventBatch struct {
	Cursor string
	Items  []*lutepb.EventStreamItem
}

// EventStream is a lazy sequence of event batches. Each Recv acknowledges
// the previously delivered batch before pulling the next one, so the
// consumer drives the pace and an unprocessed batch is never acked.
type EventStream struct {
	stream       lutepb.EventService_StreamClient
	streamID     string
	subscriberID string
	maxBatchSize uint32
	ackDelay     time.Duration

	// Cursor of the last delivered batch; acknowledged on the next Recv.
	// Tracked separately from the cursor value so a batch carrying an
	// empty cursor still gets its follow-up request.
	pendingCursor string
	hasPending    bool
}

// StreamEvents opens the bidirectional event stream. The initial request
// carries no cursor so the server resumes from the subscriber's persisted
// one. The stream ends with an error on cancellation or transport failure;
// the caller restarts by calling StreamEvents again.
func (c *Client) StreamEvents(ctx context.Context, streamID, subscriberID string, maxBatchSize uint32) (*EventStream, error) {
	if c.eventService == nil {
		return nil, ErrNotInitialized
	}

	stream, err := c.eventService.Stream(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open event stream")
	}

	wireID := c.WireSubscriberID(subscriberID)
	if err := stream.Send(&lutepb.EventStreamRequest{
		StreamId:     streamID,
		SubscriberId: wireID,
		MaxBatchSize: maxBatchSize,
	}); err != nil {
		return nil, errors.Wrap(err, "failed to send initial stream request")
	}

	logger.Logger.Infow("Opened event stream",
		"stream_id", streamID,
		"subscriber_id", wireID,
		"max_batch_size", maxBatchSize,
	)

	return &EventStream{
		stream:       stream,
		streamID:     streamID,
		subscriberID: wireID,
		maxBatchSize: maxBatchSize,
		ackDelay:     c.AckDelay,
	}, nil
}

// Recv acknowledges the previous batch, then blocks for the next one.
// Calling Recv is the consumer's statement that the previous batch has been
// fully applied; a batch whose processing failed must not be followed by
// another Recv.
func (s *EventStream) Recv(ctx context.Context) (*EventBatch, error) {
	if s.hasPending {
		select {
		case <-time.After(s.ackDelay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}

		if err := s.stream.Send(&lutepb.EventStreamRequest{
			StreamId:     s.streamID,
			SubscriberId: s.subscriberID,
			Cursor:       s.pendingCursor,
			MaxBatchSize: s.maxBatchSize,
		}); err != nil {
			return nil, errors.Wrapf(err, "failed to ack cursor %s", s.pendingCursor)
		}
		s.pendingCursor = ""
		s.hasPending = false
	}

	reply, err := s.stream.Recv()
	if err != nil {
		return nil, errors.Wrap(err, "event stream closed")
	}

	s.pendingCursor = reply.Cursor
	s.hasPending = true
	return &EventBatch{
		Cursor: reply.Cursor,
		Items:  reply.Items,
	}, nil
}

// BulkUploadAlbumEmbeddings streams embedding batches to lute over a single
// client-streaming RPC and returns the count of nodes the server accepted.
// The channel is the batch iterator; closing it completes the upload.
func (c *Client) BulkUploadAlbumEmbeddings(ctx context.Context, batches <-chan []*lutepb.AlbumEmbeddingItem) (uint32, error) {
	if c.albumService == nil {
		return 0, ErrNotInitialized
	}

	upload, err := c.albumService.BulkUploadAlbumEmbeddings(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to open bulk upload stream")
	}

	for batch := range batches {
		if err := upload.Send(&lutepb.BulkUploadAlbumEmbeddingsRequest{Items: batch}); err != nil {
			return 0, errors.Wrap(err, "failed to upload embeddings batch")
		}
	}

	reply, err := upload.CloseAndRecv()
	if err != nil {
		return 0, errors.Wrap(err, "failed to complete bulk upload")
	}
	return reply.Count, nil
}
