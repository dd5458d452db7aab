package ingest_test

import (
	"context"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/shedrachokonofua/lute-graph-connector/internal/graph"
	"github.com/shedrachokonofua/lute-graph-connector/internal/ingest"
	"github.com/shedrachokonofua/lute-graph-connector/internal/lute"
	"github.com/shedrachokonofua/lute-graph-connector/internal/lutepb"
)

type fakeEventService struct {
	batches []*lutepb.EventStreamReply
	// hold keeps the stream open (but silent) once the canned batches are
	// exhausted, instead of closing it.
	hold bool

	mu       sync.Mutex
	requests []*lutepb.EventStreamRequest
}

func (f *fakeEventService) GetMonitor(ctx context.Context, _ *emptypb.Empty) (*lutepb.GetMonitorReply, error) {
	return &lutepb.GetMonitorReply{}, nil
}

func (f *fakeEventService) Stream(stream lutepb.EventService_StreamServer) error {
	for i := 0; ; i++ {
		request, err := stream.Recv()
		if err != nil {
			return nil
		}
		f.mu.Lock()
		f.requests = append(f.requests, request)
		f.mu.Unlock()

		if i >= len(f.batches) {
			if f.hold {
				<-stream.Context().Done()
			}
			return nil
		}
		if err := stream.Send(f.batches[i]); err != nil {
			return err
		}
	}
}

func (f *fakeEventService) ackedCursors() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var cursors []string
	for _, request := range f.requests {
		if request.Cursor != "" {
			cursors = append(cursors, request.Cursor)
		}
	}
	return cursors
}

type mockRepo struct {
	mu      sync.Mutex
	batches [][]graph.AlbumUpdate
	err     error
}

func (m *mockRepo) UpdateGraph(ctx context.Context, albums []graph.AlbumUpdate) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.batches = append(m.batches, albums)
	return m.err
}

func (m *mockRepo) recorded() [][]graph.AlbumUpdate {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([][]graph.AlbumUpdate{}, m.batches...)
}

func parsedItem(fileName, albumName string) *lutepb.EventStreamItem {
	return &lutepb.EventStreamItem{
		Payload: &lutepb.EventPayload{
			Event: &lutepb.Event{
				Event: &lutepb.Event_FileParsed{
					FileParsed: &lutepb.FileParsedEvent{
						FileName: fileName,
						Data: &lutepb.ParsedFileData{
							Data: &lutepb.ParsedFileData_Album{
								Album: &lutepb.ParsedAlbum{Name: albumName},
							},
						},
					},
				},
			},
		},
	}
}

func savedItem(fileName string) *lutepb.EventStreamItem {
	return &lutepb.EventStreamItem{
		Payload: &lutepb.EventPayload{
			Event: &lutepb.Event{
				Event: &lutepb.Event_FileSaved{
					FileSaved: &lutepb.FileSavedEvent{FileName: fileName},
				},
			},
		},
	}
}

func startPumpClient(t *testing.T, events *fakeEventService) *lute.Client {
	t.Helper()

	listener := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	lutepb.RegisterEventServiceServer(srv, events)
	go func() {
		_ = srv.Serve(listener)
	}()
	t.Cleanup(srv.Stop)

	client := lute.NewClient("graph-connector")
	client.AckDelay = time.Millisecond
	err := client.Connect("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return client
}

func TestPump_ProjectsAlbumBatchesIntoGraph(t *testing.T) {
	events := &fakeEventService{
		batches: []*lutepb.EventStreamReply{
			{
				Cursor: "1-0",
				Items: []*lutepb.EventStreamItem{
					parsedItem("release/album/nas/illmatic", "Illmatic"),
					savedItem("release/album/untouched"),
				},
			},
			{
				Cursor: "2-0",
				Items: []*lutepb.EventStreamItem{
					parsedItem("release/album/gza/liquid-swords", "Liquid Swords"),
				},
			},
		},
	}
	client := startPumpClient(t, events)
	repo := &mockRepo{}

	pump := ingest.NewPump(client, repo)
	err := pump.Serve(context.Background())

	// The stream closed after the canned batches: the pump surfaces the
	// transport error so the supervisor restarts it.
	require.Error(t, err)

	batches := repo.recorded()
	require.Len(t, batches, 2)
	require.Len(t, batches[0], 1)
	assert.Equal(t, "release/album/nas/illmatic", batches[0][0].FileName)
	assert.Equal(t, "Illmatic", batches[0][0].Album.Name)
	require.Len(t, batches[1], 1)
	assert.Equal(t, "release/album/gza/liquid-swords", batches[1][0].FileName)

	// Both applied batches were acknowledged.
	assert.Equal(t, []string{"1-0", "2-0"}, events.ackedCursors())
}

func TestPump_DoesNotAckFailedBatch(t *testing.T) {
	events := &fakeEventService{
		batches: []*lutepb.EventStreamReply{
			{
				Cursor: "1-0",
				Items:  []*lutepb.EventStreamItem{parsedItem("release/album/nas/illmatic", "Illmatic")},
			},
		},
	}
	client := startPumpClient(t, events)
	repo := &mockRepo{err: errors.New("neo4j unavailable")}

	pump := ingest.NewPump(client, repo)
	err := pump.Serve(context.Background())
	require.Error(t, err)

	assert.Len(t, repo.recorded(), 1)
	assert.Empty(t, events.ackedCursors())
}

func TestPump_StopsOnContextCancel(t *testing.T) {
	events := &fakeEventService{
		hold: true,
		batches: []*lutepb.EventStreamReply{
			{Cursor: "1-0", Items: []*lutepb.EventStreamItem{parsedItem("release/album/nas/illmatic", "Illmatic")}},
		},
	}
	client := startPumpClient(t, events)
	repo := &mockRepo{}

	ctx, cancel := context.WithCancel(context.Background())
	errs := make(chan error, 1)
	pump := ingest.NewPump(client, repo)
	go func() {
		errs <- pump.Serve(ctx)
	}()

	require.Eventually(t, func() bool {
		return len(repo.recorded()) == 1
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-errs:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("pump did not stop after cancellation")
	}
}
