package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shedrachokonofua/lute-graph-connector/internal/lutepb"
)

func TestAlbumFromItem_FullChain(t *testing.T) {
	item := &lutepb.EventStreamItem{
		Cursor: "5-0",
		Payload: &lutepb.EventPayload{
			Event: &lutepb.Event{
				Event: &lutepb.Event_FileParsed{
					FileParsed: &lutepb.FileParsedEvent{
						FileName: "release/album/nas/illmatic",
						Data: &lutepb.ParsedFileData{
							Data: &lutepb.ParsedFileData_Album{
								Album: &lutepb.ParsedAlbum{Name: "Illmatic"},
							},
						},
					},
				},
			},
		},
	}

	fileName, album, ok := AlbumFromItem(item)
	require.True(t, ok)
	assert.Equal(t, "release/album/nas/illmatic", fileName)
	assert.Equal(t, "Illmatic", album.Name)
}

func TestAlbumFromItem_DropsIncompleteItems(t *testing.T) {
	cases := []struct {
		name string
		item *lutepb.EventStreamItem
	}{
		{"no payload", &lutepb.EventStreamItem{Cursor: "1-0"}},
		{"no event", &lutepb.EventStreamItem{Payload: &lutepb.EventPayload{}}},
		{"other event kind", &lutepb.EventStreamItem{
			Payload: &lutepb.EventPayload{
				Event: &lutepb.Event{
					Event: &lutepb.Event_FileSaved{
						FileSaved: &lutepb.FileSavedEvent{FileName: "release/album/x"},
					},
				},
			},
		}},
		{"file parsed without data", &lutepb.EventStreamItem{
			Payload: &lutepb.EventPayload{
				Event: &lutepb.Event{
					Event: &lutepb.Event_FileParsed{
						FileParsed: &lutepb.FileParsedEvent{FileName: "release/album/x"},
					},
				},
			},
		}},
		{"data without album", &lutepb.EventStreamItem{
			Payload: &lutepb.EventPayload{
				Event: &lutepb.Event{
					Event: &lutepb.Event_FileParsed{
						FileParsed: &lutepb.FileParsedEvent{
							FileName: "release/album/x",
							Data:     &lutepb.ParsedFileData{},
						},
					},
				},
			},
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, ok := AlbumFromItem(tc.item)
			assert.False(t, ok)
		})
	}
}
