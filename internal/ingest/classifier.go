// Package ingest pumps the lute event stream into the property graph.
package ingest

import (
	"github.com/shedrachokonofua/lute-graph-connector/internal/lutepb"
)

// AlbumFromItem extracts the parsed album carried by a stream item, if any.
// Only items with the full payload→event→file_parsed→data→album chain
// qualify; everything else is dropped (and acknowledged upstream by the
// normal cursor flow).
func AlbumFromItem(item *lutepb.EventStreamItem) (string, *lutepb.ParsedAlbum, bool) {
	fileParsed := item.GetPayload().GetEvent().GetFileParsed()
	if fileParsed == nil {
		return "", nil, false
	}

	album := fileParsed.GetData().GetAlbum()
	if album == nil {
		return "", nil, false
	}

	return fileParsed.FileName, album, true
}
