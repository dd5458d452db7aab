// Package lutepb holds hand-maintained Go wire types for the lute gRPC API.
// Field numbers and message shapes mirror proto/lute.proto; the structs use
// the legacy protobuf struct-tag form so the standard gRPC proto codec can
// marshal them without generated descriptor code. Keep this file in sync
// with proto/lute.proto.
package lutepb

import "fmt"

type AlbumArtist struct {
	Name     string `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	FileName string `protobuf:"bytes,2,opt,name=file_name,json=fileName,proto3" json:"file_name,omitempty"`
}

func (m *AlbumArtist) Reset()         { *m = AlbumArtist{} }
func (m *AlbumArtist) String() string { return fmt.Sprintf("%+v", *m) }
func (*AlbumArtist) ProtoMessage()    {}

type Credit struct {
	Artist *AlbumArtist `protobuf:"bytes,1,opt,name=artist,proto3" json:"artist,omitempty"`
	Roles  []string     `protobuf:"bytes,2,rep,name=roles,proto3" json:"roles,omitempty"`
}

func (m *Credit) Reset()         { *m = Credit{} }
func (m *Credit) String() string { return fmt.Sprintf("%+v", *m) }
func (*Credit) ProtoMessage()    {}

func (m *Credit) GetArtist() *AlbumArtist {
	if m != nil {
		return m.Artist
	}
	return nil
}

type ParsedAlbum struct {
	Name            string         `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Artists         []*AlbumArtist `protobuf:"bytes,2,rep,name=artists,proto3" json:"artists,omitempty"`
	Credits         []*Credit      `protobuf:"bytes,3,rep,name=credits,proto3" json:"credits,omitempty"`
	PrimaryGenres   []string       `protobuf:"bytes,4,rep,name=primary_genres,json=primaryGenres,proto3" json:"primary_genres,omitempty"`
	SecondaryGenres []string       `protobuf:"bytes,5,rep,name=secondary_genres,json=secondaryGenres,proto3" json:"secondary_genres,omitempty"`
	Descriptors     []string       `protobuf:"bytes,6,rep,name=descriptors,proto3" json:"descriptors,omitempty"`
	Languages       []string       `protobuf:"bytes,7,rep,name=languages,proto3" json:"languages,omitempty"`
}

func (m *ParsedAlbum) Reset()         { *m = ParsedAlbum{} }
func (m *ParsedAlbum) String() string { return fmt.Sprintf("%+v", *m) }
func (*ParsedAlbum) ProtoMessage()    {}

type ParsedFileData struct {
	// Valid assignments:
	//	*ParsedFileData_Album
	Data isParsedFileData_Data `protobuf_oneof:"data"`
}

func (m *ParsedFileData) Reset()         { *m = ParsedFileData{} }
func (m *ParsedFileData) String() string { return fmt.Sprintf("%+v", *m) }
func (*ParsedFileData) ProtoMessage()    {}

type isParsedFileData_Data interface {
	isParsedFileData_Data()
}

type ParsedFileData_Album struct {
	Album *ParsedAlbum `protobuf:"bytes,1,opt,name=album,proto3,oneof"`
}

func (*ParsedFileData_Album) isParsedFileData_Data() {}

func (m *ParsedFileData) GetAlbum() *ParsedAlbum {
	if x, ok := m.GetData().(*ParsedFileData_Album); ok {
		return x.Album
	}
	return nil
}

func (m *ParsedFileData) GetData() isParsedFileData_Data {
	if m != nil {
		return m.Data
	}
	return nil
}

// XXX_OneofWrappers is required by the protobuf runtime to resolve the oneof.
func (*ParsedFileData) XXX_OneofWrappers() []interface{} {
	return []interface{}{
		(*ParsedFileData_Album)(nil),
	}
}

type FileSavedEvent struct {
	FileName string `protobuf:"bytes,1,opt,name=file_name,json=fileName,proto3" json:"file_name,omitempty"`
}

func (m *FileSavedEvent) Reset()         { *m = FileSavedEvent{} }
func (m *FileSavedEvent) String() string { return fmt.Sprintf("%+v", *m) }
func (*FileSavedEvent) ProtoMessage()    {}

type FileParsedEvent struct {
	FileName string          `protobuf:"bytes,1,opt,name=file_name,json=fileName,proto3" json:"file_name,omitempty"`
	Data     *ParsedFileData `protobuf:"bytes,2,opt,name=data,proto3" json:"data,omitempty"`
}

func (m *FileParsedEvent) Reset()         { *m = FileParsedEvent{} }
func (m *FileParsedEvent) String() string { return fmt.Sprintf("%+v", *m) }
func (*FileParsedEvent) ProtoMessage()    {}

func (m *FileParsedEvent) GetData() *ParsedFileData {
	if m != nil {
		return m.Data
	}
	return nil
}

type Event struct {
	// Valid assignments:
	//	*Event_FileSaved
	//	*Event_FileParsed
	Event isEvent_Event `protobuf_oneof:"event"`
}

func (m *Event) Reset()         { *m = Event{} }
func (m *Event) String() string { return fmt.Sprintf("%+v", *m) }
func (*Event) ProtoMessage()    {}

type isEvent_Event interface {
	isEvent_Event()
}

type Event_FileSaved struct {
	FileSaved *FileSavedEvent `protobuf:"bytes,1,opt,name=file_saved,json=fileSaved,proto3,oneof"`
}

type Event_FileParsed struct {
	FileParsed *FileParsedEvent `protobuf:"bytes,2,opt,name=file_parsed,json=fileParsed,proto3,oneof"`
}

func (*Event_FileSaved) isEvent_Event()  {}
func (*Event_FileParsed) isEvent_Event() {}

func (m *Event) GetEvent() isEvent_Event {
	if m != nil {
		return m.Event
	}
	return nil
}

func (m *Event) GetFileParsed() *FileParsedEvent {
	if x, ok := m.GetEvent().(*Event_FileParsed); ok {
		return x.FileParsed
	}
	return nil
}

func (*Event) XXX_OneofWrappers() []interface{} {
	return []interface{}{
		(*Event_FileSaved)(nil),
		(*Event_FileParsed)(nil),
	}
}

type EventPayload struct {
	Event *Event `protobuf:"bytes,1,opt,name=event,proto3" json:"event,omitempty"`
}

func (m *EventPayload) Reset()         { *m = EventPayload{} }
func (m *EventPayload) String() string { return fmt.Sprintf("%+v", *m) }
func (*EventPayload) ProtoMessage()    {}

func (m *EventPayload) GetEvent() *Event {
	if m != nil {
		return m.Event
	}
	return nil
}

type EventStreamItem struct {
	Cursor   string        `protobuf:"bytes,1,opt,name=cursor,proto3" json:"cursor,omitempty"`
	Payload  *EventPayload `protobuf:"bytes,2,opt,name=payload,proto3" json:"payload,omitempty"`
	StreamId string        `protobuf:"bytes,3,opt,name=stream_id,json=streamId,proto3" json:"stream_id,omitempty"`
}

func (m *EventStreamItem) Reset()         { *m = EventStreamItem{} }
func (m *EventStreamItem) String() string { return fmt.Sprintf("%+v", *m) }
func (*EventStreamItem) ProtoMessage()    {}

func (m *EventStreamItem) GetPayload() *EventPayload {
	if m != nil {
		return m.Payload
	}
	return nil
}

type EventStreamRequest struct {
	StreamId     string `protobuf:"bytes,1,opt,name=stream_id,json=streamId,proto3" json:"stream_id,omitempty"`
	SubscriberId string `protobuf:"bytes,2,opt,name=subscriber_id,json=subscriberId,proto3" json:"subscriber_id,omitempty"`
	// Empty means "resume from the subscriber's persisted cursor".
	Cursor       string `protobuf:"bytes,3,opt,name=cursor,proto3" json:"cursor,omitempty"`
	MaxBatchSize uint32 `protobuf:"varint,4,opt,name=max_batch_size,json=maxBatchSize,proto3" json:"max_batch_size,omitempty"`
}

func (m *EventStreamRequest) Reset()         { *m = EventStreamRequest{} }
func (m *EventStreamRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*EventStreamRequest) ProtoMessage()    {}

type EventStreamReply struct {
	Items  []*EventStreamItem `protobuf:"bytes,1,rep,name=items,proto3" json:"items,omitempty"`
	Cursor string             `protobuf:"bytes,2,opt,name=cursor,proto3" json:"cursor,omitempty"`
}

func (m *EventStreamReply) Reset()         { *m = EventStreamReply{} }
func (m *EventStreamReply) String() string { return fmt.Sprintf("%+v", *m) }
func (*EventStreamReply) ProtoMessage()    {}

type EventSubscriberStatus struct {
	Id     string `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Cursor string `protobuf:"bytes,2,opt,name=cursor,proto3" json:"cursor,omitempty"`
}

func (m *EventSubscriberStatus) Reset()         { *m = EventSubscriberStatus{} }
func (m *EventSubscriberStatus) String() string { return fmt.Sprintf("%+v", *m) }
func (*EventSubscriberStatus) ProtoMessage()    {}

type EventMonitor struct {
	Subscribers []*EventSubscriberStatus `protobuf:"bytes,1,rep,name=subscribers,proto3" json:"subscribers,omitempty"`
}

func (m *EventMonitor) Reset()         { *m = EventMonitor{} }
func (m *EventMonitor) String() string { return fmt.Sprintf("%+v", *m) }
func (*EventMonitor) ProtoMessage()    {}

type GetMonitorReply struct {
	Monitor *EventMonitor `protobuf:"bytes,1,opt,name=monitor,proto3" json:"monitor,omitempty"`
}

func (m *GetMonitorReply) Reset()         { *m = GetMonitorReply{} }
func (m *GetMonitorReply) String() string { return fmt.Sprintf("%+v", *m) }
func (*GetMonitorReply) ProtoMessage()    {}

func (m *GetMonitorReply) GetMonitor() *EventMonitor {
	if m != nil {
		return m.Monitor
	}
	return nil
}

type GetAlbumRequest struct {
	FileName string `protobuf:"bytes,1,opt,name=file_name,json=fileName,proto3" json:"file_name,omitempty"`
}

func (m *GetAlbumRequest) Reset()         { *m = GetAlbumRequest{} }
func (m *GetAlbumRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*GetAlbumRequest) ProtoMessage()    {}

type GetAlbumReply struct {
	Album *ParsedAlbum `protobuf:"bytes,1,opt,name=album,proto3" json:"album,omitempty"`
}

func (m *GetAlbumReply) Reset()         { *m = GetAlbumReply{} }
func (m *GetAlbumReply) String() string { return fmt.Sprintf("%+v", *m) }
func (*GetAlbumReply) ProtoMessage()    {}

func (m *GetAlbumReply) GetAlbum() *ParsedAlbum {
	if m != nil {
		return m.Album
	}
	return nil
}

type AlbumEmbeddingItem struct {
	FileName     string    `protobuf:"bytes,1,opt,name=file_name,json=fileName,proto3" json:"file_name,omitempty"`
	Embedding    []float32 `protobuf:"fixed32,2,rep,packed,name=embedding,proto3" json:"embedding,omitempty"`
	EmbeddingKey string    `protobuf:"bytes,3,opt,name=embedding_key,json=embeddingKey,proto3" json:"embedding_key,omitempty"`
}

func (m *AlbumEmbeddingItem) Reset()         { *m = AlbumEmbeddingItem{} }
func (m *AlbumEmbeddingItem) String() string { return fmt.Sprintf("%+v", *m) }
func (*AlbumEmbeddingItem) ProtoMessage()    {}

type BulkUploadAlbumEmbeddingsRequest struct {
	Items []*AlbumEmbeddingItem `protobuf:"bytes,1,rep,name=items,proto3" json:"items,omitempty"`
}

func (m *BulkUploadAlbumEmbeddingsRequest) Reset()         { *m = BulkUploadAlbumEmbeddingsRequest{} }
func (m *BulkUploadAlbumEmbeddingsRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*BulkUploadAlbumEmbeddingsRequest) ProtoMessage()    {}

type BulkUploadAlbumEmbeddingsReply struct {
	Count uint32 `protobuf:"varint,1,opt,name=count,proto3" json:"count,omitempty"`
}

func (m *BulkUploadAlbumEmbeddingsReply) Reset()         { *m = BulkUploadAlbumEmbeddingsReply{} }
func (m *BulkUploadAlbumEmbeddingsReply) String() string { return fmt.Sprintf("%+v", *m) }
func (*BulkUploadAlbumEmbeddingsReply) ProtoMessage()    {}
