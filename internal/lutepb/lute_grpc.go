package lutepb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
)

// Fully-qualified service names as registered by the lute server.
const (
	EventServiceName = "lute.EventService"
	AlbumServiceName = "lute.AlbumService"
)

// EventServiceClient is the client API for the lute EventService.
type EventServiceClient interface {
	GetMonitor(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*GetMonitorReply, error)
	Stream(ctx context.Context, opts ...grpc.CallOption) (EventService_StreamClient, error)
}

type eventServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewEventServiceClient(cc grpc.ClientConnInterface) EventServiceClient {
	return &eventServiceClient{cc}
}

func (c *eventServiceClient) GetMonitor(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*GetMonitorReply, error) {
	out := new(GetMonitorReply)
	err := c.cc.Invoke(ctx, "/lute.EventService/GetMonitor", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *eventServiceClient) Stream(ctx context.Context, opts ...grpc.CallOption) (EventService_StreamClient, error) {
	stream, err := c.cc.NewStream(ctx, &eventServiceDesc.Streams[0], "/lute.EventService/Stream", opts...)
	if err != nil {
		return nil, err
	}
	return &eventServiceStreamClient{stream}, nil
}

type EventService_StreamClient interface {
	Send(*EventStreamRequest) error
	Recv() (*EventStreamReply, error)
	grpc.ClientStream
}

type eventServiceStreamClient struct {
	grpc.ClientStream
}

func (x *eventServiceStreamClient) Send(m *EventStreamRequest) error {
	return x.ClientStream.SendMsg(m)
}

func (x *eventServiceStreamClient) Recv() (*EventStreamReply, error) {
	m := new(EventStreamReply)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

// EventServiceServer is the server API for the lute EventService. Implemented
// in-process only by test fakes; the real server lives in lute core.
type EventServiceServer interface {
	GetMonitor(context.Context, *emptypb.Empty) (*GetMonitorReply, error)
	Stream(EventService_StreamServer) error
}

type EventService_StreamServer interface {
	Send(*EventStreamReply) error
	Recv() (*EventStreamRequest, error)
	grpc.ServerStream
}

type eventServiceStreamServer struct {
	grpc.ServerStream
}

func (x *eventServiceStreamServer) Send(m *EventStreamReply) error {
	return x.ServerStream.SendMsg(m)
}

func (x *eventServiceStreamServer) Recv() (*EventStreamRequest, error) {
	m := new(EventStreamRequest)
	if err := x.ServerStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

func RegisterEventServiceServer(s grpc.ServiceRegistrar, srv EventServiceServer) {
	s.RegisterService(&eventServiceDesc, srv)
}

func _EventService_GetMonitor_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EventServiceServer).GetMonitor(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/lute.EventService/GetMonitor",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EventServiceServer).GetMonitor(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _EventService_Stream_Handler(srv interface{}, stream grpc.ServerStream) error {
	return srv.(EventServiceServer).Stream(&eventServiceStreamServer{stream})
}

var eventServiceDesc = grpc.ServiceDesc{
	ServiceName: EventServiceName,
	HandlerType: (*EventServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetMonitor",
			Handler:    _EventService_GetMonitor_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "Stream",
			Handler:       _EventService_Stream_Handler,
			ServerStreams: true,
			ClientStreams: true,
		},
	},
	Metadata: "proto/lute.proto",
}

// AlbumServiceClient is the client API for the lute AlbumService.
type AlbumServiceClient interface {
	GetAlbum(ctx context.Context, in *GetAlbumRequest, opts ...grpc.CallOption) (*GetAlbumReply, error)
	BulkUploadAlbumEmbeddings(ctx context.Context, opts ...grpc.CallOption) (AlbumService_BulkUploadAlbumEmbeddingsClient, error)
}

type albumServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewAlbumServiceClient(cc grpc.ClientConnInterface) AlbumServiceClient {
	return &albumServiceClient{cc}
}

func (c *albumServiceClient) GetAlbum(ctx context.Context, in *GetAlbumRequest, opts ...grpc.CallOption) (*GetAlbumReply, error) {
	out := new(GetAlbumReply)
	err := c.cc.Invoke(ctx, "/lute.AlbumService/GetAlbum", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *albumServiceClient) BulkUploadAlbumEmbeddings(ctx context.Context, opts ...grpc.CallOption) (AlbumService_BulkUploadAlbumEmbeddingsClient, error) {
	stream, err := c.cc.NewStream(ctx, &albumServiceDesc.Streams[0], "/lute.AlbumService/BulkUploadAlbumEmbeddings", opts...)
	if err != nil {
		return nil, err
	}
	return &albumServiceBulkUploadClient{stream}, nil
}

type AlbumService_BulkUploadAlbumEmbeddingsClient interface {
	Send(*BulkUploadAlbumEmbeddingsRequest) error
	CloseAndRecv() (*BulkUploadAlbumEmbeddingsReply, error)
	grpc.ClientStream
}

type albumServiceBulkUploadClient struct {
	grpc.ClientStream
}

func (x *albumServiceBulkUploadClient) Send(m *BulkUploadAlbumEmbeddingsRequest) error {
	return x.ClientStream.SendMsg(m)
}

func (x *albumServiceBulkUploadClient) CloseAndRecv() (*BulkUploadAlbumEmbeddingsReply, error) {
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	m := new(BulkUploadAlbumEmbeddingsReply)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

// AlbumServiceServer is the server API for the lute AlbumService. Implemented
// in-process only by test fakes.
type AlbumServiceServer interface {
	GetAlbum(context.Context, *GetAlbumRequest) (*GetAlbumReply, error)
	BulkUploadAlbumEmbeddings(AlbumService_BulkUploadAlbumEmbeddingsServer) error
}

type AlbumService_BulkUploadAlbumEmbeddingsServer interface {
	SendAndClose(*BulkUploadAlbumEmbeddingsReply) error
	Recv() (*BulkUploadAlbumEmbeddingsRequest, error)
	grpc.ServerStream
}

type albumServiceBulkUploadServer struct {
	grpc.ServerStream
}

func (x *albumServiceBulkUploadServer) SendAndClose(m *BulkUploadAlbumEmbeddingsReply) error {
	return x.ServerStream.SendMsg(m)
}

func (x *albumServiceBulkUploadServer) Recv() (*BulkUploadAlbumEmbeddingsRequest, error) {
	m := new(BulkUploadAlbumEmbeddingsRequest)
	if err := x.ServerStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

func RegisterAlbumServiceServer(s grpc.ServiceRegistrar, srv AlbumServiceServer) {
	s.RegisterService(&albumServiceDesc, srv)
}

func _AlbumService_GetAlbum_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetAlbumRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AlbumServiceServer).GetAlbum(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/lute.AlbumService/GetAlbum",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AlbumServiceServer).GetAlbum(ctx, req.(*GetAlbumRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AlbumService_BulkUploadAlbumEmbeddings_Handler(srv interface{}, stream grpc.ServerStream) error {
	return srv.(AlbumServiceServer).BulkUploadAlbumEmbeddings(&albumServiceBulkUploadServer{stream})
}

var albumServiceDesc = grpc.ServiceDesc{
	ServiceName: AlbumServiceName,
	HandlerType: (*AlbumServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetAlbum",
			Handler:    _AlbumService_GetAlbum_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "BulkUploadAlbumEmbeddings",
			Handler:       _AlbumService_BulkUploadAlbumEmbeddings_Handler,
			ClientStreams: true,
		},
	},
	Metadata: "proto/lute.proto",
}
