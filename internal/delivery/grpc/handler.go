// Package grpc exposes the federation operations over the gRPC surface.
package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/National-Digital-Twin/federator-sub004/api/federation/v1"
	"github.com/National-Digital-Twin/federator-sub004/internal/accessfilter"
	"github.com/National-Digital-Twin/federator-sub004/internal/auth"
	"github.com/National-Digital-Twin/federator-sub004/internal/domain/entity"
	"github.com/National-Digital-Twin/federator-sub004/internal/streamer"
	"github.com/National-Digital-Twin/federator-sub004/internal/transfer"
	"github.com/National-Digital-Twin/federator-sub004/pkg/logger"
)

// TransferRunner is the slice of the transfer session the handler
// drives.
type TransferRunner interface {
	RunTopicTransfer(ctx context.Context, clientID, topic string, grant accessfilter.Grant, startOffset int64, w streamer.ChunkWriter) (int, error)
	RunFileTransfer(ctx context.Context, req entity.FileTransferRequest, sequenceID int64, w streamer.ChunkWriter) error
	DeliveredOffset(ctx context.Context, clientID, topic string) (int64, bool, error)
}

// FederatorHandler implements the gRPC FederatorService.
type FederatorHandler struct {
	pb.UnimplementedFederatorServiceServer
	runner   TransferRunner
	registry *accessfilter.Registry
	logger   *logger.Logger
}

// NewFederatorHandler creates a new gRPC handler.
func NewFederatorHandler(runner TransferRunner, registry *accessfilter.Registry, log *logger.Logger) *FederatorHandler {
	return &FederatorHandler{
		runner:   runner,
		registry: registry,
		logger:   log,
	}
}

// chunkSender adapts the gRPC server stream to the chunk writer the
// streamer feeds.
type chunkSender struct {
	stream grpc.ServerStreamingServer[pb.TransferChunk]
}

func (s chunkSender) Send(c *entity.TransferChunk) error {
	return s.stream.Send(&pb.TransferChunk{
		ResourceName: c.ResourceName,
		SequenceId:   c.SequenceID,
		ChunkIndex:   c.ChunkIndex,
		TotalChunks:  c.TotalChunks,
		Payload:      c.Payload,
		FileSize:     c.FileSize,
		IsLastChunk:  c.IsLastChunk,
		Checksum:     c.Checksum,
	})
}

// authorize resolves the caller's identity and its grant for topic.
func (h *FederatorHandler) authorize(ctx context.Context, topic string) (string, accessfilter.Grant, error) {
	clientID, ok := auth.ClientIDFromContext(ctx)
	if !ok {
		return "", nil, status.Error(codes.Unauthenticated, "no authenticated client")
	}
	grant, ok := h.registry.Lookup(clientID, topic)
	if !ok {
		return "", nil, status.Errorf(codes.PermissionDenied, "client %s has no grant for topic %s", clientID, topic)
	}
	return clientID, grant, nil
}

// statusFromTransferError converts the transfer error taxonomy into
// gRPC status codes.
func statusFromTransferError(err error) error {
	if err == nil {
		return nil
	}
	switch transfer.KindOf(err) {
	case transfer.KindConfiguration:
		return status.Error(codes.InvalidArgument, err.Error())
	case transfer.KindSourceUnavailable:
		return status.Error(codes.Unavailable, err.Error())
	case transfer.KindFileIO:
		return status.Error(codes.NotFound, err.Error())
	case transfer.KindStreamTransport:
		return status.Error(codes.Aborted, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

// StreamTopic streams every record of a topic the caller's grant admits,
// resuming from the stored offset when start_offset is negative.
func (h *FederatorHandler) StreamTopic(req *pb.TopicRequest, stream grpc.ServerStreamingServer[pb.TransferChunk]) error {
	if req.GetTopic() == "" {
		return status.Error(codes.InvalidArgument, "topic cannot be empty")
	}

	ctx := stream.Context()
	clientID, grant, err := h.authorize(ctx, req.GetTopic())
	if err != nil {
		return err
	}

	h.logger.Info("StreamTopic request",
		logger.String("client", clientID),
		logger.String("topic", req.GetTopic()),
		logger.Int64("start_offset", req.GetStartOffset()),
	)

	streamed, err := h.runner.RunTopicTransfer(ctx, clientID, req.GetTopic(), grant, req.GetStartOffset(), chunkSender{stream: stream})
	if err != nil {
		h.logger.Warn("StreamTopic failed",
			logger.String("client", clientID),
			logger.String("topic", req.GetTopic()),
			logger.Int("records_streamed", streamed),
			logger.Error(err),
		)
		return statusFromTransferError(err)
	}
	return nil
}

// StreamFile streams one file from the named object store.
func (h *FederatorHandler) StreamFile(req *pb.FileRequest, stream grpc.ServerStreamingServer[pb.TransferChunk]) error {
	if req.GetTopic() == "" {
		return status.Error(codes.InvalidArgument, "topic cannot be empty")
	}

	kind, err := entity.ParseSourceKind(req.GetSourceKind())
	if err != nil {
		return status.Error(codes.InvalidArgument, err.Error())
	}

	ctx := stream.Context()
	clientID, _, err := h.authorize(ctx, req.GetTopic())
	if err != nil {
		return err
	}

	h.logger.Info("StreamFile request",
		logger.String("client", clientID),
		logger.String("source_kind", req.GetSourceKind()),
		logger.String("container", req.GetContainer()),
		logger.String("path", req.GetPath()),
	)

	ftr := entity.FileTransferRequest{
		SourceKind: kind,
		Container:  req.GetContainer(),
		Path:       req.GetPath(),
	}
	if err := h.runner.RunFileTransfer(ctx, ftr, req.GetSequenceId(), chunkSender{stream: stream}); err != nil {
		h.logger.Warn("StreamFile failed",
			logger.String("client", clientID),
			logger.String("path", req.GetPath()),
			logger.Error(err),
		)
		return statusFromTransferError(err)
	}
	return nil
}

// GetOffset reports the caller's last delivered offset on a topic.
func (h *FederatorHandler) GetOffset(ctx context.Context, req *pb.OffsetRequest) (*pb.OffsetResponse, error) {
	if req.GetTopic() == "" {
		return nil, status.Error(codes.InvalidArgument, "topic cannot be empty")
	}

	clientID, _, err := h.authorize(ctx, req.GetTopic())
	if err != nil {
		return nil, err
	}

	offset, found, err := h.runner.DeliveredOffset(ctx, clientID, req.GetTopic())
	if err != nil {
		return nil, statusFromTransferError(err)
	}
	return &pb.OffsetResponse{Offset: offset, Found: found}, nil
}
