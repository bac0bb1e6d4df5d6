// receiver_client streams a topic from a federator deployment and
// writes the verified records to a local file.
package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"

	pb "github.com/National-Digital-Twin/federator-sub004/api/federation/v1"
	"github.com/National-Digital-Twin/federator-sub004/internal/domain/entity"
	"github.com/National-Digital-Twin/federator-sub004/internal/transfer"
)

var (
	serverAddr  = flag.String("server", "localhost:50051", "Federator gRPC server address")
	topic       = flag.String("topic", "knowledge", "Topic to stream")
	startOffset = flag.Int64("start-offset", -1, "Offset to start from (-1 resumes from the server-side cursor)")
	output      = flag.String("output", "./downloads/records.bin", "File to write received records to")
	jwtToken    = flag.String("jwt", "", "JWT token for authentication")
)

func main() {
	flag.Parse()

	log.Printf("Federator receiver client")
	log.Printf("Connecting to: %s", *serverAddr)
	log.Printf("Topic: %s", *topic)

	conn, err := grpc.NewClient(*serverAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer conn.Close()

	client := pb.NewFederatorServiceClient(conn)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	if *jwtToken != "" {
		ctx = metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+*jwtToken)
	}

	stream, err := client.StreamTopic(ctx, &pb.TopicRequest{
		Topic:       *topic,
		StartOffset: *startOffset,
	})
	if err != nil {
		log.Fatalf("StreamTopic failed: %v", err)
	}

	writer, err := transfer.NewFileWriter(*output)
	if err != nil {
		log.Fatalf("Failed to create output file: %v", err)
	}
	defer writer.Close()

	for {
		chunk, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			log.Fatalf("Stream error: %v", err)
		}

		err = writer.Send(&entity.TransferChunk{
			ResourceName: chunk.GetResourceName(),
			SequenceID:   chunk.GetSequenceId(),
			ChunkIndex:   chunk.GetChunkIndex(),
			TotalChunks:  chunk.GetTotalChunks(),
			Payload:      chunk.GetPayload(),
			FileSize:     chunk.GetFileSize(),
			IsLastChunk:  chunk.GetIsLastChunk(),
			Checksum:     chunk.GetChecksum(),
		})
		if err != nil {
			log.Fatalf("Failed to write chunk: %v", err)
		}
	}

	log.Printf("Stream complete: %d records written to %s", writer.Resources(), *output)
}
