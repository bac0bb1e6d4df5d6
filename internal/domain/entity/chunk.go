package entity

// TransferChunk is the unit handed to the wire. A resource is delivered as
// chunkIndex 0..totalChunks-1 data chunks followed by exactly one terminal
// chunk carrying no payload and the base64 SHA-256 checksum of the full
// byte stream.
type TransferChunk struct {
	ResourceName string
	SequenceID   int64
	ChunkIndex   int32
	TotalChunks  int32
	Payload      []byte
	FileSize     int64
	IsLastChunk  bool
	Checksum     string // present only when IsLastChunk
}
