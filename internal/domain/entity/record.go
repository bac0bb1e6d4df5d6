package entity

import "time"

// SecurityLabelHeader is the record header carrying the security label
// string evaluated by the access filter.
const SecurityLabelHeader = "Security-Label"

// Record represents one addressable unit of data read from a topic.
type Record struct {
	Topic     string
	Offset    int64
	Key       []byte
	Payload   []byte
	Headers   map[string]string
	Timestamp time.Time
}

// SecurityLabel returns the raw security label header, if present.
func (r *Record) SecurityLabel() (string, bool) {
	raw, ok := r.Headers[SecurityLabelHeader]
	return raw, ok
}

// ClientTopicOffset is a resumption cursor for one client on one topic.
// It holds the offset of the last record delivered to that client.
type ClientTopicOffset struct {
	Client string
	Topic  string
	Offset int64
}
