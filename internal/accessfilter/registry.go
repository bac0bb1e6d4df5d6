package accessfilter

import "sync"

// Registry resolves the attribute grant for a client on a topic. A
// client with no entry for a topic has no access to it at all, which
// keeps the registry fail-closed like the filter it feeds.
type Registry struct {
	mu     sync.RWMutex
	grants map[string]map[string]Grant // client id -> topic -> grant
}

// NewRegistry builds a registry from raw configuration attributes,
// normalising every grant through NewGrant.
func NewRegistry(raw map[string]map[string]map[string][]string) *Registry {
	grants := make(map[string]map[string]Grant, len(raw))
	for client, topics := range raw {
		byTopic := make(map[string]Grant, len(topics))
		for topic, attrs := range topics {
			byTopic[topic] = NewGrant(attrs)
		}
		grants[client] = byTopic
	}
	return &Registry{grants: grants}
}

// Lookup returns the grant for client on topic. The second return is
// false when the client is unknown or holds no grant for the topic.
func (r *Registry) Lookup(client, topic string) (Grant, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	byTopic, ok := r.grants[client]
	if !ok {
		return nil, false
	}
	grant, ok := byTopic[topic]
	return grant, ok
}

// Topics lists the topics client holds grants for.
func (r *Registry) Topics(client string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	byTopic, ok := r.grants[client]
	if !ok {
		return nil
	}
	topics := make([]string, 0, len(byTopic))
	for topic := range byTopic {
		topics = append(topics, topic)
	}
	return topics
}
