// Package repository wires concrete store backends behind the domain
// interfaces. ObjectStores selects the backend for a file transfer by its
// source kind, one implementation per kind rather than runtime type
// inspection.
package repository

import (
	"fmt"

	"github.com/National-Digital-Twin/federator-sub004/internal/domain/entity"
	domain "github.com/National-Digital-Twin/federator-sub004/internal/domain/repository"
)

// ObjectStores holds one store per source kind. A nil entry means that
// backend is not configured in this deployment.
type ObjectStores struct {
	Local        domain.ObjectStore
	ObjectStoreA domain.ObjectStore
	ObjectStoreB domain.ObjectStore
}

// ForKind returns the store serving the given source kind.
func (s ObjectStores) ForKind(kind entity.SourceKind) (domain.ObjectStore, error) {
	var store domain.ObjectStore
	switch kind {
	case entity.SourceLocal:
		store = s.Local
	case entity.SourceObjectStoreA:
		store = s.ObjectStoreA
	case entity.SourceObjectStoreB:
		store = s.ObjectStoreB
	default:
		return nil, fmt.Errorf("unrecognised source kind: %q", kind)
	}

	if store == nil {
		return nil, fmt.Errorf("source kind %s is not configured", kind)
	}
	return store, nil
}
