package vecstore

import "sync"

// VectorStore is a named registry of keyspaces.
//
// Keyspaces are held as shared references in registration order and
// looked up by name. Names are expected to be unique within one store
// but this is not structurally enforced: AddKeyspace never checks for
// collisions, Keyspace returns the first match, and RemoveKeyspace
// removes every match. See the package tests for the exact duplicate
// semantics.
type VectorStore struct {
	name string

	mu        sync.RWMutex
	keyspaces []*Keyspace

	// opts are propagated to keyspaces built via CreateKeyspace.
	opts Options
}

// New creates an empty VectorStore with the given name.
func New(name string, optFns ...func(o *Options)) *VectorStore {
	opts := applyOptions(optFns...)

	s := &VectorStore{
		name: name,
		opts: opts,
	}

	s.opts.Logger.Info("store created", "store", name)

	return s
}

// Name returns the store name.
func (s *VectorStore) Name() string { return s.name }

// Len returns the number of registered keyspaces.
func (s *VectorStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.keyspaces)
}

// AddKeyspace registers a keyspace with the store.
// Duplicate names are not rejected; the caller owns name uniqueness.
func (s *VectorStore) AddKeyspace(ks *Keyspace) {
	s.mu.Lock()
	s.keyspaces = append(s.keyspaces, ks)
	s.mu.Unlock()

	s.opts.Logger.LogKeyspaceEvent("keyspace registered", ks.Name(), ks.Dimension())
}

// RemoveKeyspace removes every registered keyspace with the given name
// and returns the number removed. Handles held outside the store stay
// valid; only the store's references are dropped.
func (s *VectorStore) RemoveKeyspace(name string) int {
	s.mu.Lock()

	removed := 0
	kept := s.keyspaces[:0]
	for _, ks := range s.keyspaces {
		if ks.Name() == name {
			removed++
			continue
		}
		kept = append(kept, ks)
	}
	for i := len(kept); i < len(s.keyspaces); i++ {
		s.keyspaces[i] = nil
	}
	s.keyspaces = kept

	s.mu.Unlock()

	if removed > 0 {
		s.opts.Logger.Info("keyspace removed",
			"store", s.name,
			"keyspace", name,
			"count", removed,
		)
	}

	return removed
}

// Keyspace returns the first registered keyspace with the given name.
// It returns ErrNotFound when no keyspace matches.
func (s *VectorStore) Keyspace(name string) (*Keyspace, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, ks := range s.keyspaces {
		if ks.Name() == name {
			return ks, nil
		}
	}

	return nil, ErrNotFound
}

// CreateKeyspace constructs a keyspace with the given dimension and
// name, registers it, and returns the shared reference. The store's
// logger and metrics collector are propagated to the new keyspace.
func (s *VectorStore) CreateKeyspace(dimension int, name string) (*Keyspace, error) {
	ks, err := NewKeyspace(name, dimension,
		WithLogger(s.opts.Logger),
		WithMetrics(s.opts.Metrics),
	)
	if err != nil {
		return nil, err
	}

	s.AddKeyspace(ks)

	return ks, nil
}

// Keyspaces returns a snapshot of the registered keyspaces in
// registration order. The returned slice is a copy; the keyspace
// handles are shared.
func (s *VectorStore) Keyspaces() []*Keyspace {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Keyspace, len(s.keyspaces))
	copy(out, s.keyspaces)
	return out
}
