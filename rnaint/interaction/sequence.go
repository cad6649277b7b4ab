package interaction

// SequenceStore is an arena owning the sequences a prediction runs over.
// Interactions reference sequences through a SequenceHandle rather than a
// string or pointer, so a handle can be copied freely without risking a
// dangling reference once the store it came from goes out of scope.
type SequenceStore struct {
	sequences []string
	names     []string
}

// NewSequenceStore creates an empty arena.
func NewSequenceStore() *SequenceStore {
	return &SequenceStore{}
}

// Add registers a sequence under name and returns a handle to it.
func (s *SequenceStore) Add(name, sequence string) SequenceHandle {
	s.sequences = append(s.sequences, sequence)
	s.names = append(s.names, name)
	return SequenceHandle{store: s, index: len(s.sequences) - 1}
}

// SequenceHandle is a non-owning reference to a sequence inside a
// SequenceStore. The zero value is not a valid handle.
type SequenceHandle struct {
	store *SequenceStore
	index int
}

// Sequence returns the referenced sequence's raw bases.
func (h SequenceHandle) Sequence() string {
	return h.store.sequences[h.index]
}

// Name returns the referenced sequence's label.
func (h SequenceHandle) Name() string {
	return h.store.names[h.index]
}

// Len returns the number of bases in the referenced sequence.
func (h SequenceHandle) Len() Position {
	return Position(len(h.store.sequences[h.index]))
}

// SameSequence reports whether h and other reference the same arena slot.
func (h SequenceHandle) SameSequence(other SequenceHandle) bool {
	return h.store == other.store && h.index == other.index
}

// IsValid reports whether the handle refers to a real store slot.
func (h SequenceHandle) IsValid() bool {
	return h.store != nil && h.index >= 0 && h.index < len(h.store.sequences)
}
