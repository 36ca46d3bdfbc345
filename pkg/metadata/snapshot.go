package metadata

import "sort"

// Snapshot is one immutable capture-result: a mapping from result key to
// typed value, stamped with the capture timestamp. A snapshot is built once
// per translation pass and never modified afterwards; it is safe to share
// across goroutines.
type Snapshot struct {
	values map[Key]any
}

// NewSnapshot builds a snapshot from an accumulator map. The map is copied;
// the caller keeps ownership of its argument.
func NewSnapshot(values map[Key]any) *Snapshot {
	copied := make(map[Key]any, len(values))
	for k, v := range values {
		copied[k] = v
	}
	return &Snapshot{values: copied}
}

// Get returns the value stored for key, and whether the key is present.
func (s *Snapshot) Get(key Key) (any, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Keys returns every present key in sorted order.
func (s *Snapshot) Keys() []Key {
	keys := make([]Key, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Len returns the number of present keys.
func (s *Snapshot) Len() int { return len(s.values) }

// Timestamp returns the sensor timestamp in nanoseconds, or 0 if the
// timestamp key is absent.
func (s *Snapshot) Timestamp() int64 {
	if v, ok := s.values[KeySensorTimestamp]; ok {
		if ts, ok := v.(int64); ok {
			return ts
		}
	}
	return 0
}

// Equal reports field-for-field equality with other. All values written by
// the mapper are comparable (enums, numbers, plain structs).
func (s *Snapshot) Equal(other *Snapshot) bool {
	if len(s.values) != len(other.values) {
		return false
	}
	for k, v := range s.values {
		if ov, ok := other.values[k]; !ok || ov != v {
			return false
		}
	}
	return true
}

// Values returns a copy of the underlying mapping, for serialization and
// diffing. Mutating the copy does not affect the snapshot.
func (s *Snapshot) Values() map[Key]any {
	copied := make(map[Key]any, len(s.values))
	for k, v := range s.values {
		copied[k] = v
	}
	return copied
}
