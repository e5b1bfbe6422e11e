package bind_group_provider

import "sort"

// BufferWrite describes a single GPU buffer write operation targeting a specific binding
// on a BindGroupProvider at a given byte offset.
type BufferWrite struct {
	Provider BindGroupProvider
	Binding  int
	Offset   uint64
	Data     []byte
}

// NewBufferWrites builds one write per binding, ordered by binding index. Empty payloads are
// skipped: an empty collection still owns a one-element buffer, but there is nothing to upload.
//
// Parameters:
//   - provider: the provider every write targets
//   - payloads: byte payloads keyed by binding index
//
// Returns:
//   - []BufferWrite: the writes, lowest binding first
func NewBufferWrites(provider BindGroupProvider, payloads map[int][]byte) []BufferWrite {
	bindings := make([]int, 0, len(payloads))
	for b, data := range payloads {
		if len(data) == 0 {
			continue
		}
		bindings = append(bindings, b)
	}
	sort.Ints(bindings)

	writes := make([]BufferWrite, 0, len(bindings))
	for _, b := range bindings {
		writes = append(writes, BufferWrite{
			Provider: provider,
			Binding:  b,
			Data:     payloads[b],
		})
	}
	return writes
}
