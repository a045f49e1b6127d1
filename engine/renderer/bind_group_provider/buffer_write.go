package bind_group_provider

// BufferWrite is one pending upload of Data into the buffer at Binding on Provider.
// The renderer collects these during a frame and flushes them before encoding the pass.
type BufferWrite struct {
	Provider BindGroupProvider
	Binding  int
	Offset   uint64
	Data     []byte
}
