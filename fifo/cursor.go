package fifo

// CursorStrategy selects the internal representation of the write/read
// cursors and the occupancy.
type CursorStrategy int

const (
	// CursorWrapPointer keeps the write and read pointers one bit wider
	// than an address. The extra bit toggles on every wraparound, so full
	// and empty can be told apart when the addresses are equal.
	CursorWrapPointer CursorStrategy = iota

	// CursorCounting keeps plain address counters plus an independent
	// occupancy counter.
	CursorCounting
)

// A cursor tracks how many live words are queued and where the next write
// and read land. The two implementations must stay behaviorally equivalent;
// they are checked against each other by differential tests.
type cursor interface {
	occupancy() int
	full() bool
	empty() bool
	writeAddr() int
	readAddr() int
	advanceWrite()
	advanceRead()
	reset()
}

func newCursor(strategy CursorStrategy, capacity int) cursor {
	switch strategy {
	case CursorCounting:
		return &countingCursor{capacity: capacity}
	default:
		return &wrapPointerCursor{capacity: capacity}
	}
}

// wrapPointerCursor keeps pointers in [0, 2*capacity). The low bits are the
// address, the top bit is the wrap bit.
type wrapPointerCursor struct {
	capacity int
	writePtr int
	readPtr  int
}

func (c *wrapPointerCursor) occupancy() int {
	return (c.writePtr - c.readPtr) & (2*c.capacity - 1)
}

func (c *wrapPointerCursor) full() bool {
	// Same address, different wrap bits.
	return c.writePtr^c.readPtr == c.capacity
}

func (c *wrapPointerCursor) empty() bool {
	return c.writePtr == c.readPtr
}

func (c *wrapPointerCursor) writeAddr() int {
	return c.writePtr & (c.capacity - 1)
}

func (c *wrapPointerCursor) readAddr() int {
	return c.readPtr & (c.capacity - 1)
}

func (c *wrapPointerCursor) advanceWrite() {
	c.writePtr = (c.writePtr + 1) & (2*c.capacity - 1)
}

func (c *wrapPointerCursor) advanceRead() {
	c.readPtr = (c.readPtr + 1) & (2*c.capacity - 1)
}

func (c *wrapPointerCursor) reset() {
	c.writePtr = 0
	c.readPtr = 0
}

// countingCursor keeps plain addresses in [0, capacity) and counts live
// words independently.
type countingCursor struct {
	capacity int
	wAddr    int
	rAddr    int
	count    int
}

func (c *countingCursor) occupancy() int {
	return c.count
}

func (c *countingCursor) full() bool {
	return c.count == c.capacity
}

func (c *countingCursor) empty() bool {
	return c.count == 0
}

func (c *countingCursor) writeAddr() int {
	return c.wAddr
}

func (c *countingCursor) readAddr() int {
	return c.rAddr
}

func (c *countingCursor) advanceWrite() {
	c.wAddr = (c.wAddr + 1) & (c.capacity - 1)
	c.count++
}

func (c *countingCursor) advanceRead() {
	c.rAddr = (c.rAddr + 1) & (c.capacity - 1)
	c.count--
}

func (c *countingCursor) reset() {
	c.wAddr = 0
	c.rAddr = 0
	c.count = 0
}
