package dump

// rowState tracks the in-progress row. The byte buffer is allocated once
// with the row width as capacity and reused in place for every row.
type rowState struct {
	addr   uint64 // file offset of the row's first byte
	buf    []byte // bytes collected this row; len(buf) == column
	column int    // next write position, 0..width
	index  int    // rows emitted so far
}

func newRowState(width int, addr uint64) *rowState {
	return &rowState{addr: addr, buf: make([]byte, 0, width)}
}

func (r *rowState) push(b byte) {
	r.buf = append(r.buf, b)
	r.column++
}

// reset prepares the state for the next row without reallocating.
func (r *rowState) reset(addr uint64) {
	r.addr = addr
	r.buf = r.buf[:0]
	r.column = 0
	r.index++
}
