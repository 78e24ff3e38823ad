package store

// Posn tracks put/get cursors over a bounded circular buffer without owning
// the storage itself.
type Posn struct {
	capacity int
	putPos   int
	getPos   int
	count    int
}

func NewPosn(capacity int) *Posn {
	if capacity <= 0 {
		capacity = 1
	}
	return &Posn{capacity: capacity}
}

func (p *Posn) CanPut() bool {
	return p.count < p.capacity
}

func (p *Posn) CanGet() bool {
	return p.count > 0
}

func (p *Posn) PutPos() int {
	return p.putPos
}

func (p *Posn) GetPos() int {
	return p.getPos
}

func (p *Posn) HasPut() {
	if p.count >= p.capacity {
		return
	}
	p.putPos = (p.putPos + 1) % p.capacity
	p.count++
}

func (p *Posn) HasGot() {
	if p.count == 0 {
		return
	}
	p.getPos = (p.getPos + 1) % p.capacity
	p.count--
}

func (p *Posn) Count() int {
	return p.count
}

func (p *Posn) Clear() {
	p.putPos = 0
	p.getPos = 0
	p.count = 0
}

// ByteRing is a fixed-capacity FIFO byte buffer. When full it rejects new
// bytes rather than overwriting, so the oldest bytes are preserved.
type ByteRing struct {
	buf  []byte
	posn *Posn
}

func NewByteRing(capacity int) *ByteRing {
	if capacity <= 0 {
		capacity = 1
	}
	return &ByteRing{buf: make([]byte, capacity), posn: NewPosn(capacity)}
}

// Put appends one byte, reporting false when the ring is full and the byte
// was dropped.
func (r *ByteRing) Put(b byte) bool {
	if !r.posn.CanPut() {
		return false
	}
	r.buf[r.posn.PutPos()] = b
	r.posn.HasPut()
	return true
}

func (r *ByteRing) Get() (byte, bool) {
	if !r.posn.CanGet() {
		return 0, false
	}
	b := r.buf[r.posn.GetPos()]
	r.posn.HasGot()
	return b, true
}

func (r *ByteRing) Len() int {
	return r.posn.Count()
}

func (r *ByteRing) Cap() int {
	return len(r.buf)
}

func (r *ByteRing) Clear() {
	r.posn.Clear()
}
