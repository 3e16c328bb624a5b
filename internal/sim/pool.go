package sim

import "sync"

// SnapshotPool recycles snapshot buffers of one simulation size.
type SnapshotPool struct {
	pool  sync.Pool
	width int
	half  int
}

func NewSnapshotPool(width, half int) *SnapshotPool {
	p := &SnapshotPool{width: width, half: half}
	p.pool.New = func() interface{} {
		s := &Snapshot{}
		s.resize(width, half, half)
		return s
	}
	return p
}

func (p *SnapshotPool) Get() *Snapshot {
	return p.pool.Get().(*Snapshot)
}

func (p *SnapshotPool) Put(s *Snapshot) {
	if s == nil || s.Width != p.width || s.LineHeight != p.half || s.LifeHeight != p.half {
		return
	}
	s.Tick = 0
	p.pool.Put(s)
}
