package transport

import (
	"math/rand"
	"net"
	"sync"
	"time"

	"github.com/pion/transport/v3/test"
)

// NetworkCondition configures network behavior simulation on a Pipe.
// Use this to exercise the session loop's handling of a flaky bulk
// link (dropped chunks, delayed delivery) without real USB hardware.
type NetworkCondition struct {
	// DropRate is the probability (0.0-1.0) of silently dropping a
	// write.
	DropRate float64

	// DelayMin/DelayMax bound an optional per-write delay, uniformly
	// distributed between them.
	DelayMin time.Duration
	DelayMax time.Duration
}

// Pipe provides a connected, in-memory pair of Bulk endpoints. It wraps
// pion's test.Bridge — the same virtual-network primitive used for
// deterministic, flaky-free transport tests — and exposes the two
// endpoints as plain net.Conn so Endpoints can lift them to Bulk.
type Pipe struct {
	bridge *test.Bridge

	mu     sync.RWMutex
	cond   NetworkCondition
	rng    *rand.Rand
	closed bool
	stopCh chan struct{}
	wg     sync.WaitGroup
}

// NewPipe creates a connected Pipe with a background goroutine that
// delivers queued bytes every millisecond.
func NewPipe() *Pipe {
	p := &Pipe{
		bridge: test.NewBridge(),
		rng:    rand.New(rand.NewSource(1)),
		stopCh: make(chan struct{}),
	}
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		ticker := time.NewTicker(time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-p.stopCh:
				return
			case <-ticker.C:
				p.bridge.Tick()
			}
		}
	}()
	return p
}

// SetCondition configures network condition simulation. Conditions
// apply to the endpoints' WriteRaw calls in both directions.
func (p *Pipe) SetCondition(cond NetworkCondition) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cond = cond
}

func (p *Pipe) condition() NetworkCondition {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.cond
}

// Close stops delivery and closes both underlying connections.
func (p *Pipe) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	p.mu.Unlock()

	close(p.stopCh)
	p.wg.Wait()

	err0 := p.bridge.GetConn0().Close()
	err1 := p.bridge.GetConn1().Close()
	if err0 != nil {
		return err0
	}
	return err1
}

// Endpoints returns a connected pair of Bulk transports: writes on one
// side become readable on the other, after any configured network
// condition is applied.
func (p *Pipe) Endpoints() (Bulk, Bulk) {
	side0 := &pipeEndpoint{conn: p.bridge.GetConn0(), pipe: p}
	side1 := &pipeEndpoint{conn: p.bridge.GetConn1(), pipe: p}
	return side0, side1
}

// pipeEndpoint adapts one side of a Pipe to Bulk directly, without
// going through Buffered, so fragmentation/timeout tests can drive the
// raw semantics precisely.
type pipeEndpoint struct {
	conn net.Conn
	pipe *Pipe
}

func (e *pipeEndpoint) ReadRaw(buf []byte) (int, error) {
	_ = e.conn.SetReadDeadline(time.Now().Add(50 * time.Millisecond))
	n, err := e.conn.Read(buf)
	if err != nil {
		if ne, ok := err.(net.Error); ok && ne.Timeout() {
			return 0, nil
		}
		return n, ErrDisconnected
	}
	return n, nil
}

func (e *pipeEndpoint) WriteRaw(buf []byte) error {
	cond := e.pipe.condition()
	if cond.DropRate > 0 {
		e.pipe.mu.Lock()
		drop := e.pipe.rng.Float64() < cond.DropRate
		e.pipe.mu.Unlock()
		if drop {
			return nil
		}
	}
	if cond.DelayMax > 0 {
		e.pipe.mu.Lock()
		delay := cond.DelayMin
		if cond.DelayMax > cond.DelayMin {
			delay += time.Duration(e.pipe.rng.Int63n(int64(cond.DelayMax - cond.DelayMin)))
		}
		e.pipe.mu.Unlock()
		if delay > 0 {
			time.Sleep(delay)
		}
	}

	_, err := e.conn.Write(buf)
	if err != nil {
		return ErrPipe
	}
	return nil
}

func (e *pipeEndpoint) FinishHandshake() {}

var _ Bulk = (*pipeEndpoint)(nil)
