package meshmem

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/danmuck/meshghost/internal/meshapi"
)

// Simulation is a same-process stand-in for a multi-part mesh job: one Mesh
// and one Messaging per part, with every Messaging call synchronized across
// parts by a shared barrier. It is the only meshapi.Messaging implementation
// in this repo.
type Simulation struct {
	meshes []*Mesh
	msgs   []*simMessaging

	beginBarrier  *cyclicBarrier
	sendBarrier   *cyclicBarrier
	reduceBarrier *cyclicBarrier
	scanBarrier   *cyclicBarrier

	mu         sync.Mutex
	reduceVals []int64
}

// NewSimulation builds a Simulation of n parts, each with a Mesh of the
// given topological dimension.
func NewSimulation(n, dim int) *Simulation {
	s := &Simulation{
		meshes:        make([]*Mesh, n),
		msgs:          make([]*simMessaging, n),
		beginBarrier:  newCyclicBarrier(n),
		sendBarrier:   newCyclicBarrier(n),
		reduceBarrier: newCyclicBarrier(n),
		scanBarrier:   newCyclicBarrier(n),
		reduceVals:    make([]int64, n),
	}
	for p := 0; p < n; p++ {
		s.meshes[p] = New(p, dim)
		s.msgs[p] = &simMessaging{sim: s, rank: p}
	}
	return s
}

func (s *Simulation) PartCount() int { return len(s.meshes) }

func (s *Simulation) Mesh(part int) *Mesh { return s.meshes[part] }

func (s *Simulation) Messaging(part int) meshapi.Messaging { return s.msgs[part] }

// Run invokes fn once per part, each on its own goroutine, and waits for all
// of them to finish (or the first error, which cancels ctx for the rest).
// Code inside fn drives its own Begin/Send/Receive rounds against the
// Messaging returned by Simulation.Messaging.
func (s *Simulation) Run(ctx context.Context, fn func(ctx context.Context, part int) error) error {
	g, gctx := errgroup.WithContext(ctx)
	for p := 0; p < len(s.meshes); p++ {
		part := p
		g.Go(func() error {
			return fn(gctx, part)
		})
	}
	return g.Wait()
}

type inboundMsg struct {
	from    int
	payload []byte
}

type simMessaging struct {
	sim  *Simulation
	rank int

	outbox map[int][][]byte
	inbox  []inboundMsg
}

func (sm *simMessaging) Rank() int      { return sm.rank }
func (sm *simMessaging) PeerCount() int { return len(sm.sim.meshes) }

func (sm *simMessaging) Begin(ctx context.Context) error {
	sm.outbox = make(map[int][][]byte)
	sm.inbox = nil
	return sm.sim.beginBarrier.Wait(ctx)
}

func (sm *simMessaging) Pack(to int, v any) error {
	if to < 0 || to >= len(sm.sim.meshes) {
		return fmt.Errorf("meshmem: pack to out-of-range part %d", to)
	}
	b, ok := v.([]byte)
	if !ok {
		return fmt.Errorf("meshmem: messaging only packs []byte payloads, got %T", v)
	}
	buf := make([]byte, len(b))
	copy(buf, b)
	sm.outbox[to] = append(sm.outbox[to], buf)
	return nil
}

func (sm *simMessaging) Send(ctx context.Context) error {
	sm.sim.mu.Lock()
	for to, msgs := range sm.outbox {
		dst := sm.sim.msgs[to]
		for _, payload := range msgs {
			dst.inbox = append(dst.inbox, inboundMsg{from: sm.rank, payload: payload})
		}
	}
	sm.sim.mu.Unlock()
	return sm.sim.sendBarrier.Wait(ctx)
}

func (sm *simMessaging) Receive(ctx context.Context) (int, func(v any) error, bool) {
	if len(sm.inbox) == 0 {
		return 0, nil, false
	}
	msg := sm.inbox[0]
	sm.inbox = sm.inbox[1:]
	unpack := func(v any) error {
		dst, ok := v.(*[]byte)
		if !ok {
			return fmt.Errorf("meshmem: receive unpack target must be *[]byte, got %T", v)
		}
		*dst = msg.payload
		return nil
	}
	return msg.from, unpack, true
}

func (sm *simMessaging) AllReduceSum(ctx context.Context, local int64) (int64, error) {
	sm.sim.mu.Lock()
	sm.sim.reduceVals[sm.rank] = local
	sm.sim.mu.Unlock()

	if err := sm.sim.reduceBarrier.Wait(ctx); err != nil {
		return 0, err
	}

	var total int64
	sm.sim.mu.Lock()
	for _, v := range sm.sim.reduceVals {
		total += v
	}
	sm.sim.mu.Unlock()

	if err := sm.sim.scanBarrier.Wait(ctx); err != nil {
		return 0, err
	}
	return total, nil
}

func (sm *simMessaging) ExScanSum(ctx context.Context, local int64) (int64, error) {
	sm.sim.mu.Lock()
	sm.sim.reduceVals[sm.rank] = local
	sm.sim.mu.Unlock()

	if err := sm.sim.reduceBarrier.Wait(ctx); err != nil {
		return 0, err
	}

	var prefix int64
	sm.sim.mu.Lock()
	for p := 0; p < sm.rank; p++ {
		prefix += sm.sim.reduceVals[p]
	}
	sm.sim.mu.Unlock()

	if err := sm.sim.scanBarrier.Wait(ctx); err != nil {
		return 0, err
	}
	return prefix, nil
}
