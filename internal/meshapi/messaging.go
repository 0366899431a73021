package meshapi

import "context"

// Messaging is the bulk-synchronous messaging collaborator: per-peer packed
// byte streams inside a collective round, plus integer reductions.
// Excluded from this repo per spec.md §1; internal/meshmem ships a
// same-process simulation.
type Messaging interface {
	// Rank is this part's id, equal to the messaging rank in a
	// one-part-per-process deployment.
	Rank() int
	// PeerCount is the number of parts in the job, including this one.
	PeerCount() int

	// Begin opens a new collective round. All Pack/Send calls in a round
	// must be matched by Receive calls on every part before the next round
	// begins; the reference implementation enforces this with a barrier.
	Begin(ctx context.Context) error
	// Pack appends a POD or entity-handle payload to the per-peer outgoing
	// buffer for part `to`. Safe to call repeatedly before Send.
	Pack(to int, v any) error
	// Send flushes every part's packed buffers and blocks until all other
	// parts have also called Send for this round.
	Send(ctx context.Context) error
	// Receive pops one buffered message sent to this part this round. ok is
	// false once every message for the round has been drained. unpack
	// decodes the payload into v (a pointer).
	Receive(ctx context.Context) (from int, unpack func(v any) error, ok bool)

	// AllReduceSum sums local across every part and returns the total to
	// all parts.
	AllReduceSum(ctx context.Context, local int64) (int64, error)
	// ExScanSum returns the exclusive prefix sum of local across parts
	// ordered by rank.
	ExScanSum(ctx context.Context, local int64) (int64, error)
}
