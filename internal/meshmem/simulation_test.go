package meshmem

import (
	"context"
	"testing"
)

func TestSimulationSendReceiveRoundTrip(t *testing.T) {
	sim := NewSimulation(2, 0)

	err := sim.Run(context.Background(), func(ctx context.Context, part int) error {
		msg := sim.Messaging(part)
		if err := msg.Begin(ctx); err != nil {
			return err
		}
		other := 1 - part
		if err := msg.Pack(other, []byte{byte(part)}); err != nil {
			return err
		}
		if err := msg.Send(ctx); err != nil {
			return err
		}

		from, unpack, ok := msg.Receive(ctx)
		if !ok {
			t.Errorf("part %d: expected a message, got none", part)
			return nil
		}
		if from != other {
			t.Errorf("part %d: expected message from %d, got %d", part, other, from)
		}
		var payload []byte
		if err := unpack(&payload); err != nil {
			return err
		}
		if len(payload) != 1 || payload[0] != byte(other) {
			t.Errorf("part %d: got payload %v, want [%d]", part, payload, other)
		}

		if _, _, ok := msg.Receive(ctx); ok {
			t.Errorf("part %d: expected inbox exhausted after one message", part)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
}

func TestSimulationAllReduceSum(t *testing.T) {
	sim := NewSimulation(3, 0)

	err := sim.Run(context.Background(), func(ctx context.Context, part int) error {
		msg := sim.Messaging(part)
		total, err := msg.AllReduceSum(ctx, int64(part+1))
		if err != nil {
			return err
		}
		if total != 6 {
			t.Errorf("part %d: got total %d, want 6", part, total)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
}

func TestSimulationExScanSum(t *testing.T) {
	sim := NewSimulation(3, 0)
	want := []int64{0, 1, 3}

	err := sim.Run(context.Background(), func(ctx context.Context, part int) error {
		msg := sim.Messaging(part)
		prefix, err := msg.ExScanSum(ctx, int64(part+1))
		if err != nil {
			return err
		}
		if prefix != want[part] {
			t.Errorf("part %d: got prefix %d, want %d", part, prefix, want[part])
		}
		return nil
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
}
