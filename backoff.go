package mqtt

import "time"

// Backoff is a capped exponential backoff for callers polling
// GetIncomingPacketTypeAndLength against a PacketReader that comes back empty
// (StatusNoDataAvailable): call Miss before each retry, and Hit once a read
// finally succeeds to collapse the wait back down. Set MaxWait before first
// use; Hit and Miss both panic otherwise.
type Backoff struct {
	// Wait is what the next Miss will sleep for.
	Wait time.Duration
	// MaxWait is the ceiling Wait saturates at. Must be set.
	MaxWait time.Duration
	// StartWait is what Hit collapses Wait back to.
	StartWait time.Duration
	// ExpMinusOne controls the growth factor applied by Miss: each miss
	// multiplies Wait by 2^(ExpMinusOne+1), so the zero value doubles.
	ExpMinusOne uint32
}

func (b *Backoff) requireConfigured() {
	if b.MaxWait == 0 {
		panic("mqtt: Backoff used with MaxWait == 0")
	}
}

// Hit collapses the backoff to StartWait after a successful read.
func (b *Backoff) Hit() {
	b.requireConfigured()
	b.Wait = b.StartWait
}

// Miss sleeps for the current Wait and multiplies it by the configured
// growth factor, clamping the result to MaxWait.
func (b *Backoff) Miss() {
	b.requireConfigured()
	time.Sleep(b.Wait)
	factor := uint64(1) << (b.ExpMinusOne + 1)
	grown := uint64(b.Wait) * factor
	if grown == 0 || grown > uint64(b.MaxWait) {
		b.Wait = b.MaxWait
		return
	}
	b.Wait = time.Duration(grown)
}
