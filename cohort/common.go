// Package cohort implements the message-passing substrate the
// distributed MST algorithms run on: a fixed set of peer processes,
// each identified by a rank, exchanging typed point-to-point messages
// and taking part in gather-to-root and broadcast-from-root collectives.
// It is the only part of this module that knows about sockets; the
// distmst package never touches net/rpc directly.
package cohort

// Directory maps a peer's rank to the TCP address its RPC server
// listens on. Every peer holds the same directory for the lifetime of
// a computation.
type Directory map[uint32]string

// Root is the rank that gathers, computes global minima, broadcasts,
// and is the only rank that ever emits output.
const Root uint32 = 0

// Envelope is the payload carried by every point-to-point and
// collective RPC call. Tag disambiguates concurrent rounds and
// collectives on the same wire; Src lets a gather's receiver attribute
// incoming values back to the sending rank without relying on arrival
// order.
type Envelope struct {
	Tag  string
	Src  uint32
	Data []byte
}

// Ack is the empty RPC reply used for calls whose result is "received".
type Ack struct{}

// AbortRequest is broadcast by the rank that detects a fatal
// precondition violation, so every peer tears down together instead of
// leaving the cohort partially alive.
type AbortRequest struct {
	Reason string
}
