package cohort

import (
	"fmt"
	"log"
	"net"
	"net/rpc"
	"os"
	"sync"

	"distmst/util"
)

// Cohort is one peer's view of the fixed process group: its own rank,
// the full rank-to-address directory, a lazily-dialed client per
// destination rank, and the inbox that the RPC server side feeds.
// It implements the messaging substrate contract in full: rank-of-self,
// size-of-cohort, point-to-point send/recv with tag, gather-to-root,
// broadcast-from-root, collective abort. No other primitive is exposed.
type Cohort struct {
	rank      uint32
	size      uint32
	directory Directory

	mu      sync.Mutex
	clients map[uint32]*rpc.Client

	inboxMu sync.Mutex
	inbox   map[string]chan Envelope

	listener net.Listener
}

// NewCohort builds a Cohort for the given rank over directory, which
// must contain an entry for every rank in [0, len(directory)).
func NewCohort(rank uint32, directory Directory) *Cohort {
	return &Cohort{
		rank:      rank,
		size:      uint32(len(directory)),
		directory: directory,
		clients:   make(map[uint32]*rpc.Client),
		inbox:     make(map[string]chan Envelope),
	}
}

// Rank returns this peer's rank.
func (c *Cohort) Rank() uint32 { return c.rank }

// Size returns the fixed size of the cohort.
func (c *Cohort) Size() uint32 { return c.size }

// Start opens this peer's RPC listener so other peers can Send to it.
// It must be called before any collective or point-to-point exchange.
func (c *Cohort) Start() error {
	addr, ok := c.directory[c.rank]
	if !ok {
		return fmt.Errorf("cohort: rank %d has no address in the directory", c.rank)
	}
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	c.listener = listener

	handler := rpc.NewServer()
	if err := handler.RegisterName("Peer", &peerRPC{cohort: c}); err != nil {
		return err
	}

	go func() {
		for {
			conn, err := listener.Accept()
			if err != nil {
				return // listener closed
			}
			go handler.ServeConn(conn)
		}
	}()
	return nil
}

// Stop closes the listener and every cached outbound connection. Safe
// to call once, after the computation this peer took part in is done.
func (c *Cohort) Stop() {
	if c.listener != nil {
		c.listener.Close()
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, client := range c.clients {
		client.Close()
	}
}

func (c *Cohort) dial(dst uint32) (*rpc.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if client, ok := c.clients[dst]; ok {
		return client, nil
	}
	addr, ok := c.directory[dst]
	if !ok {
		return nil, fmt.Errorf("cohort: rank %d has no address in the directory", dst)
	}
	client, err := util.DialRPC(addr)
	if err != nil {
		return nil, err
	}
	c.clients[dst] = client
	return client, nil
}

// chanFor returns (creating if necessary) the inbox channel for tag.
// Channels are sized to the cohort so a burst of sends under one tag
// (e.g. every peer gathering to root) never blocks the RPC handler.
func (c *Cohort) chanFor(tag string) chan Envelope {
	c.inboxMu.Lock()
	defer c.inboxMu.Unlock()
	ch, ok := c.inbox[tag]
	if !ok {
		ch = make(chan Envelope, c.size)
		c.inbox[tag] = ch
	}
	return ch
}

// closeTag releases a tag's inbox channel once every expected message
// under it has been consumed, per the resource policy that message
// buffers do not outlive the round they belong to.
func (c *Cohort) closeTag(tag string) {
	c.inboxMu.Lock()
	defer c.inboxMu.Unlock()
	delete(c.inbox, tag)
}

func (c *Cohort) deliver(env Envelope) {
	c.chanFor(env.Tag) <- env
}

// Send delivers data to rank dst under tag, blocking until dst's RPC
// handler has accepted it. Each (dst, tag) pair is intended to carry
// exactly one message; callers mint a fresh tag per round and, where
// more than one sender shares a round, per sender rank as well.
func (c *Cohort) Send(dst uint32, tag string, data []byte) error {
	if dst == c.rank {
		c.deliver(Envelope{Tag: tag, Src: c.rank, Data: data})
		return nil
	}
	client, err := c.dial(dst)
	if err != nil {
		return err
	}
	var ack Ack
	return client.Call("Peer.Deliver", Envelope{Tag: tag, Src: c.rank, Data: data}, &ack)
}

// Recv blocks until a message tagged tag has arrived from any sender
// and returns its payload.
func (c *Cohort) Recv(tag string) ([]byte, error) {
	ch := c.chanFor(tag)
	env := <-ch
	c.closeTag(tag)
	return env.Data, nil
}

// GatherToRoot sends payload to the root. On the root, it additionally
// collects every other peer's payload for this round and returns the
// full, rank-indexed slice; on every other peer it returns nil. round
// disambiguates concurrent iterations of a distributed algorithm that
// gathers more than once.
func (c *Cohort) GatherToRoot(round uint64, payload []byte) ([][]byte, error) {
	tag := fmt.Sprintf("gather:%d", round)
	if c.rank != Root {
		return nil, c.Send(Root, tag, payload)
	}

	results := make([][]byte, c.size)
	results[c.rank] = payload
	ch := c.chanFor(tag)
	for remaining := int(c.size) - 1; remaining > 0; remaining-- {
		env := <-ch
		results[env.Src] = env.Data
	}
	c.closeTag(tag)
	return results, nil
}

// BroadcastFromRoot, called by every peer, returns payload (as supplied
// by the root) to every peer. On the root it fans out concurrent RPC
// calls and waits for all of them to be acknowledged — the second
// barrier of a distributed Prim iteration. On every other peer it
// blocks on Recv.
func (c *Cohort) BroadcastFromRoot(round uint64, payload []byte) ([]byte, error) {
	tag := fmt.Sprintf("bcast:%d", round)
	if c.rank != Root {
		return c.Recv(tag)
	}

	others := make([]uint32, 0, c.size-1)
	for rank := range c.directory {
		if rank != Root {
			others = append(others, rank)
		}
	}

	doneCh := make(chan *rpc.Call, len(others))
	for _, dst := range others {
		client, err := c.dial(dst)
		if err != nil {
			return nil, err
		}
		var ack Ack
		client.Go("Peer.Deliver", Envelope{Tag: tag, Src: c.rank, Data: payload}, &ack, doneCh)
	}
	for i := 0; i < len(others); i++ {
		if call := <-doneCh; call.Error != nil {
			return nil, call.Error
		}
	}
	return payload, nil
}

// Abort tears down the whole cohort after a fatal precondition
// violation. The rank that detects the violation (always rank 0 for
// the configuration errors this protocol defines) best-effort notifies
// every other peer, then every peer exits with status 1. There is no
// recovery path.
func (c *Cohort) Abort(reason string) {
	log.Printf("cohort: rank %d aborting: %s", c.rank, reason)
	if c.rank == Root {
		for rank := range c.directory {
			if rank == Root {
				continue
			}
			client, err := c.dial(rank)
			if err != nil {
				continue
			}
			var ack Ack
			_ = client.Call("Peer.Abort", AbortRequest{Reason: reason}, &ack)
		}
	}
	os.Exit(1)
}

// peerRPC is the RPC-visible face of a Cohort. It is kept separate from
// Cohort itself so the substrate's public Go API (Send/Recv/Gather/...)
// never accidentally becomes remotely callable.
type peerRPC struct {
	cohort *Cohort
}

func (p *peerRPC) Deliver(env Envelope, ack *Ack) error {
	p.cohort.deliver(env)
	*ack = Ack{}
	return nil
}

func (p *peerRPC) Abort(req AbortRequest, ack *Ack) error {
	log.Printf("cohort: rank %d received collective abort: %s", p.cohort.rank, req.Reason)
	os.Exit(1)
	return nil
}
