package routing

import (
	"sync"
)

// ResponseCache is the idempotency store: a keyed map of request identifier
// to terminal response with an atomic claim-or-fetch primitive. The claim
// closes the duplicate-computation race: of any number of concurrent calls
// with the same identifier, exactly one claims the key and computes; the
// rest block on the claim and receive the identical response object.
//
// The cache is owned by a single Service and scoped to its lifetime.
type ResponseCache struct {
	mu      sync.Mutex
	entries map[string]*Claim
}

// NewResponseCache creates an empty cache
func NewResponseCache() *ResponseCache {
	return &ResponseCache{
		entries: make(map[string]*Claim),
	}
}

// Claim is a slot for one request identifier. The claimant computes and
// calls Complete exactly once; every other holder blocks in Await until then.
type Claim struct {
	done chan struct{}
	once sync.Once
	resp *RouteResponse
}

// Complete publishes the terminal response and releases all waiters.
// Subsequent calls are no-ops: the first stored response wins.
func (c *Claim) Complete(resp *RouteResponse) {
	c.once.Do(func() {
		c.resp = resp
		close(c.done)
	})
}

// Await blocks until the claimant completes, then returns the stored response
func (c *Claim) Await() *RouteResponse {
	<-c.done
	return c.resp
}

// ClaimOrGet returns the claim for id. claimed is true when the caller won
// the slot and must Complete it; false means another caller holds (or held)
// the claim and the returned value should only be awaited.
func (c *ResponseCache) ClaimOrGet(id string) (claim *Claim, claimed bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if existing, ok := c.entries[id]; ok {
		return existing, false
	}

	claim = &Claim{done: make(chan struct{})}
	c.entries[id] = claim
	return claim, true
}

// Get returns the completed response for id, if any. In-flight claims
// report not found.
func (c *ResponseCache) Get(id string) (*RouteResponse, bool) {
	c.mu.Lock()
	claim, ok := c.entries[id]
	c.mu.Unlock()

	if !ok {
		return nil, false
	}
	select {
	case <-claim.done:
		return claim.resp, true
	default:
		return nil, false
	}
}

// Len returns the number of stored identifiers, including in-flight claims
func (c *ResponseCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
