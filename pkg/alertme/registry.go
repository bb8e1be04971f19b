package alertme

import "sync"

// Registry is the set of known nodes, keyed by AddrLong. A single
// sync.RWMutex guards the whole map — not a per-node lock — since node
// records are small and registry operations are infrequent relative to
// codec/dispatch work.
type Registry struct {
	mu    sync.RWMutex
	nodes map[AddrLong]*Node
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{nodes: make(map[AddrLong]*Node)}
}

// EnsureNode returns the node for addrLong, creating it if absent.
// Idempotent: a second call for the same address returns the same record,
// updating only AddrShort and LastSeen.
func (r *Registry) EnsureNode(addrLong AddrLong, addrShort AddrShort, now int64) *Node {
	r.mu.Lock()
	defer r.mu.Unlock()

	n, ok := r.nodes[addrLong]
	if !ok {
		n = &Node{
			ID:         addrLong.String(),
			AddrLong:   addrLong,
			AddrShort:  addrShort,
			AssocState: StateUnknown,
			Name:       "Unknown Device",
			CreatedOn:  now,
			LastSeen:   now,
			Attributes: make(Attributes),
		}
		r.nodes[addrLong] = n
		return n
	}
	n.AddrShort = addrShort
	n.LastSeen = now
	return n
}

// Touch records that a frame was received from addrLong without otherwise
// modifying the node, bumping LastSeen and MessagesReceived.
func (r *Registry) Touch(addrLong AddrLong, now int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if n, ok := r.nodes[addrLong]; ok {
		n.LastSeen = now
		n.MessagesReceived++
	}
}

// RecordSent bumps MessagesSent for addrLong, if known.
func (r *Registry) RecordSent(addrLong AddrLong) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if n, ok := r.nodes[addrLong]; ok {
		n.MessagesSent++
	}
}

// SetAttributes merges attrs into the node's attribute bag, overwriting any
// same-named keys, and bumps LastSeen.
func (r *Registry) SetAttributes(addrLong AddrLong, attrs Attributes, now int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	n, ok := r.nodes[addrLong]
	if !ok {
		return ErrNodeNotFound
	}
	if n.Attributes == nil {
		n.Attributes = make(Attributes)
	}
	for k, v := range attrs {
		v.ReportReceivedTime = now
		n.Attributes[k] = v
	}
	n.LastSeen = now
	return nil
}

// SetAssocState transitions addrLong's association state, setting
// Associated true exactly when the new state is StateAssociated.
func (r *Registry) SetAssocState(addrLong AddrLong, state AssocState) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	n, ok := r.nodes[addrLong]
	if !ok {
		return ErrNodeNotFound
	}
	n.AssocState = state
	n.Associated = state == StateAssociated
	return nil
}

// Rename sets a node's human-friendly name.
func (r *Registry) Rename(addrLong AddrLong, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	n, ok := r.nodes[addrLong]
	if !ok {
		return ErrNodeNotFound
	}
	n.Name = name
	return nil
}

// HasAttribute reports whether addrLong's node has a value recorded for
// attribute name.
func (r *Registry) HasAttribute(addrLong AddrLong, name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n, ok := r.nodes[addrLong]
	if !ok {
		return false
	}
	_, ok = n.Attributes[name]
	return ok
}

// Get returns a snapshot copy of the node for addrLong.
func (r *Registry) Get(addrLong AddrLong) (Node, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n, ok := r.nodes[addrLong]
	if !ok {
		return Node{}, false
	}
	return n.snapshot(), true
}

// GetByID looks a node up by its canonical string ID.
func (r *Registry) GetByID(id string) (Node, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, n := range r.nodes {
		if n.ID == id {
			return n.snapshot(), true
		}
	}
	return Node{}, false
}

// List returns snapshot copies of every known node.
func (r *Registry) List() []Node {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Node, 0, len(r.nodes))
	for _, n := range r.nodes {
		out = append(out, n.snapshot())
	}
	return out
}
