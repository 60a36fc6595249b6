package resource

import (
	"fmt"
	"strconv"
	"strings"
)

// Store owns the authoritative node collection. It is the single source of
// truth the editing collaborators write and the compiler reads. All methods
// are synchronous; callers wanting isolation from later edits read through
// List/ListByType, which return deep copies.
type Store struct {
	nodes    []Node
	counters map[Type]int
	selected string
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{counters: make(map[Type]int)}
}

// Create allocates the next id for t, builds the node with the kind's
// default property template, and appends it to the collection. An unknown
// type is a programmer error from a misbehaving caller and is rejected.
func (s *Store) Create(t Type, x, y float64) (Node, error) {
	if !t.Valid() {
		return Node{}, fmt.Errorf("resource: unknown node type %q", t)
	}
	s.counters[t]++
	id := fmt.Sprintf("%s-%d", t, s.counters[t])
	n := Node{
		ID:       id,
		Type:     t,
		Position: Position{X: x, Y: y},
		Props:    defaultProps(t, id),
	}
	s.nodes = append(s.nodes, n)
	return s.copyNode(len(s.nodes) - 1), nil
}

// Get returns a copy of the node with the given id. Absence is a normal
// outcome (dangling references point here), signalled by ok=false.
func (s *Store) Get(id string) (Node, bool) {
	for i := range s.nodes {
		if s.nodes[i].ID == id {
			return s.copyNode(i), true
		}
	}
	return Node{}, false
}

// UpdateProperty sets one property on the node with the given id. Absent
// ids and keys the kind does not have are silent no-ops: the editing layer
// sends whatever its form holds and the store stays permissive.
func (s *Store) UpdateProperty(id, key string, value any) {
	for i := range s.nodes {
		if s.nodes[i].ID == id {
			s.nodes[i].Props.set(key, value)
			return
		}
	}
}

// Move updates a node's canvas position. No compiler semantics.
func (s *Store) Move(id string, x, y float64) {
	for i := range s.nodes {
		if s.nodes[i].ID == id {
			s.nodes[i].Position = Position{X: x, Y: y}
			return
		}
	}
}

// AddRule appends a rule to a firewall-group's ingress or egress list.
// No-op for other kinds, absent ids, or unknown directions.
func (s *Store) AddRule(id, direction string, r Rule) {
	for i := range s.nodes {
		if s.nodes[i].ID != id {
			continue
		}
		p, ok := s.nodes[i].Props.(*FirewallGroupProps)
		if !ok {
			return
		}
		switch direction {
		case "ingress":
			p.Ingress = append(p.Ingress, r)
		case "egress":
			p.Egress = append(p.Egress, r)
		}
		return
	}
}

// RemoveRule deletes the rule at index from a firewall-group's ingress or
// egress list. Out-of-range indexes are ignored.
func (s *Store) RemoveRule(id, direction string, index int) {
	for i := range s.nodes {
		if s.nodes[i].ID != id {
			continue
		}
		p, ok := s.nodes[i].Props.(*FirewallGroupProps)
		if !ok {
			return
		}
		switch direction {
		case "ingress":
			if index >= 0 && index < len(p.Ingress) {
				p.Ingress = append(p.Ingress[:index], p.Ingress[index+1:]...)
			}
		case "egress":
			if index >= 0 && index < len(p.Egress) {
				p.Egress = append(p.Egress[:index], p.Egress[index+1:]...)
			}
		}
		return
	}
}

// Delete removes the node with the given id. Other nodes' reference fields
// are left untouched; a field still holding the id becomes a dangling
// reference the compiler resolves to a placeholder. The freed sequence
// number is never reused.
func (s *Store) Delete(id string) {
	for i := range s.nodes {
		if s.nodes[i].ID == id {
			s.nodes = append(s.nodes[:i], s.nodes[i+1:]...)
			if s.selected == id {
				s.selected = ""
			}
			return
		}
	}
}

// Clear resets the store to empty, counters included.
func (s *Store) Clear() {
	s.nodes = nil
	s.counters = make(map[Type]int)
	s.selected = ""
}

// Select marks a node as the current selection; absent ids clear it.
func (s *Store) Select(id string) {
	if _, ok := s.Get(id); ok {
		s.selected = id
		return
	}
	s.selected = ""
}

// Selection returns the currently selected node, if any.
func (s *Store) Selection() (Node, bool) {
	if s.selected == "" {
		return Node{}, false
	}
	return s.Get(s.selected)
}

// List returns a snapshot of all nodes in creation order. The copies are
// deep, so a compile pass over the result never observes a later edit.
func (s *Store) List() []Node {
	out := make([]Node, len(s.nodes))
	for i := range s.nodes {
		out[i] = s.copyNode(i)
	}
	return out
}

// ListByType returns a snapshot of the nodes of one kind, creation order.
func (s *Store) ListByType(t Type) []Node {
	var out []Node
	for i := range s.nodes {
		if s.nodes[i].Type == t {
			out = append(out, s.copyNode(i))
		}
	}
	return out
}

// Len reports the number of nodes.
func (s *Store) Len() int { return len(s.nodes) }

// Load replaces the collection with an exported node set, e.g. a graph the
// canvas serialized earlier. Ids must be unique and types known; sequence
// counters advance past the highest loaded id so later Create calls cannot
// collide.
func (s *Store) Load(nodes []Node) error {
	seen := make(map[string]bool, len(nodes))
	counters := make(map[Type]int)
	loaded := make([]Node, 0, len(nodes))
	for i, n := range nodes {
		if n.ID == "" {
			return fmt.Errorf("resource: node at index %d has empty id", i)
		}
		if seen[n.ID] {
			return fmt.Errorf("resource: duplicate node id %q", n.ID)
		}
		if !n.Type.Valid() {
			return fmt.Errorf("resource: node %q has unknown type %q", n.ID, n.Type)
		}
		if n.Props == nil {
			n.Props = defaultProps(n.Type, n.ID)
		} else {
			n.Props = n.Props.clone()
		}
		seen[n.ID] = true
		if seq, ok := idSequence(n.ID, n.Type); ok && seq > counters[n.Type] {
			counters[n.Type] = seq
		}
		loaded = append(loaded, n)
	}
	s.nodes = loaded
	s.counters = counters
	s.selected = ""
	return nil
}

func (s *Store) copyNode(i int) Node {
	n := s.nodes[i]
	n.Props = n.Props.clone()
	return n
}

// idSequence extracts the numeric suffix of a "<type>-<n>" id.
func idSequence(id string, t Type) (int, bool) {
	prefix := string(t) + "-"
	if !strings.HasPrefix(id, prefix) {
		return 0, false
	}
	n, err := strconv.Atoi(id[len(prefix):])
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
