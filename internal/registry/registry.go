package registry

import (
	"sync"

	"github.com/graph-to-terraform/compiler/internal/refs"
	"github.com/graph-to-terraform/compiler/internal/resource"
)

// Emitter renders one node kind into its declaration block.
type Emitter interface {
	// Kind is the node type this emitter handles.
	Kind() resource.Type
	// TerraformType is the resource type the kind declares (e.g. aws_vpc).
	TerraformType() string
	// RefAttr is the attribute referrers read (the kind's unique id).
	RefAttr() string
	// Emit renders the node. The resolver carries the compile pass's name
	// table and reference lookup.
	Emit(node resource.Node, r *refs.Resolver) ([]byte, error)
}

// Default is the global emitter registry; emitter files register themselves
// in init().
var Default = New()

// Registry holds one emitter per node kind.
type Registry struct {
	mu       sync.RWMutex
	emitters map[resource.Type]Emitter
}

// New returns a new empty registry.
func New() *Registry {
	return &Registry{emitters: make(map[resource.Type]Emitter)}
}

// Register adds an emitter for its kind.
func (r *Registry) Register(e Emitter) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.emitters[e.Kind()] = e
}

// Get returns the emitter for a kind, or nil and false.
func (r *Registry) Get(t resource.Type) (Emitter, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.emitters[t]
	return e, ok
}

// AddrSpecs returns the per-kind addressing table the resolver needs.
func (r *Registry) AddrSpecs() map[resource.Type]refs.AddrSpec {
	r.mu.RLock()
	defer r.mu.RUnlock()
	specs := make(map[resource.Type]refs.AddrSpec, len(r.emitters))
	for t, e := range r.emitters {
		specs[t] = refs.AddrSpec{TerraformType: e.TerraformType(), RefAttr: e.RefAttr()}
	}
	return specs
}
