// Package compiler turns a node collection into the generated Terraform
// text: fixed-order partitioning, reference resolution, per-kind emission.
package compiler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/graph-to-terraform/compiler/internal/refs"
	"github.com/graph-to-terraform/compiler/internal/registry"
	"github.com/graph-to-terraform/compiler/internal/resource"
	"github.com/graph-to-terraform/compiler/internal/result"
	"github.com/graph-to-terraform/compiler/internal/terraform"
)

// ErrEmptyGraph is the only error Compile returns: there is nothing to
// generate. Callers decide whether that is worth reporting to the user.
var ErrEmptyGraph = errors.New("compiler: empty graph, nothing to generate")

// EmissionOrder is the fixed dependency order declarations appear in. The
// type set is closed and default reference fields only point at earlier
// kinds, so the order is derived from the schema once instead of computed
// from edges at runtime.
var EmissionOrder = []resource.Type{
	resource.TypeNetwork,
	resource.TypeSubnetwork,
	resource.TypeFirewallGroup,
	resource.TypeComputeInstance,
}

// Compiler renders node collections. It is stateless between calls; a call
// is a pure function of its input snapshot.
type Compiler struct {
	reg *registry.Registry
}

// New returns a compiler backed by the default emitter registry.
func New() *Compiler {
	return &Compiler{reg: registry.Default}
}

// Compile renders the collection into the full artifact text: banner,
// provider preamble, then one declaration block per node in EmissionOrder
// (creation order within a kind), blank-line separated. Output is
// byte-deterministic for a given input. Dangling and empty references
// come out as the placeholder string, never as an error.
func (c *Compiler) Compile(nodes []resource.Node) (*result.CompileResult, error) {
	if len(nodes) == 0 {
		return nil, ErrEmptyGraph
	}

	ordered := make([]resource.Node, 0, len(nodes))
	for _, t := range EmissionOrder {
		for _, n := range nodes {
			if n.Type == t {
				ordered = append(ordered, n)
			}
		}
	}

	// Name table first, emission second: a referrer early in the output can
	// point at a block that appears later in its own bucket.
	r := refs.NewResolver(ordered, c.reg.AddrSpecs())

	var buf strings.Builder
	buf.WriteString(terraform.Banner)
	buf.WriteString("\n")
	buf.Write(terraform.Preamble())
	for _, n := range ordered {
		e, ok := c.reg.Get(n.Type)
		if !ok {
			return nil, fmt.Errorf("compiler: no emitter registered for type %q", n.Type)
		}
		block, err := e.Emit(n, r)
		if err != nil {
			return nil, err
		}
		buf.WriteString("\n")
		buf.Write(block)
	}

	return &result.CompileResult{
		Text:     buf.String(),
		Warnings: r.Warnings(),
	}, nil
}
