// Package refs turns stored foreign-key ids into the textual cross-reference
// expressions the emitters render.
package refs

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"

	"github.com/graph-to-terraform/compiler/internal/resource"
	"github.com/graph-to-terraform/compiler/internal/result"
	"github.com/graph-to-terraform/compiler/internal/terraform"
)

// AddrSpec describes how one node kind is addressed in the generated code:
// its Terraform resource type and the attribute referrers read.
type AddrSpec struct {
	TerraformType string
	RefAttr       string
}

type address struct {
	terraformType string
	name          string
	attr          string
}

// Resolver holds the per-compile name table. Declaration names are assigned
// once, up front, for every node, so referrers and referents always agree
// on the final (possibly disambiguated) name.
type Resolver struct {
	addrs    map[string]address
	warnings []result.Warning
}

// NewResolver assigns declaration names to nodes in the given order.
// Names are sanitized display names; when two nodes sanitize identically,
// the later one gets its sanitized id appended (ids are unique for the
// store's lifetime, so the suffix cannot collide) and a warning is recorded.
func NewResolver(nodes []resource.Node, specs map[resource.Type]AddrSpec) *Resolver {
	r := &Resolver{addrs: make(map[string]address, len(nodes))}
	taken := make(map[string]bool, len(nodes))
	for _, n := range nodes {
		spec, ok := specs[n.Type]
		if !ok {
			continue
		}
		name := terraform.Sanitize(n.Props.DisplayName())
		if name == "" {
			name = terraform.Sanitize(n.ID)
		}
		if taken[name] {
			disambiguated := name + "_" + terraform.Sanitize(n.ID)
			r.warnings = append(r.warnings, result.Warning{
				Type:     "name_collision",
				Severity: "warning",
				NodeID:   n.ID,
				Message:  "display name sanitizes to " + name + ", already used by another resource",
				Suggestion: "Rename one of the nodes; this block was emitted as " +
					disambiguated,
			})
			name = disambiguated
		}
		taken[name] = true
		r.addrs[n.ID] = address{
			terraformType: spec.TerraformType,
			name:          name,
			attr:          spec.RefAttr,
		}
	}
	return r
}

// DeclName returns the declaration name assigned to a node id, or "" for
// unknown ids.
func (r *Resolver) DeclName(id string) string {
	return r.addrs[id].name
}

// Warnings returns the name-collision diagnostics recorded during table
// construction.
func (r *Resolver) Warnings() []result.Warning {
	return r.warnings
}

// Resolve maps a stored reference id to expression tokens. Empty ids and
// ids no node carries (the referent was deleted, or never set) resolve to
// the placeholder string; resolution is never an error, so the compiler
// keeps producing output for incomplete graphs.
func (r *Resolver) Resolve(refID string) hclwrite.Tokens {
	if refID == "" {
		return placeholderTokens()
	}
	addr, ok := r.addrs[refID]
	if !ok {
		return placeholderTokens()
	}
	return hclwrite.TokensForTraversal(refTraversal(addr))
}

// ResolveList resolves each id and joins the results into a tuple literal.
// An empty list is an empty tuple, not a placeholder.
func (r *Resolver) ResolveList(refIDs []string) hclwrite.Tokens {
	elems := make([]hclwrite.Tokens, len(refIDs))
	for i, id := range refIDs {
		elems[i] = r.Resolve(id)
	}
	return hclwrite.TokensForTuple(elems)
}

func placeholderTokens() hclwrite.Tokens {
	return hclwrite.TokensForValue(cty.StringVal(terraform.Placeholder))
}

func refTraversal(a address) hcl.Traversal {
	return hcl.Traversal{
		hcl.TraverseRoot{Name: a.terraformType},
		hcl.TraverseAttr{Name: a.name},
		hcl.TraverseAttr{Name: a.attr},
	}
}
