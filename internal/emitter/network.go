package emitter

import (
	"github.com/graph-to-terraform/compiler/internal/refs"
	"github.com/graph-to-terraform/compiler/internal/registry"
	"github.com/graph-to-terraform/compiler/internal/resource"
	"github.com/graph-to-terraform/compiler/internal/terraform"
)

type networkEmitter struct{}

func init() {
	registry.Default.Register(networkEmitter{})
}

func (networkEmitter) Kind() resource.Type   { return resource.TypeNetwork }
func (networkEmitter) TerraformType() string { return "aws_vpc" }
func (networkEmitter) RefAttr() string       { return "id" }

func (e networkEmitter) Emit(n resource.Node, r *refs.Resolver) ([]byte, error) {
	p, ok := n.Props.(*resource.NetworkProps)
	if !ok {
		return nil, wrongProps(n.ID, n.Props)
	}
	block := terraform.ResourceBlock(e.TerraformType(), r.DeclName(n.ID))
	body := block.Body()

	terraform.SetAttributeStr(body, "cidr_block", p.CIDRBlock)
	terraform.SetAttributeBool(body, "enable_dns_hostnames", p.EnableDNSHostnames)
	terraform.SetAttributeBool(body, "enable_dns_support", p.EnableDNSSupport)
	terraform.SetNameTag(body, p.Name)

	return terraform.BlockToBytes(block), nil
}
