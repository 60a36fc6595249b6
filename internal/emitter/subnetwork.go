package emitter

import (
	"github.com/graph-to-terraform/compiler/internal/refs"
	"github.com/graph-to-terraform/compiler/internal/registry"
	"github.com/graph-to-terraform/compiler/internal/resource"
	"github.com/graph-to-terraform/compiler/internal/terraform"
)

type subnetworkEmitter struct{}

func init() {
	registry.Default.Register(subnetworkEmitter{})
}

func (subnetworkEmitter) Kind() resource.Type   { return resource.TypeSubnetwork }
func (subnetworkEmitter) TerraformType() string { return "aws_subnet" }
func (subnetworkEmitter) RefAttr() string       { return "id" }

func (e subnetworkEmitter) Emit(n resource.Node, r *refs.Resolver) ([]byte, error) {
	p, ok := n.Props.(*resource.SubnetworkProps)
	if !ok {
		return nil, wrongProps(n.ID, n.Props)
	}
	block := terraform.ResourceBlock(e.TerraformType(), r.DeclName(n.ID))
	body := block.Body()

	body.SetAttributeRaw("vpc_id", r.Resolve(p.NetworkID))
	terraform.SetAttributeStr(body, "cidr_block", p.CIDRBlock)
	terraform.SetAttributeStr(body, "availability_zone", p.AvailabilityZone)
	terraform.SetAttributeBool(body, "map_public_ip_on_launch", p.MapPublicIP)
	terraform.SetNameTag(body, p.Name)

	return terraform.BlockToBytes(block), nil
}
