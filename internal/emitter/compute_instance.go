package emitter

import (
	"github.com/graph-to-terraform/compiler/internal/refs"
	"github.com/graph-to-terraform/compiler/internal/registry"
	"github.com/graph-to-terraform/compiler/internal/resource"
	"github.com/graph-to-terraform/compiler/internal/terraform"
)

type computeInstanceEmitter struct{}

func init() {
	registry.Default.Register(computeInstanceEmitter{})
}

func (computeInstanceEmitter) Kind() resource.Type   { return resource.TypeComputeInstance }
func (computeInstanceEmitter) TerraformType() string { return "aws_instance" }
func (computeInstanceEmitter) RefAttr() string       { return "id" }

func (e computeInstanceEmitter) Emit(n resource.Node, r *refs.Resolver) ([]byte, error) {
	p, ok := n.Props.(*resource.InstanceProps)
	if !ok {
		return nil, wrongProps(n.ID, n.Props)
	}
	block := terraform.ResourceBlock(e.TerraformType(), r.DeclName(n.ID))
	body := block.Body()

	terraform.SetAttributeStr(body, "ami", p.AMI)
	terraform.SetAttributeStr(body, "instance_type", p.InstanceType)
	body.SetAttributeRaw("subnet_id", r.Resolve(p.SubnetID))
	// Always present: an instance with no groups declares [].
	body.SetAttributeRaw("vpc_security_group_ids", r.ResolveList(p.SecurityGroupIDs))
	terraform.SetNameTag(body, p.Name)

	return terraform.BlockToBytes(block), nil
}
