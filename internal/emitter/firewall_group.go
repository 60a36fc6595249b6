package emitter

import (
	"github.com/hashicorp/hcl/v2/hclwrite"

	"github.com/graph-to-terraform/compiler/internal/refs"
	"github.com/graph-to-terraform/compiler/internal/registry"
	"github.com/graph-to-terraform/compiler/internal/resource"
	"github.com/graph-to-terraform/compiler/internal/terraform"
)

type firewallGroupEmitter struct{}

func init() {
	registry.Default.Register(firewallGroupEmitter{})
}

func (firewallGroupEmitter) Kind() resource.Type   { return resource.TypeFirewallGroup }
func (firewallGroupEmitter) TerraformType() string { return "aws_security_group" }
func (firewallGroupEmitter) RefAttr() string       { return "id" }

func (e firewallGroupEmitter) Emit(n resource.Node, r *refs.Resolver) ([]byte, error) {
	p, ok := n.Props.(*resource.FirewallGroupProps)
	if !ok {
		return nil, wrongProps(n.ID, n.Props)
	}
	block := terraform.ResourceBlock(e.TerraformType(), r.DeclName(n.ID))
	body := block.Body()

	terraform.SetAttributeStr(body, "name", p.Name)
	terraform.SetAttributeStr(body, "description", p.Description)
	body.SetAttributeRaw("vpc_id", r.Resolve(p.NetworkID))
	appendRules(body, "ingress", p.Ingress)
	appendRules(body, "egress", p.Egress)
	terraform.SetNameTag(body, p.Name)

	return terraform.BlockToBytes(block), nil
}

// appendRules renders one nested block per rule. Values go out verbatim,
// out-of-range ports included.
func appendRules(body *hclwrite.Body, blockName string, rules []resource.Rule) {
	for _, rule := range rules {
		rb := body.AppendNewBlock(blockName, nil).Body()
		terraform.SetAttributeInt(rb, "from_port", rule.FromPort)
		terraform.SetAttributeInt(rb, "to_port", rule.ToPort)
		terraform.SetAttributeStr(rb, "protocol", rule.Protocol)
		terraform.SetAttributeStrList(rb, "cidr_blocks", rule.CIDRBlocks)
	}
}
