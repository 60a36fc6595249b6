package resource

import "fmt"

// Type identifies one of the supported node kinds. The set is closed:
// collaborators pick from it, they never invent new kinds.
type Type string

const (
	TypeNetwork         Type = "network"
	TypeSubnetwork      Type = "subnetwork"
	TypeComputeInstance Type = "compute-instance"
	TypeFirewallGroup   Type = "firewall-group"
)

// Valid reports whether t is one of the supported kinds.
func (t Type) Valid() bool {
	switch t {
	case TypeNetwork, TypeSubnetwork, TypeComputeInstance, TypeFirewallGroup:
		return true
	}
	return false
}

// Position holds x,y canvas coordinates. Presentation-only; the compiler
// never reads it.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Node is one element of the infrastructure graph. ID and Type are fixed at
// creation; only Props and Position change afterwards.
type Node struct {
	ID       string
	Type     Type
	Position Position
	Props    Properties
}

// Properties is the per-kind property struct behind a Node. Each concrete
// type is a plain struct so compiler-side access is field access, not string
// lookup; the set method keeps the permissive key/value surface the editing
// collaborator expects.
type Properties interface {
	DisplayName() string
	set(key string, value any) bool
	clone() Properties
}

// Rule is one firewall rule (ingress or egress).
type Rule struct {
	FromPort   int      `json:"from_port"`
	ToPort     int      `json:"to_port"`
	Protocol   string   `json:"protocol"`
	CIDRBlocks []string `json:"cidr_blocks"`
}

// NetworkProps are the properties of a network node.
type NetworkProps struct {
	Name               string `json:"name"`
	CIDRBlock          string `json:"cidr_block"`
	EnableDNSHostnames bool   `json:"enable_dns_hostnames"`
	EnableDNSSupport   bool   `json:"enable_dns_support"`
}

func (p *NetworkProps) DisplayName() string { return p.Name }

func (p *NetworkProps) set(key string, value any) bool {
	switch key {
	case "name":
		return setStr(&p.Name, value)
	case "cidr_block":
		return setStr(&p.CIDRBlock, value)
	case "enable_dns_hostnames":
		return setBool(&p.EnableDNSHostnames, value)
	case "enable_dns_support":
		return setBool(&p.EnableDNSSupport, value)
	}
	return false
}

func (p *NetworkProps) clone() Properties {
	c := *p
	return &c
}

// SubnetworkProps are the properties of a subnetwork node. NetworkID holds
// the id of a network node, or "" when the user has not picked one yet.
type SubnetworkProps struct {
	Name             string `json:"name"`
	CIDRBlock        string `json:"cidr_block"`
	AvailabilityZone string `json:"availability_zone"`
	MapPublicIP      bool   `json:"map_public_ip"`
	NetworkID        string `json:"network_id"`
}

func (p *SubnetworkProps) DisplayName() string { return p.Name }

func (p *SubnetworkProps) set(key string, value any) bool {
	switch key {
	case "name":
		return setStr(&p.Name, value)
	case "cidr_block":
		return setStr(&p.CIDRBlock, value)
	case "availability_zone":
		return setStr(&p.AvailabilityZone, value)
	case "map_public_ip":
		return setBool(&p.MapPublicIP, value)
	case "network_id":
		return setStr(&p.NetworkID, value)
	}
	return false
}

func (p *SubnetworkProps) clone() Properties {
	c := *p
	return &c
}

// InstanceProps are the properties of a compute-instance node. SubnetID and
// SecurityGroupIDs hold node ids; SecurityGroupIDs preserves the order refs
// were added in.
type InstanceProps struct {
	Name             string   `json:"name"`
	AMI              string   `json:"ami"`
	InstanceType     string   `json:"instance_type"`
	SubnetID         string   `json:"subnet_id"`
	SecurityGroupIDs []string `json:"security_group_ids"`
}

func (p *InstanceProps) DisplayName() string { return p.Name }

func (p *InstanceProps) set(key string, value any) bool {
	switch key {
	case "name":
		return setStr(&p.Name, value)
	case "ami":
		return setStr(&p.AMI, value)
	case "instance_type":
		return setStr(&p.InstanceType, value)
	case "subnet_id":
		return setStr(&p.SubnetID, value)
	case "security_group_ids":
		return setStrList(&p.SecurityGroupIDs, value)
	}
	return false
}

func (p *InstanceProps) clone() Properties {
	c := *p
	c.SecurityGroupIDs = append([]string(nil), p.SecurityGroupIDs...)
	return &c
}

// FirewallGroupProps are the properties of a firewall-group node.
type FirewallGroupProps struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	NetworkID   string `json:"network_id"`
	Ingress     []Rule `json:"ingress"`
	Egress      []Rule `json:"egress"`
}

func (p *FirewallGroupProps) DisplayName() string { return p.Name }

func (p *FirewallGroupProps) set(key string, value any) bool {
	switch key {
	case "name":
		return setStr(&p.Name, value)
	case "description":
		return setStr(&p.Description, value)
	case "network_id":
		return setStr(&p.NetworkID, value)
	case "ingress":
		return setRules(&p.Ingress, value)
	case "egress":
		return setRules(&p.Egress, value)
	}
	return false
}

func (p *FirewallGroupProps) clone() Properties {
	c := *p
	c.Ingress = cloneRules(p.Ingress)
	c.Egress = cloneRules(p.Egress)
	return &c
}

func cloneRules(rules []Rule) []Rule {
	if rules == nil {
		return nil
	}
	out := make([]Rule, len(rules))
	for i, r := range rules {
		out[i] = r
		out[i].CIDRBlocks = append([]string(nil), r.CIDRBlocks...)
	}
	return out
}

// defaultProps builds the creation-time property template for a kind. Name
// defaults embed the new node id so two fresh nodes never share a display
// name.
func defaultProps(t Type, id string) Properties {
	switch t {
	case TypeNetwork:
		return &NetworkProps{
			Name:               id,
			CIDRBlock:          "10.0.0.0/16",
			EnableDNSHostnames: true,
			EnableDNSSupport:   true,
		}
	case TypeSubnetwork:
		return &SubnetworkProps{
			Name:             id,
			CIDRBlock:        "10.0.1.0/24",
			AvailabilityZone: "us-east-1a",
		}
	case TypeComputeInstance:
		return &InstanceProps{
			Name:         id,
			AMI:          "ami-0c55b159cbfafe1f0",
			InstanceType: "t2.micro",
		}
	case TypeFirewallGroup:
		return &FirewallGroupProps{
			Name:        id,
			Description: "Managed by " + id,
			Egress: []Rule{{
				FromPort:   0,
				ToPort:     0,
				Protocol:   "-1",
				CIDRBlocks: []string{"0.0.0.0/0"},
			}},
		}
	}
	panic(fmt.Sprintf("resource: no default template for type %q", t))
}

func setStr(dst *string, value any) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}
	*dst = s
	return true
}

func setBool(dst *bool, value any) bool {
	b, ok := value.(bool)
	if !ok {
		return false
	}
	*dst = b
	return true
}

func setStrList(dst *[]string, value any) bool {
	switch v := value.(type) {
	case []string:
		*dst = append([]string(nil), v...)
		return true
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			s, ok := e.(string)
			if !ok {
				return false
			}
			out = append(out, s)
		}
		*dst = out
		return true
	}
	return false
}

func setRules(dst *[]Rule, value any) bool {
	v, ok := value.([]Rule)
	if !ok {
		return false
	}
	*dst = cloneRules(v)
	return true
}
