package resource

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraphRoundTrip(t *testing.T) {
	s := NewStore()
	net, err := s.Create(TypeNetwork, 100, 200)
	require.NoError(t, err)
	sub, err := s.Create(TypeSubnetwork, 150, 250)
	require.NoError(t, err)
	s.UpdateProperty(sub.ID, "network_id", net.ID)
	inst, err := s.Create(TypeComputeInstance, 0, 0)
	require.NoError(t, err)
	fw, err := s.Create(TypeFirewallGroup, 0, 0)
	require.NoError(t, err)
	s.UpdateProperty(inst.ID, "security_group_ids", []string{fw.ID})

	data, err := json.Marshal(Graph{Nodes: s.List()})
	require.NoError(t, err)

	var g Graph
	require.NoError(t, json.Unmarshal(data, &g))
	require.Len(t, g.Nodes, 4)

	restored := NewStore()
	require.NoError(t, restored.Load(g.Nodes))

	gotSub, ok := restored.Get(sub.ID)
	require.True(t, ok)
	assert.Equal(t, net.ID, gotSub.Props.(*SubnetworkProps).NetworkID)

	gotInst, ok := restored.Get(inst.ID)
	require.True(t, ok)
	assert.Equal(t, []string{fw.ID}, gotInst.Props.(*InstanceProps).SecurityGroupIDs)

	gotNet, ok := restored.Get(net.ID)
	require.True(t, ok)
	assert.Equal(t, Position{X: 100, Y: 200}, gotNet.Position)
}

func TestNodeUnmarshalDispatchesOnType(t *testing.T) {
	raw := `{
		"id": "firewall-group-1",
		"type": "firewall-group",
		"position": {"x": 1, "y": 2},
		"properties": {
			"name": "web sg",
			"ingress": [{"from_port": 80, "to_port": 80, "protocol": "tcp", "cidr_blocks": ["0.0.0.0/0"]}]
		}
	}`
	var n Node
	require.NoError(t, json.Unmarshal([]byte(raw), &n))

	p, ok := n.Props.(*FirewallGroupProps)
	require.True(t, ok)
	assert.Equal(t, "web sg", p.Name)
	require.Len(t, p.Ingress, 1)
	assert.Equal(t, 80, p.Ingress[0].FromPort)
}

func TestNodeUnmarshalUnknownType(t *testing.T) {
	var n Node
	err := json.Unmarshal([]byte(`{"id": "x-1", "type": "volume"}`), &n)
	require.Error(t, err)
}

func TestNodeUnmarshalMissingPropertiesUsesDefaults(t *testing.T) {
	var n Node
	require.NoError(t, json.Unmarshal([]byte(`{"id": "network-3", "type": "network"}`), &n))
	assert.Equal(t, "network-3", n.Props.DisplayName())
	assert.Equal(t, "10.0.0.0/16", n.Props.(*NetworkProps).CIDRBlock)
}
