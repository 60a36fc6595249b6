package resource

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAssignsSequentialIDs(t *testing.T) {
	s := NewStore()

	n1, err := s.Create(TypeNetwork, 10, 20)
	require.NoError(t, err)
	n2, err := s.Create(TypeNetwork, 30, 40)
	require.NoError(t, err)
	sub, err := s.Create(TypeSubnetwork, 0, 0)
	require.NoError(t, err)

	assert.Equal(t, "network-1", n1.ID)
	assert.Equal(t, "network-2", n2.ID)
	assert.Equal(t, "subnetwork-1", sub.ID)
	assert.Equal(t, Position{X: 10, Y: 20}, n1.Position)
}

func TestCreateUnknownTypeRejected(t *testing.T) {
	s := NewStore()
	_, err := s.Create(Type("volume"), 0, 0)
	require.Error(t, err)
	assert.Equal(t, 0, s.Len())
}

func TestCreateDefaultsEmbedID(t *testing.T) {
	s := NewStore()

	n, err := s.Create(TypeNetwork, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, "network-1", n.Props.DisplayName())

	fw, err := s.Create(TypeFirewallGroup, 0, 0)
	require.NoError(t, err)
	p, ok := fw.Props.(*FirewallGroupProps)
	require.True(t, ok)
	assert.Equal(t, "firewall-group-1", p.Name)
	assert.Contains(t, p.Description, fw.ID)
	require.Len(t, p.Egress, 1, "new firewall groups carry the allow-all egress rule")
	assert.Equal(t, "-1", p.Egress[0].Protocol)
}

func TestDeleteNeverReusesIDs(t *testing.T) {
	s := NewStore()
	n1, err := s.Create(TypeNetwork, 0, 0)
	require.NoError(t, err)
	s.Delete(n1.ID)

	n2, err := s.Create(TypeNetwork, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, "network-2", n2.ID)
}

func TestDeleteDoesNotCascade(t *testing.T) {
	s := NewStore()
	net, err := s.Create(TypeNetwork, 0, 0)
	require.NoError(t, err)
	sub, err := s.Create(TypeSubnetwork, 0, 0)
	require.NoError(t, err)
	s.UpdateProperty(sub.ID, "network_id", net.ID)

	s.Delete(net.ID)

	got, ok := s.Get(sub.ID)
	require.True(t, ok)
	assert.Equal(t, net.ID, got.Props.(*SubnetworkProps).NetworkID,
		"the dangling reference stays in place for the compiler to flag")
}

func TestDeleteClearsSelection(t *testing.T) {
	s := NewStore()
	n, err := s.Create(TypeNetwork, 0, 0)
	require.NoError(t, err)
	s.Select(n.ID)

	s.Delete(n.ID)

	_, ok := s.Selection()
	assert.False(t, ok)
}

func TestUpdateProperty(t *testing.T) {
	s := NewStore()
	n, err := s.Create(TypeNetwork, 0, 0)
	require.NoError(t, err)

	s.UpdateProperty(n.ID, "cidr_block", "172.16.0.0/12")
	s.UpdateProperty(n.ID, "enable_dns_support", false)

	got, ok := s.Get(n.ID)
	require.True(t, ok)
	p := got.Props.(*NetworkProps)
	assert.Equal(t, "172.16.0.0/12", p.CIDRBlock)
	assert.False(t, p.EnableDNSSupport)
}

func TestUpdatePropertyAbsentIDIsNoop(t *testing.T) {
	s := NewStore()
	s.UpdateProperty("network-99", "cidr_block", "10.1.0.0/16")
	assert.Equal(t, 0, s.Len())
}

func TestUpdatePropertyUnknownKeyIsNoop(t *testing.T) {
	s := NewStore()
	n, err := s.Create(TypeNetwork, 0, 0)
	require.NoError(t, err)

	s.UpdateProperty(n.ID, "instance_type", "t2.micro")

	got, _ := s.Get(n.ID)
	assert.Equal(t, "10.0.0.0/16", got.Props.(*NetworkProps).CIDRBlock)
}

func TestAddAndRemoveRules(t *testing.T) {
	s := NewStore()
	fw, err := s.Create(TypeFirewallGroup, 0, 0)
	require.NoError(t, err)

	s.AddRule(fw.ID, "ingress", Rule{FromPort: 22, ToPort: 22, Protocol: "tcp", CIDRBlocks: []string{"0.0.0.0/0"}})
	s.AddRule(fw.ID, "ingress", Rule{FromPort: 443, ToPort: 443, Protocol: "tcp"})

	got, _ := s.Get(fw.ID)
	p := got.Props.(*FirewallGroupProps)
	require.Len(t, p.Ingress, 2)
	assert.Equal(t, 22, p.Ingress[0].FromPort)

	s.RemoveRule(fw.ID, "ingress", 0)
	got, _ = s.Get(fw.ID)
	p = got.Props.(*FirewallGroupProps)
	require.Len(t, p.Ingress, 1)
	assert.Equal(t, 443, p.Ingress[0].FromPort)

	// Out-of-range index is ignored.
	s.RemoveRule(fw.ID, "ingress", 5)
	got, _ = s.Get(fw.ID)
	assert.Len(t, got.Props.(*FirewallGroupProps).Ingress, 1)
}

func TestListReturnsSnapshot(t *testing.T) {
	s := NewStore()
	n, err := s.Create(TypeNetwork, 0, 0)
	require.NoError(t, err)

	snapshot := s.List()
	s.UpdateProperty(n.ID, "cidr_block", "192.168.0.0/16")

	require.Len(t, snapshot, 1)
	assert.Equal(t, "10.0.0.0/16", snapshot[0].Props.(*NetworkProps).CIDRBlock,
		"an edit after the snapshot must not leak into it")
}

func TestListByType(t *testing.T) {
	s := NewStore()
	_, err := s.Create(TypeNetwork, 0, 0)
	require.NoError(t, err)
	_, err = s.Create(TypeSubnetwork, 0, 0)
	require.NoError(t, err)
	_, err = s.Create(TypeNetwork, 0, 0)
	require.NoError(t, err)

	nets := s.ListByType(TypeNetwork)
	require.Len(t, nets, 2)
	assert.Equal(t, "network-1", nets[0].ID)
	assert.Equal(t, "network-2", nets[1].ID)
}

func TestClearResetsEverything(t *testing.T) {
	s := NewStore()
	n, err := s.Create(TypeNetwork, 0, 0)
	require.NoError(t, err)
	s.Select(n.ID)

	s.Clear()

	assert.Equal(t, 0, s.Len())
	_, ok := s.Selection()
	assert.False(t, ok)
	fresh, err := s.Create(TypeNetwork, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, "network-1", fresh.ID)
}

func TestLoadAdvancesCounters(t *testing.T) {
	s := NewStore()
	err := s.Load([]Node{
		{ID: "network-5", Type: TypeNetwork},
		{ID: "subnetwork-2", Type: TypeSubnetwork},
	})
	require.NoError(t, err)

	n, err := s.Create(TypeNetwork, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, "network-6", n.ID)

	got, ok := s.Get("network-5")
	require.True(t, ok)
	assert.Equal(t, "network-5", got.Props.DisplayName(), "missing props fall back to defaults")
}

func TestLoadRejectsDuplicateIDs(t *testing.T) {
	s := NewStore()
	err := s.Load([]Node{
		{ID: "network-1", Type: TypeNetwork},
		{ID: "network-1", Type: TypeNetwork},
	})
	require.Error(t, err)
}

func TestLoadRejectsUnknownType(t *testing.T) {
	s := NewStore()
	err := s.Load([]Node{{ID: "volume-1", Type: Type("volume")}})
	require.Error(t, err)
}
