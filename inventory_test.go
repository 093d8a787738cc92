package kolladm_test

import (
	"testing"

	"github.com/kolladm/kolladm"
	"github.com/stretchr/testify/suite"
)

type InventorySuite struct {
	InventoryTestSuite
}

func TestInventory(t *testing.T) {
	suite.Run(t, new(InventorySuite))
}

func (s *InventorySuite) TestSeededGroups() {
	for _, groupname := range kolladm.DeployGroups {
		s.NotNil(s.Inventory.GetGroup(groupname), groupname)
	}
	s.Len(s.Inventory.Groupnames(), len(kolladm.DeployGroups))
}

func (s *InventorySuite) TestSeededServices() {
	inv := s.Inventory

	nova := inv.GetService("nova")
	s.Require().NotNil(nova)
	s.Equal([]string{kolladm.ControlGroup}, nova.GroupNames())
	s.Contains(nova.SubServiceNames(), "nova-api")

	neutron := inv.GetService("neutron")
	s.Require().NotNil(neutron)
	s.Equal([]string{kolladm.NetworkGroup}, neutron.GroupNames())

	// parented unless the catalog overrides the group
	novaAPI := inv.GetSubService("nova-api")
	s.Require().NotNil(novaAPI)
	s.Equal("nova", novaAPI.ParentName())

	neutronServer := inv.GetSubService("neutron-server")
	s.Require().NotNil(neutronServer)
	s.Empty(neutronServer.ParentName())
	s.Equal([]string{kolladm.ControlGroup}, neutronServer.GroupNames())
}

func (s *InventorySuite) TestAddGroup() {
	inv := s.Inventory

	tests := []struct {
		description string
		groupname   string
		expectedErr bool
	}{
		{"new group", "rack1", false},
		{"existing group", kolladm.ComputeGroup, false},
		{"service name collision", "swift", true},
		{"sub-service name collision", "swift-proxy-server", true},
	}

	for _, test := range tests {
		msg := testMsgFunc(test.description)
		group, err := inv.AddGroup(test.groupname)
		if test.expectedErr {
			s.Error(err, msg("should be invalid"))
			s.True(kolladm.IsValidationError(err), msg("should be a validation error"))
			s.Nil(group, msg("failure shouldn't return a group"))
		} else {
			s.NoError(err, msg("should be valid"))
			s.NotNil(group, msg("success should return the group"))
			s.Equal("yes", group.Vars()[kolladm.AnsibleBecome], msg("deploy mode settings should be applied"))
		}
	}
}

func (s *InventorySuite) TestRemoveGroup() {
	inv := s.Inventory

	err := inv.RemoveGroup(kolladm.ComputeGroup)
	s.Error(err, "protected groups can never be deleted")
	s.True(kolladm.IsValidationError(err))
	s.NotNil(inv.GetGroup(kolladm.ComputeGroup))

	// removal strips the group from services and triggers re-parenting
	s.NoError(inv.RemoveGroup(kolladm.StorageGroup))
	s.Nil(inv.GetGroup(kolladm.StorageGroup))

	cinder := inv.GetService("cinder")
	s.NotContains(cinder.GroupNames(), kolladm.StorageGroup)

	cinderVolume := inv.GetSubService("cinder-volume")
	s.Equal("cinder", cinderVolume.ParentName(), "sub-service reverts to its cataloged parent")

	s.NoError(inv.RemoveGroup("nonexistent"), "removing an unknown group is a no-op")
}

func (s *InventorySuite) TestAddHost() {
	inv := s.Inventory

	tests := []struct {
		description string
		hostname    string
		groupname   string
		expectedErr bool
	}{
		{"new host", "node1", "", false},
		{"existing host", "node1", "", false},
		{"link host into group", "node1", kolladm.ComputeGroup, false},
		{"link again", "node1", kolladm.ComputeGroup, false},
		{"link into unknown group", "node1", "rack9", true},
		{"link unknown host", "node9", kolladm.ComputeGroup, true},
	}

	for _, test := range tests {
		msg := testMsgFunc(test.description)
		err := inv.AddHost(test.hostname, test.groupname)
		if test.expectedErr {
			s.Error(err, msg("should be invalid"))
			s.True(kolladm.IsValidationError(err), msg("should be a validation error"))
		} else {
			s.NoError(err, msg("should be valid"))
		}
	}

	s.Equal([]string{"node1"}, inv.GetGroup(kolladm.ComputeGroup).Hostnames())
	s.Nil(inv.GetHost("node9"), "failed link never creates a host")
}

func (s *InventorySuite) TestRemoveHost() {
	inv := s.Inventory
	s.addHost("node1", kolladm.ComputeGroup, kolladm.ControlGroup)

	s.Error(inv.RemoveHost("node1", "rack9"), "unknown group should fail")

	s.NoError(inv.RemoveHost("node1", kolladm.ComputeGroup))
	s.NotNil(inv.GetHost("node1"), "group-scoped removal keeps the host")
	s.Empty(inv.GetGroup(kolladm.ComputeGroup).Hostnames())
	s.Equal([]string{"node1"}, inv.GetGroup(kolladm.ControlGroup).Hostnames())

	s.NoError(inv.RemoveHost("node1", ""))
	s.Nil(inv.GetHost("node1"))
	s.Empty(inv.GetGroup(kolladm.ControlGroup).Hostnames(), "full removal unlinks everywhere")

	s.NoError(inv.RemoveHost("node1", ""), "removing an unknown host is a no-op")
}

func (s *InventorySuite) TestLocalModeCardinality() {
	inv := s.Inventory

	s.addHost("node1")
	s.addHost("node2")
	err := inv.SetDeployMode(false)
	s.Error(err, "local mode cannot be set with two hosts")
	s.True(kolladm.IsValidationError(err))

	s.NoError(inv.RemoveHost("node2", ""))
	s.NoError(inv.SetDeployMode(false))
	s.False(inv.RemoteMode())

	err = inv.AddHost("node2", "")
	s.Error(err, "local mode holds at most one host")
	s.NoError(inv.AddHost("node1", ""), "re-adding the existing host stays a no-op")

	for _, group := range inv.Groups() {
		vars := group.Vars()
		s.Equal("local", vars[kolladm.AnsibleConnection])
		_, ok := vars[kolladm.AnsibleSSHUser]
		s.False(ok, "no group carries remote settings in local mode")
	}
}

func (s *InventorySuite) TestAddGroupToService() {
	inv := s.Inventory
	_, err := inv.AddGroup("rack1")
	s.Require().NoError(err)

	tests := []struct {
		description string
		groupname   string
		servicename string
		expectedErr bool
	}{
		{"service target", "rack1", "nova", false},
		{"sub-service target", "rack1", "nova-api", false},
		{"unknown group", "rack9", "nova", true},
		{"unknown service", "rack1", "nonsense", true},
	}

	for _, test := range tests {
		msg := testMsgFunc(test.description)
		err := inv.AddGroupToService(test.groupname, test.servicename)
		if test.expectedErr {
			s.Error(err, msg("should be invalid"))
		} else {
			s.NoError(err, msg("should be valid"))
		}
	}

	s.Contains(inv.GetService("nova").GroupNames(), "rack1")
	s.Contains(inv.GetSubService("nova-api").GroupNames(), "rack1")
	s.Empty(inv.GetSubService("nova-api").ParentName(), "group association ends inheritance")

	s.NoError(inv.RemoveGroupFromService("rack1", "nova-api"))
	s.Equal("nova", inv.GetSubService("nova-api").ParentName())
	s.Error(inv.RemoveGroupFromService("rack9", "nova"))
	s.Error(inv.RemoveGroupFromService("rack1", "nonsense"))
}

func (s *InventorySuite) TestCreateDelete() {
	inv := s.Inventory

	svc := inv.CreateService("custom")
	s.Equal(svc, inv.CreateService("custom"), "create is idempotent")
	inv.DeleteService("custom")
	s.Nil(inv.GetService("custom"))

	sub := inv.CreateSubService("custom-api")
	s.Equal(sub, inv.CreateSubService("custom-api"))
	inv.DeleteSubService("custom-api")
	s.Nil(inv.GetSubService("custom-api"))
}

func (s *InventorySuite) TestViews() {
	inv := s.Inventory
	s.addHost("node1", kolladm.ComputeGroup, kolladm.ControlGroup)
	s.addHost("node2", kolladm.ComputeGroup)

	hostGroups := inv.HostToGroups()
	s.Equal([]string{kolladm.ComputeGroup, kolladm.ControlGroup}, hostGroups["node1"])
	s.Equal([]string{kolladm.ComputeGroup}, hostGroups["node2"])

	groupHosts := inv.GroupToHosts()
	s.Equal([]string{"node1", "node2"}, groupHosts[kolladm.ComputeGroup])
	s.Empty(groupHosts[kolladm.NetworkGroup])

	groupServices := inv.GroupToServices()
	s.Contains(groupServices[kolladm.ControlGroup], "nova")
	s.Contains(groupServices[kolladm.StorageGroup], "cinder-volume", "sub-service memberships are aggregated")

	svcSubs := inv.ServiceToSubServices()
	s.Equal([]string{"glance-api", "glance-registry"}, svcSubs["glance"])

	svcGroups := inv.ServiceToGroups()
	s.Equal([]string{kolladm.ControlGroup}, svcGroups["nova"].GroupNames)
	s.False(svcGroups["nova"].Inherited)
	s.True(svcGroups["nova-api"].Inherited, "parented sub-services report inheritance")
	s.Empty(svcGroups["nova-api"].GroupNames)
	s.False(svcGroups["cinder-volume"].Inherited)
	s.Equal([]string{kolladm.StorageGroup}, svcGroups["cinder-volume"].GroupNames)
}
