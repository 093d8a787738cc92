package kolladm_test

import (
	"testing"

	"github.com/kolladm/kolladm"
	"github.com/stretchr/testify/suite"
)

type HostGroupSuite struct {
	InventoryTestSuite
}

func TestHostGroup(t *testing.T) {
	suite.Run(t, new(HostGroupSuite))
}

func (s *HostGroupSuite) TestAddRemoveHost() {
	group := kolladm.NewHostGroup("rack1")
	h1 := kolladm.NewHost("node1")
	h2 := kolladm.NewHost("node2")

	group.AddHost(h1)
	group.AddHost(h2)
	group.AddHost(h1)
	s.Equal([]string{"node1", "node2"}, group.Hostnames(), "members are unique and ordered by insertion")

	group.RemoveHost(h1)
	s.Equal([]string{"node2"}, group.Hostnames())
	group.RemoveHost(h1)
	s.Equal([]string{"node2"}, group.Hostnames(), "removing a non-member is a no-op")
}

func (s *HostGroupSuite) TestSetRemote() {
	group := kolladm.NewHostGroup("rack1")

	group.SetRemote(true, testAdminUser)
	vars := group.Vars()
	s.Equal("yes", vars[kolladm.AnsibleBecome])
	s.Equal(testAdminUser, vars[kolladm.AnsibleSSHUser])
	_, ok := vars[kolladm.AnsibleConnection]
	s.False(ok, "remote mode clears the local connection marker")

	group.SetRemote(false, testAdminUser)
	vars = group.Vars()
	s.Equal("yes", vars[kolladm.AnsibleBecome])
	s.Equal("local", vars[kolladm.AnsibleConnection])
	_, ok = vars[kolladm.AnsibleSSHUser]
	s.False(ok, "local mode clears the ssh user")
}

func (s *HostGroupSuite) TestVarsCopy() {
	group := kolladm.NewHostGroup("rack1")
	group.SetVar("foo", "bar")

	vars := group.Vars()
	vars["foo"] = "clobbered"
	s.Equal("bar", group.Vars()["foo"], "Vars returns a copy")
}
