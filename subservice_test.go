package kolladm_test

import (
	"testing"

	"github.com/kolladm/kolladm"
	"github.com/stretchr/testify/suite"
)

type SubServiceSuite struct {
	InventoryTestSuite
}

func TestSubService(t *testing.T) {
	suite.Run(t, new(SubServiceSuite))
}

func (s *SubServiceSuite) TestMutualExclusivity() {
	sub := kolladm.NewSubService("nova-api")

	sub.SetParent("nova")
	s.Equal("nova", sub.ParentName())
	s.True(sub.Inherited())
	s.Empty(sub.GroupNames())

	sub.AddGroup("control")
	s.Empty(sub.ParentName(), "adding a group clears the parent")
	s.False(sub.Inherited())
	s.Equal([]string{"control"}, sub.GroupNames())

	sub.AddGroup("network")
	sub.SetParent("nova")
	s.Empty(sub.GroupNames(), "setting a parent clears all groups")
	s.Equal("nova", sub.ParentName())
}

func (s *SubServiceSuite) TestReparenting() {
	sub := s.Inventory.GetSubService("cinder-backup")
	s.Require().NotNil(sub)

	// cataloged with a storage override instead of parent inheritance
	s.Equal([]string{kolladm.StorageGroup}, sub.GroupNames())
	s.Empty(sub.ParentName())

	sub.RemoveGroup(kolladm.StorageGroup)
	s.Equal("cinder", sub.ParentName(), "losing the last group reverts to the cataloged parent")
	s.Empty(sub.GroupNames())
}

func (s *SubServiceSuite) TestRemoveGroupKeepsOthers() {
	sub := kolladm.NewSubService("nova-api")
	sub.AddGroup("control")
	sub.AddGroup("network")

	sub.RemoveGroup("control")
	s.Equal([]string{"network"}, sub.GroupNames())
	s.Empty(sub.ParentName(), "re-parenting only happens when the last group goes")
}

func (s *SubServiceSuite) TestUncatalogedSubService() {
	sub := kolladm.NewSubService("custom-worker")
	sub.AddGroup("control")
	sub.RemoveGroup("control")

	s.Empty(sub.ParentName(), "no catalog entry means no parent to revert to")
	s.Empty(sub.GroupNames())
}
