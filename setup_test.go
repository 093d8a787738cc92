package kolladm_test

import (
	"errors"
	"testing"

	"github.com/kolladm/kolladm"
	"github.com/stretchr/testify/suite"
)

type SetupSuite struct {
	InventoryTestSuite
}

func TestSetup(t *testing.T) {
	suite.Run(t, new(SetupSuite))
}

func (s *SetupSuite) TestSetupHost() {
	var setupCalls, checkCalls []string
	setup := func(hostname, password, user string) error {
		setupCalls = append(setupCalls, hostname)
		s.Equal("hunter2", password)
		s.Equal("root", user)
		return nil
	}
	check := func(hostname string) error {
		checkCalls = append(checkCalls, hostname)
		return nil
	}

	err := s.Inventory.SetupHost("node1", "hunter2", "root", setup, check)
	s.NoError(err)
	s.Equal([]string{"node1"}, setupCalls)
	s.Equal([]string{"node1"}, checkCalls)
}

func (s *SetupSuite) TestSetupHostFailures() {
	boom := func(hostname, password, user string) error { return errors.New("connection refused") }
	ok := func(hostname, password, user string) error { return nil }
	badCheck := func(hostname string) error { return errors.New("ping failed") }

	err := s.Inventory.SetupHost("node1", "pw", "", boom, nil)
	s.Error(err)
	s.Contains(err.Error(), "node1")
	s.Contains(err.Error(), "setup failed")

	err = s.Inventory.SetupHost("node1", "pw", "", ok, badCheck)
	s.Error(err)
	s.Contains(err.Error(), "post-setup check failed")
}

func (s *SetupSuite) TestSetupHosts() {
	s.addHost("node1")
	s.addHost("node2")
	s.addHost("node3")

	var attempted []string
	setup := func(hostname, password, user string) error {
		attempted = append(attempted, hostname)
		if hostname == "node2" {
			return errors.New("connection refused")
		}
		return nil
	}

	hostsInfo := map[string]kolladm.SetupInfo{
		"node1":   {Password: "pw1"},
		"node2":   {Password: "pw2"},
		"node3":   {},
		"missing": {Password: "pw"},
	}
	err := s.Inventory.SetupHosts(hostsInfo, setup, nil)
	s.Require().Error(err)
	s.True(kolladm.IsValidationError(err))

	s.Equal([]string{"node1", "node2"}, attempted, "hosts without inventory entries or passwords are never attempted")
	s.Contains(err.Error(), "Not all hosts were set up:")
	s.Contains(err.Error(), "missing: host does not exist")
	s.Contains(err.Error(), "node3: no password in setup file")
	s.Contains(err.Error(), "node2")
	s.NotContains(err.Error(), "node1:", "successful hosts are not reported")
}

func (s *SetupSuite) TestSetupHostsAllGood() {
	s.addHost("node1")

	setup := func(hostname, password, user string) error { return nil }
	err := s.Inventory.SetupHosts(map[string]kolladm.SetupInfo{
		"node1": {Password: "pw", User: "admin"},
	}, setup, nil)
	s.NoError(err)
}
