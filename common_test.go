package kolladm_test

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kolladm/kolladm"
	"github.com/pborman/uuid"
	"github.com/stretchr/testify/suite"
)

const testAdminUser = "kolla"

// InventoryTestSuite sets up a seeded inventory and a store backed by a
// temporary directory for each test.
type InventoryTestSuite struct {
	suite.Suite
	Dir       string
	Store     *kolladm.Store
	Inventory *kolladm.Inventory
}

func (s *InventoryTestSuite) SetupTest() {
	var err error
	s.Dir, err = os.MkdirTemp("", "kolladm-test-"+uuid.New())
	s.Require().NoError(err)

	s.Store = &kolladm.Store{
		Path:      filepath.Join(s.Dir, "ansible", "inventory.json"),
		AdminUser: testAdminUser,
	}
	s.Inventory = kolladm.NewInventory(testAdminUser)
}

func (s *InventoryTestSuite) TearDownTest() {
	s.Require().NoError(os.RemoveAll(s.Dir))
}

// addHost creates a host and optionally links it into groups
func (s *InventoryTestSuite) addHost(hostname string, groupnames ...string) *kolladm.Host {
	s.Require().NoError(s.Inventory.AddHost(hostname, ""))
	for _, groupname := range groupnames {
		s.Require().NoError(s.Inventory.AddHost(hostname, groupname))
	}
	return s.Inventory.GetHost(hostname)
}

func testMsgFunc(prefix string) func(...interface{}) string {
	return func(val ...interface{}) string {
		if len(val) == 0 {
			return prefix
		}
		msgPrefix := prefix + " : "
		if len(val) == 1 {
			return msgPrefix + val[0].(string)
		} else {
			return msgPrefix + fmt.Sprintf(val[0].(string), val[1:]...)
		}
	}
}
