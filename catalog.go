package kolladm

// The deploy groups and the service catalog are static configuration
// required by kolla. They seed the default topology and are never mutated
// at runtime.

const (
	ComputeGroup  = "compute"
	ControlGroup  = "control"
	NetworkGroup  = "network"
	StorageGroup  = "storage"
	DatabaseGroup = "database"
)

// ReservedGroupName is the transient catch-all group emitted in the ansible
// json. It must never appear in persisted inventory state.
const ReservedGroupName = "__RESERVED__"

// ansible variables managed on every host group
const (
	AnsibleSSHUser    = "ansible_ssh_user"
	AnsibleConnection = "ansible_connection"
	AnsibleBecome     = "ansible_become"
)

var (
	// DeployGroups are the groups created in a fresh inventory
	DeployGroups = []string{
		ComputeGroup,
		ControlGroup,
		NetworkGroup,
		StorageGroup,
		DatabaseGroup,
	}

	// ProtectedGroups cannot be deleted, they are required by kolla
	ProtectedGroups = []string{ComputeGroup}
)

type serviceDef struct {
	name         string
	defaultGroup string
	subServices  []string
}

// serviceCatalog maps every deployable service to its default group and its
// sub-services. Order matters, a fresh inventory is seeded in this order.
var serviceCatalog = []serviceDef{
	{"cinder", ControlGroup, []string{"cinder-api", "cinder-scheduler", "cinder-backup", "cinder-volume"}},
	{"glance", ControlGroup, []string{"glance-api", "glance-registry"}},
	{"haproxy", ControlGroup, nil},
	{"heat", ControlGroup, []string{"heat-api", "heat-api-cfn", "heat-engine"}},
	{"horizon", ControlGroup, nil},
	{"keystone", ControlGroup, nil},
	{"memcached", ControlGroup, nil},
	{"murano", ControlGroup, []string{"murano-api", "murano-engine"}},
	{"mysqlcluster", ControlGroup, []string{"mysqlcluster-api", "mysqlcluster-mgmt", "mysqlcluster-ndb"}},
	{"neutron", NetworkGroup, []string{"neutron-server", "neutron-agents"}},
	{"nova", ControlGroup, []string{"nova-api", "nova-conductor", "nova-consoleauth", "nova-novncproxy", "nova-scheduler"}},
	{"rabbitmq", ControlGroup, nil},
	{"swift", ControlGroup, []string{"swift-proxy-server", "swift-account-server", "swift-container-server", "swift-object-server"}},
}

// defaultOverrides places specific sub-services on a group other than their
// parent's default.
var defaultOverrides = map[string]string{
	"cinder-backup":          StorageGroup,
	"cinder-volume":          StorageGroup,
	"mysqlcluster-ndb":       DatabaseGroup,
	"neutron-server":         ControlGroup,
	"swift-account-server":   StorageGroup,
	"swift-container-server": StorageGroup,
	"swift-object-server":    StorageGroup,
}

// defaultParentOf returns the service that declares subServiceName in the
// catalog, or "" if no service does.
func defaultParentOf(subServiceName string) string {
	for _, def := range serviceCatalog {
		for _, name := range def.subServices {
			if name == subServiceName {
				return def.name
			}
		}
	}
	return ""
}

// IsProtectedGroup reports whether groupname may never be deleted.
func IsProtectedGroup(groupname string) bool {
	for _, name := range ProtectedGroups {
		if name == groupname {
			return true
		}
	}
	return false
}
