package kolladm

import (
	"encoding/json"
	"sort"
)

// ClassVersion is the current schema version of the persisted inventory
// document.
//
// version history
//
//	1: initial release
const ClassVersion = 1

type (
	// Inventory is the aggregate holding all hosts, groups, services and
	// sub-services. Entities are created and mutated only through Inventory
	// methods so cross-entity invariants hold after every call.
	Inventory struct {
		hosts       map[string]*Host
		groups      map[string]*HostGroup
		services    map[string]*Service
		subServices map[string]*SubService
		vars        map[string]string
		remoteMode  bool
		version     int
		adminUser   string
	}

	// ServiceGroups is one entry of the service-to-groups view. Inherited is
	// true when a sub-service takes its placement from its parent service,
	// in which case GroupNames is empty. It is always false for top-level
	// services.
	ServiceGroups struct {
		GroupNames []string
		Inherited  bool
	}

	// inventoryJSON is used to ease json marshal/unmarshal
	inventoryJSON struct {
		Version     int                    `json:"version"`
		RemoteMode  bool                   `json:"remoteMode"`
		Hosts       map[string]*Host       `json:"hosts"`
		Groups      map[string]*HostGroup  `json:"groups"`
		Services    map[string]*Service    `json:"services"`
		SubServices map[string]*SubService `json:"subServices"`
		Vars        map[string]string      `json:"vars"`
	}
)

// NewInventory creates an inventory seeded with the default topology: the
// deploy groups, the cataloged services on their default groups, and their
// sub-services parented to the owning service unless the catalog designates
// a group override.
func NewInventory(adminUser string) *Inventory {
	inv := blankInventory(adminUser)
	inv.createDefaults()
	return inv
}

func blankInventory(adminUser string) *Inventory {
	return &Inventory{
		hosts:       make(map[string]*Host),
		groups:      make(map[string]*HostGroup),
		services:    make(map[string]*Service),
		subServices: make(map[string]*SubService),
		vars:        make(map[string]string),
		remoteMode:  true,
		version:     ClassVersion,
		adminUser:   adminUser,
	}
}

func (inv *Inventory) createDefaults() {
	for _, groupname := range DeployGroups {
		_, _ = inv.AddGroup(groupname)
	}

	for _, def := range serviceCatalog {
		svc := inv.CreateService(def.name)
		svc.AddGroup(def.defaultGroup)
		for _, subName := range def.subServices {
			svc.AddSubService(subName)
			sub := inv.CreateSubService(subName)
			sub.SetParent(svc.Name)
			if override, ok := defaultOverrides[subName]; ok {
				sub.AddGroup(override)
			}
		}
	}
}

// Version returns the schema version the inventory was loaded with.
func (inv *Inventory) Version() int {
	return inv.version
}

// RemoteMode reports whether hosts are managed over the network rather than
// being the local machine.
func (inv *Inventory) RemoteMode() bool {
	return inv.remoteMode
}

// upgrade migrates an inventory loaded from an older schema version to the
// current one. Each step transforms one version gap.
func (inv *Inventory) upgrade() {
	if inv.version <= 0 {
		// pre-versioned documents carry everything the current schema needs
	}
	inv.version = ClassVersion
}

// GetHost returns the named host, or nil if it does not exist
func (inv *Inventory) GetHost(hostname string) *Host {
	return inv.hosts[hostname]
}

// Hosts returns all hosts sorted by name
func (inv *Inventory) Hosts() Hosts {
	hosts := make(Hosts, 0, len(inv.hosts))
	for _, name := range inv.Hostnames() {
		hosts = append(hosts, inv.hosts[name])
	}
	return hosts
}

// Hostnames returns all hostnames, sorted
func (inv *Inventory) Hostnames() []string {
	names := make([]string, 0, len(inv.hosts))
	for name := range inv.hosts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AddHost adds a host. With no group, a new host is created; adding an
// existing host again is a no-op. With a group, both the group and the host
// must already exist and the host is linked into the group.
func (inv *Inventory) AddHost(hostname, groupname string) error {
	if groupname != "" {
		group, ok := inv.groups[groupname]
		if !ok {
			return newValidationError("Group name (%s) does not exist", groupname)
		}
		host, ok := inv.hosts[hostname]
		if !ok {
			return newValidationError("Host name (%s) does not exist", hostname)
		}
		group.AddHost(host)
		return nil
	}

	if _, ok := inv.hosts[hostname]; ok {
		return nil
	}
	if !inv.remoteMode && len(inv.hosts) >= 1 {
		return newValidationError("Cannot have more than one host when in local deploy mode")
	}
	inv.hosts[hostname] = NewHost(hostname)
	return nil
}

// RemoveHost removes a host. With no group, the host is unlinked from every
// group and deleted. With a group, the host is only unlinked from that
// group. Removing an unknown host is a no-op.
func (inv *Inventory) RemoveHost(hostname, groupname string) error {
	if groupname != "" {
		if _, ok := inv.groups[groupname]; !ok {
			return newValidationError("Group name (%s) does not exist", groupname)
		}
	}

	host, ok := inv.hosts[hostname]
	if !ok {
		return nil
	}

	for _, group := range inv.groups {
		if groupname == "" || groupname == group.Name {
			group.RemoveHost(host)
		}
	}

	if groupname == "" {
		delete(inv.hosts, hostname)
	}
	return nil
}

// GetGroup returns the named group, or nil if it does not exist
func (inv *Inventory) GetGroup(groupname string) *HostGroup {
	return inv.groups[groupname]
}

// Groups returns all groups sorted by name
func (inv *Inventory) Groups() HostGroups {
	groups := make(HostGroups, 0, len(inv.groups))
	for _, name := range inv.Groupnames() {
		groups = append(groups, inv.groups[name])
	}
	return groups
}

// Groupnames returns all group names, sorted
func (inv *Inventory) Groupnames() []string {
	names := make([]string, 0, len(inv.groups))
	for name := range inv.groups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GroupsOf returns all groups the host is a member of, sorted by name
func (inv *Inventory) GroupsOf(host *Host) HostGroups {
	groups := make(HostGroups, 0)
	for _, group := range inv.Groups() {
		if group.Contains(host.Name) {
			groups = append(groups, group)
		}
	}
	return groups
}

// AddGroup creates a group if it does not exist and applies the current
// deploy mode settings to it. The group, service and sub-service namespaces
// are disjoint, a name already used by a service cannot name a group.
func (inv *Inventory) AddGroup(groupname string) (*HostGroup, error) {
	if _, ok := inv.services[groupname]; ok {
		return nil, newValidationError("Invalid group name. A service name cannot be used for a group name.")
	}
	if _, ok := inv.subServices[groupname]; ok {
		return nil, newValidationError("Invalid group name. A service name cannot be used for a group name.")
	}

	group, ok := inv.groups[groupname]
	if !ok {
		group = NewHostGroup(groupname)
		inv.groups[groupname] = group
	}

	group.SetRemote(inv.remoteMode, inv.adminUser)

	return group, nil
}

// RemoveGroup deletes a group after stripping its reference from every
// service and sub-service. Protected groups can never be deleted.
func (inv *Inventory) RemoveGroup(groupname string) error {
	if IsProtectedGroup(groupname) {
		return newValidationError("Cannot remove %s group. It is required by kolla.", groupname)
	}

	for _, service := range inv.services {
		service.RemoveGroup(groupname)
	}
	for _, subService := range inv.subServices {
		subService.RemoveGroup(groupname)
	}

	delete(inv.groups, groupname)
	return nil
}

// CreateService creates a service if it does not exist and returns it
func (inv *Inventory) CreateService(servicename string) *Service {
	service, ok := inv.services[servicename]
	if !ok {
		service = NewService(servicename)
		inv.services[servicename] = service
	}
	return service
}

// DeleteService removes a service from the inventory. Group associations
// are not cascaded, detach first if that matters.
func (inv *Inventory) DeleteService(servicename string) {
	delete(inv.services, servicename)
}

// GetService returns the named service, or nil if it does not exist
func (inv *Inventory) GetService(servicename string) *Service {
	return inv.services[servicename]
}

// Services returns all services sorted by name
func (inv *Inventory) Services() Services {
	names := make([]string, 0, len(inv.services))
	for name := range inv.services {
		names = append(names, name)
	}
	sort.Strings(names)

	services := make(Services, 0, len(names))
	for _, name := range names {
		services = append(services, inv.services[name])
	}
	return services
}

// CreateSubService creates a sub-service if it does not exist and returns it
func (inv *Inventory) CreateSubService(subServicename string) *SubService {
	subService, ok := inv.subServices[subServicename]
	if !ok {
		subService = NewSubService(subServicename)
		inv.subServices[subServicename] = subService
	}
	return subService
}

// DeleteSubService removes a sub-service from the inventory
func (inv *Inventory) DeleteSubService(subServicename string) {
	delete(inv.subServices, subServicename)
}

// GetSubService returns the named sub-service, or nil if it does not exist
func (inv *Inventory) GetSubService(subServicename string) *SubService {
	return inv.subServices[subServicename]
}

// SubServices returns all sub-services sorted by name
func (inv *Inventory) SubServices() SubServices {
	names := make([]string, 0, len(inv.subServices))
	for name := range inv.subServices {
		names = append(names, name)
	}
	sort.Strings(names)

	subServices := make(SubServices, 0, len(names))
	for _, name := range names {
		subServices = append(subServices, inv.subServices[name])
	}
	return subServices
}

// AddGroupToService associates a group with a service or sub-service
func (inv *Inventory) AddGroupToService(groupname, servicename string) error {
	if _, ok := inv.groups[groupname]; !ok {
		return newValidationError("Group (%s) not found.", groupname)
	}
	if service, ok := inv.services[servicename]; ok {
		service.AddGroup(groupname)
		return nil
	}
	if subService, ok := inv.subServices[servicename]; ok {
		subService.AddGroup(groupname)
		return nil
	}
	return newValidationError("Service (%s) not found.", servicename)
}

// RemoveGroupFromService drops a group association from a service or
// sub-service
func (inv *Inventory) RemoveGroupFromService(groupname, servicename string) error {
	if _, ok := inv.groups[groupname]; !ok {
		return newValidationError("Group (%s) not found.", groupname)
	}
	if service, ok := inv.services[servicename]; ok {
		service.RemoveGroup(groupname)
		return nil
	}
	if subService, ok := inv.subServices[servicename]; ok {
		subService.RemoveGroup(groupname)
		return nil
	}
	return newValidationError("Service (%s) not found.", servicename)
}

// SetDeployMode switches between remote and local deploys and propagates
// the connection settings to every group. Local mode is limited to a single
// host.
func (inv *Inventory) SetDeployMode(remote bool) error {
	if !remote && len(inv.hosts) > 1 {
		return newValidationError("Cannot set local deploy mode when multiple hosts exist")
	}
	inv.remoteMode = remote

	for _, group := range inv.groups {
		group.SetRemote(remote, inv.adminUser)
	}
	return nil
}

// Vars returns a copy of the inventory's variables
func (inv *Inventory) Vars() map[string]string {
	vars := make(map[string]string, len(inv.vars))
	for k, v := range inv.vars {
		vars[k] = v
	}
	return vars
}

// SetVar sets an inventory variable
func (inv *Inventory) SetVar(name, value string) {
	inv.vars[name] = value
}

// HostToGroups returns the names of the groups each host is a member of
func (inv *Inventory) HostToGroups() map[string][]string {
	hostGroups := make(map[string][]string, len(inv.hosts))
	for _, host := range inv.Hosts() {
		hostGroups[host.Name] = make([]string, 0)
		for _, group := range inv.GroupsOf(host) {
			hostGroups[host.Name] = append(hostGroups[host.Name], group.Name)
		}
	}
	return hostGroups
}

// GroupToHosts returns the member hostnames of every group
func (inv *Inventory) GroupToHosts() map[string][]string {
	groupHosts := make(map[string][]string, len(inv.groups))
	for _, group := range inv.Groups() {
		groupHosts[group.Name] = group.Hostnames()
	}
	return groupHosts
}

// GroupToServices returns the services and sub-services directly associated
// with every group
func (inv *Inventory) GroupToServices() map[string][]string {
	groupServices := make(map[string][]string, len(inv.groups))
	for _, group := range inv.Groups() {
		groupServices[group.Name] = make([]string, 0)
	}
	for _, svc := range inv.Services() {
		for _, groupname := range svc.GroupNames() {
			groupServices[groupname] = append(groupServices[groupname], svc.Name)
		}
	}
	for _, sub := range inv.SubServices() {
		for _, groupname := range sub.GroupNames() {
			groupServices[groupname] = append(groupServices[groupname], sub.Name)
		}
	}
	for groupname := range groupServices {
		sort.Strings(groupServices[groupname])
	}
	return groupServices
}

// ServiceToSubServices returns the sub-service names owned by every service
func (inv *Inventory) ServiceToSubServices() map[string][]string {
	svcSubs := make(map[string][]string, len(inv.services))
	for _, service := range inv.Services() {
		svcSubs[service.Name] = service.SubServiceNames()
	}
	return svcSubs
}

// ServiceToGroups returns the group associations of every service and
// sub-service. A parented sub-service reports Inherited instead of a group
// list.
func (inv *Inventory) ServiceToGroups() map[string]ServiceGroups {
	svcGroups := make(map[string]ServiceGroups, len(inv.services)+len(inv.subServices))
	for _, svc := range inv.Services() {
		svcGroups[svc.Name] = ServiceGroups{GroupNames: svc.GroupNames()}
	}
	for _, sub := range inv.SubServices() {
		if sub.Inherited() {
			svcGroups[sub.Name] = ServiceGroups{Inherited: true}
		} else {
			svcGroups[sub.Name] = ServiceGroups{GroupNames: sub.GroupNames()}
		}
	}
	return svcGroups
}

// MarshalJSON is a helper for marshalling an Inventory
func (inv *Inventory) MarshalJSON() ([]byte, error) {
	data := inventoryJSON{
		Version:     inv.version,
		RemoteMode:  inv.remoteMode,
		Hosts:       inv.hosts,
		Groups:      inv.groups,
		Services:    inv.services,
		SubServices: inv.subServices,
		Vars:        inv.vars,
	}
	return json.Marshal(data)
}

// UnmarshalJSON is a helper for unmarshalling an Inventory
func (inv *Inventory) UnmarshalJSON(input []byte) error {
	data := inventoryJSON{}
	if err := json.Unmarshal(input, &data); err != nil {
		return err
	}

	inv.version = data.Version
	inv.remoteMode = data.RemoteMode
	inv.hosts = data.Hosts
	inv.groups = data.Groups
	inv.services = data.Services
	inv.subServices = data.SubServices
	inv.vars = data.Vars
	if inv.hosts == nil {
		inv.hosts = make(map[string]*Host)
	}
	if inv.groups == nil {
		inv.groups = make(map[string]*HostGroup)
	}
	if inv.services == nil {
		inv.services = make(map[string]*Service)
	}
	if inv.subServices == nil {
		inv.subServices = make(map[string]*SubService)
	}
	if inv.vars == nil {
		inv.vars = make(map[string]string)
	}
	return nil
}
