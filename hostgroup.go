package kolladm

import "encoding/json"

type (
	// HostGroup is a named set of hosts that services are placed on. Member
	// order is insertion order and members are unique.
	HostGroup struct {
		Name      string
		hostnames []string
		vars      map[string]string
	}

	// HostGroups is an alias to a slice of *HostGroup
	HostGroups []*HostGroup

	// hostGroupJSON is used to ease json marshal/unmarshal
	hostGroupJSON struct {
		Name      string            `json:"name"`
		Hostnames []string          `json:"hostnames"`
		Vars      map[string]string `json:"vars"`
	}
)

// NewHostGroup creates a blank HostGroup
func NewHostGroup(name string) *HostGroup {
	return &HostGroup{
		Name:      name,
		hostnames: make([]string, 0),
		vars:      make(map[string]string),
	}
}

// AddHost adds a host to the group
func (g *HostGroup) AddHost(host *Host) {
	for _, name := range g.hostnames {
		if name == host.Name {
			return
		}
	}
	g.hostnames = append(g.hostnames, host.Name)
}

// RemoveHost removes a host from the group
func (g *HostGroup) RemoveHost(host *Host) {
	for i, name := range g.hostnames {
		if name == host.Name {
			g.hostnames = append(g.hostnames[:i], g.hostnames[i+1:]...)
			return
		}
	}
}

// Hostnames returns the group's member hostnames in insertion order
func (g *HostGroup) Hostnames() []string {
	hostnames := make([]string, len(g.hostnames))
	copy(hostnames, g.hostnames)
	return hostnames
}

// Contains reports whether hostname is a member of the group
func (g *HostGroup) Contains(hostname string) bool {
	for _, name := range g.hostnames {
		if name == hostname {
			return true
		}
	}
	return false
}

// Vars returns a copy of the group's variables
func (g *HostGroup) Vars() map[string]string {
	vars := make(map[string]string, len(g.vars))
	for k, v := range g.vars {
		vars[k] = v
	}
	return vars
}

// SetVar sets a group variable
func (g *HostGroup) SetVar(name, value string) {
	g.vars[name] = value
}

// ClearVar removes a group variable
func (g *HostGroup) ClearVar(name string) {
	delete(g.vars, name)
}

// SetRemote switches the group between remote and local deploy settings.
// A group always escalates privileges. Remote mode sets the ssh user for
// all the servers in the group, local mode replaces it with a local
// connection type. The two variables are never both set.
func (g *HostGroup) SetRemote(remote bool, adminUser string) {
	g.SetVar(AnsibleBecome, "yes")
	if remote {
		g.SetVar(AnsibleSSHUser, adminUser)
		g.ClearVar(AnsibleConnection)
	} else {
		g.SetVar(AnsibleConnection, "local")
		g.ClearVar(AnsibleSSHUser)
	}
}

// MarshalJSON is a helper for marshalling a HostGroup
func (g *HostGroup) MarshalJSON() ([]byte, error) {
	data := hostGroupJSON{
		Name:      g.Name,
		Hostnames: g.hostnames,
		Vars:      g.vars,
	}
	return json.Marshal(data)
}

// UnmarshalJSON is a helper for unmarshalling a HostGroup
func (g *HostGroup) UnmarshalJSON(input []byte) error {
	data := hostGroupJSON{}
	if err := json.Unmarshal(input, &data); err != nil {
		return err
	}

	g.Name = data.Name
	g.hostnames = data.Hostnames
	g.vars = data.Vars
	if g.hostnames == nil {
		g.hostnames = make([]string, 0)
	}
	if g.vars == nil {
		g.vars = make(map[string]string)
	}
	return nil
}
