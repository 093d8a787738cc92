package kolladm

import (
	"fmt"
	"sort"
	"strings"
)

type (
	// SetupInfo holds the credentials needed to bootstrap one host. User is
	// optional, the bootstrap defaults it.
	SetupInfo struct {
		Password string `yaml:"password"`
		User     string `yaml:"uname"`
	}

	// HostSetupFunc bootstraps a single host so the admin user can manage
	// it. The ssh implementation lives outside the inventory core.
	HostSetupFunc func(hostname, password, user string) error

	// HostCheckFunc verifies a host is manageable after setup.
	HostCheckFunc func(hostname string) error
)

// SetupHost bootstraps one host and verifies it afterwards. A failure never
// leaves the host or its group memberships in a partial state, setup does
// not mutate the inventory.
func (inv *Inventory) SetupHost(hostname, password, user string, setup HostSetupFunc, check HostCheckFunc) error {
	if err := setup(hostname, password, user); err != nil {
		return fmt.Errorf("host (%s) setup failed: %s", hostname, err)
	}
	if check != nil {
		if err := check(hostname); err != nil {
			return fmt.Errorf("host (%s) post-setup check failed: %s", hostname, err)
		}
	}
	return nil
}

// SetupHosts bootstraps multiple hosts, collecting per-host failures into
// one report. Hosts that are not in the inventory or have no password fail
// without being attempted.
func (inv *Inventory) SetupHosts(hostsInfo map[string]SetupInfo, setup HostSetupFunc, check HostCheckFunc) error {
	hostnames := make([]string, 0, len(hostsInfo))
	for hostname := range hostsInfo {
		hostnames = append(hostnames, hostname)
	}
	sort.Strings(hostnames)

	failed := make(map[string]string)
	for _, hostname := range hostnames {
		info := hostsInfo[hostname]
		if inv.GetHost(hostname) == nil {
			failed[hostname] = "host does not exist"
			continue
		}
		if info.Password == "" {
			failed[hostname] = "no password in setup file"
			continue
		}
		if err := inv.SetupHost(hostname, info.Password, info.User, setup, check); err != nil {
			failed[hostname] = err.Error()
		}
	}

	if len(failed) > 0 {
		var summary strings.Builder
		for _, hostname := range hostnames {
			if msg, ok := failed[hostname]; ok {
				fmt.Fprintf(&summary, "\n- %s: %s", hostname, msg)
			}
		}
		return newValidationError("Not all hosts were set up:%s", summary.String())
	}
	return nil
}
