package kolladm

import (
	"encoding/json"
	"os"
)

// DeployFilter restricts an ansible json projection to a subset of hosts or
// groups for a more targeted deploy. A nil slice means no restriction.
type DeployFilter struct {
	DeployHosts  []string
	DeployGroups []string
}

// AnsibleJSON renders the inventory as an ansible dynamic-inventory
// document:
//
//	{
//	    "group": {
//	        "hosts": ["192.168.28.71", "192.168.28.72"],
//	        "vars": {"ansible_ssh_user": "kolla"},
//	        "children": []
//	    },
//	    "service": {"children": ["group"]},
//	    "_meta": {
//	        "hostvars": {"192.168.28.71": {"host_specific_var": "bar"}}
//	    }
//	}
//
// Output is deterministic: for a fixed inventory state and filter, two
// projections are byte-identical.
func (inv *Inventory) AnsibleJSON(filter *DeployFilter) ([]byte, error) {
	// if no filter provided, use all groups, all hosts
	deployHostnames := inv.Hostnames()
	deployGroupnames := inv.Groupnames()
	if filter != nil {
		if filter.DeployHosts != nil {
			deployHostnames = filter.DeployHosts
		}
		if filter.DeployGroups != nil {
			deployGroupnames = filter.DeployGroups
		}
	}

	jdict := make(map[string]interface{})

	// hostgroups: hosts restricted to the deploy filter, and only emitted
	// at all when the group itself is in the deploy filter
	for _, group := range inv.Groups() {
		entry := map[string]interface{}{
			"hosts":    []string{},
			"children": []string{},
			"vars":     group.Vars(),
		}
		if containsName(deployGroupnames, group.Name) {
			entry["hosts"] = filterHostnames(group.Hostnames(), deployHostnames)
		}
		jdict[group.Name] = entry
	}

	// top-level services and what groups they are in
	for _, service := range inv.Services() {
		jdict[service.Name] = map[string]interface{}{
			"children": service.GroupNames(),
		}
	}

	// sub-services and their groups, or their parent service when they
	// inherit placement
	for _, subService := range inv.SubServices() {
		children := subService.GroupNames()
		if len(children) == 0 {
			children = []string{subService.ParentName()}
		}
		jdict[subService.Name] = map[string]interface{}{
			"children": children,
		}
	}

	// transient group containing all deploy hosts. this is needed for
	// ansible commands performed on hosts not yet in groups. it is built
	// outside the aggregate so it can never end up in persisted state.
	reserved := NewHostGroup(ReservedGroupName)
	reserved.SetRemote(inv.remoteMode, inv.adminUser)
	jdict[reserved.Name] = map[string]interface{}{
		"hosts": deployHostnames,
		"vars":  reserved.Vars(),
	}

	hostvars := make(map[string]map[string]string)
	for _, hostname := range deployHostnames {
		if host := inv.GetHost(hostname); host != nil {
			hostvars[hostname] = host.Vars()
		}
	}
	jdict["_meta"] = map[string]interface{}{
		"hostvars": hostvars,
	}

	return json.Marshal(jdict)
}

// filterHostnames keeps only the group members that are also deploy hosts,
// in deploy-filter order.
func filterHostnames(groupHostnames, deployHostnames []string) []string {
	filtered := make([]string, 0, len(groupHostnames))
	for _, hostname := range deployHostnames {
		if containsName(groupHostnames, hostname) {
			filtered = append(filtered, hostname)
		}
	}
	return filtered
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

// WriteGenFile writes the filtered ansible json into a temporary executable
// inventory script that prints the json to stdout, satisfying ansible's
// dynamic inventory contract. The caller removes the file after use.
func (inv *Inventory) WriteGenFile(filter *DeployFilter) (string, error) {
	out, err := inv.AnsibleJSON(filter)
	if err != nil {
		return "", err
	}

	f, err := os.CreateTemp("", "kolladm_json_gen_*.py")
	if err != nil {
		return "", err
	}
	path := f.Name()

	// the quotes are significant, the json contains double quotes so
	// single quotes are needed to wrap it
	script := "#!/usr/bin/env python\nprint('" + string(out) + "')\n"
	if _, err := f.WriteString(script); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return "", err
	}
	if err := os.Chmod(path, 0555); err != nil {
		_ = os.Remove(path)
		return "", err
	}
	return path, nil
}
