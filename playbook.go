package kolladm

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Playbook describes one invocation of the external ansible-playbook
// runner against the current inventory. Hosts and Groups are mutually
// exclusive deploy filters, Services narrows the run to those tags.
type Playbook struct {
	Path      string
	Inventory *Inventory
	Hosts     []string
	Groups    []string
	Services  []string
	ExtraVars []string // passed verbatim as -e arguments (e.g. "@/etc/kolla/globals.yml")
	Serial    bool
	Verbose   int
}

// Run generates the filtered inventory script, hands it to ansible-playbook
// and waits for completion. The script is removed afterwards. The runner's
// combined output is part of the returned error on failure.
func (p *Playbook) Run() error {
	if len(p.Hosts) > 0 && len(p.Groups) > 0 {
		return newValidationError("Hosts and Groups arguments cannot both be present at the same time.")
	}

	var filter *DeployFilter
	if len(p.Hosts) > 0 {
		filter = &DeployFilter{DeployHosts: p.Hosts}
	} else if len(p.Groups) > 0 {
		filter = &DeployFilter{DeployGroups: p.Groups}
	}

	genPath, err := p.Inventory.WriteGenFile(filter)
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(genPath) }()

	args := []string{"-i", genPath}
	for _, extra := range p.ExtraVars {
		args = append(args, "-e", extra)
	}
	if len(p.Services) > 0 {
		args = append(args, "--tags", strings.Join(p.Services, ","))
	}
	if p.Serial {
		args = append(args, "-e", "serial=1")
	}
	if p.Verbose > 0 {
		args = append(args, "-"+strings.Repeat("v", p.Verbose))
	}
	args = append(args, p.Path)

	out, err := exec.Command("ansible-playbook", args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("playbook (%s) failed: %s: %s", p.Path, err, strings.TrimSpace(string(out)))
	}
	return nil
}

// CheckHost pings one host through a generated inventory script to verify
// it is manageable by ansible.
func (inv *Inventory) CheckHost(hostname string) error {
	genPath, err := inv.WriteGenFile(nil)
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(genPath) }()

	out, err := exec.Command("ansible", "-i", genPath, hostname, "-m", "ping").CombinedOutput()
	if err != nil {
		return fmt.Errorf("host (%s) check failed: %s: %s", hostname, err, strings.TrimSpace(string(out)))
	}
	return nil
}
