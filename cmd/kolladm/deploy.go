package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/kolladm/kolladm"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"
)

var (
	deployHosts    = ""
	deployGroups   = ""
	deployServices = ""
	deploySerial   = false
	deployVerbose  = 0
)

func addDeployFlags(fs *flag.FlagSet) {
	fs.StringVarP(&deployHosts, "hosts", "", "", "comma separated deployment host list")
	fs.StringVarP(&deployGroups, "groups", "", "", "comma separated deployment group list")
	fs.StringVarP(&deployServices, "services", "", "", "comma separated deployment service list")
	fs.BoolVarP(&deploySerial, "serial", "", false, "deploy serially")
	fs.CountVarP(&deployVerbose, "verbose", "v", "ansible verbosity")
}

func deployCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "deploy openstack to the inventory hosts",
		Run:   deploy,
	}
	addDeployFlags(cmd.Flags())
	return cmd
}

func destroyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "destroy",
		Short: "tear a deployment down",
		Run:   destroy,
	}
	addDeployFlags(cmd.Flags())
	return cmd
}

func setdeployCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "setdeploy <local|remote>",
		Short: "set the deploy mode",
		Long: `Set deploy mode to either local or remote. Local indicates that the
openstack deployment will be to the local host. Remote means that the
deployment is on remote hosts.`,
		Args: cobra.ExactArgs(1),
		Run:  setdeploy,
	}
}

func deploy(cmd *cobra.Command, args []string) {
	cfg := config()
	runRules(cfg)
	runPlaybook(cfg, cfg.PlaybookPath())
}

func destroy(cmd *cobra.Command, args []string) {
	cfg := config()
	runPlaybook(cfg, cfg.DestroyPlaybookPath())
}

func runPlaybook(cfg *kolladm.Config, path string) {
	_, inv := load()

	playbook := &kolladm.Playbook{
		Path:      path,
		Inventory: inv,
		Hosts:     splitList(deployHosts),
		Groups:    splitList(deployGroups),
		Services:  splitList(deployServices),
		ExtraVars: []string{
			"@" + cfg.GlobalsPath(),
			"@" + cfg.PasswordsPath(),
		},
		Serial:  deploySerial,
		Verbose: deployVerbose,
	}
	if err := playbook.Run(); err != nil {
		fatal(err)
	}
	log.WithField("playbook", path).Info("playbook run succeeded")
}

func setdeploy(cmd *cobra.Command, args []string) {
	mode := strings.TrimSpace(args[0])
	if mode != "local" && mode != "remote" {
		log.WithField("mode", mode).Fatal(`invalid deploy mode, must be either "local" or "remote"`)
	}

	store, inv := load()
	if err := inv.SetDeployMode(mode == "remote"); err != nil {
		fatal(err)
	}
	save(store, inv)
}

// runRules applies the deploy pre-flight checks. Swift needs its ring files
// staged before a deploy can work.
func runRules(cfg *kolladm.Config) {
	props, err := kolladm.LoadProperties(cfg.GlobalsPath())
	if err != nil {
		fatal(err)
	}
	if props.Get("enable_swift") != "yes" {
		return
	}

	ringFiles := []string{"account.ring.gz", "container.ring.gz", "object.ring.gz"}
	for _, name := range ringFiles {
		path := filepath.Join(cfg.KollaEtc, "config", "swift", name)
		if _, err := os.Stat(path); err != nil {
			log.WithFields(log.Fields{
				"path": path,
			}).Fatal("swift is enabled but its ring files have not been set up")
		}
	}
}

func splitList(list string) []string {
	list = strings.TrimSpace(list)
	if list == "" {
		return nil
	}
	parts := strings.Split(list, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
