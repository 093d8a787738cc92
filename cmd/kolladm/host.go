package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/kolladm/kolladm"
	"github.com/kolladm/kolladm/internal/cli"
	"github.com/kolladm/kolladm/pkg/sshutil"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/ssh/terminal"
	"gopkg.in/yaml.v3"
)

var (
	setupFile     = ""
	setupInsecure = ""
)

func hostCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "host",
		Short: "manage deployment hosts",
	}

	cmdAdd := &cobra.Command{
		Use:   "add <hostname>...",
		Short: "add host(s) to the inventory",
		Args:  cobra.MinimumNArgs(1),
		Run:   hostAdd,
	}

	cmdRemove := &cobra.Command{
		Use:   "remove <hostname>...",
		Short: "remove host(s) from the inventory",
		Args:  cobra.MinimumNArgs(1),
		Run:   hostRemove,
	}

	cmdList := &cobra.Command{
		Use:   "list",
		Short: "list hosts and their groups",
		Run:   hostList,
	}

	cmdSetup := &cobra.Command{
		Use:   "setup [<hostname>]",
		Short: "set up host(s) for management by the admin user",
		Long: `Set up a single host, prompting for the root password unless --insecure is
given, or set up many hosts at once from a yaml file mapping hostname to
password (and optional uname).`,
		Run: hostSetup,
	}
	cmdSetup.Flags().StringVarP(&setupFile, "file", "f", "", "yaml file of hosts to set up")
	cmdSetup.Flags().StringVarP(&setupInsecure, "insecure", "", "", "password on the command line (insecure)")

	cmdCheck := &cobra.Command{
		Use:   "check <hostname>",
		Short: "check that a host is manageable by ansible",
		Args:  cobra.ExactArgs(1),
		Run:   hostCheck,
	}

	cmd.AddCommand(cmdAdd, cmdRemove, cmdList, cmdSetup, cmdCheck)
	return cmd
}

func hostAdd(cmd *cobra.Command, args []string) {
	store, inv := load()
	for _, hostname := range args {
		cli.AssertName(hostname)
		if err := inv.AddHost(hostname, ""); err != nil {
			fatal(err)
		}
	}
	save(store, inv)
}

func hostRemove(cmd *cobra.Command, args []string) {
	store, inv := load()
	for _, hostname := range args {
		if err := inv.RemoveHost(hostname, ""); err != nil {
			fatal(err)
		}
	}
	save(store, inv)
}

func hostList(cmd *cobra.Command, args []string) {
	_, inv := load()
	hostGroups := inv.HostToGroups()
	jmaps := make(cli.JMapSlice, 0, len(hostGroups))
	for hostname, groups := range hostGroups {
		jmaps = append(jmaps, cli.JMap{
			"name":   hostname,
			"groups": groups,
		})
	}
	sort.Sort(jmaps)
	for _, j := range jmaps {
		j.Print(jsonout)
	}
}

func hostSetup(cmd *cobra.Command, args []string) {
	store, inv := load()
	cfg := config()

	setup := func(hostname, password, user string) error {
		return sshutil.SetupHost(hostname, sshutil.Config{
			User:      user,
			Password:  password,
			AdminUser: cfg.AdminUser,
			PublicKey: adminPublicKey(cfg),
		})
	}
	check := func(hostname string) error {
		return inv.CheckHost(hostname)
	}

	if setupFile != "" {
		data, err := os.ReadFile(setupFile)
		if err != nil {
			fatal(err)
		}
		hostsInfo := map[string]kolladm.SetupInfo{}
		if err := yaml.Unmarshal(data, &hostsInfo); err != nil {
			fatal(err)
		}
		if err := inv.SetupHosts(hostsInfo, setup, check); err != nil {
			fatal(err)
		}
		save(store, inv)
		return
	}

	if len(args) != 1 {
		log.Fatal("a hostname or --file is required")
	}
	hostname := args[0]
	if inv.GetHost(hostname) == nil {
		log.WithField("host", hostname).Fatal("host does not exist")
	}

	password := setupInsecure
	if password == "" {
		fmt.Print("Password: ")
		raw, err := terminal.ReadPassword(int(os.Stdin.Fd()))
		fmt.Println()
		if err != nil {
			fatal(err)
		}
		password = strings.TrimSpace(string(raw))
	}

	if err := inv.SetupHost(hostname, password, "", setup, check); err != nil {
		fatal(err)
	}
	save(store, inv)
	log.WithField("host", hostname).Info("host setup succeeded")
}

func hostCheck(cmd *cobra.Command, args []string) {
	_, inv := load()
	if err := inv.CheckHost(args[0]); err != nil {
		fatal(err)
	}
	log.WithField("host", args[0]).Info("host check succeeded")
}

// adminPublicKey returns the management public key installed on new hosts,
// or "" when none has been generated yet.
func adminPublicKey(cfg *kolladm.Config) string {
	data, err := os.ReadFile(filepath.Join(cfg.Etc, "id_rsa.pub"))
	if err != nil {
		log.WithFields(log.Fields{
			"error": err,
		}).Warning("no admin public key found, key installation skipped")
		return ""
	}
	return strings.TrimSpace(string(data))
}
