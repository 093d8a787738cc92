package main

import (
	"sort"

	"github.com/kolladm/kolladm/internal/cli"
	"github.com/spf13/cobra"
)

func groupCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "group",
		Short: "manage deployment groups",
	}

	cmdAdd := &cobra.Command{
		Use:   "add <groupname>...",
		Short: "add group(s) to the inventory",
		Args:  cobra.MinimumNArgs(1),
		Run:   groupAdd,
	}

	cmdRemove := &cobra.Command{
		Use:   "remove <groupname>...",
		Short: "remove group(s) from the inventory",
		Args:  cobra.MinimumNArgs(1),
		Run:   groupRemove,
	}

	cmdAddHost := &cobra.Command{
		Use:   "addhost <groupname> <hostname>",
		Short: "add a host to a group",
		Args:  cobra.ExactArgs(2),
		Run:   groupAddHost,
	}

	cmdRemoveHost := &cobra.Command{
		Use:   "removehost <groupname> <hostname>",
		Short: "remove a host from a group",
		Args:  cobra.ExactArgs(2),
		Run:   groupRemoveHost,
	}

	cmdListHosts := &cobra.Command{
		Use:   "listhosts",
		Short: "list groups and their hosts",
		Run:   groupListHosts,
	}

	cmdListServices := &cobra.Command{
		Use:   "listservices",
		Short: "list groups and their services",
		Run:   groupListServices,
	}

	cmd.AddCommand(cmdAdd, cmdRemove, cmdAddHost, cmdRemoveHost, cmdListHosts, cmdListServices)
	return cmd
}

func groupAdd(cmd *cobra.Command, args []string) {
	store, inv := load()
	for _, groupname := range args {
		cli.AssertName(groupname)
		if _, err := inv.AddGroup(groupname); err != nil {
			fatal(err)
		}
	}
	save(store, inv)
}

func groupRemove(cmd *cobra.Command, args []string) {
	store, inv := load()
	for _, groupname := range args {
		if err := inv.RemoveGroup(groupname); err != nil {
			fatal(err)
		}
	}
	save(store, inv)
}

func groupAddHost(cmd *cobra.Command, args []string) {
	store, inv := load()
	if err := inv.AddHost(args[1], args[0]); err != nil {
		fatal(err)
	}
	save(store, inv)
}

func groupRemoveHost(cmd *cobra.Command, args []string) {
	store, inv := load()
	if err := inv.RemoveHost(args[1], args[0]); err != nil {
		fatal(err)
	}
	save(store, inv)
}

func groupListHosts(cmd *cobra.Command, args []string) {
	_, inv := load()
	printNameLists(inv.GroupToHosts(), "hosts")
}

func groupListServices(cmd *cobra.Command, args []string) {
	_, inv := load()
	printNameLists(inv.GroupToServices(), "services")
}

// printNameLists renders a name-to-names view as sorted JMap rows
func printNameLists(view map[string][]string, field string) {
	jmaps := make(cli.JMapSlice, 0, len(view))
	for name, names := range view {
		jmaps = append(jmaps, cli.JMap{
			"name": name,
			field:  names,
		})
	}
	sort.Sort(jmaps)
	for _, j := range jmaps {
		j.Print(jsonout)
	}
}
