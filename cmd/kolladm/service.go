package main

import (
	"sort"

	"github.com/kolladm/kolladm/internal/cli"
	"github.com/spf13/cobra"
)

func serviceCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "service",
		Short: "manage service placement",
	}

	cmdList := &cobra.Command{
		Use:   "list",
		Short: "list services and their sub-services",
		Run:   serviceList,
	}

	cmdListGroups := &cobra.Command{
		Use:   "listgroups",
		Short: "list services and the groups they are placed on",
		Run:   serviceListGroups,
	}

	cmdAddGroup := &cobra.Command{
		Use:   "addgroup <servicename> <groupname>",
		Short: "place a service or sub-service on a group",
		Args:  cobra.ExactArgs(2),
		Run:   serviceAddGroup,
	}

	cmdRemoveGroup := &cobra.Command{
		Use:   "removegroup <servicename> <groupname>",
		Short: "remove a service or sub-service from a group",
		Args:  cobra.ExactArgs(2),
		Run:   serviceRemoveGroup,
	}

	cmd.AddCommand(cmdList, cmdListGroups, cmdAddGroup, cmdRemoveGroup)
	return cmd
}

func serviceList(cmd *cobra.Command, args []string) {
	_, inv := load()
	printNameLists(inv.ServiceToSubServices(), "subServices")
}

func serviceListGroups(cmd *cobra.Command, args []string) {
	_, inv := load()
	svcGroups := inv.ServiceToGroups()
	jmaps := make(cli.JMapSlice, 0, len(svcGroups))
	for name, assoc := range svcGroups {
		j := cli.JMap{"name": name}
		if assoc.Inherited {
			j["inherited"] = true
		} else {
			j["groups"] = assoc.GroupNames
		}
		jmaps = append(jmaps, j)
	}
	sort.Sort(jmaps)
	for _, j := range jmaps {
		j.Print(jsonout)
	}
}

func serviceAddGroup(cmd *cobra.Command, args []string) {
	store, inv := load()
	if err := inv.AddGroupToService(args[1], args[0]); err != nil {
		fatal(err)
	}
	save(store, inv)
}

func serviceRemoveGroup(cmd *cobra.Command, args []string) {
	store, inv := load()
	if err := inv.RemoveGroupFromService(args[1], args[0]); err != nil {
		fatal(err)
	}
	save(store, inv)
}
