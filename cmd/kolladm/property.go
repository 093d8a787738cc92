package main

import (
	"github.com/kolladm/kolladm"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kolladm/kolladm/internal/cli"
)

func propertyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "property",
		Short: "manage deployment properties (globals.yml)",
	}

	cmdList := &cobra.Command{
		Use:   "list",
		Short: "list properties",
		Run:   propertyList,
	}

	cmdSet := &cobra.Command{
		Use:   "set <name> <value>",
		Short: "set a property",
		Args:  cobra.ExactArgs(2),
		Run:   propertySet,
	}

	cmdClear := &cobra.Command{
		Use:   "clear <name>",
		Short: "clear a property",
		Args:  cobra.ExactArgs(1),
		Run:   propertyClear,
	}

	cmd.AddCommand(cmdList, cmdSet, cmdClear)
	return cmd
}

func properties() *kolladm.AnsibleProperties {
	props, err := kolladm.LoadProperties(config().GlobalsPath())
	if err != nil {
		log.WithField("error", err).Fatal("unable to load properties")
	}
	return props
}

func propertyList(cmd *cobra.Command, args []string) {
	props := properties()
	for _, name := range props.Names() {
		j := cli.JMap{"name": name, "value": props.Get(name)}
		j.Print(jsonout)
	}
}

func propertySet(cmd *cobra.Command, args []string) {
	cli.AssertName(args[0])
	props := properties()
	props.Set(args[0], args[1])
	if err := props.Save(); err != nil {
		fatal(err)
	}
}

func propertyClear(cmd *cobra.Command, args []string) {
	props := properties()
	props.Clear(args[0])
	if err := props.Save(); err != nil {
		fatal(err)
	}
}
