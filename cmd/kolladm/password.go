package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/kolladm/kolladm"
	"github.com/kolladm/kolladm/internal/cli"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/ssh/terminal"
)

var passwordInsecure = ""

func passwordCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "password",
		Short: "manage deployment passwords",
	}

	cmdSet := &cobra.Command{
		Use:   "set <name>",
		Short: "set a password, prompting for the value",
		Args:  cobra.ExactArgs(1),
		Run:   passwordSet,
	}
	cmdSet.Flags().StringVarP(&passwordInsecure, "insecure", "", "", "password value on the command line (insecure)")

	cmdClear := &cobra.Command{
		Use:   "clear <name>",
		Short: "clear a password",
		Args:  cobra.ExactArgs(1),
		Run:   passwordClear,
	}

	cmdList := &cobra.Command{
		Use:   "list",
		Short: "list password names",
		Run:   passwordList,
	}

	cmdGenerate := &cobra.Command{
		Use:   "generate <name>...",
		Short: "set password(s) to generated random values",
		Args:  cobra.MinimumNArgs(1),
		Run:   passwordGenerate,
	}

	cmd.AddCommand(cmdSet, cmdClear, cmdList, cmdGenerate)
	return cmd
}

func passwords() *kolladm.PasswordStore {
	store, err := kolladm.LoadPasswords(config().PasswordsPath())
	if err != nil {
		log.WithField("error", err).Fatal("unable to load passwords")
	}
	return store
}

func passwordSet(cmd *cobra.Command, args []string) {
	cli.AssertName(args[0])
	value := passwordInsecure
	if value == "" {
		fmt.Print("Password: ")
		raw, err := terminal.ReadPassword(int(os.Stdin.Fd()))
		fmt.Println()
		if err != nil {
			fatal(err)
		}
		value = strings.TrimSpace(string(raw))
	}

	store := passwords()
	store.Set(args[0], value)
	if err := store.Save(); err != nil {
		fatal(err)
	}
}

func passwordClear(cmd *cobra.Command, args []string) {
	store := passwords()
	store.Clear(args[0])
	if err := store.Save(); err != nil {
		fatal(err)
	}
}

func passwordList(cmd *cobra.Command, args []string) {
	store := passwords()
	for _, name := range store.Names() {
		j := cli.JMap{"name": name, "value": "-"}
		j.Print(jsonout)
	}
}

func passwordGenerate(cmd *cobra.Command, args []string) {
	store := passwords()
	for _, name := range args {
		cli.AssertName(name)
		store.Set(name, kolladm.GeneratePassword())
	}
	if err := store.Save(); err != nil {
		fatal(err)
	}
}
