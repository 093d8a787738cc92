package main

import (
	"os"

	"github.com/kolladm/kolladm"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	logLevel = "warning"
	jsonout  = false
)

// config loads the environment configuration or dies
func config() *kolladm.Config {
	cfg, err := kolladm.LoadConfig()
	if err != nil {
		log.WithFields(log.Fields{
			"error": err,
			"func":  "kolladm.LoadConfig",
		}).Fatal("unable to load configuration")
	}
	return cfg
}

// load returns the store and the persisted inventory or dies
func load() (*kolladm.Store, *kolladm.Inventory) {
	store := kolladm.NewStore(config())
	inv, err := store.Load()
	if err != nil {
		log.WithFields(log.Fields{
			"error": err,
			"path":  store.Path,
		}).Fatal("unable to load inventory")
	}
	return store, inv
}

// save persists the inventory or dies
func save(store *kolladm.Store, inv *kolladm.Inventory) {
	if err := store.Save(inv); err != nil {
		log.WithFields(log.Fields{
			"error": err,
			"path":  store.Path,
		}).Fatal("unable to save inventory")
	}
}

func fatal(err error) {
	log.WithField("error", err).Fatal("command failed")
}

func main() {
	root := &cobra.Command{
		Use:   "kolladm",
		Short: "kolladm manages the openstack deployment topology",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level, err := log.ParseLevel(logLevel)
			if err != nil {
				log.WithField("level", logLevel).Fatal("invalid log level")
			}
			log.SetLevel(level)
		},
	}
	root.PersistentFlags().StringVarP(&logLevel, "log-level", "l", logLevel, "log level: debug/info/warning/error/fatal")
	root.PersistentFlags().BoolVarP(&jsonout, "json", "j", jsonout, "print full json descriptions in listings")

	root.AddCommand(
		hostCommand(),
		groupCommand(),
		serviceCommand(),
		propertyCommand(),
		passwordCommand(),
		deployCommand(),
		destroyCommand(),
		setdeployCommand(),
		dumpCommand(),
	)
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
