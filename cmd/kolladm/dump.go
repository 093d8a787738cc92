package main

import (
	"archive/tar"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/kolladm/kolladm"
	"github.com/kolladm/kolladm/internal/cli"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func dumpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "dump configuration data for debugging",
		Long: `Collects the kolla configuration, the kolladm state, the kolla logs and
the output of the list commands into a tar file that can be handed to
support to help with debugging problems. Password values are never
included.`,
		Run: dump,
	}
}

func dump(cmd *cobra.Command, args []string) {
	cfg := config()
	_, inv := load()

	f, err := os.CreateTemp("", "kolladm_dump_*.tgz")
	if err != nil {
		fatal(err)
	}
	defer func() { _ = f.Close() }()

	gz := gzip.NewWriter(f)
	tw := tar.NewWriter(gz)

	// passwords.yml is deliberately left out of the etc capture
	paths := map[string]string{
		filepath.Join(cfg.KollaHome, "ansible"): "kolla/share/ansible",
		filepath.Join(cfg.KollaEtc, "config"):   "kolla/etc/config",
		cfg.GlobalsPath():                       "kolla/etc/globals.yml",
		cfg.Etc:                                 "kolla/etc/kolladm",
		cfg.LogDir:                              "kolla/logs",
	}
	for src, arcname := range paths {
		if err := addPath(tw, src, arcname); err != nil {
			log.WithFields(log.Fields{
				"error": err,
				"path":  src,
			}).Warning("skipping unreadable dump path")
		}
	}

	if err := addListings(tw, inv); err != nil {
		fatal(err)
	}

	if err := tw.Close(); err != nil {
		fatal(err)
	}
	if err := gz.Close(); err != nil {
		fatal(err)
	}
	log.WithField("path", f.Name()).Info("dump successful")
	fmt.Println(f.Name())
}

// addPath archives a file or a directory tree under arcname
func addPath(tw *tar.Writer, src, arcname string) error {
	return filepath.Walk(src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}

		hdr, err := tar.FileInfoHeader(info, "")
		if err != nil {
			return err
		}
		hdr.Name = filepath.Join(arcname, rel)
		if err := tw.WriteHeader(hdr); err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		data, err := os.Open(path)
		if err != nil {
			return err
		}
		defer func() { _ = data.Close() }()
		_, err = io.Copy(tw, data)
		return err
	})
}

// addListings captures the list command views and the full ansible json
func addListings(tw *tar.Writer, inv *kolladm.Inventory) error {
	var out strings.Builder

	views := []struct {
		title string
		view  map[string][]string
	}{
		{"host list", inv.HostToGroups()},
		{"group listhosts", inv.GroupToHosts()},
		{"group listservices", inv.GroupToServices()},
		{"service list", inv.ServiceToSubServices()},
	}
	for _, v := range views {
		fmt.Fprintf(&out, "\n\n$ kolladm %s\n", v.title)
		jmaps := make(cli.JMapSlice, 0, len(v.view))
		for name, names := range v.view {
			jmaps = append(jmaps, cli.JMap{"name": name, "members": names})
		}
		sort.Sort(jmaps)
		for _, j := range jmaps {
			out.WriteString(j.String() + "\n")
		}
	}

	ansibleJSON, err := inv.AnsibleJSON(nil)
	if err != nil {
		return err
	}
	out.WriteString("\n\n$ inventory json\n")
	out.Write(ansibleJSON)
	out.WriteString("\n")

	data := []byte(out.String())
	hdr := &tar.Header{
		Name: "kolla/cmds_output",
		Mode: 0644,
		Size: int64(len(data)),
	}
	if err := tw.WriteHeader(hdr); err != nil {
		return err
	}
	_, err = tw.Write(data)
	return err
}
