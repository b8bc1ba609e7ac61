package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/icy-tower/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in YAML configuration.

Save it, edit what you want to change and pass it with --config, or place it at
~/.icytower/configs/icy.yaml to apply it to every run.

Examples:
  icytower config > my-icy.yaml
  icytower play --config my-icy.yaml`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	},
}
