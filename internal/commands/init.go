// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mutebessim/cdpgen/internal/config"
	"github.com/mutebessim/cdpgen/internal/prompts"
)

type initOptions struct {
	pkg       string
	outputDir string
	ref       string
}

func registerInitCmd(parent *cobra.Command) {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a cdpgen project",
		Long:  `Initialize a cdpgen project with a cdpgen.yaml configuration file.`,
		Example: `  cdpgen init
  cdpgen init --package myapp.cdp.devtools --output src/myapp/cdp/devtools`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.pkg, "package", "p", "", "Python package path for generated imports")
	cmd.Flags().StringVarP(&opts.outputDir, "output", "o", "", "Output directory for generated modules")
	cmd.Flags().StringVar(&opts.ref, "ref", "", "Pin the protocol version label")

	parent.AddCommand(cmd)
}

func runInit(opts *initOptions) error {
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}

	path := filepath.Join(cwd, config.DefaultFile)
	if _, err := os.Stat(path); err == nil {
		return errors.New("cdpgen.yaml already exists; project already initialized")
	}

	cfg := config.Default()
	if opts.pkg != "" {
		cfg.Package = opts.pkg
	}
	if opts.outputDir != "" {
		cfg.Output = opts.outputDir
	}
	cfg.Ref = opts.ref

	if err := cfg.Save(path); err != nil {
		return err
	}

	prompts.PrintResult([]prompts.ResultField{
		{Label: "Config", Value: path},
		{Label: "Package", Value: cfg.Package},
		{Label: "Output", Value: cfg.Output},
	}, "Project initialized")

	return nil
}
