// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mutebessim/cdpgen/internal/config"
	"github.com/mutebessim/cdpgen/internal/fetch"
	"github.com/mutebessim/cdpgen/internal/output"
	"github.com/mutebessim/cdpgen/internal/prompts"
	"github.com/mutebessim/cdpgen/internal/protocol"
	"github.com/mutebessim/cdpgen/internal/pygen"
)

type generateOptions struct {
	configPath     string
	protocols      []string
	ref            string
	pkg            string
	outputDir      string
	loglevel       string
	nonInteractive bool
}

func registerGenerateCmd(parent *cobra.Command) {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate [domains...]",
		Short: "Generate Python modules for the selected protocol domains",
		Long: `Generate one Python module per required protocol domain, plus the shared
util module and the package __init__. Domains referenced by the selected
roots are included automatically; the mandatory set is always included.`,
		Example: `  # Interactive domain selection
  cdpgen generate --ref v1.3.0

  # Generate specific domains and everything they reference
  cdpgen generate Page Network --ref v1.3.0

  # Custom package path and output directory
  cdpgen generate Page --package myapp.cdp.devtools --output src/myapp/cdp/devtools --ref v1.3.0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Path to cdpgen.yaml (default: ./cdpgen.yaml if present)")
	cmd.Flags().StringSliceVar(&opts.protocols, "protocol", []string{"browser_protocol.json", "js_protocol.json"}, "Protocol descriptor file(s)")
	cmd.Flags().StringVar(&opts.ref, "ref", "", "Protocol version label embedded in generated headers")
	cmd.Flags().StringVarP(&opts.pkg, "package", "p", "", "Python package path for generated imports")
	cmd.Flags().StringVarP(&opts.outputDir, "output", "o", "", "Output directory for generated modules")
	cmd.Flags().StringVarP(&opts.loglevel, "loglevel", "l", "info", "Log level (debug, info, warn, error)")
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Run without prompts")

	parent.AddCommand(cmd)
}

func runGenerate(cmd *cobra.Command, args []string, opts *generateOptions) error {
	logger, err := initLogger(opts.loglevel)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}
	if opts.pkg == "" {
		opts.pkg = cfg.Package
	}
	if opts.outputDir == "" {
		opts.outputDir = cfg.Output
	}
	if opts.ref == "" {
		opts.ref = cfg.Ref
	}

	source := fetch.NewFileSource(os.DirFS("."), opts.protocols, opts.ref)
	ref, err := source.Ref(cmd.Context())
	if err != nil {
		return err
	}
	logger.Info().Str("ref", ref).Msg("protocol version")

	docs, err := source.Protocols(cmd.Context(), ref)
	if err != nil {
		return err
	}

	logger.Info().Int("documents", len(docs)).Msg("parsing protocol descriptors")
	domains, err := protocol.ParseAll(docs...)
	if err != nil {
		return err
	}

	roots := args
	if len(roots) == 0 {
		roots = cfg.Domains
	}
	if len(roots) == 0 && !opts.nonInteractive {
		available := make([]string, 0, len(domains))
		for _, d := range domains {
			available = append(available, d.Name)
		}
		sort.Strings(available)
		if err := prompts.RunGenerateForm(&roots, available); err != nil {
			return err
		}
	}

	required, err := protocol.RequiredDomains(roots, cfg.Mandatory, domains)
	if err != nil {
		return err
	}
	if err := protocol.VerifyReferences(required); err != nil {
		return err
	}

	names := make([]string, 0, len(required))
	for _, d := range required {
		names = append(names, d.Name)
		logger.Debug().Str("domain", d.Name).Str("module", pygen.ModuleName(d.Name)).Msg("required")
	}
	logger.Info().Int("domains", len(required)).Msg("computed dependency closure")

	arts, err := pygen.Assemble(required, pygen.Options{Package: opts.pkg, Ref: ref})
	if err != nil {
		return err
	}

	if err := output.NewWriter(opts.outputDir).Write(arts); err != nil {
		return err
	}
	for _, name := range arts.Names() {
		logger.Debug().Str("file", name).Msg("wrote artifact")
	}

	prompts.PrintResult([]prompts.ResultField{
		{Label: "Version", Value: ref},
		{Label: "Domains", Value: strings.Join(names, ", ")},
		{Label: "Package", Value: opts.pkg},
		{Label: "Output", Value: opts.outputDir},
	}, fmt.Sprintf("Generated %d file(s)", arts.Len()))

	return nil
}

// loadConfig reads the config file if one was named or the default exists;
// otherwise it falls back to the built-in defaults.
func loadConfig(path string) (*config.Config, error) {
	explicit := path != ""
	if !explicit {
		path = config.DefaultFile
	}

	cfg, err := config.Load(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return config.Default(), nil
		}
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}
