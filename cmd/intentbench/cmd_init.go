package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/intentwire/intentbench/internal/models"
	"github.com/intentwire/intentbench/internal/wizard"
)

func newInitCommand() *cobra.Command {
	var interactive bool
	var force bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Scaffold a suite.yaml",
		Long: `Scaffold a suite.yaml in the given directory (default: current
directory).

By default the file contains the built-in query suite, ready to edit.
Use --interactive to run a guided form that selects categories, models,
and the endpoint.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return initCommandE(args, interactive, force)
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Run the guided suite wizard")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing suite.yaml")

	return cmd
}

func initCommandE(args []string, interactive, force bool) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	suitePath := filepath.Join(dir, "suite.yaml")
	if !force {
		if _, err := os.Stat(suitePath); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", suitePath)
		}
	}

	var spec *models.SuiteSpec
	if interactive {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return fmt.Errorf("--interactive requires a terminal")
		}
		answers, err := wizard.RunSuiteWizard("")
		if err != nil {
			return fmt.Errorf("wizard failed: %w", err)
		}
		spec, err = wizard.BuildSuite(answers)
		if err != nil {
			return err
		}
	} else {
		spec = models.DefaultSuite()
	}

	data, err := yaml.Marshal(spec)
	if err != nil {
		return fmt.Errorf("encoding suite: %w", err)
	}
	if err := os.WriteFile(suitePath, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", suitePath, err)
	}

	fmt.Printf("Created %s\n", suitePath)
	fmt.Println("Run the benchmark with: intentbench run --suite " + suitePath)
	return nil
}
