package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Rorical/RoriGen/internal/core"
	"github.com/Rorical/RoriGen/internal/models"
)

var (
	generateInline string
	generateOutDir string
	generateSave   bool
	generateCopy   bool
)

var generateCmd = &cobra.Command{
	Use:   "generate [template] [input-file]",
	Short: "Generate code from JSON without the interactive UI",
	Long: `Generate code from a JSON document using the given template.

The input is read from input-file, from --input, or from stdin when
input-file is "-". An input-file and --input cannot be combined. The
result is printed unless --save or --out is given.

Examples:
  rorigen generate go-struct schema.json
  rorigen generate ts-interface -i '{"name": "string", "age": 30}'
  cat schema.json | rorigen generate go-struct - --save`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateInline, "input", "i", "", "JSON input as string")
	generateCmd.Flags().StringVarP(&generateOutDir, "out", "o", "", "Save the result into this directory (implies --save)")
	generateCmd.Flags().BoolVar(&generateSave, "save", false, "Save the result as generated-<template>.<ext>")
	generateCmd.Flags().BoolVar(&generateCopy, "copy", false, "Copy the result to the clipboard")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	template := args[0]

	input, err := readGenerateInput(cmd.InOrStdin(), args[1:])
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	client, logger := newClient(cfg)

	outDir := cfg.DownloadDir
	if generateOutDir != "" {
		outDir = generateOutDir
	}

	ctx, cancel := commandContext(cmd)
	defer cancel()

	state := core.NewFormState()
	controller := core.NewController(state, client,
		core.WithLogger(logger),
		core.WithSaver(core.DirSaver{Dir: outDir}),
		core.WithExtensions(cfg.Extensions),
	)

	if err := controller.LoadCatalog(ctx); err != nil {
		return fmt.Errorf("%s: %w", core.CatalogErrorMessage, err)
	}

	generators := state.Snapshot().Generators
	if !hasTemplate(generators, template) {
		return fmt.Errorf("template '%s' not found. Available templates: %v", template, templateNames(generators))
	}

	state.SetTemplate(template)
	state.SetInput(input)

	if err := controller.Generate(ctx); err != nil {
		var genErr *core.GenerationError
		if errors.As(err, &genErr) {
			return errors.New(genErr.Message)
		}
		if errors.Is(err, core.ErrInvalidForm) {
			return errors.New(core.ValidationErrorMessage)
		}
		return err
	}

	if generateCopy {
		if err := controller.CopyResult(); err != nil {
			// Copy problems never fail the command
			logger.Warn().Err(err).Msg("clipboard unavailable")
		} else {
			fmt.Fprintln(cmd.ErrOrStderr(), "Copied to clipboard")
		}
	}

	if generateSave || generateOutDir != "" {
		path, err := controller.DownloadResult()
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Saved %s\n", path)
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), state.GeneratedCode())
	return nil
}

func readGenerateInput(stdin io.Reader, args []string) (string, error) {
	if generateInline != "" {
		if len(args) > 0 {
			return "", errors.New("use either an input file or --input, not both")
		}
		return generateInline, nil
	}
	if len(args) == 0 {
		return "", fmt.Errorf("either input file or --input flag is required")
	}

	if args[0] == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("failed to read input file: %w", err)
	}
	return string(data), nil
}

func hasTemplate(generators []models.Generator, name string) bool {
	for _, gen := range generators {
		if gen.Name == name {
			return true
		}
	}
	return false
}

func templateNames(generators []models.Generator) []string {
	names := make([]string, len(generators))
	for i, gen := range generators {
		names[i] = gen.Name
	}
	return names
}
