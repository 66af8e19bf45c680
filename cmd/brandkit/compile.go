package main

import (
	"encoding/json"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/brandkit/internal/compiler"
)

type compileOptions struct {
	BrandPath  string
	OutputPath string
	Platform   string
}

var compileCmdRunner = runCompile

func newCompileCmd(root *rootFlags) *cobra.Command {
	opts := compileOptions{}

	cmd := &cobra.Command{
		Use:   "compile",
		Short: "Compile a brand definition into a JSON bundle",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(root, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return compileCmdRunner(cmd, app, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.BrandPath, "config", "c", "", "Path to the brand definition (defaults to the built-in brand)")
	cmd.Flags().StringVarP(&opts.OutputPath, "output", "o", "", "Write the bundle to this file instead of stdout")
	cmd.Flags().StringVar(&opts.Platform, "platform", "web", "Target platform: web or native")

	return cmd
}

func runCompile(cmd *cobra.Command, app *appContext, opts compileOptions) error {
	bundle, err := compileBrand(app, opts.BrandPath, opts.Platform)
	if err != nil {
		return err
	}

	var out io.Writer = cmd.OutOrStdout()
	if opts.OutputPath != "" {
		file, err := os.Create(opts.OutputPath)
		if err != nil {
			return newCommandError("write bundle", opts.OutputPath, err, "Check that the output directory exists and is writable.")
		}
		defer file.Close()
		out = file
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(bundle); err != nil {
		return newCommandError("write bundle", opts.OutputPath, err, "Check available disk space and permissions.")
	}

	app.logger.WithFields(map[string]any{"brand": bundle.Name, "themes": bundle.Themes.Len()}).Debug("bundle written")
	return nil
}

func compileBrand(app *appContext, brandPath, platform string) (*compiler.Bundle, error) {
	def, err := loadBrand(brandPath)
	if err != nil {
		return nil, err
	}

	target, err := parsePlatform(platform)
	if err != nil {
		return nil, newCommandError("compile brand", brandPath, err, "Pass --platform web or --platform native.")
	}

	bundle, err := compiler.Compile(def,
		compiler.WithPlatform(target),
		compiler.WithLogger(app.logger),
		compiler.WithServiceURL(app.settings.Fonts.ServiceURL),
	)
	if err != nil {
		return nil, newCommandError("compile brand", def.Name, err, "Check palette lengths and accent names in the brand definition.")
	}
	return bundle, nil
}
