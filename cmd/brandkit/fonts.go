package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/net/html"

	"github.com/alexisbeaulieu97/brandkit/internal/fontloader"
	"github.com/alexisbeaulieu97/brandkit/internal/fonts"
)

type fontsOptions struct {
	BrandPath  string
	Dir        string
	HTMLPath   string
	OutputPath string
}

func newFontsCmd(root *rootFlags) *cobra.Command {
	opts := &fontsOptions{}

	cmd := &cobra.Command{
		Use:   "fonts",
		Short: "Inspect and load a brand's web fonts",
	}
	cmd.PersistentFlags().StringVarP(&opts.BrandPath, "config", "c", "", "Path to the brand definition (defaults to the built-in brand)")

	cmd.AddCommand(newFontsURLCmd(root, opts))
	cmd.AddCommand(newFontsFetchCmd(root, opts))
	cmd.AddCommand(newFontsInjectCmd(root, opts))

	return cmd
}

func newFontsURLCmd(root *rootFlags, opts *fontsOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "url",
		Short: "Print the stylesheet URL for the brand's fonts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(root, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			def, err := loadBrand(opts.BrandPath)
			if err != nil {
				return err
			}

			url := fonts.BuildStylesheetURLWithBase(app.settings.Fonts.ServiceURL, def.Fonts)
			if url == "" {
				fmt.Fprintln(cmd.ErrOrStderr(), "brand uses system fonts only; no stylesheet needed")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), url)
			return nil
		},
	}
}

func newFontsFetchCmd(root *rootFlags, opts *fontsOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Download every font face the brand needs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(root, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return runFontsFetch(cmd, app, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Dir, "dir", "", "Directory to save font files into (defaults to fonts.dir)")
	return cmd
}

func runFontsFetch(cmd *cobra.Command, app *appContext, opts *fontsOptions) error {
	def, err := loadBrand(opts.BrandPath)
	if err != nil {
		return err
	}

	dir := opts.Dir
	if dir == "" {
		dir = app.settings.Fonts.Dir
	}

	saved := 0
	assets := fontloader.AssetLoaderFunc(func(ctx context.Context, sources map[string]string) error {
		disk := fontloader.DiskAssets{Dir: dir, Client: app.client, Logger: app.logger}
		if err := disk.LoadFonts(ctx, sources); err != nil {
			return err
		}
		saved = len(sources)
		return nil
	})

	loader := newNativeLoader(app, assets)
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	state := loader.Preload(ctx, def.Fonts)
	if state.Err != nil {
		return newCommandError("fetch fonts", def.Name, state.Err, "Check network access to the font service or raise fonts.timeout.")
	}
	if saved == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no font faces to download")
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "saved %d font faces to %s\n", saved, dir)
	return nil
}

func newFontsInjectCmd(root *rootFlags, opts *fontsOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inject",
		Short: "Link the brand's font stylesheet into an HTML file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(root, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return runFontsInject(cmd, app, opts)
		},
	}
	cmd.Flags().StringVar(&opts.HTMLPath, "html", "", "HTML document to update")
	cmd.Flags().StringVarP(&opts.OutputPath, "output", "o", "", "Write the result here instead of overwriting --html")
	cmd.MarkFlagRequired("html") //nolint:errcheck
	return cmd
}

func runFontsInject(cmd *cobra.Command, app *appContext, opts *fontsOptions) error {
	def, err := loadBrand(opts.BrandPath)
	if err != nil {
		return err
	}

	src, err := os.ReadFile(opts.HTMLPath)
	if err != nil {
		return newCommandError("read document", opts.HTMLPath, err, "Pass an existing HTML file with --html.")
	}
	doc, err := html.Parse(bytes.NewReader(src))
	if err != nil {
		return newCommandError("parse document", opts.HTMLPath, err, "Check that the file is valid HTML.")
	}

	web := fontloader.NewWeb(doc).WithServiceURL(app.settings.Fonts.ServiceURL)
	web.Load(def.Fonts)

	var out bytes.Buffer
	if err := web.Render(&out); err != nil {
		return newCommandError("render document", opts.HTMLPath, err, "Report this as a bug with the input document attached.")
	}

	dest := opts.OutputPath
	if dest == "" {
		dest = opts.HTMLPath
	}
	if err := os.WriteFile(dest, out.Bytes(), 0o644); err != nil {
		return newCommandError("write document", dest, err, "Check that the destination is writable.")
	}

	app.logger.WithFields(map[string]any{"path": filepath.Clean(dest)}).Debug("document updated")
	return nil
}

func newNativeLoader(app *appContext, assets fontloader.AssetLoader) *fontloader.Native {
	return fontloader.NewNative(fontloader.NativeOptions{
		Client:     app.client,
		Assets:     assets,
		Logger:     app.logger,
		Timeout:    app.settings.Fonts.Timeout,
		UserAgent:  app.settings.Fonts.UserAgent,
		ServiceURL: app.settings.Fonts.ServiceURL,
	})
}
