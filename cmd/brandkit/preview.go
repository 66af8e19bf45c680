package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/brandkit/internal/fontloader"
	"github.com/alexisbeaulieu97/brandkit/internal/preview"
)

type previewOptions struct {
	BrandPath  string
	Static     bool
	FetchFonts bool
}

var (
	termIsTerminal = func(fd int) bool {
		return term.IsTerminal(fd)
	}
	previewProgramRunner = func(model tea.Model) error {
		_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
		return err
	}
)

func newPreviewCmd(root *rootFlags) *cobra.Command {
	opts := previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Browse a brand's compiled themes in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(root, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return runPreview(cmd, app, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.BrandPath, "config", "c", "", "Path to the brand definition (defaults to the built-in brand)")
	cmd.Flags().BoolVar(&opts.Static, "static", false, "Print the themes once instead of opening the browser")
	cmd.Flags().BoolVar(&opts.FetchFonts, "fetch-fonts", false, "Download the brand's fonts while browsing")

	return cmd
}

func runPreview(cmd *cobra.Command, app *appContext, opts previewOptions) error {
	bundle, err := compileBrand(app, opts.BrandPath, "native")
	if err != nil {
		return err
	}

	if opts.Static || !termIsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprint(cmd.OutOrStdout(), preview.Render(bundle))
		return nil
	}

	var waiter preview.FontWaiter
	if opts.FetchFonts {
		loader := newNativeLoader(app, fontloader.DiskAssets{
			Dir:    app.settings.Fonts.Dir,
			Client: app.client,
			Logger: app.logger,
		})
		defer loader.Close()
		loader.Load(bundle.FontConfig)
		waiter = loader
	}

	if err := previewProgramRunner(preview.NewModel(bundle, waiter)); err != nil {
		return newCommandError("run preview", bundle.Name, err, "Retry with --static to print the themes without the browser.")
	}
	return nil
}
