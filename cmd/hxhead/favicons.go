package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pthm/hxhead/lib/generator"
)

func newFaviconsCmd(a *app) *cobra.Command {
	var (
		opts  generator.Options
		clean bool
	)

	cmd := &cobra.Command{
		Use:   "favicons <dir>",
		Short: "Generate favicon markup from a directory of icons",
		Long: `Favicons scans a directory for conventionally named icon files
(favicon-32x32.png, apple-touch-icon-180x180.png, mstile-310x310.png, ...)
and writes favicon_hxhead.go, favicon.html and favicon.yaml.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Dir = args[0]
			if opts.HrefPrefix == "" {
				opts.HrefPrefix = a.cfg.GetString("favicons.prefix")
			}
			opts.Logger = a.log
			g := generator.New(opts)

			if clean {
				return g.Clean()
			}
			fav, err := g.Generate()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(a.out, fav.HTML())
			return err
		},
	}

	cmd.Flags().StringVar(&opts.HrefPrefix, "prefix", "", "prefix joined to every icon href (default \"/\")")
	cmd.Flags().StringVarP(&opts.OutputDir, "out", "o", "", "output directory (default is the icon directory)")
	cmd.Flags().StringVar(&opts.Package, "package", "", "package name of the generated Go file")
	cmd.Flags().StringVar(&opts.VarName, "var", "", "variable name of the generated favicon (default \"Favicon\")")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "show what would be written without writing files")
	cmd.Flags().BoolVar(&clean, "clean", false, "remove generated files instead")
	return cmd
}
