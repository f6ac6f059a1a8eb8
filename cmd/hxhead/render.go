package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pthm/hxhead"
	"github.com/pthm/hxhead/lib/encoding"
	"github.com/pthm/hxhead/lib/manifest"
)

func newRenderCmd(a *app) *cobra.Command {
	var (
		skipTitle   bool
		contentKeys bool
		token       string
	)

	cmd := &cobra.Command{
		Use:   "render [manifest]",
		Short: "Render a head manifest to HTML",
		Long: `Render reads a YAML manifest ("-" for stdin) and prints the compiled head.

With --token, the manifest is unpacked from a token produced by
"hxhead encode" instead; the same --key must be supplied.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				m   *manifest.Manifest
				err error
			)
			switch {
			case token != "":
				m, err = a.decodeToken(token)
			case len(args) == 1:
				m, err = a.readManifest(cmd, args[0])
			default:
				return errors.New("render: a manifest path or --token is required")
			}
			if err != nil {
				return err
			}

			opts := []hxhead.Option{hxhead.WithLogger(a.log)}
			if contentKeys {
				opts = append(opts, hxhead.WithContentKeys())
			}
			head, err := m.Head(opts...)
			if err != nil {
				return err
			}
			a.log.Debug("rendering head", zap.Int("elements", head.Len()))

			var copts []hxhead.CompileOption
			if skipTitle {
				copts = append(copts, hxhead.SkipTitle())
			}
			_, err = fmt.Fprintln(a.out, head.Compile(copts...))
			return err
		},
	}

	cmd.Flags().BoolVar(&skipTitle, "skip-title", false, "leave out the <title> element")
	cmd.Flags().BoolVar(&contentKeys, "content-keys", false, "deduplicate id-less tags by content")
	cmd.Flags().StringVar(&token, "token", "", "render a packed manifest token")
	return cmd
}

func (a *app) readManifest(cmd *cobra.Command, path string) (*manifest.Manifest, error) {
	r, err := openInput(cmd, path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	a.log.Debug("reading manifest", zap.String("path", path))
	return manifest.Decode(r)
}

func (a *app) encoder() (*encoding.Encoder, error) {
	key := a.cfg.GetString("key")
	if key == "" {
		return nil, errors.New("a key is required (--key or HXHEAD_KEY)")
	}
	return encoding.NewEncoder([]byte(key))
}

func (a *app) decodeToken(token string) (*manifest.Manifest, error) {
	enc, err := a.encoder()
	if err != nil {
		return nil, err
	}
	return enc.Decode(token)
}
