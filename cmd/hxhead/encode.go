package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newEncodeCmd(a *app) *cobra.Command {
	var sealed bool

	cmd := &cobra.Command{
		Use:   "encode <manifest>",
		Short: "Pack a manifest into a signed or sealed token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.readManifest(cmd, args[0])
			if err != nil {
				return err
			}
			// Catch mistakes now rather than when the token is rendered.
			if _, err := m.Build(); err != nil {
				return err
			}

			enc, err := a.encoder()
			if err != nil {
				return err
			}
			token, err := enc.Encode(m, sealed)
			if err != nil {
				return err
			}
			a.log.Debug("encoded manifest",
				zap.Int("elements", len(m.Elements)),
				zap.Bool("sealed", sealed),
				zap.Int("bytes", len(token)))

			_, err = fmt.Fprintln(a.out, token)
			return err
		},
	}

	cmd.Flags().BoolVar(&sealed, "sealed", false, "encrypt instead of sign")
	return cmd
}
