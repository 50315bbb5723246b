package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/conn-castle/masctl/internal/manifest"
	"github.com/conn-castle/masctl/internal/messages"
)

func newInitCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   messages.InitUse,
		Short: messages.InitShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := flags.manifestPath
			if path == "" {
				path = manifest.FileName
			}

			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf(messages.InitManifestExistsFmt, path)
			}

			if err := os.WriteFile(path, []byte(manifest.Starter), 0o644); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), messages.InitManifestWrittenFmt, path)
			return nil
		},
	}
}
