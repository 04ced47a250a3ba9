package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"blogcreator/internal/post"
)

func newExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <post.json> [out.md]",
		Short: "Convert a post to markdown with YAML frontmatter. Use - as out to print it.",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			src := resolvePath(args[0])
			p, err := post.Read(src)
			if err != nil {
				return fmt.Errorf("read post: %w", err)
			}

			dst := markdownPath(src)
			if len(args) == 2 {
				dst = args[1]
			}

			if dst == "-" {
				data, err := post.MarshalMarkdown(p)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}

			dst = resolvePath(dst)
			if err := post.ExportMarkdown(p, dst); err != nil {
				return fmt.Errorf("export: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %s\n", dst)
			return nil
		},
	}
	return cmd
}
