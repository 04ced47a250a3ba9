package cli

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"blogcreator/internal/post"
)

func newImportCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "import <post.md> [out.json]",
		Short: "Convert a markdown file, with optional YAML frontmatter, into a post.",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			src := resolvePath(args[0])
			p, err := post.ImportMarkdown(src, time.Now())
			if err != nil {
				return fmt.Errorf("import: %w", err)
			}

			dst := strings.TrimSuffix(src, filepath.Ext(src)) + ".json"
			if len(args) == 2 {
				dst = resolvePath(post.WithJSONExt(args[1]))
			}
			if !force && fileExists(dst) {
				return fmt.Errorf("%s already exists (use --force to overwrite)", dst)
			}

			if err := post.Write(dst, p); err != nil {
				return fmt.Errorf("write post: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %s\n", dst)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing post file")

	return cmd
}
