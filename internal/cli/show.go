package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"blogcreator/internal/post"
	"blogcreator/internal/preview"
)

func newShowCommand(opts *globalOptions) *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:   "show <post.json>",
		Short: "Print a post with its body rendered as the editor previews it.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}

			p, err := post.Read(resolvePath(args[0]))
			if err != nil {
				return fmt.Errorf("read post: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, p.Title)
			fmt.Fprintln(out, strings.Repeat("=", max(len([]rune(p.Title)), 3)))
			fmt.Fprintf(out, "Published: %s\n", p.Timestamp.Format("2006-01-02 15:04:05 MST"))
			if tags := post.JoinTags(p.Tags); tags != "" {
				fmt.Fprintf(out, "Tags: %s\n", tags)
			}
			if p.Summary != "" {
				fmt.Fprintf(out, "Summary: %s\n", p.Summary)
			}
			if p.ImageURL != "" {
				fmt.Fprintf(out, "Image: %s\n", p.ImageURL)
			}
			fmt.Fprintln(out)

			fmt.Fprintln(out, preview.Render(preview.Parse(p.Body), preview.RenderOptions{
				Width:        width,
				CodeTheme:    cfg.CodeTheme,
				SelectedLink: -1,
			}))
			return nil
		},
	}

	cmd.Flags().IntVarP(&width, "width", "w", 80, "Wrap width for the rendered body")

	return cmd
}
