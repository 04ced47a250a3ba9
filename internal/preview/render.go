package preview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderOptions controls terminal rendering of a Document
type RenderOptions struct {
	Width        int
	CodeTheme    string
	SelectedLink int // highlighted link, -1 for none
}

// Render draws the document as styled terminal text
func Render(doc Document, opts RenderOptions) string {
	width := opts.Width
	if width < 10 {
		width = 10
	}

	var out []string
	for i, b := range doc.Blocks {
		if i > 0 && !(b.Kind == BlockListItem && doc.Blocks[i-1].Kind == BlockListItem) {
			out = append(out, quotePrefix(b.Quote))
		}
		out = append(out, renderBlock(b, width, opts))
	}

	return strings.Join(out, "\n")
}

func renderBlock(b Block, width int, opts RenderOptions) string {
	lead := 2 * b.Indent
	prefix := ""
	if b.Marker != "" {
		lead = 2 * (b.Indent - 1)
		prefix = markerStyle.Render(b.Marker) + " "
	}
	inner := width - max(lead, 0) - lipgloss.Width(prefix) - 2*b.Quote
	if inner < 4 {
		inner = 4
	}

	var body string
	switch b.Kind {
	case BlockHeading:
		style := headingStyle
		switch b.Level {
		case 1:
			style = h1Style
		case 2:
			style = h2Style
		}
		body = style.Width(inner).Render(renderSpans(b.Spans, opts.SelectedLink))

	case BlockCode:
		code := strings.TrimRight(b.Code, "\n")
		highlighted := strings.TrimRight(HighlightCode(code+"\n", b.Lang, opts.CodeTheme), "\n")
		if b.Lang != "" {
			highlighted = codeLangStyle.Render(b.Lang) + "\n" + highlighted
		}
		body = codeBoxStyle.Render(highlighted)

	case BlockRule:
		body = ruleStyle.Render(strings.Repeat("─", inner))

	case BlockHTML:
		body = htmlStyle.Width(inner).Render(b.Code)

	default:
		body = lipgloss.NewStyle().Width(inner).Render(renderSpans(b.Spans, opts.SelectedLink))
	}

	if prefix != "" {
		body = lipgloss.JoinHorizontal(lipgloss.Top, prefix, body)
	}
	if lead > 0 {
		body = lipgloss.NewStyle().PaddingLeft(lead).Render(body)
	}

	if b.Quote > 0 {
		bar := quotePrefix(b.Quote)
		lines := strings.Split(body, "\n")
		for i, line := range lines {
			lines[i] = bar + line
		}
		body = strings.Join(lines, "\n")
	}

	return body
}

func quotePrefix(depth int) string {
	return strings.Repeat(quoteBar, depth)
}

func renderSpans(spans []Span, selected int) string {
	var b strings.Builder
	for _, span := range spans {
		b.WriteString(spanStyle(span, selected).Render(span.Text))
	}
	return b.String()
}

func spanStyle(span Span, selected int) lipgloss.Style {
	style := lipgloss.NewStyle()
	switch {
	case span.Link >= 0 && span.Link == selected:
		style = activeLink
	case span.Style&StyleImage != 0:
		style = imageStyle
	case span.Link >= 0:
		style = linkStyle
	case span.Style&StyleCode != 0:
		style = codeSpanStyle
	}
	if span.Style&StyleStrong != 0 {
		style = style.Bold(true)
	}
	if span.Style&StyleEmphasis != 0 {
		style = style.Italic(true)
	}
	if span.Style&StyleStrike != 0 {
		style = style.Strikethrough(true)
	}
	return style
}
