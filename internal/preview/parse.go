package preview

import (
	"strconv"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

var markdown = goldmark.New(goldmark.WithExtensions(extension.Strikethrough, extension.Linkify))

// Parse parses markdown source into a Document. The result depends only on src.
func Parse(src string) Document {
	source := []byte(src)
	root := markdown.Parser().Parse(text.NewReader(source))

	p := &parser{source: source}
	p.walkBlocks(root, &blockContext{})

	return p.doc
}

type blockContext struct {
	indent int
	quote  int
	marker string // consumed by the first block emitted inside a list item
}

type parser struct {
	source []byte
	doc    Document
}

func (p *parser) walkBlocks(parent ast.Node, ctx *blockContext) {
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			p.emit(Block{Kind: BlockHeading, Level: node.Level, Spans: p.inline(node)}, ctx)

		case *ast.Paragraph, *ast.TextBlock:
			p.emit(Block{Kind: BlockParagraph, Spans: p.inline(node)}, ctx)

		case *ast.FencedCodeBlock:
			p.emit(Block{Kind: BlockCode, Lang: string(node.Language(p.source)), Code: p.lines(node)}, ctx)

		case *ast.CodeBlock:
			p.emit(Block{Kind: BlockCode, Code: p.lines(node)}, ctx)

		case *ast.HTMLBlock:
			raw := p.lines(node)
			if node.HasClosure() {
				raw += string(node.ClosureLine.Value(p.source))
			}
			p.emit(Block{Kind: BlockHTML, Code: strings.TrimRight(raw, "\n")}, ctx)

		case *ast.ThematicBreak:
			p.emit(Block{Kind: BlockRule}, ctx)

		case *ast.Blockquote:
			inner := *ctx
			inner.quote++
			p.walkBlocks(node, &inner)
			ctx.marker = inner.marker

		case *ast.List:
			for i, item := 0, node.FirstChild(); item != nil; i, item = i+1, item.NextSibling() {
				inner := blockContext{indent: ctx.indent + 1, quote: ctx.quote, marker: "•"}
				if node.IsOrdered() {
					inner.marker = strconv.Itoa(node.Start+i) + "."
				}
				p.walkBlocks(item, &inner)
				if inner.marker != "" {
					p.emit(Block{Kind: BlockParagraph}, &inner)
				}
			}

		default:
			p.walkBlocks(node, ctx)
		}
	}
}

func (p *parser) emit(b Block, ctx *blockContext) {
	b.Indent = ctx.indent
	b.Quote = ctx.quote
	if ctx.marker != "" {
		if b.Kind == BlockParagraph {
			b.Kind = BlockListItem
		}
		b.Marker = ctx.marker
		ctx.marker = ""
	}
	p.doc.Blocks = append(p.doc.Blocks, b)
}

func (p *parser) lines(n ast.Node) string {
	var b strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		segment := lines.At(i)
		b.Write(segment.Value(p.source))
	}
	return b.String()
}

func (p *parser) inline(n ast.Node) []Span {
	var spans []Span
	p.walkInline(n, 0, -1, &spans)
	return spans
}

func (p *parser) walkInline(parent ast.Node, style SpanStyle, link int, spans *[]Span) {
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Text:
			s := string(node.Segment.Value(p.source))
			if node.HardLineBreak() {
				s += "\n"
			} else if node.SoftLineBreak() {
				s += " "
			}
			appendSpan(spans, Span{Text: s, Style: style, Link: link})

		case *ast.String:
			appendSpan(spans, Span{Text: string(node.Value), Style: style, Link: link})

		case *ast.CodeSpan:
			p.walkInline(node, style|StyleCode, link, spans)

		case *ast.Emphasis:
			next := style | StyleEmphasis
			if node.Level >= 2 {
				next = style | StyleStrong
			}
			p.walkInline(node, next, link, spans)

		case *east.Strikethrough:
			p.walkInline(node, style|StyleStrike, link, spans)

		case *ast.Link:
			p.walkInline(node, style, p.addLink(string(node.Destination)), spans)

		case *ast.AutoLink:
			url := string(node.URL(p.source))
			appendSpan(spans, Span{Text: string(node.Label(p.source)), Style: style, Link: p.addLink(url)})

		case *ast.Image:
			alt := strings.TrimSpace(string(node.Text(p.source)))
			if alt == "" {
				alt = "image"
			}
			appendSpan(spans, Span{Text: "[" + alt + "]", Style: style | StyleImage, Link: p.addLink(string(node.Destination))})

		case *ast.RawHTML:
			var raw strings.Builder
			for i := 0; i < node.Segments.Len(); i++ {
				segment := node.Segments.At(i)
				raw.Write(segment.Value(p.source))
			}
			appendSpan(spans, Span{Text: raw.String(), Style: style | StyleCode, Link: link})

		default:
			p.walkInline(node, style, link, spans)
		}
	}
}

func (p *parser) addLink(url string) int {
	p.doc.Links = append(p.doc.Links, url)
	return len(p.doc.Links) - 1
}

// appendSpan merges s into the previous span when their decoration matches.
func appendSpan(spans *[]Span, s Span) {
	if s.Text == "" {
		return
	}
	if n := len(*spans); n > 0 {
		last := &(*spans)[n-1]
		if last.Style == s.Style && last.Link == s.Link {
			last.Text += s.Text
			return
		}
	}
	*spans = append(*spans, s)
}
