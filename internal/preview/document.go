// Package preview turns markdown source into a terminal preview.
package preview

// BlockKind identifies a top-level preview element
type BlockKind int

const (
	BlockParagraph BlockKind = iota
	BlockHeading
	BlockCode
	BlockListItem
	BlockRule
	BlockHTML
)

// SpanStyle is a bit set of inline decorations
type SpanStyle uint8

const (
	StyleEmphasis SpanStyle = 1 << iota
	StyleStrong
	StyleStrike
	StyleCode
	StyleImage
)

// Span is a run of inline text sharing one style
type Span struct {
	Text  string
	Style SpanStyle
	Link  int // index into Document.Links, -1 when not a link
}

// Block is one flattened markdown block
type Block struct {
	Kind   BlockKind
	Level  int    // heading level
	Indent int    // list nesting depth
	Quote  int    // blockquote nesting depth
	Marker string // list marker, "•" or "3."
	Lang   string // fenced code language
	Code   string // raw code or html
	Spans  []Span
}

// Document is the parsed form of a markdown body
type Document struct {
	Blocks []Block
	Links  []string // link destinations in document order
}

// PlainText returns the text of a block's spans without decoration.
func (b Block) PlainText() string {
	var s string
	for _, span := range b.Spans {
		s += span.Text
	}
	return s
}
