package editor

// ActionKind identifies a text editing operation on the body buffer
type ActionKind int

const (
	ActionInsert ActionKind = iota
	ActionBackspace
	ActionDelete
	ActionMoveLeft
	ActionMoveRight
	ActionMoveHome
	ActionMoveEnd
	ActionReplace
)

// Action is a single edit applied to a Content buffer
type Action struct {
	Kind ActionKind
	Text string // for ActionInsert and ActionReplace
}

func Insert(text string) Action  { return Action{Kind: ActionInsert, Text: text} }
func Replace(text string) Action { return Action{Kind: ActionReplace, Text: text} }

// Content is the body buffer: runes plus a cursor position in runes.
type Content struct {
	text   []rune
	cursor int
}

// NewContent returns a buffer holding text with the cursor at the end
func NewContent(text string) Content {
	r := []rune(text)
	return Content{text: r, cursor: len(r)}
}

// Text returns the full buffer contents
func (c Content) Text() string {
	return string(c.text)
}

// Cursor returns the cursor offset in runes
func (c Content) Cursor() int {
	return c.cursor
}

// Perform applies an action to the buffer
func (c *Content) Perform(a Action) {
	switch a.Kind {
	case ActionInsert:
		ins := []rune(a.Text)
		c.text = splice(c.text, c.cursor, c.cursor, ins)
		c.cursor += len(ins)
	case ActionBackspace:
		if c.cursor > 0 {
			c.text = splice(c.text, c.cursor-1, c.cursor, nil)
			c.cursor--
		}
	case ActionDelete:
		if c.cursor < len(c.text) {
			c.text = splice(c.text, c.cursor, c.cursor+1, nil)
		}
	case ActionMoveLeft:
		if c.cursor > 0 {
			c.cursor--
		}
	case ActionMoveRight:
		if c.cursor < len(c.text) {
			c.cursor++
		}
	case ActionMoveHome:
		c.cursor = 0
	case ActionMoveEnd:
		c.cursor = len(c.text)
	case ActionReplace:
		*c = NewContent(a.Text)
	}
}

// Len returns the buffer length in runes
func (c Content) Len() int {
	return len(c.text)
}

// splice returns a new slice with text[from:to] replaced by ins. Copies of a
// Content value never observe each other's edits.
func splice(text []rune, from, to int, ins []rune) []rune {
	out := make([]rune, 0, len(text)-(to-from)+len(ins))
	out = append(out, text[:from]...)
	out = append(out, ins...)
	return append(out, text[to:]...)
}
