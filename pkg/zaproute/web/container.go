package web

import "fmt"

type blockKind int

const (
	blockMarkdown blockKind = iota
	blockInfo
	blockWarning
	blockError
	blockWidget
	blockColumns
)

type block struct {
	kind    blockKind
	text    string
	widget  *widget
	columns []*Container
	weights []int
}

// Container is a region of the page an app draws into: the main area, the
// sidebar or a column. Blocks appear in the order they were drawn.
//
// Container satisfies router.Surface.
type Container struct {
	name    string
	blocks  []block
	cycle   *Cycle
	columns int // Columns handed out so far, for unique names
}

func newContainer(name string, cycle *Cycle) *Container {
	return &Container{name: name, cycle: cycle}
}

// String names the container; the router builds widget keys from it.
func (c *Container) String() string {
	return c.name
}

// Markdown draws a block of markdown text.
func (c *Container) Markdown(text string) {
	c.blocks = append(c.blocks, block{kind: blockMarkdown, text: text})
}

// Info draws an informational notice.
func (c *Container) Info(text string) {
	c.blocks = append(c.blocks, block{kind: blockInfo, text: text})
}

// Warning draws a warning notice.
func (c *Container) Warning(text string) {
	c.blocks = append(c.blocks, block{kind: blockWarning, text: text})
}

// Error draws an error notice.
func (c *Container) Error(text string) {
	c.blocks = append(c.blocks, block{kind: blockError, text: text})
}

// Button draws a button. onClick runs when it is pressed, before the next cycle.
func (c *Container) Button(label, key string, onClick func()) {
	c.add(&widget{kind: WidgetButton, label: label, key: key, onClick: onClick})
}

// Select draws a drop-down. An empty selected shows the first option.
func (c *Container) Select(label, key string, options []string, selected string, onChange func(string)) {
	c.add(&widget{kind: WidgetSelect, label: label, key: key, options: options, value: choice(options, selected), onChange: onChange})
}

// Radio draws exclusive choice buttons. An empty selected checks the first option.
func (c *Container) Radio(label, key string, options []string, selected string, onChange func(string)) {
	c.add(&widget{kind: WidgetRadio, label: label, key: key, options: options, value: choice(options, selected), onChange: onChange})
}

// TextInput draws a text field and returns its current text. Once the user
// has edited the field its text is kept in the session store and wins over
// value.
func (c *Container) TextInput(label, key, value string, onChange func(string)) string {
	if stored, ok := c.cycle.Session.GetString(widgetStateKey(key)); ok {
		value = stored
	}
	c.add(&widget{kind: WidgetText, label: label, key: key, value: value, onChange: onChange})
	return value
}

// Columns splits the container into side by side columns sized by weights.
func (c *Container) Columns(weights ...int) []*Container {
	cols := make([]*Container, len(weights))
	for i := range weights {
		cols[i] = newContainer(fmt.Sprintf("%s/col%d", c.name, c.columns), c.cycle)
		c.columns++
	}
	c.blocks = append(c.blocks, block{kind: blockColumns, columns: cols, weights: weights})
	return cols
}

func (c *Container) add(w *widget) {
	if !c.cycle.register(w) {
		c.Error(c.cycle.Printer.DuplicateWidget(w.key))
		return
	}
	c.blocks = append(c.blocks, block{kind: blockWidget, widget: w})
}

func choice(options []string, selected string) string {
	if selected == "" && len(options) > 0 {
		return options[0]
	}
	return selected
}
