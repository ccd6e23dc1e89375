package xsdtree

// Cursor tracks the node new declarations attach to
type Cursor struct {
	doc     *Document
	current NodeID
}

// NewCursor creates a cursor positioned on the document root
func NewCursor(doc *Document) *Cursor {
	return &Cursor{doc: doc, current: doc.Root()}
}

// Current returns the node under the cursor
func (c *Cursor) Current() NodeID {
	return c.current
}

// Tag returns the tag of the node under the cursor
func (c *Cursor) Tag() string {
	return c.doc.Tag(c.current)
}

// Append adds a child to the current node without moving
func (c *Cursor) Append(tag string, attrs ...Attr) NodeID {
	return c.doc.AppendChild(c.current, tag, attrs...)
}

// Descend adds a child to the current node and moves onto it
func (c *Cursor) Descend(tag string, attrs ...Attr) NodeID {
	c.current = c.Append(tag, attrs...)
	return c.current
}

// OpenTopLevel adds a child to the schema root and moves onto it
func (c *Cursor) OpenTopLevel(tag string, attrs ...Attr) NodeID {
	c.current = c.doc.AppendChild(c.doc.Root(), tag, attrs...)
	return c.current
}
