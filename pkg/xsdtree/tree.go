package xsdtree

import "fmt"

// Tags used by generated schemas
const (
	TagSchema         = "schema"
	TagComplexType    = "complexType"
	TagComplexContent = "complexContent"
	TagExtension      = "extension"
	TagSequence       = "sequence"
	TagElement        = "element"
	TagImport         = "import"
)

// NodeID addresses a node inside its Document
type NodeID int

// NoParent is the parent of the schema root
const NoParent NodeID = -1

// Attr is a single attribute
type Attr struct {
	Key   string
	Value string
}

// A builds an attribute
func A(key, value string) Attr {
	return Attr{Key: key, Value: value}
}

// Node is a schema element
type Node struct {
	Tag      string
	Attrs    []Attr
	Children []NodeID
	Parent   NodeID
}

// Document owns every node of one schema
type Document struct {
	nodes []Node
}

// NewDocument creates a document holding an empty schema root
func NewDocument() *Document {
	return &Document{
		nodes: []Node{{Tag: TagSchema, Parent: NoParent}},
	}
}

// Root returns the schema root
func (d *Document) Root() NodeID {
	return 0
}

// Len returns the number of nodes, root included
func (d *Document) Len() int {
	return len(d.nodes)
}

// Node returns a copy of the node with the given id
func (d *Document) Node(id NodeID) Node {
	n := d.mustGet(id)
	return Node{
		Tag:      n.Tag,
		Attrs:    append([]Attr(nil), n.Attrs...),
		Children: append([]NodeID(nil), n.Children...),
		Parent:   n.Parent,
	}
}

// Tag returns the tag of a node
func (d *Document) Tag(id NodeID) string {
	return d.mustGet(id).Tag
}

// Children returns the children of a node in insertion order
func (d *Document) Children(id NodeID) []NodeID {
	return append([]NodeID(nil), d.mustGet(id).Children...)
}

// Parent returns the parent of a node, NoParent for the root
func (d *Document) Parent(id NodeID) NodeID {
	return d.mustGet(id).Parent
}

// AppendChild creates a node under parent and returns its id
func (d *Document) AppendChild(parent NodeID, tag string, attrs ...Attr) NodeID {
	d.mustGet(parent)

	id := NodeID(len(d.nodes))
	d.nodes = append(d.nodes, Node{
		Tag:    tag,
		Attrs:  append([]Attr(nil), attrs...),
		Parent: parent,
	})
	d.nodes[parent].Children = append(d.nodes[parent].Children, id)

	return id
}

// SetAttr sets an attribute. An existing key keeps its position.
func (d *Document) SetAttr(id NodeID, key, value string) {
	n := d.mustGet(id)
	for i := range n.Attrs {
		if n.Attrs[i].Key == key {
			n.Attrs[i].Value = value
			return
		}
	}
	n.Attrs = append(n.Attrs, Attr{Key: key, Value: value})
}

// Attr returns the value of an attribute
func (d *Document) Attr(id NodeID, key string) (string, bool) {
	for _, attr := range d.mustGet(id).Attrs {
		if attr.Key == key {
			return attr.Value, true
		}
	}
	return "", false
}

// Walk visits id and its descendants depth-first, parents before children.
// depth is 0 for id itself.
func (d *Document) Walk(id NodeID, fn func(id NodeID, depth int) error) error {
	return d.walk(id, 0, fn)
}

func (d *Document) walk(id NodeID, depth int, fn func(NodeID, int) error) error {
	if err := fn(id, depth); err != nil {
		return err
	}
	for _, child := range d.mustGet(id).Children {
		if err := d.walk(child, depth+1, fn); err != nil {
			return err
		}
	}
	return nil
}

func (d *Document) mustGet(id NodeID) *Node {
	if id < 0 || int(id) >= len(d.nodes) {
		panic(fmt.Sprintf("xsdtree: node %d out of range", id))
	}
	return &d.nodes[id]
}
