// Package svgdom stores an SVG (XML) document as an arena of nodes.
//
// Nodes are addressed by their NodeID, an index in the arena, and only
// reference their children: there is no back pointer to the parent.
// A node is created detached and becomes part of the document once
// appended to an element reachable from the root.
package svgdom

type NodeID int32

// NoNode is returned when looking up a missing node.
const NoNode NodeID = -1

// Kind is the type of a node
type Kind uint8

const (
	ElementNode Kind = iota
	TextNode
	CommentNode
)

// Attr is an attribute, whose name is written with its
// prefix (like xlink:href).
type Attr struct {
	Name, Value string
}

type node struct {
	kind     Kind
	data     string // tag name, text or comment content
	attrs    []Attr
	children []NodeID
}

// Document is an XML tree. The zero value is not usable: see NewDocument.
type Document struct {
	nodes []node
	root  NodeID

	encoding encodingInfo
}

// NewDocument returns an empty document, without root.
func NewDocument() *Document {
	return &Document{root: NoNode}
}

func (d *Document) newNode(n node) NodeID {
	d.nodes = append(d.nodes, n)
	return NodeID(len(d.nodes) - 1)
}

// CreateElement adds a detached element to the arena.
func (d *Document) CreateElement(tag string, attrs ...Attr) NodeID {
	return d.newNode(node{kind: ElementNode, data: tag, attrs: append([]Attr(nil), attrs...)})
}

// CreateText adds a detached text node to the arena.
func (d *Document) CreateText(text string) NodeID {
	return d.newNode(node{kind: TextNode, data: text})
}

func (d *Document) createComment(text string) NodeID {
	return d.newNode(node{kind: CommentNode, data: text})
}

// Len returns the number of nodes in the arena, including detached ones.
func (d *Document) Len() int { return len(d.nodes) }

// Root returns the root element, or NoNode for an empty document.
func (d *Document) Root() NodeID { return d.root }

// SetRoot makes `id` the document element.
func (d *Document) SetRoot(id NodeID) { d.root = id }

func (d *Document) Kind(id NodeID) Kind { return d.nodes[id].kind }

// Tag returns the qualified name of an element.
func (d *Document) Tag(id NodeID) string {
	if d.nodes[id].kind != ElementNode {
		return ""
	}
	return d.nodes[id].data
}

// Text returns the content of a text or comment node.
func (d *Document) Text(id NodeID) string {
	if d.nodes[id].kind == ElementNode {
		return ""
	}
	return d.nodes[id].data
}

// TextContent returns the concatenation of the text nodes
// below `id`, in document order.
func (d *Document) TextContent(id NodeID) string {
	var out []byte
	d.Walk(id, func(n NodeID) bool {
		if d.nodes[n].kind == TextNode {
			out = append(out, d.nodes[n].data...)
		}
		return true
	})
	return string(out)
}

// Children returns the child nodes of `id`. The slice must not be modified.
func (d *Document) Children(id NodeID) []NodeID { return d.nodes[id].children }

// AppendChild adds `child` as last child of `parent`.
func (d *Document) AppendChild(parent, child NodeID) {
	d.nodes[parent].children = append(d.nodes[parent].children, child)
}

// InsertChild adds `child` at position `index` among the children
// of `parent`. An out of range index appends.
func (d *Document) InsertChild(parent NodeID, index int, child NodeID) {
	children := d.nodes[parent].children
	if index < 0 || index >= len(children) {
		d.AppendChild(parent, child)
		return
	}
	children = append(children, NoNode)
	copy(children[index+1:], children[index:])
	children[index] = child
	d.nodes[parent].children = children
}

// Attrs returns the attributes of an element, in insertion order.
// The slice must not be modified.
func (d *Document) Attrs(id NodeID) []Attr { return d.nodes[id].attrs }

// Attr returns the value of the attribute `name`.
func (d *Document) Attr(id NodeID, name string) (string, bool) {
	for _, a := range d.nodes[id].attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// SetAttr adds or replaces the attribute `name`. New attributes are
// written after the existing ones.
func (d *Document) SetAttr(id NodeID, name, value string) {
	n := &d.nodes[id]
	for i, a := range n.attrs {
		if a.Name == name {
			n.attrs[i].Value = value
			return
		}
	}
	n.attrs = append(n.attrs, Attr{Name: name, Value: value})
}

// Walk visits `from` and its descendants, depth first in document order.
// Returning false from fn skips the children of the node.
func (d *Document) Walk(from NodeID, fn func(NodeID) bool) {
	if from == NoNode {
		return
	}
	if !fn(from) {
		return
	}
	for _, c := range d.nodes[from].children {
		d.Walk(c, fn)
	}
}

func (d *Document) find(pred func(NodeID) bool) NodeID {
	found := NoNode
	d.Walk(d.root, func(n NodeID) bool {
		if found != NoNode {
			return false
		}
		if d.nodes[n].kind == ElementNode && pred(n) {
			found = n
			return false
		}
		return true
	})
	return found
}

// FindByID returns the first element reachable from the root
// whose id attribute is `id`.
func (d *Document) FindByID(id string) (NodeID, bool) {
	n := d.find(func(n NodeID) bool {
		v, ok := d.Attr(n, "id")
		return ok && v == id
	})
	return n, n != NoNode
}

// FindByTag returns the first element reachable from the root
// with the given tag.
func (d *Document) FindByTag(tag string) (NodeID, bool) {
	n := d.find(func(n NodeID) bool { return d.nodes[n].data == tag })
	return n, n != NoNode
}

// FindAll returns the elements below `from` (included) with the given tag.
func (d *Document) FindAll(from NodeID, tag string) []NodeID {
	var out []NodeID
	d.Walk(from, func(n NodeID) bool {
		if d.nodes[n].kind == ElementNode && d.nodes[n].data == tag {
			out = append(out, n)
		}
		return true
	})
	return out
}

// Import copies the subtree of `src` rooted at `id` into `d`, and
// returns the (detached) copy.
func (d *Document) Import(src *Document, id NodeID) NodeID {
	n := src.nodes[id]
	out := d.newNode(node{kind: n.kind, data: n.data, attrs: append([]Attr(nil), n.attrs...)})
	if len(n.children) == 0 {
		return out
	}
	children := make([]NodeID, len(n.children))
	for i, c := range n.children {
		children[i] = d.Import(src, c)
	}
	d.nodes[out].children = children
	return out
}
