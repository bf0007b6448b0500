package treebuilder

import "github.com/corvidtree/htmltree/dom"

// TreeSink is the output contract the tree builder drives while processing
// tokens. The tree builder creates nodes through it and makes most insertions
// through its AppendChild/InsertBefore; the adoption agency's reparenting
// steps and insertFosterNode (adoption.go) call dom.Node's AppendChild/
// RemoveChild/InsertBefore directly, and builder.go creates template content
// fragments with dom.NewDocumentFragment. New and NewFragment always install
// the default dom-backed sink; no other sink can be supplied to them.
//
// Every Create* method returns a node owned by the caller until it is
// attached with AppendChild/InsertBefore. RefNode/UnrefNode are here for
// parity with ref-counted sinks; the default sink is garbage collected and
// treats both as no-ops.
type TreeSink interface {
	CreateElement(name, namespace string, attrs []dom.Attribute) *dom.Element
	CreateText(data string) *dom.Text
	CreateComment(data string) *dom.Comment
	CreateDoctype(name, publicID, systemID string) *dom.DocumentType
	CloneNode(el *dom.Element) *dom.Element

	AppendChild(parent, child dom.Node)
	InsertBefore(parent, newChild, refChild dom.Node)
	RemoveChild(parent, child dom.Node)
	ReparentChildren(from, to dom.Node)

	GetParent(n dom.Node) dom.Node
	HasChildren(n dom.Node) bool

	// FormAssociate records that el is owned by the nearest active form
	// element, per the form-association rules for button/input/select/
	// textarea/output/fieldset/object. FormOwner retrieves it.
	FormAssociate(el, form *dom.Element)
	FormOwner(el *dom.Element) *dom.Element

	// AddAttributes adds attrs to el, skipping any name el already has.
	AddAttributes(el *dom.Element, attrs []dom.Attribute)

	SetQuirksMode(mode dom.QuirksMode)

	RefNode(n dom.Node)
	UnrefNode(n dom.Node)
}

// domSink is the default TreeSink: it builds a *dom.Document directly.
type domSink struct {
	doc         *dom.Document
	formOwners  map[*dom.Element]*dom.Element
}

func newDomSink(doc *dom.Document) *domSink {
	return &domSink{doc: doc, formOwners: make(map[*dom.Element]*dom.Element)}
}

func (s *domSink) CreateElement(name, namespace string, attrs []dom.Attribute) *dom.Element {
	var el *dom.Element
	if namespace == "" || namespace == dom.NamespaceHTML {
		el = dom.NewElement(name)
	} else {
		el = dom.NewElementNS(name, namespace)
	}
	for _, a := range attrs {
		if a.Namespace != "" {
			el.Attributes.SetNS(a.Namespace, a.Name, a.Value)
			continue
		}
		if el.Namespace != dom.NamespaceHTML {
			el.Attributes.SetNS("", a.Name, a.Value)
			continue
		}
		el.SetAttr(a.Name, a.Value)
	}
	if el.TagName == "template" && el.Namespace == dom.NamespaceHTML && el.TemplateContent == nil {
		el.TemplateContent = dom.NewDocumentFragment()
	}
	return el
}

func (s *domSink) CreateText(data string) *dom.Text {
	return dom.NewText(data)
}

func (s *domSink) CreateComment(data string) *dom.Comment {
	return dom.NewComment(data)
}

func (s *domSink) CreateDoctype(name, publicID, systemID string) *dom.DocumentType {
	return dom.NewDocumentType(name, publicID, systemID)
}

func (s *domSink) CloneNode(el *dom.Element) *dom.Element {
	clone := el.Clone(false).(*dom.Element)
	if owner, ok := s.formOwners[el]; ok {
		s.formOwners[clone] = owner
	}
	return clone
}

func (s *domSink) AppendChild(parent, child dom.Node) {
	if txt, ok := child.(*dom.Text); ok {
		children := parent.Children()
		if len(children) > 0 {
			if last, ok := children[len(children)-1].(*dom.Text); ok {
				last.Data += txt.Data
				return
			}
		}
	}
	parent.AppendChild(child)
}

func (s *domSink) InsertBefore(parent, newChild, refChild dom.Node) {
	if refChild == nil {
		s.AppendChild(parent, newChild)
		return
	}
	if txt, ok := newChild.(*dom.Text); ok {
		if mergeTarget := siblingTextBefore(parent, refChild); mergeTarget != nil {
			mergeTarget.Data += txt.Data
			return
		}
		if beforeText, ok := refChild.(*dom.Text); ok {
			beforeText.Data = txt.Data + beforeText.Data
			return
		}
	}
	parent.InsertBefore(newChild, refChild)
}

func (s *domSink) RemoveChild(parent, child dom.Node) {
	parent.RemoveChild(child)
}

func (s *domSink) ReparentChildren(from, to dom.Node) {
	for {
		children := from.Children()
		if len(children) == 0 {
			return
		}
		child := children[0]
		from.RemoveChild(child)
		to.AppendChild(child)
	}
}

func (s *domSink) GetParent(n dom.Node) dom.Node {
	return n.Parent()
}

func (s *domSink) HasChildren(n dom.Node) bool {
	return n.HasChildNodes()
}

func (s *domSink) FormAssociate(el, form *dom.Element) {
	if el == nil || form == nil {
		return
	}
	s.formOwners[el] = form
}

func (s *domSink) FormOwner(el *dom.Element) *dom.Element {
	return s.formOwners[el]
}

func (s *domSink) AddAttributes(el *dom.Element, attrs []dom.Attribute) {
	if el == nil {
		return
	}
	for _, a := range attrs {
		if a.Namespace != "" {
			if !el.Attributes.HasNS(a.Namespace, a.Name) {
				el.Attributes.SetNS(a.Namespace, a.Name, a.Value)
			}
			continue
		}
		if !el.HasAttr(a.Name) {
			el.SetAttr(a.Name, a.Value)
		}
	}
}

func (s *domSink) SetQuirksMode(mode dom.QuirksMode) {
	if s.doc != nil {
		s.doc.QuirksMode = mode
	}
}

func (s *domSink) RefNode(dom.Node)   {}
func (s *domSink) UnrefNode(dom.Node) {}

// CountingSink wraps a TreeSink and tallies Create/Ref/Unref calls so tests
// can assert the tree builder never leaks a node it creates but never
// attaches, mirroring the ref/unref balance discipline of a ref-counted
// tree sink even though the default sink doesn't need one.
type CountingSink struct {
	TreeSink

	Created int
	Refs    int
	Unrefs  int
}

// NewCountingSink wraps sink for call counting.
func NewCountingSink(sink TreeSink) *CountingSink {
	return &CountingSink{TreeSink: sink}
}

func (s *CountingSink) CreateElement(name, namespace string, attrs []dom.Attribute) *dom.Element {
	s.Created++
	return s.TreeSink.CreateElement(name, namespace, attrs)
}

func (s *CountingSink) CreateText(data string) *dom.Text {
	s.Created++
	return s.TreeSink.CreateText(data)
}

func (s *CountingSink) CreateComment(data string) *dom.Comment {
	s.Created++
	return s.TreeSink.CreateComment(data)
}

func (s *CountingSink) CreateDoctype(name, publicID, systemID string) *dom.DocumentType {
	s.Created++
	return s.TreeSink.CreateDoctype(name, publicID, systemID)
}

func (s *CountingSink) RefNode(n dom.Node) {
	s.Refs++
	s.TreeSink.RefNode(n)
}

func (s *CountingSink) UnrefNode(n dom.Node) {
	s.Unrefs++
	s.TreeSink.UnrefNode(n)
}
