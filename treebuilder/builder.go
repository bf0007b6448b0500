package treebuilder

import (
	"github.com/corvidtree/htmltree/dom"
	"github.com/corvidtree/htmltree/internal/constants"
	"github.com/corvidtree/htmltree/tokenizer"
)

// TreeBuilder implements a (work-in-progress) HTML5 tree construction stage.
//
// This is a direct porting target of the Python reference implementation and is
// intended to be driven by the tokenizer token stream.
type TreeBuilder struct {
	document *dom.Document
	sink     TreeSink

	openElements []*dom.Element

	// openElementTypes caches the classified ElementType for each frame of
	// openElements, in lockstep, so scope/category queries never re-run
	// ClassifyElement's string lookup for a node already on the stack.
	openElementTypes []constants.ElementType

	// currentTableIndex caches the stack index of the innermost open <table>
	// element (-1 if none), kept current by pushOpenElement/popCurrent/
	// removeOpenElementAt/insertOpenElementAt so foster-parenting lookups
	// need not rescan the stack on every insertion.
	currentTableIndex int

	// formElement is the element pointed to by the stack of open elements'
	// nearest ancestor <form>, used for form association of the button/
	// input/select/textarea/output/fieldset/object family per §13.2.6.1.
	formElement *dom.Element

	mode         InsertionMode
	originalMode InsertionMode

	headElement *dom.Element

	activeFormatting []formattingEntry

	// Template insertion modes stack.
	templateModes []InsertionMode

	// Table parsing support.
	pendingTableText      []string
	tableTextOriginalMode *InsertionMode
	framesetOK            bool
	fosterParenting       bool

	// ignoreNextLineFeed is set after inserting a <pre>/<listing>/<textarea>
	// start tag; per WHATWG HTML §13.2.6.4.7, a single leading line feed in
	// the element's content is dropped.
	ignoreNextLineFeed bool

	fragmentContext *FragmentContext
	fragmentRoot    *dom.Element
	fragmentElement *dom.Element

	tokenizer *tokenizer.Tokenizer

	// forceHTMLMode is set by processForeignContent when it encounters a token
	// that should be reprocessed using normal HTML insertion mode rules rather
	// than foreign content rules. This prevents infinite loops when foreign
	// content contains tokens that trigger breakout to HTML mode.
	forceHTMLMode bool

	iframeSrcdoc bool
}

// New creates a new tree builder for full document parsing.
func New(tok *tokenizer.Tokenizer) *TreeBuilder {
	doc := dom.NewDocument()
	return &TreeBuilder{
		document:          doc,
		sink:              newDomSink(doc),
		mode:              Initial,
		originalMode:      Initial,
		openElements:      nil,
		currentTableIndex: -1,
		activeFormatting:  nil,
		templateModes:     nil,
		pendingTableText:  nil,
		framesetOK:        true,
		fragmentRoot:      nil,
		fragmentContext:   nil,
		tokenizer:         tok,
	}
}

// NewFragment creates a new tree builder for fragment parsing.
func NewFragment(tok *tokenizer.Tokenizer, ctx *FragmentContext) *TreeBuilder {
	doc := dom.NewDocument()
	tb := &TreeBuilder{
		document:          doc,
		sink:              newDomSink(doc),
		mode:              Initial,
		originalMode:      Initial,
		openElements:      nil,
		currentTableIndex: -1,
		activeFormatting:  nil,
		templateModes:     nil,
		pendingTableText:  nil,
		framesetOK:        false,
		fragmentContext:   ctx,
		tokenizer:         tok,
	}

	// Minimal fragment setup: create an <html> root and a context element.
	html := tb.sink.CreateElement("html", dom.NamespaceHTML, nil)
	tb.sink.AppendChild(tb.document, html)
	tb.pushOpenElement(html)
	tb.fragmentRoot = html

	if ctx != nil && ctx.TagName != "" {
		namespace := dom.NamespaceHTML
		switch ctx.Namespace {
		case "svg":
			namespace = dom.NamespaceSVG
		case "mathml":
			namespace = dom.NamespaceMathML
		}
		contextEl := tb.sink.CreateElement(ctx.TagName, namespace, nil)
		tb.sink.AppendChild(html, contextEl)
		tb.pushOpenElement(contextEl)
		tb.fragmentElement = contextEl

		// Set the initial insertion mode based on the context element, per HTML5 fragment parsing.
		tag := contextEl.TagName
		if ctx.Namespace != "" && ctx.Namespace != "html" {
			tb.mode = InBody
		} else {
			switch tag {
			case "html":
				tb.mode = BeforeHead
			case "tbody", "thead", "tfoot":
				tb.mode = InTableBody
			case "tr":
				tb.mode = InRow
			case "td", "th":
				tb.mode = InCell
			case "caption":
				tb.mode = InCaption
			case "colgroup":
				tb.mode = InColumnGroup
			case "table":
				tb.mode = InTable
			case "select":
				tb.mode = InSelect
			default:
				tb.mode = InBody
			}
		}
		tb.originalMode = tb.mode

		// Adjust tokenizer state based on the fragment context element, per HTML5 fragment parsing.
		// This is necessary because the fragment setup does not emit the context start tag token.
		if ctx.Namespace == "" || ctx.Namespace == "html" {
			switch tag {
			case "title", "textarea":
				tb.tokenizer.SetLastStartTag(tag)
				tb.tokenizer.SetState(tokenizer.RCDATAState)
			case "style", "xmp", "iframe", "noembed", "noframes":
				tb.tokenizer.SetLastStartTag(tag)
				tb.tokenizer.SetState(tokenizer.RAWTEXTState)
			case "script":
				tb.tokenizer.SetLastStartTag(tag)
				tb.tokenizer.SetState(tokenizer.ScriptDataState)
			case "plaintext":
				tb.tokenizer.SetLastStartTag(tag)
				tb.tokenizer.SetState(tokenizer.PLAINTEXTState)
			}
		}
	}

	return tb
}

// SetIframeSrcdoc toggles iframe srcdoc parsing behavior (affects quirks mode decisions).
func (tb *TreeBuilder) SetIframeSrcdoc(enabled bool) {
	tb.iframeSrcdoc = enabled
}

// Document returns the constructed document.
func (tb *TreeBuilder) Document() *dom.Document {
	return tb.document
}

// FragmentNodes returns the fragment's top-level element children.
func (tb *TreeBuilder) FragmentNodes() []*dom.Element {
	root := tb.fragmentElement
	if root == nil {
		root = tb.fragmentRoot
	}
	if root == nil {
		return nil
	}
	var out []*dom.Element
	for _, child := range root.Children() {
		if el, ok := child.(*dom.Element); ok {
			out = append(out, el)
		}
	}
	return out
}

// ProcessToken consumes a tokenizer token and updates the DOM tree.
func (tb *TreeBuilder) ProcessToken(tok tokenizer.Token) {
	// The full HTML5 algorithm is implemented incrementally; keep the current
	// behavior non-panicking and deterministic.
	for {
		// Check if we should use foreign content rules.
		// forceHTMLMode bypasses this check when reprocessing a token that
		// triggered breakout from foreign content.
		if !tb.forceHTMLMode && tb.shouldUseForeignContent(tok) {
			reprocess := tb.processForeignContent(tok)
			if !reprocess {
				return
			}
			continue
		}
		tb.forceHTMLMode = false
		var reprocess bool
		switch tb.mode {
		case Initial:
			reprocess = tb.processInitial(tok)
		case BeforeHTML:
			reprocess = tb.processBeforeHTML(tok)
		case BeforeHead:
			reprocess = tb.processBeforeHead(tok)
		case InHead:
			reprocess = tb.processInHead(tok)
		case InHeadNoscript:
			reprocess = tb.processInHeadNoscript(tok)
		case AfterHead:
			reprocess = tb.processAfterHead(tok)
		case Text:
			reprocess = tb.processText(tok)
		case InBody:
			reprocess = tb.processInBody(tok)
		case InTable:
			reprocess = tb.processInTable(tok)
		case InTableText:
			reprocess = tb.processInTableText(tok)
		case InCaption:
			reprocess = tb.processInCaption(tok)
		case InColumnGroup:
			reprocess = tb.processInColumnGroup(tok)
		case InTableBody:
			reprocess = tb.processInTableBody(tok)
		case InRow:
			reprocess = tb.processInRow(tok)
		case InCell:
			reprocess = tb.processInCell(tok)
		case InSelect:
			reprocess = tb.processInSelect(tok)
		case InSelectInTable:
			reprocess = tb.processInSelectInTable(tok)
		case InTemplate:
			reprocess = tb.processInTemplate(tok)
		case AfterBody:
			reprocess = tb.processAfterBody(tok)
		case InFrameset:
			reprocess = tb.processInFrameset(tok)
		case AfterFrameset:
			reprocess = tb.processAfterFrameset(tok)
		case AfterAfterBody:
			reprocess = tb.processAfterAfterBody(tok)
		case AfterAfterFrameset:
			reprocess = tb.processAfterAfterFrameset(tok)
		default:
			// Fallback: treat as InBody for now.
			reprocess = tb.processInBody(tok)
		}
		if !reprocess {
			return
		}
	}
}

func (tb *TreeBuilder) currentNode() dom.Node {
	if len(tb.openElements) == 0 {
		return tb.document
	}
	return tb.openElements[len(tb.openElements)-1]
}

func (tb *TreeBuilder) currentElement() *dom.Element {
	if len(tb.openElements) == 0 {
		return nil
	}
	return tb.openElements[len(tb.openElements)-1]
}

func (tb *TreeBuilder) insertComment(data string) {
	tb.insertNode(tb.sink.CreateComment(data), nil)
}

func (tb *TreeBuilder) insertText(data string) {
	if data == "" {
		return
	}
	parent, before := tb.appropriateInsertionLocation()
	tb.insertNode(tb.sink.CreateText(data), &insertionLocation{parent: parent, before: before})
}

func (tb *TreeBuilder) insertElement(name string, attrs []tokenizer.Attr) *dom.Element {
	return tb.insertElementNS(name, dom.NamespaceHTML, attrs)
}

func (tb *TreeBuilder) insertElementNS(name, namespace string, attrs []tokenizer.Attr) *dom.Element {
	el := tb.sink.CreateElement(name, namespace, convertAttrs(attrs))
	tb.insertNode(el, nil)
	tb.pushOpenElement(el)
	if el.TagName == "form" && el.Namespace == dom.NamespaceHTML {
		tb.formElement = el
	} else if tb.formElement != nil && constants.FormAssociatedElements[el.TagName] && !el.HasAttr("form") {
		tb.sink.FormAssociate(el, tb.formElement)
	}
	return el
}

// insertElementNoPush creates and inserts an element without pushing it onto
// the stack of open elements. Nothing in this package calls it; void elements
// are inserted with insertElement and then popped.
func (tb *TreeBuilder) insertElementNoPush(name string, attrs []tokenizer.Attr) *dom.Element {
	el := tb.sink.CreateElement(name, dom.NamespaceHTML, convertAttrs(attrs))
	tb.insertNode(el, nil)
	return el
}

func convertAttrs(attrs []tokenizer.Attr) []dom.Attribute {
	if len(attrs) == 0 {
		return nil
	}
	out := make([]dom.Attribute, len(attrs))
	for i, a := range attrs {
		out[i] = dom.Attribute{Namespace: a.Namespace, Name: a.Name, Value: a.Value}
	}
	return out
}

func (tb *TreeBuilder) addMissingAttributes(el *dom.Element, attrs []tokenizer.Attr) {
	if el == nil {
		return
	}
	if len(tb.templateModes) > 0 {
		return
	}
	tb.sink.AddAttributes(el, convertAttrs(attrs))
}

// pushOpenElement pushes el onto the stack of open elements and its
// classified ElementType onto the parallel type cache in the same motion,
// updating currentTableIndex when el is a table.
func (tb *TreeBuilder) pushOpenElement(el *dom.Element) {
	tb.openElements = append(tb.openElements, el)
	t := constants.ElementUnknown
	if el.Namespace == dom.NamespaceHTML {
		t = constants.ClassifyElement(el.TagName)
	}
	tb.openElementTypes = append(tb.openElementTypes, t)
	if t == constants.Table {
		tb.currentTableIndex = len(tb.openElements) - 1
	}
}

// openElementTypeAt returns the cached ElementType for stack frame i in O(1),
// rather than re-classifying the tag name on every scope query.
func (tb *TreeBuilder) openElementTypeAt(i int) constants.ElementType {
	if i < 0 || i >= len(tb.openElementTypes) {
		return constants.ElementUnknown
	}
	return tb.openElementTypes[i]
}

// truncateOpenElementsTo drops every stack frame at index n and above,
// invalidating the formatting-list entries of the popped nodes and
// recomputing currentTableIndex only if the cached table frame was among
// them.
func (tb *TreeBuilder) truncateOpenElementsTo(n int) {
	if n < 0 {
		n = 0
	}
	if n >= len(tb.openElements) {
		return
	}
	for i := n; i < len(tb.openElements); i++ {
		tb.invalidateFormattingStackIndex(tb.openElements[i])
	}
	tb.openElements = tb.openElements[:n]
	tb.openElementTypes = tb.openElementTypes[:n]
	if tb.currentTableIndex >= n {
		tb.recomputeCurrentTableIndex()
	}
}

func (tb *TreeBuilder) recomputeCurrentTableIndex() {
	for i := len(tb.openElementTypes) - 1; i >= 0; i-- {
		if tb.openElementTypes[i] == constants.Table {
			tb.currentTableIndex = i
			return
		}
	}
	tb.currentTableIndex = -1
}

func (tb *TreeBuilder) popCurrent() *dom.Element {
	if len(tb.openElements) == 0 {
		return nil
	}
	el := tb.openElements[len(tb.openElements)-1]
	tb.truncateOpenElementsTo(len(tb.openElements) - 1)
	return el
}

func (tb *TreeBuilder) popUntil(name string) {
	for len(tb.openElements) > 0 {
		el := tb.popCurrent()
		if el.TagName == name {
			return
		}
	}
}

func (tb *TreeBuilder) elementInStack(name string) bool {
	for i := len(tb.openElements) - 1; i >= 0; i-- {
		if tb.openElements[i].TagName == name {
			return true
		}
	}
	return false
}

func isAllWhitespace(s string) bool {
	for _, r := range s {
		switch r {
		case '\t', '\n', '\f', '\r', ' ':
			continue
		default:
			return false
		}
	}
	return true
}

func ptrToString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

type insertionLocation struct {
	parent dom.Node
	before dom.Node
}

func (tb *TreeBuilder) withFosterParenting(fn func() bool) bool {
	prev := tb.fosterParenting
	tb.fosterParenting = true
	defer func() { tb.fosterParenting = prev }()
	return fn()
}

// insertFosterText inserts a text node using the foster-parenting insertion
// location regardless of the current fosterParenting flag, used to flush
// non-whitespace characters collected while in the "in table text"
// insertion mode per WHATWG HTML §13.2.6.4.12.
func (tb *TreeBuilder) insertFosterText(data string) {
	tb.withFosterParenting(func() bool {
		tb.insertText(data)
		return false
	})
}

// AllowCDATA reports whether the tokenizer should treat a "<![CDATA[" marker
// as a CDATA section rather than a bogus comment. Per WHATWG HTML
// §13.2.5.5, CDATA sections are only recognized when the adjusted current
// node is a foreign (non-HTML) element.
func (tb *TreeBuilder) AllowCDATA() bool {
	current := tb.currentElement()
	return current != nil && current.Namespace != dom.NamespaceHTML
}

func (tb *TreeBuilder) appropriateInsertionLocation() (dom.Node, dom.Node) {
	if current := tb.currentElement(); current != nil && current.Namespace == dom.NamespaceHTML && current.TagName == "template" {
		if current.TemplateContent == nil {
			current.TemplateContent = dom.NewDocumentFragment()
		}
		return current.TemplateContent, nil
	}
	if !tb.fosterParenting || !shouldFosterForNode(tb.currentElement()) {
		return tb.currentNode(), nil
	}
	return tb.fosterInsertionLocation()
}

func shouldFosterForNode(el *dom.Element) bool {
	if el == nil || el.Namespace != dom.NamespaceHTML {
		return false
	}
	return constants.TableFosterTargets[el.TagName]
}

func (tb *TreeBuilder) shouldFosterParenting(target *dom.Element, forTag string, isText bool) bool {
	if !tb.fosterParenting {
		return false
	}
	if target == nil || target.Namespace != dom.NamespaceHTML {
		return false
	}
	if !constants.TableFosterTargets[target.TagName] {
		return false
	}
	if isText {
		return true
	}
	if forTag != "" && constants.TableAllowedChildren[forTag] {
		return false
	}
	return true
}

func (tb *TreeBuilder) fosterInsertionLocation() (dom.Node, dom.Node) {
	tableEl, tableIndex := tb.lastTableElement()
	templateEl, templateIndex := tb.lastTemplateElement()
	if templateEl != nil && (tableEl == nil || templateIndex > tableIndex) {
		if templateEl.TemplateContent == nil {
			templateEl.TemplateContent = dom.NewDocumentFragment()
		}
		return templateEl.TemplateContent, nil
	}
	if tableEl == nil {
		return tb.currentNode(), nil
	}
	if p := tableEl.Parent(); p != nil {
		return p, tableEl
	}

	// If the table element has no parent, insert into the element immediately above it in the stack.
	if tableIndex > 0 {
		return tb.openElements[tableIndex-1], nil
	}
	return tb.document, nil
}

func (tb *TreeBuilder) lastTableElement() (*dom.Element, int) {
	if tb.currentTableIndex < 0 || tb.currentTableIndex >= len(tb.openElements) {
		return nil, -1
	}
	return tb.openElements[tb.currentTableIndex], tb.currentTableIndex
}

func (tb *TreeBuilder) lastTemplateElement() (*dom.Element, int) {
	for i := len(tb.openElements) - 1; i >= 0; i-- {
		el := tb.openElements[i]
		if el != nil && el.Namespace == dom.NamespaceHTML && el.TagName == "template" {
			return el, i
		}
	}
	return nil, -1
}

func (tb *TreeBuilder) insertNode(node dom.Node, loc *insertionLocation) {
	var parent dom.Node
	var before dom.Node
	if loc != nil && loc.parent != nil {
		parent = loc.parent
		before = loc.before
	} else {
		parent, before = tb.appropriateInsertionLocation()
	}

	if before == nil {
		tb.sink.AppendChild(parent, node)
		return
	}
	tb.sink.InsertBefore(parent, node, before)
}

func siblingTextBefore(parent dom.Node, ref dom.Node) *dom.Text {
	children := parent.Children()
	for i := range children {
		if children[i] == ref {
			if i > 0 {
				if t, ok := children[i-1].(*dom.Text); ok {
					return t
				}
			}
			return nil
		}
	}
	return nil
}
