package treebuilder

import (
	"sort"
	"strings"

	"github.com/corvidtree/htmltree/dom"
	"github.com/corvidtree/htmltree/tokenizer"
)

// formattingEntry is one entry of the list of active formatting elements,
// per WHATWG HTML §13.2.5.2. stackIndex caches whether node is still on the
// stack of open elements: 0 means stale (popped since the entry was
// created or last reconstructed), nonzero means live. This lets
// reconstruction and the adoption agency test liveness in O(1) instead of
// scanning the open elements stack for pointer identity on every entry.
type formattingEntry struct {
	marker     bool
	name       string
	attrs      []tokenizer.Attr
	node       *dom.Element
	signature  string
	stackIndex int
}

// invalidateFormattingStackIndex marks node's active formatting entry (if
// any) stale, called whenever node is popped or removed from the stack of
// open elements.
func (tb *TreeBuilder) invalidateFormattingStackIndex(node *dom.Element) {
	if node == nil {
		return
	}
	for i := range tb.activeFormatting {
		if tb.activeFormatting[i].node == node {
			tb.activeFormatting[i].stackIndex = 0
			return
		}
	}
}

func (tb *TreeBuilder) pushFormattingMarker() {
	tb.activeFormatting = append(tb.activeFormatting, formattingEntry{marker: true})
}

func (tb *TreeBuilder) clearActiveFormattingUpToMarker() {
	for len(tb.activeFormatting) > 0 {
		last := tb.activeFormatting[len(tb.activeFormatting)-1]
		tb.activeFormatting = tb.activeFormatting[:len(tb.activeFormatting)-1]
		if last.marker {
			return
		}
	}
}

func (tb *TreeBuilder) appendActiveFormattingEntry(name string, attrs []tokenizer.Attr, node *dom.Element) {
	entryAttrs := cloneTokenAttrs(attrs)
	stackIndex := 0
	if idx, ok := tb.indexOfOpenElement(node); ok {
		stackIndex = idx + 1
	}
	tb.activeFormatting = append(tb.activeFormatting, formattingEntry{
		name:       name,
		attrs:      entryAttrs,
		node:       node,
		signature:  attrsSignature(entryAttrs),
		stackIndex: stackIndex,
	})
}

func (tb *TreeBuilder) findActiveFormattingIndex(name string) (int, bool) {
	for i := len(tb.activeFormatting) - 1; i >= 0; i-- {
		entry := tb.activeFormatting[i]
		if entry.marker {
			break
		}
		if entry.name == name {
			return i, true
		}
	}
	return -1, false
}

func (tb *TreeBuilder) findActiveFormattingIndexByNode(node *dom.Element) (int, bool) {
	for i := len(tb.activeFormatting) - 1; i >= 0; i-- {
		entry := tb.activeFormatting[i]
		if !entry.marker && entry.node == node {
			return i, true
		}
	}
	return -1, false
}

func (tb *TreeBuilder) findActiveFormattingDuplicate(name string, attrs []tokenizer.Attr) (int, bool) {
	sig := attrsSignature(attrs)
	var matches []int
	for i, entry := range tb.activeFormatting {
		if entry.marker {
			matches = matches[:0]
			continue
		}
		if entry.name == name && entry.signature == sig {
			matches = append(matches, i)
		}
	}
	if len(matches) >= 3 {
		return matches[0], true
	}
	return -1, false
}

func (tb *TreeBuilder) hasActiveFormattingEntry(name string) bool {
	_, ok := tb.findActiveFormattingIndex(name)
	return ok
}

func (tb *TreeBuilder) removeFormattingEntry(index int) {
	if index < 0 || index >= len(tb.activeFormatting) {
		return
	}
	copy(tb.activeFormatting[index:], tb.activeFormatting[index+1:])
	tb.activeFormatting = tb.activeFormatting[:len(tb.activeFormatting)-1]
}

func (tb *TreeBuilder) removeLastActiveFormattingByName(name string) {
	for i := len(tb.activeFormatting) - 1; i >= 0; i-- {
		entry := tb.activeFormatting[i]
		if entry.marker {
			break
		}
		if entry.name == name {
			tb.removeFormattingEntry(i)
			return
		}
	}
}

func (tb *TreeBuilder) removeLastOpenElementByName(name string) {
	for i := len(tb.openElements) - 1; i >= 0; i-- {
		if tb.openElements[i].TagName == name {
			tb.removeOpenElementAt(i)
			return
		}
	}
}

func (tb *TreeBuilder) reconstructActiveFormattingElements() {
	// Per WHATWG HTML ยง13.2.5.2.1 (reconstruct the active formatting elements).
	if len(tb.activeFormatting) == 0 {
		return
	}
	last := tb.activeFormatting[len(tb.activeFormatting)-1]
	if last.marker || last.stackIndex != 0 {
		return
	}

	index := len(tb.activeFormatting) - 1
	for {
		index--
		if index < 0 {
			index = 0
			break
		}
		entry := tb.activeFormatting[index]
		if entry.marker || entry.stackIndex != 0 {
			index++
			break
		}
	}

	for index < len(tb.activeFormatting) {
		entry := tb.activeFormatting[index]
		el := tb.insertClonedElement(entry.node)
		tb.activeFormatting[index].node = el
		tb.activeFormatting[index].stackIndex = len(tb.openElements)
		index++
	}
}

// insertClonedElement shallow-clones src via the sink, inserts the clone at
// the current insertion location, and pushes it onto the stack of open
// elements. Used by reconstruction to reopen stale active formatting
// elements per WHATWG HTML §13.2.4.3.
func (tb *TreeBuilder) insertClonedElement(src *dom.Element) *dom.Element {
	el := tb.sink.CloneNode(src)
	tb.insertNode(el, nil)
	tb.pushOpenElement(el)
	return el
}

func cloneTokenAttrs(attrs []tokenizer.Attr) []tokenizer.Attr {
	if len(attrs) == 0 {
		return nil
	}
	out := make([]tokenizer.Attr, len(attrs))
	copy(out, attrs)
	return out
}

func attrsSignature(attrs []tokenizer.Attr) string {
	if len(attrs) == 0 {
		return ""
	}
	keys := make([]string, 0, len(attrs))
	values := make(map[string]string, len(attrs))
	for _, a := range attrs {
		if a.Namespace != "" {
			continue
		}
		keys = append(keys, a.Name)
		values[a.Name] = a.Value
	}
	sort.Strings(keys)
	var sb strings.Builder
	for _, k := range keys {
		sb.WriteString(k)
		sb.WriteByte('=')
		sb.WriteString(values[k])
		sb.WriteByte(0)
	}
	return sb.String()
}
