package constants

import "strings"

// ElementType is a closed enumeration over every HTML element type this
// parser recognizes, ordered so that category membership is a contiguous
// range: special elements come first, then scoping elements, then
// formatting elements, then phrasing elements. This mirrors the
// name_type_map / is_special_element / is_scoping_element /
// is_formatting_element / is_phrasing_element layout of the original
// treebuilder this package is ported from; ClassifyElement and the
// predicates below are the Go expression of that invariant.
type ElementType int

// Element types, grouped into the four contiguous ranges the predicates
// below test against. ElementUnknown sits outside every range.
const (
	ElementUnknown ElementType = iota

	// --- special range start ---
	Address
	Area
	Article
	Aside
	Base
	Basefont
	Bgsound
	Blockquote
	Body
	Br
	Center
	Col
	Colgroup
	Dd
	Details
	Dialog
	Dir
	Div
	Dl
	Dt
	Embed
	Fieldset
	Figcaption
	Figure
	Footer
	Form
	Frame
	Frameset
	H1
	H2
	H3
	H4
	H5
	H6
	Head
	Header
	Hgroup
	Hr
	Iframe
	Image
	Img
	Input
	Isindex
	Keygen
	Li
	Link
	Listing
	Main
	Menu
	Menuitem
	Meta
	Nav
	Noembed
	Noframes
	Noscript
	Ol
	Optgroup
	Option
	P
	Param
	Plaintext
	Pre
	Script
	Search
	Section
	Select
	Source
	Spacer
	Style
	Summary
	Tbody
	Template
	Textarea
	Tfoot
	Thead
	Title
	Track
	Tr
	Ul
	Wbr
	// --- special range end (Wbr) ---

	// --- scoping range start ---
	Applet
	Button
	Caption
	HTML
	Marquee
	Object
	Table
	Td
	Th
	// --- scoping range end (Th) ---

	// --- formatting range start ---
	A
	B
	Big
	Code
	Em
	Font
	I
	Nobr
	S
	Small
	Strike
	Strong
	Tt
	U
	// --- formatting range end (U) ---

	// phrasing: a single sentinel after U. No tag name maps to it; names
	// without an entry in nameType (e.g. span) classify as ElementUnknown,
	// which IsPhrasingElement also counts as phrasing.
	Phrasing
)

// nameType is a name -> ElementType pair, mirroring the original
// name_type_map table.
var nameType = map[string]ElementType{
	"address": Address, "applet": Applet, "area": Area, "article": Article,
	"aside": Aside, "base": Base,
	"basefont": Basefont, "bgsound": Bgsound, "blockquote": Blockquote,
	"body": Body, "br": Br, "button": Button, "caption": Caption,
	"center": Center, "col": Col, "colgroup": Colgroup, "dd": Dd,
	"details": Details, "dialog": Dialog,
	"dir": Dir, "div": Div, "dl": Dl, "dt": Dt, "embed": Embed,
	"fieldset": Fieldset, "figcaption": Figcaption, "figure": Figure,
	"footer": Footer, "form": Form, "frame": Frame,
	"frameset": Frameset, "h1": H1, "h2": H2, "h3": H3, "h4": H4,
	"h5": H5, "h6": H6, "head": Head, "header": Header, "hgroup": Hgroup,
	"hr": Hr, "html": HTML,
	"iframe": Iframe, "image": Image, "img": Img, "input": Input,
	"isindex": Isindex, "keygen": Keygen, "li": Li, "link": Link, "listing": Listing,
	"main": Main, "marquee": Marquee, "menu": Menu, "menuitem": Menuitem,
	"meta": Meta, "nav": Nav, "noembed": Noembed,
	"noframes": Noframes, "noscript": Noscript, "object": Object,
	"ol": Ol, "optgroup": Optgroup, "option": Option, "p": P,
	"param": Param, "plaintext": Plaintext, "pre": Pre, "script": Script,
	"search": Search, "section": Section,
	"select": Select, "source": Source, "spacer": Spacer, "style": Style, "summary": Summary, "table": Table,
	"tbody": Tbody, "td": Td, "template": Template, "textarea": Textarea, "tfoot": Tfoot,
	"th": Th, "thead": Thead, "title": Title, "track": Track, "tr": Tr, "ul": Ul,
	"wbr": Wbr,
	"a": A, "b": B, "big": Big, "code": Code, "em": Em, "font": Font, "i": I,
	"nobr": Nobr, "s": S, "small": Small, "strike": Strike,
	"strong": Strong, "tt": Tt, "u": U,
}

// ClassifyElement maps a (case-insensitive) tag name to its ElementType,
// or ElementUnknown if the tag isn't one this parser has a dedicated type
// for (in which case it is treated as generic phrasing content).
func ClassifyElement(name string) ElementType {
	if t, ok := nameType[strings.ToLower(name)]; ok {
		return t
	}
	return ElementUnknown
}

// IsSpecialElement reports whether t falls in the special range.
func IsSpecialElement(t ElementType) bool {
	return t >= Address && t <= Wbr
}

// IsScopingElement reports whether t falls in the scoping range.
func IsScopingElement(t ElementType) bool {
	return t >= Applet && t <= Th
}

// IsFormattingElement reports whether t falls in the formatting range.
func IsFormattingElement(t ElementType) bool {
	return t >= A && t <= U
}

// IsPhrasingElement reports whether t is outside the special, scoping, and
// formatting ranges (including ElementUnknown — an unrecognized tag is
// ordinary phrasing content by default).
func IsPhrasingElement(t ElementType) bool {
	return !IsSpecialElement(t) && !IsScopingElement(t) && !IsFormattingElement(t)
}
