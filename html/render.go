// Package html renders goxui VNode trees as HTML.
package html

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"sort"
	"strings"

	"golang.org/x/net/html/atom"
	g "maragu.dev/gomponents"

	"github.com/germtb/goxui"
)

var (
	// ErrUnsupportedNode is returned for nodes whose Type is not a tag,
	// a Component or one of the special node types.
	ErrUnsupportedNode = errors.New("unsupported node type")
	// ErrInvalidTag is returned for tags that are neither known HTML
	// elements nor valid custom element names.
	ErrInvalidTag = errors.New("invalid element tag")
	// ErrInvalidAttr is returned for attribute names that cannot be written
	// into a start tag.
	ErrInvalidAttr = errors.New("invalid attribute name")
	// ErrNestingTooDeep is returned when component expansion recurses past
	// maxExpandDepth levels.
	ErrNestingTooDeep = errors.New("component nesting too deep")
)

// maxExpandDepth bounds nested component expansion.
const maxExpandDepth = 256

// Render writes v as HTML to w.
func Render(w io.Writer, v goxui.VNode) error {
	n, err := Node(v)
	if err != nil {
		return err
	}
	return n.Render(w)
}

// String renders v as an HTML string.
func String(v goxui.VNode) (string, error) {
	var b strings.Builder
	if err := Render(&b, v); err != nil {
		return "", err
	}
	return b.String(), nil
}

// NewRenderer returns a goxui.Renderer that writes HTML to w.
func NewRenderer(w io.Writer) goxui.Renderer {
	return goxui.RenderFunc(func(v goxui.VNode) error {
		return Render(w, v)
	})
}

// Node converts v into a gomponents node. Components are expanded.
func Node(v goxui.VNode) (g.Node, error) {
	return node(v, "", 0)
}

// node converts v. parent is the enclosing element tag, used to decide how
// text is written.
func node(v goxui.VNode, parent string, depth int) (g.Node, error) {
	switch {
	case v.IsEmpty():
		return g.Group(nil), nil
	case v.IsText():
		content, _ := v.GetTextContent()
		if isRawText(parent) {
			return g.Raw(content), nil
		}
		return g.Text(content), nil
	case v.IsFragment():
		return children(v.Children, parent, depth)
	case v.IsComponent():
		if depth >= maxExpandDepth {
			return nil, fmt.Errorf("%w: exceeds %d levels", ErrNestingTooDeep, maxExpandDepth)
		}
		return node(goxui.Expand(v), parent, depth+1)
	}

	tag, ok := v.Tag()
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedNode, v.Type)
	}
	if !ValidTag(tag) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTag, tag)
	}

	attrs, err := attributes(v.Props)
	if err != nil {
		return nil, fmt.Errorf("<%s>: %w", tag, err)
	}
	kids, err := children(v.Children, tag, depth)
	if err != nil {
		return nil, err
	}
	return g.El(tag, append(attrs, kids)...), nil
}

func children(vs []goxui.VNode, parent string, depth int) (g.Node, error) {
	nodes := make(g.Group, 0, len(vs))
	for _, child := range vs {
		n, err := node(child, parent, depth)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

// attributes maps props to gomponents attributes in sorted name order.
func attributes(props goxui.Props) ([]g.Node, error) {
	names := make([]string, 0, len(props))
	values := make(map[string]string, len(props))
	bare := make(map[string]bool)

	for k, v := range props {
		name := k
		switch k {
		case goxui.ChildrenProp:
			continue
		case goxui.ClassNameProp:
			if _, dup := props[goxui.ClassProp]; dup {
				continue
			}
			name = goxui.ClassProp
		}
		if !ValidAttrName(name) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidAttr, name)
		}

		switch val := v.(type) {
		case nil:
			continue
		case string:
			values[name] = val
		case bool:
			if !val {
				continue
			}
			bare[name] = true
		case fmt.Stringer:
			values[name] = val.String()
		case int, int8, int16, int32, int64,
			uint, uint8, uint16, uint32, uint64,
			float32, float64:
			values[name] = fmt.Sprint(val)
		default:
			s, isBool, ok := kindValue(val)
			if !ok {
				continue
			}
			if isBool {
				bare[name] = true
			} else {
				values[name] = s
			}
		}
		names = append(names, name)
	}
	sort.Strings(names)

	attrs := make([]g.Node, 0, len(names)+1)
	for _, name := range names {
		if bare[name] {
			attrs = append(attrs, g.Attr(name))
			continue
		}
		attrs = append(attrs, g.Attr(name, values[name]))
	}
	return attrs, nil
}

// kindValue formats values of named bool, string and numeric types by their
// underlying kind. ok is false for values with no HTML form, such as handlers,
// and for false booleans.
func kindValue(v any) (s string, isBool, ok bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return "", true, rv.Bool()
	case reflect.String:
		return rv.String(), false, true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fmt.Sprint(rv.Int()), false, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return fmt.Sprint(rv.Uint()), false, true
	case reflect.Float32, reflect.Float64:
		return fmt.Sprint(rv.Float()), false, true
	}
	return "", false, false
}

// ValidTag reports whether tag is a known HTML element or a custom element
// name.
func ValidTag(tag string) bool {
	if tag == "" || !isLetter(tag[0]) {
		return false
	}
	for i := 0; i < len(tag); i++ {
		b := tag[i]
		if !isLetter(b) && !(b >= '0' && b <= '9') && b != '-' {
			return false
		}
	}
	if atom.Lookup([]byte(strings.ToLower(tag))) != 0 {
		return true
	}
	return strings.Contains(tag, "-")
}

// ValidAttrName reports whether name can be written into a start tag.
func ValidAttrName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		switch {
		case r <= ' ', r == 0x7f:
			return false
		case strings.ContainsRune("\"'<>/=`", r):
			return false
		}
	}
	return true
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// isRawText reports whether text inside tag is written unescaped.
func isRawText(tag string) bool {
	switch strings.ToLower(tag) {
	case "style", "script":
		return true
	}
	return false
}
