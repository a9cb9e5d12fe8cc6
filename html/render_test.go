package html

import (
	"errors"
	"strings"
	"testing"

	xhtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/germtb/goxui"
	"github.com/germtb/goxui/layout"
)

// parseBody parses s as the content of a <body> element.
func parseBody(t *testing.T, s string) []*xhtml.Node {
	t.Helper()
	nodes, err := xhtml.ParseFragment(strings.NewReader(s), &xhtml.Node{
		Type:     xhtml.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	})
	if err != nil {
		t.Fatalf("ParseFragment(%q): %v", s, err)
	}
	return nodes
}

func attr(n *xhtml.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func TestRenderContainerDefault(t *testing.T) {
	out, err := String(layout.Container(layout.ContainerProps{}, goxui.Text("Hello")))
	if err != nil {
		t.Fatalf("String: %v", err)
	}

	want := `<div class="max-w-[1200px] mx-auto px-8 ">Hello</div>`
	if out != want {
		t.Errorf("String() = %q, want %q", out, want)
	}
}

func TestRenderContainerSingleElement(t *testing.T) {
	tree := layout.Container(layout.ContainerProps{
		As:        "section",
		ClassName: "bg-white",
		Attrs:     goxui.Props{"id": "main", "data-kind": "hero", "onClick": func() {}},
	},
		goxui.Element("h1", nil, goxui.Text("Title")),
		goxui.Text("a < b"),
		goxui.Element("p", nil, goxui.Text("body")),
	)

	out, err := String(tree)
	if err != nil {
		t.Fatalf("String: %v", err)
	}

	nodes := parseBody(t, out)
	if len(nodes) != 1 {
		t.Fatalf("top-level nodes = %d, want 1 in %q", len(nodes), out)
	}
	root := nodes[0]
	if root.Data != "section" {
		t.Errorf("root tag = %q, want 'section'", root.Data)
	}
	if class, _ := attr(root, "class"); class != "max-w-[1200px] mx-auto px-8 bg-white" {
		t.Errorf("class = %q", class)
	}
	if id, _ := attr(root, "id"); id != "main" {
		t.Errorf("id = %q, want 'main'", id)
	}
	if kind, _ := attr(root, "data-kind"); kind != "hero" {
		t.Errorf("data-kind = %q, want 'hero'", kind)
	}
	if _, ok := attr(root, "onclick"); ok {
		t.Error("function prop was rendered as an attribute")
	}

	var kids []string
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case xhtml.ElementNode:
			kids = append(kids, "<"+c.Data+">")
		case xhtml.TextNode:
			kids = append(kids, c.Data)
		}
	}
	want := []string{"<h1>", "a < b", "<p>"}
	if strings.Join(kids, "|") != strings.Join(want, "|") {
		t.Errorf("children = %q, want %q", kids, want)
	}
	if !strings.Contains(out, "a &lt; b") {
		t.Errorf("text was not escaped: %q", out)
	}
}

func TestRenderAttributes(t *testing.T) {
	tree := goxui.Element("input", goxui.Props{
		"type":      "checkbox",
		"checked":   true,
		"disabled":  false,
		"tabindex":  3,
		"value":     nil,
		"className": "field",
	})

	out, err := String(tree)
	if err != nil {
		t.Fatalf("String: %v", err)
	}

	want := `<input checked class="field" tabindex="3" type="checkbox">`
	if out != want {
		t.Errorf("String() = %q, want %q", out, want)
	}
}

type flag bool

type role string

type level int

func TestRenderNamedKinds(t *testing.T) {
	tree := goxui.Element("div", goxui.Props{
		"hidden":     flag(true),
		"inert":      flag(false),
		"role":       role("region"),
		"aria-level": level(2),
		"data-empty": role(""),
	})

	out, err := String(tree)
	if err != nil {
		t.Fatalf("String: %v", err)
	}

	want := `<div aria-level="2" data-empty="" hidden role="region"></div>`
	if out != want {
		t.Errorf("String() = %q, want %q", out, want)
	}
}

func TestValidTag(t *testing.T) {
	tests := []struct {
		tag  string
		want bool
	}{
		{"div", true},
		{"SECTION", true},
		{"app-shell", true},
		{"foo", false},
		{"", false},
		{"1p", false},
		{"a b", false},
	}
	for _, tt := range tests {
		if got := ValidTag(tt.tag); got != tt.want {
			t.Errorf("ValidTag(%q) = %v, want %v", tt.tag, got, tt.want)
		}
	}
}

func TestRenderClassWinsOverClassName(t *testing.T) {
	out, err := String(goxui.Element("div", goxui.Props{"class": "a", "className": "b"}))
	if err != nil {
		t.Fatalf("String: %v", err)
	}
	if out != `<div class="a"></div>` {
		t.Errorf("String() = %q", out)
	}
}

func TestRenderFragmentsAndEmpty(t *testing.T) {
	tree := goxui.Element("ul", nil,
		goxui.Fragment(goxui.Map([]string{"a", "b"}, func(s string) goxui.VNode {
			return goxui.Element("li", nil, goxui.Text(s))
		})...),
		goxui.When(false, goxui.Element("li", nil)),
	)

	out, err := String(tree)
	if err != nil {
		t.Fatalf("String: %v", err)
	}
	if out != "<ul><li>a</li><li>b</li></ul>" {
		t.Errorf("String() = %q", out)
	}
}

func TestRenderComponent(t *testing.T) {
	tree := goxui.Element(goxui.Component(layout.ContainerComponent),
		goxui.Props{"as": "main", "id": "m"},
		goxui.Text("X"),
	)

	out, err := String(tree)
	if err != nil {
		t.Fatalf("String: %v", err)
	}
	want := `<main class="max-w-[1200px] mx-auto px-8 " id="m">X</main>`
	if out != want {
		t.Errorf("String() = %q, want %q", out, want)
	}
}

func TestRenderRawTextInStyle(t *testing.T) {
	out, err := String(goxui.Element("style", nil, goxui.Text(layout.Stylesheet())))
	if err != nil {
		t.Fatalf("String: %v", err)
	}
	if !strings.Contains(out, `.max-w-\[1200px\] {`) {
		t.Errorf("stylesheet was altered: %q", out)
	}
}

// recursive renders itself forever.
var recursive goxui.Component

func init() {
	recursive = func(props goxui.Props) goxui.VNode {
		return goxui.Element(recursive, props)
	}
}

func TestRenderErrors(t *testing.T) {
	tests := []struct {
		name string
		node goxui.VNode
		want error
	}{
		{"unsupported type", goxui.VNode{Type: 42}, ErrUnsupportedNode},
		{"bad tag", goxui.Element("di v", nil), ErrInvalidTag},
		{"unknown tag", goxui.Element("notatag", nil), ErrInvalidTag},
		{"bad attr", goxui.Element("div", goxui.Props{`x"y`: "1"}), ErrInvalidAttr},
		{"nested", goxui.Element("div", nil, goxui.Element("<script>", nil)), ErrInvalidTag},
		{"self recursive component", goxui.Element(recursive, nil), ErrNestingTooDeep},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := String(tt.node)
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestRenderCustomElement(t *testing.T) {
	out, err := String(goxui.Element("app-shell", nil))
	if err != nil {
		t.Fatalf("String: %v", err)
	}
	if out != "<app-shell></app-shell>" {
		t.Errorf("String() = %q", out)
	}
}

type failWriter struct{}

var errWrite = errors.New("write failed")

func (failWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestRenderWriterError(t *testing.T) {
	r := NewRenderer(failWriter{})
	err := r.Render(layout.Container(layout.ContainerProps{}))
	if !errors.Is(err, errWrite) {
		t.Errorf("err = %v, want %v", err, errWrite)
	}
}
