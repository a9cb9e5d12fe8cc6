// Package page builds goxui trees from YAML page descriptions.
package page

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/germtb/goxui"
	"github.com/germtb/goxui/html"
	"github.com/germtb/goxui/layout"
)

// ErrInvalidDocument is returned by Validate for malformed documents.
var ErrInvalidDocument = errors.New("invalid page document")

// Document describes a page whose body content is wrapped in a Container.
type Document struct {
	Title      string    `yaml:"title"`
	Lang       string    `yaml:"lang"`
	Stylesheet bool      `yaml:"stylesheet"`
	Container  Container `yaml:"container"`
	Children   []Node    `yaml:"children"`
}

// Container holds the layout.ContainerProps of the page body.
type Container struct {
	As        string            `yaml:"as"`
	ClassName string            `yaml:"className"`
	Attrs     map[string]string `yaml:"attrs"`
}

// Node is an element or text node. A node with only Text is a text node;
// a node with a Tag renders as that element with Text as its first child.
type Node struct {
	Tag      string            `yaml:"tag"`
	Text     string            `yaml:"text"`
	Attrs    map[string]string `yaml:"attrs"`
	Children []Node            `yaml:"children"`
}

// ParseFile reads and parses a page description.
func ParseFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return Parse(data)
}

// Parse parses YAML content into a Document.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return &doc, nil
}

// Validate checks tags and node shapes against what the html renderer
// accepts. Errors name the offending node path.
func (d *Document) Validate() error {
	if d.Container.As != "" && !html.ValidTag(d.Container.As) {
		return fmt.Errorf("%w: container.as: bad tag %q", ErrInvalidDocument, d.Container.As)
	}
	if err := validateAttrs("container", d.Container.Attrs); err != nil {
		return err
	}
	return validateNodes("children", d.Children)
}

func validateNodes(path string, nodes []Node) error {
	for i, n := range nodes {
		p := fmt.Sprintf("%s[%d]", path, i)
		if n.Tag == "" {
			if n.Text == "" {
				return fmt.Errorf("%w: %s: node needs a tag or text", ErrInvalidDocument, p)
			}
			if len(n.Attrs) > 0 || len(n.Children) > 0 {
				return fmt.Errorf("%w: %s: text node cannot have attrs or children", ErrInvalidDocument, p)
			}
			continue
		}
		if !html.ValidTag(n.Tag) {
			return fmt.Errorf("%w: %s: bad tag %q", ErrInvalidDocument, p, n.Tag)
		}
		if err := validateAttrs(p, n.Attrs); err != nil {
			return err
		}
		if err := validateNodes(p+".children", n.Children); err != nil {
			return err
		}
	}
	return nil
}

func validateAttrs(path string, attrs map[string]string) error {
	for name := range attrs {
		if !html.ValidAttrName(name) {
			return fmt.Errorf("%w: %s: bad attribute name %q", ErrInvalidDocument, path, name)
		}
	}
	return nil
}

// Body returns the page content wrapped in a Container.
func (d *Document) Body() goxui.VNode {
	return layout.Container(layout.ContainerProps{
		As:        d.Container.As,
		ClassName: d.Container.ClassName,
		Attrs:     stringProps(d.Container.Attrs),
	}, nodes(d.Children)...)
}

// VNode returns the full html document tree.
func (d *Document) VNode() goxui.VNode {
	var htmlProps goxui.Props
	if d.Lang != "" {
		htmlProps = goxui.Props{"lang": d.Lang}
	}
	return goxui.Element("html", htmlProps,
		goxui.Element("head", nil,
			goxui.Element("meta", goxui.Props{"charset": "utf-8"}),
			goxui.Element("meta", goxui.Props{"name": "viewport", "content": "width=device-width, initial-scale=1"}),
			goxui.When(d.Title != "", goxui.Element("title", nil, goxui.Text(d.Title))),
			goxui.When(d.Stylesheet, goxui.Element("style", nil, goxui.Text(layout.Stylesheet()))),
		),
		goxui.Element("body", nil, d.Body()),
	)
}

func nodes(ns []Node) []goxui.VNode {
	return goxui.Map(ns, func(n Node) goxui.VNode {
		if n.Tag == "" {
			return goxui.Text(n.Text)
		}
		var kids []goxui.VNode
		if n.Text != "" {
			kids = append(kids, goxui.Text(n.Text))
		}
		kids = append(kids, nodes(n.Children)...)
		return goxui.Element(n.Tag, stringProps(n.Attrs), kids...)
	})
}

func stringProps(m map[string]string) goxui.Props {
	if len(m) == 0 {
		return nil
	}
	p := make(goxui.Props, len(m))
	for k, v := range m {
		p[k] = v
	}
	return p
}
