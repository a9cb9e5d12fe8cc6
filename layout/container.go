// Package layout holds page layout components.
package layout

import (
	"github.com/germtb/goxui"
)

// ContainerClass caps the width at 1200px, centers horizontally and pads the
// sides by 8 spacing units.
const ContainerClass = "max-w-[1200px] mx-auto px-8"

// DefaultTag is the element a Container renders as when As is empty.
const DefaultTag = "div"

// ContainerProps configures a Container.
type ContainerProps struct {
	// ClassName is appended after ContainerClass.
	ClassName string
	// As is the host element tag. Defaults to DefaultTag.
	As string
	// Attrs are forwarded verbatim to the rendered element.
	Attrs goxui.Props
}

// Container wraps children in a single width-constrained, centered element.
func Container(props ContainerProps, children ...goxui.VNode) goxui.VNode {
	tag := props.As
	if tag == "" {
		tag = DefaultTag
	}
	attrs := goxui.MergeProps(props.Attrs, goxui.Props{
		goxui.ClassProp: ContainerClassName(props.ClassName),
	})
	return goxui.Element(tag, attrs, children...)
}

// ContainerClassName returns the class attribute a Container renders with.
// An empty className leaves a trailing space.
func ContainerClassName(className string) string {
	return ContainerClass + " " + className
}

// ContainerComponent is the untyped form of Container for use as a
// goxui.Component. The className, as and children props are consumed; every
// other prop is forwarded.
func ContainerComponent(props goxui.Props) goxui.VNode {
	var p ContainerProps
	attrs := make(goxui.Props, len(props))
	for k, v := range props {
		switch k {
		case goxui.ClassNameProp:
			p.ClassName, _ = v.(string)
		case "as":
			p.As, _ = v.(string)
		case goxui.ChildrenProp:
		default:
			attrs[k] = v
		}
	}
	p.Attrs = attrs
	return Container(p, goxui.ChildrenOf(props)...)
}

var _ goxui.Component = ContainerComponent
