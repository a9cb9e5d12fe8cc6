package goxui

// Element creates a VNode for an element (intrinsic or component).
// typ can be a string (for intrinsic elements like "div", "section")
// or a Component function.
func Element(typ any, props Props, children ...VNode) VNode {
	if props == nil {
		props = Props{}
	}
	return VNode{
		Type:     typ,
		Props:    props,
		Children: children,
	}
}

// E is a shorthand alias for Element.
func E(typ any, props Props, children ...VNode) VNode {
	return Element(typ, props, children...)
}

// Expand calls the component of a component node with its props and
// children. Children are passed under ChildrenProp. Non-component nodes are
// returned unchanged.
func Expand(v VNode) VNode {
	c, ok := v.Type.(Component)
	if !ok {
		return v
	}
	props := v.Props
	if len(v.Children) > 0 {
		props = MergeProps(v.Props, Props{ChildrenProp: v.Children})
	}
	return c(props)
}
