package goxui

import (
	"fmt"
	"strings"
)

// Text creates a text VNode.
func Text(content string) VNode {
	return VNode{
		Type:  TextNodeType,
		Props: Props{"content": content},
	}
}

// V converts an arbitrary value to a VNode.
// If the value is already a VNode, it's returned as-is.
// If it's a string, it's wrapped as a Text node.
// If it's a []VNode, it's wrapped as a Fragment.
// Numeric types and booleans are converted to their string representation.
// Panics for unsupported types (channels, functions, etc.).
func V(value any) VNode {
	switch v := value.(type) {
	case VNode:
		return v
	case string:
		return Text(v)
	case []VNode:
		return Fragment(v...)
	case nil:
		return Empty()
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64, bool:
		return Text(fmt.Sprint(v))
	default:
		panic(fmt.Sprintf("goxui: cannot convert %T to VNode - use goxui.Text() for strings or return a VNode from your expression", value))
	}
}

// Fragment wraps multiple children without a parent element.
func Fragment(children ...VNode) VNode {
	return VNode{
		Type:     FragmentNodeType,
		Children: children,
	}
}

// When returns child if condition is true, else empty VNode.
func When(condition bool, child VNode) VNode {
	if condition {
		return child
	}
	return Empty()
}

// WhenElse returns ifTrue if condition is true, else ifFalse.
func WhenElse(condition bool, ifTrue, ifFalse VNode) VNode {
	if condition {
		return ifTrue
	}
	return ifFalse
}

// Map applies a function to each element and returns the resulting VNodes.
func Map[T any](items []T, fn func(T) VNode) []VNode {
	result := make([]VNode, len(items))
	for i, item := range items {
		result[i] = fn(item)
	}
	return result
}

// MapIndex applies a function with index to each element and returns the resulting VNodes.
func MapIndex[T any](items []T, fn func(int, T) VNode) []VNode {
	result := make([]VNode, len(items))
	for i, item := range items {
		result[i] = fn(i, item)
	}
	return result
}

// Spread expands a slice of VNodes into children.
func Spread(nodes []VNode) VNode {
	return Fragment(nodes...)
}

// MergeProps returns a new Props holding every key of ps.
// Later maps win on conflicting keys. The inputs are not modified.
func MergeProps(ps ...Props) Props {
	n := 0
	for _, p := range ps {
		n += len(p)
	}
	merged := make(Props, n)
	for _, p := range ps {
		for k, v := range p {
			merged[k] = v
		}
	}
	return merged
}

// ChildrenOf extracts the children delivered to a component under
// ChildrenProp. A single value is converted with V; a missing prop yields nil.
func ChildrenOf(props Props) []VNode {
	switch c := props[ChildrenProp].(type) {
	case nil:
		return nil
	case []VNode:
		return c
	default:
		return []VNode{V(c)}
	}
}

// ClassNames joins the non-empty class tokens with single spaces.
func ClassNames(tokens ...string) string {
	kept := tokens[:0:0]
	for _, t := range tokens {
		if t = strings.TrimSpace(t); t != "" {
			kept = append(kept, t)
		}
	}
	return strings.Join(kept, " ")
}
