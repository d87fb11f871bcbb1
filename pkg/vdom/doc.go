// Package vdom provides the virtual DOM tree model for Verdin.
//
// A VNode is an in-memory description of a piece of UI: an element with
// string attributes and ordered children, a text run, or a deferred
// component subtree. Trees are built once, mounted once, and never
// mutated; "updating" the UI means building a new tree.
//
// # Core Types
//
// VNode is the fundamental building block, discriminated by VKind into
// elements, text, and component references. Props holds string-valued
// attributes. Component is the open capability any UI fragment implements
// to produce a VNode on demand.
//
// # Element API
//
// Elements are created using variadic factory functions:
//
//	Div(Class("card"), ID("main"),
//	    H1(Text("Title")),
//	    P(Text("Content")),
//	)
//
// or explicitly via NewElement, which rejects empty tag names.
//
// # Component Resolution
//
// A component reference is transparent: consumers resolve it with Resolve,
// which follows Render chains to a fixed point under a depth bound so a
// self-referential component fails instead of spinning forever.
package vdom
