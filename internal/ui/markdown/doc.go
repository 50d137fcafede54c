// Package markdown renders parsed documents through customisable styles.
//
// Images, lists and list items are drawn by style values looked up in the
// render environment. Each style receives a configuration whose Label method
// is the built-in rendering, so a custom style can decorate the default
// instead of replacing it:
//
//	boxed := markdown.ImageStyleFunc(func(c markdown.ImageConfiguration) ui.Renderable {
//		return components.HStack(components.NewText("["), c.Label(), components.NewText("]"))
//	})
//	view := markdown.WithImageStyle(markdown.NewDocumentView(doc), boxed)
//
// Styles installed with the With helpers apply to the wrapped subtree only.
package markdown
