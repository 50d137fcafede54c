// Package components provides a declarative, theme-aware view layer for terminal output.
//
// # Overview
//
// Components are small values that render to strings. They compose through the
// ui.Renderable interface and receive layout, theme and environment data through
// an explicit RenderContext instead of global state.
//
// # Render context
//
// RenderContext is an immutable value handed down the tree:
//
//	ctx := components.DefaultContext().WithTheme(components.DarkTheme())
//	output := component.ViewWithContext(ctx)
//
// For simple cases, View() uses the default context automatically.
//
// # Environment
//
// The Environment carried by RenderContext is a keyed store inherited by every
// descendant. Keys are typed and carry a default:
//
//	var BulletKey = components.NewEnvironmentKey("bullet", "•")
//
//	bullet := BulletKey.From(ctx) // "•" unless an ancestor set it
//
// An override applies to one subtree only. Siblings and ancestors keep seeing
// the previous value because the child context is a copy:
//
//	view := components.VStack(
//		components.WithEnvironmentValue(listA, BulletKey, "-"),
//		listB, // still "•"
//	)
//
// # Metrics
//
// ScaledMetric sizes follow ContentScaleKey, so a host can enlarge spacing
// without touching the components that use it.
package components
