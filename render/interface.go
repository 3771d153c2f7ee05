package render

// SystemRenderer is implemented by every layer with visual output
type SystemRenderer interface {
	Render(ctx RenderContext, buf *RenderBuffer)
}

// VisibilityToggle is optionally implemented for per-scene enable/disable
type VisibilityToggle interface {
	IsVisible(ctx RenderContext) bool
}
