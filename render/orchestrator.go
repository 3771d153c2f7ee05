package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/alpha-strike/engine"
)

type rendererEntry struct {
	renderer SystemRenderer
	priority RenderPriority
	index    int // registration order for stable sort
}

// RenderOrchestrator coordinates the render pipeline
type RenderOrchestrator struct {
	screen    tcell.Screen
	buffer    *RenderBuffer
	renderers []rendererEntry
	regCount  int
	frame     uint64
}

// NewRenderOrchestrator creates an orchestrator sized to screen
func NewRenderOrchestrator(screen tcell.Screen) *RenderOrchestrator {
	width, height := screen.Size()
	return &RenderOrchestrator{
		screen:    screen,
		buffer:    NewRenderBuffer(width, height),
		renderers: make([]rendererEntry, 0, 16),
	}
}

// Register adds a renderer at the specified priority. Maintains sorted order via insertion sort
func (o *RenderOrchestrator) Register(r SystemRenderer, priority RenderPriority) {
	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// Resize updates buffer dimensions and syncs the screen
func (o *RenderOrchestrator) Resize() {
	width, height := o.screen.Size()
	o.buffer.Resize(width, height)
	o.screen.Sync()
}

// Buffer exposes the last composited frame
func (o *RenderOrchestrator) Buffer() *RenderBuffer {
	return o.buffer
}

// RenderFrame composites one frame from a consistent world view and shows it
func (o *RenderOrchestrator) RenderFrame(session *engine.Session, front Frontend) {
	session.View(func(w *engine.World) {
		o.Compose(w, front)
	})
	o.buffer.FlushToScreen(o.screen)
	o.screen.Show()
}

// Compose runs every visible renderer into the buffer, the caller owns world access
func (o *RenderOrchestrator) Compose(w *engine.World, front Frontend) {
	o.frame++
	width, height := o.buffer.Size()
	ctx := NewRenderContext(w, front, o.frame, width, height)

	o.buffer.Clear()
	for _, entry := range o.renderers {
		if vt, ok := entry.renderer.(VisibilityToggle); ok && !vt.IsVisible(ctx) {
			continue
		}
		entry.renderer.Render(ctx, o.buffer)
	}
}
