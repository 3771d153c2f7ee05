// Package renderers holds the layers composited by render.RenderOrchestrator
package renderers

import "github.com/lixenwraith/alpha-strike/render"

// RegisterAll installs the full game pipeline into o
func RegisterAll(o *render.RenderOrchestrator) {
	o.Register(NewArenaRenderer(), render.PriorityGrid)
	o.Register(NewBaseRenderer(), render.PriorityBase)
	o.Register(NewEnemyRenderer(), render.PriorityEntities)
	o.Register(NewProjectileRenderer(), render.PriorityEntities)
	o.Register(NewParticleRenderer(), render.PriorityParticle)
	o.Register(NewPlayerRenderer(), render.PriorityMarker)
	o.Register(NewHUDRenderer(), render.PriorityUI)
	o.Register(NewMenuRenderer(), render.PriorityOverlay)
	o.Register(NewGameOverRenderer(), render.PriorityOverlay)
}
