package playblast

import "fmt"

// ViewportElement is one kind of viewport content that can be shown or
// hidden during a capture.
type ViewportElement struct {
	Label string // UI label
	Flag  string // host model-editor flag name
}

// ViewportElements is the fixed list of toggleable viewport element
// kinds. Visibility slices passed to the host are ordered like this
// list.
var ViewportElements = []ViewportElement{
	{"Controllers", "controllers"},
	{"NURBS Curves", "nurbsCurves"},
	{"NURBS Surfaces", "nurbsSurfaces"},
	{"NURBS CVs", "cv"},
	{"NURBS Hulls", "hulls"},
	{"Polygons", "polymeshes"},
	{"Subdiv Surfaces", "subdivSurfaces"},
	{"Planes", "planes"},
	{"Lights", "lights"},
	{"Cameras", "cameras"},
	{"Image Planes", "imagePlane"},
	{"Joints", "joints"},
	{"IK Handles", "ikHandles"},
	{"Deformers", "deformers"},
	{"Dynamics", "dynamics"},
	{"Particle Instancers", "particleInstancers"},
	{"Fluids", "fluids"},
	{"Hair Systems", "hairSystems"},
	{"Follicles", "follicles"},
	{"nCloths", "nCloths"},
	{"nParticles", "nParticles"},
	{"nRigids", "nRigids"},
	{"Dynamic Constraints", "dynamicConstraints"},
	{"Locators", "locators"},
	{"Dimensions", "dimensions"},
	{"Pivots", "pivots"},
	{"Handles", "handles"},
	{"Texture Placements", "textures"},
	{"Strokes", "strokes"},
	{"Motion Trails", "motionTrails"},
	{"Plugin Shapes", "pluginShapes"},
	{"Clip Ghosts", "clipGhosts"},
	{"Grease Pencil", "greasePencils"},
	{"Grid", "grid"},
	{"HUD", "hud"},
	{"Hold-Outs", "hos"},
	{"Selection Highlighting", "sel"},
}

// visibilityPresets maps preset names to the element labels left
// visible. The "Viewport" preset is empty: it keeps whatever the
// viewport currently shows.
var visibilityPresets = map[string][]string{
	"Viewport": {},
	"Geo":      {"NURBS Surfaces", "Polygons"},
	"Dynamics": {"NURBS Surfaces", "Polygons", "Dynamics", "Fluids", "nParticles"},
}

// VisibilityPresets lists the accepted visibility preset names.
var VisibilityPresets = []string{"Viewport", "Geo", "Dynamics"}

// FlagsForVisibilityPreset returns the per-element visibility states for
// a preset, ordered like ViewportElements. The "Viewport" preset returns
// nil: the capture keeps the viewport's current states.
func FlagsForVisibilityPreset(preset string) ([]bool, error) {
	labels, ok := visibilityPresets[preset]
	if !ok {
		return nil, fmt.Errorf("invalid visibility preset: %s", preset)
	}
	if len(labels) == 0 {
		return nil, nil
	}

	visible := make(map[string]bool, len(labels))
	for _, label := range labels {
		visible[label] = true
	}

	flags := make([]bool, len(ViewportElements))
	for i, element := range ViewportElements {
		flags[i] = visible[element.Label]
	}
	return flags, nil
}

func isVisibilityPreset(name string) bool {
	_, ok := visibilityPresets[name]
	return ok
}
