package desktop

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/domeview/internal/scene"
)

var keymap = map[sdl.Scancode]scene.Action{
	sdl.SCANCODE_EQUALS:       scene.ActionRadiusUp,
	sdl.SCANCODE_KP_PLUS:      scene.ActionRadiusUp,
	sdl.SCANCODE_MINUS:        scene.ActionRadiusDown,
	sdl.SCANCODE_KP_MINUS:     scene.ActionRadiusDown,
	sdl.SCANCODE_RIGHTBRACKET: scene.ActionGridUp,
	sdl.SCANCODE_LEFTBRACKET:  scene.ActionGridDown,
	sdl.SCANCODE_PERIOD:       scene.ActionExtensionUp,
	sdl.SCANCODE_COMMA:        scene.ActionExtensionDown,
	sdl.SCANCODE_A:            scene.ActionToggleArcs,
	sdl.SCANCODE_T:            scene.ActionToggleRays,
	sdl.SCANCODE_S:            scene.ActionToggleScreen,
	sdl.SCANCODE_C:            scene.ActionToggleCenters,
	sdl.SCANCODE_0:            scene.ActionPlaneNone,
	sdl.SCANCODE_1:            scene.ActionPlaneXY,
	sdl.SCANCODE_2:            scene.ActionPlaneYZ,
	sdl.SCANCODE_3:            scene.ActionPlaneXZ,
	sdl.SCANCODE_L:            scene.ActionLock,
	sdl.SCANCODE_R:            scene.ActionRelease,
	sdl.SCANCODE_P:            scene.ActionExportArc,
	sdl.SCANCODE_F12:          scene.ActionScreenshot,
	sdl.SCANCODE_F3:           scene.ActionToggleDebug,
	sdl.SCANCODE_ESCAPE:       scene.ActionQuit,
}

// repeatable actions keep firing while their key is held.
func repeatable(a scene.Action) bool {
	switch a {
	case scene.ActionRadiusUp, scene.ActionRadiusDown,
		scene.ActionGridUp, scene.ActionGridDown,
		scene.ActionExtensionUp, scene.ActionExtensionDown:
		return true
	}
	return false
}

// actionFor maps a key press to an action.
func actionFor(key sdl.Scancode, repeat bool) scene.Action {
	a, ok := keymap[key]
	if !ok || (repeat && !repeatable(a)) {
		return scene.ActionNone
	}
	return a
}
