package engine

import (
	"testing"

	"github.com/ericroy/fplbase/renderer"
	"github.com/stretchr/testify/assert"
	"github.com/veandco/go-sdl2/sdl"
)

func TestWindowCreationRequiresInit(t *testing.T) {

	// isInited only flips after a successful engine.Init, so window
	// creation must refuse to run before that
	assert.False(t, isInited)
	assert.Panics(t, func() {
		CreateOpenGLWindowCentered("test", 640, 480, WindowFlags_HIDDEN, renderer.NewRenderer(renderer.FeatureLevel20))
	})
}

func TestRequestedGLContextAttributes(t *testing.T) {

	attrs := make(map[sdl.GLattr]int, len(glAttributes))
	for _, a := range glAttributes {
		attrs[a.attr] = a.value
	}

	// The context version must go through the GL_CONTEXT_* attributes;
	// sdl.MAJOR_VERSION/MINOR_VERSION are library version macros
	assert.Equal(t, 4, attrs[sdl.GL_CONTEXT_MAJOR_VERSION])
	assert.Equal(t, 1, attrs[sdl.GL_CONTEXT_MINOR_VERSION])
	assert.Equal(t, int(sdl.GL_CONTEXT_PROFILE_CORE), attrs[sdl.GL_CONTEXT_PROFILE_MASK])

	assert.Equal(t, 24, attrs[sdl.GL_DEPTH_SIZE])
	assert.Equal(t, 8, attrs[sdl.GL_STENCIL_SIZE])
	assert.Equal(t, 1, attrs[sdl.GL_FRAMEBUFFER_SRGB_CAPABLE])
}
