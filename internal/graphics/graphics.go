// Package graphics holds the OpenGL helpers shared by the renderables:
// shader programs, the glyph atlas and text drawing.
package graphics

const (
	WinWidth  = 900
	WinHeight = 600
	WinTitle  = "shinage"
)

// Shader file paths, relative to the working directory.
const (
	ShadersDir = "assets/shaders"

	ColorVertShader = "simple_color.vert"
	ColorFragShader = "simple_color.frag"
	FontVertShader  = "font.vert"
	FontFragShader  = "font.frag"
)
