package shaders

import (
	"fmt"
	"os"
	"strings"
)

// Shader source file extensions for the two stages of a program
const (
	VertexShaderExt   = ".glslv"
	FragmentShaderExt = ".glslf"
)

// ShaderSourcePair holds finished, preprocessed source text for both stages
// of a program. It is the handoff value of the two-phase compile path:
// produced by Shader.Load (any thread), consumed by Shader.Finalize
// (GL thread only).
type ShaderSourcePair struct {
	VertexShader   string
	FragmentShader string
}

// LoadSourcePair reads <basename>.glslv and <basename>.glslf and expands
// the given preprocessor defines into both
func LoadSourcePair(basename string, defines []string) (*ShaderSourcePair, error) {

	vertSrc, err := loadFileWithDefines(basename+VertexShaderExt, defines)
	if err != nil {
		return nil, err
	}

	fragSrc, err := loadFileWithDefines(basename+FragmentShaderExt, defines)
	if err != nil {
		return nil, err
	}

	return &ShaderSourcePair{VertexShader: vertSrc, FragmentShader: fragSrc}, nil
}

func loadFileWithDefines(path string, defines []string) (string, error) {

	src, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read shader file '%s'. Err: %w", path, err)
	}

	return InsertDefines(string(src), defines), nil
}

// InsertDefines expands a list of preprocessor symbols into '#define' lines.
// A '#version' directive must stay the first line of the source, so the
// defines go right after it when present, else at the top
func InsertDefines(src string, defines []string) string {

	if len(defines) == 0 {
		return src
	}

	var sb strings.Builder
	for _, d := range defines {
		sb.WriteString("#define ")
		sb.WriteString(d)
		sb.WriteString("\n")
	}
	defineBlock := sb.String()

	if strings.HasPrefix(src, "#version") {

		lineEnd := strings.Index(src, "\n")
		if lineEnd == -1 {
			return src + "\n" + defineBlock
		}

		return src[:lineEnd+1] + defineBlock + src[lineEnd+1:]
	}

	return defineBlock + src
}
