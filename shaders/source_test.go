package shaders

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertDefines(t *testing.T) {

	tests := []struct {
		name    string
		src     string
		defines []string
		want    string
	}{
		{
			name:    "no defines returns source unchanged",
			src:     "#version 410\nvoid main() {}\n",
			defines: nil,
			want:    "#version 410\nvoid main() {}\n",
		},
		{
			name:    "defines go after the version directive",
			src:     "#version 410\nvoid main() {}\n",
			defines: []string{"FOO", "BAR 2"},
			want:    "#version 410\n#define FOO\n#define BAR 2\nvoid main() {}\n",
		},
		{
			name:    "no version directive puts defines first",
			src:     "void main() {}\n",
			defines: []string{"FOO"},
			want:    "#define FOO\nvoid main() {}\n",
		},
		{
			name:    "version directive without trailing newline",
			src:     "#version 410",
			defines: []string{"FOO"},
			want:    "#version 410\n#define FOO\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InsertDefines(tt.src, tt.defines))
		})
	}
}

func TestLoadSourcePair(t *testing.T) {

	dir := t.TempDir()
	basename := filepath.Join(dir, "test_shader")

	vertSrc := "#version 410\nvoid main() {}\n"
	fragSrc := "#version 410\nout vec4 c;\nvoid main() { c = vec4(1.0); }\n"

	require.NoError(t, os.WriteFile(basename+VertexShaderExt, []byte(vertSrc), 0o644))
	require.NoError(t, os.WriteFile(basename+FragmentShaderExt, []byte(fragSrc), 0o644))

	pair, err := LoadSourcePair(basename, []string{"LIT"})
	require.NoError(t, err)

	assert.Equal(t, "#version 410\n#define LIT\nvoid main() {}\n", pair.VertexShader)
	assert.Contains(t, pair.FragmentShader, "#define LIT\n")
	assert.Contains(t, pair.FragmentShader, "out vec4 c;")
}

func TestLoadSourcePairMissingFile(t *testing.T) {

	dir := t.TempDir()
	basename := filepath.Join(dir, "nope")

	pair, err := LoadSourcePair(basename, nil)
	assert.Nil(t, pair)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "nope"+VertexShaderExt)
}

func TestLoadSourcePairMissingFragment(t *testing.T) {

	dir := t.TempDir()
	basename := filepath.Join(dir, "vert_only")
	require.NoError(t, os.WriteFile(basename+VertexShaderExt, []byte("#version 410\n"), 0o644))

	pair, err := LoadSourcePair(basename, nil)
	assert.Nil(t, pair)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), FragmentShaderExt)
}
