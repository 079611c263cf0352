package assets

import (
	"fmt"
	"image/png"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/mandykoh/prism"
)

// Texture is a GPU texture handle plus its pixel dimensions
type Texture struct {
	TexID  uint32
	Width  int32
	Height int32
}

func (t *Texture) IsValid() bool {
	return t.TexID != 0
}

// Delete releases the GPU texture. Safe to call more than once
func (t *Texture) Delete() {

	if t.TexID == 0 {
		return
	}

	gl.DeleteTextures(1, &t.TexID)
	t.TexID = 0
}

// LoadTexturePNG decodes a PNG, normalizes it to 8-bit NRGBA and uploads
// it as an sRGB texture with mipmaps. The GPU handles the sRGB to linear
// conversion on sampling
func LoadTexturePNG(path string) (Texture, error) {

	f, err := os.Open(path)
	if err != nil {
		return Texture{}, fmt.Errorf("failed to open texture file '%s'. Err: %w", path, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return Texture{}, fmt.Errorf("failed to decode texture file '%s'. Err: %w", path, err)
	}

	nrgba := prism.ConvertImageToNRGBA(img, runtime.NumCPU())
	width := int32(nrgba.Rect.Dx())
	height := int32(nrgba.Rect.Dy())

	tex := Texture{Width: width, Height: height}
	gl.GenTextures(1, &tex.TexID)
	if tex.TexID == 0 {
		return Texture{}, fmt.Errorf("failed to create OpenGL texture for '%s'. OpenGl Error=%d", path, gl.GetError())
	}

	gl.BindTexture(gl.TEXTURE_2D, tex.TexID)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.SRGB8_ALPHA8, width, height, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(&nrgba.Pix[0]))
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return tex, nil
}
