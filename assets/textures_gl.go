package assets

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// GLTextures creates, binds and deletes OpenGL 2D textures
type GLTextures struct {
}

func (gt *GLTextures) Create(img *Image) (uint32, error) {

	var internalFormat int32
	var pixelFormat uint32

	switch img.Channels {
	case 3:
		internalFormat = gl.RGB8
		pixelFormat = gl.RGB
	case 4:
		internalFormat = gl.RGBA8
		pixelFormat = gl.RGBA
	default:
		return 0, fmt.Errorf("texture '%s' has %d channels: %w", img.Path, img.Channels, ErrUnsupportedChannels)
	}

	var texId uint32
	gl.GenTextures(1, &texId)
	if texId == 0 {
		return 0, fmt.Errorf("failed to create OpenGL texture for '%s'", img.Path)
	}

	gl.BindTexture(gl.TEXTURE_2D, texId)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	gl.TexImage2D(gl.TEXTURE_2D, 0, internalFormat, img.Width, img.Height, 0, pixelFormat, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return texId, nil
}

// Bind attaches the texture to the given texture unit
func (gt *GLTextures) Bind(slot int, texId uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(slot))
	gl.BindTexture(gl.TEXTURE_2D, texId)
}

func (gt *GLTextures) Delete(texId uint32) {
	gl.DeleteTextures(1, &texId)
}
