package scene_test

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/AlanChumsawang/3d-rendered-scene/assets"
	"github.com/AlanChumsawang/3d-rendered-scene/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTextureDevice struct {
	nextId  uint32
	created []string
	bound   map[int]uint32
	deleted []uint32
}

func newFakeTextureDevice() *fakeTextureDevice {
	return &fakeTextureDevice{bound: make(map[int]uint32)}
}

func (d *fakeTextureDevice) Create(img *assets.Image) (uint32, error) {
	d.nextId++
	d.created = append(d.created, img.Path)
	return d.nextId, nil
}

func (d *fakeTextureDevice) Bind(slot int, texId uint32) {
	d.bound[slot] = texId
}

func (d *fakeTextureDevice) Delete(texId uint32) {
	d.deleted = append(d.deleted, texId)
}

// writeTestPNG writes a tiny image with varying alpha so it decodes as RGBA
func writeTestPNG(t *testing.T, name string) string {

	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{G: 255, A: 200})
	img.SetNRGBA(0, 1, color.NRGBA{B: 255, A: 150})
	img.SetNRGBA(1, 1, color.NRGBA{R: 255, G: 255, A: 100})

	path := filepath.Join(t.TempDir(), name)

	file, err := os.Create(path)
	require.NoError(t, err)
	defer file.Close()

	require.NoError(t, png.Encode(file, img))
	return path
}

func TestTextureRegistrySlotsFollowInsertionOrder(t *testing.T) {

	device := newFakeTextureDevice()
	registry := scene.NewTextureRegistry(device)

	path := writeTestPNG(t, "tex.png")

	tags := []string{"table", "wall", "ball", "window"}
	for _, tag := range tags {
		require.NoError(t, registry.Load(path, tag))
	}

	require.Equal(t, len(tags), registry.Count())

	for want, tag := range tags {
		assert.Equal(t, want, registry.FindSlot(tag))
	}

	assert.Equal(t, -1, registry.FindSlot("missing"))

	handle, ok := registry.FindHandle("ball")
	require.True(t, ok)
	assert.Equal(t, uint32(3), handle)

	_, ok = registry.FindHandle("missing")
	assert.False(t, ok)
}

func TestTextureRegistryLoadMissingFile(t *testing.T) {

	device := newFakeTextureDevice()
	registry := scene.NewTextureRegistry(device)

	err := registry.Load(filepath.Join(t.TempDir(), "nope.png"), "ghost")
	require.Error(t, err)

	assert.Equal(t, 0, registry.Count())
	assert.Equal(t, -1, registry.FindSlot("ghost"))
}

func TestTextureRegistryCapacity(t *testing.T) {

	device := newFakeTextureDevice()
	registry := scene.NewTextureRegistry(device)

	path := writeTestPNG(t, "tex.png")

	for i := 0; i < scene.MaxTextures; i++ {
		require.NoError(t, registry.Load(path, fmt.Sprintf("tex-%d", i)))
	}

	err := registry.Load(path, "one-too-many")
	require.ErrorIs(t, err, scene.ErrTextureRegistryFull)

	assert.Equal(t, scene.MaxTextures, registry.Count())
	assert.Equal(t, -1, registry.FindSlot("one-too-many"))
}

func TestTextureRegistryBindAll(t *testing.T) {

	device := newFakeTextureDevice()
	registry := scene.NewTextureRegistry(device)

	path := writeTestPNG(t, "tex.png")

	require.NoError(t, registry.Load(path, "a"))
	require.NoError(t, registry.Load(path, "b"))

	registry.BindAll()

	require.Len(t, device.bound, 2)
	assert.Equal(t, uint32(1), device.bound[0])
	assert.Equal(t, uint32(2), device.bound[1])

	// Binding again re-binds the same slots and leaves nothing else bound
	registry.BindAll()
	assert.Len(t, device.bound, 2)
}

func TestTextureRegistryReleaseAllDeletesOnce(t *testing.T) {

	device := newFakeTextureDevice()
	registry := scene.NewTextureRegistry(device)

	path := writeTestPNG(t, "tex.png")

	require.NoError(t, registry.Load(path, "a"))
	require.NoError(t, registry.Load(path, "b"))

	registry.ReleaseAll()

	assert.Equal(t, []uint32{1, 2}, device.deleted)
	assert.Equal(t, 0, registry.Count())
	assert.Equal(t, -1, registry.FindSlot("a"))

	// A second release must not delete anything again
	registry.ReleaseAll()
	assert.Equal(t, []uint32{1, 2}, device.deleted)
}
