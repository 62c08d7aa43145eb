package scene

import (
	"errors"
	"fmt"

	"github.com/AlanChumsawang/3d-rendered-scene/assets"
)

// MaxTextures is the number of texture slots the registry manages.
// Slot i is bound to GPU texture unit i, so the cap matches the
// minimum number of texture units OpenGL guarantees.
const MaxTextures = 16

var ErrTextureRegistryFull = errors.New("texture registry is full")

// TextureDevice is the GPU side of texture management.
// *assets.GLTextures satisfies it; tests substitute a fake.
type TextureDevice interface {
	Create(img *assets.Image) (uint32, error)
	Bind(slot int, texId uint32)
	Delete(texId uint32)
}

type TextureEntry struct {
	Tag string
	Id  uint32
}

// TextureRegistry owns up to MaxTextures GPU textures and maps string tags
// to the slot (and texture unit) each texture was loaded into. Slots are
// assigned in insertion order and never move.
type TextureRegistry struct {
	device  TextureDevice
	entries []TextureEntry
}

func NewTextureRegistry(device TextureDevice) *TextureRegistry {
	return &TextureRegistry{
		device:  device,
		entries: make([]TextureEntry, 0, MaxTextures),
	}
}

// Load reads the image file, uploads it to the GPU and records it under
// the given tag at the next free slot
func (tr *TextureRegistry) Load(path, tag string) error {

	if len(tr.entries) >= MaxTextures {
		return fmt.Errorf("can not load texture '%s' from '%s': %w", tag, path, ErrTextureRegistryFull)
	}

	img, err := assets.LoadImage(path)
	if err != nil {
		return err
	}

	texId, err := tr.device.Create(&img)
	if err != nil {
		return err
	}

	tr.entries = append(tr.entries, TextureEntry{Tag: tag, Id: texId})
	return nil
}

// FindSlot returns the slot of the texture with the given tag, or -1 if
// no texture has that tag. First match wins.
func (tr *TextureRegistry) FindSlot(tag string) int {

	for i := 0; i < len(tr.entries); i++ {
		if tr.entries[i].Tag == tag {
			return i
		}
	}

	return -1
}

// FindHandle returns the GPU texture handle stored under the given tag
func (tr *TextureRegistry) FindHandle(tag string) (uint32, bool) {

	slot := tr.FindSlot(tag)
	if slot == -1 {
		return 0, false
	}

	return tr.entries[slot].Id, true
}

func (tr *TextureRegistry) Count() int {
	return len(tr.entries)
}

// BindAll attaches every loaded texture to the texture unit matching its
// slot, in slot order. Called once after loading; calling it again is harmless.
func (tr *TextureRegistry) BindAll() {
	for i := 0; i < len(tr.entries); i++ {
		tr.device.Bind(i, tr.entries[i].Id)
	}
}

// ReleaseAll deletes every GPU texture and empties the registry.
// Safe to call more than once; entries are only deleted on the first call.
func (tr *TextureRegistry) ReleaseAll() {

	for i := 0; i < len(tr.entries); i++ {
		tr.device.Delete(tr.entries[i].Id)
	}

	tr.entries = tr.entries[:0]
}
