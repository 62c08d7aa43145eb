package scene

import (
	"github.com/AlanChumsawang/3d-rendered-scene/meshes"
	"github.com/bloeys/gglm/gglm"
)

// Appearance is the surface state pushed before an object is drawn:
// either a flat RGBA color, or a texture tag with a UV tiling scale
type Appearance struct {
	UseTexture bool
	Color      gglm.Vec4
	TextureTag string
	UVScale    gglm.Vec2
}

func ColorAppearance(r, g, b, a float32) Appearance {
	return Appearance{
		Color: gglm.NewVec4(r, g, b, a),
	}
}

func TexturedAppearance(textureTag string, uvScaleX, uvScaleY float32) Appearance {
	return Appearance{
		UseTexture: true,
		TextureTag: textureTag,
		UVScale:    gglm.NewVec2(uvScaleX, uvScaleY),
	}
}

// RenderObject fully describes one draw: where the object sits, what its
// surface looks like, which material lights it, and which mesh to draw.
// MaterialTag may be empty for objects that keep the previous material.
type RenderObject struct {
	Name string

	Shape       meshes.Shape
	Transform   Transform
	Appearance  Appearance
	MaterialTag string
}

// DefaultObjects is the fixed scene: a wooden table carrying a basketball,
// a laptop and a coffee mug, in front of a wall with a window
func DefaultObjects() []RenderObject {

	return []RenderObject{
		{
			Name:  "table",
			Shape: meshes.ShapeBox,
			Transform: Transform{
				Scale:    gglm.NewVec3(40, 6, 20),
				Position: gglm.NewVec3(4, -3, 0),
			},
			Appearance:  TexturedAppearance("table", 1, 1),
			MaterialTag: "wood",
		},
		{
			Name:  "ball",
			Shape: meshes.ShapeSphere,
			Transform: Transform{
				Scale:    gglm.NewVec3(4, 4, 4),
				Position: gglm.NewVec3(-7, 4, 5),
			},
			Appearance:  TexturedAppearance("ball", 1, 1),
			MaterialTag: "ball",
		},
		{
			Name:  "ball seam horizontal",
			Shape: meshes.ShapeTorus,
			Transform: Transform{
				Scale:       gglm.NewVec3(3.4, 3.4, 0.5),
				RotationDeg: gglm.NewVec3(90, 0, 0),
				Position:    gglm.NewVec3(-7, 4, 5),
			},
			Appearance: ColorAppearance(0, 0, 0, 1),
		},
		{
			Name:  "ball seam diagonal",
			Shape: meshes.ShapeTorus,
			Transform: Transform{
				Scale:       gglm.NewVec3(3.4, 3.4, 0.1),
				RotationDeg: gglm.NewVec3(135, 0, 0),
				Position:    gglm.NewVec3(-7, 4, 5),
			},
			Appearance: ColorAppearance(0, 0, 0, 1),
		},
		{
			Name:  "ball seam counter diagonal",
			Shape: meshes.ShapeTorus,
			Transform: Transform{
				Scale:       gglm.NewVec3(3.4, 3.4, 0.1),
				RotationDeg: gglm.NewVec3(45, 0, 0),
				Position:    gglm.NewVec3(-7, 4, 5),
			},
			Appearance: ColorAppearance(0, 0, 0, 1),
		},
		{
			Name:  "wall",
			Shape: meshes.ShapeBox,
			Transform: Transform{
				Scale:       gglm.NewVec3(40, 1, 40),
				RotationDeg: gglm.NewVec3(90, 0, 0),
				Position:    gglm.NewVec3(4, 15, -8),
			},
			Appearance: TexturedAppearance("wall", 1, 1),
		},
		{
			Name:  "window",
			Shape: meshes.ShapeBox,
			Transform: Transform{
				Scale:       gglm.NewVec3(30, 1, 30),
				RotationDeg: gglm.NewVec3(90, 0, 0),
				Position:    gglm.NewVec3(4, 15, -7),
			},
			Appearance: TexturedAppearance("window", 1, 1),
		},
		{
			Name:  "laptop base",
			Shape: meshes.ShapeBox,
			Transform: Transform{
				Scale:    gglm.NewVec3(10, 2, 5),
				Position: gglm.NewVec3(5, 0, 5),
			},
			Appearance:  ColorAppearance(0.2, 0.2, 0.2, 1),
			MaterialTag: "metal",
		},
		{
			Name:  "laptop keyboard",
			Shape: meshes.ShapeBox,
			Transform: Transform{
				Scale:    gglm.NewVec3(8, 0.2, 2.5),
				Position: gglm.NewVec3(5, 1, 6),
			},
			Appearance:  ColorAppearance(1, 0.9, 0.9, 1),
			MaterialTag: "wood",
		},
		{
			Name:  "laptop lid",
			Shape: meshes.ShapeBox,
			Transform: Transform{
				Scale:       gglm.NewVec3(10, 1, 10),
				RotationDeg: gglm.NewVec3(90, 0, 0),
				Position:    gglm.NewVec3(5, 5, 2.5),
			},
			Appearance:  ColorAppearance(0.2, 0.2, 0.2, 1),
			MaterialTag: "metal",
		},
		{
			Name:  "laptop screen",
			Shape: meshes.ShapeBox,
			Transform: Transform{
				Scale:       gglm.NewVec3(8, 0.1, 6),
				RotationDeg: gglm.NewVec3(90, 0, 0),
				Position:    gglm.NewVec3(5, 6, 3),
			},
			Appearance: ColorAppearance(0, 0, 0, 1),
		},
		{
			Name:  "mug body",
			Shape: meshes.ShapeCylinder,
			Transform: Transform{
				Scale:    gglm.NewVec3(2, 5, 2),
				Position: gglm.NewVec3(15, 0, 3),
			},
			Appearance:  ColorAppearance(0.43, 0.4, 0.49, 1),
			MaterialTag: "mug",
		},
		{
			Name:  "mug handle",
			Shape: meshes.ShapeTorus,
			Transform: Transform{
				Scale:    gglm.NewVec3(1.5, 1.5, 3),
				Position: gglm.NewVec3(18, 2, 3),
			},
			Appearance:  ColorAppearance(0.43, 0.4, 0.49, 1),
			MaterialTag: "mug",
		},
	}
}
