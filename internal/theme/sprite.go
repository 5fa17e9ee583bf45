// Package theme parses XML theme descriptors into typed sprite records,
// tracks the asset files a theme requires (with checksums for download
// verification), and resolves textures lazily through a texture manager.
package theme

import (
	"fmt"
	"path"
)

// SpriteType tags the sprite variants a theme can declare.
type SpriteType int

const (
	SpriteBikerPart SpriteType = iota
	SpriteDecoration
	SpriteEffect
	SpriteEdgeEffect
	SpriteFont
	SpriteMisc
	SpriteTexture
	SpriteAnimationTexture
	SpriteUI
)

// String returns the type tag used in theme files and log output.
func (t SpriteType) String() string {
	switch t {
	case SpriteBikerPart:
		return "BikerPart"
	case SpriteDecoration:
		return "Decoration"
	case SpriteEffect:
		return "Effect"
	case SpriteEdgeEffect:
		return "EdgeEffect"
	case SpriteFont:
		return "Font"
	case SpriteMisc:
		return "Misc"
	case SpriteTexture:
		return "Texture"
	case SpriteAnimationTexture:
		return "AnimationTexture"
	case SpriteUI:
		return "UI"
	default:
		return "Unknown"
	}
}

// FileDir returns the data directory holding assets of this sprite type.
func (t SpriteType) FileDir() string {
	switch t {
	case SpriteBikerPart:
		return "Textures/Riders"
	case SpriteDecoration:
		return "Textures/Sprites"
	case SpriteEffect:
		return "Textures/Effects"
	case SpriteEdgeEffect:
		return "Textures/Effects"
	case SpriteFont:
		return "Textures/Fonts"
	case SpriteMisc:
		return "Textures/Misc"
	case SpriteTexture, SpriteAnimationTexture:
		return "Textures/Textures"
	case SpriteUI:
		return "Textures/UI"
	default:
		return "Textures"
	}
}

// MusicsDir and SoundsDir hold a theme's audio assets.
const (
	MusicsDir = "Musics"
	SoundsDir = "Sounds"
)

// BlendMode selects how a sprite is composited.
type BlendMode int

const (
	BlendDefault BlendMode = iota
	BlendAdd
)

// ParseBlendMode maps the theme file attribute to a blend mode.
// Anything but "add" is the default mode.
func ParseBlendMode(s string) BlendMode {
	if s == "add" {
		return BlendAdd
	}
	return BlendDefault
}

// String returns the theme file form of the blend mode.
func (m BlendMode) String() string {
	if m == BlendAdd {
		return "add"
	}
	return "default"
}

// Sprite is a renderable asset record of a specific variant.
// Sprites are created during theme load and dropped on reload.
type Sprite interface {
	// Type returns the sprite variant tag.
	Type() SpriteType

	// Name returns the sprite name, unique within (type, theme).
	Name() string

	// Order returns the load position within the theme.
	Order() int

	// Blend returns the compositing mode.
	Blend() BlendMode

	// Persistent reports whether the sprite's textures survive
	// registration-stage purges (UI chrome, fonts, biker parts).
	Persistent() bool

	// TextureFile returns the data-relative path of the texture backing
	// the sprite's current frame.
	TextureFile() string

	// Texture resolves the current frame's texture through the manager,
	// loading and caching it on first use.
	Texture(tm *TextureManager) *Texture

	// Invalidate drops all cached texture handles so the next Texture
	// call reloads them.
	Invalidate()

	// LoadTextures eagerly resolves every texture of the sprite.
	LoadTextures(tm *TextureManager)
}

// spriteBase carries the fields shared by all sprite variants.
type spriteBase struct {
	typ        SpriteType
	name       string
	order      int
	blend      BlendMode
	persistent bool
}

func (s *spriteBase) setOrder(n int) { s.order = n }

func (s *spriteBase) Type() SpriteType { return s.typ }
func (s *spriteBase) Name() string     { return s.name }
func (s *spriteBase) Order() int       { return s.order }
func (s *spriteBase) Blend() BlendMode { return s.blend }
func (s *spriteBase) Persistent() bool { return s.persistent }

// FrameSprite is a sprite backed by a single texture file.
type FrameSprite struct {
	spriteBase
	fileName string
	texture  *Texture
}

// newFrameSprite builds a single-file sprite of the given variant.
// BikerPart, Font, Misc and UI sprites are persistent.
func newFrameSprite(typ SpriteType, name, fileName string) *FrameSprite {
	persistent := false
	switch typ {
	case SpriteBikerPart, SpriteFont, SpriteMisc, SpriteUI:
		persistent = true
	}

	return &FrameSprite{
		spriteBase: spriteBase{typ: typ, name: name, persistent: persistent},
		fileName:   fileName,
	}
}

// FileName returns the texture file name relative to the type directory.
func (s *FrameSprite) FileName() string { return s.fileName }

// TextureFile returns the data-relative path of the backing texture.
func (s *FrameSprite) TextureFile() string {
	return path.Join(s.typ.FileDir(), s.fileName)
}

// Texture resolves the backing texture, loading it on first use.
// Non-persistent textures are stamped with the manager's current
// registration stage on every call so purges see them as in use.
func (s *FrameSprite) Texture(tm *TextureManager) *Texture {
	if s.texture == nil {
		s.texture = tm.Load(s.TextureFile(), s.persistent)
	}
	if !s.persistent {
		tm.Stamp(s.texture)
	}
	return s.texture
}

// Invalidate drops the cached texture handle.
func (s *FrameSprite) Invalidate() { s.texture = nil }

// LoadTextures eagerly resolves the backing texture.
func (s *FrameSprite) LoadTextures(tm *TextureManager) { s.Texture(tm) }

// EdgeSprite is a frame sprite drawn along level edges; it carries a
// scale and a depth in addition to the texture.
type EdgeSprite struct {
	FrameSprite
	scale float64
	depth float64
}

func newEdgeSprite(name, fileName string, scale, depth float64) *EdgeSprite {
	return &EdgeSprite{
		FrameSprite: FrameSprite{
			spriteBase: spriteBase{typ: SpriteEdgeEffect, name: name},
			fileName:   fileName,
		},
		scale: scale,
		depth: depth,
	}
}

// Scale returns the edge texture scale factor.
func (s *EdgeSprite) Scale() float64 { return s.scale }

// Depth returns the edge drawing depth.
func (s *EdgeSprite) Depth() float64 { return s.depth }

func (s *EdgeSprite) String() string {
	return fmt.Sprintf("EdgeEffect %q scale=%g depth=%g", s.name, s.scale, s.depth)
}
