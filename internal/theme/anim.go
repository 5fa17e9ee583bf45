package theme

import (
	"fmt"
	"path"
)

// MaxAnimationFrames bounds the frame count of an animation sprite; frame
// files are numbered with two digits.
const MaxAnimationFrames = 100

// Frame is one step of an animation sprite: placement, size and how long
// it stays on screen.
type Frame struct {
	CenterX float64
	CenterY float64
	Width   float64
	Height  float64
	Delay   float64

	texture *Texture
}

// AnimationSprite is a sprite backed by an ordered list of frames, each
// with its own texture file named <fileBase><NN>.<ext>. A single-frame
// animation behaves like a static sprite and resolves <fileBase>.<ext>.
type AnimationSprite struct {
	spriteBase
	fileBase string
	fileExt  string

	frames    []*Frame
	current   int
	frameTime float64
	animated  bool // set once a second frame is added
}

// newAnimationSprite builds an animation of decoration or texture kind.
func newAnimationSprite(name, fileBase, fileExt string, isTexture bool) *AnimationSprite {
	typ := SpriteDecoration
	if isTexture {
		typ = SpriteAnimationTexture
	}

	return &AnimationSprite{
		spriteBase: spriteBase{typ: typ, name: name},
		fileBase:   fileBase,
		fileExt:    fileExt,
	}
}

// AddFrame appends a frame. Adding a second frame turns the sprite into
// a running animation.
func (s *AnimationSprite) AddFrame(centerX, centerY, width, height, delay float64) {
	s.frames = append(s.frames, &Frame{
		CenterX: centerX,
		CenterY: centerY,
		Width:   width,
		Height:  height,
		Delay:   delay,
	})
	if len(s.frames) > 1 {
		s.animated = true
	}
}

// Frames returns the ordered frame list.
func (s *AnimationSprite) Frames() []*Frame { return s.frames }

// Animated reports whether the sprite cycles through multiple frames.
func (s *AnimationSprite) Animated() bool { return s.animated }

// CurrentFrame returns the index of the frame currently shown.
func (s *AnimationSprite) CurrentFrame() int {
	if !s.animated {
		return 0
	}
	return s.current
}

// Advance moves the animation according to the wall time in seconds,
// consuming as many frame delays as have elapsed, and returns the
// current frame index. Single-frame sprites never advance.
func (s *AnimationSprite) Advance(now float64) int {
	if !s.animated || len(s.frames) == 0 {
		return 0
	}

	for now > s.frameTime+s.frames[s.current].Delay {
		s.frameTime = now
		s.current++
		if s.current == len(s.frames) {
			s.current = 0
		}
	}

	return s.current
}

// frameFile returns the data-relative texture path of frame n.
func (s *AnimationSprite) frameFile(n int) string {
	if !s.animated {
		return path.Join(s.typ.FileDir(), s.fileBase+"."+s.fileExt)
	}
	return path.Join(s.typ.FileDir(), fmt.Sprintf("%s%02d.%s", s.fileBase, n%MaxAnimationFrames, s.fileExt))
}

// TextureFile returns the data-relative path of the current frame's texture.
func (s *AnimationSprite) TextureFile() string {
	return s.frameFile(s.CurrentFrame())
}

// Texture resolves the current frame's texture, loading it on first use.
func (s *AnimationSprite) Texture(tm *TextureManager) *Texture {
	if len(s.frames) == 0 {
		return nil
	}

	frame := s.frames[s.CurrentFrame()]
	if frame.texture == nil {
		frame.texture = tm.Load(s.TextureFile(), s.persistent)
	}
	if !s.persistent {
		tm.Stamp(frame.texture)
	}
	return frame.texture
}

// Invalidate drops every frame's cached texture handle.
func (s *AnimationSprite) Invalidate() {
	for _, f := range s.frames {
		f.texture = nil
	}
}

// LoadTextures eagerly resolves every frame's texture without moving the
// animation.
func (s *AnimationSprite) LoadTextures(tm *TextureManager) {
	saved := s.current
	for i := range s.frames {
		s.current = i
		s.Texture(tm)
	}
	s.current = saved
}

// Geometry of the current frame. Callers must not ask an empty sprite.

func (s *AnimationSprite) CenterX() float64 { return s.frames[s.CurrentFrame()].CenterX }
func (s *AnimationSprite) CenterY() float64 { return s.frames[s.CurrentFrame()].CenterY }
func (s *AnimationSprite) Width() float64   { return s.frames[s.CurrentFrame()].Width }
func (s *AnimationSprite) Height() float64  { return s.frames[s.CurrentFrame()].Height }
