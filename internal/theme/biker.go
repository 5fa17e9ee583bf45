package theme

import "fmt"

// Color is an RGBA color used for the flat-shaded rider fallbacks.
type Color struct {
	R, G, B, A uint8
}

// RGBA builds an opaque-or-not color from channel values.
func RGBA(r, g, b, a uint8) Color { return Color{R: r, G: g, B: b, A: a} }

// Hex returns the #rrggbb form, dropping alpha. Terminal renderers take
// colors in this form.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Rider part sprite names. A theme file provides one BikerPart sprite per
// name; the ghost uses its own set so it can be drawn washed out.
const (
	PartPlayerBody     = "PlayerBikerBody"
	PartPlayerFront    = "PlayerBikerFront"
	PartPlayerRear     = "PlayerBikerRear"
	PartPlayerWheel    = "PlayerBikerWheel"
	PartPlayerLowerArm = "PlayerLowerArm"
	PartPlayerLowerLeg = "PlayerLowerLeg"
	PartPlayerTorso    = "PlayerTorso"
	PartPlayerUpperArm = "PlayerUpperArm"
	PartPlayerUpperLeg = "PlayerUpperLeg"

	PartGhostBody     = "GhostBikerBody"
	PartGhostFront    = "GhostBikerFront"
	PartGhostRear     = "GhostBikerRear"
	PartGhostWheel    = "GhostBikerWheel"
	PartGhostLowerArm = "GhostLowerArm"
	PartGhostLowerLeg = "GhostLowerLeg"
	PartGhostTorso    = "GhostTorso"
	PartGhostUpperArm = "GhostUpperArm"
	PartGhostUpperLeg = "GhostUpperLeg"
)

// BikerTheme bundles the sprite names and fallback colors of one rider
// look. Sprites resolve lazily against the owning theme, so a bundle
// built before the theme file is loaded still works afterwards.
type BikerTheme struct {
	theme *Theme

	body     string
	front    string
	rear     string
	wheel    string
	lowerArm string
	lowerLeg string
	torso    string
	upperArm string
	upperLeg string

	uglyRiderColor Color
	uglyWheelColor Color

	lowRiderColor Color
	lowFillColor  Color
	lowWheelColor Color

	ghostEffect bool
}

func newPlayerBikerTheme(t *Theme, ghostEffect bool) *BikerTheme {
	return &BikerTheme{
		theme:    t,
		body:     PartPlayerBody,
		front:    PartPlayerFront,
		rear:     PartPlayerRear,
		wheel:    PartPlayerWheel,
		lowerArm: PartPlayerLowerArm,
		lowerLeg: PartPlayerLowerLeg,
		torso:    PartPlayerTorso,
		upperArm: PartPlayerUpperArm,
		upperLeg: PartPlayerUpperLeg,

		uglyRiderColor: RGBA(0, 255, 0, 255),
		uglyWheelColor: RGBA(255, 0, 0, 255),

		lowRiderColor: RGBA(0, 255, 0, 255),
		lowFillColor:  RGBA(0, 100, 0, 255),
		lowWheelColor: RGBA(255, 0, 0, 255),

		ghostEffect: ghostEffect,
	}
}

func newGhostBikerTheme(t *Theme) *BikerTheme {
	return &BikerTheme{
		theme:    t,
		body:     PartGhostBody,
		front:    PartGhostFront,
		rear:     PartGhostRear,
		wheel:    PartGhostWheel,
		lowerArm: PartGhostLowerArm,
		lowerLeg: PartGhostLowerLeg,
		torso:    PartGhostTorso,
		upperArm: PartGhostUpperArm,
		upperLeg: PartGhostUpperLeg,

		uglyRiderColor: RGBA(150, 150, 150, 255),
		uglyWheelColor: RGBA(150, 150, 150, 255),

		lowRiderColor: RGBA(150, 150, 150, 255),
		lowFillColor:  RGBA(90, 90, 90, 255),
		lowWheelColor: RGBA(150, 150, 150, 255),

		ghostEffect: true,
	}
}

func (b *BikerTheme) part(name string) (Sprite, bool) {
	return b.theme.Sprite(SpriteBikerPart, name)
}

func (b *BikerTheme) Body() (Sprite, bool)     { return b.part(b.body) }
func (b *BikerTheme) Front() (Sprite, bool)    { return b.part(b.front) }
func (b *BikerTheme) Rear() (Sprite, bool)     { return b.part(b.rear) }
func (b *BikerTheme) Wheel() (Sprite, bool)    { return b.part(b.wheel) }
func (b *BikerTheme) LowerArm() (Sprite, bool) { return b.part(b.lowerArm) }
func (b *BikerTheme) LowerLeg() (Sprite, bool) { return b.part(b.lowerLeg) }
func (b *BikerTheme) Torso() (Sprite, bool)    { return b.part(b.torso) }
func (b *BikerTheme) UpperArm() (Sprite, bool) { return b.part(b.upperArm) }
func (b *BikerTheme) UpperLeg() (Sprite, bool) { return b.part(b.upperLeg) }

// PartNames returns every sprite name the bundle references, in draw order.
func (b *BikerTheme) PartNames() []string {
	return []string{
		b.body, b.front, b.rear, b.wheel,
		b.lowerArm, b.lowerLeg, b.torso, b.upperArm, b.upperLeg,
	}
}

func (b *BikerTheme) UglyRiderColor() Color { return b.uglyRiderColor }
func (b *BikerTheme) UglyWheelColor() Color { return b.uglyWheelColor }
func (b *BikerTheme) LowRiderColor() Color  { return b.lowRiderColor }
func (b *BikerTheme) LowFillColor() Color   { return b.lowFillColor }
func (b *BikerTheme) LowWheelColor() Color  { return b.lowWheelColor }
func (b *BikerTheme) GhostEffect() bool     { return b.ghostEffect }
