package theme

import (
	"fmt"
	"path"
	"strings"

	"github.com/charmbracelet/log"
)

// Element-level animation defaults; frames inherit them unless they set
// their own attributes.
const (
	defaultCenter = 0.5
	defaultSize   = 1.0
	defaultDelay  = 0.1
)

func init() {
	RegisterParser("BikerPart", parseSimple(SpriteBikerPart))
	RegisterParser("Effect", parseSimple(SpriteEffect))
	RegisterParser("Font", parseSimple(SpriteFont))
	RegisterParser("Misc", parseSimple(SpriteMisc))
	RegisterParser("UI", parseSimple(SpriteUI))
	RegisterParser("Texture", parseTexture)
	RegisterParser("Entity", parseEntity)
	RegisterParser("EdgeEffect", parseEdgeEffect)
}

// parseSimple builds a parser for single-file sprites of a fixed type.
func parseSimple(typ SpriteType) SpriteParser {
	return func(t *Theme, el spriteXML) {
		if el.Name == "" {
			log.Warn("sprite with no name", "type", typ)
			return
		}
		if el.File == "" {
			log.Warn("sprite with no file", "type", typ, "name", el.Name)
			return
		}

		filePath := path.Join(typ.FileDir(), el.File)
		if !t.requireFile(filePath, el.Sum) {
			return
		}

		t.addSprite(newFrameSprite(typ, el.Name, el.File))
	}
}

// parseTexture handles the Texture tag, which is a plain sprite unless a
// fileBase attribute turns it into an animated texture. With animations
// disabled, animated textures load as static sprites.
func parseTexture(t *Theme, el spriteXML) {
	if el.FileBase == "" || t.DisableAnimations {
		parseSimple(SpriteTexture)(t, el)
		return
	}
	parseAnimation(t, el, true)
}

// parseEntity handles the Entity tag: an animation when fileBase is set,
// otherwise a decoration (a single-frame animation with a blend mode).
func parseEntity(t *Theme, el spriteXML) {
	if el.FileBase != "" {
		parseAnimation(t, el, false)
		return
	}
	parseDecoration(t, el)
}

// parseAnimation builds a multi-frame sprite from fileBase/fileExtension
// plus frame children. Frame files beyond the two-digit numbering range
// are ignored.
func parseAnimation(t *Theme, el spriteXML, isTexture bool) {
	if el.Name == "" {
		log.Warn("animation with no name")
		return
	}
	if el.FileBase == "" {
		log.Warn("animation with no fileBase", "name", el.Name)
		return
	}
	if el.FileExtension == "" {
		log.Warn("animation with no fileExtension", "name", el.Name)
		return
	}

	centerX := attrFloat(el.CenterX, defaultCenter)
	centerY := attrFloat(el.CenterY, defaultCenter)
	width := attrFloat(el.Width, defaultSize)
	height := attrFloat(el.Height, defaultSize)
	delay := attrFloat(el.Delay, defaultDelay)

	anim := newAnimationSprite(el.Name, el.FileBase, el.FileExtension, isTexture)
	t.addSprite(anim)

	for n, frame := range el.Frames {
		if n >= MaxAnimationFrames {
			break
		}

		// Frame assets on disk are always numbered, even when a
		// single-frame sprite ends up resolving fileBase.ext.
		numbered := path.Join(anim.typ.FileDir(),
			fmt.Sprintf("%s%02d.%s", anim.fileBase, n, anim.fileExt))
		if !t.requireFile(numbered, frame.Sum) {
			continue
		}

		anim.AddFrame(
			attrFloat(frame.CenterX, centerX),
			attrFloat(frame.CenterY, centerY),
			attrFloat(frame.Width, width),
			attrFloat(frame.Height, height),
			attrFloat(frame.Delay, delay),
		)
	}
}

// parseDecoration builds a single-frame animation from a plain file
// attribute, carrying placement and blend mode.
func parseDecoration(t *Theme, el spriteXML) {
	if el.Name == "" {
		log.Warn("decoration with no name")
		return
	}
	if el.File == "" {
		log.Warn("decoration with no file", "name", el.Name)
		return
	}

	// Split the file name to mimic an animation sprite.
	fileBase := el.File
	fileExt := ""
	if dot := strings.LastIndexByte(el.File, '.'); dot >= 0 {
		fileBase = el.File[:dot]
		fileExt = el.File[dot+1:]
	}

	anim := newAnimationSprite(el.Name, fileBase, fileExt, false)
	anim.blend = ParseBlendMode(el.BlendModeAttr)
	t.addSprite(anim)

	filePath := path.Join(SpriteDecoration.FileDir(), el.File)
	if !t.requireFile(filePath, el.Sum) {
		return
	}

	anim.AddFrame(
		attrFloat(el.CenterX, defaultCenter),
		attrFloat(el.CenterY, defaultCenter),
		attrFloat(el.Width, defaultSize),
		attrFloat(el.Height, defaultSize),
		defaultDelay,
	)
}

// parseEdgeEffect builds an edge sprite; scale and depth are mandatory.
func parseEdgeEffect(t *Theme, el spriteXML) {
	if el.Name == "" {
		log.Warn("edge effect with no name")
		return
	}
	if el.File == "" {
		log.Warn("edge effect with no file", "name", el.Name)
		return
	}
	if el.Scale == "" {
		log.Warn("edge effect with no scale", "name", el.Name)
		return
	}
	if el.Depth == "" {
		log.Warn("edge effect with no depth", "name", el.Name)
		return
	}

	filePath := path.Join(SpriteEdgeEffect.FileDir(), el.File)
	if !t.requireFile(filePath, el.Sum) {
		return
	}

	t.addSprite(newEdgeSprite(el.Name, el.File,
		attrFloat(el.Scale, 1), attrFloat(el.Depth, 0)))
}
