package theme

import (
	"encoding/xml"
	"fmt"
	"os"
	"path"
	"strconv"

	"github.com/charmbracelet/log"
)

// File records one asset a theme depends on: its data-relative path and
// an md5 sum used for integrity and download verification. An empty sum
// means "unverified".
type File struct {
	Path string
	Sum  string
}

// AudioRef is a named music or sound asset.
type AudioRef struct {
	name     string
	fileName string
	dir      string
}

// Name returns the reference name used by levels and scripts.
func (a AudioRef) Name() string { return a.name }

// FileName returns the file name relative to the audio directory.
func (a AudioRef) FileName() string { return a.fileName }

// FilePath returns the data-relative asset path.
func (a AudioRef) FilePath() string { return path.Join(a.dir, a.fileName) }

// Theme is a named collection of sprites, musics and sounds defining the
// game's visual and audio skin.
type Theme struct {
	name     string
	sprites  []Sprite
	musics   []AudioRef
	sounds   []AudioRef
	required []File

	player    *BikerTheme
	netPlayer *BikerTheme
	ghost     *BikerTheme

	// DisableAnimations loads animated textures as static sprites.
	DisableAnimations bool
}

// New creates an empty theme with the standard biker bundles attached.
func New() *Theme {
	t := &Theme{}
	t.player = newPlayerBikerTheme(t, false)
	t.netPlayer = newPlayerBikerTheme(t, false)
	t.ghost = newGhostBikerTheme(t)
	return t
}

// XML document model of a theme descriptor.

type themeXML struct {
	XMLName xml.Name    `xml:"theme"`
	Name    string      `xml:"name,attr"`
	Sprites []spriteXML `xml:"sprite"`
	Musics  []audioXML  `xml:"music"`
	Sounds  []audioXML  `xml:"sound"`
}

type spriteXML struct {
	Type          string     `xml:"type,attr"`
	Name          string     `xml:"name,attr"`
	File          string     `xml:"file,attr"`
	FileBase      string     `xml:"fileBase,attr"`
	FileExtension string     `xml:"fileExtension,attr"`
	BlendModeAttr string     `xml:"blendmode,attr"`
	Sum           string     `xml:"sum,attr"`
	CenterX       string     `xml:"centerX,attr"`
	CenterY       string     `xml:"centerY,attr"`
	Width         string     `xml:"width,attr"`
	Height        string     `xml:"height,attr"`
	Delay         string     `xml:"delay,attr"`
	Scale         string     `xml:"scale,attr"`
	Depth         string     `xml:"depth,attr"`
	Frames        []frameXML `xml:"frame"`
}

type frameXML struct {
	CenterX string `xml:"centerX,attr"`
	CenterY string `xml:"centerY,attr"`
	Width   string `xml:"width,attr"`
	Height  string `xml:"height,attr"`
	Delay   string `xml:"delay,attr"`
	Sum     string `xml:"sum,attr"`
}

// attrFloat parses an optional float attribute, falling back to def when
// the attribute is absent or malformed.
func attrFloat(s string, def float64) float64 {
	if s == "" {
		return def
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return v
}

// Load parses the XML theme descriptor at the given path, replacing any
// previously loaded content. Sprites of unknown type or with missing
// mandatory attributes are logged and skipped; a descriptor without a
// theme name is an error.
func (t *Theme) Load(themePath string) error {
	log.Info("loading theme", "file", themePath)

	data, err := os.ReadFile(themePath)
	if err != nil {
		return fmt.Errorf("theme: cannot read %s: %w", themePath, err)
	}

	var doc themeXML
	if err := xml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("theme: cannot parse %s: %w", themePath, err)
	}

	if doc.Name == "" {
		return fmt.Errorf("theme: %s: unnamed theme", themePath)
	}

	// Reload: drop everything from the previous descriptor.
	t.name = doc.Name
	t.sprites = nil
	t.musics = nil
	t.sounds = nil
	t.required = nil

	for _, el := range doc.Sprites {
		if el.Type == "" {
			continue
		}

		parser, ok := parserFor(el.Type)
		if !ok {
			log.Warn("unknown sprite type in theme file", "type", el.Type, "theme", t.name)
			continue
		}
		parser(t, el)
	}

	for _, el := range doc.Musics {
		t.addAudio(&t.musics, MusicsDir, el)
	}
	for _, el := range doc.Sounds {
		t.addAudio(&t.sounds, SoundsDir, el)
	}

	return nil
}

type audioXML struct {
	Name string `xml:"name,attr"`
	File string `xml:"file,attr"`
	Sum  string `xml:"sum,attr"`
}

func (t *Theme) addAudio(list *[]AudioRef, dir string, el audioXML) {
	if el.Name == "" || el.File == "" {
		return
	}

	filePath := path.Join(dir, el.File)
	if isFileOutOfDate(filePath) {
		return
	}

	*list = append(*list, AudioRef{name: el.Name, fileName: el.File, dir: dir})
	t.required = append(t.required, File{Path: filePath, Sum: el.Sum})
}

// isFileOutOfDate filters files that still appear in old theme files for
// compatibility but must neither be tracked nor downloaded.
func isFileOutOfDate(file string) bool {
	switch file {
	case "Textures/UI/NewLevelsAvail.png",
		"Textures/Effects/Sky1.jpg",
		"Textures/Effects/Sky2.jpg",
		"Textures/Effects/Sky2Drift.jpg",
		"Textures/Fonts/MFont.png",
		"Textures/Fonts/SFont.png",
		"Textures/UI/Loading.png":
		return true
	}
	return false
}

// addSprite appends a sprite, assigning its load order.
func (t *Theme) addSprite(s Sprite) {
	if o, ok := s.(interface{ setOrder(int) }); ok {
		o.setOrder(len(t.sprites))
	}
	t.sprites = append(t.sprites, s)
}

// requireFile records an asset dependency unless it is on the
// out-of-date list. Returns whether the file was recorded.
func (t *Theme) requireFile(filePath, sum string) bool {
	if isFileOutOfDate(filePath) {
		return false
	}
	t.required = append(t.required, File{Path: filePath, Sum: sum})
	return true
}

// Name returns the theme name from the descriptor.
func (t *Theme) Name() string { return t.name }

// Sprites returns all sprites in load order.
func (t *Theme) Sprites() []Sprite { return t.sprites }

// RequiredFiles returns the asset dependencies recorded during load.
func (t *Theme) RequiredFiles() []File { return t.required }

// Sprite looks up a sprite by type and name. Lookups fail closed:
// an absent sprite yields (nil, false), never a substitute.
func (t *Theme) Sprite(typ SpriteType, name string) (Sprite, bool) {
	for _, s := range t.sprites {
		if s.Type() == typ && s.Name() == name {
			return s, true
		}
	}
	return nil, false
}

// Musics returns the theme's music references.
func (t *Theme) Musics() []AudioRef { return t.musics }

// Sounds returns the theme's sound references.
func (t *Theme) Sounds() []AudioRef { return t.sounds }

// Music looks up a music reference by name.
func (t *Theme) Music(name string) (AudioRef, error) {
	for _, m := range t.musics {
		if m.name == name {
			return m, nil
		}
	}
	return AudioRef{}, fmt.Errorf("theme: music %q not found", name)
}

// Sound looks up a sound reference by name.
func (t *Theme) Sound(name string) (AudioRef, error) {
	for _, s := range t.sounds {
		if s.name == name {
			return s, nil
		}
	}
	return AudioRef{}, fmt.Errorf("theme: sound %q not found", name)
}

// MusicForKey deterministically picks a music name for an arbitrary key,
// spreading levels without a chosen track across the theme's playlist.
func (t *Theme) MusicForKey(key string) (string, error) {
	if len(t.musics) == 0 {
		return "", fmt.Errorf("theme: no musics loaded")
	}

	hash := 0
	for _, c := range []byte(key) {
		hash += int(c)
	}
	return t.musics[hash%len(t.musics)].name, nil
}

// Player returns the biker bundle used for the local player.
func (t *Theme) Player() *BikerTheme { return t.player }

// NetPlayer returns the biker bundle used for remote players.
func (t *Theme) NetPlayer() *BikerTheme { return t.netPlayer }

// Ghost returns the biker bundle used for replay ghosts.
func (t *Theme) Ghost() *BikerTheme { return t.ghost }
