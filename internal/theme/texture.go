package theme

// Texture is a handle to a loaded texture, keyed by its data-relative
// file path. Actual pixel upload is the renderer's business; the theme
// layer only tracks identity, persistence and liveness.
type Texture struct {
	Name       string
	Persistent bool

	// stage is the registration stage the texture was last seen in.
	// Non-persistent textures not stamped in the current stage are
	// dropped by PurgeStale.
	stage uint64
}

// Stage returns the registration stage the texture was last stamped in.
func (t *Texture) Stage() uint64 { return t.stage }

// TextureManager caches textures by file path. Sprites resolve through
// it lazily; between frames the renderer advances the registration
// stage and purges textures nothing stamped.
type TextureManager struct {
	textures map[string]*Texture
	stage    uint64
}

// NewTextureManager creates an empty texture cache.
func NewTextureManager() *TextureManager {
	return &TextureManager{
		textures: make(map[string]*Texture),
	}
}

// Load returns the texture for the given file path, creating the handle
// on first use. A texture loaded persistent stays persistent even when
// later requested without the flag.
func (tm *TextureManager) Load(name string, persistent bool) *Texture {
	if t, ok := tm.textures[name]; ok {
		if persistent {
			t.Persistent = true
		}
		return t
	}

	t := &Texture{
		Name:       name,
		Persistent: persistent,
		stage:      tm.stage,
	}
	tm.textures[name] = t
	return t
}

// Lookup returns the cached texture for a file path, if any.
func (tm *TextureManager) Lookup(name string) (*Texture, bool) {
	t, ok := tm.textures[name]
	return t, ok
}

// Stamp marks the texture as used in the current registration stage.
func (tm *TextureManager) Stamp(t *Texture) {
	t.stage = tm.stage
}

// Stage returns the current registration stage.
func (tm *TextureManager) Stage() uint64 { return tm.stage }

// NextStage opens a new registration stage. Sprites re-stamp their
// textures as they are drawn; whatever is left unstamped is stale.
func (tm *TextureManager) NextStage() {
	tm.stage++
}

// PurgeStale drops every non-persistent texture that was not stamped in
// the current stage and returns how many were dropped.
func (tm *TextureManager) PurgeStale() int {
	purged := 0
	for name, t := range tm.textures {
		if t.Persistent || t.stage == tm.stage {
			continue
		}
		delete(tm.textures, name)
		purged++
	}
	return purged
}

// Unload drops every texture, persistent ones included. Used on theme
// teardown.
func (tm *TextureManager) Unload() {
	tm.textures = make(map[string]*Texture)
}

// Len returns the number of cached textures.
func (tm *TextureManager) Len() int { return len(tm.textures) }
