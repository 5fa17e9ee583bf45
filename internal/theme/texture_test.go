package theme

import "testing"

func TestTextureManagerLoadCaches(t *testing.T) {
	tm := NewTextureManager()

	a := tm.Load("Textures/Misc/a.png", false)
	b := tm.Load("Textures/Misc/a.png", false)
	if a != b {
		t.Error("Load() should return the same handle for the same name")
	}
	if tm.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", tm.Len())
	}

	if _, ok := tm.Lookup("Textures/Misc/a.png"); !ok {
		t.Error("Lookup() should find a loaded texture")
	}
	if _, ok := tm.Lookup("absent"); ok {
		t.Error("Lookup() should miss an unloaded texture")
	}
}

func TestTextureManagerPersistentUpgrade(t *testing.T) {
	tm := NewTextureManager()

	tex := tm.Load("Textures/Riders/body.png", false)
	if tex.Persistent {
		t.Fatal("texture loaded non-persistent")
	}
	tm.Load("Textures/Riders/body.png", true)
	if !tex.Persistent {
		t.Error("a persistent load should upgrade the existing handle")
	}
}

func TestTextureManagerPurgeStale(t *testing.T) {
	tm := NewTextureManager()

	keep := tm.Load("keep.png", false)
	tm.Load("drop.png", false)
	forever := tm.Load("forever.png", true)

	tm.NextStage()
	tm.Stamp(keep)

	n := tm.PurgeStale()
	if n != 1 {
		t.Errorf("PurgeStale() = %d, expected 1", n)
	}
	if _, ok := tm.Lookup("keep.png"); !ok {
		t.Error("a stamped texture must survive the purge")
	}
	if _, ok := tm.Lookup("drop.png"); ok {
		t.Error("an unstamped non-persistent texture must be purged")
	}
	if _, ok := tm.Lookup("forever.png"); !ok {
		t.Error("persistent textures survive without stamping")
	}
	_ = forever
}

func TestSpriteTextureResolution(t *testing.T) {
	tm := NewTextureManager()
	s := newFrameSprite(SpriteMisc, "thing", "thing.png")

	tex := s.Texture(tm)
	if tex == nil {
		t.Fatal("Texture() returned nil")
	}
	if tex.Name != "Textures/Misc/thing.png" {
		t.Errorf("texture name = %q", tex.Name)
	}
	if s.Texture(tm) != tex {
		t.Error("Texture() should cache the handle")
	}

	// A non-persistent sprite keeps its texture stamped at the current
	// stage on every resolution.
	tm.NextStage()
	s.Texture(tm)
	if tex.Stage() != tm.Stage() {
		t.Error("resolution should restamp the texture")
	}

	s.Invalidate()
	if s.Texture(tm) != tex {
		t.Error("after Invalidate the manager still holds the same handle")
	}
}

func TestAnimationAdvance(t *testing.T) {
	s := newAnimationSprite("fl", "fl", "png", false)
	s.AddFrame(0.5, 0.5, 1, 1, 0.1)
	s.AddFrame(0.5, 0.5, 1, 1, 0.1)
	s.AddFrame(0.5, 0.5, 1, 1, 0.1)

	if s.CurrentFrame() != 0 {
		t.Fatalf("CurrentFrame() = %d at start", s.CurrentFrame())
	}
	if got := s.Advance(0.05); got != 0 {
		t.Errorf("Advance(0.05) = %d, expected 0", got)
	}
	if got := s.Advance(0.15); got != 1 {
		t.Errorf("Advance(0.15) = %d, expected 1", got)
	}
	// Wraps back to the first frame.
	s.Advance(0.3)
	if got := s.Advance(0.45); got != 0 {
		t.Errorf("Advance() should wrap, got %d", got)
	}
}

func TestAnimationSingleFrameNeverAdvances(t *testing.T) {
	s := newAnimationSprite("sun", "sun", "png", false)
	s.AddFrame(0.5, 0.5, 1, 1, 0.1)

	if got := s.Advance(100); got != 0 {
		t.Errorf("Advance() = %d, single frame should stay at 0", got)
	}
	if s.TextureFile() != "Textures/Sprites/sun.png" {
		t.Errorf("TextureFile() = %q, expected the unnumbered form", s.TextureFile())
	}
}

func TestAnimationLoadTextures(t *testing.T) {
	tm := NewTextureManager()
	s := newAnimationSprite("fl", "fl", "png", false)
	s.AddFrame(0.5, 0.5, 1, 1, 0.1)
	s.AddFrame(0.5, 0.5, 1, 1, 0.1)

	s.LoadTextures(tm)
	if tm.Len() != 2 {
		t.Errorf("Len() = %d, expected one texture per frame", tm.Len())
	}
	if s.CurrentFrame() != 0 {
		t.Error("LoadTextures() must not move the animation")
	}
}
