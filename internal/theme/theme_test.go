package theme

import (
	"os"
	"path/filepath"
	"testing"
)

func writeThemeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.xml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("writing theme file failed: %v", err)
	}
	return path
}

func loadTheme(t *testing.T, body string) *Theme {
	t.Helper()
	th := New()
	if err := th.Load(writeThemeFile(t, body)); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	return th
}

func TestLoadUnnamedTheme(t *testing.T) {
	th := New()
	err := th.Load(writeThemeFile(t, `<theme><sprite type="Misc" name="a" file="a.png"/></theme>`))
	if err == nil {
		t.Fatal("Load() should fail for an unnamed theme")
	}
}

func TestLoadMissingFile(t *testing.T) {
	th := New()
	if err := th.Load(filepath.Join(t.TempDir(), "absent.xml")); err == nil {
		t.Fatal("Load() should fail for a missing file")
	}
}

func TestLoadSimpleSprites(t *testing.T) {
	th := loadTheme(t, `<theme name="Classic">
		<sprite type="BikerPart" name="PlayerBikerBody" file="body.png" sum="abc"/>
		<sprite type="Font" name="MFont" file="mfont.png"/>
		<sprite type="Misc" name="Derby" file="derby.png"/>
		<sprite type="UI" name="Cursor" file="cursor.png"/>
		<sprite type="Effect" name="Smoke" file="smoke.png"/>
		<sprite type="Texture" name="Dirt" file="dirt.jpg"/>
	</theme>`)

	if th.Name() != "Classic" {
		t.Errorf("Name() = %q, expected %q", th.Name(), "Classic")
	}
	if len(th.Sprites()) != 6 {
		t.Fatalf("got %d sprites, expected 6", len(th.Sprites()))
	}

	s, ok := th.Sprite(SpriteBikerPart, "PlayerBikerBody")
	if !ok {
		t.Fatal("Sprite() did not find PlayerBikerBody")
	}
	if s.TextureFile() != "Textures/Riders/body.png" {
		t.Errorf("TextureFile() = %q, expected Textures/Riders/body.png", s.TextureFile())
	}
	if !s.Persistent() {
		t.Error("biker parts should be persistent")
	}
	if s.Order() != 0 {
		t.Errorf("Order() = %d, expected 0", s.Order())
	}

	tex, ok := th.Sprite(SpriteTexture, "Dirt")
	if !ok {
		t.Fatal("Sprite() did not find Dirt")
	}
	if tex.Persistent() {
		t.Error("textures should not be persistent")
	}
}

func TestLoadSkipsMalformedSprites(t *testing.T) {
	th := loadTheme(t, `<theme name="T">
		<sprite type="Misc" file="noname.png"/>
		<sprite type="Misc" name="nofile"/>
		<sprite type="Alien" name="x" file="x.png"/>
		<sprite name="typeless" file="x.png"/>
		<sprite type="Misc" name="ok" file="ok.png"/>
	</theme>`)

	if len(th.Sprites()) != 1 {
		t.Fatalf("got %d sprites, expected only the valid one", len(th.Sprites()))
	}
	if _, ok := th.Sprite(SpriteMisc, "ok"); !ok {
		t.Error("the valid sprite should still load")
	}
}

func TestSpriteLookupFailsClosed(t *testing.T) {
	th := loadTheme(t, `<theme name="T">
		<sprite type="Misc" name="thing" file="thing.png"/>
	</theme>`)

	if s, ok := th.Sprite(SpriteMisc, "other"); ok || s != nil {
		t.Error("lookup of an unknown name should return nil, false")
	}
	// Same name, wrong type.
	if s, ok := th.Sprite(SpriteFont, "thing"); ok || s != nil {
		t.Error("lookup with the wrong type should return nil, false")
	}
}

func TestDuplicateNamesFirstWins(t *testing.T) {
	th := loadTheme(t, `<theme name="T">
		<sprite type="Misc" name="dup" file="first.png"/>
		<sprite type="Misc" name="dup" file="second.png"/>
	</theme>`)

	s, ok := th.Sprite(SpriteMisc, "dup")
	if !ok {
		t.Fatal("Sprite() did not find dup")
	}
	if s.TextureFile() != "Textures/Misc/first.png" {
		t.Errorf("TextureFile() = %q, expected the first occurrence to win", s.TextureFile())
	}
}

func TestRequiredFiles(t *testing.T) {
	th := loadTheme(t, `<theme name="T">
		<sprite type="Misc" name="a" file="a.png" sum="112233"/>
		<sprite type="Font" name="SFont" file="SFont.png"/>
		<music name="tune" file="tune.ogg" sum="445566"/>
		<sound name="boom" file="boom.ogg"/>
	</theme>`)

	files := th.RequiredFiles()
	if len(files) != 3 {
		t.Fatalf("got %d required files, expected 3: %v", len(files), files)
	}
	if files[0].Path != "Textures/Misc/a.png" || files[0].Sum != "112233" {
		t.Errorf("unexpected first required file: %+v", files[0])
	}

	// Textures/Fonts/SFont.png is on the legacy list and must be dropped.
	for _, f := range files {
		if f.Path == "Textures/Fonts/SFont.png" {
			t.Error("legacy files must not be tracked")
		}
	}
}

func TestOutOfDateFontStillSkipsSprite(t *testing.T) {
	th := loadTheme(t, `<theme name="T">
		<sprite type="Font" name="MFont" file="MFont.png"/>
	</theme>`)

	if _, ok := th.Sprite(SpriteFont, "MFont"); ok {
		t.Error("a sprite whose file is out of date should not load")
	}
}

func TestReloadClearsState(t *testing.T) {
	th := loadTheme(t, `<theme name="A">
		<sprite type="Misc" name="one" file="one.png"/>
		<music name="m" file="m.ogg"/>
	</theme>`)

	if err := th.Load(writeThemeFile(t, `<theme name="B">
		<sprite type="Misc" name="two" file="two.png"/>
	</theme>`)); err != nil {
		t.Fatalf("second Load() failed: %v", err)
	}

	if th.Name() != "B" {
		t.Errorf("Name() = %q, expected B", th.Name())
	}
	if _, ok := th.Sprite(SpriteMisc, "one"); ok {
		t.Error("sprites from the previous descriptor should be gone")
	}
	if len(th.Musics()) != 0 {
		t.Error("musics from the previous descriptor should be gone")
	}
	if len(th.RequiredFiles()) != 1 {
		t.Errorf("got %d required files after reload, expected 1", len(th.RequiredFiles()))
	}
}

func TestLoadAnimation(t *testing.T) {
	th := loadTheme(t, `<theme name="T">
		<sprite type="Entity" name="Flower" fileBase="Flower" fileExtension="png" delay="0.2">
			<frame/>
			<frame delay="0.5" centerX="0.25"/>
		</sprite>
	</theme>`)

	s, ok := th.Sprite(SpriteDecoration, "Flower")
	if !ok {
		t.Fatal("Sprite() did not find Flower")
	}
	anim := s.(*AnimationSprite)
	if !anim.Animated() {
		t.Error("a two-frame sprite should be animated")
	}

	frames := anim.Frames()
	if len(frames) != 2 {
		t.Fatalf("got %d frames, expected 2", len(frames))
	}
	if frames[0].Delay != 0.2 || frames[0].CenterX != 0.5 {
		t.Errorf("frame 0 should inherit element defaults: %+v", frames[0])
	}
	if frames[1].Delay != 0.5 || frames[1].CenterX != 0.25 {
		t.Errorf("frame 1 should use its own attributes: %+v", frames[1])
	}

	if s.TextureFile() != "Textures/Sprites/Flower00.png" {
		t.Errorf("TextureFile() = %q, expected the numbered first frame", s.TextureFile())
	}

	files := th.RequiredFiles()
	if len(files) != 2 {
		t.Fatalf("got %d required files, expected one per frame", len(files))
	}
	if files[1].Path != "Textures/Sprites/Flower01.png" {
		t.Errorf("unexpected second frame file: %+v", files[1])
	}
}

func TestLoadDecoration(t *testing.T) {
	th := loadTheme(t, `<theme name="T">
		<sprite type="Entity" name="Sun" file="sun.png" blendmode="add" centerX="0.1" width="4"/>
	</theme>`)

	s, ok := th.Sprite(SpriteDecoration, "Sun")
	if !ok {
		t.Fatal("Sprite() did not find Sun")
	}
	if s.Blend() != BlendAdd {
		t.Errorf("Blend() = %v, expected BlendAdd", s.Blend())
	}

	anim := s.(*AnimationSprite)
	if anim.Animated() {
		t.Error("a decoration is a single-frame sprite")
	}
	if anim.CenterX() != 0.1 || anim.Width() != 4 {
		t.Errorf("decoration geometry not applied: centerX=%v width=%v", anim.CenterX(), anim.Width())
	}
	if s.TextureFile() != "Textures/Sprites/sun.png" {
		t.Errorf("TextureFile() = %q, expected sun.png unnumbered", s.TextureFile())
	}
}

func TestLoadAnimationTexture(t *testing.T) {
	body := `<theme name="T">
		<sprite type="Texture" name="Lava" fileBase="Lava" fileExtension="jpg">
			<frame/>
			<frame/>
		</sprite>
	</theme>`

	th := loadTheme(t, body)
	if _, ok := th.Sprite(SpriteAnimationTexture, "Lava"); !ok {
		t.Fatal("Texture with fileBase should load as an animation texture")
	}

	// With animations disabled the same element loads as a plain
	// texture, and without a file attribute it is skipped.
	off := New()
	off.DisableAnimations = true
	if err := off.Load(writeThemeFile(t, body)); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if len(off.Sprites()) != 0 {
		t.Error("animated texture without a file attribute should be skipped when animations are off")
	}
}

func TestLoadEdgeEffect(t *testing.T) {
	th := loadTheme(t, `<theme name="T">
		<sprite type="EdgeEffect" name="Grass" file="grass.png" scale="0.5" depth="0.1"/>
		<sprite type="EdgeEffect" name="NoScale" file="x.png" depth="0.1"/>
		<sprite type="EdgeEffect" name="NoDepth" file="x.png" scale="0.5"/>
	</theme>`)

	s, ok := th.Sprite(SpriteEdgeEffect, "Grass")
	if !ok {
		t.Fatal("Sprite() did not find Grass")
	}
	edge := s.(*EdgeSprite)
	if edge.Scale() != 0.5 || edge.Depth() != 0.1 {
		t.Errorf("Scale()=%v Depth()=%v, expected 0.5/0.1", edge.Scale(), edge.Depth())
	}

	if len(th.Sprites()) != 1 {
		t.Error("edge effects missing scale or depth should be skipped")
	}
}

func TestMusicAndSoundLookup(t *testing.T) {
	th := loadTheme(t, `<theme name="T">
		<music name="menu" file="menu.ogg"/>
		<sound name="pickup" file="pickup.ogg"/>
	</theme>`)

	m, err := th.Music("menu")
	if err != nil {
		t.Fatalf("Music() failed: %v", err)
	}
	if m.FilePath() != "Musics/menu.ogg" {
		t.Errorf("FilePath() = %q, expected Musics/menu.ogg", m.FilePath())
	}

	if _, err := th.Music("absent"); err == nil {
		t.Error("Music() should fail for an unknown name")
	}

	s, err := th.Sound("pickup")
	if err != nil {
		t.Fatalf("Sound() failed: %v", err)
	}
	if s.FilePath() != "Sounds/pickup.ogg" {
		t.Errorf("FilePath() = %q, expected Sounds/pickup.ogg", s.FilePath())
	}
	if _, err := th.Sound("absent"); err == nil {
		t.Error("Sound() should fail for an unknown name")
	}
}

func TestMusicForKey(t *testing.T) {
	th := loadTheme(t, `<theme name="T">
		<music name="a" file="a.ogg"/>
		<music name="b" file="b.ogg"/>
		<music name="c" file="c.ogg"/>
	</theme>`)

	first, err := th.MusicForKey("some/level/id")
	if err != nil {
		t.Fatalf("MusicForKey() failed: %v", err)
	}
	second, err := th.MusicForKey("some/level/id")
	if err != nil {
		t.Fatalf("MusicForKey() failed: %v", err)
	}
	if first != second {
		t.Errorf("MusicForKey() should be stable: %q vs %q", first, second)
	}

	empty := New()
	if _, err := empty.MusicForKey("x"); err == nil {
		t.Error("MusicForKey() should fail with no musics loaded")
	}
}

func TestBikerBundles(t *testing.T) {
	th := loadTheme(t, `<theme name="T">
		<sprite type="BikerPart" name="PlayerBikerBody" file="body.png"/>
		<sprite type="BikerPart" name="GhostBikerBody" file="gbody.png"/>
	</theme>`)

	if _, ok := th.Player().Body(); !ok {
		t.Error("Player().Body() should resolve")
	}
	if _, ok := th.Ghost().Body(); !ok {
		t.Error("Ghost().Body() should resolve")
	}
	if _, ok := th.Player().Wheel(); ok {
		t.Error("an unthemed part should fail closed")
	}

	if th.Player().GhostEffect() {
		t.Error("the player bundle has no ghost effect")
	}
	if !th.Ghost().GhostEffect() {
		t.Error("the ghost bundle draws with the ghost effect")
	}
	if got := th.Ghost().UglyRiderColor().Hex(); got != "#969696" {
		t.Errorf("ghost ugly color = %q, expected #969696", got)
	}
	if len(th.Player().PartNames()) != 9 {
		t.Errorf("a rider has 9 parts, got %d", len(th.Player().PartNames()))
	}
}
