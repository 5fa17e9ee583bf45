package theme

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"

	"github.com/openmoto/moto2d/internal/storage"
)

// NameFromFile reads just the theme name out of a theme file, without
// parsing sprites or touching asset files.
func NameFromFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("theme: read %s: %w", path, err)
	}

	var doc struct {
		Name string `xml:"name,attr"`
	}
	if err := xml.Unmarshal(data, &doc); err != nil {
		return "", fmt.Errorf("theme: parse %s: %w", path, err)
	}
	if doc.Name == "" {
		return "", fmt.Errorf("theme: %s has no theme name", path)
	}
	return doc.Name, nil
}

// ScanDir registers every readable theme file under dir in the catalog,
// replacing whatever was registered before. Broken files are skipped with
// a warning, and when two files claim the same name the first one scanned
// wins. Returns the number of themes registered.
func ScanDir(store *storage.Store, dir string) (int, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.xml"))
	if err != nil {
		return 0, fmt.Errorf("theme: scan %s: %w", dir, err)
	}

	if err := store.ClearThemes(); err != nil {
		return 0, err
	}

	seen := make(map[string]string)
	count := 0
	for _, p := range paths {
		name, err := NameFromFile(p)
		if err != nil {
			log.Warn("skipping theme file", "file", p, "err", err)
			continue
		}
		if prev, dup := seen[name]; dup {
			log.Warn("duplicate theme name", "name", name, "file", p, "kept", prev)
			continue
		}
		if err := store.AddTheme(name, p); err != nil {
			return count, err
		}
		seen[name] = p
		count++
	}

	return count, nil
}

// Watch rescans dir whenever theme files change in it, until ctx is done.
// Events are debounced so an editor writing a file in several steps
// triggers one rescan.
func Watch(ctx context.Context, store *storage.Store, dir string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("theme: create watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("theme: watch %s: %w", dir, err)
	}

	go func() {
		defer watcher.Close()

		var debounce *time.Timer
		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
					!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
					continue
				}
				if filepath.Ext(event.Name) != ".xml" {
					continue
				}
				if debounce != nil {
					debounce.Stop()
				}
				debounce = time.AfterFunc(500*time.Millisecond, func() {
					n, err := ScanDir(store, dir)
					if err != nil {
						log.Error("theme rescan failed", "dir", dir, "err", err)
						return
					}
					log.Info("theme catalog rescanned", "dir", dir, "themes", n)
				})

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Error("theme watcher error", "dir", dir, "err", err)
			}
		}
	}()

	return nil
}

// A Mismatch is one required file that failed verification.
type Mismatch struct {
	Path   string
	Reason string
}

// Verify checks every required file of a loaded theme against dataDir:
// the file must exist and, when the theme records a sum, its md5 must
// match. Returns the list of failures; an empty list means the theme's
// assets are intact.
func Verify(t *Theme, dataDir string) ([]Mismatch, error) {
	var bad []Mismatch
	for _, f := range t.RequiredFiles() {
		full := filepath.Join(dataDir, filepath.FromSlash(f.Path))

		sum, err := fileMD5(full)
		if os.IsNotExist(err) {
			bad = append(bad, Mismatch{Path: f.Path, Reason: "missing"})
			continue
		}
		if err != nil {
			return bad, fmt.Errorf("theme: verify %s: %w", f.Path, err)
		}

		if f.Sum != "" && sum != f.Sum {
			bad = append(bad, Mismatch{Path: f.Path, Reason: "checksum mismatch"})
		}
	}
	return bad, nil
}

func fileMD5(path string) (string, error) {
	fh, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer fh.Close()

	h := md5.New()
	if _, err := io.Copy(h, fh); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
