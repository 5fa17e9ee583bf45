package theme

import (
	"fmt"
	"sort"
	"sync"
)

// SpriteParser turns one <sprite> element into sprite records on the
// theme. Parsers log and skip malformed elements instead of failing the
// whole load.
type SpriteParser func(t *Theme, el spriteXML)

var (
	parsers   = make(map[string]SpriteParser)
	parsersMu sync.RWMutex
)

// RegisterParser adds a sprite parser for a type tag as it appears in
// theme files. Called from init functions; panics on duplicate tags.
func RegisterParser(typeTag string, p SpriteParser) {
	parsersMu.Lock()
	defer parsersMu.Unlock()

	if _, exists := parsers[typeTag]; exists {
		panic(fmt.Sprintf("theme: sprite parser %q already registered", typeTag))
	}
	parsers[typeTag] = p
}

// parserFor looks up the parser for a type tag.
func parserFor(typeTag string) (SpriteParser, bool) {
	parsersMu.RLock()
	defer parsersMu.RUnlock()

	p, ok := parsers[typeTag]
	return p, ok
}

// ParserTags returns the registered sprite type tags, sorted.
func ParserTags() []string {
	parsersMu.RLock()
	defer parsersMu.RUnlock()

	tags := make([]string, 0, len(parsers))
	for tag := range parsers {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
