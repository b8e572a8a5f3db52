package markdown

import (
	"sync"

	"github.com/charmbracelet/glamour"
)

var (
	mu       sync.RWMutex
	renderer *glamour.TermRenderer
)

// Init initializes the terminal markdown renderer with the given wrap width.
func Init(width int) error {
	mu.Lock()
	defer mu.Unlock()

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return err
	}
	renderer = r
	return nil
}

// Render renders markdown content to terminal format, falling back to the
// raw text if the renderer is unavailable or fails.
func Render(content string) string {
	mu.RLock()
	defer mu.RUnlock()

	if renderer == nil {
		return content
	}
	out, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return out
}
