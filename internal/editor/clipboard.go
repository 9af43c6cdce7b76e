package editor

import "github.com/atotto/clipboard"

// Clipboard abstracts the system clipboard so tests and headless sessions
// can swap in memory storage.
type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

// SystemClipboard uses the platform clipboard and keeps a private copy when
// no clipboard utility is available.
type SystemClipboard struct {
	fallback MemoryClipboard
}

func (c *SystemClipboard) ReadAll() (string, error) {
	if clipboard.Unsupported {
		return c.fallback.ReadAll()
	}
	text, err := clipboard.ReadAll()
	if err != nil {
		return c.fallback.ReadAll()
	}
	return text, nil
}

func (c *SystemClipboard) WriteAll(text string) error {
	_ = c.fallback.WriteAll(text)
	if clipboard.Unsupported {
		return nil
	}
	return clipboard.WriteAll(text)
}

// MemoryClipboard keeps clipboard contents in process.
type MemoryClipboard struct {
	text string
}

func (c *MemoryClipboard) ReadAll() (string, error) { return c.text, nil }

func (c *MemoryClipboard) WriteAll(text string) error {
	c.text = text
	return nil
}
