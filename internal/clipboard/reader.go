package clipboard

import (
	"fmt"
	"strings"

	cmdclip "github.com/atotto/clipboard"
	nativeclip "golang.design/x/clipboard"

	"clipmon/internal/config"
)

// NewReader returns the Reader for the named backend.
func NewReader(backend string) (Reader, error) {
	switch backend {
	case config.BackendNative, "":
		return NewNativeReader()
	case config.BackendCommand:
		return NewCommandReader()
	default:
		return nil, fmt.Errorf("unsupported clipboard backend: %s", backend)
	}
}

// NativeReader reads the clipboard through the platform API.
type NativeReader struct{}

func NewNativeReader() (*NativeReader, error) {
	if err := nativeclip.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize clipboard: %w", err)
	}
	return &NativeReader{}, nil
}

func (r *NativeReader) Read() (string, error) {
	return normalize(nativeclip.Read(nativeclip.FmtText)), nil
}

// CommandReader reads the clipboard through pbpaste, xclip, xsel or the
// Windows API, whichever the platform offers.
type CommandReader struct{}

func NewCommandReader() (*CommandReader, error) {
	if cmdclip.Unsupported {
		return nil, fmt.Errorf("no clipboard utility found (install xclip, xsel or wl-clipboard)")
	}
	return &CommandReader{}, nil
}

func (r *CommandReader) Read() (string, error) {
	text, err := cmdclip.ReadAll()
	if err != nil {
		// xclip and xsel exit non-zero when the selection is empty.
		return "", nil
	}
	return normalize([]byte(text)), nil
}

func normalize(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	return strings.TrimSpace(string(data))
}

var (
	_ Reader = (*NativeReader)(nil)
	_ Reader = (*CommandReader)(nil)
)
