package assets

import (
	"bytes"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	sourceOnce sync.Once
	source     *text.GoTextFaceSource
)

// FontSource parses the bundled Go Regular font once.
func FontSource() *text.GoTextFaceSource {
	sourceOnce.Do(func() {
		s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			log.Fatalf("Failed to parse font: %v", err)
		}
		source = s
	})
	return source
}

// LoadFace returns a text face of the bundled font at the given pixel size.
func LoadFace(size float64) *text.GoTextFace {
	return &text.GoTextFace{
		Source: FontSource(),
		Size:   size,
	}
}
