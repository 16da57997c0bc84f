package assets

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
)

// Font sizes for names and headings.
const (
	FontSize    = 20
	BigFontSize = 24
)

var ErrFontNotFound = errors.New("font not found")

// Fonts holds the two faces the HUD and player labels draw with.
type Fonts struct {
	Regular *text.GoTextFace
	Big     *text.GoTextFace
	Origin  string // file the faces came from, or "embedded"
}

// LoadFonts loads the font at path. When that fails it looks for a font of
// the same file name in the system font directories, and finally settles for
// the embedded Go Bold.
func LoadFonts(path string) *Fonts {
	data, origin, err := FindFont(path, xdg.FontDirs)
	if err == nil {
		src, perr := text.NewGoTextFaceSource(bytes.NewReader(data))
		if perr == nil {
			log.Printf("[Font] Using %s", origin)
			return newFonts(src, origin)
		}
		err = fmt.Errorf("parse %s: %w", origin, perr)
	}

	log.Printf("[Font] %s failed to load (%v), using Go Bold (embedded)", path, err)
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		panic(fmt.Sprintf("failed to load embedded font: %v", err))
	}
	return newFonts(src, "embedded")
}

func newFonts(src *text.GoTextFaceSource, origin string) *Fonts {
	return &Fonts{
		Regular: &text.GoTextFace{Source: src, Size: FontSize},
		Big:     &text.GoTextFace{Source: src, Size: BigFontSize},
		Origin:  origin,
	}
}

// FindFont reads path, or failing that the first file with the same base
// name found under dirs. It returns the bytes and where they were read from.
func FindFont(path string, dirs []string) ([]byte, string, error) {
	data, err := os.ReadFile(path)
	if err == nil {
		return data, path, nil
	}
	log.Printf("[Font] Font file not found: %s", path)

	name := filepath.Base(path)
	for _, dir := range dirs {
		found := ""
		// unreadable subtrees are skipped rather than aborting the search
		_ = filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				if d != nil && d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}
			if !d.IsDir() && d.Name() == name {
				found = p
				return fs.SkipAll
			}
			return nil
		})
		if found == "" {
			continue
		}
		data, err := os.ReadFile(found)
		if err != nil {
			continue
		}
		return data, found, nil
	}
	return nil, "", fmt.Errorf("%w: %s", ErrFontNotFound, name)
}
