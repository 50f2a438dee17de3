package fonts

import (
	"fmt"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	HUD   FontName = "hud"
	Title FontName = "title"
	Small FontName = "small"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts    = map[FontName]font.Face{}
	loadOnce sync.Once
)

// LoadDefaults registers the bundled Go fonts under the HUD names.
func LoadDefaults() error {
	var err error
	loadOnce.Do(func() {
		if err = LoadFontWithSize(HUD, goregular.TTF, 22); err != nil {
			return
		}
		if err = LoadFontWithSize(Small, goregular.TTF, 14); err != nil {
			return
		}
		err = LoadFontWithSize(Title, gobold.TTF, 48)
	})
	return err
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	return nil
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
