package svgdriver

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/benoitkugler/svgchart/svgdom"
	"github.com/benoitkugler/svgchart/svggeom"
	"github.com/h2non/filetype"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// DrawImage embeds the image file at `position` (its top left corner), as
// a data URI. A non positive width or height is replaced by the intrinsic
// size of the image.
func (d *Driver) DrawImage(file string, position svggeom.Point, width, height float64) (string, error) {
	if err := d.Init(); err != nil {
		return "", err
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrImageAssetUnavailable, err)
	}
	kind, err := filetype.Match(data)
	if err != nil || kind.MIME.Type != "image" {
		return "", fmt.Errorf("%w: %s is not a supported image", ErrImageAssetUnavailable, file)
	}
	if width <= 0 || height <= 0 {
		cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
		if err != nil {
			return "", fmt.Errorf("%w: %s: %s", ErrImageAssetUnavailable, file, err)
		}
		width, height = float64(cfg.Width), float64(cfg.Height)
	}

	pos := position.Add(d.options.Offset)
	id := d.newID("Image")
	d.doc.AppendChild(d.elements, d.doc.CreateElement("image",
		svgdom.Attr{Name: "id", Value: id},
		svgdom.Attr{Name: "x", Value: coord(pos.X)},
		svgdom.Attr{Name: "y", Value: coord(pos.Y)},
		svgdom.Attr{Name: "width", Value: coord(width) + "px"},
		svgdom.Attr{Name: "height", Value: coord(height) + "px"},
		svgdom.Attr{Name: "xlink:href", Value: "data:" + kind.MIME.Value + ";base64," + base64.StdEncoding.EncodeToString(data)},
	))
	Logger().Debug("svgdriver: image embedded", "file", file, "mime", kind.MIME.Value, "bytes", len(data))
	return id, nil
}
