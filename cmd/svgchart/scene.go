package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/benoitkugler/svgchart/svgdriver"
	"github.com/benoitkugler/svgchart/svggeom"
	"github.com/benoitkugler/svgchart/svgpaint"
	"github.com/benoitkugler/svgchart/svgtext"
	"github.com/pelletier/go-toml/v2"
)

type point [2]float64

func (p point) pt() svggeom.Point { return svggeom.Pt(p[0], p[1]) }

type gradient struct {
	Kind       string              `toml:"kind"` // linear or radial
	Start      point               `toml:"start"`
	End        point               `toml:"end"`
	Center     point               `toml:"center"`
	Width      float64             `toml:"width"`
	Height     float64             `toml:"height"`
	StartColor svgpaint.PlainColor `toml:"start_color"`
	EndColor   svgpaint.PlainColor `toml:"end_color"`
}

type rotation struct {
	Angle  float64 `toml:"angle"`
	Center point   `toml:"center"`
}

// shape is one drawing call. Only the fields used by its kind are read.
type shape struct {
	Kind string `toml:"kind"`

	Points    []point `toml:"points"`
	Start     point   `toml:"start"`
	End       point   `toml:"end"`
	Center    point   `toml:"center"`
	Position  point   `toml:"position"`
	Width     float64 `toml:"width"`
	Height    float64 `toml:"height"`
	StartAng  float64 `toml:"start_angle"`
	EndAng    float64 `toml:"end_angle"`
	Size      float64 `toml:"size"`
	Filled    bool    `toml:"filled"`
	Thickness float64 `toml:"thickness"`

	Color    *svgpaint.PlainColor `toml:"color"`
	Gradient *gradient            `toml:"gradient"`

	File     string    `toml:"file"`
	Text     string    `toml:"text"`
	Align    string    `toml:"align"`
	Rotation *rotation `toml:"rotation"`
}

type scene struct {
	Shapes []shape `toml:"shape"`
}

func parseScene(data []byte) (scene, error) {
	var sc scene
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&sc); err != nil {
		return scene{}, fmt.Errorf("invalid scene: %w", err)
	}
	return sc, nil
}

func loadScene(path string) (scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return scene{}, err
	}
	return parseScene(data)
}

func (s shape) pattern() (svgpaint.Pattern, error) {
	if g := s.Gradient; g != nil {
		switch g.Kind {
		case "linear", "":
			return svgpaint.LinearGradient{Start: g.Start.pt(), End: g.End.pt(), StartColor: g.StartColor, EndColor: g.EndColor}, nil
		case "radial":
			return svgpaint.RadialGradient{Center: g.Center.pt(), Width: g.Width, Height: g.Height, StartColor: g.StartColor, EndColor: g.EndColor}, nil
		default:
			return nil, fmt.Errorf("unknown gradient kind %q", g.Kind)
		}
	}
	if s.Color != nil {
		return *s.Color, nil
	}
	return svgpaint.Black, nil
}

// draw sends the shape to the driver, returning the id of the element.
func (s shape) draw(d *svgdriver.Driver) (string, error) {
	color, err := s.pattern()
	if err != nil {
		return "", err
	}
	switch s.Kind {
	case "polygon":
		points := make([]svggeom.Point, len(s.Points))
		for i, p := range s.Points {
			points[i] = p.pt()
		}
		return d.DrawPolygon(points, color, s.Filled, s.Thickness)
	case "line":
		return d.DrawLine(s.Start.pt(), s.End.pt(), color, s.Thickness)
	case "circle":
		return d.DrawCircle(s.Center.pt(), s.Width, s.Height, color, s.Filled)
	case "sector":
		return d.DrawCircleSector(s.Center.pt(), s.Width, s.Height, s.StartAng, s.EndAng, color, s.Filled)
	case "arc":
		return d.DrawCircularArc(s.Center.pt(), s.Width, s.Height, s.Size, s.StartAng, s.EndAng, color, s.Filled)
	case "image":
		return d.DrawImage(s.File, s.Position.pt(), s.Width, s.Height)
	case "text":
		align := svgtext.AlignLeft | svgtext.AlignTop
		if s.Align != "" {
			if align, err = svgtext.ParseAlignment(s.Align); err != nil {
				return "", err
			}
		}
		var rot *svgtext.Rotation
		if r := s.Rotation; r != nil {
			rot = &svgtext.Rotation{Angle: r.Angle, Center: r.Center.pt()}
		}
		return d.DrawTextBox(s.Text, s.Position.pt(), s.Width, s.Height, align, rot)
	default:
		return "", fmt.Errorf("unknown shape kind %q", s.Kind)
	}
}
