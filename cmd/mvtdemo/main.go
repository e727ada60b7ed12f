// Command mvtdemo renders a small model scene through a model/view
// transform into a PNG.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log/slog"
	"math"
	"os"

	"github.com/edusim/mvt"
	"github.com/edusim/mvt/glyph"
	"github.com/edusim/mvt/raster"
)

func main() {
	var (
		width   = flag.Int("width", 800, "image width")
		height  = flag.Int("height", 600, "image height")
		output  = flag.String("output", "mvtdemo.png", "output file")
		scale   = flag.Float64("scale", 50, "pixels per model unit")
		label   = flag.String("label", "Pressure", "label drawn under the tank")
		verbose = flag.Bool("v", false, "log debug output")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	mvt.SetLogger(logger)

	if err := run(logger, *width, *height, *scale, *label, *output); err != nil {
		logger.Error("mvtdemo failed", slog.Any("err", err))
		os.Exit(1)
	}
}

func run(logger *slog.Logger, width, height int, scale float64, label, output string) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("image size %dx%d: %w", width, height, mvt.ErrInvalidArgument)
	}

	// Model origin at the image centre, y up.
	centre := mvt.Pt(float64(width)/2, float64(height)/2)
	t, err := mvt.FromPointMappingInvertedY(mvt.Pt(0, 0), centre, scale)
	if err != nil {
		return fmt.Errorf("model/view transform: %w", err)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.RGBA{0x1a, 0x2a, 0x44, 0xff}), image.Point{}, draw.Src)

	tank := mvt.EllipseApprox(-3, -1, 6, 3)
	star := starShape(mvt.Pt(4.5, 2), 1.2, 0.5, 5)
	wire := mvt.NewCurve().
		MoveTo(-5, -2.5).
		LineToRelative(10, 0).
		LineToRelative(0, 0.2).
		LineToRelative(-10, 0).
		Close()

	scene := []struct {
		name  string
		shape *mvt.Curve
		col   color.Color
	}{
		{"tank", tank, color.RGBA{0x4f, 0xa3, 0xe0, 0xff}},
		{"star", star, color.RGBA{0xff, 0xd2, 0x3f, 0xff}},
		{"wire", wire, color.RGBA{0xe0, 0x6c, 0x4f, 0xff}},
	}
	for _, s := range scene {
		view := t.ToViewCurve(s.shape)
		raster.Paint(img, view, s.col)
		logger.Debug("painted", slog.String("shape", s.name), slog.String("view bounds", fmt.Sprint(view.Bounds())))
	}

	if label != "" {
		text, err := glyph.Default().Text(label, scale*0.5)
		if err != nil {
			return fmt.Errorf("label: %w", err)
		}
		// Centre the label under the tank, one model unit below it.
		b := text.Bounds()
		anchor := t.ToView(mvt.Pt(0, -1.5))
		raster.Paint(img, text, color.White, raster.WithOffset(mvt.Pt(anchor.X-b.W/2-b.X, anchor.Y)))
	}

	for _, p := range []mvt.Point{{X: 0, Y: 0.5}, {X: 4.5, Y: 2}, {X: 0, Y: 3}} {
		logger.Info("hit test",
			slog.String("model", fmt.Sprint(p)),
			slog.String("view", fmt.Sprint(t.ToView(p))),
			slog.Bool("tank", tank.ContainsPoint(p)),
			slog.Bool("star", star.ContainsPoint(p)))
	}

	f, err := os.Create(output)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", output, err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	logger.Info("demo saved", slog.String("path", output), slog.Int("width", width), slog.Int("height", height))
	return nil
}

// starShape returns a closed star with the given number of points around
// centre. The first point is straight up.
func starShape(centre mvt.Point, outer, inner float64, points int) *mvt.Curve {
	pts := make([]mvt.Point, 0, points*2)
	for i := range points * 2 {
		angle := float64(i)*math.Pi/float64(points) + math.Pi/2
		r := outer
		if i%2 == 1 {
			r = inner
		}
		pts = append(pts, centre.Add(mvt.Pt(r*math.Cos(angle), r*math.Sin(angle))))
	}
	return mvt.FromPoints(pts, true)
}
