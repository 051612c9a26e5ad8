// Command radarview-view opens a desktop window with an interactive radar
// chart. Drag from an axis wedge to change that axis's value; a mouse or a
// single touch drives the gesture.
package main

import (
	"flag"
	"image/color"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/satindergrewal/radarview"
	"github.com/satindergrewal/radarview/sheet"
	"golang.org/x/image/font/basicfont"
)

// faceMeasurer reports label extents in the face the window draws with.
type faceMeasurer struct {
	face text.Face
}

func (m faceMeasurer) MeasureString(s string) (float64, float64) {
	return text.Measure(s, m.face, 0)
}

type viewer struct {
	widget   *radarview.Widget
	style    radarview.Style
	face     text.Face
	measurer faceMeasurer

	width, height int
	dirty         bool

	touchID  ebiten.TouchID
	touching bool
}

func newViewer(cfg radarview.Config) (*viewer, error) {
	face := text.NewGoXFace(basicfont.Face7x13)
	v := &viewer{
		style:    radarview.DefaultStyle(),
		face:     face,
		measurer: faceMeasurer{face: face},
		dirty:    true,
	}
	w, err := radarview.NewWidget(cfg, func() { v.dirty = true })
	if err != nil {
		return nil, err
	}
	v.widget = w
	return v, nil
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != v.width || outsideHeight != v.height {
		v.width, v.height = outsideWidth, outsideHeight
		v.widget.OnSizeChanged(float64(outsideWidth), float64(outsideHeight))
		v.dirty = true
	}
	return outsideWidth, outsideHeight
}

func (v *viewer) Update() error {
	if v.updateTouch() {
		return nil
	}

	x, y := ebiten.CursorPosition()
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		v.widget.OnPointerDown(float64(x), float64(y))
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		v.widget.OnPointerUp()
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		v.widget.OnPointerMove(float64(x), float64(y))
	}
	return nil
}

// updateTouch follows the first finger down and ignores the rest. It
// reports whether touch input was handled this tick.
func (v *viewer) updateTouch() bool {
	if v.touching {
		if inpututil.IsTouchJustReleased(v.touchID) {
			v.touching = false
			v.widget.OnPointerUp()
			return true
		}
		x, y := ebiten.TouchPosition(v.touchID)
		v.widget.OnPointerMove(float64(x), float64(y))
		return true
	}

	ids := inpututil.AppendJustPressedTouchIDs(nil)
	if len(ids) == 0 {
		return false
	}
	v.touchID, v.touching = ids[0], true
	x, y := ebiten.TouchPosition(v.touchID)
	v.widget.OnPointerDown(float64(x), float64(y))
	return true
}

func (v *viewer) Draw(screen *ebiten.Image) {
	if !v.dirty {
		return
	}
	v.dirty = false

	screen.Fill(v.style.Background)
	sc := v.widget.Scene(v.measurer)
	if sc.Empty() {
		return
	}

	width := float32(v.style.LineWidth)
	for _, ring := range sc.Rings {
		strokePoints(screen, ring.Points, false, width, v.style.Grid)
	}
	for _, sp := range sc.Spokes {
		strokePoints(screen, []radarview.Point{sp.From, sp.To}, false, width, v.style.Spoke)
	}

	ascent := v.face.Metrics().HAscent
	for _, l := range sc.Labels {
		op := &text.DrawOptions{}
		// Scene origins are baselines; text.Draw positions the line top.
		op.GeoM.Translate(l.Origin.X, l.Origin.Y-ascent)
		op.ColorScale.ScaleWithColor(v.style.Label)
		text.Draw(screen, l.Text, v.face, op)
	}

	fillPoints(screen, sc.Polygon, v.style.Fill)
	strokePoints(screen, sc.Polygon, true, width, v.style.Outline)

	for _, m := range sc.Markers {
		vector.DrawFilledCircle(screen, float32(m.X), float32(m.Y), float32(v.style.MarkerRadius), v.style.Marker, true)
	}
}

func buildPath(pts []radarview.Point, closed bool) *vector.Path {
	var path vector.Path
	for i, p := range pts {
		if i == 0 {
			path.MoveTo(float32(p.X), float32(p.Y))
			continue
		}
		path.LineTo(float32(p.X), float32(p.Y))
	}
	if closed {
		path.Close()
	}
	return &path
}

func strokePoints(dst *ebiten.Image, pts []radarview.Point, closed bool, width float32, c color.Color) {
	strokeOp := &vector.StrokeOptions{Width: width}
	drawOp := &vector.DrawPathOptions{AntiAlias: true}
	drawOp.ColorScale.ScaleWithColor(c)
	vector.StrokePath(dst, buildPath(pts, closed), strokeOp, drawOp)
}

func fillPoints(dst *ebiten.Image, pts []radarview.Point, c color.Color) {
	drawOp := &vector.DrawPathOptions{AntiAlias: true}
	drawOp.ColorScale.ScaleWithColor(c)
	vector.FillPath(dst, buildPath(pts, true), nil, drawOp)
}

func loadConfig(path, sheetName string) (radarview.Config, error) {
	if path == "" {
		return radarview.DefaultConfig(), nil
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return sheet.Load(path, sheetName)
	default:
		return radarview.LoadConfig(path)
	}
}

func main() {
	configPath := flag.String("config", "", "chart configuration (JSON or xlsx); default chart when empty")
	sheetName := flag.String("sheet", "", "worksheet to read from xlsx input")
	size := flag.Int("size", 640, "initial window size in pixels")
	debug := flag.Bool("debug", false, "log pointer handling at debug level")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	radarview.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg, err := loadConfig(*configPath, *sheetName)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	v, err := newViewer(cfg)
	if err != nil {
		log.Fatalf("chart: %v", err)
	}

	ebiten.SetWindowTitle("radarview")
	ebiten.SetWindowSize(*size, *size)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetScreenClearedEveryFrame(false)
	if err := ebiten.RunGame(v); err != nil {
		log.Fatal(err)
	}
}
