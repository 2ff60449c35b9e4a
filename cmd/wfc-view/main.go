// Command wfc-view is an interactive viewer for the overlapping solver: it
// steps the wave one cell at a time and renders each cell's current
// possibility count, the way the teacher's prototype visualized tile
// entropy before collapse.
package main

import (
	"bytes"
	"flag"
	"image/color"
	"log"
	"math/rand"
	"time"

	"github.com/ebitenui/ebitenui"
	eimage "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/MyUsernamee/go-wfc/wfc"
	"github.com/MyUsernamee/go-wfc/wfcimage"
)

const cellSizePx = 16

type app struct {
	sess     *wfc.Session
	solver   *wfc.Solver
	autoRun  bool
	stepRate int
	status   *widget.Text
	ui       *ebitenui.UI
	fontFace text.Face
}

func newApp(sess *wfc.Session, fontFace text.Face) *app {
	a := &app{
		sess:     sess,
		stepRate: 30,
		fontFace: fontFace,
	}
	a.reset()
	a.ui = a.buildUI()
	return a
}

func (a *app) reset() {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	a.solver = a.sess.NewSolver(rng)
}

func (a *app) buildUI() *ebitenui.UI {
	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	bg := ebiten.NewImage(1, 1)
	bg.Fill(color.RGBA{20, 20, 26, 210})

	panel := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
		)),
		widget.ContainerOpts.BackgroundImage(eimage.NewNineSliceSimple(bg, 0, 0)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
			widget.WidgetOpts.MinSize(360, 0),
		),
	)

	a.status = widget.NewText(
		widget.TextOpts.Text("", &a.fontFace, color.RGBA{230, 230, 230, 255}),
	)
	panel.AddChild(a.status)
	root.AddChild(panel)

	return &ebitenui.UI{Container: root}
}

func (a *app) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		a.reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if _, err := a.solver.Step(); err != nil {
			log.Printf("step: %v", err)
		}
	}
	if ebiten.IsKeyPressed(ebiten.KeyEnter) {
		a.autoRun = true
	}
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		a.autoRun = false
	}

	if a.autoRun {
		stepsPerFrame := a.stepRate / 60
		if stepsPerFrame < 1 {
			stepsPerFrame = 1
		}
		for i := 0; i < stepsPerFrame; i++ {
			status, err := a.solver.Step()
			if err != nil || status != wfc.Continue {
				a.autoRun = false
				break
			}
		}
	}

	a.status.Label = a.statusLine()
	a.ui.Update()
	return nil
}

func (a *app) statusLine() string {
	mx, my := a.solver.WaveDims()
	line := "SPACE=step  ENTER=run  ESC=stop  R=reset\n"
	line += "steps=" + itoa(a.solver.Steps()) + " wave=" + itoa(mx) + "x" + itoa(my) +
		" patterns=" + itoa(a.solver.PatternCount())
	return line
}

func (a *app) Draw(screen *ebiten.Image) {
	mx, my := a.solver.WaveDims()
	for y := 0; y < my; y++ {
		for x := 0; x < mx; x++ {
			cell := x + y*mx
			vector.FillRect(screen,
				float32(x*cellSizePx),
				float32(y*cellSizePx),
				float32(cellSizePx-1),
				float32(cellSizePx-1),
				a.cellColor(cell),
				false,
			)
		}
	}
	a.ui.Draw(screen)
}

// cellColor mirrors the teacher's CellColor: a singleton cell shows the
// palette color its surviving pattern would paint; a contradicted cell is
// flagged red; an undecided cell is shaded by how many patterns remain.
func (a *app) cellColor(cell int) color.Color {
	count := a.solver.PossibleCount(cell)
	if count == 0 {
		return color.RGBA{255, 0, 0, 255}
	}
	p := a.solver.RepresentativePattern(cell)
	if count == 1 {
		rgb := a.solver.PatternTopLeftColor(p)
		return color.RGBA{byte(rgb >> 16), byte(rgb >> 8), byte(rgb), 255}
	}
	total := a.solver.PatternCount()
	v := 40 + int(float64(count-2)/float64(max(1, total-2))*160.0)
	if v > 220 {
		v = 220
	}
	return color.RGBA{uint8(v), uint8(v), uint8(v), 255}
}

func (a *app) Layout(outsideW, outsideH int) (int, int) {
	mx, my := a.solver.WaveDims()
	return mx * cellSizePx, my * cellSizePx
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func main() {
	exemplarPath := flag.String("exemplar", "", "path to the exemplar PNG/GIF (required)")
	outputW := flag.Int("output-width", 48, "output width in pixels")
	outputH := flag.Int("output-height", 48, "output height in pixels")
	patternSize := flag.Int("pattern-size", 3, "N")
	symmetry := flag.Int("symmetry", 8, "1-8")
	ground := flag.Bool("ground", false, "pin bottom row")
	flag.Parse()

	if *exemplarPath == "" {
		log.Fatal("wfc-view: -exemplar is required")
	}

	exemplar, err := wfcimage.LoadExemplar(*exemplarPath)
	if err != nil {
		log.Fatalf("loading exemplar: %v", err)
	}

	opts := wfc.Options{
		IW: exemplar.Width(), IH: exemplar.Height(),
		OW: *outputW, OH: *outputH,
		PatternSize: *patternSize,
		Symmetry:    *symmetry,
		Ground:      *ground,
		Heuristic:   wfc.Entropy,
	}

	sess, err := wfc.NewSession(exemplar, opts)
	if err != nil {
		log.Fatalf("building session: %v", err)
	}

	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("loading font: %v", err)
	}
	fontFace := &text.GoTextFace{Source: source, Size: 14}

	a := newApp(sess, fontFace)

	ebiten.SetWindowTitle("wfc-view")
	mx, my := a.solver.WaveDims()
	ebiten.SetWindowSize(mx*cellSizePx, my*cellSizePx)

	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}

func itoa(v int) string {
	if v == 0 {
		return "0"
	}
	neg := v < 0
	if neg {
		v = -v
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
