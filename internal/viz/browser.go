package viz

import (
	"math/rand"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/orbitset/internal/orbit"
	"github.com/san-kum/orbitset/internal/render"
	"github.com/san-kum/orbitset/internal/shape"
)

const (
	canvasCols = 48
	canvasRows = 24
	plotWidth  = 36
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(plotWidth + 8)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
)

// Browser pages through the families one sample at a time.
type Browser struct {
	rng      *rand.Rand
	renderer *render.Renderer
	families []orbit.Family
	cursor   int
	regime   orbit.Regime
	drawn    int
	preview  Preview
}

func NewBrowser(rng *rand.Rand, r *render.Renderer, families []orbit.Family) *Browser {
	if len(families) == 0 {
		families = orbit.Families()
	}
	b := &Browser{
		rng:      rng,
		renderer: r,
		families: families,
		regime:   orbit.Realistic,
	}
	b.resample()
	return b
}

func (b *Browser) Family() orbit.Family { return b.families[b.cursor] }
func (b *Browser) Regime() orbit.Regime { return b.regime }
func (b *Browser) Preview() Preview { return b.preview }

func (b *Browser) resample() {
	b.preview = Render(b.rng, b.renderer, b.Family(), b.regime, canvasCols, canvasRows)
	b.drawn++
}

func (b *Browser) Init() tea.Cmd { return nil }

func (b *Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return b, nil
	}
	switch key.String() {
	case "q", "ctrl+c", "esc":
		return b, tea.Quit
	case "right", "l":
		b.cursor = (b.cursor + 1) % len(b.families)
	case "left", "h":
		b.cursor = (b.cursor - 1 + len(b.families)) % len(b.families)
	case "tab":
		if b.regime == orbit.Clean {
			b.regime = orbit.Realistic
		} else {
			b.regime = orbit.Clean
		}
	case "r", " ":
	default:
		return b, nil
	}
	b.resample()
	return b, nil
}

func (b *Browser) View() string {
	p := b.preview
	canvasView := canvasStyle.Render(p.Canvas.Styled())

	var s strings.Builder
	s.WriteString(Title.Render(strings.ToUpper(p.Family.String())) + "  " + Subtle.Render(p.Family.Shape().String()) + "\n")
	s.WriteString(Separator(plotWidth) + "\n\n")
	s.WriteString(Metric("regime  ", p.Regime) + "\n")
	s.WriteString(Metric("points  ", len(p.Sample.Curve)) + "\n")
	s.WriteString(Metric("markers ", len(p.Frame.Markers)) + "\n")
	if p.Frame.Keypoint >= 0 {
		s.WriteString(Metric("keypoint", p.Frame.Keypoint) + "\n")
	}
	switch p.Family.Shape() {
	case orbit.ShapePetal:
		s.WriteString(Metric("petals  ", int(p.Sample.Params["petals"])) + "\n")
	case orbit.ShapeSpikes:
		s.WriteString(Metric("spikes  ", int(p.Sample.Params["spikes"])) + "\n")
	}

	prof := p.Profile()
	s.WriteString(Metric("maxima  ", shape.CountMaxima(prof)) + "\n")
	s.WriteString(Metric("sample  ", b.drawn) + "\n")
	if len(prof) > 1 {
		chart := asciigraph.Plot(prof, asciigraph.Height(6), asciigraph.Width(plotWidth), asciigraph.Caption("radius"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}
	s.WriteString("\n" + Hints("←/→", "family", "tab", "regime", "r", "resample", "q", "quit"))

	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsStyle.Render(s.String()))
}

// RunBrowser starts the browser in the alternate screen.
func RunBrowser(b *Browser) error {
	_, err := tea.NewProgram(b, tea.WithAltScreen()).Run()
	return err
}
