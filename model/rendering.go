package model

import (
	"math/rand"

	"github.com/gdamore/tcell/v2"
)

const (
	gridPosBlock = '█'
	gridPosEmpty = ' '
)

// Palette is the set of foreground colors living cells are drawn with
var Palette = []tcell.Color{
	tcell.ColorGray,
	tcell.ColorMaroon,
	tcell.ColorLime,
	tcell.ColorGreen,
	tcell.ColorOlive,
	tcell.ColorBlue,
	tcell.ColorNavy,
	tcell.ColorFuchsia,
	tcell.ColorPurple,
	tcell.ColorAqua,
	tcell.ColorTeal,
	tcell.ColorSilver,
}

// ColorSource picks the foreground color of one living cell
type ColorSource interface {
	Color() tcell.Color
}

// RandomPalette picks uniformly from Palette
type RandomPalette struct {
	rng *rand.Rand
}

func NewRandomPalette(rng *rand.Rand) *RandomPalette {
	return &RandomPalette{rng: rng}
}

func (p *RandomPalette) Color() tcell.Color {
	return Palette[p.rng.Intn(len(Palette))]
}

// TerminalRenderer draws boards onto a tcell screen, one screen cell per board cell
type TerminalRenderer struct {
	screen tcell.Screen
	colors ColorSource
}

func NewTerminalRenderer(screen tcell.Screen, colors ColorSource) *TerminalRenderer {
	return &TerminalRenderer{screen: screen, colors: colors}
}

// Display renders the board to the screen, clipping whatever does not fit
func (r *TerminalRenderer) Display(b *Board) {
	var (
		screenWidth, screenHeight = r.screen.Size()
		empty                     = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorBlack)
	)

	for y := 0; y < min(b.height, screenHeight); y++ {
		for x := 0; x < min(b.width, screenWidth); x++ {
			if b.cells[y*b.width+x] == Alive {
				style := tcell.StyleDefault.Foreground(r.colors.Color()).Background(tcell.ColorBlack)
				r.screen.SetContent(x, y, gridPosBlock, nil, style)
			} else {
				r.screen.SetContent(x, y, gridPosEmpty, nil, empty)
			}
		}
	}
	r.screen.Show()
}

// Clear clears the screen
func (r *TerminalRenderer) Clear() {
	r.screen.Clear()
	r.screen.Show()
}

// Sync redraws the whole screen, used after the terminal is resized
func (r *TerminalRenderer) Sync() {
	r.screen.Sync()
}
