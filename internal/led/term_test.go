package led

import (
	"sync"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/coreman2200/funtimes-pixelclock/internal/model"
	"github.com/coreman2200/funtimes-pixelclock/internal/ring"
)

// mockScreen is a minimal tcell.Screen that records drawn cells.
type mockScreen struct {
	tcell.Screen
	mu     sync.Mutex
	cells  map[[2]int]tcell.Style
	shows  int
	fini   chan struct{}
	closed bool
}

func newMockScreen() *mockScreen {
	return &mockScreen{cells: map[[2]int]tcell.Style{}, fini: make(chan struct{})}
}

func (m *mockScreen) Init() error      { return nil }
func (m *mockScreen) Size() (int, int) { return 80, 24 }
func (m *mockScreen) Sync()            {}
func (m *mockScreen) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cells = map[[2]int]tcell.Style{}
}
func (m *mockScreen) Show() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.shows++
}
func (m *mockScreen) SetContent(x, y int, mainc rune, combc []rune, style tcell.Style) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cells[[2]int{x, y}] = style
}
func (m *mockScreen) PollEvent() tcell.Event {
	<-m.fini
	return nil
}
func (m *mockScreen) Fini() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.closed {
		m.closed = true
		close(m.fini)
	}
}

func TestCellPlacesZeroAtTop(t *testing.T) {
	x, y := Cell(0, 60, 80, 24)
	assert.Equal(t, 40, x)
	assert.Less(t, y, 12)

	// a quarter turn is to the right of center, three quarters to the left
	x, y = Cell(15, 60, 80, 24)
	assert.Greater(t, x, 40)
	assert.Equal(t, 12, y)
	x, _ = Cell(45, 60, 80, 24)
	assert.Less(t, x, 40)

	x, y = Cell(30, 60, 80, 24)
	assert.Equal(t, 40, x)
	assert.Greater(t, y, 12)
}

func TestTermShowDrawsLogicalLayout(t *testing.T) {
	defer goleak.VerifyNone(t)

	r, err := ring.New(60, -2, true)
	require.NoError(t, err)
	ms := newMockScreen()
	term := NewTermScreen(ms, r, nil)
	require.NoError(t, term.Begin())

	r.Set(term, 0, model.Red)
	require.NoError(t, term.Show())

	x, y := Cell(0, 60, 80, 24)
	ms.mu.Lock()
	style, ok := ms.cells[[2]int{x, y}]
	shows := ms.shows
	ms.mu.Unlock()
	require.True(t, ok)
	assert.Equal(t, tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 0, 0)), style)
	assert.Equal(t, 1, shows)

	require.NoError(t, term.Close())
}

func TestTermQuitOnce(t *testing.T) {
	defer goleak.VerifyNone(t)

	r, err := ring.New(12, 0, false)
	require.NoError(t, err)
	calls := 0
	term := NewTermScreen(newMockScreen(), r, func() { calls++ })
	require.NoError(t, term.Begin())
	term.quit()
	term.quit()
	assert.Equal(t, 1, calls)
	require.NoError(t, term.Close())
	require.NoError(t, term.Close())
}

func TestTermShowBeforeBegin(t *testing.T) {
	r, err := ring.New(12, 0, false)
	require.NoError(t, err)
	assert.Error(t, NewTermScreen(newMockScreen(), r, nil).Show())
}
