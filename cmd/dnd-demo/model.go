package main

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/sahilm/fuzzy"

	"github.com/petersn/dnd"
)

const (
	listTop = 3 // rows above the list: title, order bar, spacer
	fps     = 60
)

var (
	subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	special   = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(highlight)

	handleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#909090", Dark: "#585858"})

	handleActiveStyle = lipgloss.NewStyle().
				Foreground(highlight).
				Bold(true)

	draggedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(highlight)

	matchStyle = lipgloss.NewStyle().
			Foreground(special).
			Underline(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#666", Dark: "#AAA"})

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#999", Dark: "#666"})
)

// frameMsg drives one engine tick per rendered frame.
type frameMsg time.Time

func frameCmd() tea.Cmd {
	return tea.Tick(time.Second/fps, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

type colorItem struct {
	name  string
	color string
}

// pendingPress is a handle press that has not yet moved past the drag
// threshold.
type pendingPress struct {
	id     dnd.ItemID
	origin dnd.Vec2
	x, y   int
}

type model struct {
	cfg    config
	width  int
	height int

	zonePrefix string
	engine     *dnd.Engine
	items      []colorItem // display order, updated every frame
	positions  map[dnd.ItemID]dnd.Vec2
	rendered   []dnd.RenderItem

	pointer   *dnd.Vec2
	pressed   bool
	pending   *pendingPress
	dragStart *dnd.DragStart
	cancel    bool
	lastFrame time.Time

	searching bool
	search    textinput.Model
	matched   dnd.ItemID

	status string
}

func newModel(cfg config) model {
	items := make([]colorItem, len(cfg.Items))
	positions := make(map[dnd.ItemID]dnd.Vec2, len(cfg.Items))
	for i, it := range cfg.Items {
		items[i] = colorItem{name: it.Name, color: it.Color}
		positions[dnd.ItemID(it.Name)] = dnd.Vec2{Y: float64(listTop + i)}
	}

	ti := textinput.New()
	ti.Placeholder = "jump to item..."
	ti.CharLimit = 64
	ti.Width = 30

	return model{
		cfg:        cfg,
		zonePrefix: zone.NewPrefix(),
		engine: dnd.New(dnd.Config{
			Axis:     dnd.Vertical,
			Duration: cfg.duration(),
			Easing:   cfg.easing(),
		}),
		items:     items,
		positions: positions,
		search:    ti,
		status:    "drag a handle to reorder",
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, frameCmd())
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)

	case tea.MouseMsg:
		return m.updateMouse(msg)

	case frameMsg:
		return m.tick(time.Time(msg))
	}

	return m, nil
}

func (m model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		switch msg.String() {
		case "esc", "enter":
			m.searching = false
			m.search.Blur()
			m.search.SetValue("")
			m.matched = ""
			return m, nil
		default:
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			m.matched = m.bestMatch(m.search.Value())
			return m, cmd
		}
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "/":
		m.searching = true
		m.search.Focus()
		return m, textinput.Blink
	case "y", "enter":
		order := make([]string, len(m.items))
		for i, it := range m.items {
			order[i] = it.name
		}
		if err := clipboard.WriteAll(strings.Join(order, ", ")); err != nil {
			m.status = fmt.Sprintf("couldn't write to clipboard: %v", err)
		} else {
			m.status = "order copied to clipboard"
		}
	case "esc":
		if _, dragging := m.engine.Dragging(); dragging {
			m.cancel = true
		}
	}
	return m, nil
}

func (m model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	m.pointer = &dnd.Vec2{X: float64(msg.X), Y: float64(msg.Y)}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		m.pressed = true
		// Check each item's handle to see if the press is in bounds.
		for _, it := range m.items {
			if zone.Get(m.zonePrefix + it.name).InBounds(msg) {
				id := dnd.ItemID(it.name)
				m.pending = &pendingPress{
					id:     id,
					origin: m.positions[id],
					x:      msg.X,
					y:      msg.Y,
				}
				break
			}
		}

	case tea.MouseActionMotion:
		if m.pending == nil {
			return m, nil
		}
		// Arm the drag once the press has moved past the threshold. The
		// engine only ever sees the armed signal, never raw hit tests.
		dx := abs(msg.X - m.pending.x)
		dy := abs(msg.Y - m.pending.y)
		if dx >= m.cfg.ThresholdCells || dy >= m.cfg.ThresholdCells {
			m.dragStart = &dnd.DragStart{ID: m.pending.id, HandleOrigin: m.pending.origin}
			m.pending = nil
		}

	case tea.MouseActionRelease:
		if msg.Button == tea.MouseButtonLeft {
			m.pressed = false
			m.pending = nil
		}
	}

	return m, nil
}

// tick advances the drag engine by one frame and applies the resulting order
// to the backing items.
func (m model) tick(now time.Time) (tea.Model, tea.Cmd) {
	dt := time.Second / fps
	if !m.lastFrame.IsZero() {
		dt = now.Sub(m.lastFrame)
	}
	m.lastFrame = now

	layouts := make([]dnd.ItemLayout, len(m.items))
	for i, it := range m.items {
		id := dnd.ItemID(it.name)
		layouts[i] = dnd.ItemLayout{
			ID:   id,
			Rect: dnd.Rect{Min: m.positions[id], Size: dnd.Vec2{X: float64(m.rowWidth()), Y: 1}},
		}
	}

	res := m.engine.Tick(dnd.FrameInput{
		Pointer: m.pointer,
		Pressed: m.pressed,
		Start:   m.dragStart,
		Cancel:  m.cancel,
		Origin:  dnd.Vec2{Y: listTop},
		DT:      dt,
	}, layouts)
	m.dragStart = nil
	m.cancel = false

	byName := make(map[string]colorItem, len(m.items))
	for _, it := range m.items {
		byName[it.name] = it
	}
	m.items = m.items[:0]
	for _, id := range res.Order {
		m.items = append(m.items, byName[string(id)])
	}

	m.rendered = res.Items
	m.positions = make(map[dnd.ItemID]dnd.Vec2, len(res.Items))
	for _, ri := range res.Items {
		m.positions[ri.ID] = ri.Pos
	}

	if res.Event != nil {
		switch res.Event.Type {
		case dnd.Completed:
			names := make([]string, len(res.Event.Order))
			for i, id := range res.Event.Order {
				names[i] = string(id)
			}
			m.status = "committed: " + strings.Join(names, " > ")
		case dnd.Cancelled:
			m.status = "drag " + res.Event.Reason.String()
		}
	}

	return m, frameCmd()
}

func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Color Sort") + "\n")
	b.WriteString(m.orderBar() + "\n")
	b.WriteString("\n")
	b.WriteString(strings.Join(m.listLines(), "\n"))
	b.WriteString("\n\n")

	if m.searching {
		b.WriteString(m.search.View() + "\n")
	} else {
		b.WriteString(statusStyle.Render(m.status) + "\n")
	}
	b.WriteString(helpStyle.Render("drag ≡ to reorder · esc cancel · / jump · y copy order · q quit"))

	return zone.Scan(b.String())
}

// orderBar renders one swatch per item in the current display order, so a
// committed reorder is visible at a glance.
func (m model) orderBar() string {
	var b strings.Builder
	for _, it := range m.items {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(it.color)).Render("██"))
	}
	return b.String()
}

// listLines paints every row at its animated position. Non-dragged rows go
// first so the floating one is drawn on top when rows collide mid-slide.
func (m model) listLines() []string {
	lines := make([]string, len(m.items))

	place := func(ri dnd.RenderItem) {
		row := int(math.Round(ri.Pos.Y)) - listTop
		if row < 0 || row >= len(lines) {
			return
		}
		indent := int(math.Round(ri.Pos.X))
		if indent < 0 {
			indent = 0
		}
		lines[row] = strings.Repeat(" ", indent) + m.renderRow(ri)
	}

	for _, ri := range m.rendered {
		if !ri.Dragged {
			place(ri)
		}
	}
	for _, ri := range m.rendered {
		if ri.Dragged {
			place(ri)
		}
	}
	return lines
}

func (m model) renderRow(ri dnd.RenderItem) string {
	item, ok := m.itemByName(string(ri.ID))
	if !ok {
		return ""
	}

	hStyle := handleStyle
	nStyle := lipgloss.NewStyle()
	if ri.Dragged {
		hStyle = handleActiveStyle
		nStyle = draggedStyle
	} else if ri.ID == m.matched {
		nStyle = matchStyle
	}

	handle := zone.Mark(m.zonePrefix+item.name, hStyle.Render("≡≡"))
	swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(item.color)).Render("██")
	return handle + " " + swatch + " " + nStyle.Render(item.name)
}

func (m model) itemByName(name string) (colorItem, bool) {
	for _, it := range m.items {
		if it.name == name {
			return it, true
		}
	}
	return colorItem{}, false
}

// bestMatch fuzzy-matches the query against item names and returns the
// winning identity, or empty when nothing matches.
func (m model) bestMatch(query string) dnd.ItemID {
	if query == "" {
		return ""
	}
	names := make([]string, len(m.items))
	for i, it := range m.items {
		names[i] = it.name
	}
	matches := fuzzy.Find(query, names)
	if len(matches) == 0 {
		return ""
	}
	return dnd.ItemID(names[matches[0].Index])
}

func (m model) rowWidth() int {
	if m.width > 40 {
		return 40
	}
	return m.width
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
