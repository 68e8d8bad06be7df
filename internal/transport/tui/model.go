package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"num_market/internal/domain/service/listing"
	"num_market/internal/domain/service/query"
	"num_market/internal/domain/value"
)

// Focus секция, которая получает ввод с клавиатуры.
type Focus int

const (
	FocusDigits Focus = iota
	FocusCategories
	FocusList

	focusCount
)

const (
	defaultPrefetchDistance = 3
	defaultRequestTimeout   = 30 * time.Second

	// Строки, занятые поиском, категориями и статусом.
	chromeHeight = 11
)

type Options struct {
	// PrefetchDistance сколько строк до конца списка должно остаться под
	// курсором, чтобы началась загрузка следующей страницы.
	PrefetchDistance int
	RequestTimeout   time.Duration
}

// FetchedMsg результат загрузки страницы.
type FetchedMsg struct {
	Result listing.Result
}

// Model браузер каталога номеров.
type Model struct {
	ctx        context.Context
	state      *query.State
	controller *listing.Controller
	categories []value.Category
	options    Options

	keys    KeyMap
	styles  Styles
	help    help.Model
	text    textinput.Model
	spinner spinner.Model

	focus    Focus
	slot     int
	category int
	cursor   int
	offset   int

	// lastErr не отображается, интерфейс не имеет состояния ошибки.
	lastErr error

	width  int
	height int
}

// New создаёт модель. ctx используется для загрузок и несёт логгер.
func New(ctx context.Context, fetcher listing.Fetcher, options Options) *Model {
	if options.PrefetchDistance <= 0 {
		options.PrefetchDistance = defaultPrefetchDistance
	}

	if options.RequestTimeout <= 0 {
		options.RequestTimeout = defaultRequestTimeout
	}

	state := query.NewState()

	text := textinput.New()
	text.Placeholder = "number, region or keyword"
	text.Prompt = "/ "
	text.CharLimit = 64

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = s.Style.Foreground(ColorAccent)

	return &Model{
		ctx:        ctx,
		state:      state,
		controller: listing.NewController(fetcher, state),
		categories: value.Categories(),
		options:    options,
		keys:       DefaultKeyMap(),
		styles:     DefaultStyles(),
		help:       help.New(),
		text:       text,
		spinner:    s,
	}
}

// Init загружает первую страницу каталога.
func (m *Model) Init() tea.Cmd {
	return m.search()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.scrollToCursor()

		return m, nil

	case FetchedMsg:
		m.apply(msg.Result)
		return m, nil

	case spinner.TickMsg:
		if !m.controller.Loading() {
			return m, nil
		}

		var cmd tea.Cmd

		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.text.Focused() {
		return m.handleTextKey(msg)
	}

	// Цифра в секции ячеек всегда уходит в ячейку, глобальные привязки её
	// не перехватывают.
	if m.focus == FocusDigits && isDigitKey(msg) {
		m.slot = m.state.InputDigit(m.slot, string(msg.Runes))
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.NextFocus):
		m.focus = (m.focus + 1) % focusCount
		return m, nil
	case key.Matches(msg, m.keys.PrevFocus):
		m.focus = (m.focus + focusCount - 1) % focusCount
		return m, nil
	case key.Matches(msg, m.keys.Search):
		m.text.SetValue(m.state.Text())
		return m, m.text.Focus()
	}

	switch m.focus {
	case FocusDigits:
		return m.handleDigitKey(msg)
	case FocusCategories:
		return m.handleCategoryKey(msg)
	case FocusList:
		return m.handleListKey(msg)
	}

	return m, nil
}

func (m *Model) handleTextKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit
	case key.Matches(msg, m.keys.Escape):
		m.text.Blur()
		return m, nil
	case key.Matches(msg, m.keys.Enter):
		m.text.Blur()
		m.state.SearchText(m.text.Value())

		return m, m.search()
	}

	var cmd tea.Cmd

	m.text, cmd = m.text.Update(msg)

	return m, cmd
}

func (m *Model) handleDigitKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Enter):
		return m, m.search()
	case key.Matches(msg, m.keys.Left):
		m.slot = max(m.slot-1, 0)
	case key.Matches(msg, m.keys.Right):
		m.slot = min(m.slot+1, value.PatternLength-1)
	case key.Matches(msg, m.keys.Clear):
		if m.state.Digit(m.slot) == "" && m.slot > 0 {
			m.slot--
		}

		m.state.ClearDigit(m.slot)
	case key.Matches(msg, m.keys.Down):
		m.focus = FocusList
	}

	return m, nil
}

func isDigitKey(msg tea.KeyMsg) bool {
	if msg.Type != tea.KeyRunes {
		return false
	}

	for _, r := range msg.Runes {
		if r >= '0' && r <= '9' {
			return true
		}
	}

	return false
}

func (m *Model) handleCategoryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Left):
		m.category = max(m.category-1, 0)
	case key.Matches(msg, m.keys.Right):
		m.category = min(m.category+1, len(m.categories)-1)
	case key.Matches(msg, m.keys.Toggle), key.Matches(msg, m.keys.Enter):
		m.state.ToggleCategory(m.categories[m.category])
		return m, m.search()
	case key.Matches(msg, m.keys.Down):
		m.focus = FocusList
	}

	return m, nil
}

func (m *Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Enter):
		return m, m.search()
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.PageUp):
		m.moveCursor(-m.listHeight())
	case key.Matches(msg, m.keys.PageDown):
		m.moveCursor(m.listHeight())
	default:
		return m, nil
	}

	return m, m.more()
}

// search начинает новый запрос с первой страницы.
func (m *Model) search() tea.Cmd {
	req := m.controller.Search()

	return tea.Batch(m.fetch(req), m.spinner.Tick)
}

// more догружает следующую страницу, когда курсор подошёл к концу списка.
func (m *Model) more() tea.Cmd {
	if !m.nearEnd() {
		return nil
	}

	req, ok := m.controller.More()
	if !ok {
		return nil
	}

	return tea.Batch(m.fetch(req), m.spinner.Tick)
}

// fetch выполняет запрос вне цикла событий. Состояние меняется только при
// обработке FetchedMsg.
func (m *Model) fetch(req listing.Request) tea.Cmd {
	controller := m.controller
	parent := m.ctx
	timeout := m.options.RequestTimeout

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(parent, timeout)
		defer cancel()

		return FetchedMsg{Result: controller.Fetch(ctx, req)}
	}
}

func (m *Model) apply(res listing.Result) {
	m.controller.Apply(m.ctx, res)

	m.lastErr = res.Err
	if !res.OK() {
		return
	}

	if !res.Request.Append() {
		m.cursor = 0
		m.offset = 0
	}
}

func (m *Model) nearEnd() bool {
	n := m.controller.Len()

	return n > 0 && m.cursor >= n-m.options.PrefetchDistance
}

func (m *Model) moveCursor(delta int) {
	n := m.controller.Len()
	if n == 0 {
		m.cursor = 0
		return
	}

	m.cursor = min(max(m.cursor+delta, 0), n-1)
	m.scrollToCursor()
}

func (m *Model) scrollToCursor() {
	h := m.listHeight()

	switch {
	case m.cursor < m.offset:
		m.offset = m.cursor
	case m.cursor >= m.offset+h:
		m.offset = m.cursor - h + 1
	}
}

func (m *Model) listHeight() int {
	return max(m.height-chromeHeight, 1)
}

func (m *Model) Focus() Focus {
	return m.focus
}

func (m *Model) Cursor() int {
	return m.cursor
}

func (m *Model) Slot() int {
	return m.slot
}

func (m *Model) State() *query.State {
	return m.state
}

func (m *Model) Controller() *listing.Controller {
	return m.controller
}

// Err последняя ошибка загрузки или nil после успешной.
func (m *Model) Err() error {
	return m.lastErr
}
