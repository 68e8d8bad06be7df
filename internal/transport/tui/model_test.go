package tui_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"num_market/internal/domain/entity"
	"num_market/internal/domain/service/listing"
	"num_market/internal/domain/value"
	"num_market/internal/transport/tui"
)

type pagedFetcher struct {
	mu       sync.Mutex
	pageSize int
	fail     bool
}

func (f *pagedFetcher) fetch(_ context.Context, q entity.Query) ([]entity.RawListing, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.fail {
		return nil, errors.New("connection refused")
	}

	rows := make([]entity.RawListing, 0, f.pageSize)

	for i := range f.pageSize {
		rows = append(rows, entity.RawListing{
			BillID:         value.NewRawField(fmt.Sprintf("1380000%02d%02d", q.Page, i)),
			Deposit:        value.NewRawField("10"),
			MonthlyFee:     value.NewRawField("99"),
			ContractPeriod: value.NewRawField("36"),
			Premium:        value.NewRawField("0"),
		})
	}

	return rows, nil
}

func newModel(t *testing.T, pageSize int) (*tui.Model, *listing.FetcherMock, *pagedFetcher) {
	t.Helper()

	pf := &pagedFetcher{pageSize: pageSize}
	fetcher := &listing.FetcherMock{FetchFunc: pf.fetch}

	m := tui.New(context.Background(), fetcher, tui.Options{PrefetchDistance: 2})
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	return m, fetcher, pf
}

// run выполняет команду и отдаёт модели результаты загрузок.
func run(m *tui.Model, cmd tea.Cmd) {
	if cmd == nil {
		return
	}

	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			run(m, c)
		}
	case tui.FetchedMsg:
		_, next := m.Update(msg)
		run(m, next)
	}
}

func press(m *tui.Model, msg tea.KeyMsg) tea.Cmd {
	_, cmd := m.Update(msg)
	return cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestInitLoadsFirstPage(t *testing.T) {
	rq := require.New(t)

	m, fetcher, _ := newModel(t, 5)

	run(m, m.Init())

	calls := fetcher.FetchCalls()
	rq.Len(calls, 1)
	rq.Equal(entity.Query{LoadMore: false, Parameter: "___________", TypeList: []string{}, Page: 1}, calls[0].Query)

	rq.Equal(5, m.Controller().Len())
	rq.False(m.Controller().Loading())
	rq.NoError(m.Err())

	rows := m.Controller().Rows()
	rq.Equal("50", rows[0].Deposit)
	rq.Equal("99", rows[0].MonthlyFee)
	rq.Equal("36", rows[0].ContractPeriod)

	rq.Contains(m.View(), rows[0].Number)
}

func TestDigitSearch(t *testing.T) {
	rq := require.New(t)

	m, fetcher, _ := newModel(t, 1)
	run(m, m.Init())

	for _, d := range []string{"1", "x", "3", "8"} {
		run(m, press(m, runes(d)))
	}

	rq.Equal(3, m.Slot())
	rq.Equal("138________", m.State().Pattern().String())

	run(m, press(m, tea.KeyMsg{Type: tea.KeyEnter}))

	calls := fetcher.FetchCalls()
	rq.Len(calls, 2)
	rq.Equal("138________", calls[1].Query.Parameter)
	rq.Equal(1, calls[1].Query.Page)
	rq.False(calls[1].Query.LoadMore)
}

func TestInvalidKeyKeepsDigit(t *testing.T) {
	rq := require.New(t)

	m, _, _ := newModel(t, 1)

	press(m, runes("5"))
	rq.Equal(1, m.Slot())

	press(m, tea.KeyMsg{Type: tea.KeyLeft})
	rq.Equal(0, m.Slot())

	for _, k := range []string{"a", "-", "５"} {
		press(m, runes(k))

		rq.Equal(0, m.Slot())
		rq.Equal("5", m.State().Digit(0))
	}

	rq.Equal("5__________", m.State().Pattern().String())
}

func TestDigitBackspace(t *testing.T) {
	rq := require.New(t)

	m, _, _ := newModel(t, 1)

	press(m, runes("1"))
	press(m, runes("3"))
	rq.Equal(2, m.Slot())

	press(m, tea.KeyMsg{Type: tea.KeyBackspace})
	rq.Equal(1, m.Slot())
	rq.Equal("1__________", m.State().Pattern().String())
}

func TestCategoryToggleSearches(t *testing.T) {
	rq := require.New(t)

	m, fetcher, _ := newModel(t, 1)
	run(m, m.Init())

	press(m, runes("1"))

	run(m, press(m, tea.KeyMsg{Type: tea.KeyTab}))
	rq.Equal(tui.FocusCategories, m.Focus())

	press(m, tea.KeyMsg{Type: tea.KeyRight})
	run(m, press(m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}))

	calls := fetcher.FetchCalls()
	rq.Len(calls, 2)
	rq.Equal(entity.Query{LoadMore: false, Parameter: "___________", TypeList: []string{"ABC"}, Page: 1}, calls[1].Query)

	// Повторное нажатие снимает выбор.
	run(m, press(m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}))

	calls = fetcher.FetchCalls()
	rq.Len(calls, 3)
	rq.Equal([]string{}, calls[2].Query.TypeList)
}

func TestTextSearch(t *testing.T) {
	rq := require.New(t)

	m, fetcher, _ := newModel(t, 1)
	run(m, m.Init())

	press(m, runes("/"))
	press(m, runes("宁波"))
	run(m, press(m, tea.KeyMsg{Type: tea.KeyEnter}))

	calls := fetcher.FetchCalls()
	rq.Len(calls, 2)
	rq.Equal("宁波", calls[1].Query.Parameter)
	rq.Equal("宁波", m.State().Text())
}

func TestScrollNearEndLoadsMore(t *testing.T) {
	rq := require.New(t)

	m, fetcher, _ := newModel(t, 5)
	run(m, m.Init())

	press(m, tea.KeyMsg{Type: tea.KeyTab})
	press(m, tea.KeyMsg{Type: tea.KeyTab})
	rq.Equal(tui.FocusList, m.Focus())

	// Курсор ещё далеко от конца.
	for range 2 {
		run(m, press(m, tea.KeyMsg{Type: tea.KeyDown}))
	}

	rq.Len(fetcher.FetchCalls(), 1)

	// Граница пересечена, загрузка ещё не завершилась.
	pending := press(m, tea.KeyMsg{Type: tea.KeyDown})
	rq.NotNil(pending)
	rq.True(m.Controller().Loading())
	rq.Equal(2, m.Controller().Page())

	rq.Nil(press(m, tea.KeyMsg{Type: tea.KeyDown}))

	run(m, pending)

	calls := fetcher.FetchCalls()
	rq.Len(calls, 2)
	rq.Equal(entity.Query{LoadMore: true, Parameter: "___________", TypeList: []string{}, Page: 2}, calls[1].Query)
	rq.Equal(10, m.Controller().Len())
	rq.Equal(4, m.Cursor())
}

func TestFailedFetchKeepsRows(t *testing.T) {
	rq := require.New(t)

	m, _, pf := newModel(t, 3)
	run(m, m.Init())

	before := m.Controller().Rows()
	view := m.View()
	pf.fail = true

	run(m, press(m, tea.KeyMsg{Type: tea.KeyEnter}))

	rq.ErrorContains(m.Err(), "connection refused")
	rq.Equal(before, m.Controller().Rows())
	rq.False(m.Controller().Loading())

	// Ошибка не показывается пользователю.
	rq.Equal(view, m.View())
	rq.NotContains(m.View(), "connection refused")
}

func TestQuit(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name string
		tabs int
		key  tea.KeyMsg
	}{
		{name: "q from digits", tabs: 0, key: runes("q")},
		{name: "q from categories", tabs: 1, key: runes("q")},
		{name: "q from list", tabs: 2, key: runes("q")},
		{name: "ctrl+c from digits", tabs: 0, key: tea.KeyMsg{Type: tea.KeyCtrlC}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			m, _, _ := newModel(t, 1)

			for range tc.tabs {
				press(m, tea.KeyMsg{Type: tea.KeyTab})
			}

			cmd := press(m, tc.key)
			rq.NotNil(cmd)
			rq.Equal(tea.Quit(), cmd())
		})
	}
}

func TestDigitsWinOverBindings(t *testing.T) {
	rq := require.New(t)

	m, _, _ := newModel(t, 1)

	// Цифра вместе с символом привязки в одном вводе всё равно пишется в ячейку.
	rq.Nil(press(m, runes("q7")))
	rq.Equal("7", m.State().Digit(0))
	rq.Equal(1, m.Slot())
	rq.Equal(tui.FocusDigits, m.Focus())
}
