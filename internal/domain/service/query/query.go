package query

import (
	"strings"

	"github.com/samber/lo"

	"num_market/internal/domain/entity"
	"num_market/internal/domain/value"
)

const lastSlot = value.PatternLength - 1

// State состояние строки поиска: ячейки цифр, выбранная категория и
// произвольный текст. Режимы взаимоисключающие, но запрос всегда несёт и
// шаблон, и список категорий.
type State struct {
	digits   [value.PatternLength]string
	selected []value.Category
	text     string
}

func NewState() *State {
	return &State{}
}

// InputDigit записывает ввод в ячейку index и возвращает индекс ячейки, на
// которую нужно перевести фокус. Остаются только десятичные цифры, не больше
// одной. Ввод без цифр игнорируется.
func (s *State) InputDigit(index int, raw string) int {
	if index < 0 || index > lastSlot {
		return index
	}

	// Ввод без цифр отбрасывается, ячейка не меняется. Очистка только
	// через ClearDigit.
	digit := onlyDigit(raw)
	if digit == "" {
		return index
	}

	s.digits[index] = digit
	s.selected = nil
	s.text = ""

	if index < lastSlot {
		return index + 1
	}

	return index
}

// ClearDigit очищает ячейку.
func (s *State) ClearDigit(index int) {
	if index < 0 || index > lastSlot {
		return
	}

	s.digits[index] = ""
}

// ToggleCategory выбирает категорию или снимает выбор, если она уже выбрана.
// Ячейки цифр и текст при этом очищаются.
func (s *State) ToggleCategory(c value.Category) {
	if lo.Contains(s.selected, c) {
		s.selected = nil
	} else {
		s.selected = []value.Category{c}
	}

	s.digits = [value.PatternLength]string{}
	s.text = ""
}

// SearchText переключает поиск на произвольный текст. Пустой текст
// возвращает поиск по шаблону.
func (s *State) SearchText(text string) {
	s.text = strings.TrimSpace(text)

	if s.text != "" {
		s.selected = nil
	}
}

func (s *State) Pattern() value.Pattern {
	return value.NewPattern(s.digits)
}

// Parameter то, что уходит в поле parameter запроса.
func (s *State) Parameter() string {
	if s.text != "" {
		return s.text
	}

	return s.Pattern().String()
}

func (s *State) Digit(index int) string {
	if index < 0 || index > lastSlot {
		return ""
	}

	return s.digits[index]
}

func (s *State) Text() string {
	return s.text
}

func (s *State) Selected() []value.Category {
	return lo.Map(s.selected, func(c value.Category, _ int) value.Category { return c })
}

func (s *State) IsSelected(c value.Category) bool {
	return lo.Contains(s.selected, c)
}

// Payload запрос для страницы page.
func (s *State) Payload(page int, loadMore bool) entity.Query {
	return entity.Query{
		LoadMore:  loadMore,
		Parameter: s.Parameter(),
		TypeList:  lo.Map(s.selected, func(c value.Category, _ int) string { return c.String() }),
		Page:      page,
	}
}

func onlyDigit(raw string) string {
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			return string(r)
		}
	}

	return ""
}
