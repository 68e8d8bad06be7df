package value

import "strings"

const (
	PatternLength = 11
	Wildcard      = '_'
)

// Pattern шаблон номера: 11 символов, каждый либо цифра, либо Wildcard.
type Pattern string

// NewPattern собирает шаблон из ячеек ввода. Пустая ячейка превращается в
// Wildcard, из непустой берётся первый символ.
func NewPattern(slots [PatternLength]string) Pattern {
	var b strings.Builder

	b.Grow(PatternLength)

	for _, slot := range slots {
		if slot == "" {
			b.WriteByte(Wildcard)
			continue
		}

		b.WriteByte(slot[0])
	}

	return Pattern(b.String())
}

// BrowseAll шаблон без единой цифры.
func BrowseAll() Pattern {
	return Pattern(strings.Repeat(string(Wildcard), PatternLength))
}

func (p Pattern) String() string {
	return string(p)
}

func (p Pattern) IsBrowseAll() bool {
	return p == BrowseAll()
}
