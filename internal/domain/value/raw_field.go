package value

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

// RawField хранит значение поля в том виде, в котором его прислал сервис
// номеров. Строки хранятся без кавычек, числа в десятичной записи.
type RawField struct {
	text    string
	present bool
}

func NewRawField(text string) RawField {
	return RawField{text: text, present: true}
}

// ParseRawField разбирает JSON-значение поля. null и отсутствующее поле дают
// пустой RawField.
func ParseRawField(raw []byte) RawField {
	raw = []byte(strings.TrimSpace(string(raw)))

	if len(raw) == 0 || string(raw) == "null" {
		return RawField{}
	}

	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return NewRawField(s)
		}
	}

	var n jsoniter.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		if f, err := n.Float64(); err == nil {
			return NewRawField(formatNumber(f))
		}
	}

	return NewRawField(string(raw))
}

// formatNumber приводит число к виду, который видит браузер после
// String(value): 1e3 -> "1000", 100.0 -> "100", экспонента только для очень
// больших и очень маленьких значений.
func formatNumber(f float64) string {
	if abs := math.Abs(f); abs >= 1e21 || (abs != 0 && abs < 1e-6) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}

	return strconv.FormatFloat(f, 'f', -1, 64)
}

func (f RawField) Present() bool {
	return f.present
}

func (f RawField) String() string {
	return f.text
}

// Int разбирает ведущее целое так же, как parseInt в браузере: пробелы в начале,
// знак, префикс 0x, затем цифры до первого постороннего символа. Если цифр нет,
// результат 0.
func (f RawField) Int() int64 {
	if !f.present {
		return 0
	}

	s := strings.TrimLeftFunc(f.text, unicode.IsSpace)

	negative := false

	if s != "" && (s[0] == '+' || s[0] == '-') {
		negative = s[0] == '-'
		s = s[1:]
	}

	base := int64(10)

	if len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		base = 16
		s = s[2:]
	}

	var n int64

	for i := range len(s) {
		d, ok := digitValue(s[i], base)
		if !ok {
			break
		}

		if n > (math.MaxInt64-d)/base {
			n = math.MaxInt64
			break
		}

		n = n*base + d
	}

	if negative {
		return -n
	}

	return n
}

func digitValue(c byte, base int64) (int64, bool) {
	var d int64

	switch {
	case c >= '0' && c <= '9':
		d = int64(c - '0')
	case c >= 'a' && c <= 'f':
		d = int64(c-'a') + 10
	case c >= 'A' && c <= 'F':
		d = int64(c-'A') + 10
	default:
		return 0, false
	}

	if d >= base {
		return 0, false
	}

	return d, true
}
