package serializer

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
)

// Decimal принимает из JSON строку ("10.00") или число (10) и хранит исходный
// текст, чтобы проверить формат до преобразования в float.
type Decimal struct {
	Raw string
}

func (d *Decimal) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		d.Raw = s
		return nil
	}
	d.Raw = string(b)
	return nil
}

var numberRe = regexp.MustCompile(`^-?\d+(\.\d+)?$`)

// Validate проверяет формат: число, не более 5 цифр всего и 2 после точки.
func (d Decimal) Validate() []string {
	raw := strings.TrimSpace(d.Raw)
	if !numberRe.MatchString(raw) {
		return []string{MsgNumber}
	}
	var msgs []string
	digits := strings.TrimPrefix(raw, "-")
	intPart, fracPart, _ := strings.Cut(digits, ".")
	if len(intPart)+len(fracPart) > 5 {
		msgs = append(msgs, "Ensure that there are no more than 5 digits in total.")
	}
	if len(fracPart) > 2 {
		msgs = append(msgs, "Ensure that there are no more than 2 decimal places.")
	}
	return msgs
}

// Value возвращает числовое значение. Вызывать после успешной Validate.
func (d Decimal) Value() float64 {
	v, _ := strconv.ParseFloat(strings.TrimSpace(d.Raw), 64)
	return v
}

// FormatCost приводит стоимость к каноничному виду с двумя знаками ("10.00").
func FormatCost(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
