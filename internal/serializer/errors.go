package serializer

// FieldErrors — ошибки валидации по полям: имя поля -> список сообщений.
// Формат тела ответа 400 совпадает с этим типом один в один.
type FieldErrors map[string][]string

// Add добавляет сообщение к полю.
func (e FieldErrors) Add(field, msg string) {
	e[field] = append(e[field], msg)
}

// Merge переносит все ошибки из other.
func (e FieldErrors) Merge(other FieldErrors) {
	for f, msgs := range other {
		e[f] = append(e[f], msgs...)
	}
}

// Сообщения в стиле полевых ошибок API.
const (
	MsgRequired = "This field is required."
	MsgBlank    = "This field may not be blank."
	MsgNumber   = "A valid number is required."
	MsgEmail    = "Enter a valid email address."
)
