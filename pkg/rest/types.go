// Данный файл должен быть сгенерирован из openapi спецификации и называться types.gen.go
package rest

import jsoniter "github.com/json-iterator/go"

// NumbersRequest Запрос страницы номеров
type NumbersRequest struct {
	// LoadMore Продолжение текущего запроса (следующая страница)
	LoadMore bool `json:"loadMore"`

	// Parameter Шаблон из 11 символов или произвольный текст
	Parameter string `json:"parameter"`

	// TypeList Выбранные категории номеров
	TypeList []string `json:"typeList" validate:"max=1"`

	// Page Номер страницы, начиная с 1
	Page int `json:"page" validate:"gte=1"`
}

// NumbersResponse Ответ сервиса номеров
type NumbersResponse struct {
	Data *[]Listing `json:"data"`
}

// Listing Предложение номера в формате сервиса номеров. Числовые поля приходят
// то строкой, то числом, поэтому хранятся как есть.
type Listing struct {
	BillID jsoniter.RawMessage `json:"billId"`
	LhYcje jsoniter.RawMessage `json:"lhYcje"`
	LhBdje jsoniter.RawMessage `json:"lhBdje"`
	LhQyq  jsoniter.RawMessage `json:"lhQyq"`
	Islh   jsoniter.RawMessage `json:"islh"`
}

// Error Модель ошибок
type Error struct {
	// Code Код ошибки
	Code ErrorCode `json:"code"`

	// Message Сообщение об ошибке (для отображения в UI в будущем)
	Message string `json:"message"`

	// SupportID Идентификатор запроса для обращения в поддержку
	SupportID string `json:"supportId"`
}

// ErrorCode Код ошибки
type ErrorCode string
