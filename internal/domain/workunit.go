package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrMalformedRequest возвращается, когда в запросе нет обязательного поля WorkUnit.
	ErrMalformedRequest = errors.New("malformed request")
	// ErrMalformedPayload возвращается, когда тело сообщения из топика не является WorkUnit.
	ErrMalformedPayload = errors.New("malformed payload")
	// ErrPublishFailed оборачивает ошибку клиента брокера при отправке.
	ErrPublishFailed = errors.New("publish failed")
)

// WorkUnit — единица работы, которую продюсер публикует в топик.
// Создаётся на каждый запрос и после отправки не меняется.
type WorkUnit struct {
	ID         string `json:"id"`
	Definition string `json:"definition"`
}

// NewWorkUnit собирает WorkUnit и проверяет обязательные поля.
func NewWorkUnit(id, definition string) (WorkUnit, error) {
	wu := WorkUnit{ID: strings.TrimSpace(id), Definition: strings.TrimSpace(definition)}
	if err := wu.Validate(); err != nil {
		return WorkUnit{}, err
	}
	return wu, nil
}

// Validate проверяет, что id и definition непустые.
func (w WorkUnit) Validate() error {
	if strings.TrimSpace(w.ID) == "" {
		return fmt.Errorf("%w: id is required", ErrMalformedRequest)
	}
	if strings.TrimSpace(w.Definition) == "" {
		return fmt.Errorf("%w: definition is required", ErrMalformedRequest)
	}
	return nil
}

// Delivery — WorkUnit, полученный консьюмером, вместе с координатами в Kafka.
type Delivery struct {
	WorkUnit   WorkUnit
	Topic      string
	Partition  int
	Offset     int64
	Key        string
	ReceivedAt time.Time
}
