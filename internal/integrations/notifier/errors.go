package notifier

import "errors"

var (
	// ErrPublish возвращается, когда событие не удалось записать в брокер
	ErrPublish = errors.New("notifier: failed to publish event")

	// ErrEncode возвращается при ошибке сериализации события
	ErrEncode = errors.New("notifier: failed to encode event")
)
