package models

import "errors"

// ErrNotFound возвращается хранилищем, когда запрошенная запись отсутствует.
// Для аналитики отсутствие мероприятия - фатальная ошибка запроса.
var ErrNotFound = errors.New("record not found")
