package clientstore

import "errors"

var (
	// ErrNotFound возвращается, когда ключ отсутствует или истек
	ErrNotFound = errors.New("client store: key not found")

	// ErrStore возвращается при ошибке хранилища
	ErrStore = errors.New("client store: storage error")
)
