// Package clientstore holds per-session state that the web client used to keep
// in browser storage: recent searches, prefilled selections, view markers,
// plus cached vendor business hours.
package clientstore

import (
	"context"
	"fmt"
	"time"
)

// Store key/value хранилище с TTL. ttl = 0 означает бессрочное хранение.
// Запись по одному ключу работает по принципу last-write-wins.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Remove(ctx context.Context, key string) error
}

// HoursKey ключ кэша рабочих часов вендора
func HoursKey(vendorID int64) string {
	return fmt.Sprintf("vendor:%d:hours", vendorID)
}

// RecentSearchesKey ключ списка недавних поисков сессии
func RecentSearchesKey(sessionID string) string {
	return "session:" + sessionID + ":recent_searches"
}

// PrefillKey ключ предвыбранных пакета и услуг сессии
func PrefillKey(sessionID string) string {
	return "session:" + sessionID + ":prefill"
}

// ViewKey маркер просмотра профиля вендора в рамках сессии
func ViewKey(sessionID string, vendorID int64) string {
	return fmt.Sprintf("session:%s:viewed:%d", sessionID, vendorID)
}
