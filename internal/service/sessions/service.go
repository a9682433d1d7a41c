package sessions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/planbeau/booking-service/internal/domain"
	"github.com/planbeau/booking-service/internal/infra/clientstore"
	"github.com/planbeau/booking-service/internal/service/sessions/models"
)

// Service сервис состояния пользовательской сессии
type Service struct {
	store  ClientStore
	ttl    time.Duration
	logger Logger
	newID  func() string
}

// NewService создает новый экземпляр сервиса сессий.
// ttl = 0 означает хранение без срока.
func NewService(store ClientStore, ttl time.Duration, logger Logger) *Service {
	return &Service{
		store:  store,
		ttl:    ttl,
		logger: logger,
		newID:  uuid.NewString,
	}
}

// Create выдает новый идентификатор сессии
func (s *Service) Create(_ context.Context) *models.SessionResponse {
	id := s.newID()
	s.logger.Info("Create: issued session %s", id)
	return &models.SessionResponse{SessionID: id}
}

// RecentSearches возвращает последние поисковые запросы сессии
func (s *Service) RecentSearches(ctx context.Context, sessionID string) (*models.RecentSearchesResponse, error) {
	if err := validateSessionID(sessionID); err != nil {
		return nil, err
	}

	searches, err := s.loadSearches(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	return &models.RecentSearchesResponse{Searches: searches}, nil
}

// AddRecentSearch добавляет запрос в начало списка.
// Повтор переносится наверх, список ограничен domain.MaxRecentSearches.
func (s *Service) AddRecentSearch(ctx context.Context, sessionID, query string) (*models.RecentSearchesResponse, error) {
	if err := validateSessionID(sessionID); err != nil {
		return nil, err
	}

	query = normalizeQuery(query)
	if query == "" {
		return nil, fmt.Errorf("%w: query is required", ErrInvalidInput)
	}

	searches, err := s.loadSearches(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	searches = slices.DeleteFunc(searches, func(existing string) bool {
		return strings.EqualFold(existing, query)
	})
	searches = slices.Insert(searches, 0, query)
	if len(searches) > domain.MaxRecentSearches {
		searches = searches[:domain.MaxRecentSearches]
	}

	if err := s.save(ctx, clientstore.RecentSearchesKey(sessionID), searches); err != nil {
		s.logger.Error("AddRecentSearch: failed to save searches of session %s: %v", sessionID, err)
		return nil, err
	}

	return &models.RecentSearchesResponse{Searches: searches}, nil
}

// ClearRecentSearches удаляет список поисковых запросов
func (s *Service) ClearRecentSearches(ctx context.Context, sessionID string) error {
	if err := validateSessionID(sessionID); err != nil {
		return err
	}

	if err := s.store.Remove(ctx, clientstore.RecentSearchesKey(sessionID)); err != nil {
		s.logger.Error("ClearRecentSearches: failed for session %s: %v", sessionID, err)
		return fmt.Errorf("%w: ClearRecentSearches - store error: %v", ErrInternal, err)
	}

	return nil
}

// GetPrefill возвращает сохраненный выбор пакета и услуг
func (s *Service) GetPrefill(ctx context.Context, sessionID string) (*models.Prefill, error) {
	if err := validateSessionID(sessionID); err != nil {
		return nil, err
	}

	raw, err := s.store.Get(ctx, clientstore.PrefillKey(sessionID))
	if err != nil {
		if errors.Is(err, clientstore.ErrNotFound) {
			return nil, ErrPrefillNotFound
		}
		s.logger.Error("GetPrefill: store error for session %s: %v", sessionID, err)
		return nil, fmt.Errorf("%w: GetPrefill - store error: %v", ErrInternal, err)
	}

	var prefill models.Prefill
	if err := json.Unmarshal(raw, &prefill); err != nil {
		// Поврежденное значение равносильно отсутствию
		s.logger.Warn("GetPrefill: corrupted prefill in session %s: %v", sessionID, err)
		return nil, ErrPrefillNotFound
	}
	if prefill.ServiceIDs == nil {
		prefill.ServiceIDs = []int64{}
	}

	return &prefill, nil
}

// SavePrefill сохраняет выбор пакета и услуг (перезаписывает предыдущий)
func (s *Service) SavePrefill(ctx context.Context, sessionID string, prefill *models.Prefill) error {
	if err := validateSessionID(sessionID); err != nil {
		return err
	}
	if prefill.VendorID <= 0 {
		return fmt.Errorf("%w: vendorProfileId must be positive", ErrInvalidInput)
	}

	// Дубликаты услуг не сохраняем
	ids := slices.Clone(prefill.ServiceIDs)
	slices.Sort(ids)
	prefill.ServiceIDs = slices.Compact(ids)

	if err := s.save(ctx, clientstore.PrefillKey(sessionID), prefill); err != nil {
		s.logger.Error("SavePrefill: failed for session %s: %v", sessionID, err)
		return err
	}

	s.logger.Info("SavePrefill: session %s, vendor=%d, services=%d", sessionID, prefill.VendorID, len(prefill.ServiceIDs))
	return nil
}

func (s *Service) loadSearches(ctx context.Context, sessionID string) ([]string, error) {
	raw, err := s.store.Get(ctx, clientstore.RecentSearchesKey(sessionID))
	if err != nil {
		if errors.Is(err, clientstore.ErrNotFound) {
			return []string{}, nil
		}
		s.logger.Error("loadSearches: store error for session %s: %v", sessionID, err)
		return nil, fmt.Errorf("%w: store error: %v", ErrInternal, err)
	}

	var searches []string
	if err := json.Unmarshal(raw, &searches); err != nil {
		s.logger.Warn("loadSearches: corrupted searches in session %s: %v", sessionID, err)
		return []string{}, nil
	}
	if searches == nil {
		searches = []string{}
	}

	return searches, nil
}

func (s *Service) save(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: marshal: %v", ErrInternal, err)
	}
	if err := s.store.Set(ctx, key, raw, s.ttl); err != nil {
		return fmt.Errorf("%w: store error: %v", ErrInternal, err)
	}
	return nil
}

func validateSessionID(sessionID string) error {
	if strings.TrimSpace(sessionID) == "" {
		return fmt.Errorf("%w: sessionId is required", ErrInvalidInput)
	}
	if len(sessionID) > 64 {
		return fmt.Errorf("%w: sessionId is too long", ErrInvalidInput)
	}
	return nil
}

// normalizeQuery схлопывает пробелы и обрезает запрос до domain.MaxRecentSearchLength символов
func normalizeQuery(query string) string {
	query = strings.Join(strings.Fields(query), " ")
	runes := []rune(query)
	if len(runes) > domain.MaxRecentSearchLength {
		query = strings.TrimSpace(string(runes[:domain.MaxRecentSearchLength]))
	}
	return query
}
