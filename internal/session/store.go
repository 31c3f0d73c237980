package session

import (
	"errors"
	"sync"

	"github.com/jimezsa/kazi/internal/locale"
	"github.com/jimezsa/kazi/internal/models"
	"github.com/jimezsa/kazi/internal/storage"
	"github.com/rs/zerolog"
)

// Store owns the session state. Every change goes through Dispatch, which mirrors the
// durable fields into storage before returning.
type Store struct {
	mu      sync.Mutex
	state   State
	storage *storage.Storage
	logger  zerolog.Logger
}

// Open hydrates a Store from st. defaultLanguage applies when no preference is stored.
func Open(st *storage.Storage, defaultLanguage string, logger zerolog.Logger) *Store {
	return &Store{
		state:   Hydrate(st, defaultLanguage),
		storage: st,
		logger:  logger,
	}
}

// Hydrate rebuilds the durable part of the state. Missing or malformed entries are
// treated as absent.
func Hydrate(st *storage.Storage, defaultLanguage string) State {
	language := defaultLanguage
	var stored string
	if st.GetJSON(storage.KeyPreferredLanguage, &stored) {
		if code, ok := locale.Normalize(stored); ok {
			language = code
		}
	}

	var dark bool
	_ = st.GetJSON(storage.KeyDarkMode, &dark)

	state := Initial(language, dark)

	var user models.Identity
	var token string
	if st.GetJSON(storage.KeyUser, &user) && user.ID != "" && st.GetJSON(storage.KeyToken, &token) && token != "" {
		if role, ok := hydrateRole(st, user.Role); ok {
			user.Role = role
			state = Reduce(state, SetUser(&user, token))
		}
	}

	var favorites []string
	if state.User != nil && st.GetJSON(storage.KeyFavoriteJobs, &favorites) {
		state = Reduce(state, SetFavorites(favorites))
	}
	return state
}

// hydrateRole resolves the role from the user record and the userRole key. Either may
// be absent; when both are present they must agree.
func hydrateRole(st *storage.Storage, recorded models.Role) (models.Role, bool) {
	var storedRaw string
	var stored models.Role
	if st.GetJSON(storage.KeyUserRole, &storedRaw) && storedRaw != "" {
		role, err := models.ParseRole(storedRaw)
		if err != nil {
			return "", false
		}
		stored = role
	}
	if recorded == "" {
		return stored, stored != ""
	}
	role, err := models.ParseRole(string(recorded))
	if err != nil || (stored != "" && stored != role) {
		return "", false
	}
	return role, true
}

// State returns a snapshot of the current state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Dispatch applies action and mirrors the result to storage. The in-memory state is
// updated even when mirroring fails; the mirroring error is returned.
func (s *Store) Dispatch(action Action) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = Reduce(s.state, action)
	s.logger.Debug().Str("action", string(action.Kind)).Msg("session updated")
	return s.state, s.persist(s.state)
}

func (s *Store) persist(state State) error {
	var errs []error
	set := func(key string, value any) {
		if err := s.storage.SetJSON(key, value); err != nil {
			errs = append(errs, err)
		}
	}
	remove := func(key string) {
		if err := s.storage.Remove(key); err != nil {
			errs = append(errs, err)
		}
	}

	set(storage.KeyPreferredLanguage, state.CurrentLanguage)
	set(storage.KeyDarkMode, state.DarkMode)

	if state.User != nil && state.Token != "" {
		set(storage.KeyUser, state.User)
		set(storage.KeyToken, state.Token)
		set(storage.KeyUserRole, string(state.UserRole))
	} else {
		remove(storage.KeyUser)
		remove(storage.KeyToken)
		remove(storage.KeyUserRole)
	}

	if len(state.FavoriteJobs) > 0 {
		set(storage.KeyFavoriteJobs, state.FavoriteJobs)
	} else {
		remove(storage.KeyFavoriteJobs)
	}

	if err := errors.Join(errs...); err != nil {
		s.logger.Warn().Err(err).Msg("mirror session to storage")
		return err
	}
	return nil
}
