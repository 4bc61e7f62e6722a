package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/jhoicas/cjstore-api/internal/application/dto"
	"github.com/jhoicas/cjstore-api/internal/infrastructure/kv"
)

// SessionKey clave durable de la sesión.
const SessionKey = "cjstore_session"

// ErrNotLoggedIn operación que requiere sesión sin sesión activa.
var ErrNotLoggedIn = errors.New("no hay sesión iniciada")

// Session token y usuario autenticado.
type Session struct {
	Token string           `json:"token"`
	User  dto.UserResponse `json:"user"`
}

// SessionStore sesión actual persistida en un kv.Store. Un snapshot nil = sin sesión.
type SessionStore struct {
	observable[*Session]

	mu      sync.RWMutex
	current *Session
	kv      kv.Store
	auth    AuthGateway
}

// NewSessionStore carga la sesión guardada. Una sesión ilegible se descarta.
func NewSessionStore(ctx context.Context, store kv.Store, auth AuthGateway) *SessionStore {
	s := &SessionStore{kv: store, auth: auth}
	s.current = s.load(ctx)
	return s
}

// SetGateway fija la API a usar; permite construir el gateway con s.Token como fuente.
func (s *SessionStore) SetGateway(auth AuthGateway) { s.auth = auth }

func (s *SessionStore) load(ctx context.Context) *Session {
	raw, err := s.kv.Get(ctx, SessionKey)
	if err != nil || len(raw) == 0 {
		return nil
	}
	var sess Session
	if err := json.Unmarshal(raw, &sess); err != nil || sess.Token == "" {
		log.Warn().Msg("client: sesión guardada inválida, se ignora")
		return nil
	}
	return &sess
}

// Current copia del snapshot; nil sin sesión.
func (s *SessionStore) Current() *Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	cp := *s.current
	return &cp
}

// Token token actual o "".
func (s *SessionStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return ""
	}
	return s.current.Token
}

func (s *SessionStore) LoggedIn() bool { return s.Token() != "" }

func (s *SessionStore) Login(ctx context.Context, email, password string) (*Session, error) {
	out, err := s.auth.Login(ctx, strings.TrimSpace(email), password)
	if err != nil {
		return nil, err
	}
	return s.set(ctx, &Session{Token: out.Token, User: out.User})
}

// Register crea la cuenta (y la tienda, si viene) e inicia sesión.
func (s *SessionStore) Register(ctx context.Context, in dto.RegisterRequest) (*Session, error) {
	out, err := s.auth.Register(ctx, in)
	if err != nil {
		return nil, err
	}
	return s.set(ctx, &Session{Token: out.Token, User: out.User})
}

// Refresh vuelve a leer el usuario desde la API manteniendo el token.
func (s *SessionStore) Refresh(ctx context.Context) (*Session, error) {
	tok := s.Token()
	if tok == "" {
		return nil, ErrNotLoggedIn
	}
	user, err := s.auth.Me(ctx)
	if err != nil {
		return nil, err
	}
	return s.set(ctx, &Session{Token: tok, User: *user})
}

// LinkStore asocia la sesión a storeID y guarda el token renovado.
func (s *SessionStore) LinkStore(ctx context.Context, storeID string) (*Session, error) {
	if !s.LoggedIn() {
		return nil, ErrNotLoggedIn
	}
	out, err := s.auth.LinkStore(ctx, storeID)
	if err != nil {
		return nil, err
	}
	return s.set(ctx, &Session{Token: out.Token, User: out.User})
}

func (s *SessionStore) Logout(ctx context.Context) error {
	if err := s.kv.Delete(ctx, SessionKey); err != nil {
		return fmt.Errorf("client: borrar sesión: %w", err)
	}
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
	s.notify(nil)
	return nil
}

func (s *SessionStore) set(ctx context.Context, sess *Session) (*Session, error) {
	raw, err := json.Marshal(sess)
	if err != nil {
		return nil, fmt.Errorf("client: serializar sesión: %w", err)
	}
	if err := s.kv.Put(ctx, SessionKey, raw); err != nil {
		return nil, fmt.Errorf("client: guardar sesión: %w", err)
	}
	s.mu.Lock()
	s.current = sess
	s.mu.Unlock()

	cp := *sess
	s.notify(&cp)
	return &cp, nil
}
