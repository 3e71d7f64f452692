package service

import (
	"context"
	"strings"
	"sync"

	"github.com/RoyceAzure/lab/santoral/internal/apperr"
	"github.com/RoyceAzure/lab/santoral/internal/infra/backend"
	"github.com/RoyceAzure/lab/santoral/internal/infra/producer"
	"github.com/RoyceAzure/lab/santoral/internal/model"
	"github.com/RoyceAzure/lab/santoral/internal/model/event"
	"github.com/rs/zerolog"
)

// IdentitySubscriber is notified whenever the session identity changes.
// user is nil after logout or a failed restore.
type IdentitySubscriber interface {
	OnIdentityChange(ctx context.Context, user *model.User)
}

type ISession interface {
	IdentityProvider
	Subscribe(sub IdentitySubscriber)
	Login(ctx context.Context, req model.LoginRequest) (*model.User, error)
	Register(ctx context.Context, req model.RegisterRequest) error
	// Logout always clears the local identity. The backend error, if any,
	// is still returned.
	Logout(ctx context.Context) error
	// Me restores the identity from the backend session cookie.
	// An unauthenticated backend answer yields (nil, nil).
	Me(ctx context.Context) (*model.User, error)
	ForgotPassword(ctx context.Context, email string) (string, error)
	VerifyResetToken(ctx context.Context, token string) (*model.VerifyResetTokenResponse, error)
	ResetPassword(ctx context.Context, req model.ResetPasswordRequest) (string, error)
}

type Session struct {
	api       backend.IAuthAPI
	addresses *AddressSelection
	publisher producer.EventPublisher
	logger    *zerolog.Logger
	sessionID string

	mu          sync.RWMutex
	user        *model.User
	subscribers []IdentitySubscriber
}

var _ ISession = (*Session)(nil)

func NewSession(api backend.IAuthAPI, addresses *AddressSelection, publisher producer.EventPublisher, logger *zerolog.Logger, sessionID string) *Session {
	if publisher == nil {
		publisher = producer.NoopEventPublisher{}
	}
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &Session{
		api:       api,
		addresses: addresses,
		publisher: publisher,
		logger:    logger,
		sessionID: sessionID,
	}
}

func (s *Session) Subscribe(sub IdentitySubscriber) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, sub)
}

func (s *Session) Current() *model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *Session) Login(ctx context.Context, req model.LoginRequest) (*model.User, error) {
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return nil, apperr.Validation(apperr.OpLogin, apperr.CodeValidation, "Email y contraseña son requeridos")
	}
	user, err := s.api.Login(ctx, req)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.ErrUnauthenticated
	}
	s.setIdentity(ctx, user)
	s.publish(ctx, event.NewSessionLoggedInEvent(s.sessionID, user.ID, user.Email))
	return user, nil
}

func (s *Session) Register(ctx context.Context, req model.RegisterRequest) error {
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return apperr.Validation(apperr.OpRegister, apperr.CodeValidation, "Email y contraseña son requeridos")
	}
	if req.ValidatePassword != "" && req.Password != req.ValidatePassword {
		return apperr.Validation(apperr.OpRegister, apperr.CodeValidation, "Las contraseñas no coinciden")
	}
	return s.api.Register(ctx, req)
}

func (s *Session) Logout(ctx context.Context) error {
	prev := s.Current()
	err := s.api.Logout(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Str("session_id", s.sessionID).Msg("backend logout failed, clearing local session anyway")
	}
	s.setIdentity(ctx, nil)
	if prev != nil {
		s.publish(ctx, event.NewSessionLoggedOutEvent(s.sessionID, prev.ID))
	}
	return err
}

func (s *Session) Me(ctx context.Context) (*model.User, error) {
	user, err := s.api.Me(ctx)
	if err != nil {
		if apperr.IsKind(err, apperr.KindAuth) {
			s.setIdentity(ctx, nil)
			return nil, nil
		}
		return nil, err
	}
	s.setIdentity(ctx, user)
	return user, nil
}

func (s *Session) ForgotPassword(ctx context.Context, email string) (string, error) {
	if strings.TrimSpace(email) == "" {
		return "", apperr.Validation(apperr.OpForgotPassword, apperr.CodeValidation, "El email es requerido")
	}
	return s.api.ForgotPassword(ctx, email)
}

func (s *Session) VerifyResetToken(ctx context.Context, token string) (*model.VerifyResetTokenResponse, error) {
	if strings.TrimSpace(token) == "" {
		return nil, apperr.Validation(apperr.OpVerifyResetToken, apperr.CodeValidation, "Token inválido")
	}
	return s.api.VerifyResetToken(ctx, token)
}

func (s *Session) ResetPassword(ctx context.Context, req model.ResetPasswordRequest) (string, error) {
	if req.NewPassword == "" || req.NewPasswordValidate == "" {
		return "", apperr.Validation(apperr.OpResetPassword, apperr.CodeValidation, "Por favor completa ambos campos")
	}
	if req.NewPassword != req.NewPasswordValidate {
		return "", apperr.Validation(apperr.OpResetPassword, apperr.CodeValidation, "Las contraseñas no coinciden")
	}
	if strings.TrimSpace(req.Token) == "" {
		return "", apperr.Validation(apperr.OpResetPassword, apperr.CodeValidation, "Token inválido")
	}
	return s.api.ResetPassword(ctx, req)
}

// setIdentity stores user and, when the identity actually changed, resets
// the address selection and notifies subscribers outside the lock.
func (s *Session) setIdentity(ctx context.Context, user *model.User) {
	s.mu.Lock()
	changed := !sameIdentity(s.user, user)
	if user == nil {
		s.user = nil
	} else {
		u := *user
		s.user = &u
	}
	subs := make([]IdentitySubscriber, len(s.subscribers))
	copy(subs, s.subscribers)
	s.mu.Unlock()

	if !changed {
		return
	}
	if s.addresses != nil {
		s.addresses.Reset()
	}
	for _, sub := range subs {
		sub.OnIdentityChange(ctx, user)
	}
}

func sameIdentity(a, b *model.User) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.ID == b.ID
}

func (s *Session) publish(ctx context.Context, evt event.Event) {
	if err := s.publisher.Publish(ctx, evt); err != nil {
		s.logger.Warn().Err(err).Str("event_type", string(evt.Type())).Msg("failed to publish session event")
	}
}
