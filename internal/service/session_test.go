package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/RoyceAzure/lab/santoral/internal/apperr"
	mock_backend "github.com/RoyceAzure/lab/santoral/internal/infra/backend/mock"
	"github.com/RoyceAzure/lab/santoral/internal/model"
	"github.com/RoyceAzure/lab/santoral/internal/model/event"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type identityLog struct {
	changes []*model.User
}

func (l *identityLog) OnIdentityChange(_ context.Context, user *model.User) {
	l.changes = append(l.changes, user)
}

type SessionTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	api       *mock_backend.MockIAuthAPI
	addresses *AddressSelection
	published *eventRecorder
	subs      *identityLog
	session   *Session
}

func TestSessionTestSuite(t *testing.T) {
	suite.Run(t, new(SessionTestSuite))
}

func (s *SessionTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.api = mock_backend.NewMockIAuthAPI(s.ctrl)
	s.addresses = NewAddressSelection()
	s.published = &eventRecorder{}
	s.subs = &identityLog{}
	s.session = NewSession(s.api, s.addresses, s.published, nil, "sess-1")
	s.session.Subscribe(s.subs)
}

func (s *SessionTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *SessionTestSuite) login(user *model.User) {
	s.api.EXPECT().Login(gomock.Any(), gomock.Any()).Return(user, nil)
	_, err := s.session.Login(context.Background(), model.LoginRequest{Email: user.Email, Password: "secreto"})
	s.Require().NoError(err)
}

func (s *SessionTestSuite) TestLoginNotifiesSubscribers() {
	s.addresses.Select(testAddress(3))
	s.login(&model.User{ID: 1, Email: "ana@example.com"})

	s.Equal(int64(1), s.session.Current().ID)
	s.Require().Len(s.subs.changes, 1)
	s.Equal(int64(1), s.subs.changes[0].ID)

	_, selected := s.addresses.Current()
	s.False(selected)

	loggedIn, ok := s.published.last().(*event.SessionEvent)
	s.Require().True(ok)
	s.Equal(event.SessionLoggedInEventName, loggedIn.Type())
	s.Equal("ana@example.com", loggedIn.Email)
}

func (s *SessionTestSuite) TestLoginValidation() {
	_, err := s.session.Login(context.Background(), model.LoginRequest{Email: "", Password: "x"})
	s.Require().Error(err)
	s.Equal("Email y contraseña son requeridos", err.Error())
	s.Nil(s.session.Current())
}

func (s *SessionTestSuite) TestLoginBackendError() {
	s.api.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return(nil, apperr.FromResponse(apperr.OpLogin, http.StatusUnauthorized, "Credenciales inválidas"))

	_, err := s.session.Login(context.Background(), model.LoginRequest{Email: "a@b.co", Password: "mal"})
	s.Require().Error(err)
	s.Equal("Credenciales inválidas", err.Error())
	s.Nil(s.session.Current())
	s.Empty(s.subs.changes)
}

func (s *SessionTestSuite) TestLoginWithoutUserIsUnauthenticated() {
	s.api.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, nil)

	_, err := s.session.Login(context.Background(), model.LoginRequest{Email: "a@b.co", Password: "x"})
	s.ErrorIs(err, apperr.ErrUnauthenticated)
}

func (s *SessionTestSuite) TestSameUserDoesNotRenotify() {
	s.login(&model.User{ID: 1, Email: "ana@example.com"})
	s.api.EXPECT().Me(gomock.Any()).Return(&model.User{ID: 1, Email: "ana@example.com", Name: "Ana"}, nil)

	user, err := s.session.Me(context.Background())
	s.Require().NoError(err)
	s.Equal("Ana", user.Name)
	s.Len(s.subs.changes, 1)
	s.Equal("Ana", s.session.Current().Name)
}

func (s *SessionTestSuite) TestLogoutClearsEvenWhenBackendFails() {
	s.login(&model.User{ID: 1, Email: "ana@example.com"})
	backendErr := apperr.Network(apperr.OpLogout, errors.New("connection reset"))
	s.api.EXPECT().Logout(gomock.Any()).Return(backendErr)

	err := s.session.Logout(context.Background())
	s.ErrorIs(err, apperr.ErrNetwork)
	s.Nil(s.session.Current())
	s.Require().Len(s.subs.changes, 2)
	s.Nil(s.subs.changes[1])

	loggedOut, ok := s.published.last().(*event.SessionEvent)
	s.Require().True(ok)
	s.Equal(event.SessionLoggedOutEventName, loggedOut.Type())
	s.Equal(int64(1), loggedOut.UserID)
}

func (s *SessionTestSuite) TestLogoutWhenAnonymous() {
	s.api.EXPECT().Logout(gomock.Any()).Return(nil)

	s.NoError(s.session.Logout(context.Background()))
	s.Empty(s.subs.changes)
	s.Empty(s.published.types())
}

func (s *SessionTestSuite) TestMeUnauthenticatedYieldsNil() {
	s.login(&model.User{ID: 1, Email: "ana@example.com"})
	s.api.EXPECT().Me(gomock.Any()).
		Return(nil, apperr.FromResponse(apperr.OpMe, http.StatusUnauthorized, ""))

	user, err := s.session.Me(context.Background())
	s.NoError(err)
	s.Nil(user)
	s.Nil(s.session.Current())
	s.Nil(s.subs.changes[len(s.subs.changes)-1])
}

func (s *SessionTestSuite) TestMeServerErrorKeepsIdentity() {
	s.login(&model.User{ID: 1, Email: "ana@example.com"})
	s.api.EXPECT().Me(gomock.Any()).
		Return(nil, apperr.FromResponse(apperr.OpMe, http.StatusInternalServerError, ""))

	_, err := s.session.Me(context.Background())
	s.Error(err)
	s.NotNil(s.session.Current())
}

func (s *SessionTestSuite) TestRegister() {
	err := s.session.Register(context.Background(), model.RegisterRequest{Email: "a@b.co", Password: "uno", ValidatePassword: "dos"})
	s.Require().Error(err)
	s.Equal("Las contraseñas no coinciden", err.Error())

	req := model.RegisterRequest{Name: "Ana", Email: "a@b.co", Password: "uno", ValidatePassword: "uno"}
	s.api.EXPECT().Register(gomock.Any(), req).Return(nil)
	s.NoError(s.session.Register(context.Background(), req))
}

func (s *SessionTestSuite) TestResetPasswordValidation() {
	testCases := []struct {
		name string
		req  model.ResetPasswordRequest
		msg  string
	}{
		{name: "missing field", req: model.ResetPasswordRequest{Token: "t", NewPassword: "a"}, msg: "Por favor completa ambos campos"},
		{name: "mismatch", req: model.ResetPasswordRequest{Token: "t", NewPassword: "a", NewPasswordValidate: "b"}, msg: "Las contraseñas no coinciden"},
		{name: "missing token", req: model.ResetPasswordRequest{NewPassword: "a", NewPasswordValidate: "a"}, msg: "Token inválido"},
	}
	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.session.ResetPassword(context.Background(), tc.req)
			s.Require().Error(err)
			s.Equal(tc.msg, err.Error())
		})
	}

	req := model.ResetPasswordRequest{Token: "t", NewPassword: "a", NewPasswordValidate: "a"}
	s.api.EXPECT().ResetPassword(gomock.Any(), req).Return("Contraseña actualizada", nil)
	msg, err := s.session.ResetPassword(context.Background(), req)
	s.Require().NoError(err)
	s.Equal("Contraseña actualizada", msg)
}

func (s *SessionTestSuite) TestPasswordRecovery() {
	_, err := s.session.ForgotPassword(context.Background(), " ")
	s.Error(err)
	_, err = s.session.VerifyResetToken(context.Background(), "")
	s.Error(err)

	s.api.EXPECT().ForgotPassword(gomock.Any(), "ana@example.com").Return("Correo enviado", nil)
	msg, err := s.session.ForgotPassword(context.Background(), "ana@example.com")
	s.Require().NoError(err)
	s.Equal("Correo enviado", msg)

	s.api.EXPECT().VerifyResetToken(gomock.Any(), "tok").Return(&model.VerifyResetTokenResponse{Email: "ana@example.com"}, nil)
	res, err := s.session.VerifyResetToken(context.Background(), "tok")
	s.Require().NoError(err)
	s.Equal("ana@example.com", res.Email)
}

func TestSessionDrivesCartStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	authAPI := mock_backend.NewMockIAuthAPI(ctrl)
	cartAPI := mock_backend.NewMockICartAPI(ctrl)

	session := NewSession(authAPI, NewAddressSelection(), nil, nil, "sess-4")
	cart := NewCartStore(cartAPI, nil, nil, "sess-4")
	session.Subscribe(cart)

	authAPI.EXPECT().Login(gomock.Any(), gomock.Any()).Return(&model.User{ID: 8, Email: "b@c.co"}, nil)
	cartAPI.EXPECT().GetCartSummary(gomock.Any()).Return(cartWith(2000, 4), nil)
	if _, err := session.Login(context.Background(), model.LoginRequest{Email: "b@c.co", Password: "x"}); err != nil {
		t.Fatal(err)
	}
	if got := cart.Current().TotalQuantity; got != 4 {
		t.Fatalf("cart not reloaded after login, quantity=%d", got)
	}

	authAPI.EXPECT().Logout(gomock.Any()).Return(nil)
	if err := session.Logout(context.Background()); err != nil {
		t.Fatal(err)
	}
	if !cart.Current().IsEmpty() {
		t.Fatal("cart not cleared after logout")
	}
}
