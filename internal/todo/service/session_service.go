package service

import (
	"time"
)

// Session is the outcome of authenticating a request's credential pair. A
// zero Session means unauthenticated with nothing for the caller to do.
type Session struct {
	// UserID is the resolved subject, empty when unauthenticated.
	UserID string
	// RefreshedAccessToken, when set, must be stored by the caller in
	// place of the access credential it received.
	RefreshedAccessToken string
	// ClearCredentials tells the caller to drop both stored credentials
	// and force a fresh login.
	ClearCredentials bool
}

func (s Session) Authenticated() bool {
	return s.UserID != ""
}

// SessionService runs the dual-token verification and renewal protocol. It
// holds no per-session state; validity is entirely a function of the tokens
// themselves.
type SessionService struct {
	codec TokenCodec
	now   func() time.Time
}

func NewSessionService(codec TokenCodec) *SessionService {
	return &SessionService{codec: codec, now: time.Now}
}

// Authenticate resolves a credential pair to a subject.
//
// Both credentials must be present before anything is attempted; a client
// holding half a pair never got a full login and is not a session worth
// recovering. A valid unexpired access token is the fast path. Failing
// that, a valid unexpired refresh token silently renews: it mints exactly
// one replacement access token for its own subject and the request carries
// on uninterrupted. Anything else is a lockout and the caller is told to
// clear both credentials.
//
// Decode failures of any flavor are absorbed into the fall-through; the
// caller can never tell malformed from expired from mis-signed. The only
// error returned is a mint failure during renewal, which is a server fault
// rather than a credential one.
func (s *SessionService) Authenticate(accessToken, refreshToken string) (Session, error) {
	if accessToken == "" || refreshToken == "" {
		return Session{}, nil
	}

	now := s.now()

	if claims, err := s.codec.Decode(accessToken, TokenKindAccess); err == nil &&
		!claims.ExpiredAt(now) && claims.UserID != "" {
		return Session{UserID: claims.UserID}, nil
	}

	claims, err := s.codec.Decode(refreshToken, TokenKindRefresh)
	if err != nil || claims.ExpiredAt(now) || claims.UserID == "" {
		return Session{ClearCredentials: true}, nil
	}

	renewed, err := s.codec.Mint(claims.UserID, TokenKindAccess)
	if err != nil {
		return Session{}, err
	}

	return Session{UserID: claims.UserID, RefreshedAccessToken: renewed}, nil
}
