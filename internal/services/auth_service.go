package services

import "crypto/subtle"

// AuthService is the whole access gate: one shared PIN from
// configuration, compared per request. There are no users or sessions.
type AuthService struct {
	pin string
}

func NewAuthService(pin string) *AuthService {
	return &AuthService{pin: pin}
}

func (s *AuthService) VerifyPin(pin string) bool {
	if s.pin == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(pin), []byte(s.pin)) == 1
}
