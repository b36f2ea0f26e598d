package services

import (
	"resellx/internal/domain"
	"resellx/internal/repos"
)

type IdentityService struct {
	Identities *repos.IdentityRepo
}

func NewIdentityService(identities *repos.IdentityRepo) *IdentityService {
	return &IdentityService{Identities: identities}
}

type RegisterResult struct {
	Exists   bool
	Identity *domain.Identity
}

// Register is idempotent: a second call with the same email performs
// no write and reports Exists.
func (s *IdentityService) Register(id domain.Identity) (RegisterResult, error) {
	existing, err := s.Identities.ByEmail(id.Email)
	if err != nil {
		return RegisterResult{}, err
	}
	if existing != nil {
		return RegisterResult{Exists: true}, nil
	}
	if err := s.Identities.Insert(id); err != nil {
		return RegisterResult{}, err
	}
	return RegisterResult{Identity: &id}, nil
}

// RoleFor returns "" when no identity is registered under email.
func (s *IdentityService) RoleFor(email string) (string, error) {
	id, err := s.Identities.ByEmail(email)
	if err != nil {
		return "", err
	}
	if id == nil {
		return "", nil
	}
	return id.Role, nil
}
