package member

import (
	"context"
	"errors"

	"fitclub/internal/auth"
)

var (
	ErrEmailExists        = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMemberNotFound     = errors.New("member not found")
)

type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*Member, string, string, error)
	Login(ctx context.Context, req LoginRequest) (*Member, string, string, error)
	GetByID(ctx context.Context, memberID int) (*Member, error)
	UpdateProfile(ctx context.Context, memberID int, req UpdateProfileRequest) (*Member, error)
	RefreshToken(ctx context.Context, refreshToken string) (string, *Member, error)
	AddHealthMetric(ctx context.Context, memberID int, req AddHealthMetricRequest) (*HealthMetric, error)
	GetHealthHistory(ctx context.Context, memberID int) ([]HealthMetric, error)
}

type service struct {
	repo      Repository
	jwtSecret string
}

func NewService(repo Repository, jwtSecret string) Service {
	return &service{
		repo:      repo,
		jwtSecret: jwtSecret,
	}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (*Member, string, string, error) {
	exists, err := s.repo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, "", "", err
	}
	if exists {
		return nil, "", "", ErrEmailExists
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, "", "", err
	}

	m, err := s.repo.Create(ctx, req.FirstName, req.LastName, req.Email, passwordHash, "member", req.Phone)
	if err != nil {
		return nil, "", "", err
	}

	accessToken, refreshToken, err := auth.GenerateTokens(
		m.ID,
		m.Email,
		m.Role,
		s.jwtSecret,
		s.jwtSecret,
	)
	if err != nil {
		return nil, "", "", err
	}

	return m, accessToken, refreshToken, nil
}

func (s *service) Login(ctx context.Context, req LoginRequest) (*Member, string, string, error) {
	m, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, "", "", ErrInvalidCredentials
	}

	if !auth.CheckPassword(m.PasswordHash, req.Password) {
		return nil, "", "", ErrInvalidCredentials
	}

	accessToken, refreshToken, err := auth.GenerateTokens(
		m.ID,
		m.Email,
		m.Role,
		s.jwtSecret,
		s.jwtSecret,
	)
	if err != nil {
		return nil, "", "", err
	}

	return m, accessToken, refreshToken, nil
}

func (s *service) GetByID(ctx context.Context, memberID int) (*Member, error) {
	m, err := s.repo.FindByID(ctx, memberID)
	if err != nil {
		if errors.Is(err, ErrMemberMissing) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return m, nil
}

func (s *service) UpdateProfile(ctx context.Context, memberID int, req UpdateProfileRequest) (*Member, error) {
	m, err := s.repo.UpdateProfile(ctx, memberID, req.FirstName, req.LastName, req.Phone)
	if err != nil {
		if errors.Is(err, ErrMemberMissing) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return m, nil
}

func (s *service) RefreshToken(ctx context.Context, refreshToken string) (string, *Member, error) {
	_, claims, err := auth.RefreshAccessToken(refreshToken, s.jwtSecret, s.jwtSecret)
	if err != nil {
		return "", nil, err
	}

	m, err := s.repo.FindByID(ctx, claims.MemberID)
	if err != nil {
		return "", nil, ErrMemberNotFound
	}

	newAccessToken, err := auth.GenerateAccessToken(m.ID, m.Email, m.Role, s.jwtSecret)
	if err != nil {
		return "", nil, err
	}

	return newAccessToken, m, nil
}

func (s *service) AddHealthMetric(ctx context.Context, memberID int, req AddHealthMetricRequest) (*HealthMetric, error) {
	metric := &HealthMetric{
		MemberID:   memberID,
		WeightKg:   req.WeightKg,
		BodyFatPct: req.BodyFatPct,
		RestingHR:  req.RestingHR,
	}
	if req.Notes != "" {
		metric.Notes = &req.Notes
	}

	return s.repo.AddHealthMetric(ctx, metric)
}

func (s *service) GetHealthHistory(ctx context.Context, memberID int) ([]HealthMetric, error) {
	return s.repo.GetHealthMetrics(ctx, memberID)
}
