package member

import "context"

type Repository interface {
	Create(ctx context.Context, firstName, lastName, email, passwordHash, role, phone string) (*Member, error)
	FindByEmail(ctx context.Context, email string) (*Member, error)
	FindByID(ctx context.Context, id int) (*Member, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	UpdateProfile(ctx context.Context, id int, firstName, lastName, phone string) (*Member, error)

	AddHealthMetric(ctx context.Context, m *HealthMetric) (*HealthMetric, error)
	GetHealthMetrics(ctx context.Context, memberID int) ([]HealthMetric, error)
}
