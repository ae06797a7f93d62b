package category

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/texttx/internal/transaction"
)

var ErrInvalid = errors.New("category requires a name and a valid type")

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=category
type Repository interface {
	ListByUser(ctx context.Context, userID uuid.UUID, typ *transaction.Type) ([]Category, error)
	Get(ctx context.Context, userID, id uuid.UUID) (*Category, error)
	Create(ctx context.Context, c *Category) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]Category, error) {
	return s.repo.ListByUser(ctx, userID, nil)
}

// ListByType returns only the user's categories of the given type.
func (s *Service) ListByType(ctx context.Context, userID uuid.UUID, typ transaction.Type) ([]Category, error) {
	return s.repo.ListByUser(ctx, userID, &typ)
}

func (s *Service) Get(ctx context.Context, userID, id uuid.UUID) (*Category, error) {
	return s.repo.Get(ctx, userID, id)
}

type CreateParams struct {
	Name  string
	Icon  string
	Color string
	Type  transaction.Type
}

func (s *Service) Create(ctx context.Context, userID uuid.UUID, params CreateParams) (*Category, error) {
	name := strings.TrimSpace(params.Name)
	if name == "" || !params.Type.Valid() {
		return nil, ErrInvalid
	}

	c := &Category{
		UserID: userID,
		Name:   name,
		Icon:   params.Icon,
		Color:  params.Color,
		Type:   params.Type,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}
