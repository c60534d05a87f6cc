package customer

import (
	"context"

	"storefront/internal/domain"
	customerrepo "storefront/internal/repository/customer"
)

type Service struct {
	repo customerrepo.Repository
}

func New(repo customerrepo.Repository) *Service {
	return &Service{repo: repo}
}

type Input struct {
	FirstName  string `json:"first_name" binding:"required,max=255"`
	LastName   string `json:"last_name" binding:"required,max=255"`
	Email      string `json:"email" binding:"required,email"`
	Phone      string `json:"phone" binding:"max=255"`
	BirthDate  string `json:"birth_date" binding:"omitempty,datetime=2006-01-02"`
	Membership string `json:"membership" binding:"omitempty,oneof=B S G"`
}

// PatchInput leaves absent fields untouched.
type PatchInput struct {
	FirstName  *string `json:"first_name" binding:"omitempty,max=255"`
	LastName   *string `json:"last_name" binding:"omitempty,max=255"`
	Email      *string `json:"email" binding:"omitempty,email"`
	Phone      *string `json:"phone" binding:"omitempty,max=255"`
	BirthDate  *string `json:"birth_date" binding:"omitempty,datetime=2006-01-02"`
	Membership *string `json:"membership" binding:"omitempty,oneof=B S G"`
}

func (s *Service) List(ctx context.Context) ([]domain.Customer, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Customer, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, in Input) (*domain.Customer, error) {
	return s.repo.Create(ctx, customerFromInput(in))
}

func (s *Service) Update(ctx context.Context, id int64, in Input) (*domain.Customer, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	c := customerFromInput(in)
	c.ID = id
	return s.repo.Update(ctx, c)
}

func (s *Service) Patch(ctx context.Context, id int64, in PatchInput) (*domain.Customer, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.FirstName != nil {
		c.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		c.LastName = *in.LastName
	}
	if in.Email != nil {
		c.Email = *in.Email
	}
	if in.Phone != nil {
		c.Phone = *in.Phone
	}
	if in.BirthDate != nil {
		c.BirthDate = *in.BirthDate
	}
	if in.Membership != nil {
		c.Membership = *in.Membership
	}
	return s.repo.Update(ctx, *c)
}

func customerFromInput(in Input) domain.Customer {
	membership := in.Membership
	if membership == "" {
		membership = domain.MembershipBronze
	}
	return domain.Customer{
		FirstName:  in.FirstName,
		LastName:   in.LastName,
		Email:      in.Email,
		Phone:      in.Phone,
		BirthDate:  in.BirthDate,
		Membership: membership,
	}
}
