package service

import (
	"context"

	"github.com/gesscam/community-portal/internal/dto"
	"github.com/gesscam/community-portal/internal/model"
	"github.com/gesscam/community-portal/internal/repository"
	"github.com/gesscam/community-portal/pkg/sanitize"
	"github.com/google/uuid"
)

type ExecService interface {
	List(ctx context.Context) ([]dto.ExecMemberResponse, error)
	Create(ctx context.Context, req dto.CreateExecMemberRequest) (*dto.ExecMemberResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateExecMemberRequest) (*dto.ExecMemberResponse, error)
	Delete(ctx context.Context, id uuid.UUID) (*dto.ExecMemberResponse, error)
}

type execService struct {
	execRepo repository.ExecRepository
}

func NewExecService(execRepo repository.ExecRepository) ExecService {
	return &execService{execRepo: execRepo}
}

func (s *execService) List(ctx context.Context) ([]dto.ExecMemberResponse, error) {
	members, err := s.execRepo.FindAll(ctx)
	if err != nil {
		return nil, internal(err)
	}

	out := make([]dto.ExecMemberResponse, 0, len(members))
	for _, m := range members {
		out = append(out, toExecMemberResponse(m))
	}
	return out, nil
}

func (s *execService) Create(ctx context.Context, req dto.CreateExecMemberRequest) (*dto.ExecMemberResponse, error) {
	if err := validateRequired(
		requiredField{"name", req.Name},
		requiredField{"position", req.Position},
		requiredField{"imageUrl", req.ImageURL},
	); err != nil {
		return nil, err
	}

	member := &model.ExecMember{
		Name:     sanitize.Text(req.Name),
		Position: sanitize.Text(req.Position),
		ImageURL: req.ImageURL,
	}
	// The repository computes SortOrder = max+1 inside the insert statement.
	if err := s.execRepo.Create(ctx, member); err != nil {
		return nil, internal(err)
	}

	resp := toExecMemberResponse(*member)
	return &resp, nil
}

func (s *execService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateExecMemberRequest) (*dto.ExecMemberResponse, error) {
	if err := validateRequired(
		requiredField{"name", req.Name},
		requiredField{"position", req.Position},
		requiredField{"imageUrl", req.ImageURL},
	); err != nil {
		return nil, err
	}

	member, err := s.execRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Member not found")
	}

	member.Name = sanitize.Text(req.Name)
	member.Position = sanitize.Text(req.Position)
	member.ImageURL = req.ImageURL
	if err := s.execRepo.Update(ctx, member); err != nil {
		return nil, internal(err)
	}

	resp := toExecMemberResponse(*member)
	return &resp, nil
}

func (s *execService) Delete(ctx context.Context, id uuid.UUID) (*dto.ExecMemberResponse, error) {
	member, err := s.execRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Member not found")
	}

	if err := s.execRepo.Delete(ctx, id); err != nil {
		return nil, internal(err)
	}

	resp := toExecMemberResponse(*member)
	return &resp, nil
}
