package service

import (
	"context"
	"time"

	"github.com/gesscam/community-portal/internal/dto"
	"github.com/gesscam/community-portal/internal/model"
	"github.com/gesscam/community-portal/internal/repository"
	"github.com/gesscam/community-portal/pkg/apperror"
	"github.com/gesscam/community-portal/pkg/sanitize"
	"github.com/google/uuid"
)

type NewsService interface {
	List(ctx context.Context) (*dto.NewsListResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.NewsDetailResponse, error)
	GetForEdit(ctx context.Context, id uuid.UUID) (*dto.NewsEditResponse, error)
	GetByCategorySlug(ctx context.Context, slug string) (*dto.CategoryNewsResponse, error)
	Create(ctx context.Context, req dto.CreateNewsPostRequest) (*dto.NewsPostResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateNewsPostRequest) (*dto.NewsPostResponse, error)
	// Delete removes the post with its category joins and comments and
	// returns a snapshot of the deleted row.
	Delete(ctx context.Context, id uuid.UUID) (*dto.NewsPostResponse, error)
}

type newsService struct {
	newsRepo        repository.NewsRepository
	categoryRepo    repository.CategoryRepository
	categoryService CategoryService
}

func NewNewsService(newsRepo repository.NewsRepository, categoryRepo repository.CategoryRepository, categoryService CategoryService) NewsService {
	return &newsService{
		newsRepo:        newsRepo,
		categoryRepo:    categoryRepo,
		categoryService: categoryService,
	}
}

func (s *newsService) List(ctx context.Context) (*dto.NewsListResponse, error) {
	posts, err := s.newsRepo.FindAll(ctx)
	if err != nil {
		return nil, internal(err)
	}

	counts, err := s.categoryService.ListWithCounts(ctx, ContentNews)
	if err != nil {
		return nil, err
	}

	out := make([]dto.NewsPostResponse, 0, len(posts))
	for _, p := range posts {
		out = append(out, toNewsPostResponse(p))
	}
	return &dto.NewsListResponse{Posts: out, Categories: counts}, nil
}

func (s *newsService) Get(ctx context.Context, id uuid.UUID) (*dto.NewsDetailResponse, error) {
	post, err := s.newsRepo.FindByIDWithComments(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Post not found")
	}
	return &dto.NewsDetailResponse{
		NewsPostResponse: toNewsPostResponse(*post),
		Comments:         toCommentResponses(post.Comments),
	}, nil
}

func (s *newsService) GetForEdit(ctx context.Context, id uuid.UUID) (*dto.NewsEditResponse, error) {
	post, err := s.newsRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Post not found")
	}

	counts, err := s.categoryService.ListWithCounts(ctx, ContentNews)
	if err != nil {
		return nil, err
	}

	return &dto.NewsEditResponse{
		Post:          toNewsPostResponse(*post),
		Categories:    toCategoryResponses(post.Categories),
		AllCategories: counts,
	}, nil
}

func (s *newsService) GetByCategorySlug(ctx context.Context, slug string) (*dto.CategoryNewsResponse, error) {
	category, err := s.categoryRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, notFoundOr(err, "Category not found")
	}

	posts, err := s.newsRepo.FindByCategoryID(ctx, category.ID)
	if err != nil {
		return nil, internal(err)
	}

	out := make([]dto.NewsPostResponse, 0, len(posts))
	for _, p := range posts {
		out = append(out, toNewsPostResponse(p))
	}
	return &dto.CategoryNewsResponse{
		Category: toCategoryResponse(*category),
		Posts:    out,
	}, nil
}

func (s *newsService) Create(ctx context.Context, req dto.CreateNewsPostRequest) (*dto.NewsPostResponse, error) {
	if err := validateRequired(
		requiredField{"title", req.Title},
		requiredField{"content", req.Content},
		requiredField{"image", req.Image},
	); err != nil {
		return nil, err
	}

	categoryIDs, err := s.resolveCategoryIDs(ctx, req.CategoryIDs)
	if err != nil {
		return nil, err
	}

	post := &model.NewsPost{
		Title:   sanitize.Text(req.Title),
		Content: sanitize.HTML(req.Content),
		Image:   req.Image,
		Date:    time.Now(),
	}
	if err := s.newsRepo.Create(ctx, post); err != nil {
		return nil, internal(err)
	}

	if len(categoryIDs) > 0 {
		if err := s.newsRepo.ReplaceCategories(ctx, post.ID, categoryIDs); err != nil {
			return nil, internal(err)
		}
	}

	created, err := s.newsRepo.FindByID(ctx, post.ID)
	if err != nil {
		return nil, internal(err)
	}
	resp := toNewsPostResponse(*created)
	return &resp, nil
}

func (s *newsService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateNewsPostRequest) (*dto.NewsPostResponse, error) {
	if err := validateRequired(
		requiredField{"title", req.Title},
		requiredField{"content", req.Content},
		requiredField{"image", req.Image},
	); err != nil {
		return nil, err
	}

	// Existence is checked up front so NotFound is distinguishable from
	// other write errors.
	post, err := s.newsRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Post not found")
	}

	categoryIDs, err := s.resolveCategoryIDs(ctx, req.CategoryIDs)
	if err != nil {
		return nil, err
	}

	post.Title = sanitize.Text(req.Title)
	post.Content = sanitize.HTML(req.Content)
	post.Image = req.Image
	if err := s.newsRepo.Update(ctx, post); err != nil {
		return nil, internal(err)
	}

	if req.CategoryIDs != nil {
		if err := s.newsRepo.ReplaceCategories(ctx, post.ID, categoryIDs); err != nil {
			return nil, internal(err)
		}
	}

	updated, err := s.newsRepo.FindByID(ctx, post.ID)
	if err != nil {
		return nil, internal(err)
	}
	resp := toNewsPostResponse(*updated)
	return &resp, nil
}

func (s *newsService) Delete(ctx context.Context, id uuid.UUID) (*dto.NewsPostResponse, error) {
	post, err := s.newsRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Post not found")
	}

	if err := s.newsRepo.Delete(ctx, id); err != nil {
		return nil, internal(err)
	}

	resp := toNewsPostResponse(*post)
	return &resp, nil
}

// resolveCategoryIDs parses, dedupes and existence-checks the requested
// category ids. Repeated ids collapse to one so they neither fail the
// existence count nor produce duplicate join rows.
func (s *newsService) resolveCategoryIDs(ctx context.Context, raw []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(raw))
	seen := make(map[uuid.UUID]bool, len(raw))
	for _, r := range raw {
		id, err := uuid.Parse(r)
		if err != nil {
			return nil, apperror.Validation("invalid category id: " + r)
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}

	if len(ids) > 0 {
		found, err := s.categoryRepo.FindByIDs(ctx, ids)
		if err != nil {
			return nil, internal(err)
		}
		if len(found) != len(ids) {
			return nil, apperror.Validation("one or more categories do not exist")
		}
	}
	return ids, nil
}
