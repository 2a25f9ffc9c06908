package tag

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"recipebox/domain"
	"recipebox/entities"
)

type (
	TagService interface {
		GetTags(ctx context.Context, userID string) ([]domain.TagResponse, error)
		CreateTag(ctx context.Context, req domain.CreateTagRequest, userID string) (domain.TagResponse, error)
		UpdateTag(ctx context.Context, id string, req domain.UpdateTagRequest, userID string) (domain.TagResponse, error)
		DeleteTag(ctx context.Context, id string, userID string) error
	}

	tagService struct {
		tagRepository TagRepository
	}
)

func NewTagService(tagRepository TagRepository) TagService {
	return &tagService{tagRepository: tagRepository}
}

func (s *tagService) GetTags(ctx context.Context, userID string) ([]domain.TagResponse, error) {
	ownerID, err := parseID(userID)
	if err != nil {
		return nil, err
	}

	tags, err := s.tagRepository.GetTags(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	res := make([]domain.TagResponse, 0, len(tags))
	for _, t := range tags {
		res = append(res, domain.TagResponse{ID: t.ID, Name: t.Name, CreatedAt: t.CreatedAt})
	}
	return res, nil
}

func (s *tagService) CreateTag(ctx context.Context, req domain.CreateTagRequest, userID string) (domain.TagResponse, error) {
	ownerID, err := parseID(userID)
	if err != nil {
		return domain.TagResponse{}, err
	}

	if strings.TrimSpace(req.Name) == "" {
		return domain.TagResponse{}, domain.ErrTagNameRequired
	}

	tag := &entities.Tag{UserID: ownerID, Name: req.Name}
	if err := s.tagRepository.CreateTag(ctx, tag); err != nil {
		return domain.TagResponse{}, err
	}

	return domain.TagResponse{ID: tag.ID, Name: tag.Name, CreatedAt: tag.CreatedAt}, nil
}

func (s *tagService) UpdateTag(ctx context.Context, id string, req domain.UpdateTagRequest, userID string) (domain.TagResponse, error) {
	ownerID, err := parseID(userID)
	if err != nil {
		return domain.TagResponse{}, err
	}
	tagID, err := parseID(id)
	if err != nil {
		return domain.TagResponse{}, err
	}

	if strings.TrimSpace(req.Name) == "" {
		return domain.TagResponse{}, domain.ErrTagNameRequired
	}

	tag, err := s.tagRepository.GetTagByID(ctx, tagID, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.TagResponse{}, domain.ErrTagNotFound
		}
		return domain.TagResponse{}, err
	}

	tag.Name = req.Name
	if err := s.tagRepository.UpdateTag(ctx, tag); err != nil {
		return domain.TagResponse{}, err
	}

	return domain.TagResponse{ID: tag.ID, Name: tag.Name, CreatedAt: tag.CreatedAt}, nil
}

func (s *tagService) DeleteTag(ctx context.Context, id string, userID string) error {
	ownerID, err := parseID(userID)
	if err != nil {
		return err
	}
	tagID, err := parseID(id)
	if err != nil {
		return err
	}

	affected, err := s.tagRepository.DeleteTag(ctx, tagID, ownerID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrTagNotFound
	}
	return nil
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, domain.ErrParseID
	}
	return uint(id), nil
}
