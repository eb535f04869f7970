package application

import (
	"github.com/femfund/femfund/internal/domain/learning"
	"github.com/femfund/femfund/internal/repository"
	"gorm.io/gorm"
)

type LearningService struct {
	Repos *repository.Repos
}

func NewLearningService(repos *repository.Repos) *LearningService {
	return &LearningService{
		Repos: repos,
	}
}

func (s *LearningService) CreateResource(input learning.CreateResourceInput) (learning.Resource, error) {
	res := learning.Resource{
		Title:       input.Title,
		Description: input.Description,
		Content:     input.Content,
		Category:    input.Category,
		Type:        input.Type,
		URL:         input.URL,
		Duration:    input.Duration,
		IsPublished: true,
	}
	if res.Type == "" {
		res.Type = string(learning.ResourceArticle)
	}
	if input.IsPublished != nil {
		res.IsPublished = *input.IsPublished
	}
	if err := s.Repos.Learning.CreateResource(&res); err != nil {
		return learning.Resource{}, err
	}
	return res, nil
}

func (s *LearningService) FindResourceByID(id uint) (learning.Resource, error) {
	res, err := s.Repos.Learning.GetResourceByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return learning.Resource{}, ErrResourceNotFound
		}
		return learning.Resource{}, err
	}
	return res, nil
}

func (s *LearningService) ListResources(category string, page, limit int) ([]learning.Resource, error) {
	if category != "" && !learning.ValidCategory(category) {
		verr := &ValidationError{}
		verr.Add("category", "unknown category")
		return nil, verr
	}
	return s.Repos.Learning.ListPublishedResources(category, page, limit)
}

func (s *LearningService) CompleteResource(userID, resourceID uint) error {
	if _, err := s.FindResourceByID(resourceID); err != nil {
		return err
	}
	return s.Repos.Learning.MarkCompleted(userID, resourceID)
}

func (s *LearningService) UserProgress(userID uint) ([]learning.Progress, error) {
	return s.Repos.Learning.ListProgressByUser(userID)
}
