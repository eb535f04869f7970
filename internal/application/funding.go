package application

import (
	"github.com/femfund/femfund/internal/domain/funding"
	"github.com/femfund/femfund/internal/repository"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type FundingService struct {
	Repos *repository.Repos
}

func NewFundingService(repos *repository.Repos) *FundingService {
	return &FundingService{
		Repos: repos,
	}
}

func (s *FundingService) CreateOption(input funding.CreateOptionInput) (funding.Option, error) {
	verr := &ValidationError{}
	if input.MaxAmount < input.MinAmount {
		verr.Add("max_amount", "must be greater than or equal to min_amount")
	}
	if verr.HasErrors() {
		return funding.Option{}, verr
	}

	option := funding.Option{
		Name:                input.Name,
		Description:         input.Description,
		Type:                input.Type,
		MinAmount:           input.MinAmount,
		MaxAmount:           input.MaxAmount,
		Term:                input.Term,
		EligibilityCriteria: datatypes.NewJSONSlice(input.EligibilityCriteria),
		RequiredDocuments:   datatypes.NewJSONSlice(input.RequiredDocuments),
		ApplicationProcess:  input.ApplicationProcess,
		Image:               input.Image,
		Provider:            input.Provider,
		IsActive:            true,
	}
	if input.InterestRate != nil {
		option.InterestRate = *input.InterestRate
	}

	if err := s.Repos.Funding.CreateOption(&option); err != nil {
		return funding.Option{}, err
	}
	return option, nil
}

func (s *FundingService) FindOptionByID(id uint) (funding.Option, error) {
	option, err := s.Repos.Funding.GetOptionByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return funding.Option{}, ErrOptionNotFound
		}
		return funding.Option{}, err
	}
	return option, nil
}

func (s *FundingService) ListOptions(fundingType string, page, limit int) ([]funding.Option, error) {
	if fundingType != "" && !funding.ValidType(fundingType) {
		verr := &ValidationError{}
		verr.Add("type", "unknown funding type")
		return nil, verr
	}
	return s.Repos.Funding.ListActiveOptions(fundingType, page, limit)
}

func (s *FundingService) UpdateOption(id uint, input funding.UpdateOptionInput) (funding.Option, error) {
	option, err := s.FindOptionByID(id)
	if err != nil {
		return funding.Option{}, err
	}

	if input.Name != nil {
		option.Name = *input.Name
	}
	if input.Description != nil {
		option.Description = *input.Description
	}
	if input.MinAmount != nil {
		option.MinAmount = *input.MinAmount
	}
	if input.MaxAmount != nil {
		option.MaxAmount = *input.MaxAmount
	}
	if input.InterestRate != nil {
		option.InterestRate = *input.InterestRate
	}
	if input.Term != nil {
		option.Term = *input.Term
	}
	if input.EligibilityCriteria != nil {
		option.EligibilityCriteria = datatypes.NewJSONSlice(input.EligibilityCriteria)
	}
	if input.RequiredDocuments != nil {
		option.RequiredDocuments = datatypes.NewJSONSlice(input.RequiredDocuments)
	}
	if input.ApplicationProcess != nil {
		option.ApplicationProcess = *input.ApplicationProcess
	}
	if input.Image != nil {
		option.Image = *input.Image
	}
	if input.Provider != nil {
		option.Provider = *input.Provider
	}
	if input.IsActive != nil {
		option.IsActive = *input.IsActive
	}

	if option.MaxAmount < option.MinAmount {
		verr := &ValidationError{}
		verr.Add("max_amount", "must be greater than or equal to min_amount")
		return funding.Option{}, verr
	}

	if err := s.Repos.Funding.UpdateOption(&option); err != nil {
		return funding.Option{}, err
	}
	return option, nil
}

// DeactivateOption hides the option from the catalog. Existing
// applications keep referencing it.
func (s *FundingService) DeactivateOption(id uint) error {
	if _, err := s.FindOptionByID(id); err != nil {
		return err
	}
	return s.Repos.Funding.DeactivateOption(id)
}
