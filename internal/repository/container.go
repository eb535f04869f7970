package repository

import (
	"gorm.io/gorm"
)

type Repos struct {
	User        UserRepo
	Funding     FundingRepo
	Application ApplicationRepo
	Learning    LearningRepo

	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		User:        NewUserRepo(db),
		Funding:     NewFundingRepo(db),
		Application: NewApplicationRepo(db),
		Learning:    NewLearningRepo(db),
		db:          db,
	}
}

func (r *Repos) Begin() *gorm.DB {
	return r.db.Begin()
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		User:        r.User.WithTx(tx),
		Funding:     r.Funding.WithTx(tx),
		Application: r.Application.WithTx(tx),
		Learning:    r.Learning.WithTx(tx),
		db:          tx,
	}
}

func (r *Repos) ExecTx(fn func(*Repos) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		txRepos := r.WithTx(tx)
		return fn(txRepos)
	})
}
