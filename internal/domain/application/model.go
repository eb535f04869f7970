package application

import (
	"time"

	"github.com/femfund/femfund/internal/domain/funding"
	"github.com/femfund/femfund/internal/domain/user"
	"gorm.io/gorm"
)

// FinancialInfo is the applicant's financial snapshot at submission time.
// Income and expenses are monthly figures, assets and liabilities totals.
type FinancialInfo struct {
	Income      float64 `gorm:"column:fi_income" json:"income"`
	Expenses    float64 `gorm:"column:fi_expenses" json:"expenses"`
	Assets      float64 `gorm:"column:fi_assets" json:"assets"`
	Liabilities float64 `gorm:"column:fi_liabilities" json:"liabilities"`
}

// Evaluation is the outcome of a credit evaluation, stored only when the
// evaluation produced a usable result. EvaluatedAt doubles as the
// presence marker: a nil timestamp means no evaluation happened.
type Evaluation struct {
	Score       int        `gorm:"column:ai_score" json:"score"`
	Feedback    string     `gorm:"column:ai_feedback;type:text" json:"feedback"`
	EvaluatedAt *time.Time `gorm:"column:ai_evaluated_at" json:"evaluated_at"`
}

// Present reports whether e holds a real evaluation.
func (e *Evaluation) Present() bool {
	return e != nil && e.EvaluatedAt != nil
}

// Document is an uploaded file attached to an application.
type Document struct {
	DID           uint      `gorm:"primaryKey;column:d_id" json:"d_id"`
	ApplicationID uint      `gorm:"not null;index" json:"application_id"`
	Name          string    `gorm:"size:255;not null" json:"name"`
	Path          string    `gorm:"size:512;not null" json:"path"`
	ContentType   string    `gorm:"size:100" json:"content_type"`
	UploadedAt    time.Time `gorm:"autoCreateTime" json:"uploaded_at"`
}

func (Document) TableName() string {
	return "application_documents"
}

// Application is a user's request against a funding option. The amount is
// validated against the option's range at creation and never re-validated
// if the option later changes. Submitted records are never deleted; only
// drafts may be removed by their owner.
type Application struct {
	AID             uint            `gorm:"primaryKey;column:a_id" json:"a_id"`
	UserID          uint            `gorm:"not null;index" json:"user_id"`
	FundingOptionID uint            `gorm:"not null;index" json:"funding_option_id"`
	Amount          float64         `gorm:"not null" json:"amount"`
	Purpose         string          `gorm:"type:text;not null" json:"purpose"`
	BusinessPlan    string          `gorm:"type:text" json:"business_plan,omitempty"`
	FinancialInfo   FinancialInfo   `gorm:"embedded" json:"financial_info"`
	Status          Status          `gorm:"size:20;default:'draft';not null;index" json:"status"`
	AIEvaluation    *Evaluation     `gorm:"embedded" json:"ai_evaluation,omitempty"`
	ReviewerNotes   string          `gorm:"type:text" json:"reviewer_notes,omitempty"`
	SubmittedAt     *time.Time      `json:"submitted_at,omitempty"`
	DecidedAt       *time.Time      `json:"decided_at,omitempty"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	User          *user.User      `gorm:"foreignKey:UserID" json:"-"`
	FundingOption *funding.Option `gorm:"foreignKey:FundingOptionID" json:"funding_option,omitempty"`
	Documents     []Document      `gorm:"foreignKey:ApplicationID" json:"documents,omitempty"`
}

func (Application) TableName() string {
	return "applications"
}

// AfterFind drops the embedded evaluation columns when no evaluation was
// ever stored, so never-evaluated drafts serialize without the field.
func (a *Application) AfterFind(*gorm.DB) error {
	if !a.AIEvaluation.Present() {
		a.AIEvaluation = nil
	}
	return nil
}
