package application

// FinancialInfoInput uses pointers so validation can distinguish a
// missing field from a legitimate zero.
type FinancialInfoInput struct {
	Income      *float64 `json:"income"`
	Expenses    *float64 `json:"expenses"`
	Assets      *float64 `json:"assets"`
	Liabilities *float64 `json:"liabilities"`
}

type SubmitInput struct {
	Amount        *float64            `json:"amount"`
	Purpose       string              `json:"purpose"`
	BusinessPlan  string              `json:"business_plan"`
	FinancialInfo *FinancialInfoInput `json:"financial_info"`
}

type UpdateDraftInput struct {
	Amount        *float64            `json:"amount"`
	Purpose       *string             `json:"purpose"`
	BusinessPlan  *string             `json:"business_plan"`
	FinancialInfo *FinancialInfoInput `json:"financial_info"`
}

type TransitionInput struct {
	Status        string `json:"status" binding:"required"`
	ReviewerNotes string `json:"reviewer_notes"`
}

// TimelineStep is one entry of the status timeline rendered by the
// presentation layer.
type TimelineStep struct {
	Status    StatusPresentation `json:"status"`
	Reached   bool               `json:"reached"`
	Current   bool               `json:"current"`
	Timestamp *string            `json:"timestamp,omitempty"`
}
