package funding

type CreateOptionInput struct {
	Name                string   `json:"name" binding:"required,min=2,max=150"`
	Description         string   `json:"description" binding:"required"`
	Type                string   `json:"type" binding:"required,oneof=microloan grant venture_capital peer_to_peer"`
	MinAmount           float64  `json:"min_amount" binding:"required,gt=0"`
	MaxAmount           float64  `json:"max_amount" binding:"required,gt=0"`
	InterestRate        *float64 `json:"interest_rate" binding:"omitempty,gte=0"`
	Term                string   `json:"term"`
	EligibilityCriteria []string `json:"eligibility_criteria"`
	RequiredDocuments   []string `json:"required_documents"`
	ApplicationProcess  string   `json:"application_process"`
	Image               string   `json:"image"`
	Provider            string   `json:"provider"`
}

type UpdateOptionInput struct {
	Name                *string  `json:"name" binding:"omitempty,min=2,max=150"`
	Description         *string  `json:"description"`
	MinAmount           *float64 `json:"min_amount" binding:"omitempty,gt=0"`
	MaxAmount           *float64 `json:"max_amount" binding:"omitempty,gt=0"`
	InterestRate        *float64 `json:"interest_rate" binding:"omitempty,gte=0"`
	Term                *string  `json:"term"`
	EligibilityCriteria []string `json:"eligibility_criteria"`
	RequiredDocuments   []string `json:"required_documents"`
	ApplicationProcess  *string  `json:"application_process"`
	Image               *string  `json:"image"`
	Provider            *string  `json:"provider"`
	IsActive            *bool    `json:"is_active"`
}

// PreQualification is a non-binding estimate of which funding types a
// user likely qualifies for, and at what amount.
type PreQualification struct {
	Microloan         bool `json:"microloan"`
	Grant             bool `json:"grant"`
	VentureCapital    bool `json:"venture_capital"`
	PeerToPeer        bool `json:"peer_to_peer"`
	RecommendedAmount int  `json:"recommended_amount"`
}
