package funding

import (
	"time"

	"gorm.io/datatypes"
)

// Type classifies a funding product.
type Type string

const (
	TypeMicroloan      Type = "microloan"
	TypeGrant          Type = "grant"
	TypeVentureCapital Type = "venture_capital"
	TypePeerToPeer     Type = "peer_to_peer"
)

// Types lists every valid funding type.
var Types = []Type{TypeMicroloan, TypeGrant, TypeVentureCapital, TypePeerToPeer}

func ValidType(t string) bool {
	for _, known := range Types {
		if t == string(known) {
			return true
		}
	}
	return false
}

// Option is a catalog entry describing a loan/grant/investment product.
// Options are registered by admins, read-only to applicants, and
// soft-deactivated rather than deleted.
type Option struct {
	FID                 uint                         `gorm:"primaryKey;column:f_id" json:"f_id"`
	Name                string                       `gorm:"size:150;not null" json:"name"`
	Description         string                       `gorm:"type:text;not null" json:"description"`
	Type                string                       `gorm:"size:30;not null;index" json:"type"`
	MinAmount           float64                      `gorm:"not null" json:"min_amount"`
	MaxAmount           float64                      `gorm:"not null" json:"max_amount"`
	InterestRate        float64                      `gorm:"default:0" json:"interest_rate"`
	Term                string                       `gorm:"size:100" json:"term"`
	EligibilityCriteria datatypes.JSONSlice[string]  `json:"eligibility_criteria"`
	RequiredDocuments   datatypes.JSONSlice[string]  `json:"required_documents"`
	ApplicationProcess  string                       `gorm:"type:text" json:"application_process"`
	Image               string                       `gorm:"size:255" json:"image,omitempty"`
	Provider            string                       `gorm:"size:150" json:"provider,omitempty"`
	IsActive            bool                         `gorm:"default:true" json:"is_active"`
	CreatedAt           time.Time                    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time                    `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Option) TableName() string {
	return "funding_options"
}

// InRange reports whether amount satisfies the option's bounds.
func (o *Option) InRange(amount float64) bool {
	return amount >= o.MinAmount && amount <= o.MaxAmount
}
