package application

// StatusPresentation carries display metadata for a status. Kept apart
// from the Status type itself so domain state stays free of UI styling.
type StatusPresentation struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Color string `json:"color"`
}

// PresentStatus maps a status kind to its display metadata. Unknown
// statuses fall back to a neutral presentation.
func PresentStatus(s Status) StatusPresentation {
	switch s {
	case StatusDraft:
		return StatusPresentation{ID: "draft", Label: "Draft", Color: "bg-gray-100 text-gray-800"}
	case StatusSubmitted:
		return StatusPresentation{ID: "submitted", Label: "Submitted", Color: "bg-yellow-100 text-yellow-800"}
	case StatusUnderReview:
		return StatusPresentation{ID: "under_review", Label: "Under Review", Color: "bg-blue-100 text-blue-800"}
	case StatusApproved:
		return StatusPresentation{ID: "approved", Label: "Approved", Color: "bg-green-100 text-green-800"}
	case StatusRejected:
		return StatusPresentation{ID: "rejected", Label: "Rejected", Color: "bg-red-100 text-red-800"}
	case StatusFunded:
		return StatusPresentation{ID: "funded", Label: "Funded", Color: "bg-purple-100 text-purple-800"}
	default:
		return StatusPresentation{ID: string(s), Label: string(s), Color: "bg-gray-100 text-gray-800"}
	}
}
