package learning

// Categories lists every valid resource category.
var Categories = []Category{CategoryBasics, CategoryBusiness, CategoryInvestment, CategoryCredit, CategoryTaxes}

func ValidCategory(c string) bool {
	for _, known := range Categories {
		if c == string(known) {
			return true
		}
	}
	return false
}

type CreateResourceInput struct {
	Title       string `json:"title" binding:"required,min=2,max=200"`
	Description string `json:"description" binding:"required"`
	Content     string `json:"content" binding:"required"`
	Category    string `json:"category" binding:"required,oneof=basics business investment credit taxes"`
	Type        string `json:"type" binding:"omitempty,oneof=article video course quiz"`
	URL         string `json:"url"`
	Duration    string `json:"duration"`
	IsPublished *bool  `json:"is_published"`
}
