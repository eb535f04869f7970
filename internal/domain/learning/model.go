package learning

import "time"

type Category string

const (
	CategoryBasics     Category = "basics"
	CategoryBusiness   Category = "business"
	CategoryInvestment Category = "investment"
	CategoryCredit     Category = "credit"
	CategoryTaxes      Category = "taxes"
)

type ResourceType string

const (
	ResourceArticle ResourceType = "article"
	ResourceVideo   ResourceType = "video"
	ResourceCourse  ResourceType = "course"
	ResourceQuiz    ResourceType = "quiz"
)

// Resource is a learning item consumed by applicants.
type Resource struct {
	RID         uint      `gorm:"primaryKey;column:r_id" json:"r_id"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	Category    string    `gorm:"size:30;not null;index" json:"category"`
	Duration    string    `gorm:"size:50" json:"duration,omitempty"`
	URL         string    `gorm:"size:512" json:"url,omitempty"`
	Type        string    `gorm:"size:20;default:'article'" json:"type"`
	IsPublished bool      `gorm:"default:true" json:"is_published"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Resource) TableName() string {
	return "learning_resources"
}

// Progress tracks one user's advancement through one resource.
// (user, resource) is unique.
type Progress struct {
	PID         uint       `gorm:"primaryKey;column:p_id" json:"p_id"`
	UserID      uint       `gorm:"not null;uniqueIndex:idx_user_resource" json:"user_id"`
	ResourceID  uint       `gorm:"not null;uniqueIndex:idx_user_resource" json:"resource_id"`
	Completed   bool       `gorm:"default:false" json:"completed"`
	Progress    int        `gorm:"default:0" json:"progress"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	StartedAt   time.Time  `gorm:"autoCreateTime" json:"started_at"`

	Resource *Resource `gorm:"foreignKey:ResourceID" json:"resource,omitempty"`
}

func (Progress) TableName() string {
	return "user_progress"
}
