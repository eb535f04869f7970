package main

import (
	"flag"
	"log"
	"os"

	"github.com/femfund/femfund/internal/config"
	"github.com/femfund/femfund/internal/config/db"
	"github.com/femfund/femfund/internal/domain/funding"
	"github.com/femfund/femfund/internal/domain/learning"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	yaml "gopkg.in/yaml.v2"
)

type seedFile struct {
	FundingOptions []struct {
		Name                string   `yaml:"name"`
		Description         string   `yaml:"description"`
		Type                string   `yaml:"type"`
		MinAmount           float64  `yaml:"min_amount"`
		MaxAmount           float64  `yaml:"max_amount"`
		InterestRate        float64  `yaml:"interest_rate"`
		Term                string   `yaml:"term"`
		EligibilityCriteria []string `yaml:"eligibility_criteria"`
		RequiredDocuments   []string `yaml:"required_documents"`
		ApplicationProcess  string   `yaml:"application_process"`
		Provider            string   `yaml:"provider"`
	} `yaml:"funding_options"`

	LearningResources []struct {
		Title       string `yaml:"title"`
		Description string `yaml:"description"`
		Content     string `yaml:"content"`
		Category    string `yaml:"category"`
		Type        string `yaml:"type"`
		URL         string `yaml:"url"`
		Duration    string `yaml:"duration"`
	} `yaml:"learning_resources"`
}

// Seeds the catalog and learning resources from a YAML file. Existing
// entries (matched by name/title) are left untouched, so the command is
// safe to re-run.
func main() {
	path := flag.String("file", "configs/seed.yaml", "path to seed data")
	flag.Parse()

	config.LoadConfig()
	db.Init()

	if err := db.DB.AutoMigrate(&funding.Option{}, &learning.Resource{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	raw, err := os.ReadFile(*path)
	if err != nil {
		log.Fatalf("Failed to read seed file: %v", err)
	}

	var data seedFile
	if err := yaml.Unmarshal(raw, &data); err != nil {
		log.Fatalf("Failed to parse seed file: %v", err)
	}

	created := 0
	for _, fo := range data.FundingOptions {
		if !funding.ValidType(fo.Type) {
			log.Fatalf("Seed option %q has unknown type %q", fo.Name, fo.Type)
		}

		var existing funding.Option
		err := db.DB.Where("name = ?", fo.Name).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			log.Fatalf("Failed to check existing option: %v", err)
		}

		option := funding.Option{
			Name:                fo.Name,
			Description:         fo.Description,
			Type:                fo.Type,
			MinAmount:           fo.MinAmount,
			MaxAmount:           fo.MaxAmount,
			InterestRate:        fo.InterestRate,
			Term:                fo.Term,
			EligibilityCriteria: datatypes.NewJSONSlice(fo.EligibilityCriteria),
			RequiredDocuments:   datatypes.NewJSONSlice(fo.RequiredDocuments),
			ApplicationProcess:  fo.ApplicationProcess,
			Provider:            fo.Provider,
			IsActive:            true,
		}
		if err := db.DB.Create(&option).Error; err != nil {
			log.Fatalf("Failed to create option %q: %v", fo.Name, err)
		}
		created++
	}
	log.Printf("Seeded %d funding options", created)

	created = 0
	for _, lr := range data.LearningResources {
		var existing learning.Resource
		err := db.DB.Where("title = ?", lr.Title).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			log.Fatalf("Failed to check existing resource: %v", err)
		}

		res := learning.Resource{
			Title:       lr.Title,
			Description: lr.Description,
			Content:     lr.Content,
			Category:    lr.Category,
			Type:        lr.Type,
			URL:         lr.URL,
			Duration:    lr.Duration,
			IsPublished: true,
		}
		if res.Type == "" {
			res.Type = string(learning.ResourceArticle)
		}
		if err := db.DB.Create(&res).Error; err != nil {
			log.Fatalf("Failed to create resource %q: %v", lr.Title, err)
		}
		created++
	}
	log.Printf("Seeded %d learning resources", created)
}
