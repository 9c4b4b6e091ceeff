// Command seed loads sample job postings from a YAML file into the store.
// Useful for local development against an empty database:
//
//	go run ./cmd/seed -file seed/jobs.yaml
package main

import (
	"flag"
	"log"
	"os"

	"github.com/quickhire/quickhire-api/internal/application"
	"github.com/quickhire/quickhire-api/internal/config"
	"github.com/quickhire/quickhire-api/internal/db"
	"github.com/quickhire/quickhire-api/internal/domain/job"
	"github.com/quickhire/quickhire-api/internal/repository"
	"gopkg.in/yaml.v2"
)

type seedFile struct {
	Jobs []seedJob `yaml:"jobs"`
}

type seedJob struct {
	Title            string   `yaml:"title"`
	Company          string   `yaml:"company"`
	Location         string   `yaml:"location"`
	Category         string   `yaml:"category"`
	Type             string   `yaml:"type"`
	Salary           string   `yaml:"salary"`
	Description      string   `yaml:"description"`
	Requirements     []string `yaml:"requirements"`
	Responsibilities []string `yaml:"responsibilities"`
	Tags             []string `yaml:"tags"`
}

func main() {
	file := flag.String("file", "seed/jobs.yaml", "YAML file with job postings")
	flag.Parse()

	raw, err := os.ReadFile(*file)
	if err != nil {
		log.Fatal("Failed to read seed file:", err)
	}

	var seed seedFile
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		log.Fatal("Failed to parse seed file:", err)
	}

	config.LoadConfig()
	db.Init()

	svc := application.NewJobService(repository.New())

	created := 0
	for _, s := range seed.Jobs {
		input := job.CreateJobInput{
			Title:            s.Title,
			Company:          s.Company,
			Location:         s.Location,
			Category:         s.Category,
			Type:             s.Type,
			Description:      s.Description,
			Requirements:     job.StringList(s.Requirements),
			Responsibilities: job.StringList(s.Responsibilities),
			Tags:             job.StringList(s.Tags),
		}
		if s.Salary != "" {
			salary := s.Salary
			input.Salary = &salary
		}

		if _, err := svc.CreateJob(input); err != nil {
			log.Printf("Skipping %q: %v", s.Title, err)
			continue
		}
		created++
	}

	log.Printf("Seeded %d of %d jobs", created, len(seed.Jobs))
}
