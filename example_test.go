package confyg_test

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/agentstation/confyg"
)

func Example() {
	dir, err := os.MkdirTemp("", "confyg-example")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)

	type ModelConfig struct {
		Vectorizer string `yaml:"vectorizer"`
		Classifier string `yaml:"classifier"`
	}
	type AppConfig struct {
		Model ModelConfig `yaml:"model"`
	}

	s, err := confyg.New(
		confyg.WithLocation(dir),
		confyg.WithMapping(confyg.MappingTable{
			{Document: "ml_config", Sections: []string{"model"}},
		}),
	)
	if err != nil {
		log.Fatal(err)
	}

	cfg := AppConfig{Model: ModelConfig{Vectorizer: "tfidf", Classifier: "bdt"}}
	if err := s.Load(context.Background(), &cfg); err != nil {
		log.Fatal(err)
	}

	fmt.Println(cfg.Model.Vectorizer)
	// Output: tfidf
}
