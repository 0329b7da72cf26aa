package lessons

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/verte-zerg/akshara/internal/model"
)

// File is the YAML structure of a lesson file.
type File struct {
	Lessons []model.Lesson `yaml:"lessons"`
}

// LoadFile reads extra lessons from a YAML file. A missing file yields no lessons.
func LoadFile(path string) ([]model.Lesson, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read lessons file: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to decode lessons file: %w", err)
	}
	for _, l := range f.Lessons {
		if err := Validate(l); err != nil {
			return nil, fmt.Errorf("invalid lesson in %s: %w", path, err)
		}
	}
	return f.Lessons, nil
}
