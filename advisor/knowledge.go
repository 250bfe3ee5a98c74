package advisor

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// knowledgeFile is the on-disk shape of an extra place table.
type knowledgeFile struct {
	Regions []Region `yaml:"regions"`
}

// NewFromFile returns an Advisor whose place table is the built-in table
// extended with the regions in the YAML file at path. Extra regions are
// appended after the built-ins and extra districts after a region's
// built-in districts, so built-in match order is unchanged and duplicate
// district names within a region are dropped in favor of the built-in.
func NewFromFile(path string) (*Advisor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read knowledge file: %w", err)
	}
	var kf knowledgeFile
	if err := yaml.Unmarshal(data, &kf); err != nil {
		return nil, fmt.Errorf("parse knowledge file: %w", err)
	}

	merged := make([]Region, len(regions))
	copy(merged, regions)

	for _, extra := range kf.Regions {
		extra.Name = strings.ToLower(extra.Name)
		for i := range extra.Districts {
			extra.Districts[i].Name = strings.ToLower(extra.Districts[i].Name)
		}
		idx := -1
		for i := range merged {
			if merged[i].Name == extra.Name {
				idx = i
				break
			}
		}
		if idx < 0 {
			merged = append(merged, extra)
			continue
		}
		existing := merged[idx].Districts
		for _, d := range extra.Districts {
			dup := false
			for _, have := range existing {
				if have.Name == d.Name {
					dup = true
					break
				}
			}
			if !dup {
				existing = append(existing, d)
			}
		}
		merged[idx].Districts = existing
	}

	return &Advisor{regions: merged}, nil
}
