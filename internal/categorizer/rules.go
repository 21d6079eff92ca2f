package categorizer

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var log = logrus.New()

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// rulesFile is the on-disk shape of a category rule override file:
//
//	rules:
//	  - keyword: received
//	    category: Incoming Money
type rulesFile struct {
	Rules []Rule `yaml:"rules"`
}

// LoadRules loads category rules from a YAML file, preserving document
// order. A missing file is not an error: the built-in defaults apply.
func LoadRules(path string) ([]Rule, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Warnf("Category rules file not found: %s, using built-in rules", path)
			return nil, nil
		}
		return nil, fmt.Errorf("error reading category rules file: %w", err)
	}

	var rf rulesFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("error parsing category rules file %s: %w", path, err)
	}

	for _, r := range rf.Rules {
		if r.Keyword == "" || r.Category == "" {
			return nil, fmt.Errorf("invalid rule in %s: keyword and category are both required", path)
		}
	}

	log.WithField("count", len(rf.Rules)).Info("Loaded category rules")
	return rf.Rules, nil
}
