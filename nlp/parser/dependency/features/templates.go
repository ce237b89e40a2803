package features

import (
	_ "embed"
	"os"
	"strings"

	nlp "github.com/habeanf/eisnerdep/nlp/types"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	PART_SEPARATOR  = ":"
	VALUE_SEPARATOR = "="
	SIDE_SEPARATOR  = "_"

	SIDE_HEAD     = "h"
	SIDE_MODIFIER = "m"
)

//go:embed templates.yaml
var defaultTemplates []byte

var attributes = map[string]func(*nlp.Token) string{
	"word":  func(t *nlp.Token) string { return t.Form },
	"pos":   func(t *nlp.Token) string { return t.PosTag },
	"lemma": func(t *nlp.Token) string { return t.Lemma },
	"cpos":  func(t *nlp.Token) string { return t.CPosTag },
}

type FeatureGroup struct {
	Group    string
	Features []string
}

type FeatureSetup struct {
	FeatureGroups []FeatureGroup `yaml:"feature groups"`
}

func (s *FeatureSetup) NumFeatures() int {
	var numFeatures int
	for _, group := range s.FeatureGroups {
		numFeatures += len(group.Features)
	}
	return numFeatures
}

// Part renders one side's attribute as "<side>_<attr>=<value>".
type Part struct {
	Prefix string
	Head   bool
	attr   func(*nlp.Token) string
}

type Template struct {
	Group string
	Name  string
	Parts []Part
}

// TemplateSet is a compiled FeatureSetup.
type TemplateSet struct {
	Templates []Template
}

func (s *TemplateSet) Len() int {
	return len(s.Templates)
}

func (s *TemplateSet) Names() []string {
	names := make([]string, len(s.Templates))
	for i, tmpl := range s.Templates {
		names[i] = tmpl.Name
	}
	return names
}

// Setup returns the feature setup the set was compiled from.
func (s *TemplateSet) Setup() *FeatureSetup {
	setup := new(FeatureSetup)
	for _, tmpl := range s.Templates {
		last := len(setup.FeatureGroups) - 1
		if last < 0 || setup.FeatureGroups[last].Group != tmpl.Group {
			setup.FeatureGroups = append(setup.FeatureGroups, FeatureGroup{Group: tmpl.Group})
			last++
		}
		setup.FeatureGroups[last].Features = append(setup.FeatureGroups[last].Features, tmpl.Name)
	}
	return setup
}

func parsePart(part string) (Part, error) {
	split := strings.SplitN(part, SIDE_SEPARATOR, 2)
	if len(split) != 2 {
		return Part{}, errors.Errorf("malformed feature part %q", part)
	}
	side, attrName := split[0], split[1]
	if side != SIDE_HEAD && side != SIDE_MODIFIER {
		return Part{}, errors.Errorf("unknown side %q in feature part %q", side, part)
	}
	attr, exists := attributes[attrName]
	if !exists {
		return Part{}, errors.Errorf("unknown attribute %q in feature part %q", attrName, part)
	}
	return Part{part + VALUE_SEPARATOR, side == SIDE_HEAD, attr}, nil
}

func (s *FeatureSetup) Compile() (*TemplateSet, error) {
	set := &TemplateSet{Templates: make([]Template, 0, s.NumFeatures())}
	seen := make(map[string]bool, s.NumFeatures())
	for _, group := range s.FeatureGroups {
		for _, feature := range group.Features {
			if seen[feature] {
				return nil, errors.Errorf("duplicate feature template %q in group %s", feature, group.Group)
			}
			seen[feature] = true
			tmpl := Template{Group: group.Group, Name: feature}
			for _, part := range strings.Split(feature, PART_SEPARATOR) {
				parsed, err := parsePart(part)
				if err != nil {
					return nil, errors.Wrapf(err, "group %s", group.Group)
				}
				tmpl.Parts = append(tmpl.Parts, parsed)
			}
			set.Templates = append(set.Templates, tmpl)
		}
	}
	if len(set.Templates) == 0 {
		return nil, errors.New("no feature templates defined")
	}
	return set, nil
}

func LoadTemplates(conf []byte) (*TemplateSet, error) {
	setup := new(FeatureSetup)
	if err := yaml.Unmarshal(conf, setup); err != nil {
		return nil, errors.Wrap(err, "parsing feature setup")
	}
	return setup.Compile()
}

func LoadTemplateFile(filename string) (*TemplateSet, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	set, err := LoadTemplates(data)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", filename)
	}
	return set, nil
}

// DefaultTemplates returns the built-in unigram and bigram templates.
func DefaultTemplates() *TemplateSet {
	set, err := LoadTemplates(defaultTemplates)
	if err != nil {
		panic("Failed to load default feature templates: " + err.Error())
	}
	return set
}
