package features

import (
	"strings"

	nlp "github.com/habeanf/eisnerdep/nlp/types"
	"github.com/habeanf/eisnerdep/util"
)

// Arc is a candidate dependency from Head to Modifier.
type Arc struct {
	Head, Modifier int
}

// EdgeFeatures holds the feature indices of every arc of one sentence.
type EdgeFeatures map[Arc][]int

// Get returns the features of arc (head, modifier), nil if it was never
// extracted.
func (e EdgeFeatures) Get(head, modifier int) []int {
	return e[Arc{head, modifier}]
}

// Tree collects the features of every arc of heads, skipping the root.
func (e EdgeFeatures) Tree(heads nlp.Heads) []int {
	var features []int
	for m := 1; m < len(heads); m++ {
		features = append(features, e.Get(heads[m], m)...)
	}
	return features
}

// Extractor instantiates templates over every ordered token pair and interns
// the resulting strings in Features.
type Extractor struct {
	Templates *TemplateSet
	Features  *util.EnumSet

	buf strings.Builder
}

func NewExtractor(templates *TemplateSet, features *util.EnumSet) *Extractor {
	if templates == nil {
		templates = DefaultTemplates()
	}
	if features == nil {
		features = util.NewEnumSet(templates.Len() * 1024)
	}
	return &Extractor{Templates: templates, Features: features}
}

func (x *Extractor) Extract(sentences []nlp.Sentence) ([]EdgeFeatures, *util.EnumSet) {
	edges := make([]EdgeFeatures, len(sentences))
	for i, sent := range sentences {
		edges[i] = x.ExtractSentence(sent)
	}
	return edges, x.Features
}

// ExtractSentence extracts the arcs of one sentence. A frozen vocabulary
// drops features it has never seen.
func (x *Extractor) ExtractSentence(sent nlp.Sentence) EdgeFeatures {
	n := len(sent)
	frozen := x.Features.IsFrozen()
	edges := make(EdgeFeatures, n*(n-1))
	for h := 0; h < n; h++ {
		for m := 0; m < n; m++ {
			if h == m {
				continue
			}
			indices := make([]int, 0, len(x.Templates.Templates))
			for _, tmpl := range x.Templates.Templates {
				feature := x.render(&tmpl, &sent[h], &sent[m])
				if frozen {
					if enum, exists := x.Features.IndexOf(feature); exists {
						indices = append(indices, enum)
					}
					continue
				}
				enum, _ := x.Features.Add(feature)
				indices = append(indices, enum)
			}
			edges[Arc{h, m}] = indices
		}
	}
	return edges
}

func (x *Extractor) render(tmpl *Template, head, modifier *nlp.Token) string {
	x.buf.Reset()
	for i, part := range tmpl.Parts {
		if i > 0 {
			x.buf.WriteString(PART_SEPARATOR)
		}
		x.buf.WriteString(part.Prefix)
		if part.Head {
			x.buf.WriteString(part.attr(head))
		} else {
			x.buf.WriteString(part.attr(modifier))
		}
	}
	return x.buf.String()
}

// Render returns the feature strings of arc (h, m) of sent, in template
// order.
func (x *Extractor) Render(sent nlp.Sentence, h, m int) []string {
	rendered := make([]string, len(x.Templates.Templates))
	for i, tmpl := range x.Templates.Templates {
		rendered[i] = x.render(&tmpl, &sent[h], &sent[m])
	}
	return rendered
}
