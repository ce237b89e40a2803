package features

import (
	"testing"

	nlp "github.com/habeanf/eisnerdep/nlp/types"
	"github.com/habeanf/eisnerdep/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var johnSawMary = nlp.NewSentence(
	nlp.Token{ID: 1, Form: "John", PosTag: "NNP", Head: 2},
	nlp.Token{ID: 2, Form: "saw", PosTag: "VBD", Head: 0},
	nlp.Token{ID: 3, Form: "Mary", PosTag: "NNP", Head: 2},
)

func TestRenderExactStrings(t *testing.T) {
	x := NewExtractor(nil, nil)
	assert.Equal(t, []string{
		"h_word=saw:h_pos=VBD",
		"h_word=saw",
		"h_pos=VBD",
		"m_word=John:m_pos=NNP",
		"m_word=John",
		"m_pos=NNP",
		"h_word=saw:h_pos=VBD:m_word=John:m_pos=NNP",
		"h_pos=VBD:m_word=John:m_pos=NNP",
		"h_word=saw:m_word=John:m_pos=NNP",
		"h_word=saw:h_pos=VBD:m_pos=NNP",
		"h_word=saw:h_pos=VBD:m_word=John",
		"h_word=saw:m_word=John",
		"h_pos=VBD:m_pos=NNP",
	}, x.Render(johnSawMary, 2, 1))

	root := x.Render(johnSawMary, 0, 2)
	assert.Equal(t, "h_word=<ROOT>:h_pos=ROOT", root[0])
}

func TestExtractArcs(t *testing.T) {
	x := NewExtractor(nil, nil)
	edges, vocab := x.Extract([]nlp.Sentence{johnSawMary})
	require.Len(t, edges, 1)

	// every ordered pair except self arcs
	assert.Len(t, edges[0], 12)
	for h := 0; h < 4; h++ {
		assert.Nil(t, edges[0].Get(h, h))
		for m := 0; m < 4; m++ {
			if h != m {
				assert.Len(t, edges[0].Get(h, m), 13)
			}
		}
	}

	// first arc extracted is (0, 1), so its features take the first indices
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, edges[0].Get(0, 1))
	for _, idx := range edges[0].Get(2, 1) {
		assert.True(t, idx >= 0 && idx < vocab.Len())
	}

	// (2,1) and (2,3) share head unigrams
	assert.Equal(t, edges[0].Get(2, 1)[:3], edges[0].Get(2, 3)[:3])
	// John and Mary share the modifier POS
	assert.Equal(t, edges[0].Get(2, 1)[5], edges[0].Get(2, 3)[5])
}

func TestExtractIdempotent(t *testing.T) {
	x := NewExtractor(nil, nil)
	first, vocab := x.Extract([]nlp.Sentence{johnSawMary})
	size := vocab.Len()

	second, vocab := x.Extract([]nlp.Sentence{johnSawMary})
	assert.Equal(t, size, vocab.Len())
	assert.Equal(t, first, second)
}

func TestExtractSingleToken(t *testing.T) {
	x := NewExtractor(nil, nil)
	edges, vocab := x.Extract([]nlp.Sentence{nlp.NewSentence()})
	assert.Empty(t, edges[0])
	assert.Equal(t, 0, vocab.Len())
}

func TestExtractFrozenSkipsUnknown(t *testing.T) {
	x := NewExtractor(nil, util.NewEnumSet(64))
	_, vocab := x.Extract([]nlp.Sentence{johnSawMary})
	size := vocab.Len()
	vocab.Freeze()

	unseen := nlp.NewSentence(
		nlp.Token{ID: 1, Form: "Mary", PosTag: "NNP", Head: 2},
		nlp.Token{ID: 2, Form: "ran", PosTag: "VBD", Head: 0},
	)
	edges := x.ExtractSentence(unseen)
	assert.Equal(t, size, vocab.Len())

	// (2,1): every feature mentioning "ran" is unknown
	for _, idx := range edges.Get(2, 1) {
		assert.True(t, idx < size)
	}
	assert.Less(t, len(edges.Get(2, 1)), 13)
	assert.NotEmpty(t, edges.Get(2, 1))
}

func TestTreeFeatures(t *testing.T) {
	x := NewExtractor(nil, nil)
	edges, _ := x.Extract([]nlp.Sentence{johnSawMary})
	features := edges[0].Tree(johnSawMary.GoldHeads())
	assert.Len(t, features, 39)
	assert.Equal(t, edges[0].Get(2, 1), features[:13])
	assert.Equal(t, edges[0].Get(0, 2), features[13:26])
}
