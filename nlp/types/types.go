package types

import (
	"reflect"

	"github.com/habeanf/eisnerdep/alg/graph"
	"github.com/habeanf/eisnerdep/util"
)

const (
	ROOT_TOKEN = "<ROOT>"
	ROOT_POS   = "ROOT"
	ROOT_LABEL = "ROOT"
	NO_HEAD    = graph.NO_HEAD
)

// A Token is one word of a sentence with its annotation. Head is the gold
// head position, NO_HEAD for the root or when unknown.
type Token struct {
	ID      int
	Form    string
	Lemma   string
	CPosTag string
	PosTag  string
	Feats   string
	Head    int
	DepRel  string
}

func RootToken() Token {
	return Token{
		ID:      0,
		Form:    ROOT_TOKEN,
		Lemma:   ROOT_TOKEN,
		CPosTag: ROOT_POS,
		PosTag:  ROOT_POS,
		Feats:   "",
		Head:    NO_HEAD,
		DepRel:  ROOT_LABEL,
	}
}

// A Sentence always starts with the root token at position 0.
type Sentence []Token

var _ util.Equaler = Sentence{}

// NewSentence prepends the root token to tokens.
func NewSentence(tokens ...Token) Sentence {
	sent := make(Sentence, 0, len(tokens)+1)
	sent = append(sent, RootToken())
	return append(sent, tokens...)
}

// Len is the number of tokens including the root.
func (s Sentence) Len() int {
	return len(s)
}

func (s Sentence) Tokens() []string {
	tokens := make([]string, len(s))
	for i, token := range s {
		tokens[i] = token.Form
	}
	return tokens
}

func (s Sentence) GoldHeads() Heads {
	heads := make(Heads, len(s))
	for i, token := range s {
		heads[i] = token.Head
	}
	if len(heads) > 0 {
		heads[0] = NO_HEAD
	}
	return heads
}

// WithHeads returns a copy of s whose non-root tokens carry heads.
func (s Sentence) WithHeads(heads Heads) Sentence {
	copied := make(Sentence, len(s))
	copy(copied, s)
	for i := 1; i < len(copied) && i < len(heads); i++ {
		copied[i].Head = heads[i]
	}
	return copied
}

func (s Sentence) Equal(otherEq util.Equaler) bool {
	other, ok := otherEq.(Sentence)
	return ok && reflect.DeepEqual(s, other)
}

// Heads maps each position of a sentence to its head position.
type Heads []int

var _ util.Equaler = Heads{}

func (h Heads) Equal(otherEq util.Equaler) bool {
	other, ok := otherEq.(Heads)
	if !ok || len(h) != len(other) {
		return false
	}
	for i := range h {
		if h[i] != other[i] {
			return false
		}
	}
	return true
}
