package zombiezen

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/habeanf/eisnerdep/alg/featurevector"
	"github.com/habeanf/eisnerdep/nlp/parser/dependency"
	nlp "github.com/habeanf/eisnerdep/nlp/types"
	"github.com/habeanf/eisnerdep/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openStore(t *testing.T) *ModelStore {
	store, err := OpenModelStore(filepath.Join(t.TempDir(), "models.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func trainedModel(t *testing.T, iterations int) *dependency.Model {
	sent := nlp.NewSentence(
		nlp.Token{ID: 1, Form: "John", PosTag: "NNP", Head: 2},
		nlp.Token{ID: 2, Form: "saw", PosTag: "VBD", Head: 0},
		nlp.Token{ID: 3, Form: "Mary", PosTag: "NNP", Head: 2},
	)
	model, err := new(dependency.Trainer).Train([]nlp.Sentence{sent}, iterations)
	require.NoError(t, err)
	model.Meta.RunID = "abc123"
	model.Meta.TrainFile = "train.conll"
	model.Meta.Created = time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
	return model
}

func TestWriteRead(t *testing.T) {
	store := openStore(t)
	model := trainedModel(t, 3)
	require.NoError(t, store.Write("jsm", model))

	loaded, err := store.Read("jsm")
	require.NoError(t, err)
	assert.Equal(t, model.Features.Values(), loaded.Features.Values())
	assert.Equal(t, model.Weights, loaded.Weights)
	assert.Equal(t, model.Setup, loaded.Setup)
	assert.Equal(t, "abc123", loaded.Meta.RunID)
	assert.Equal(t, "train.conll", loaded.Meta.TrainFile)
	assert.Equal(t, 3, loaded.Meta.Iterations)
	assert.Equal(t, 1, loaded.Meta.Sentences)
	assert.True(t, model.Meta.Created.Equal(loaded.Meta.Created))
	assert.True(t, loaded.Features.IsFrozen())
}

func TestOverwrite(t *testing.T) {
	store := openStore(t)
	require.NoError(t, store.Write("m", trainedModel(t, 1)))
	second := trainedModel(t, 0)
	require.NoError(t, store.Write("m", second))

	loaded, err := store.Read("m")
	require.NoError(t, err)
	assert.Equal(t, 0, loaded.Meta.Iterations)
	assert.Equal(t, 0, loaded.Weights.NonZero())

	names, err := store.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"m"}, names)
}

func TestList(t *testing.T) {
	store := openStore(t)
	require.NoError(t, store.Write("b", trainedModel(t, 1)))
	require.NoError(t, store.Write("a", trainedModel(t, 1)))
	names, err := store.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, names)
}

func TestReadMissing(t *testing.T) {
	store := openStore(t)
	_, err := store.Read("nope")
	assert.Error(t, err)
}

func TestWriteInvalid(t *testing.T) {
	store := openStore(t)
	vocab, err := util.NewEnumSetFromValues([]string{"a", "b"})
	require.NoError(t, err)
	err = store.Write("bad", &dependency.Model{Features: vocab, Weights: featurevector.Dense{1}})
	assert.Error(t, err)

	names, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestReloadedModelParses(t *testing.T) {
	store := openStore(t)
	require.NoError(t, store.Write("jsm", trainedModel(t, 5)))
	loaded, err := store.Read("jsm")
	require.NoError(t, err)

	parser, err := dependency.NewParser(loaded)
	require.NoError(t, err)
	sent := nlp.NewSentence(
		nlp.Token{ID: 1, Form: "John", PosTag: "NNP"},
		nlp.Token{ID: 2, Form: "saw", PosTag: "VBD"},
		nlp.Token{ID: 3, Form: "Mary", PosTag: "NNP"},
	)
	heads, err := parser.Parse(sent)
	require.NoError(t, err)
	assert.Equal(t, nlp.Heads{nlp.NO_HEAD, 2, 0, 2}, heads)
}
