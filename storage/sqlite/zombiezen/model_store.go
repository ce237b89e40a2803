package zombiezen

import (
	"context"
	"time"

	"github.com/habeanf/eisnerdep/alg/featurevector"
	"github.com/habeanf/eisnerdep/nlp/parser/dependency"
	"github.com/habeanf/eisnerdep/nlp/parser/dependency/features"
	"github.com/habeanf/eisnerdep/storage"
	"github.com/habeanf/eisnerdep/util"

	"github.com/pkg/errors"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

// ModelStore keeps any number of named models in one database. Each feature
// row carries its vocabulary index and weight.
type ModelStore struct {
	pool *sqlitex.Pool
}

var _ storage.ModelRepository = (*ModelStore)(nil)

func NewModelStore(pool *sqlitex.Pool) *ModelStore {
	return &ModelStore{pool: pool}
}

// OpenModelStore opens the database at dbPath and creates its schema.
func OpenModelStore(dbPath string) (*ModelStore, error) {
	pool, err := NewPool(dbPath)
	if err != nil {
		return nil, err
	}
	if err := CreateSchemas(pool, MODELS_SCHEMA); err != nil {
		pool.Close()
		return nil, err
	}
	return NewModelStore(pool), nil
}

func (s *ModelStore) Close() error {
	return s.pool.Close()
}

func (s *ModelStore) Write(name string, model *dependency.Model) (err error) {
	if err := model.Validate(); err != nil {
		return errors.Wrap(err, "refusing to write invalid model")
	}
	conn, err := s.pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer s.pool.Put(conn)

	defer sqlitex.Save(conn)(&err)

	for _, table := range []string{"features", "templates", "models"} {
		column := "model"
		if table == "models" {
			column = "name"
		}
		err = sqlitex.Execute(conn, "DELETE FROM "+table+" WHERE "+column+" = ?", &sqlitex.ExecOptions{
			Args: []interface{}{name},
		})
		if err != nil {
			return errors.Wrapf(err, "failed to clear %s of model %s", table, name)
		}
	}

	meta := model.Meta
	err = sqlitex.Execute(conn,
		"INSERT INTO models (name, run_id, train_file, train_md5, iterations, sentences, created) VALUES (?, ?, ?, ?, ?, ?, ?)",
		&sqlitex.ExecOptions{
			Args: []interface{}{name, meta.RunID, meta.TrainFile, meta.TrainMD5, meta.Iterations, meta.Sentences, meta.Created.UTC().Format(time.RFC3339Nano)},
		})
	if err != nil {
		return errors.Wrap(err, "failed to insert model")
	}

	if model.Setup != nil {
		var position int
		for _, group := range model.Setup.FeatureGroups {
			for _, feature := range group.Features {
				err = sqlitex.Execute(conn, "INSERT INTO templates (model, position, feature_group, feature) VALUES (?, ?, ?, ?)", &sqlitex.ExecOptions{
					Args: []interface{}{name, position, group.Group, feature},
				})
				if err != nil {
					return errors.Wrap(err, "failed to insert template")
				}
				position++
			}
		}
	}

	for idx, feature := range model.Features.Values() {
		err = sqlitex.Execute(conn, "INSERT INTO features (model, idx, feature, weight) VALUES (?, ?, ?, ?)", &sqlitex.ExecOptions{
			Args: []interface{}{name, idx, feature, model.Weights[idx]},
		})
		if err != nil {
			return errors.Wrapf(err, "failed to insert feature %d", idx)
		}
	}
	return nil
}

func (s *ModelStore) Read(name string) (*dependency.Model, error) {
	conn, err := s.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer s.pool.Put(conn)

	var (
		model   = &dependency.Model{}
		found   bool
		created string
	)
	err = sqlitex.Execute(conn, "SELECT run_id, train_file, train_md5, iterations, sentences, created FROM models WHERE name = ?", &sqlitex.ExecOptions{
		Args: []interface{}{name},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			found = true
			model.Meta = dependency.Meta{
				RunID:      stmt.ColumnText(0),
				TrainFile:  stmt.ColumnText(1),
				TrainMD5:   stmt.ColumnText(2),
				Iterations: stmt.ColumnInt(3),
				Sentences:  stmt.ColumnInt(4),
			}
			created = stmt.ColumnText(5)
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errors.Errorf("model not found: %s", name)
	}
	if created != "" {
		if model.Meta.Created, err = time.Parse(time.RFC3339Nano, created); err != nil {
			return nil, errors.Wrapf(err, "model %s creation time", name)
		}
	}

	setup := new(features.FeatureSetup)
	err = sqlitex.Execute(conn, "SELECT feature_group, feature FROM templates WHERE model = ? ORDER BY position", &sqlitex.ExecOptions{
		Args: []interface{}{name},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			group, feature := stmt.ColumnText(0), stmt.ColumnText(1)
			last := len(setup.FeatureGroups) - 1
			if last < 0 || setup.FeatureGroups[last].Group != group {
				setup.FeatureGroups = append(setup.FeatureGroups, features.FeatureGroup{Group: group})
				last++
			}
			setup.FeatureGroups[last].Features = append(setup.FeatureGroups[last].Features, feature)
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	if setup.NumFeatures() > 0 {
		model.Setup = setup
	}

	var (
		values  []string
		weights featurevector.Dense
	)
	err = sqlitex.Execute(conn, "SELECT idx, feature, weight FROM features WHERE model = ? ORDER BY idx", &sqlitex.ExecOptions{
		Args: []interface{}{name},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			if idx := stmt.ColumnInt(0); idx != len(values) {
				return errors.Errorf("feature index %d missing", len(values))
			}
			values = append(values, stmt.ColumnText(1))
			weights = append(weights, stmt.ColumnFloat(2))
			return nil
		},
	})
	if err != nil {
		return nil, errors.Wrapf(err, "model %s features", name)
	}

	if model.Features, err = util.NewEnumSetFromValues(values); err != nil {
		return nil, errors.Wrapf(err, "model %s vocabulary", name)
	}
	model.Features.Freeze()
	model.Weights = weights
	if err := model.Validate(); err != nil {
		return nil, errors.Wrapf(err, "model %s", name)
	}
	return model, nil
}

// List returns the names of the stored models.
func (s *ModelStore) List() ([]string, error) {
	conn, err := s.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer s.pool.Put(conn)

	var names []string
	err = sqlitex.Execute(conn, "SELECT name FROM models ORDER BY name", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			names = append(names, stmt.ColumnText(0))
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	return names, nil
}
