// Package store persists extracted grammars in a bolt database.
//
// Each grammar is kept as one record keyed by its UUID, holding summary
// fields (indexed by name and creation time) and the grammar's YAML
// document.
package store

import (
	"bytes"
	"encoding/json"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/timshannon/bolthold"
	"go.etcd.io/bbolt"

	"github.com/katalvlaran/vrg/grammar"
)

// ErrNotFound indicates that no grammar has the requested ID.
var ErrNotFound = errors.New("store: grammar not found")

const openTimeout = 5 * time.Second

// Summary describes a stored grammar without decoding its rules.
type Summary struct {
	ID         uuid.UUID
	Name       string
	Clustering string
	Mode       string
	Selection  string
	Lambda     int
	Rules      int
	Cost       float64
	CreatedAt  time.Time
}

type record struct {
	ID         string  `json:"id" boltholdKey:"ID"`
	Name       string  `json:"name" boltholdIndex:"Name"`
	Clustering string  `json:"clustering"`
	Mode       string  `json:"mode"`
	Selection  string  `json:"selection"`
	Lambda     int     `json:"lambda"`
	Rules      int     `json:"rules"`
	Cost       float64 `json:"cost"`
	CreatedAt  int64   `json:"createdAt" boltholdIndex:"CreatedAt"`
	Document   []byte  `json:"document"`
}

// Store is a grammar database. It is safe for concurrent use.
type Store struct {
	db *bolthold.Store
}

// Open opens or creates the database file at path.
func Open(path string) (*Store, error) {
	db, err := bolthold.Open(path, 0o644, &bolthold.Options{
		Encoder: json.Marshal,
		Decoder: json.Unmarshal,
		Options: &bbolt.Options{
			Timeout:      openTimeout,
			NoGrowSync:   bbolt.DefaultOptions.NoGrowSync,
			FreelistType: bbolt.DefaultOptions.FreelistType,
		},
	})
	if err != nil {
		return nil, errors.Wrapf(err, "opening store %s", path)
	}

	return &Store{db: db}, nil
}

// Close releases the database file.
func (s *Store) Close() error {
	return errors.Wrap(s.db.Close(), "closing store")
}

// Put stores gr, replacing any grammar with the same ID.
func (s *Store) Put(gr *grammar.Grammar) error {
	var buf bytes.Buffer
	if err := grammar.Encode(&buf, gr); err != nil {
		return errors.Wrap(err, "encoding grammar")
	}
	rec := record{
		ID:         gr.ID.String(),
		Name:       gr.Name,
		Clustering: gr.Clustering,
		Mode:       gr.Mode.String(),
		Selection:  gr.Selection.String(),
		Lambda:     gr.Lambda,
		Rules:      gr.Len(),
		Cost:       gr.Cost(),
		CreatedAt:  time.Now().UnixNano(),
		Document:   buf.Bytes(),
	}
	if err := s.db.Upsert(rec.ID, &rec); err != nil {
		return errors.Wrapf(err, "storing grammar %s", rec.ID)
	}

	return nil
}

// Get loads the grammar with the given ID.
func (s *Store) Get(id uuid.UUID) (*grammar.Grammar, error) {
	var rec record
	if err := s.db.Get(id.String(), &rec); err != nil {
		if errors.Is(err, bolthold.ErrNotFound) {
			return nil, errors.Wrapf(ErrNotFound, "grammar %s", id)
		}
		return nil, errors.Wrapf(err, "loading grammar %s", id)
	}
	gr, err := grammar.Decode(bytes.NewReader(rec.Document))
	if err != nil {
		return nil, errors.Wrapf(err, "decoding grammar %s", id)
	}

	return gr, nil
}

// List returns the summaries of all stored grammars, oldest first.
func (s *Store) List() ([]Summary, error) {
	var recs []record
	if err := s.db.Find(&recs, nil); err != nil {
		return nil, errors.Wrap(err, "listing grammars")
	}

	return summaries(recs)
}

// FindByName returns the summaries of the grammars called name, oldest first.
func (s *Store) FindByName(name string) ([]Summary, error) {
	var recs []record
	if err := s.db.Find(&recs, bolthold.Where("Name").Eq(name).Index("Name")); err != nil {
		return nil, errors.Wrapf(err, "finding grammars named %q", name)
	}

	return summaries(recs)
}

// Delete removes the grammar with the given ID.
func (s *Store) Delete(id uuid.UUID) error {
	if err := s.db.Delete(id.String(), record{}); err != nil {
		if errors.Is(err, bolthold.ErrNotFound) {
			return errors.Wrapf(ErrNotFound, "grammar %s", id)
		}
		return errors.Wrapf(err, "deleting grammar %s", id)
	}

	return nil
}

func summaries(recs []record) ([]Summary, error) {
	sort.Slice(recs, func(i, j int) bool { return recs[i].CreatedAt < recs[j].CreatedAt })
	out := make([]Summary, 0, len(recs))
	for _, r := range recs {
		id, err := uuid.Parse(r.ID)
		if err != nil {
			return nil, errors.Wrapf(err, "record %q", r.ID)
		}
		out = append(out, Summary{
			ID:         id,
			Name:       r.Name,
			Clustering: r.Clustering,
			Mode:       r.Mode,
			Selection:  r.Selection,
			Lambda:     r.Lambda,
			Rules:      r.Rules,
			Cost:       r.Cost,
			CreatedAt:  time.Unix(0, r.CreatedAt),
		})
	}

	return out, nil
}
