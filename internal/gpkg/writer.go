// Package gpkg writes the final attributed network to a GeoPackage file
// with two layers, hinrichtung (RI=0) and gegenrichtung (RI=1), adapted
// from the teacher's MBTiles writer (spec §6 External Interfaces).
package gpkg

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/FixMyBerlin/infravelo-radnetz/internal/model"
	_ "modernc.org/sqlite"
)

// DefaultBatchSize is the number of features buffered before a flush.
const DefaultBatchSize = 500

// LayerHinrichtung and LayerGegenrichtung are the two fixed layer
// (table) names the writer produces, one per cycling direction.
const (
	LayerHinrichtung   = "hinrichtung"   // RI = 0
	LayerGegenrichtung = "gegenrichtung" // RI = 1
)

// Writer batches FinalEdge rows into a GeoPackage database, split by RI
// into the two fixed layers.
type Writer struct {
	db        *sql.DB
	batch     map[string][]model.FinalEdge
	batchSize int
	mu        sync.Mutex
}

// New creates (or opens) a GeoPackage at path and initializes its schema.
func New(path string) (*Writer, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open geopackage: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA foreign_keys = ON",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("set pragma %q: %w", p, err)
		}
	}

	if err := createBaseSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	for _, layer := range []string{LayerHinrichtung, LayerGegenrichtung} {
		if err := createFeatureTable(db, layer); err != nil {
			db.Close()
			return nil, err
		}
	}

	return &Writer{
		db: db,
		batch: map[string][]model.FinalEdge{
			LayerHinrichtung:   make([]model.FinalEdge, 0, DefaultBatchSize),
			LayerGegenrichtung: make([]model.FinalEdge, 0, DefaultBatchSize),
		},
		batchSize: DefaultBatchSize,
	}, nil
}

func layerFor(e model.FinalEdge) string {
	if e.RI == 1 {
		return LayerGegenrichtung
	}
	return LayerHinrichtung
}

// WriteEdge adds a final edge to its direction's layer batch, flushing
// automatically once that layer's batch is full.
func (w *Writer) WriteEdge(e model.FinalEdge) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	layer := layerFor(e)
	w.batch[layer] = append(w.batch[layer], e)
	if len(w.batch[layer]) >= w.batchSize {
		return w.flushLayerLocked(layer)
	}
	return nil
}

// Flush writes every buffered row to disk.
func (w *Writer) Flush() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, layer := range []string{LayerHinrichtung, LayerGegenrichtung} {
		if err := w.flushLayerLocked(layer); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) flushLayerLocked(layer string) error {
	rows := w.batch[layer]
	if len(rows) == 0 {
		return nil
	}

	tx, err := w.db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	stmt, err := tx.Prepare(fmt.Sprintf(`INSERT INTO %s
		(geom, element_nr, ri, fuehr, ofm, protek, pflicht, breite, farbe,
		 verkehrsri, trennstreifen, nutz_beschr, laenge_m, bezirksnummer, afid, tilda)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`, layer))
	if err != nil {
		return fmt.Errorf("prepare insert for %s: %w", layer, err)
	}
	defer stmt.Close()

	for _, e := range rows {
		geom := EncodeMultiLineString(e.Geometry, DefaultSRSID)
		var breite interface{}
		if e.Attrs.Breite != nil {
			breite = *e.Attrs.Breite
		}
		if _, err := stmt.Exec(geom, e.ElementNr, e.RI, e.Attrs.Fuehr, e.Attrs.OFM,
			e.Attrs.Protek, e.Attrs.Pflicht, breite, e.Attrs.Farbe, e.Attrs.Verkehrsri,
			e.Attrs.Trennstreifen, e.Attrs.NutzBeschr, e.LaengeM, e.Bezirksnummer, e.AFID,
			encodeTilda(e.Tilda)); err != nil {
			return fmt.Errorf("insert row into %s: %w", layer, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit %s: %w", layer, err)
	}
	w.batch[layer] = w.batch[layer][:0]
	return nil
}

// Close flushes remaining rows and closes the database.
func (w *Writer) Close() error {
	if err := w.Flush(); err != nil {
		w.db.Close()
		return err
	}
	return w.db.Close()
}
