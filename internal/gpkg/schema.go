package gpkg

import (
	"database/sql"
	"fmt"
)

// DefaultSRSID is EPSG:25833 (ETRS89 / UTM zone 33N), the projected CRS
// the whole pipeline operates in (spec §9).
const DefaultSRSID = 25833

const baseSchema = `
CREATE TABLE IF NOT EXISTS gpkg_spatial_ref_sys (
	srs_name TEXT NOT NULL,
	srs_id INTEGER NOT NULL PRIMARY KEY,
	organization TEXT NOT NULL,
	organization_coordsys_id INTEGER NOT NULL,
	definition TEXT NOT NULL,
	description TEXT
);

CREATE TABLE IF NOT EXISTS gpkg_contents (
	table_name TEXT NOT NULL PRIMARY KEY,
	data_type TEXT NOT NULL,
	identifier TEXT UNIQUE,
	description TEXT DEFAULT '',
	last_change DATETIME NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ','now')),
	min_x DOUBLE, min_y DOUBLE, max_x DOUBLE, max_y DOUBLE,
	srs_id INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS gpkg_geometry_columns (
	table_name TEXT NOT NULL,
	column_name TEXT NOT NULL,
	geometry_type_name TEXT NOT NULL,
	srs_id INTEGER NOT NULL,
	z TINYINT NOT NULL,
	m TINYINT NOT NULL,
	PRIMARY KEY (table_name, column_name)
);
`

func createBaseSchema(db *sql.DB) error {
	if _, err := db.Exec(baseSchema); err != nil {
		return fmt.Errorf("create gpkg base schema: %w", err)
	}
	_, err := db.Exec(`INSERT OR IGNORE INTO gpkg_spatial_ref_sys
		(srs_name, srs_id, organization, organization_coordsys_id, definition, description)
		VALUES (?, ?, ?, ?, ?, ?)`,
		"ETRS89 / UTM zone 33N", DefaultSRSID, "EPSG", DefaultSRSID,
		"", "Projected CRS used for all geometry in this dataset")
	if err != nil {
		return fmt.Errorf("insert srs row: %w", err)
	}
	return nil
}

// featureTableSchema is the per-layer feature table: a fixed geometry
// column plus one column per FinalEdge attribute, mirroring spec §6's
// column list for the hinrichtung/gegenrichtung layers.
const featureTableSchema = `
CREATE TABLE IF NOT EXISTS %[1]s (
	fid INTEGER PRIMARY KEY AUTOINCREMENT,
	geom BLOB,
	element_nr TEXT NOT NULL,
	ri INTEGER NOT NULL,
	fuehr TEXT,
	ofm TEXT,
	protek TEXT,
	pflicht INTEGER,
	breite REAL,
	farbe INTEGER,
	verkehrsri TEXT,
	trennstreifen TEXT,
	nutz_beschr TEXT,
	laenge_m INTEGER,
	bezirksnummer TEXT,
	afid INTEGER,
	tilda TEXT
);
`

func createFeatureTable(db *sql.DB, layer string) error {
	if _, err := db.Exec(fmt.Sprintf(featureTableSchema, layer)); err != nil {
		return fmt.Errorf("create feature table %s: %w", layer, err)
	}

	_, err := db.Exec(`INSERT OR REPLACE INTO gpkg_contents
		(table_name, data_type, identifier, srs_id) VALUES (?, 'features', ?, ?)`,
		layer, layer, DefaultSRSID)
	if err != nil {
		return fmt.Errorf("register gpkg_contents for %s: %w", layer, err)
	}

	_, err = db.Exec(`INSERT OR REPLACE INTO gpkg_geometry_columns
		(table_name, column_name, geometry_type_name, srs_id, z, m)
		VALUES (?, 'geom', 'MULTILINESTRING', ?, 0, 0)`, layer, DefaultSRSID)
	if err != nil {
		return fmt.Errorf("register gpkg_geometry_columns for %s: %w", layer, err)
	}
	return nil
}
