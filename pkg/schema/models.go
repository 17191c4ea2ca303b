// Package schema provides database models for archiving decoration runs.
// The same models create SQLite tables from their struct tags and
// PostgreSQL tables through GORM AutoMigrate.
package schema

import (
	"database/sql"
)

// DDLGenerator defines how Go models generate SQL DDL.
type DDLGenerator interface {
	// TableDDL returns the CREATE TABLE statement for this model.
	TableDDL() string

	// IndexDDL returns CREATE INDEX statements for this model.
	// Returns empty slice if no indexes needed.
	IndexDDL() []string

	// TableName returns the table name for this model.
	TableName() string
}

// Archive groups all records of one decoration run.
type Archive struct {
	Run         Run
	Nodes       []NodeName
	Lineages    []TipLineage
	Consistency []TaxonConsistency
}

// Run stores metadata of a decoration run.
type Run struct {
	// ID is a random UUID of the run.
	ID string `db:"id" ddl:"TEXT PRIMARY KEY" gorm:"primaryKey;type:uuid"`

	// StartedAt is the RFC3339 timestamp of the run start.
	StartedAt string `db:"started_at" ddl:"TEXT"`

	// Version of gnt2t that produced the run.
	Version string `db:"version" ddl:"TEXT"`

	TreePath string `db:"tree_path" ddl:"TEXT"`
	MapPath  string `db:"map_path" ddl:"TEXT"`

	// Ranks are rank codes of the run joined by comma.
	Ranks string `db:"ranks" ddl:"TEXT"`

	// ScoreName is the name of the precision/recall combiner.
	ScoreName string `db:"score_name" ddl:"TEXT"`

	MinCount int `db:"min_count" ddl:"INTEGER"`

	// Score is the tip-weighted mean score of placed names.
	Score float64 `db:"score" ddl:"REAL"`

	TipsNum       int `db:"tips_num" ddl:"INTEGER"`
	NamedNodesNum int `db:"named_nodes_num" ddl:"INTEGER"`
	BadTipsNum    int `db:"bad_tips_num" ddl:"INTEGER"`
}

// NodeName stores a decorated internal node.
type NodeName struct {
	RunID  string `db:"run_id" ddl:"TEXT NOT NULL" gorm:"primaryKey;type:uuid"`
	NodeID int    `db:"node_id" ddl:"INTEGER NOT NULL" gorm:"primaryKey;autoIncrement:false"`

	// Name is the decorated label without support value.
	Name string `db:"name" ddl:"TEXT"`

	// NameID is a UUIDv5 of the Name.
	NameID string `db:"name_id" ddl:"TEXT" gorm:"type:uuid;index"`

	// Rank is the index of the deepest rank of the node, -1 if unranked.
	Rank int `db:"rank" ddl:"INTEGER"`

	TipStart int `db:"tip_start" ddl:"INTEGER"`
	TipStop  int `db:"tip_stop" ddl:"INTEGER"`

	Bootstrap sql.NullFloat64 `db:"bootstrap" ddl:"REAL"`
}

// TipLineage stores a consensus string pulled from the decorated tree.
type TipLineage struct {
	RunID string `db:"run_id" ddl:"TEXT NOT NULL" gorm:"primaryKey;type:uuid"`
	TipID string `db:"tip_id" ddl:"TEXT NOT NULL" gorm:"primaryKey"`

	// Lineage is the rank-ordered list of names joined by '; '.
	Lineage string `db:"lineage" ddl:"TEXT"`

	// Valid is false for tips with a rank order violation.
	Valid bool `db:"valid" ddl:"BOOLEAN"`
}

// TaxonConsistency stores the consistency index of a taxon.
type TaxonConsistency struct {
	RunID       string  `db:"run_id" ddl:"TEXT NOT NULL" gorm:"primaryKey;type:uuid"`
	Rank        string  `db:"rank" ddl:"TEXT NOT NULL" gorm:"primaryKey"`
	Taxon       string  `db:"taxon" ddl:"TEXT NOT NULL" gorm:"primaryKey"`
	TaxonID     string  `db:"taxon_id" ddl:"TEXT" gorm:"type:uuid;index"`
	Count       int     `db:"count" ddl:"INTEGER"`
	Consistency float64 `db:"consistency" ddl:"REAL"`
}
