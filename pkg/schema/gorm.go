package schema

import (
	"gorm.io/gorm"
)

// AllModels returns all schema models for GORM AutoMigrate.
func AllModels() []any {
	return []any{
		&Run{},
		&NodeName{},
		&TipLineage{},
		&TaxonConsistency{},
	}
}

// Generators returns all models as DDL generators, in creation order.
func Generators() []DDLGenerator {
	return []DDLGenerator{
		Run{},
		NodeName{},
		TipLineage{},
		TaxonConsistency{},
	}
}

// Migrate runs GORM AutoMigrate to create or update schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(AllModels()...)
}
