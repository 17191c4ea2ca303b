package schema

import (
	"fmt"
	"reflect"
	"strings"
)

// generateDDL creates a CREATE TABLE statement from struct tags.
func generateDDL(model any, tableName string, pk ...string) string {
	fields := taggedFields(model)
	columns := make([]string, 0, len(fields)+1)
	for _, f := range fields {
		columns = append(columns, fmt.Sprintf("    %s %s", f.column, f.ddl))
	}
	if len(pk) > 0 {
		columns = append(columns,
			fmt.Sprintf("    PRIMARY KEY (%s)", strings.Join(pk, ", ")))
	}

	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n%s\n);",
		tableName,
		strings.Join(columns, ",\n"))
}

type field struct {
	column, ddl string
	idx         int
}

func taggedFields(model any) []field {
	v := reflect.ValueOf(model)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	t := v.Type()

	var res []field
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		dbTag := f.Tag.Get("db")
		ddlTag := f.Tag.Get("ddl")
		if dbTag != "" && ddlTag != "" {
			res = append(res, field{column: dbTag, ddl: ddlTag, idx: i})
		}
	}
	return res
}

// InsertSQL returns a parametrized INSERT statement for a model.
func InsertSQL(m DDLGenerator) string {
	fields := taggedFields(m)
	cols := make([]string, len(fields))
	marks := make([]string, len(fields))
	for i, f := range fields {
		cols[i] = f.column
		marks[i] = "?"
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		m.TableName(), strings.Join(cols, ", "), strings.Join(marks, ", "))
}

// Values returns field values of a model in the column order of
// InsertSQL.
func Values(m DDLGenerator) []any {
	v := reflect.ValueOf(m)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	fields := taggedFields(m)
	res := make([]any, len(fields))
	for i, f := range fields {
		res[i] = v.Field(f.idx).Interface()
	}
	return res
}

func (r Run) TableDDL() string {
	return generateDDL(r, r.TableName())
}

func (r Run) IndexDDL() []string {
	return []string{}
}

func (r Run) TableName() string {
	return "runs"
}

func (n NodeName) TableDDL() string {
	return generateDDL(n, n.TableName(), "run_id", "node_id")
}

func (n NodeName) IndexDDL() []string {
	return []string{
		"CREATE INDEX IF NOT EXISTS idx_node_names_name_id ON node_names(name_id);",
	}
}

func (n NodeName) TableName() string {
	return "node_names"
}

func (l TipLineage) TableDDL() string {
	return generateDDL(l, l.TableName(), "run_id", "tip_id")
}

func (l TipLineage) IndexDDL() []string {
	return []string{}
}

func (l TipLineage) TableName() string {
	return "tip_lineages"
}

func (c TaxonConsistency) TableDDL() string {
	return generateDDL(c, c.TableName(), "run_id", "rank", "taxon")
}

func (c TaxonConsistency) IndexDDL() []string {
	return []string{
		"CREATE INDEX IF NOT EXISTS idx_taxon_consistencies_taxon_id " +
			"ON taxon_consistencies(taxon_id);",
	}
}

func (c TaxonConsistency) TableName() string {
	return "taxon_consistencies"
}
