// Package consmap keeps the mapping from tip identifiers to cleaned
// rank-length classifications, and the rules that clean raw consensus map
// lines.
//
// A consensus map line is 'id<TAB>name1; name2; ...; nameR'. In a cleaned
// row an empty string means the name at that rank is absent.
package consmap

// Row is a cleaned classification of one tip.
type Row struct {
	ID    string
	Names []string
}

// Map keeps cleaned rows in the order they were added.
type Map struct {
	rows  []Row
	index map[string]int
}

// NewMap creates an empty Map.
func NewMap() *Map {
	return &Map{index: make(map[string]int)}
}

// Add inserts a row. A repeated id replaces the earlier names but keeps
// the position of the first occurrence.
func (m *Map) Add(id string, names []string) {
	if i, ok := m.index[id]; ok {
		m.rows[i].Names = names
		return
	}
	m.index[id] = len(m.rows)
	m.rows = append(m.rows, Row{ID: id, Names: names})
}

// Get returns names for a tip id.
func (m *Map) Get(id string) ([]string, bool) {
	i, ok := m.index[id]
	if !ok {
		return nil, false
	}
	return m.rows[i].Names, true
}

// Len returns the number of rows.
func (m *Map) Len() int {
	return len(m.rows)
}

// Rows returns rows in insertion order.
func (m *Map) Rows() []Row {
	return m.rows
}

// Lineages returns names of every row in insertion order.
func (m *Map) Lineages() [][]string {
	res := make([][]string, len(m.rows))
	for i, v := range m.rows {
		res[i] = v.Names
	}
	return res
}

// IDs returns tip ids in insertion order.
func (m *Map) IDs() []string {
	res := make([]string, len(m.rows))
	for i, v := range m.rows {
		res[i] = v.ID
	}
	return res
}
