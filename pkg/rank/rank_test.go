package rank_test

import (
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnt2t/pkg/rank"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		msg   string
		codes []string
		err   bool
	}{
		{"default", []string{"d", "p", "c", "o", "f", "g", "s"}, false},
		{"two ranks", []string{"k", "s"}, false},
		{"empty", nil, true},
		{"long code", []string{"kingdom"}, true},
		{"duplicate", []string{"g", "g"}, true},
	}

	for _, v := range tests {
		s, err := rank.New(v.codes)
		if v.err {
			gnErr, ok := err.(*gn.Error)
			require.True(t, ok, v.msg)
			assert.ErrorIs(t, gnErr.Err, rank.ErrSchema, v.msg)
			continue
		}
		require.NoError(t, err, v.msg)
		assert.Equal(t, len(v.codes), s.Len(), v.msg)
	}
}

func TestSchema(t *testing.T) {
	s := rank.Default()
	assert.Equal(t, 7, s.Len())
	assert.Equal(t, "g", s.Code(5))
	assert.Equal(t, "g__", s.Placeholder(5))
	assert.Equal(t, "f__Bacillaceae", s.Prefixed(4, "Bacillaceae"))

	i, ok := s.RankOf("s__Bacillus subtilis")
	assert.True(t, ok)
	assert.Equal(t, 6, i)

	_, ok = s.RankOf("x__foo")
	assert.False(t, ok)

	codes := s.Codes()
	codes[0] = "k"
	assert.Equal(t, "d", s.Code(0), "Codes returns a copy")
	assert.Equal(t,
		[]string{"d__", "p__", "c__", "o__", "f__", "g__", "s__"},
		s.Placeholders())
}

func TestNameHelpers(t *testing.T) {
	tests := []struct {
		name        string
		prefix      bool
		placeholder bool
		bare        string
	}{
		{"g__Bacillus", true, false, "Bacillus"},
		{"g__", true, true, ""},
		{"Bacillus", false, false, "Bacillus"},
		{"", false, false, ""},
	}

	for _, v := range tests {
		assert.Equal(t, v.prefix, rank.HasPrefix(v.name), v.name)
		assert.Equal(t, v.placeholder, rank.IsPlaceholder(v.name), v.name)
		assert.Equal(t, v.bare, rank.Bare(v.name), v.name)
	}
}
