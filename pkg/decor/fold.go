package decor

import (
	"math"
	"strings"

	"github.com/gnames/gnt2t/pkg/phylo"
	"github.com/gnames/gnt2t/pkg/rank"
)

// ScoreFunc combines precision and recall of a name placement.
type ScoreFunc func(precision, recall float64) float64

// F1 is the harmonic mean of precision and recall.
func F1(precision, recall float64) float64 {
	return fBeta(1, precision, recall)
}

// F05 weights precision higher than recall.
func F05(precision, recall float64) float64 {
	return fBeta(0.5, precision, recall)
}

// F2 weights recall higher than precision.
func F2(precision, recall float64) float64 {
	return fBeta(2, precision, recall)
}

func fBeta(beta, precision, recall float64) float64 {
	b2 := beta * beta
	denom := b2*precision + recall
	if denom == 0 {
		return 0
	}
	return (1 + b2) * precision * recall / denom
}

// ScoreByName returns a ScoreFunc for 'f1', 'f0.5' or 'f2'.
func ScoreByName(name string) (ScoreFunc, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "f1":
		return F1, nil
	case "f0.5":
		return F05, nil
	case "f2":
		return F2, nil
	default:
		return nil, UnknownScoreError(name)
	}
}

type claimKey struct {
	rank int
	name string
}

type claim struct {
	node  *phylo.Node
	score float64
}

// Fold leaves every (rank, name) pair on exactly one node. The node with
// the highest score keeps the name, ties go to the node with fewer tips
// and then to the node found first in pre-order. Scores are stored in
// RankNameScores, tips get NaN scores only.
func Fold(s *rank.Schema, root *phylo.Node, score ScoreFunc) {
	n := s.Len()
	claims := make(map[claimKey][]claim)

	for _, v := range root.PreOrder() {
		v.RankNameScores = make([]float64, n)
		for r := range v.RankNameScores {
			v.RankNameScores[r] = math.NaN()
		}
		for r, name := range v.RankNames {
			if name == "" {
				continue
			}
			sc := score(v.Precision[r][name], v.Coverage[r][name])
			v.RankNameScores[r] = sc
			k := claimKey{rank: r, name: name}
			claims[k] = append(claims[k], claim{node: v, score: sc})
		}
	}

	for k, cc := range claims {
		best := cc[0]
		for _, c := range cc[1:] {
			if betterClaim(c, best) {
				best = c
			}
		}
		for _, c := range cc {
			if c.node != best.node {
				c.node.RankNames[k.rank] = ""
			}
		}
	}
}

func betterClaim(a, b claim) bool {
	if a.score != b.score {
		return a.score > b.score
	}
	aTips := a.node.TipStop - a.node.TipStart
	bTips := b.node.TipStop - b.node.TipStart
	if aTips != bTips {
		return aTips < bTips
	}
	return a.node.ID < b.node.ID
}

// ScoreTree returns the mean score of placed names weighted by the
// number of informative tips under their nodes.
func ScoreTree(root *phylo.Node) float64 {
	var total, count float64
	for _, v := range root.NonTips() {
		for r, name := range v.RankNames {
			if name == "" || r >= len(v.RankNameScores) {
				continue
			}
			sc := v.RankNameScores[r]
			if math.IsNaN(sc) {
				continue
			}
			total += sc * float64(v.NumTips)
			count += float64(v.NumTips)
		}
	}
	if count == 0 {
		return 0
	}
	return total / count
}

// SetPreliminaryNames makes the deepest placed name the display name of
// every internal node and records its rank. Previous labels are lost.
func SetPreliminaryNames(root *phylo.Node) {
	for _, v := range root.NonTips() {
		v.Name = ""
		v.Rank = -1
		for r := len(v.RankNames) - 1; r >= 0; r-- {
			if v.RankNames[r] != "" {
				v.Name = v.RankNames[r]
				v.Rank = r
				break
			}
		}
	}
}
