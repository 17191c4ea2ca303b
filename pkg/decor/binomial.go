package decor

import (
	"regexp"
	"strings"

	"github.com/gnames/gnt2t/pkg/phylo"
)

const (
	genusPrefix   = "g__"
	speciesPrefix = "s__"
)

var (
	polyPrefixedRe = regexp.MustCompile(`^([a-z]__.+)_[A-Z]+$`)
	polyGenusRe    = regexp.MustCompile(`^g__(.+_[A-Z]+)$`)
)

// NormalizeSpeciesBinomial makes the genus part of a species name agree
// with a polyphyletic genus label, so 'g__Bacillus_A' and
// 's__Bacillus subtilis' give 's__Bacillus_A subtilis'. Species that do
// not belong to the genus stay unchanged. Two different polyphyletic
// tags of the same genus are a conflict.
func NormalizeSpeciesBinomial(genus, species string) (string, error) {
	genusOfSpecies, epithet, ok := strings.Cut(species, " ")
	if !ok || genusOfSpecies == genus {
		return species, nil
	}

	genusMatch := polyPrefixedRe.FindStringSubmatch(genus)
	speciesMatch := polyPrefixedRe.FindStringSubmatch(genusOfSpecies)

	if genusMatch == nil {
		return species, nil
	}

	if speciesMatch != nil {
		if bareName(genus) == bareName(genusOfSpecies) {
			return species, nil
		}
		if bareName(genusMatch[1]) != bareName(speciesMatch[1]) {
			return "", BinomialConflictError(genus, species)
		}
	}

	genusWithTag := polyGenusRe.FindStringSubmatch(genus)
	if genusWithTag == nil {
		return species, nil
	}
	if !strings.Contains(bareName(genusOfSpecies), bareName(genusMatch[1])) {
		return species, nil
	}
	return speciesPrefix + genusWithTag[1] + " " + epithet, nil
}

// bareName removes everything up to the first rank separator.
func bareName(s string) string {
	if _, after, ok := strings.Cut(s, "__"); ok {
		return after
	}
	return s
}

// CorrectSpeciesBinomials applies NormalizeSpeciesBinomial to the species
// name of every node, using the genus name of the nearest ancestor that
// has one.
func CorrectSpeciesBinomials(root *phylo.Node) error {
	for _, v := range root.PostOrder() {
		if v.IsRoot() || !strings.Contains(v.Name, speciesPrefix) {
			continue
		}
		names := strings.Split(v.Name, NameSep)
		last := len(names) - 1
		if !strings.HasPrefix(names[last], speciesPrefix) {
			return BinomialConflictError(genusAncestor(v), v.Name)
		}

		genus := genusAncestor(v)
		if genus == "" {
			continue
		}
		corrected, err := NormalizeSpeciesBinomial(genus, names[last])
		if err != nil {
			return err
		}
		names[last] = corrected
		v.Name = strings.Join(names, NameSep)
	}
	return nil
}

func genusAncestor(n *phylo.Node) string {
	for _, v := range n.Ancestors() {
		if !strings.Contains(v.Name, genusPrefix) {
			continue
		}
		for _, name := range strings.Split(v.Name, NameSep) {
			if strings.HasPrefix(name, genusPrefix) {
				return name
			}
		}
	}
	return ""
}
