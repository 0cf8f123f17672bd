package entity

import (
	"sort"
	"strings"
)

// Search finds filers whose Japanese or English name contains the
// query, best matches first: exact name, then prefix, then by how
// early the query appears; listed companies rank above unlisted, and
// shorter names break ties.
func (r *Registry) Search(query string, limit int) []Entity {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" || limit <= 0 {
		return nil
	}

	type match struct {
		score   int
		nameLen int
		code    string
	}
	var matches []match

	for code, e := range r.entities {
		jp := strings.ToLower(e.NameJP)
		en := strings.ToLower(e.NameEN)
		if !strings.Contains(jp, query) && !strings.Contains(en, query) {
			continue
		}

		score := 1000
		switch {
		case en == query || jp == query:
			score = 0
		case strings.HasPrefix(en, query) || strings.HasPrefix(jp, query):
			score = 100
		default:
			pos := len(e.NameEN) + len(e.NameJP)
			if i := strings.Index(en, query); i >= 0 && i < pos {
				pos = i
			}
			if i := strings.Index(jp, query); i >= 0 && i < pos {
				pos = i
			}
			score = 200 + pos
		}
		if !e.IsListed {
			score += 500
		}

		nameLen := len(e.NameEN)
		if nameLen == 0 {
			nameLen = len(e.NameJP)
		}
		matches = append(matches, match{score, nameLen, code})
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].score != matches[j].score {
			return matches[i].score < matches[j].score
		}
		if matches[i].nameLen != matches[j].nameLen {
			return matches[i].nameLen < matches[j].nameLen
		}
		return matches[i].code < matches[j].code
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}
	out := make([]Entity, 0, len(matches))
	for _, m := range matches {
		out = append(out, r.entities[m.code])
	}
	return out
}
