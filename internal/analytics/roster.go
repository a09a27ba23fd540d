package analytics

import (
	"strings"

	"github.com/andrevictorbritodeandrade-alt/abfit/internal/domain"
)

// MergeRoster returns every dynamic athlete in source order followed by the
// fallback athletes that match none of them. A fallback record matches when
// its id equals a dynamic id, or when both records carry a contact address
// and the addresses are equal ignoring case.
func MergeRoster(dynamic, fallback []domain.Athlete) []domain.Athlete {
	merged := make([]domain.Athlete, 0, len(dynamic)+len(fallback))
	merged = append(merged, dynamic...)

	ids := make(map[string]struct{}, len(dynamic))
	emails := make(map[string]struct{}, len(dynamic))
	for _, a := range dynamic {
		ids[a.ID] = struct{}{}
		if email := normalizeEmail(a.Email); email != "" {
			emails[email] = struct{}{}
		}
	}

	for _, f := range fallback {
		if _, ok := ids[f.ID]; ok {
			continue
		}
		if email := normalizeEmail(f.Email); email != "" {
			if _, ok := emails[email]; ok {
				continue
			}
		}
		merged = append(merged, f)
	}

	return merged
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
