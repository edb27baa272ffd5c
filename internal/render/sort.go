package render

import (
	"sort"

	"github.com/careerforge/api/internal/domain/profile"
)

// Display order for experience and education: ongoing entries first,
// then most recent start date. Start dates are compared as raw
// strings (ISO-style dates sort correctly this way; anything else
// sorts however it sorts), matching the stored format instead of
// parsing. Stable, so ties keep their stored order.

func sortedExperience(items []profile.ExperienceItem) []profile.ExperienceItem {
	out := append([]profile.ExperienceItem(nil), items...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Current != out[j].Current {
			return out[i].Current
		}
		return out[i].StartDate > out[j].StartDate
	})
	return out
}

func sortedEducation(items []profile.EducationItem) []profile.EducationItem {
	out := append([]profile.EducationItem(nil), items...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Current != out[j].Current {
			return out[i].Current
		}
		return out[i].StartDate > out[j].StartDate
	})
	return out
}
