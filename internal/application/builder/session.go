package builder

import (
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/careerforge/api/internal/domain/profile"
)

// Session is one user's builder state: the working profile copy plus
// the four section editors. Editor commits write back into the
// profile through Profile.Set; nothing is persisted until the caller
// saves the snapshot. A mutex serializes HTTP access; within the
// lock every operation is a synchronous in-memory transform.
type Session struct {
	mu      sync.Mutex
	ownerID uuid.UUID
	profile *profile.Profile

	experience *Editor[profile.ExperienceItem]
	education  *Editor[profile.EducationItem]
	projects   *Editor[profile.ProjectItem]
	skills     *Editor[profile.SkillCategory]

	// Selected skill category; separate state from the edit draft.
	activeCategory uuid.UUID
}

func NewSession(p *profile.Profile) *Session {
	p = p.Clone()
	p.Normalize()
	s := &Session{ownerID: p.OwnerID, profile: p}

	s.experience = NewEditor(Schema[profile.ExperienceItem]{
		NewDraft: func() profile.ExperienceItem {
			return profile.ExperienceItem{ID: uuid.New()}
		},
		ID: func(item profile.ExperienceItem) uuid.UUID { return item.ID },
	}, p.Experience, func(items []profile.ExperienceItem) {
		s.profile.Set(profile.FieldExperience, items)
	})

	s.education = NewEditor(Schema[profile.EducationItem]{
		NewDraft: func() profile.EducationItem {
			return profile.EducationItem{ID: uuid.New()}
		},
		ID: func(item profile.EducationItem) uuid.UUID { return item.ID },
	}, p.Education, func(items []profile.EducationItem) {
		s.profile.Set(profile.FieldEducation, items)
	})

	s.projects = NewEditor(Schema[profile.ProjectItem]{
		NewDraft: func() profile.ProjectItem {
			return profile.ProjectItem{ID: uuid.New(), Technologies: []string{}}
		},
		ID: func(item profile.ProjectItem) uuid.UUID { return item.ID },
	}, p.Projects, func(items []profile.ProjectItem) {
		s.profile.Set(profile.FieldProjects, items)
	})

	s.skills = NewEditor(Schema[profile.SkillCategory]{
		NewDraft: func() profile.SkillCategory {
			return profile.SkillCategory{ID: uuid.New(), Skills: []string{}}
		},
		ID: func(cat profile.SkillCategory) uuid.UUID { return cat.ID },
	}, p.Skills, func(items []profile.SkillCategory) {
		s.profile.Set(profile.FieldSkills, items)
	})

	return s
}

func (s *Session) OwnerID() uuid.UUID {
	return s.ownerID
}

// Snapshot returns a deep copy of the working profile, safe to
// render or persist while editing continues.
func (s *Session) Snapshot() *profile.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile.Clone()
}

// Reload replaces the working copy after a fresh load, dropping all
// drafts.
func (s *Session) Reload(p *profile.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p = p.Clone()
	p.Normalize()
	s.profile = p
	s.experience.Load(p.Experience)
	s.education.Load(p.Education)
	s.projects.Load(p.Projects)
	s.skills.Load(p.Skills)
	s.activeCategory = uuid.Nil
}

// Experience returns the experience editor. Callers must hold no
// assumptions about concurrent use; Session methods that wrap editor
// calls take the lock.
func (s *Session) Experience() *Editor[profile.ExperienceItem] { return s.experience }
func (s *Session) Education() *Editor[profile.EducationItem]   { return s.education }
func (s *Session) Projects() *Editor[profile.ProjectItem]      { return s.projects }
func (s *Session) Skills() *Editor[profile.SkillCategory]      { return s.skills }

// Do runs fn with the session lock held. HTTP handlers use this to
// make one editor operation atomic with respect to other requests.
func (s *Session) Do(fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn()
}

// SetField overwrites one scalar basic-info field.
func (s *Session) SetField(name, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch name {
	case profile.FieldHeadline, profile.FieldSummary:
		return s.profile.Set(name, value)
	default:
		return profile.ErrUnknownField
	}
}

// SetContactField merges one contact_info key into the working copy.
func (s *Session) SetContactField(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile.SetContactField(key, value)
}

// SetSocialField merges one social_links key.
func (s *Session) SetSocialField(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile.SetSocialField(key, value)
}

// AddTechnology appends a technology to the in-flight project draft.
// Blank input is ignored; duplicates are allowed.
func (s *Session) AddTechnology(tech string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	tech = strings.TrimSpace(tech)
	if tech == "" {
		return nil
	}
	return s.projects.UpdateDraft(func(p *profile.ProjectItem) {
		p.Technologies = append(p.Technologies, tech)
	})
}

// RemoveTechnology drops every occurrence of tech from the draft.
func (s *Session) RemoveTechnology(tech string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.projects.UpdateDraft(func(p *profile.ProjectItem) {
		kept := p.Technologies[:0:0]
		for _, t := range p.Technologies {
			if t != tech {
				kept = append(kept, t)
			}
		}
		p.Technologies = kept
	})
}

// SelectCategory marks a skill category as the active target for
// AddSkill/RemoveSkill.
func (s *Session) SelectCategory(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, cat := range s.skills.Items() {
		if cat.ID == id {
			s.activeCategory = id
			return nil
		}
	}
	return ErrItemNotFound
}

func (s *Session) ActiveCategory() (uuid.UUID, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeCategory, s.activeCategory != uuid.Nil
}

// AddSkill appends a skill to the active category and writes the
// updated category list through to the profile immediately.
func (s *Session) AddSkill(skill string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	skill = strings.TrimSpace(skill)
	if skill == "" {
		return nil
	}
	return s.mutateActiveCategory(func(cat *profile.SkillCategory) {
		cat.Skills = append(cat.Skills, skill)
	})
}

// RemoveSkill removes every occurrence of skill from the active
// category.
func (s *Session) RemoveSkill(skill string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mutateActiveCategory(func(cat *profile.SkillCategory) {
		kept := cat.Skills[:0:0]
		for _, existing := range cat.Skills {
			if existing != skill {
				kept = append(kept, existing)
			}
		}
		cat.Skills = kept
	})
}

// mutateActiveCategory edits the committed category in place and
// reapplies the list. Caller holds the lock.
func (s *Session) mutateActiveCategory(mutate func(*profile.SkillCategory)) error {
	if s.activeCategory == uuid.Nil {
		return ErrItemNotFound
	}
	items := s.skills.Items()
	for i := range items {
		if items[i].ID == s.activeCategory {
			mutate(&items[i])
			s.skills.items = items
			s.profile.Set(profile.FieldSkills, items)
			// A draft opened on this category snapshotted its skill
			// list at StartEdit; refresh it so committing the draft
			// does not roll this change back.
			if d := s.skills.draft; d != nil && d.ID == s.activeCategory {
				d.Skills = append([]string(nil), items[i].Skills...)
			}
			return nil
		}
	}
	return ErrItemNotFound
}

// RemoveSkillCategory removes a category and clears the selection if
// it pointed at the removed one.
func (s *Session) RemoveSkillCategory(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.skills.Remove(id)
	if s.activeCategory == id {
		s.activeCategory = uuid.Nil
	}
}
