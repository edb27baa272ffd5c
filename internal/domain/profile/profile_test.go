package profile

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetContactField_MergesWithoutDroppingKeys(t *testing.T) {
	p := Empty(uuid.New())

	p.SetContactField(ContactEmail, "dev@example.com")
	p.SetContactField(ContactPhone, "+1 555 0100")
	p.SetContactField(ContactLocation, "Berlin, Germany")
	p.SetContactField(ContactEmail, "new@example.com")

	assert.Equal(t, "new@example.com", p.ContactInfo[ContactEmail])
	assert.Equal(t, "+1 555 0100", p.ContactInfo[ContactPhone])
	assert.Equal(t, "Berlin, Germany", p.ContactInfo[ContactLocation])
	assert.Len(t, p.ContactInfo, 3)
}

func TestSetContactField_PreservesUnknownKeys(t *testing.T) {
	p := Empty(uuid.New())
	p.ContactInfo["pager"] = "555-0199"

	p.SetContactField(ContactEmail, "dev@example.com")

	assert.Equal(t, "555-0199", p.ContactInfo["pager"])
}

func TestSetSocialField_Merges(t *testing.T) {
	p := Empty(uuid.New())

	p.SetSocialField(SocialGitHub, "https://github.com/dev")
	p.SetSocialField(SocialLinkedIn, "https://linkedin.com/in/dev")

	assert.Equal(t, "https://github.com/dev", p.SocialLinks[SocialGitHub])
	assert.Equal(t, "https://linkedin.com/in/dev", p.SocialLinks[SocialLinkedIn])
}

func TestSet_KnownFields(t *testing.T) {
	p := Empty(uuid.New())

	require.NoError(t, p.Set(FieldHeadline, "Backend Engineer"))
	require.NoError(t, p.Set(FieldSummary, "Ten years of Go."))

	exp := []ExperienceItem{{ID: uuid.New(), Company: "Acme"}}
	require.NoError(t, p.Set(FieldExperience, exp))

	assert.Equal(t, "Backend Engineer", p.Headline)
	assert.Equal(t, "Ten years of Go.", p.Summary)
	assert.Equal(t, exp, p.Experience)
}

func TestSet_UnknownFieldOrWrongType(t *testing.T) {
	p := Empty(uuid.New())

	assert.ErrorIs(t, p.Set("nonsense", "x"), ErrUnknownField)
	assert.ErrorIs(t, p.Set(FieldHeadline, 42), ErrUnknownField)
	assert.ErrorIs(t, p.Set(FieldExperience, "not a list"), ErrUnknownField)
}

func TestClone_IsDeep(t *testing.T) {
	p := Empty(uuid.New())
	p.Headline = "Original"
	p.ContactInfo[ContactEmail] = "a@example.com"
	p.Projects = []ProjectItem{{ID: uuid.New(), Title: "CLI", Technologies: []string{"Go"}}}
	p.Skills = []SkillCategory{{ID: uuid.New(), Name: "Languages", Skills: []string{"Go"}}}

	c := p.Clone()
	c.Headline = "Changed"
	c.ContactInfo[ContactEmail] = "b@example.com"
	c.Projects[0].Technologies = append(c.Projects[0].Technologies, "Rust")
	c.Skills[0].Skills[0] = "Zig"

	assert.Equal(t, "Original", p.Headline)
	assert.Equal(t, "a@example.com", p.ContactInfo[ContactEmail])
	assert.Equal(t, []string{"Go"}, p.Projects[0].Technologies)
	assert.Equal(t, []string{"Go"}, p.Skills[0].Skills)
}

func TestNormalize_ReplacesNilCollections(t *testing.T) {
	p := &Profile{OwnerID: uuid.New()}
	p.Normalize()

	assert.NotNil(t, p.ContactInfo)
	assert.NotNil(t, p.SocialLinks)
	assert.NotNil(t, p.Experience)
	assert.NotNil(t, p.Education)
	assert.NotNil(t, p.Projects)
	assert.NotNil(t, p.Skills)
}

func TestHasResumeData(t *testing.T) {
	p := Empty(uuid.New())
	assert.False(t, p.HasResumeData())

	p.Experience = []ExperienceItem{{ID: uuid.New()}}
	assert.False(t, p.HasResumeData())

	p.Education = []EducationItem{{ID: uuid.New()}}
	assert.True(t, p.HasResumeData())
}
