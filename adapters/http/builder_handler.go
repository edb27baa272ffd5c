package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/careerforge/api/internal/application/builder"
	profileUC "github.com/careerforge/api/internal/application/usecase/profile"
	"github.com/careerforge/api/internal/domain/profile"
	"github.com/careerforge/api/pkg/apperror"
	"github.com/careerforge/api/pkg/logger"
)

// Section names accepted in the :section route parameter.
const (
	SectionExperience = "experience"
	SectionEducation  = "education"
	SectionProjects   = "projects"
	SectionSkills     = "skills"
)

type BuilderHandler struct {
	sessionProvider
	logger logger.Logger
}

func NewBuilderHandler(uc *profileUC.ProfileUseCase, store *builder.Store, log logger.Logger) *BuilderHandler {
	return &BuilderHandler{
		sessionProvider: sessionProvider{store: store, profileUseCase: uc},
		logger:          log,
	}
}

// sectionAPI erases the editor's type parameter so one set of
// handlers can serve all four repeating sections.
type sectionAPI struct {
	state        func() gin.H
	startCreate  func() (any, error)
	startEdit    func(uuid.UUID) (any, error)
	replaceDraft func([]byte) error
	commit       func() error
	cancel       func()
	remove       func(uuid.UUID)
}

func newSectionAPI[T any](e *builder.Editor[T], merge func(prev T, next *T)) sectionAPI {
	return sectionAPI{
		state: func() gin.H {
			h := gin.H{"items": e.Items(), "editing": e.Editing()}
			if draft, ok := e.Draft(); ok {
				h["draft"] = draft
			}
			return h
		},
		startCreate: func() (any, error) { return e.StartCreate() },
		startEdit:   func(id uuid.UUID) (any, error) { return e.StartEdit(id) },
		replaceDraft: func(data []byte) error {
			var value T
			if err := json.Unmarshal(data, &value); err != nil {
				return apperror.NewInvalidInput("invalid JSON body for draft", err)
			}
			return e.ReplaceDraft(value, merge)
		},
		commit: e.Commit,
		cancel: e.Cancel,
		remove: e.Remove,
	}
}

func sectionFor(sess *builder.Session, name string) (sectionAPI, error) {
	switch name {
	case SectionExperience:
		return newSectionAPI(sess.Experience(), func(prev profile.ExperienceItem, next *profile.ExperienceItem) {
			next.ID = prev.ID
		}), nil
	case SectionEducation:
		return newSectionAPI(sess.Education(), func(prev profile.EducationItem, next *profile.EducationItem) {
			next.ID = prev.ID
		}), nil
	case SectionProjects:
		return newSectionAPI(sess.Projects(), func(prev profile.ProjectItem, next *profile.ProjectItem) {
			next.ID = prev.ID
		}), nil
	case SectionSkills:
		return newSectionAPI(sess.Skills(), func(prev profile.SkillCategory, next *profile.SkillCategory) {
			next.ID = prev.ID
			// The category form edits the name; skills are managed
			// one at a time through the items endpoints.
			if next.Skills == nil {
				next.Skills = prev.Skills
			}
		}), nil
	default:
		return sectionAPI{}, apperror.NewInvalidInput(fmt.Sprintf("unknown section %q", name), nil)
	}
}

func mapBuilderErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, builder.ErrEditInProgress):
		return apperror.NewAppError(apperror.ErrConflict, "Another item is already being edited", "commit or cancel the current draft first", err)
	case errors.Is(err, builder.ErrNoDraft):
		return apperror.NewInvalidInput("no draft is being edited", err)
	case errors.Is(err, builder.ErrItemNotFound):
		return apperror.NewNotFound("item", "requested id")
	default:
		return err
	}
}

func (h *BuilderHandler) section(c *gin.Context) (*builder.Session, sectionAPI, bool) {
	sess, err := h.session(c)
	if err != nil {
		c.Error(err)
		return nil, sectionAPI{}, false
	}
	api, err := sectionFor(sess, c.Param("section"))
	if err != nil {
		c.Error(err)
		return nil, sectionAPI{}, false
	}
	return sess, api, true
}

// GetSection reports the committed items plus any in-flight draft.
func (h *BuilderHandler) GetSection(c *gin.Context) {
	sess, api, ok := h.section(c)
	if !ok {
		return
	}
	var state gin.H
	sess.Do(func() error {
		state = api.state()
		return nil
	})
	c.JSON(http.StatusOK, state)
}

// StartCreate opens a fresh draft with defaults and a new id.
func (h *BuilderHandler) StartCreate(c *gin.Context) {
	sess, api, ok := h.section(c)
	if !ok {
		return
	}
	var draft any
	err := sess.Do(func() error {
		var err error
		draft, err = api.startCreate()
		return err
	})
	if err != nil {
		c.Error(mapBuilderErr(err))
		return
	}
	c.JSON(http.StatusCreated, gin.H{"draft": draft})
}

// StartEdit loads an existing item into the draft.
func (h *BuilderHandler) StartEdit(c *gin.Context) {
	sess, api, ok := h.section(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid item id", err))
		return
	}
	var draft any
	err = sess.Do(func() error {
		var err error
		draft, err = api.startEdit(id)
		return err
	})
	if err != nil {
		c.Error(mapBuilderErr(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

// UpdateDraft replaces the draft with the submitted form values,
// keeping the draft's id.
func (h *BuilderHandler) UpdateDraft(c *gin.Context) {
	sess, api, ok := h.section(c)
	if !ok {
		return
	}
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.Error(apperror.NewInvalidInput("could not read request body", err))
		return
	}
	err = sess.Do(func() error {
		return api.replaceDraft(body)
	})
	if err != nil {
		c.Error(mapBuilderErr(err))
		return
	}
	var state gin.H
	sess.Do(func() error {
		state = api.state()
		return nil
	})
	c.JSON(http.StatusOK, state)
}

// Commit saves the draft into the list: appended when new, replaced
// in place when editing.
func (h *BuilderHandler) Commit(c *gin.Context) {
	sess, api, ok := h.section(c)
	if !ok {
		return
	}
	err := sess.Do(func() error {
		return api.commit()
	})
	if err != nil {
		c.Error(mapBuilderErr(err))
		return
	}
	var state gin.H
	sess.Do(func() error {
		state = api.state()
		return nil
	})
	c.JSON(http.StatusOK, state)
}

// Cancel discards the draft without touching the list.
func (h *BuilderHandler) Cancel(c *gin.Context) {
	sess, api, ok := h.section(c)
	if !ok {
		return
	}
	sess.Do(func() error {
		api.cancel()
		return nil
	})
	c.Status(http.StatusNoContent)
}

// Remove deletes an item immediately, no confirmation.
func (h *BuilderHandler) Remove(c *gin.Context) {
	sess, api, ok := h.section(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid item id", err))
		return
	}
	if c.Param("section") == SectionSkills {
		// Also clears the active-category selection when it pointed at
		// the removed category. Takes the session lock itself.
		sess.RemoveSkillCategory(id)
	} else {
		sess.Do(func() error {
			api.remove(id)
			return nil
		})
	}
	c.Status(http.StatusNoContent)
}

// AddTechnology appends one technology to the project draft.
func (h *BuilderHandler) AddTechnology(c *gin.Context) {
	sess, err := h.session(c)
	if err != nil {
		c.Error(err)
		return
	}
	var req ValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for technology", err))
		return
	}
	if err := sess.AddTechnology(req.Value); err != nil {
		c.Error(mapBuilderErr(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *BuilderHandler) RemoveTechnology(c *gin.Context) {
	sess, err := h.session(c)
	if err != nil {
		c.Error(err)
		return
	}
	var req ValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for technology", err))
		return
	}
	if err := sess.RemoveTechnology(req.Value); err != nil {
		c.Error(mapBuilderErr(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// skillsOnly rejects the skill-item routes for every other section.
// They share the /builder/:section prefix so the router never has a
// static sibling competing with the :section parameter.
func skillsOnly(c *gin.Context) bool {
	if c.Param("section") == SectionSkills {
		return true
	}
	c.Error(apperror.NewInvalidInput(fmt.Sprintf("section %q has no skill items", c.Param("section")), nil))
	return false
}

// SelectCategory marks the target category for skill adds/removes.
func (h *BuilderHandler) SelectCategory(c *gin.Context) {
	if !skillsOnly(c) {
		return
	}
	sess, err := h.session(c)
	if err != nil {
		c.Error(err)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid category id", err))
		return
	}
	if err := sess.SelectCategory(id); err != nil {
		c.Error(mapBuilderErr(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// AddSkill writes a skill into the selected category immediately.
func (h *BuilderHandler) AddSkill(c *gin.Context) {
	if !skillsOnly(c) {
		return
	}
	sess, err := h.session(c)
	if err != nil {
		c.Error(err)
		return
	}
	var req ValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for skill", err))
		return
	}
	if err := sess.AddSkill(req.Value); err != nil {
		c.Error(mapBuilderErr(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *BuilderHandler) RemoveSkill(c *gin.Context) {
	if !skillsOnly(c) {
		return
	}
	sess, err := h.session(c)
	if err != nil {
		c.Error(err)
		return
	}
	var req ValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for skill", err))
		return
	}
	if err := sess.RemoveSkill(req.Value); err != nil {
		c.Error(mapBuilderErr(err))
		return
	}
	c.Status(http.StatusNoContent)
}
