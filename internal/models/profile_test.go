package models_test

import (
	"testing"

	"github.com/devconnect/backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileAddExperiencePrepends(t *testing.T) {
	var p models.Profile

	first := models.Experience{ID: uuid.New(), Title: "Junior Dev", Company: "Acme", From: "2018-01-01"}
	second := models.Experience{ID: uuid.New(), Title: "Senior Dev", Company: "Globex", From: "2021-06-01"}
	third := models.Experience{ID: uuid.New(), Title: "Staff Dev", Company: "Initech", From: "2024-03-01"}

	p.AddExperience(first)
	p.AddExperience(second)
	p.AddExperience(third)

	require.Len(t, p.Experience, 3)
	// Newest insertion always lands at index 0.
	assert.Equal(t, third.ID, p.Experience[0].ID)
	assert.Equal(t, second.ID, p.Experience[1].ID)
	assert.Equal(t, first.ID, p.Experience[2].ID)
}

func TestProfileRemoveExperience(t *testing.T) {
	var p models.Profile

	keep := models.Experience{ID: uuid.New(), Title: "Keep Me", Company: "Acme", From: "2018-01-01"}
	target := models.Experience{ID: uuid.New(), Title: "Remove Me", Company: "Globex", From: "2020-01-01"}
	alsoKeep := models.Experience{ID: uuid.New(), Title: "Also Keep", Company: "Initech", From: "2022-01-01"}

	p.AddExperience(keep)
	p.AddExperience(target)
	p.AddExperience(alsoKeep)

	removed := p.RemoveExperience(target.ID)

	require.True(t, removed)
	require.Len(t, p.Experience, 2)
	assert.Equal(t, alsoKeep.ID, p.Experience[0].ID)
	assert.Equal(t, keep.ID, p.Experience[1].ID)
}

func TestProfileRemoveExperienceUnknownIDLeavesEntriesIntact(t *testing.T) {
	var p models.Profile

	a := models.Experience{ID: uuid.New(), Title: "A", Company: "Acme", From: "2018-01-01"}
	b := models.Experience{ID: uuid.New(), Title: "B", Company: "Globex", From: "2020-01-01"}
	p.AddExperience(a)
	p.AddExperience(b)

	removed := p.RemoveExperience(uuid.New())

	assert.False(t, removed)
	require.Len(t, p.Experience, 2)
	assert.Equal(t, b.ID, p.Experience[0].ID)
	assert.Equal(t, a.ID, p.Experience[1].ID)
}

func TestProfileEducationMirrorsExperience(t *testing.T) {
	var p models.Profile

	older := models.Education{ID: uuid.New(), School: "State U", Degree: "BSc", FieldOfStudy: "CS", From: "2012-09-01"}
	newer := models.Education{ID: uuid.New(), School: "Tech Institute", Degree: "MSc", FieldOfStudy: "SE", From: "2016-09-01"}

	p.AddEducation(older)
	p.AddEducation(newer)

	require.Len(t, p.Education, 2)
	assert.Equal(t, newer.ID, p.Education[0].ID)

	assert.False(t, p.RemoveEducation(uuid.New()))
	require.Len(t, p.Education, 2)

	assert.True(t, p.RemoveEducation(newer.ID))
	require.Len(t, p.Education, 1)
	assert.Equal(t, older.ID, p.Education[0].ID)
}

func TestPostLikedBy(t *testing.T) {
	liker := uuid.New()
	post := models.Post{Likes: []models.Like{{UserID: liker}}}

	assert.True(t, post.LikedBy(liker))
	assert.False(t, post.LikedBy(uuid.New()))
}
