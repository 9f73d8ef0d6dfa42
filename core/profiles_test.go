package core

import (
	"fmt"
	"testing"

	"github.com/hamidzr/shortcutai/model"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeProfiles(n int) []model.Profile {
	profiles := make([]model.Profile, n)
	for i := range profiles {
		profiles[i] = model.Profile{ID: fmt.Sprint(i + 1), Name: fmt.Sprintf("Profile %d", i+1)}
	}
	return profiles
}

func TestAddProfile(t *testing.T) {
	profiles, added, err := AddProfile(nil)
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, "Profile 1", added.Name)
	assert.NotEmpty(t, added.ID)
	assert.Empty(t, added.Prompt)
	assert.Equal(t, added, profiles[0])

	profiles, second, err := AddProfile(profiles)
	require.NoError(t, err)
	assert.Equal(t, "Profile 2", second.Name)
	assert.NotEqual(t, added.ID, second.ID)
}

func TestAddProfileSkipsTakenNames(t *testing.T) {
	existing := []model.Profile{
		{ID: "a", Name: "Profile 2"},
		{ID: "b", Name: "Profile 3"},
	}
	out, added, err := AddProfile(existing)
	require.NoError(t, err)
	assert.Equal(t, "Profile 4", added.Name)
	assert.Len(t, out, 3)
	assert.Len(t, existing, 2, "input must not be modified")
}

func TestAddProfileLimit(t *testing.T) {
	full := makeProfiles(MaxProfiles)
	out, _, err := AddProfile(full)
	assert.ErrorIs(t, err, ErrTooManyProfiles)
	assert.Equal(t, full, out)
}

func TestRemoveProfile(t *testing.T) {
	profiles := makeProfiles(3)

	out, err := RemoveProfile(profiles, "2")
	require.NoError(t, err)
	assert.Equal(t, []model.Profile{profiles[0], profiles[2]}, out)

	_, err = RemoveProfile(profiles, "missing")
	assert.True(t, errors.Is(err, ErrProfileNotFound))

	_, err = RemoveProfile(profiles[:1], "1")
	assert.ErrorIs(t, err, ErrLastProfile)
}

func TestRemoveProfileDuplicateIDs(t *testing.T) {
	profiles := []model.Profile{{ID: "x", Name: "a"}, {ID: "x", Name: "b"}}
	out, err := RemoveProfile(profiles, "x")
	assert.ErrorIs(t, err, ErrLastProfile)
	assert.Equal(t, profiles, out)
}

func TestUpdateProfile(t *testing.T) {
	profiles := makeProfiles(2)

	out, err := UpdateProfile(profiles, "2", FieldPrompt, "Rewrite politely")
	require.NoError(t, err)
	assert.Equal(t, "Rewrite politely", out[1].Prompt)
	assert.Empty(t, profiles[1].Prompt, "input must not be modified")

	out, err = UpdateProfile(out, "1", FieldName, "Grammar")
	require.NoError(t, err)
	assert.Equal(t, "Grammar", out[0].Name)

	_, err = UpdateProfile(out, "1", FieldName, "   ")
	assert.ErrorIs(t, err, ErrBlankName)

	_, err = UpdateProfile(out, "1", ProfileField("id"), "9")
	assert.Error(t, err)

	_, err = UpdateProfile(out, "nope", FieldPrompt, "x")
	assert.True(t, errors.Is(err, ErrProfileNotFound))
}

func TestProfileAt(t *testing.T) {
	profiles := makeProfiles(3)

	p, err := ProfileAt(profiles, 1)
	require.NoError(t, err)
	assert.Equal(t, "1", p.ID)

	p, err = ProfileAt(profiles, 3)
	require.NoError(t, err)
	assert.Equal(t, "3", p.ID)

	_, err = ProfileAt(profiles, 0)
	assert.Error(t, err)
	_, err = ProfileAt(profiles, 4)
	assert.Error(t, err)
}
