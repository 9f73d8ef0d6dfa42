package core

import (
	"testing"

	"github.com/hamidzr/shortcutai/model"
	"github.com/stretchr/testify/assert"
)

func profilesNamed(names ...string) []model.Profile {
	profiles := make([]model.Profile, len(names))
	for i, name := range names {
		profiles[i] = model.Profile{ID: name, Name: name}
	}
	return profiles
}

func profileNames(profiles []model.Profile) []string {
	names := make([]string, len(profiles))
	for i, p := range profiles {
		names[i] = p.Name
	}
	return names
}

func TestIsDirectMatch(t *testing.T) {
	assert.True(t, IsDirectMatch("Fix grammar", "fix"))
	assert.True(t, IsDirectMatch("Fix grammar", "Fix"))
	assert.False(t, IsDirectMatch("fix grammar", "Fix"))
	assert.False(t, IsDirectMatch("Summarize", "trans"))
}

func TestFindProfiles(t *testing.T) {
	profiles := profilesNamed("Translate", "Fix grammar", "Summarize", "Profile 1", "Profile 2")

	testCases := []struct {
		name     string
		query    string
		expected []string
	}{
		{name: "empty query", query: "", expected: profileNames(profiles)},
		{name: "blank query", query: "  ", expected: profileNames(profiles)},
		{name: "direct", query: "gram", expected: []string{"Fix grammar"}},
		{name: "direct keeps order", query: "profile", expected: []string{"Profile 1", "Profile 2"}},
		{name: "fuzzy", query: "trns", expected: []string{"Translate"}},
		{name: "no match", query: "xyz", expected: []string{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, profileNames(FindProfiles(profiles, tc.query)))
		})
	}
}

func TestGreet(t *testing.T) {
	assert.Equal(t, "Hello, World! You've been greeted from Go!", Greet("World"))
	assert.Equal(t, "Hello, ! You've been greeted from Go!", Greet(""))
}
