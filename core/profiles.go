package core

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/hamidzr/shortcutai/model"
	"github.com/pkg/errors"
)

// MaxProfiles is the most profiles a config may hold; they are picked with
// the number keys 1-9.
const MaxProfiles = 9

var (
	ErrTooManyProfiles = errors.Errorf("maximum %d profiles allowed", MaxProfiles)
	ErrLastProfile     = errors.New("cannot delete the last profile")
	ErrProfileNotFound = errors.New("profile not found")
	ErrBlankName       = errors.New("profile name cannot be blank")
)

// ProfileField is an editable profile attribute.
type ProfileField string

const (
	FieldName   ProfileField = "name"
	FieldPrompt ProfileField = "prompt"
)

// AddProfile appends a profile named "Profile N", N being the first free
// number counting up from len(profiles)+1.
func AddProfile(profiles []model.Profile) ([]model.Profile, model.Profile, error) {
	if len(profiles) >= MaxProfiles {
		return profiles, model.Profile{}, ErrTooManyProfiles
	}
	n := len(profiles) + 1
	name := fmt.Sprintf("Profile %d", n)
	for nameTaken(profiles, name) {
		n++
		name = fmt.Sprintf("Profile %d", n)
	}
	p := model.Profile{ID: uuid.NewString(), Name: name}

	out := make([]model.Profile, 0, len(profiles)+1)
	out = append(out, profiles...)
	return append(out, p), p, nil
}

func nameTaken(profiles []model.Profile, name string) bool {
	for _, p := range profiles {
		if p.Name == name {
			return true
		}
	}
	return false
}

func indexOf(profiles []model.Profile, id string) int {
	for i, p := range profiles {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// RemoveProfile drops every profile with the given id. The last remaining
// profile is never removed.
func RemoveProfile(profiles []model.Profile, id string) ([]model.Profile, error) {
	if indexOf(profiles, id) < 0 {
		return profiles, errors.Wrapf(ErrProfileNotFound, "id %q", id)
	}
	if len(profiles) <= 1 {
		return profiles, ErrLastProfile
	}
	out := make([]model.Profile, 0, len(profiles)-1)
	for _, p := range profiles {
		if p.ID != id {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return profiles, ErrLastProfile
	}
	return out, nil
}

// UpdateProfile sets one field of the profile with the given id.
func UpdateProfile(profiles []model.Profile, id string, field ProfileField, value string) ([]model.Profile, error) {
	i := indexOf(profiles, id)
	if i < 0 {
		return profiles, errors.Wrapf(ErrProfileNotFound, "id %q", id)
	}
	out := make([]model.Profile, len(profiles))
	copy(out, profiles)

	switch field {
	case FieldName:
		if strings.TrimSpace(value) == "" {
			return profiles, ErrBlankName
		}
		out[i].Name = value
	case FieldPrompt:
		out[i].Prompt = value
	default:
		return profiles, errors.Errorf("unknown profile field %q", field)
	}
	return out, nil
}

// ProfileAt returns the n-th profile, counting from 1.
func ProfileAt(profiles []model.Profile, n int) (model.Profile, error) {
	if n < 1 || n > len(profiles) {
		return model.Profile{}, errors.Errorf("no profile at position %d (have %d)", n, len(profiles))
	}
	return profiles[n-1], nil
}

// ProfileTarget names a config document that carries profiles.
type ProfileTarget string

const (
	InputFieldProfiles ProfileTarget = "input-field"
	SelectionProfiles  ProfileTarget = "selection"
)

// Profiles returns the profiles stored in target.
func (a *App) Profiles(target ProfileTarget) ([]model.Profile, error) {
	switch target {
	case InputFieldProfiles:
		cfg, err := a.GetInputFieldConfig()
		return cfg.Profiles, err
	case SelectionProfiles:
		cfg, err := a.GetSelectionConfig()
		return cfg.Profiles, err
	default:
		return nil, errors.Errorf("unknown profile target %q", target)
	}
}

// EditProfiles loads target, applies edit to its profiles and saves the
// whole document back. Nothing is written when edit fails.
func (a *App) EditProfiles(target ProfileTarget, edit func([]model.Profile) ([]model.Profile, error)) ([]model.Profile, error) {
	switch target {
	case InputFieldProfiles:
		cfg, err := a.GetInputFieldConfig()
		if err != nil {
			return nil, err
		}
		if cfg.Profiles, err = edit(cfg.Profiles); err != nil {
			return nil, err
		}
		return cfg.Profiles, a.SaveInputFieldConfig(cfg)
	case SelectionProfiles:
		cfg, err := a.GetSelectionConfig()
		if err != nil {
			return nil, err
		}
		if cfg.Profiles, err = edit(cfg.Profiles); err != nil {
			return nil, err
		}
		return cfg.Profiles, a.SaveSelectionConfig(cfg)
	default:
		return nil, errors.Errorf("unknown profile target %q", target)
	}
}
