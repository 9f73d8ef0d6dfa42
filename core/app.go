package core

import (
	"github.com/hamidzr/shortcutai/model"
	"github.com/hamidzr/shortcutai/store"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// App implements the command surface on top of a FileStore. Every call goes
// to disk; nothing is cached between calls.
type App struct {
	store      *store.FileStore
	settings   store.Document[model.SettingsConfig, *model.SettingsConfig]
	inputField store.Document[model.InputFieldConfig, *model.InputFieldConfig]
	selection  store.Document[model.SelectionConfig, *model.SelectionConfig]
}

func NewApp(fs *store.FileStore) *App {
	return &App{
		store:      fs,
		settings:   store.NewDocument[model.SettingsConfig](fs, model.SettingsFile),
		inputField: store.NewDocument[model.InputFieldConfig](fs, model.InputFieldFile),
		selection:  store.NewDocument[model.SelectionConfig](fs, model.SelectionFile),
	}
}

func (a *App) Store() *store.FileStore {
	return a.store
}

func (a *App) Greet(name string) string {
	return Greet(name)
}

func (a *App) GetConfig() (model.SettingsConfig, error) {
	return a.settings.Load()
}

func (a *App) SaveConfig(cfg model.SettingsConfig) error {
	logrus.WithFields(logrus.Fields{
		"autoStart": cfg.AutoStart,
		"apiKey":    cfg.APIKey,
	}).Debug("saving settings")
	return a.settings.Save(cfg)
}

func (a *App) GetInputFieldConfig() (model.InputFieldConfig, error) {
	return a.inputField.Load()
}

func (a *App) SaveInputFieldConfig(cfg model.InputFieldConfig) error {
	return a.inputField.Save(cfg)
}

func (a *App) GetSelectionConfig() (model.SelectionConfig, error) {
	return a.selection.Load()
}

func (a *App) SaveSelectionConfig(cfg model.SelectionConfig) error {
	return a.selection.Save(cfg)
}

// Export is a snapshot of every persisted document.
type Export struct {
	Settings   model.SettingsConfig   `json:"settings" yaml:"settings"`
	InputField model.InputFieldConfig `json:"inputField" yaml:"inputField"`
	Selection  model.SelectionConfig  `json:"selection" yaml:"selection"`
}

// Export loads all documents. The loads run concurrently; they only read.
func (a *App) Export() (Export, error) {
	var (
		out Export
		g   errgroup.Group
	)
	g.Go(func() (err error) {
		out.Settings, err = a.GetConfig()
		return err
	})
	g.Go(func() (err error) {
		out.InputField, err = a.GetInputFieldConfig()
		return err
	})
	g.Go(func() (err error) {
		out.Selection, err = a.GetSelectionConfig()
		return err
	})
	if err := g.Wait(); err != nil {
		return Export{}, err
	}
	return out, nil
}
