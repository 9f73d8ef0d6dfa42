package core

import (
	"bytes"
	"encoding/json"
	"sort"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/maps"
)

// Command names understood by the UI bridge.
const (
	CmdGreet                = "greet"
	CmdGetConfig            = "get_config"
	CmdSaveConfig           = "save_config"
	CmdGetInputFieldConfig  = "get_input_field_config"
	CmdSaveInputFieldConfig = "save_input_field_config"
	CmdGetSelectionConfig   = "get_selection_config"
	CmdSaveSelectionConfig  = "save_selection_config"
)

// Handler runs one command. args is the JSON argument object sent by the
// caller and may be empty.
type Handler func(args json.RawMessage) (any, error)

// CommandError is the only failure a caller of Invoke sees. Its message is
// the underlying error text, passed through unchanged.
type CommandError struct {
	Command string
	Message string
	err     error
}

func (e *CommandError) Error() string { return e.Message }

func (e *CommandError) Unwrap() error { return e.err }

// Registry dispatches commands by name.
type Registry struct {
	handlers map[string]Handler
}

// NewRegistry returns a registry with every command of app registered.
func NewRegistry(app *App) *Registry {
	r := &Registry{handlers: make(map[string]Handler)}
	r.Register(CmdGreet, func(raw json.RawMessage) (any, error) {
		var args struct {
			Name *string `json:"name"`
		}
		if err := decodeArgs(raw, &args); err != nil {
			return nil, err
		}
		if args.Name == nil {
			return nil, errors.New(`missing required key "name"`)
		}
		return app.Greet(*args.Name), nil
	})
	r.Register(CmdGetConfig, getHandler(app.GetConfig))
	r.Register(CmdSaveConfig, saveHandler(app.SaveConfig))
	r.Register(CmdGetInputFieldConfig, getHandler(app.GetInputFieldConfig))
	r.Register(CmdSaveInputFieldConfig, saveHandler(app.SaveInputFieldConfig))
	r.Register(CmdGetSelectionConfig, getHandler(app.GetSelectionConfig))
	r.Register(CmdSaveSelectionConfig, saveHandler(app.SaveSelectionConfig))
	return r
}

// Register adds or replaces the handler for name.
func (r *Registry) Register(name string, h Handler) {
	r.handlers[name] = h
}

// Names returns the registered command names in sorted order.
func (r *Registry) Names() []string {
	names := maps.Keys(r.handlers)
	sort.Strings(names)
	return names
}

// Invoke runs the named command and returns its JSON encoded result. Save
// commands return null.
func (r *Registry) Invoke(name string, args json.RawMessage) (json.RawMessage, error) {
	log := logrus.WithField("command", name)
	h, ok := r.handlers[name]
	if !ok {
		err := errors.Errorf("unknown command %q", name)
		return nil, &CommandError{Command: name, Message: err.Error(), err: err}
	}

	log.Debug("invoking command")
	result, err := h(args)
	if err != nil {
		log.WithError(err).Debug("command failed")
		return nil, &CommandError{Command: name, Message: err.Error(), err: err}
	}
	out, err := json.Marshal(result)
	if err != nil {
		err = errors.Wrap(err, "encode result")
		return nil, &CommandError{Command: name, Message: err.Error(), err: err}
	}
	return out, nil
}

func decodeArgs(raw json.RawMessage, dst any) error {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		raw = []byte("{}")
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return errors.Wrap(err, "invalid arguments")
	}
	return nil
}

func getHandler[T any](get func() (T, error)) Handler {
	return func(raw json.RawMessage) (any, error) {
		if err := decodeArgs(raw, &struct{}{}); err != nil {
			return nil, err
		}
		return get()
	}
}

func saveHandler[T any](save func(T) error) Handler {
	return func(raw json.RawMessage) (any, error) {
		var args struct {
			Config *T `json:"config"`
		}
		if err := decodeArgs(raw, &args); err != nil {
			return nil, err
		}
		if args.Config == nil {
			return nil, errors.New(`missing required key "config"`)
		}
		return nil, save(*args.Config)
	}
}
