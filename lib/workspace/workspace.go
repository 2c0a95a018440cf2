package workspace

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/pescuma/eotracker/lib/consoles"
	"github.com/pescuma/eotracker/lib/model"
	"github.com/pescuma/eotracker/lib/sources"
	"github.com/pescuma/eotracker/lib/storages"
	"github.com/pescuma/eotracker/lib/storages/orm"
	"github.com/pescuma/eotracker/lib/utils"
)

// ConfigSource is the config key holding the default source location.
const ConfigSource = "source"

type Workspace struct {
	console consoles.Console
	storage storages.Storage
}

func NewWorkspace(file string) (*Workspace, error) {
	return NewWorkspaceWithConsole(file, consoles.NewStdOutConsole())
}

func NewWorkspaceWithConsole(file string, console consoles.Console) (*Workspace, error) {
	if file == "" {
		if _, err := os.Stat("./.eotracker"); err == nil {
			file = "./.eotracker/eotracker.sqlite"
		} else {
			file = "~/.eotracker/eotracker.sqlite"
		}
	}

	var storage storages.Storage
	var err error
	switch {
	case file == ":memory:":
		storage, err = orm.NewSqliteMemoryStorage(console)

	case strings.HasSuffix(file, ".sqlite"):
		file, err = utils.PathAbs(file)
		if err != nil {
			return nil, err
		}

		err = createWorkspaceDir(console, file)
		if err != nil {
			return nil, err
		}

		storage, err = orm.NewGormStorage(orm.WithSqlite(file), console)

	default:
		return nil, fmt.Errorf("unknown storage type for file %v", file)
	}
	if err != nil {
		return nil, err
	}

	return &Workspace{
		console: console,
		storage: storage,
	}, nil
}

func createWorkspaceDir(console consoles.Console, file string) error {
	path := filepath.Dir(file)

	if _, err := os.Stat(path); err != nil {
		console.Printf("Creating workspace at %v\n", path)
		err = os.MkdirAll(path, 0o700)
		if err != nil {
			return err
		}
	}

	return nil
}

func (w *Workspace) Close() error {
	return w.storage.Close()
}

func (w *Workspace) Console() consoles.Console {
	return w.console
}

// OpenSource resolves where orders come from. An empty location falls back to
// the workspace config and then to the bundled data.
func (w *Workspace) OpenSource(location string, opts *sources.HTTPOptions) (sources.Source, error) {
	if location == "" {
		cfg, err := w.storage.LoadConfig()
		if err != nil {
			return nil, err
		}

		location = utils.Coalesce((*cfg)[ConfigSource], sources.BundledName)
	}

	return sources.Open(location, w.storage, opts)
}

// NewLoader opens the source and wraps it in a loader that logs to the
// workspace console.
func (w *Workspace) NewLoader(location string, opts *sources.HTTPOptions) (*sources.Loader, error) {
	source, err := w.OpenSource(location, opts)
	if err != nil {
		return nil, err
	}

	return sources.NewLoader(source, w.console), nil
}

// LoadOrders loads the whole collection synchronously.
func (w *Workspace) LoadOrders(ctx context.Context, location string, opts *sources.HTTPOptions) (*model.Orders, error) {
	loader, err := w.NewLoader(location, opts)
	if err != nil {
		return nil, err
	}

	err = loader.Load(ctx)
	if err != nil {
		return nil, err
	}

	return loader.Orders(), nil
}

// Import loads the source and stores what was accepted as a new snapshot.
func (w *Workspace) Import(ctx context.Context, location string, opts *sources.HTTPOptions) (*model.Snapshot, error) {
	source, err := w.OpenSource(location, opts)
	if err != nil {
		return nil, err
	}

	if source.Name() == sources.WorkspaceName {
		return nil, errors.New("can't import the workspace into itself")
	}

	w.console.Printf("Importing orders from %v...\n", source.Name())

	w.console.PushPrefix("%v: ", source.Name())
	defer w.console.PopPrefix()

	result, err := source.Load(ctx)
	if err != nil {
		return nil, err
	}

	for _, r := range result.Rejected {
		w.console.Printf("Ignoring %v\n", r)
	}

	snapshot := model.NewSnapshot(source.Name())
	snapshot.Rejected = len(result.Rejected)

	bar := utils.NewProgressBar(len(result.Orders), "Writing")
	defer bar.Close()

	err = w.storage.WriteSnapshot(snapshot, result.Orders, func(n int) {
		_ = bar.Add(n)
	})
	if err != nil {
		return nil, err
	}

	w.console.Printf("Imported %v orders (%v ignored) as snapshot %v\n",
		snapshot.Orders, snapshot.Rejected, snapshot.ID)

	return snapshot, nil
}

func (w *Workspace) ListSnapshots() ([]*model.Snapshot, error) {
	return w.storage.ListSnapshots()
}

func (w *Workspace) GetConfig(key string) (string, bool, error) {
	cfg, err := w.storage.LoadConfig()
	if err != nil {
		return "", false, err
	}

	v, ok := (*cfg)[key]
	return v, ok, nil
}

// SetConfig stores a config value. Returns false if the value was already set.
func (w *Workspace) SetConfig(key string, value string) (bool, error) {
	cfg, err := w.storage.LoadConfig()
	if err != nil {
		return false, err
	}

	v, ok := (*cfg)[key]
	if ok && v == value {
		return false, nil
	}

	(*cfg)[key] = value

	err = w.storage.WriteConfig()
	if err != nil {
		return false, err
	}

	return true, nil
}
