package catalog

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/de-tools/war-atlas/pkg/models/domain"
	"github.com/de-tools/war-atlas/pkg/store/objects"
	"gopkg.in/ini.v1"
)

var ErrDatasetNotFound = errors.New("dataset not found")

// Registry lists the datasets declared in a datasets.ini file:
//
//	[battles]
//	path = data/ukraine_acled.csv
//	description = ACLED events
type Registry interface {
	GetDatasets(ctx context.Context) ([]domain.Dataset, error)
	GetDataset(ctx context.Context, name domain.DatasetName) (domain.Dataset, error)
}

type iniRegistry struct {
	cfg *ini.File
	dir string
}

func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset catalog: %w", err)
	}
	return &iniRegistry{cfg: cfg, dir: filepath.Dir(path)}, nil
}

func (r *iniRegistry) GetDatasets(_ context.Context) ([]domain.Dataset, error) {
	var datasets []domain.Dataset
	for _, section := range r.cfg.Sections() {
		if !section.HasKey("path") {
			continue
		}
		datasets = append(datasets, r.toDataset(section))
	}
	return datasets, nil
}

func (r *iniRegistry) GetDataset(_ context.Context, name domain.DatasetName) (domain.Dataset, error) {
	section, err := r.cfg.GetSection(string(name))
	if err != nil || !section.HasKey("path") {
		return domain.Dataset{}, fmt.Errorf("%w: %s", ErrDatasetNotFound, name)
	}
	return r.toDataset(section), nil
}

// Relative local paths are taken relative to the catalog file.
func (r *iniRegistry) toDataset(section *ini.Section) domain.Dataset {
	path := section.Key("path").String()
	if !objects.IsRemote(path) && !filepath.IsAbs(path) {
		path = filepath.Join(r.dir, path)
	}
	return domain.Dataset{
		Name:        domain.DatasetName(section.Name()),
		Path:        path,
		Description: section.Key("description").String(),
	}
}
