// Package fixtures loads the static data files that feed the site pages.
package fixtures

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"

	"gopkg.in/yaml.v2"

	"github.com/Dulitha99/Research-Website/internal/model"
)

const (
	DataDir           = "data"
	TeamFile          = "team.json"
	DocumentsFile     = "documents.json"
	MilestonesFile    = "milestones.json"
	PresentationsFile = "presentations.json"
	SiteMetaFile      = "site.yaml"
)

// Load fills site with every fixture found under data/. A missing file leaves
// the matching slice empty; a malformed one is an error.
func Load(fsys fs.FS, site *model.SiteData) error {
	var team struct {
		Team []model.TeamMember `json:"team"`
	}
	if err := readJSON(fsys, TeamFile, &team); err != nil {
		return err
	}

	var documents struct {
		Documents []model.Document `json:"documents"`
	}
	if err := readJSON(fsys, DocumentsFile, &documents); err != nil {
		return err
	}

	var milestones struct {
		Milestones []model.Milestone `json:"milestones"`
	}
	if err := readJSON(fsys, MilestonesFile, &milestones); err != nil {
		return err
	}

	var presentations struct {
		Presentations []model.Presentation `json:"presentations"`
	}
	if err := readJSON(fsys, PresentationsFile, &presentations); err != nil {
		return err
	}

	raw, meta, err := LoadSiteMeta(fsys)
	if err != nil {
		return err
	}

	site.Team = team.Team
	site.Documents = documents.Documents
	site.Milestones = milestones.Milestones
	site.Presentations = presentations.Presentations
	site.Config = raw
	site.Meta = meta
	return nil
}

// LoadSiteMeta reads data/site.yaml both as a loose map (exposed to templates as
// .Site.Config) and as typed metadata.
func LoadSiteMeta(fsys fs.FS) (map[string]interface{}, model.SiteMeta, error) {
	var meta model.SiteMeta
	raw := map[string]interface{}{}

	name := path.Join(DataDir, SiteMetaFile)
	b, err := fs.ReadFile(fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		return raw, meta, nil
	}
	if err != nil {
		return nil, meta, fmt.Errorf("error reading site metadata %s: %w", name, err)
	}

	if err := yaml.Unmarshal(b, &meta); err != nil {
		return nil, meta, fmt.Errorf("error unmarshalling site metadata %s: %w", name, err)
	}

	var loose map[interface{}]interface{}
	if err := yaml.Unmarshal(b, &loose); err != nil {
		return nil, meta, fmt.Errorf("error unmarshalling site metadata %s: %w", name, err)
	}
	for k, v := range loose {
		raw[fmt.Sprint(k)] = v
	}
	return raw, meta, nil
}

func readJSON(fsys fs.FS, file string, v interface{}) error {
	name := path.Join(DataDir, file)
	b, err := fs.ReadFile(fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("error reading fixture %s: %w", name, err)
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("error unmarshalling fixture %s: %w", name, err)
	}
	return nil
}
