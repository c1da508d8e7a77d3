// Package grouping discovers resource files and groups each neutral base
// file with its per-culture satellite translations.
package grouping

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
)

// Extension is the resource file extension handled by the tool.
const Extension = ".resx"

// Satellite is one culture-specific translation file of a group.
type Satellite struct {
	Path    string
	Culture string
}

// Group is one neutral base file plus its satellites.
type Group struct {
	// Name is the base file name without extension or culture suffix.
	Name string
	// BasePath is the neutral-culture file.
	BasePath string
	// Satellites is sorted by culture for deterministic processing.
	Satellites []Satellite
}

// Paths returns every file of the group, base first.
func (g Group) Paths() []string {
	out := make([]string, 0, len(g.Satellites)+1)
	out = append(out, g.BasePath)
	for _, s := range g.Satellites {
		out = append(out, s.Path)
	}
	return out
}

// Options controls discovery.
type Options struct {
	// Root is the directory to walk.
	Root string
	// Include holds doublestar patterns matched against root-relative
	// paths; empty means every resource file.
	Include []string
	// Exclude holds doublestar patterns that remove matched files.
	Exclude []string
}

// Discover walks the root and returns the resource groups found, plus the
// paths of satellite files that have no base file.
func Discover(opts Options) ([]Group, []string, error) {
	root, err := filepath.Abs(opts.Root)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve root path: %w", err)
	}

	groups := make(map[string]*Group)
	var pending []Satellite
	pendingKeys := make(map[string]string) // satellite path → group key

	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.Warn().Err(err).Str("path", path).Msg("Error walking path")
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if !strings.EqualFold(filepath.Ext(path), Extension) {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}
		if !matches(rel, opts.Include, opts.Exclude) {
			return nil
		}

		base, culture := SplitCultureSuffix(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))
		key := filepath.Join(filepath.Dir(path), base)
		if culture == "" {
			g := groups[key]
			if g == nil {
				g = &Group{Name: base}
				groups[key] = g
			}
			g.BasePath = path
			return nil
		}

		sat := Satellite{Path: path, Culture: culture}
		if g := groups[key]; g != nil {
			g.Satellites = append(g.Satellites, sat)
			return nil
		}
		pending = append(pending, sat)
		pendingKeys[path] = key
		return nil
	})
	if walkErr != nil {
		return nil, nil, fmt.Errorf("walk directory: %w", walkErr)
	}

	// Satellites can be discovered before their base file; attach them now.
	var orphans []string
	for _, sat := range pending {
		if g := groups[pendingKeys[sat.Path]]; g != nil && g.BasePath != "" {
			g.Satellites = append(g.Satellites, sat)
		} else {
			orphans = append(orphans, sat.Path)
		}
	}

	var out []Group
	for _, g := range groups {
		sort.Slice(g.Satellites, func(i, j int) bool {
			return g.Satellites[i].Culture < g.Satellites[j].Culture
		})
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].BasePath < out[j].BasePath })
	sort.Strings(orphans)

	log.Info().Int("groups", len(out)).Str("root", root).Msg("Discovered resource groups")
	return out, orphans, nil
}

// cultureShape is the BCP-47 tag shape accepted as a culture suffix: a 2-3
// letter primary subtag with optional subtags.
var cultureShape = regexp.MustCompile(`^[A-Za-z]{2,3}(-[A-Za-z0-9]{1,8})*$`)

// SplitCultureSuffix splits "Name.culture" into its parts. The trailing
// dotted segment counts as a culture only when it is shaped like a language
// tag and the language matcher accepts it; otherwise the whole input is the
// base name.
func SplitCultureSuffix(stem string) (base, culture string) {
	idx := strings.LastIndex(stem, ".")
	if idx <= 0 || idx == len(stem)-1 {
		return stem, ""
	}
	cand := stem[idx+1:]
	if !cultureShape.MatchString(cand) {
		return stem, ""
	}
	if _, err := language.Parse(cand); err != nil {
		return stem, ""
	}
	return stem[:idx], cand
}

// matches applies include then exclude patterns to a root-relative path.
func matches(rel string, include, exclude []string) bool {
	rel = filepath.ToSlash(rel)
	ok := len(include) == 0
	for _, pat := range include {
		if m, err := doublestar.Match(pat, rel); err == nil && m {
			ok = true
			break
		}
	}
	if !ok {
		return false
	}
	for _, pat := range exclude {
		if m, err := doublestar.Match(pat, rel); err == nil && m {
			return false
		}
	}
	return true
}
