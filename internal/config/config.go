package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/volleytech/volley-dvw-tools/internal/merge"
)

// ProfilesConfig is the on-disk shape of a profile library.
type ProfilesConfig struct {
	Profiles []ProfileEntry `toml:"profiles"`
}

// ProfileEntry declares one custom skill pairing.
type ProfileEntry struct {
	Name    string   `toml:"name"`
	Primary string   `toml:"primary"`
	Follows []string `toml:"follows"`
}

// LoadProfiles reads custom merge profiles from a TOML file.
func LoadProfiles(path string) ([]merge.Profile, error) {
	var cfg ProfilesConfig
	if err := loadToml(path, &cfg); err != nil {
		return nil, err
	}
	profiles := make([]merge.Profile, 0, len(cfg.Profiles))
	for i, entry := range cfg.Profiles {
		p, err := entry.profile()
		if err != nil {
			return nil, fmt.Errorf("profile[%d] invalid: %w", i, err)
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}

// Resolve looks a profile up by name, custom profiles shadowing built-ins.
func Resolve(custom []merge.Profile, name string) (merge.Profile, error) {
	name = strings.TrimSpace(name)
	for _, p := range custom {
		if p.Name == name {
			return p, nil
		}
	}
	if p, ok := merge.BuiltinProfile(name); ok {
		return p, nil
	}
	return merge.Profile{}, fmt.Errorf("%w: %q", merge.ErrUnknownProfile, name)
}

func loadToml(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if err := toml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	return nil
}

func (e ProfileEntry) profile() (merge.Profile, error) {
	p := merge.Profile{Name: strings.TrimSpace(e.Name)}
	primary := strings.TrimSpace(e.Primary)
	if len(primary) != 1 {
		return merge.Profile{}, fmt.Errorf("%w %q: primary must be one skill letter", merge.ErrBadProfile, e.Name)
	}
	p.Primary = primary[0]
	for _, f := range e.Follows {
		f = strings.TrimSpace(f)
		if len(f) != 1 {
			return merge.Profile{}, fmt.Errorf("%w %q: follow must be one skill letter", merge.ErrBadProfile, e.Name)
		}
		p.Follows = append(p.Follows, f[0])
	}
	if err := p.Validate(); err != nil {
		return merge.Profile{}, err
	}
	return p, nil
}
