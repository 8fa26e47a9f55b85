package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/volleytech/volley-dvw-tools/internal/dvw"
)

type runOptions struct {
	Input        string
	Codes        string
	StartLine    int
	ProfileName  string
	ConfigPath   string
	OutputPath   string
	ProfilesPath string
	BackupSuffix string
	DryRun       bool
	Strict       bool
}

func defaultRunOptions() runOptions {
	return runOptions{
		ProfileName:  "serve",
		BackupSuffix: dvw.BackupSuffix,
	}
}

type fileConfig struct {
	Profile      string `toml:"profile"`
	Profiles     string `toml:"profiles"`
	BackupSuffix string `toml:"backup_suffix"`
	Strict       bool   `toml:"strict"`
}

// overlayFileConfig applies config file values over the current options.
// Only keys present in the file are applied; flags already parsed keep
// their values unless the file defines the key.
func overlayFileConfig(opts *runOptions, path string) error {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return fmt.Errorf("load merge config: %w", err)
	}

	if meta.IsDefined("profile") {
		name := strings.TrimSpace(raw.Profile)
		if name != "" {
			opts.ProfileName = name
		}
	}
	if meta.IsDefined("profiles") {
		opts.ProfilesPath = strings.TrimSpace(raw.Profiles)
	}
	if meta.IsDefined("backup_suffix") {
		suffix := strings.TrimSpace(raw.BackupSuffix)
		if suffix == "" || !strings.HasPrefix(suffix, ".") {
			return fmt.Errorf("backup_suffix must start with a dot, got %q", raw.BackupSuffix)
		}
		opts.BackupSuffix = suffix
	}
	if meta.IsDefined("strict") {
		opts.Strict = raw.Strict
	}
	return nil
}
