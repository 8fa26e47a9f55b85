package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/volleytech/volley-dvw-tools/internal/config"
	"github.com/volleytech/volley-dvw-tools/internal/dvw"
	"github.com/volleytech/volley-dvw-tools/internal/logging"
	"github.com/volleytech/volley-dvw-tools/internal/merge"
)

func main() {
	logging.Init("dvwmerge")
	opts, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "dvwmerge: %v\n", err)
		os.Exit(2)
	}
	if err := run(opts); err != nil {
		log.Fatal().Err(err).Msg("merge failed")
	}
}

func parseArgs(args []string) (runOptions, error) {
	opts := defaultRunOptions()
	fs := flag.NewFlagSet("dvwmerge", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: dvwmerge [flags] <skeleton.dvw>")
		fs.PrintDefaults()
	}
	fs.StringVar(&opts.Codes, "s", "", "scout file that contains the verbose codes (required)")
	fs.IntVar(&opts.StartLine, "l", 0, "line number to start the merge (default: after [3SCOUT])")
	fs.StringVar(&opts.ProfileName, "p", opts.ProfileName, "merge profile name")
	fs.StringVar(&opts.ConfigPath, "c", "", "optional TOML config overlaying the defaults")
	fs.StringVar(&opts.OutputPath, "o", "", "output path (default: rewrite in place with a backup)")
	fs.BoolVar(&opts.DryRun, "dry-run", false, "report without writing")
	fs.BoolVar(&opts.Strict, "strict", false, "abort on a minimal-key mismatch or exhausted codes")
	if err := fs.Parse(args); err != nil {
		return runOptions{}, err
	}
	if fs.NArg() != 1 {
		return runOptions{}, fmt.Errorf("exactly one skeleton file expected, got %d", fs.NArg())
	}
	opts.Input = fs.Arg(0)
	if opts.Codes == "" {
		return runOptions{}, fmt.Errorf("no codes to merge, add -s")
	}
	if opts.ConfigPath != "" {
		if err := overlayFileConfig(&opts, opts.ConfigPath); err != nil {
			return runOptions{}, err
		}
	}
	return opts, nil
}

func run(opts runOptions) error {
	if !dvw.IsScoutFile(opts.Input) {
		return fmt.Errorf("%w: %s", dvw.ErrNotScoutFile, opts.Input)
	}
	if !dvw.IsScoutFile(opts.Codes) {
		return fmt.Errorf("%w: %s", dvw.ErrNotScoutFile, opts.Codes)
	}

	var custom []merge.Profile
	if opts.ProfilesPath != "" {
		var err error
		custom, err = config.LoadProfiles(opts.ProfilesPath)
		if err != nil {
			return err
		}
	}
	profile, err := config.Resolve(custom, opts.ProfileName)
	if err != nil {
		return err
	}

	skeleton, err := dvw.Read(opts.Input)
	if err != nil {
		return err
	}
	codes, err := dvw.Read(opts.Codes)
	if err != nil {
		return err
	}

	merger, err := merge.New(profile, merge.Options{StartLine: opts.StartLine, Strict: opts.Strict})
	if err != nil {
		return err
	}
	report, err := merger.Run(skeleton, codes)
	if err != nil {
		return err
	}

	summary := log.Info().
		Str("profile", profile.Name).
		Int("primaries", report.Primaries).
		Int("follows", report.Follows).
		Int("mismatches", report.Mismatches).
		Int("orphans", report.Orphans).
		Int("leftover", report.Leftover).
		Bool("exhausted", report.Exhausted)

	if opts.DryRun {
		summary.Msg("dry run, nothing written")
		return nil
	}

	if opts.OutputPath != "" {
		if err := skeleton.Write(opts.OutputPath); err != nil {
			return err
		}
		summary.Str("output", opts.OutputPath).Msg("merged scout files")
		return nil
	}
	if err := skeleton.RewriteInPlace(opts.BackupSuffix); err != nil {
		return err
	}
	summary.Str("output", opts.Input).Str("backup", opts.Input+opts.BackupSuffix).Msg("merged scout files")
	return nil
}
