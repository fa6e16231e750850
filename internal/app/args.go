package app

import (
	"clipmon/internal/apperrors"
	"clipmon/internal/config"
)

const (
	flagDB     = "-db"
	flagExport = "-dboutput"
	flagNoURL  = "-nourl"
	flagConfig = "-config"
)

var knownFlags = map[string]bool{
	flagDB:     true,
	flagExport: true,
	flagNoURL:  true,
	flagConfig: true,
}

// ParseArgs turns the single-dash command line into a RunConfig. -db takes
// precedence over -dboutput; unrecognised arguments are ignored.
func ParseArgs(args []string) (config.RunConfig, error) {
	rc := config.RunConfig{
		Mode:      config.ModeFile,
		CheckURLs: indexOf(args, flagNoURL) < 0,
	}

	if i := indexOf(args, flagConfig); i >= 0 {
		path, ok := valueAt(args, i+1)
		if !ok {
			return rc, apperrors.NewArgument("Missing path after '-config' flag.")
		}
		rc.SettingsPath = path
	}

	if i := indexOf(args, flagDB); i >= 0 {
		dbPath, ok := valueAt(args, i+1)
		if !ok {
			return rc, apperrors.NewArgument("Missing database name after '-db' flag.")
		}
		rc.Mode = config.ModeDB
		rc.DBPath = dbPath
		return rc, nil
	}

	if i := indexOf(args, flagExport); i >= 0 {
		dbPath, ok := valueAt(args, i+1)
		if !ok {
			return rc, apperrors.NewArgument("Missing arguments for '-dboutput' flag.")
		}
		outputPath, ok := valueAt(args, i+2)
		if !ok {
			return rc, apperrors.NewArgument("Missing arguments for '-dboutput' flag.")
		}
		rc.Mode = config.ModeExport
		rc.DBPath = dbPath
		rc.OutputPath = outputPath
		return rc, nil
	}

	return rc, nil
}

func indexOf(args []string, flag string) int {
	for i, a := range args {
		if a == flag {
			return i
		}
	}
	return -1
}

// valueAt returns args[i] unless it is out of range or another flag.
func valueAt(args []string, i int) (string, bool) {
	if i >= len(args) || knownFlags[args[i]] {
		return "", false
	}
	return args[i], true
}
