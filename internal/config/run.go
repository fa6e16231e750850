package config

// Mode selects what one invocation does.
type Mode int

const (
	ModeFile Mode = iota
	ModeDB
	ModeExport
)

func (m Mode) String() string {
	switch m {
	case ModeFile:
		return "file"
	case ModeDB:
		return "db"
	case ModeExport:
		return "db-export"
	default:
		return "unknown"
	}
}

// RunConfig is the validated result of argument parsing. It does not change
// for the lifetime of the process.
type RunConfig struct {
	Mode Mode

	// DBPath is the SQLite database for ModeDB and the export source for
	// ModeExport.
	DBPath string
	// OutputPath is the append target for ModeFile and the export
	// destination for ModeExport. Empty in ModeFile means the configured
	// default file.
	OutputPath string

	CheckURLs    bool
	SettingsPath string
}
