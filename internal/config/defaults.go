package config

const (
	defaultLogDir        = "~/.local/share/relink/logs"
	defaultLogFormat     = "console"
	defaultLogLevel      = "warn"
	defaultMinFilesizeMB = int64(0)

	// EscalationSkip never runs tiers past the 1MB prefix; uncertain groups
	// are reported and left untouched.
	EscalationSkip = "skip"
	// EscalationAuto hashes the 10MB prefix automatically for uncertain groups.
	EscalationAuto = "auto"
	// EscalationInteractive asks the operator how deep to hash each
	// uncertain group.
	EscalationInteractive = "interactive"
)

// Known franchises that embed unreliable episode codes in filenames.
var defaultEpisodeExceptions = []string{"paw.patrol", "bar.rescue"}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir: defaultLogDir,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Scan: Scan{
			MinFilesizeMB: defaultMinFilesizeMB,
		},
		Heuristics: Heuristics{
			EpisodeExceptions: append([]string(nil), defaultEpisodeExceptions...),
		},
		Escalation: Escalation{
			Mode: EscalationSkip,
		},
	}
}
