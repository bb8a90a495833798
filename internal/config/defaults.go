package config

const (
	defaultConfigPath    = "~/.config/folderize/config.toml"
	defaultProjectConfig = "folderize.toml"
	defaultDirMode       = "0755"
	defaultColor         = ColorAuto
	defaultLogFormat     = "console"
	defaultLogLevel      = "warn"
)

// Color modes accepted by output.color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Organize: Organize{
			DirMode:       defaultDirMode,
			PreserveTimes: true,
		},
		Output: Output{
			Color: defaultColor,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
