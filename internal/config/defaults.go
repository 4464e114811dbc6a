package config

const (
	defaultDataDir            = "."
	defaultCSVDir             = "."
	defaultLogDir             = "~/.local/share/forestsim/logs"
	defaultLogFormat          = "console"
	defaultLogLevel           = "info"
	defaultMinPlantingYear    = 2000
	defaultReplantWindowYears = 20
	defaultMinHeight          = 10.0
	defaultMaxHeight          = 20.0
	defaultMinGrowthRate      = 0.10
	defaultMaxGrowthRate      = 0.20
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			CSVDir:  defaultCSVDir,
			LogDir:  defaultLogDir,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Simulation: Simulation{
			MinPlantingYear:    defaultMinPlantingYear,
			ReplantWindowYears: defaultReplantWindowYears,
			MinHeight:          defaultMinHeight,
			MaxHeight:          defaultMaxHeight,
			MinGrowthRate:      defaultMinGrowthRate,
			MaxGrowthRate:      defaultMaxGrowthRate,
		},
	}
}
