// Package config provides configuration structures for the application.
package config

type Config struct {
	// Paths are the config files and/or directories to compare, as given on
	// the command line. Empty means the host's default config location.
	Paths           []string `json:"paths" yaml:"paths" mapstructure:"paths"`
	Missing         bool     `json:"missing" yaml:"missing" mapstructure:"missing"`
	Dropped         bool     `json:"dropped" yaml:"dropped" mapstructure:"dropped"`
	ChangedDefaults bool     `json:"changedDefaults" yaml:"changedDefaults" mapstructure:"changedDefaults"`
	Naked           bool     `json:"naked" yaml:"naked" mapstructure:"naked"`
	SchemaPath      string   `json:"schemaPath" yaml:"schemaPath" mapstructure:"schemaPath"`
	ConfigPath      string   `json:"configPath" yaml:"configPath" mapstructure:"configPath"`
	Debug           bool     `json:"debug" yaml:"debug" mapstructure:"debug"`
	DisableANSI     bool     `json:"disableANSI" yaml:"disableANSI" mapstructure:"disableANSI"`
	DocURLBase      string   `json:"docURLBase" yaml:"docURLBase" mapstructure:"docURLBase"`
	HostConfigName  string   `json:"hostConfigName" yaml:"hostConfigName" mapstructure:"hostConfigName"`
}

// Selection returns the report categories the run should produce. With no
// selector set, all three categories are enabled, mirroring the documented
// default behavior.
func (c *Config) Selection() (missing, dropped, changedDefaults bool) {
	if !c.Missing && !c.Dropped && !c.ChangedDefaults {
		return true, true, true
	}
	return c.Missing, c.Dropped, c.ChangedDefaults
}
