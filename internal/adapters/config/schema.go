package config

// Stagerfile represents the structure of the stager.yaml configuration file.
type Stagerfile struct {
	Version        string      `yaml:"version"`
	PackageManager string      `yaml:"package_manager"`
	VenvDir        string      `yaml:"venv_dir"`
	CacheDir       string      `yaml:"cache_dir"`
	Manifests      []string    `yaml:"manifests"`
	Delegate       DelegateDTO `yaml:"delegate"`
}

// DelegateDTO represents the optional project build tool definition.
type DelegateDTO struct {
	Marker string   `yaml:"marker"`
	Cmd    []string `yaml:"cmd"`
}
