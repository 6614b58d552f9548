package config

import (
	"fmt"
	log "github.com/sirupsen/logrus"
	"os"
	"path/filepath"
	"strings"
)

type CandidateOrder string

const (
	// OrderDiscovery processes candidates in directory-listing order
	OrderDiscovery CandidateOrder = "discovery"
	// OrderOldestFirst processes candidates sorted ascending by their timestamp
	OrderOldestFirst CandidateOrder = "oldest_first"
)

const (
	CfgFileName = "staledirs.yaml"
	PathLocal   = "."
	PathGlobal  = "/etc/staledirs"
)

type Configuration struct {
	logLevel        log.Level
	candidateOrder  CandidateOrder
	measureSize     bool
	metricsTextfile string
	directories     *DirectoriesConfiguration
	// path of the file this configuration has been read from; empty for the defaults
	source string
}

func (c *Configuration) LogLevel() log.Level {
	return c.logLevel
}

func (c *Configuration) CandidateOrder() CandidateOrder {
	return c.candidateOrder
}

func (c *Configuration) MeasureSize() bool {
	return c.measureSize
}

func (c *Configuration) MetricsTextfile() string {
	return c.metricsTextfile
}

func (c *Configuration) Directories() *DirectoriesConfiguration {
	return c.directories
}

func (c *Configuration) Source() string {
	return c.source
}

// Defaults returns the configuration used if no configuration file is present
func Defaults() *Configuration {
	return NewConfigurationInstance(Raw{})
}

// SearchDirectories returns the directories which are checked for a configuration file, in order of precedence
func SearchDirectories() []string {
	directories := []string{PathLocal}

	userHome, err := os.UserHomeDir()

	if err == nil {
		directories = append(directories, filepath.Join(userHome, ".staledirs"))
	}

	return append(directories, PathGlobal)
}

// Load reads the configuration. An explicitly given path must exist; otherwise the search directories are checked
// and the defaults are used if no configuration file can be found.
func Load(explicitPath string) (*Configuration, error) {
	if explicitPath != "" {
		return loadFromFile(explicitPath)
	}

	return LoadFromDirectories(SearchDirectories())
}

func LoadFromDirectories(directories []string) (*Configuration, error) {
	for _, directory := range directories {
		var possibleConfigPath = filepath.Join(directory, CfgFileName)
		log.Debugf("Checking for configuration file at %s", possibleConfigPath)

		if _, err := os.Stat(possibleConfigPath); err != nil {
			continue
		}

		log.Debugf("Found configuration file at location %s", possibleConfigPath)
		return loadFromFile(possibleConfigPath)
	}

	log.Debugf("No configuration file found, using defaults")
	return Defaults(), nil
}

func loadFromFile(path string) (*Configuration, error) {
	file, err := os.Open(path)

	if err != nil {
		return nil, fmt.Errorf("reading config file %q: %w", path, err)
	}

	defer file.Close()

	raw, err := Parse(file)

	if err != nil {
		return nil, fmt.Errorf("parsing config file %q: %w", path, err)
	}

	cfg := NewConfigurationInstance(raw)
	cfg.source = path

	return cfg, nil
}

// NewConfigurationInstance transforms the raw configuration. Invalid values are logged and replaced by their defaults.
func NewConfigurationInstance(cfg Raw) *Configuration {
	logLevel := log.InfoLevel
	if cfg.Has("log_level") {
		parsedLevel, err := log.ParseLevel(cfg.String("log_level"))
		if err == nil {
			logLevel = parsedLevel
		} else {
			log.Warnf("Cannot parse log level, defaulting to 'info': %s", err)
		}
	}

	candidateOrder := OrderDiscovery
	if cfg.Has("candidate_order") {
		switch CandidateOrder(strings.ToLower(cfg.String("candidate_order"))) {
		case OrderDiscovery:
			candidateOrder = OrderDiscovery
		case OrderOldestFirst:
			candidateOrder = OrderOldestFirst
		default:
			log.Warnf("Cannot parse candidate order '%s', defaulting to '%s'", cfg.String("candidate_order"), OrderDiscovery)
		}
	}

	return &Configuration{
		logLevel:        logLevel,
		candidateOrder:  candidateOrder,
		measureSize:     cfg.Bool("measure_size"),
		metricsTextfile: cfg.String("metrics_textfile"),
		directories:     ParseDirectoriesSection(cfg.Sub("directories")),
	}
}
