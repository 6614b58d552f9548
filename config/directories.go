package config

import (
	"fmt"
	log "github.com/sirupsen/logrus"
	"regexp"
	"strings"
)

// behaviour enum
const (
	DirectoriesBehaviourInclude = iota
	DirectoriesBehaviourExclude
)

// applied policy enum
const (
	DirectoriesPolicyInclude            = "explicit_include_policy"
	DirectoriesPolicyIncludeByRegex     = "explicit_include_by_regex_policy"
	DirectoriesPolicyExclude            = "explicit_exclude_policy"
	DirectoriesPolicyExcludeByRegex     = "explicit_exclude_by_regex_policy"
	DirectoriesPolicyConflicting        = "unallowed_definition_in_include_and_exclude_policy"
	DirectoriesPolicyConflictingByRegex = "unallowed_definition_in_include_or_exclude_and_contradicting_regexp"
	DirectoriesPolicyNoMatchFallback    = "not_matching_fallback_to_all_others"
)

// DirectoriesConfiguration is the transformed outcome of the `directories:` section
type DirectoriesConfiguration struct {
	// simple directory names can be identified through a lookup table
	include map[string]SingleDirectoryConfiguration
	// for regexps we cannot use a lookup table but have to execute each regex
	includeRegExps []SingleDirectoryConfiguration
	exclude        map[string]SingleDirectoryConfiguration
	excludeRegExps []SingleDirectoryConfiguration
	// fallback to that behaviour if a policy does not match or is conflicting
	behaviourForAllOthers int
}

type SingleDirectoryConfiguration struct {
	// either the name of the directory or the regular expression
	Name                string
	IsRegularExpression bool
	regExp              *regexp.Regexp
}

// NewSingleDirectoryConfiguration creates a new SingleDirectoryConfiguration.
// Names enclosed in slashes ('/someregex/') are treated as regular expressions; an error is returned if they do not compile.
func NewSingleDirectoryConfiguration(nameOrRegExp string) (*SingleDirectoryConfiguration, error) {
	isRegEx := len(nameOrRegExp) > 1 && strings.HasPrefix(nameOrRegExp, "/") && strings.HasSuffix(nameOrRegExp, "/")

	r := &SingleDirectoryConfiguration{
		Name:                nameOrRegExp,
		IsRegularExpression: isRegEx,
	}

	if isRegEx {
		r.Name = strings.TrimSuffix(strings.TrimPrefix(nameOrRegExp, "/"), "/")
		compiled, err := regexp.Compile(r.Name)

		if err != nil {
			return nil, fmt.Errorf("invalid regular expression %q: %w", r.Name, err)
		}

		r.regExp = compiled
	}

	return r, nil
}

// IncludeAllDirectories returns a configuration without any include or exclude rules
func IncludeAllDirectories() *DirectoriesConfiguration {
	return &DirectoriesConfiguration{
		include:               make(map[string]SingleDirectoryConfiguration),
		exclude:               make(map[string]SingleDirectoryConfiguration),
		behaviourForAllOthers: DirectoriesBehaviourInclude,
	}
}

// ParseDirectoriesSection transforms the `directories:` section. Invalid entries are logged and ignored.
func ParseDirectoriesSection(cfg Raw) *DirectoriesConfiguration {
	r := IncludeAllDirectories()

	if cfg == nil {
		return r
	}

	for _, name := range cfg.StringSlice("include") {
		single, err := NewSingleDirectoryConfiguration(name)

		if err != nil {
			log.Warnf("Ignoring directory include rule: %s", err)
			continue
		}

		if single.IsRegularExpression {
			r.includeRegExps = append(r.includeRegExps, *single)
		} else {
			r.include[single.Name] = *single
		}
	}

	for _, name := range cfg.StringSlice("exclude") {
		single, err := NewSingleDirectoryConfiguration(name)

		if err != nil {
			log.Warnf("Ignoring directory exclude rule: %s", err)
			continue
		}

		if single.IsRegularExpression {
			r.excludeRegExps = append(r.excludeRegExps, *single)
		} else {
			r.exclude[single.Name] = *single
		}
	}

	if cfg.Has("all_others") {
		switch strings.ToLower(cfg.String("all_others")) {
		case "include":
			r.behaviourForAllOthers = DirectoriesBehaviourInclude
		case "exclude":
			r.behaviourForAllOthers = DirectoriesBehaviourExclude
		default:
			log.Warnf("Cannot parse directories.all_others value '%s', defaulting to 'include'", cfg.String("all_others"))
		}
	}

	return r
}

// IsDirectoryIncluded returns true if the given directory is defined as "included" through some policy
func (self *DirectoriesConfiguration) IsDirectoryIncluded(name string) bool {
	status, appliedPolicy := GetDirectoryStatus(name, self)

	if status == DirectoriesBehaviourExclude {
		log.Debugf("Directory %s is excluded (%s)", name, appliedPolicy)

		return false
	}

	return true
}

// hasAtLeastOneMatch returns true if at least one of the configured regexps matches the given name
func hasAtLeastOneMatch(name string, possibleConfigsWithRegExps []SingleDirectoryConfiguration) bool {
	for _, config := range possibleConfigsWithRegExps {
		if config.regExp == nil {
			continue
		}

		if config.regExp.MatchString(name) {
			return true
		}
	}

	return false
}

// GetDirectoryStatus calculates the directory's status based upon the defined policies
// @return (status, appliedPolicy)
func GetDirectoryStatus(name string, cfg *DirectoriesConfiguration) (int, string) {
	_, isExplicitlyIncluded := cfg.include[name]
	isIncludedByRegex := hasAtLeastOneMatch(name, cfg.includeRegExps)
	isIncluded := isExplicitlyIncluded || isIncludedByRegex

	_, isExplicitlyExcluded := cfg.exclude[name]
	isExcludedByRegex := hasAtLeastOneMatch(name, cfg.excludeRegExps)
	isExcluded := isExplicitlyExcluded || isExcludedByRegex

	if isExplicitlyIncluded && !isExcluded {
		return DirectoriesBehaviourInclude, DirectoriesPolicyInclude
	}

	if isIncludedByRegex && !isExcluded {
		return DirectoriesBehaviourInclude, DirectoriesPolicyIncludeByRegex
	}

	if isExplicitlyExcluded && !isIncluded {
		return DirectoriesBehaviourExclude, DirectoriesPolicyExclude
	}

	if isExcludedByRegex && !isIncluded {
		return DirectoriesBehaviourExclude, DirectoriesPolicyExcludeByRegex
	}

	if isExplicitlyIncluded && isExplicitlyExcluded {
		return cfg.behaviourForAllOthers, DirectoriesPolicyConflicting
	}

	// directory has been matched in both `include` and `exclude` sections
	if isIncluded && isExcluded {
		return cfg.behaviourForAllOthers, DirectoriesPolicyConflictingByRegex
	}

	return cfg.behaviourForAllOthers, DirectoriesPolicyNoMatchFallback
}
