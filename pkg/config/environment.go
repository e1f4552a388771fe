package config

import "strings"

// Environment names the deployment stage an application runs in.
type Environment string

const (
	Development Environment = "development"
	Staging     Environment = "staging"
	Production  Environment = "production"
)

// ParseEnvironment normalises an environment name. The short forms dev,
// stage and prod are accepted; anything unknown is Development.
func ParseEnvironment(s string) Environment {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "production", "prod":
		return Production
	case "staging", "stage":
		return Staging
	default:
		return Development
	}
}

func (e Environment) IsProduction() bool  { return ParseEnvironment(string(e)) == Production }
func (e Environment) IsStaging() bool     { return ParseEnvironment(string(e)) == Staging }
func (e Environment) IsDevelopment() bool { return ParseEnvironment(string(e)) == Development }

func (e Environment) String() string { return string(ParseEnvironment(string(e))) }
