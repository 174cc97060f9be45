package lpcr

import (
	"fmt"
	"sort"

	"lpcr-submit/internal/common/errors"
)

// Target is the resolved submission endpoint: the URL the POST goes to and
// the Host header it carries. The Host header can differ from the URL's host
// when routing through shared ingress.
type Target struct {
	URL  string
	Host string
}

var envTargets = map[string]Target{
	"test1": {
		URL:  "https://aztest1.devops.dev-openlending.com/lpcr-service/reports",
		Host: "aztest1.devops.dev-openlending.com",
	},
	"test4": {
		URL:  "https://aztest4.devops.dev-openlending.com/lpcr-service/reports",
		Host: "aztest4.devops.dev-openlending.com",
	},
	"staging": {
		URL:  "https://staging.stg.aks.prd.lend-pro.com/lpcr-service/reports",
		Host: "staging.stg.aks.prd.lend-pro.com",
	},
}

// Environments lists the known environment names.
func Environments() []string {
	names := make([]string, 0, len(envTargets))
	for name := range envTargets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ResolveTarget maps an environment name plus optional URL/Host overrides to
// a usable target. Each override replaces only its own field. An empty env
// with overrides starts from a blank target. No network access happens here.
func ResolveTarget(env, urlOverride, hostOverride string) (Target, error) {
	var target Target
	if env != "" {
		known, ok := envTargets[env]
		if !ok {
			return Target{}, errors.NewEnvironmentUnknownError(env, Environments())
		}
		target = known
	}

	if urlOverride != "" {
		target.URL = urlOverride
	}
	if hostOverride != "" {
		target.Host = hostOverride
	}

	if target.URL == "" {
		return Target{}, errors.NewConfigurationError(
			fmt.Sprintf("no target URL: name an environment (%v) or pass a URL override", Environments()))
	}

	return target, nil
}
