package module

import (
	"portfolio/internal/platform/config"
	ghsvc "portfolio/internal/services/api/github/service"
)

// FromConfig reads cache lifetimes from the CACHE_ env namespace, e.g. CACHE_TTL_REPOS=90s
func FromConfig(cfg config.Conf) ghsvc.Config {
	def := ghsvc.DefaultTTLs()
	c := cfg.Prefix("CACHE_")
	return ghsvc.Config{TTL: ghsvc.TTLs{
		Profile:       c.MayDuration("TTL_PROFILE", def.Profile),
		Repos:         c.MayDuration("TTL_REPOS", def.Repos),
		Contributions: c.MayDuration("TTL_CONTRIBUTIONS", def.Contributions),
	}}
}
