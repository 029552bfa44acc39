// Package config provides loading and environment overlay for stamp
// configuration. It exposes a Default() baseline, JSON file loading, and a
// STAMP_* env overlay applied on top.
//
// Example:
//
//	cfg := config.Default()
//	if fileCfg, err := config.Load("/etc/stamp.json"); err == nil {
//	    cfg = fileCfg
//	}
//	config.FromEnv(&cfg)
//	if err := cfg.Validate(); err != nil {
//	    // bad machine id etc.
//	}
package config
