// Package config loads xApp configuration files.
//
// The bootstrap layer stores the configuration path verbatim; this package
// is the collaborator that actually parses it. Files are YAML (or JSON),
// loaded through viper with environment-variable overrides under the XAPP_
// prefix and optional .env support via godotenv:
//
//	var cfg MyConfig
//	if err := config.Load(path, &cfg); err != nil { ... }
//
// Config structs follow the ApplyDefaults/Validate convention and may carry
// validator/v10 struct tags, checked by Validate.
package config
