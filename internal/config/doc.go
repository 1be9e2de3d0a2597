// Package config provides configuration loading for pixelstorm.
//
// Configuration is read from a TOML or YAML file, chosen by extension,
// and merged over built-in defaults. A missing file is not an error; the
// defaults apply. A Watcher can monitor the file and deliver reloaded
// configurations while the application runs.
package config
