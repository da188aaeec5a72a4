// Package config loads annotext settings from a TOML file and the
// environment.
//
// Precedence, lowest first: built-in defaults, the config file, then
// ANNOTEXT_* environment variables. A missing config file is not an error.
//
//	[editor]
//	show_line_numbers = true
//	scroll_margin = 0
//
//	[search]
//	highlight_all = true
//
//	[log]
//	level = "info"
//	file = ""
//
//	[theme.keyword]
//	foreground = "#6495ed"
package config
