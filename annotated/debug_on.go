//go:build annotextdebug

package annotated

const debugChecks = true
