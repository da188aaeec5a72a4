//go:build !annotextdebug

package annotated

const debugChecks = false
