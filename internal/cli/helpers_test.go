package cli

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// isolate points HOME and cwd at fresh temp dirs so no real config leaks in,
// and resets the global flags commands read.
func isolate(t *testing.T) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)

	origCfg, origNoColor, origMachine := cfgFile, noColor, machineMode
	origProfile := lipgloss.ColorProfile()
	t.Cleanup(func() {
		cfgFile, noColor, machineMode = origCfg, origNoColor, origMachine
		lipgloss.SetColorProfile(origProfile)
	})
	cfgFile, noColor, machineMode = "", true, false
	lipgloss.SetColorProfile(termenv.Ascii)
	return dir
}
