package engine

import (
	"github.com/spaghettifunk/anima-backends/engine/config"
	"github.com/spaghettifunk/anima-backends/engine/platform"
)

type ApplicationConfig struct {
	// The application name used in windowing, if applicable.
	Name string
	// Settings loaded from the configuration file.
	Settings config.AppConfig
}

// WindowConfig returns the window settings, titled with the application
// name unless the configuration names the window itself.
func (c *ApplicationConfig) WindowConfig() platform.WindowConfig {
	w := c.Settings.Window
	if w.Title == "" || w.Title == platform.DefaultWindowConfig().Title {
		if c.Name != "" {
			w.Title = c.Name
		}
	}
	return w
}
