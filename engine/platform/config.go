package platform

// WindowConfig describes the window a backend creates on Initialize. Zero
// min/max dimensions mean no limit.
type WindowConfig struct {
	Title       string `toml:"title"`
	Width       int32  `toml:"width"`
	Height      int32  `toml:"height"`
	Fullscreen  bool   `toml:"fullscreen"`
	Resizable   bool   `toml:"resizable"`
	Transparent bool   `toml:"transparent"`
	Antialias   bool   `toml:"antialias"`
	LazyLoop    bool   `toml:"lazy_loop"`
	VSync       bool   `toml:"vsync"`
	MinWidth    int32  `toml:"min_width"`
	MinHeight   int32  `toml:"min_height"`
	MaxWidth    int32  `toml:"max_width"`
	MaxHeight   int32  `toml:"max_height"`
}

func DefaultWindowConfig() WindowConfig {
	return WindowConfig{
		Title:     "Anima",
		Width:     1280,
		Height:    720,
		Resizable: true,
		VSync:     true,
	}
}
