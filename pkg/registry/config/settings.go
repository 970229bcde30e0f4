package config

import "fmt"

// Settings selects and wires the finder that registries start with.
type Settings struct {
	Finder        FinderSettings
	Directory     DirectorySettings
	Log           LogSettings
	Observability ObservabilitySettings
}

// FinderSettings chooses the finder variant.
type FinderSettings struct {
	// Kind is "always", "never", or "directory".
	Kind string
	// FirstName is the name the always finder fabricates.
	FirstName string
}

// DirectorySettings configures the store behind the directory finder.
type DirectorySettings struct {
	// Driver is "memory" or "sqlite".
	Driver string
	// Path is the SQLite database file.
	Path string
	// People are written to the store at startup.
	People []Person
}

// Person is a seed entry for the directory.
type Person struct {
	FirstName string
	LastName  string
}

// LogSettings configures the slog logger.
type LogSettings struct {
	Level  string
	Format string
}

// ObservabilitySettings toggles OpenTelemetry instrumentation.
type ObservabilitySettings struct {
	Metrics bool
	Tracing bool
}

// Defaults returns the settings used for any key a file leaves out.
func Defaults() Settings {
	return Settings{
		Finder:    FinderSettings{Kind: "always", FirstName: "John"},
		Directory: DirectorySettings{Driver: "memory"},
		Log:       LogSettings{Level: "info", Format: "text"},
	}
}

// Parse reads Settings out of cfg, falling back to Defaults.
// Seed people without a last name are rejected.
func Parse(cfg Config) (Settings, error) {
	s := Defaults()

	finder := cfg.Section("finder")
	s.Finder.Kind = finder.String("kind", s.Finder.Kind)
	s.Finder.FirstName = finder.String("first_name", s.Finder.FirstName)

	dir := cfg.Section("directory")
	s.Directory.Driver = dir.String("driver", s.Directory.Driver)
	s.Directory.Path = dir.String("path", s.Directory.Path)
	for i, p := range dir.List("people") {
		person := Person{
			FirstName: p.String("first_name", ""),
			LastName:  p.String("last_name", ""),
		}
		if person.LastName == "" {
			return Settings{}, fmt.Errorf("directory.people[%d]: last_name is required", i)
		}
		s.Directory.People = append(s.Directory.People, person)
	}

	log := cfg.Section("log")
	s.Log.Level = log.String("level", s.Log.Level)
	s.Log.Format = log.String("format", s.Log.Format)

	obs := cfg.Section("observability")
	s.Observability.Metrics = obs.Bool("metrics", s.Observability.Metrics)
	s.Observability.Tracing = obs.Bool("tracing", s.Observability.Tracing)

	return s, nil
}
