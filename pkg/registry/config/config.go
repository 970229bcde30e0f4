package config

// Config wraps a decoded map for type-safe value extraction.
// Accessors return the default value if the key is missing or the value
// has the wrong type.
type Config struct {
	data map[string]any
}

// New creates a Config from the given map.
// If data is nil, an empty Config is returned.
func New(data map[string]any) Config {
	if data == nil {
		data = make(map[string]any)
	}
	return Config{data: data}
}

// String returns the string value for key, or defaultVal.
func (c Config) String(key, defaultVal string) string {
	if s, ok := c.data[key].(string); ok {
		return s
	}
	return defaultVal
}

// Bool returns the boolean value for key, or defaultVal.
func (c Config) Bool(key string, defaultVal bool) bool {
	if b, ok := c.data[key].(bool); ok {
		return b
	}
	return defaultVal
}

// Section returns the nested mapping under key, or an empty Config.
func (c Config) Section(key string) Config {
	if m := asMap(c.data[key]); m != nil {
		return New(m)
	}
	return New(nil)
}

// List returns the sequence of mappings under key. Elements that are not
// mappings are skipped. Returns nil if key is missing or not a sequence.
func (c Config) List(key string) []Config {
	items, ok := c.data[key].([]any)
	if !ok {
		return nil
	}
	out := make([]Config, 0, len(items))
	for _, item := range items {
		if m := asMap(item); m != nil {
			out = append(out, New(m))
		}
	}
	return out
}

// asMap accepts both map[string]any (yaml.v3, encoding/json) and
// map[any]any (hand-built maps with untyped keys).
func asMap(v any) map[string]any {
	switch m := v.(type) {
	case map[string]any:
		return m
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			if s, ok := k.(string); ok {
				out[s] = val
			}
		}
		return out
	}
	return nil
}
