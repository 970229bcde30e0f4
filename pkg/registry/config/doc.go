/*
Package config loads the settings that choose how registries are populated.

# Overview

A file is decoded into a map-backed Config whose accessors return a default
when a key is missing or has the wrong type. Settings reads the known keys
out of a Config:

	finder:
	  kind: directory       # always | never | directory
	  first_name: John      # used by the always finder
	directory:
	  driver: sqlite        # memory | sqlite
	  path: people.db
	  people:
	    - {first_name: Jane, last_name: Roe}
	log:
	  level: info           # debug | info | warn | error
	  format: text          # text | json
	observability:
	  metrics: false
	  tracing: false

# Loading

	settings, err := config.Load("registry.yaml")
	if err != nil {
	    log.Fatal(err)
	}

Load accepts .yaml, .yml, and .json files. Missing keys keep the values from
Defaults.

# Thread Safety

Config is safe for concurrent reads. The underlying map is not modified
after creation.
*/
package config
