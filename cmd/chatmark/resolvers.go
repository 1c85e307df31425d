package main

import (
	"fmt"
	"os"

	"github.com/chatmark/go-chatmark/render"

	"github.com/goccy/go-yaml"
)

// resolverTable is the YAML file format accepted by -r: static lookup
// tables mapping ids to display values.
//
//	emojis:
//	  "123456": /emojis/123456.png
//	users:
//	  "111": Jane Doe
//	roles:
//	  "222": {name: admin, color: "#ff0000"}
//	channels:
//	  "333": general
type resolverTable struct {
	Emojis   map[string]string    `yaml:"emojis"`
	Users    map[string]string    `yaml:"users"`
	Roles    map[string]roleEntry `yaml:"roles"`
	Channels map[string]string    `yaml:"channels"`
}

type roleEntry struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
}

func loadResolvers(path string) (*resolverTable, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	tbl := &resolverTable{}
	if err := yaml.Unmarshal(d, tbl); err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", path, err)
	}
	return tbl, nil
}

func (t *resolverTable) renderOpts() []render.RenderOption {
	if t == nil {
		return nil
	}
	return []render.RenderOption{
		render.EmojiResolver(stringLookup(t.Emojis)),
		render.UserResolver(stringLookup(t.Users)),
		render.RoleResolver(t.roleLookup),
		render.ChannelResolver(stringLookup(t.Channels)),
	}
}

// stringLookup echoes the id back when the table has no entry, matching
// the identity default.
func stringLookup(m map[string]string) render.Resolver {
	return func(id string) (string, string) {
		if v, ok := m[id]; ok {
			return v, ""
		}
		return id, ""
	}
}

func (t *resolverTable) roleLookup(id string) (string, string) {
	if e, ok := t.Roles[id]; ok {
		return e.Name, e.Color
	}
	return id, ""
}
