// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package catalog loads and checks files of markup messages.
//
// A catalog is a flat map of message id to markup, stored as JSON, TOML or YAML:
//
//	{"greeting": "Hello, <b>world</b>!"}
package catalog

import (
	"encoding/hex"
	"encoding/json"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/afero"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

type Catalog struct {
	Name     string // usually the path the catalog was loaded from
	messages map[string]string
}

// New returns a catalog holding a copy of messages.
func New(name string, messages map[string]string) *Catalog {
	c := &Catalog{Name: name, messages: make(map[string]string, len(messages))}
	for id, msg := range messages {
		c.messages[id] = msg
	}
	return c
}

// Load reads a catalog from fs. The format is chosen by the file extension.
func Load(fs afero.Fs, path string, options ...Option) (*Catalog, error) {
	var cfg config
	for _, option := range options {
		if err := option(&cfg); err != nil {
			return nil, err
		}
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json", ".toml", ".yaml", ".yml":
	default:
		return nil, &ErrFormat{Path: path, Ext: ext}
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, err
	}

	messages := map[string]string{}
	switch ext {
	case ".json":
		err = json.Unmarshal(data, &messages)
	case ".toml":
		err = toml.Unmarshal(data, &messages)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &messages)
	}
	if err != nil {
		return nil, &ErrDecode{Path: path, Err: err}
	}

	if cfg.normalize {
		for id, msg := range messages {
			messages[id] = norm.NFC.String(msg)
		}
	}

	return &Catalog{Name: path, messages: messages}, nil
}

// Len returns the number of messages.
func (c *Catalog) Len() int {
	return len(c.messages)
}

// IDs returns the message ids in sorted order.
func (c *Catalog) IDs() []string {
	ids := make([]string, 0, len(c.messages))
	for id := range c.messages {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Message returns the markup for id.
func (c *Catalog) Message(id string) (string, bool) {
	msg, ok := c.messages[id]
	return msg, ok
}

// Digest returns the hex BLAKE2b-256 digest of the markup for id,
// or an empty string if there is no such message.
func (c *Catalog) Digest(id string) string {
	msg, ok := c.messages[id]
	if !ok {
		return ""
	}
	sum := blake2b.Sum256([]byte(msg))
	return hex.EncodeToString(sum[:])
}
