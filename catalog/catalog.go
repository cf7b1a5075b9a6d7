package catalog

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/hupe1980/dptx"
	"github.com/hupe1980/dptx/codec"
	"golang.org/x/sync/errgroup"
)

// ErrUnknownFormat is returned for files without a supported extension.
var ErrUnknownFormat = errors.New("catalog: unknown file format")

// Entry is the file representation of one subtype.
type Entry struct {
	ID          string   `json:"id" yaml:"id" toml:"id"`
	Name        string   `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
	Flags       []string `json:"flags" yaml:"flags" toml:"flags"`
}

// File is the top-level document of a definition file.
type File struct {
	Subtypes []Entry `json:"subtypes" yaml:"subtypes" toml:"subtypes"`
}

// Subtype validates the entry and builds its descriptor.
func (e Entry) Subtype() (*dptx.Subtype, error) {
	desc := e.Description
	if desc == "" {
		desc = dptx.DescriptionOf(e.Name)
	}
	return dptx.NewSubtype(e.ID, desc, e.Flags...)
}

// EntryOf returns the file representation of a subtype.
func EntryOf(st *dptx.Subtype) Entry {
	return Entry{ID: st.ID(), Description: st.Description(), Flags: st.Flags()}
}

// Decode parses a definition document with the given codec and returns its
// subtypes. Nothing is registered.
func Decode(c codec.Codec, data []byte) ([]*dptx.Subtype, error) {
	var f File
	if err := c.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("catalog: decode %s: %w", c.Name(), err)
	}
	subtypes := make([]*dptx.Subtype, 0, len(f.Subtypes))
	seen := make(map[string]struct{}, len(f.Subtypes))
	for i, e := range f.Subtypes {
		if _, dup := seen[e.ID]; dup {
			return nil, fmt.Errorf("catalog: subtype[%d]: duplicate id %q", i, e.ID)
		}
		seen[e.ID] = struct{}{}
		st, err := e.Subtype()
		if err != nil {
			return nil, fmt.Errorf("catalog: subtype[%d]: %w", i, err)
		}
		subtypes = append(subtypes, st)
	}
	return subtypes, nil
}

// Encode renders subtypes as a definition document.
func Encode(c codec.Codec, subtypes []*dptx.Subtype) ([]byte, error) {
	f := File{Subtypes: make([]Entry, 0, len(subtypes))}
	for _, st := range subtypes {
		f.Subtypes = append(f.Subtypes, EntryOf(st))
	}
	return c.Marshal(f)
}

// ReadFile decodes the definition file at path. Nothing is registered.
func ReadFile(path string) ([]*dptx.Subtype, error) {
	c, ok := codec.ByExtension(path)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: load failed (%s): %w", path, err)
	}
	subtypes, err := Decode(c, data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return subtypes, nil
}

// LoadAll reads every file concurrently and registers the subtypes of all
// files once every file decoded successfully. Files are applied in argument
// order, so a later file overrides an id defined by an earlier one.
func LoadAll(ctx context.Context, logger *dptx.Logger, paths ...string) ([]*dptx.Subtype, error) {
	if logger == nil {
		logger = dptx.NoopLogger()
	}

	results := make([][]*dptx.Subtype, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			subtypes, err := ReadFile(path)
			if err != nil {
				logger.LogRegister(gctx, path, 0, err)
				return err
			}
			results[i] = subtypes
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []*dptx.Subtype
	for i, subtypes := range results {
		for _, st := range subtypes {
			dptx.Register(st)
		}
		logger.LogRegister(ctx, paths[i], len(subtypes), nil)
		all = append(all, subtypes...)
	}
	return all, nil
}
