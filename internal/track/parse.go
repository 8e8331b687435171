package track

import (
	"context"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/watercooler-labs/toggl-cli/internal/log"
)

// rawBlock mirrors one block of the document before macro expansion.
type rawBlock struct {
	Workspace   *string  `toml:"workspace"`
	Description *string  `toml:"description"`
	Project     *string  `toml:"project"`
	Task        *string  `toml:"task"`
	Tags        []string `toml:"tags"`
	Billable    *bool    `toml:"billable"`
}

type parseOptions struct {
	strict bool
	path   string
}

// ParseOption configures Parse.
type ParseOption func(*parseOptions)

// Strict makes a macro failure in the default block a parse error instead
// of an absent field.
func Strict() ParseOption {
	return func(o *parseOptions) { o.strict = true }
}

// withPath sets the file path reported in errors.
func withPath(path string) ParseOption {
	return func(o *parseOptions) { o.path = path }
}

// Load reads and parses the config at loc.
func Load(ctx context.Context, loc Location, r *Resolver, opts ...ParseOption) (*TrackConfig, error) {
	data, err := os.ReadFile(loc.File)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrFileNotFound
		}
		return nil, fmt.Errorf("failed to read track config: %w", err)
	}
	log.FromContext(ctx).Debug("loading track config", "file", loc.File, "root", loc.Root, "global", loc.Global)
	return Parse(ctx, data, r, append([]ParseOption{withPath(loc.File)}, opts...)...)
}

// Parse decodes a config document and expands its macros.
//
// Syntax errors, duplicate keys or blocks, unknown fields, wrongly typed
// values and invalid patterns fail with *ParseError. A failing macro only
// drops the affected value and is recorded in Diagnostics.
func Parse(ctx context.Context, data []byte, r *Resolver, opts ...ParseOption) (*TrackConfig, error) {
	var o parseOptions
	for _, opt := range opts {
		opt(&o)
	}
	parseErr := func(err error) error {
		return &ParseError{Path: o.path, Err: err}
	}

	var blocks map[string]rawBlock
	md, err := toml.Decode(string(data), &blocks)
	if err != nil {
		return nil, parseErr(err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		fields := make([]string, len(undecoded))
		for i, k := range undecoded {
			fields[i] = k.String()
		}
		return nil, parseErr(fmt.Errorf("unknown field(s): %s", strings.Join(fields, ", ")))
	}

	cfg := &TrackConfig{}
	for _, pattern := range blockOrder(md) {
		raw := blocks[pattern]

		if pattern == DefaultPattern {
			bc, diags := expand(ctx, r, pattern, raw)
			if o.strict && len(diags) > 0 {
				return nil, parseErr(fmt.Errorf("default block: %s: %w", diags[0].Field, diags[0].Err))
			}
			cfg.Default = bc
			cfg.Diagnostics = append(cfg.Diagnostics, diags...)
			continue
		}

		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, parseErr(fmt.Errorf("invalid branch pattern %q: %w", pattern, err))
		}
		bc, diags := expand(ctx, r, pattern, raw)
		cfg.Rules = append(cfg.Rules, Rule{Pattern: pattern, Config: bc, re: re})
		cfg.Diagnostics = append(cfg.Diagnostics, diags...)
	}

	for _, d := range cfg.Diagnostics {
		log.FromContext(ctx).Debug("dropped value", "block", d.Block, "field", d.Field, "err", d.Err)
	}
	return cfg, nil
}

// blockOrder returns the top-level keys in order of first appearance.
// Dotted keys ("^feat".billable = true) count for their first segment.
func blockOrder(md toml.MetaData) []string {
	seen := make(map[string]bool)
	var order []string
	for _, key := range md.Keys() {
		if len(key) == 0 || seen[key[0]] {
			continue
		}
		seen[key[0]] = true
		order = append(order, key[0])
	}
	return order
}

// expand runs every string of a block through the resolver.
func expand(ctx context.Context, r *Resolver, block string, raw rawBlock) (BranchConfig, []Diagnostic) {
	var diags []Diagnostic
	field := func(name string, v *string) *string {
		if v == nil {
			return nil
		}
		out, err := r.Process(ctx, *v)
		if err != nil {
			diags = append(diags, Diagnostic{Block: block, Field: name, Err: err})
			return nil
		}
		return &out
	}

	bc := BranchConfig{
		Workspace:   field("workspace", raw.Workspace),
		Description: field("description", raw.Description),
		Project:     field("project", raw.Project),
		Task:        field("task", raw.Task),
		Billable:    raw.Billable != nil && *raw.Billable,
	}

	if raw.Tags != nil {
		bc.Tags = make([]string, 0, len(raw.Tags))
		for i, tag := range raw.Tags {
			if v := field("tags["+strconv.Itoa(i)+"]", &tag); v != nil {
				bc.Tags = append(bc.Tags, *v)
			}
		}
	}
	return bc, diags
}
