package table

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/slip44/internal/coin"
	"github.com/specialistvlad/slip44/internal/ctxlog"
	"github.com/specialistvlad/slip44/internal/fsutil"
)

// Extension is the file extension of table files.
const Extension = ".hcl"

// Loader reads coin entries from HCL table files.
type Loader struct{}

// NewLoader creates a new table loader.
func NewLoader() *Loader {
	return &Loader{}
}

// fileRoot is the top-level structure of a table file. Anything other than
// coin blocks is rejected.
type fileRoot struct {
	Coins []*coinBlock `hcl:"coin,block"`
}

// coinBlock is a single 'coin' block. ids is decoded by hand so that every
// element can be range checked with a precise diagnostic.
type coinBlock struct {
	Key             string         `hcl:"key,label"`
	IDs             hcl.Expression `hcl:"ids"`
	Name            string         `hcl:"name"`
	Link            string         `hcl:"link,optional"`
	Symbol          string         `hcl:"symbol,optional"`
	DuplicateSymbol string         `hcl:"duplicate_symbol,optional"`
}

// Load reads every table file found under paths, in order, and returns their
// entries concatenated.
func (l *Loader) Load(ctx context.Context, paths ...string) ([]coin.Entry, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Table loader started.", "path_count", len(paths))

	files, err := fsutil.FindFiles(Extension, paths...)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no %s table files found in %v", Extension, paths)
	}
	logger.Debug("Discovered table files.", "count", len(files))

	parser := hclparse.NewParser()
	var entries []coin.Entry
	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		fileEntries, err := l.decode(hclFile, file)
		if err != nil {
			return nil, err
		}
		logger.Debug("Loaded table file.", "file", file, "entries", len(fileEntries))
		entries = append(entries, fileEntries...)
	}

	logger.Debug("Table loading complete.", "entries", len(entries))
	return entries, nil
}

// Parse decodes a single table held in memory. filename is only used in
// diagnostics.
func (l *Loader) Parse(ctx context.Context, src []byte, filename string) ([]coin.Entry, error) {
	logger := ctxlog.FromContext(ctx)

	hclFile, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}

	entries, err := l.decode(hclFile, filename)
	if err != nil {
		return nil, err
	}
	logger.Debug("Parsed table.", "file", filename, "entries", len(entries))
	return entries, nil
}

func (l *Loader) decode(hclFile *hcl.File, filename string) ([]coin.Entry, error) {
	var root fileRoot
	diags := gohcl.DecodeBody(hclFile.Body, nil, &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	var allDiags hcl.Diagnostics
	entries := make([]coin.Entry, 0, len(root.Coins))
	for _, block := range root.Coins {
		ids, idDiags := decodeIDs(block.IDs)
		allDiags = append(allDiags, idDiags...)
		if idDiags.HasErrors() {
			continue // keep collecting diagnostics from the other blocks
		}

		entries = append(entries, coin.Entry{
			Key:             block.Key,
			IDs:             ids,
			Name:            block.Name,
			Link:            block.Link,
			Symbol:          block.Symbol,
			DuplicateSymbol: block.DuplicateSymbol,
		})
	}

	if allDiags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, allDiags)
	}
	return entries, nil
}
