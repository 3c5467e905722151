package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/recordkit/internal/config"
	"github.com/vk/recordkit/internal/ctxlog"
	"github.com/vk/recordkit/internal/fsutil"
	"github.com/vk/recordkit/internal/schema"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL definition loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every .hcl file found under paths and collects their record
// blocks into one model. Files are read in sorted path order.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := fsutil.CollectFiles(paths, ".hcl")
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	model := &config.Model{}
	parser := hclparse.NewParser()

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root schema.File
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, rec := range root.Records {
			def, err := translateRecord(file, rec)
			if err != nil {
				return nil, err
			}
			model.Records = append(model.Records, def)
		}
		logger.Debug("Loaded definitions from HCL file.", "file", file, "records", len(root.Records))
	}

	logger.Debug("HCL loading complete.", "records", len(model.Records))
	return model, nil
}
