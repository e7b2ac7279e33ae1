// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

// Package treescan builds coarse scaffold.FileTreeDescription snapshots
// from a real (or in-memory) filesystem. It is the filesystem collaborator
// of the advisory core: the core itself never touches a filesystem.
//
// Scanning is deliberately shallow. Configuration files are parsed just
// far enough to list their top-level blocks and each block's attribute
// names; markdown files are scanned for section headers. Unparseable
// content demotes a file to an empty descriptor with a warning rather
// than failing the scan.
package treescan

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/spf13/afero"

	"github.com/hashicorp/terraform-module-advisor/internal/moddiags"
	"github.com/hashicorp/terraform-module-advisor/internal/scaffold"
)

// Scan walks the tree rooted at root and describes every regular file in
// it, keyed by slash-separated path relative to root. Hidden directories
// (but not hidden files) are skipped, which covers .terraform and .git.
func Scan(fsys afero.Fs, root string) (scaffold.FileTreeDescription, moddiags.Diagnostics) {
	var diags moddiags.Diagnostics
	tree := make(scaffold.FileTreeDescription)

	walkErr := afero.Walk(fsys, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if path != root && strings.HasPrefix(info.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		desc, fileDiags := describeFile(fsys, path, rel)
		diags = diags.Append(fileDiags)
		tree[rel] = desc
		return nil
	})
	if walkErr != nil {
		diags = diags.Append(moddiags.Sourceless(
			moddiags.Error,
			"Failed to scan module directory",
			fmt.Sprintf("Could not walk %s: %s.", root, walkErr),
		))
		return nil, diags
	}

	return tree, diags
}

func describeFile(fsys afero.Fs, path, rel string) (*scaffold.FileDescription, moddiags.Diagnostics) {
	var diags moddiags.Diagnostics
	desc := &scaffold.FileDescription{}

	switch {
	case strings.HasSuffix(rel, ".tf"):
		src, err := afero.ReadFile(fsys, path)
		if err != nil {
			diags = diags.Append(moddiags.Sourceless(
				moddiags.Warning,
				"Unreadable configuration file",
				fmt.Sprintf("Could not read %s: %s; treating it as empty.", rel, err),
			))
			return desc, diags
		}
		blocks, parseDiags := describeConfig(src, rel)
		desc.Blocks = blocks
		diags = diags.Append(parseDiags)

	case strings.HasSuffix(rel, ".md"):
		sections, err := describeMarkdown(fsys, path)
		if err != nil {
			diags = diags.Append(moddiags.Sourceless(
				moddiags.Warning,
				"Unreadable markdown file",
				fmt.Sprintf("Could not read %s: %s; treating it as empty.", rel, err),
			))
			return desc, diags
		}
		desc.Sections = sections
	}

	return desc, diags
}

// describeConfig lists the top-level blocks of one .tf file along with the
// attribute names set directly in each block body.
func describeConfig(src []byte, rel string) ([]scaffold.BlockDescription, moddiags.Diagnostics) {
	var diags moddiags.Diagnostics

	file, parseDiags := hclsyntax.ParseConfig(src, rel, hcl.InitialPos)
	if parseDiags.HasErrors() {
		diags = diags.Append(moddiags.Sourceless(
			moddiags.Warning,
			"Unparseable configuration file",
			fmt.Sprintf("%s has syntax errors (%s); its blocks are not described.", rel, parseDiags.Error()),
		))
		return nil, diags
	}

	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		// Can't happen with hclsyntax.ParseConfig, but don't describe
		// what we can't see into.
		return nil, diags
	}

	var blocks []scaffold.BlockDescription
	for _, block := range body.Blocks {
		desc := scaffold.BlockDescription{
			Type:   block.Type,
			Labels: append([]string(nil), block.Labels...),
		}
		for name := range block.Body.Attributes {
			desc.Attributes = append(desc.Attributes, name)
		}
		// The parser hands attributes back as a map; sort so identical
		// files always produce identical descriptors.
		sort.Strings(desc.Attributes)
		blocks = append(blocks, desc)
	}
	return blocks, diags
}

// describeMarkdown lists the section headers of a markdown file, with
// leading hash marks stripped. Fenced code blocks are skipped so that
// shell comments don't register as headers.
func describeMarkdown(fsys afero.Fs, path string) ([]string, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var sections []string
	inFence := false
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "```") {
			inFence = !inFence
			continue
		}
		if inFence || !strings.HasPrefix(line, "#") {
			continue
		}
		header := strings.TrimLeft(line, "#")
		if header == "" || !strings.HasPrefix(header, " ") {
			continue
		}
		sections = append(sections, strings.TrimSpace(header))
	}
	return sections, scanner.Err()
}
