// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package scaffold

// FileTreeDescription is a coarse description of a module directory: a
// mapping from slash-separated relative path to a descriptor of what the
// file contains. It deliberately carries structure only (which blocks and
// sections exist), never content, so the validator can stay independent of
// how the tree was obtained.
type FileTreeDescription map[string]*FileDescription

// FileDescription describes one file in a tree. A present file with no
// sections and no blocks is an empty (or unrecognized) file, which is
// still "present" for scaffold purposes.
type FileDescription struct {
	// Sections lists the markdown section headers detected in the file,
	// without their leading hash marks, in document order.
	Sections []string

	// Blocks lists the top-level configuration blocks detected in the
	// file, in document order.
	Blocks []BlockDescription
}

// BlockDescription describes one top-level block of a configuration file,
// for example `resource "aws_vpc" "this"` or `variable "subnets"`.
type BlockDescription struct {
	// Type is the block type: "resource", "variable", "output",
	// "terraform" and so on.
	Type string

	// Labels are the block's labels in order; for resources that is the
	// resource type followed by the resource name.
	Labels []string

	// Attributes lists the names of attributes set directly in the block
	// body. Used for shape checks such as "every variable block has a
	// description".
	Attributes []string
}

// HasSection reports whether the file declares the given markdown section.
func (d *FileDescription) HasSection(name string) bool {
	if d == nil {
		return false
	}
	for _, s := range d.Sections {
		if s == name {
			return true
		}
	}
	return false
}

// HasAttribute reports whether the block body sets the given attribute.
func (b BlockDescription) HasAttribute(name string) bool {
	for _, a := range b.Attributes {
		if a == name {
			return true
		}
	}
	return false
}
