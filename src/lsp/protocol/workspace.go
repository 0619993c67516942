// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package protocol

import "github.com/H0llyW00dzZ/lsp-message-codec/src/lsp/codec"

// Resource operation kinds carried in the constant kind member.
const (
	ResourceOperationCreate = "create"
	ResourceOperationDelete = "delete"
)

// CreateOrRenameFileOptions controls create and rename operations.
type CreateOrRenameFileOptions struct {
	Overwrite      codec.Optional[bool]
	IgnoreIfExists codec.Optional[bool]
}

// CreateFile is a workspace edit that creates a file. Kind is always "create".
type CreateFile struct {
	Kind    string
	URI     string
	Options codec.Optional[*CreateOrRenameFileOptions]
}

// NewCreateFile returns a CreateFile for uri.
func NewCreateFile(uri string) *CreateFile {
	return &CreateFile{Kind: ResourceOperationCreate, URI: uri}
}

// DeleteFileOptions controls delete operations.
type DeleteFileOptions struct {
	Recursive         codec.Optional[bool]
	IgnoreIfNotExists codec.Optional[bool]
}

// DeleteFile is a workspace edit that deletes a file. Kind is always "delete".
type DeleteFile struct {
	Kind    string
	URI     string
	Options codec.Optional[*DeleteFileOptions]
}

// NewDeleteFile returns a DeleteFile for uri.
func NewDeleteFile(uri string) *DeleteFile {
	return &DeleteFile{Kind: ResourceOperationDelete, URI: uri}
}

// ConfigurationItem selects a configuration section, optionally scoped to a
// resource.
type ConfigurationItem struct {
	ScopeURI codec.Optional[string]
	Section  codec.Optional[string]
}

// ConfigurationParams are the params of workspace/configuration.
type ConfigurationParams struct {
	Items []*ConfigurationItem
}

var (
	createOrRenameFileOptionsSchema = codec.NewSchema("CreateOrRenameFileOptions",
		codec.OptionalField("overwrite", codec.Bool,
			func(o *CreateOrRenameFileOptions) *codec.Optional[bool] { return &o.Overwrite }),
		codec.OptionalField("ignoreIfExists", codec.Bool,
			func(o *CreateOrRenameFileOptions) *codec.Optional[bool] { return &o.IgnoreIfExists }),
	)

	createFileSchema = codec.NewSchema("CreateFile",
		codec.Required("kind", codec.Constant(ResourceOperationCreate), func(f *CreateFile) *string { return &f.Kind }),
		codec.Required("uri", codec.String, func(f *CreateFile) *string { return &f.URI }),
		codec.OptionalField("options", codec.Object(createOrRenameFileOptionsSchema),
			func(f *CreateFile) *codec.Optional[*CreateOrRenameFileOptions] { return &f.Options }),
	)

	deleteFileOptionsSchema = codec.NewSchema("DeleteFileOptions",
		codec.OptionalField("recursive", codec.Bool,
			func(o *DeleteFileOptions) *codec.Optional[bool] { return &o.Recursive }),
		codec.OptionalField("ignoreIfNotExists", codec.Bool,
			func(o *DeleteFileOptions) *codec.Optional[bool] { return &o.IgnoreIfNotExists }),
	)

	deleteFileSchema = codec.NewSchema("DeleteFile",
		codec.Required("kind", codec.Constant(ResourceOperationDelete), func(f *DeleteFile) *string { return &f.Kind }),
		codec.Required("uri", codec.String, func(f *DeleteFile) *string { return &f.URI }),
		codec.OptionalField("options", codec.Object(deleteFileOptionsSchema),
			func(f *DeleteFile) *codec.Optional[*DeleteFileOptions] { return &f.Options }),
	)

	configurationItemSchema = codec.NewSchema("ConfigurationItem",
		codec.OptionalField("scopeUri", codec.String, func(c *ConfigurationItem) *codec.Optional[string] { return &c.ScopeURI }),
		codec.OptionalField("section", codec.String, func(c *ConfigurationItem) *codec.Optional[string] { return &c.Section }),
	)

	configurationParamsSchema = codec.NewSchema("ConfigurationParams",
		codec.Required("items", codec.Array(codec.Object(configurationItemSchema)),
			func(p *ConfigurationParams) *[]*ConfigurationItem { return &p.Items }),
	)
)
