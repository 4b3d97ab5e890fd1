package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"aafkit/internal/aaf"
	"aafkit/internal/aaf/types"
)

type fileInfo struct {
	Path                 string `json:"path"`
	ByteOrder            string `json:"byte_order"`
	Version              string `json:"version"`
	ObjectModelVersion   uint32 `json:"object_model_version"`
	OperationalPattern   string `json:"operational_pattern"`
	EditProtocol         bool   `json:"edit_protocol"`
	LastModified         string `json:"last_modified"`
	Company              string `json:"company"`
	Product              string `json:"product"`
	ProductVersion       string `json:"product_version"`
	ToolkitVersion       string `json:"toolkit_version"`
	Platform             string `json:"platform"`
	Vendor               string `json:"vendor"`
	Objects              int    `json:"objects"`
	Mobs                 int    `json:"mobs"`
	CompositionMobs      int    `json:"composition_mobs"`
	MasterMobs           int    `json:"master_mobs"`
	SourceMobs           int    `json:"source_mobs"`
	EssenceData          int    `json:"essence_data"`
	Classes              int    `json:"classes"`
	ClassesDiscovered    int    `json:"classes_discovered"`
	PropertiesDiscovered int    `json:"properties_discovered"`
	Diagnostics          int    `json:"diagnostics"`
}

func newInfoCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "info <file>",
		Short: "Show header, identification and object counts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withFile(cmd, args[0], func(_ context.Context, _ *run, f *aaf.File) error {
				info := describeFile(f)
				if asJSON {
					return writeJSON(cmd, info)
				}
				renderInfo(cmd, info)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of text")
	return cmd
}

func describeFile(f *aaf.File) fileInfo {
	ident := f.Identification
	version := ident.ProductVersionString
	if version == "" && ident.ProductVersion != (types.ProductVersion{}) {
		version = ident.ProductVersion.String()
	}
	info := fileInfo{
		Path:                 f.Path,
		ByteOrder:            byteOrderLabel(f.Info.ByteOrder),
		Version:              f.Info.Version.String(),
		ObjectModelVersion:   f.Info.ObjectModelVersion,
		EditProtocol:         f.IsEditProtocol(),
		LastModified:         formatStamp(f.Info.LastModified),
		Company:              ident.CompanyName,
		Product:              ident.ProductName,
		ProductVersion:       version,
		Platform:             ident.Platform,
		Vendor:               f.Vendor.String(),
		Objects:              len(f.Session().Objects()),
		Mobs:                 len(f.Mobs),
		CompositionMobs:      len(f.MobsOf(types.ClassCompositionMob)),
		MasterMobs:           len(f.MobsOf(types.ClassMasterMob)),
		SourceMobs:           len(f.MobsOf(types.ClassSourceMob)),
		EssenceData:          len(f.EssenceData),
		Classes:              f.Catalog().Len(),
		ClassesDiscovered:    f.MetaStats.ClassesDefined,
		PropertiesDiscovered: f.MetaStats.PropertiesAdded,
		Diagnostics:          f.Diagnostics().Len(),
	}
	if !f.Info.OperationalPattern.IsZero() {
		info.OperationalPattern = types.DefinitionName(f.Info.OperationalPattern)
	}
	if ident.ToolkitVersion != (types.ProductVersion{}) {
		info.ToolkitVersion = ident.ToolkitVersion.String()
	}
	return info
}

func byteOrderLabel(order uint16) string {
	switch order {
	case 0x4949:
		return "little endian"
	case 0x4d4d:
		return "big endian"
	case 0:
		return ""
	default:
		return fmt.Sprintf("0x%04x", order)
	}
}

func renderInfo(cmd *cobra.Command, info fileInfo) {
	file := section{title: "File"}
	file.add("Path", info.Path)
	file.add("Byte order", info.ByteOrder)
	file.add("Version", info.Version)
	file.add("Object model", fmt.Sprint(info.ObjectModelVersion))
	file.add("Operational pattern", info.OperationalPattern)
	file.add("Edit protocol", yesNo(info.EditProtocol))
	file.add("Last modified", info.LastModified)

	ident := section{title: "Identification"}
	ident.add("Company", info.Company)
	ident.add("Product", info.Product)
	ident.add("Product version", info.ProductVersion)
	ident.add("Toolkit version", info.ToolkitVersion)
	ident.add("Platform", info.Platform)
	ident.add("Vendor", info.Vendor)

	contents := section{title: "Contents"}
	contents.add("Objects", fmt.Sprint(info.Objects))
	contents.add("Mobs", fmt.Sprintf("%d (%d composition, %d master, %d source)",
		info.Mobs, info.CompositionMobs, info.MasterMobs, info.SourceMobs))
	contents.add("Essence data", fmt.Sprint(info.EssenceData))
	contents.add("Classes", fmt.Sprintf("%d (%d from MetaDictionary)", info.Classes, info.ClassesDiscovered))
	contents.add("Discovered properties", fmt.Sprint(info.PropertiesDiscovered))
	contents.add("Diagnostics", fmt.Sprint(info.Diagnostics))

	writeSections(cmd.OutOrStdout(), file, ident, contents)
}
