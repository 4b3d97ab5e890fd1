package aaf

import (
	"log/slog"

	"aafkit/internal/aaf/aaferr"
	"aafkit/internal/aaf/types"
	"aafkit/internal/logging"
)

// HeaderInfo carries the file-level Header properties.
type HeaderInfo struct {
	ByteOrder          uint16
	LastModified       types.TimeStamp
	Version            types.VersionType
	ObjectModelVersion uint32
	OperationalPattern types.AUID
}

// Identification describes the application that wrote the file. Only the
// first entry of Header::IdentificationList is kept.
type Identification struct {
	CompanyName          string
	ProductName          string
	ProductVersion       types.ProductVersion
	ProductVersionString string
	ProductID            types.AUID
	Date                 types.TimeStamp
	ToolkitVersion       types.ProductVersion
	Platform             string
	GenerationAUID       types.AUID
}

func (f *File) readHeader() {
	h := f.Header
	var err error
	if f.Info.ByteOrder, err = h.Uint16(types.PIDHeaderByteOrder); err != nil {
		f.missing(err)
	}
	if f.Info.LastModified, err = h.TimeStamp(types.PIDHeaderLastModified); err != nil {
		f.missing(err)
	}
	if f.Info.Version, err = h.VersionType(types.PIDHeaderVersion); err != nil {
		f.missing(err)
	}
	if f.Info.ObjectModelVersion, err = h.Uint32(types.PIDHeaderObjectModelVersion); err != nil {
		f.missing(err)
	}
	if f.Info.OperationalPattern, err = h.AUID(types.PIDHeaderOperationalPattern); err != nil {
		f.missing(err)
	}
}

func (f *File) readIdentification() {
	list, err := f.Header.Collection(types.PIDHeaderIdentificationList)
	if err != nil {
		f.missing(err)
		return
	}
	if len(list) == 0 {
		f.missing(aaferr.Missing(f.Header.Path(), "Header::IdentificationList[0]"))
		return
	}
	obj := list[0]
	id := &f.Identification
	if id.CompanyName, err = obj.Text(types.PIDIdentificationCompanyName); err != nil {
		f.missing(err)
	}
	if id.ProductName, err = obj.Text(types.PIDIdentificationProductName); err != nil {
		f.missing(err)
	}
	if id.ProductVersion, err = obj.ProductVersion(types.PIDIdentificationProductVersion); err != nil {
		f.missing(err)
	}
	if id.ProductVersionString, err = obj.Text(types.PIDIdentificationProductVersionString); err != nil {
		f.missing(err)
	}
	if id.ProductID, err = obj.AUID(types.PIDIdentificationProductID); err != nil {
		f.missing(err)
	}
	if id.Date, err = obj.TimeStamp(types.PIDIdentificationDate); err != nil {
		f.missing(err)
	}
	if id.ToolkitVersion, err = obj.ProductVersion(types.PIDIdentificationToolkitVersion); err != nil {
		f.missing(err)
	}
	if id.Platform, err = obj.Text(types.PIDIdentificationPlatform); err != nil {
		f.missing(err)
	}
	if id.GenerationAUID, err = obj.AUID(types.PIDIdentificationGenerationAUID); err != nil {
		f.missing(err)
	}
}

// missing records an absent Header or Identification entry. Optional ones
// are only noted at debug level.
func (f *File) missing(err error) {
	if aaferr.IsAbsent(err) {
		f.logger.Debug("optional header property absent", logging.Error(err))
		return
	}
	f.sess.Diagnostics().Record(slog.LevelWarn, f.Header.Path(), err)
	f.logger.Warn("header property unavailable", logging.Error(err))
}
