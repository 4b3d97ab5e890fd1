package aaf

import "strings"

// Vendor identifies the application family that produced a file. Some
// producers need interpretation workarounds.
type Vendor int

const (
	VendorUnknown Vendor = iota
	VendorResolve
	VendorProTools
	VendorAvid
)

func (v Vendor) String() string {
	switch v {
	case VendorResolve:
		return "DaVinci Resolve"
	case VendorProTools:
		return "Pro Tools"
	case VendorAvid:
		return "Avid Media Composer"
	default:
		return "unknown"
	}
}

// DetectVendor maps an Identification ProductName onto a Vendor.
func DetectVendor(productName string) Vendor {
	name := strings.TrimSpace(productName)
	switch {
	case strings.EqualFold(name, "DaVinci Resolve"):
		return VendorResolve
	case strings.EqualFold(name, "Pro Tools"), strings.HasPrefix(name, "Pro Tools"):
		return VendorProTools
	case strings.Contains(name, "Media Composer"), strings.HasPrefix(name, "Avid"):
		return VendorAvid
	default:
		return VendorUnknown
	}
}
