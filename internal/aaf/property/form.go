package property

import "fmt"

// StoredForm tells how a property value is persisted.
type StoredForm uint16

const (
	FormData                  StoredForm = 0x82
	FormDataStream            StoredForm = 0x42
	FormStrongRef             StoredForm = 0x22
	FormStrongRefVector       StoredForm = 0x32
	FormStrongRefSet          StoredForm = 0x3a
	FormWeakRef               StoredForm = 0x02
	FormWeakRefVector         StoredForm = 0x03
	FormWeakRefSet            StoredForm = 0x0b
	FormWeakRefStoredObjectID StoredForm = 0x12
	FormUniqueObjectID        StoredForm = 0x31
	FormOpaqueStream          StoredForm = 0x40
)

var formNames = map[StoredForm]string{
	FormData:                  "Data",
	FormDataStream:            "DataStream",
	FormStrongRef:             "StrongRef",
	FormStrongRefVector:       "StrongRefVector",
	FormStrongRefSet:          "StrongRefSet",
	FormWeakRef:               "WeakRef",
	FormWeakRefVector:         "WeakRefVector",
	FormWeakRefSet:            "WeakRefSet",
	FormWeakRefStoredObjectID: "WeakRefStoredObjectID",
	FormUniqueObjectID:        "UniqueObjectID",
	FormOpaqueStream:          "OpaqueStream",
}

func (f StoredForm) String() string {
	if name, ok := formNames[f]; ok {
		return name
	}
	return fmt.Sprintf("StoredForm(0x%02x)", uint16(f))
}

// Known reports whether f is one of the defined stored forms.
func (f StoredForm) Known() bool {
	_, ok := formNames[f]
	return ok
}

// IsStrong reports whether values of this form name owned child objects.
func (f StoredForm) IsStrong() bool {
	return f == FormStrongRef || f == FormStrongRefSet || f == FormStrongRefVector
}
