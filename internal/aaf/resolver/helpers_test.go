package resolver

import (
	"testing"

	"aafkit/internal/aaf/property"
	"aafkit/internal/testsupport"
)

func mustWeakRef(t *testing.T, keyPID uint16, key []byte) property.WeakRef {
	t.Helper()
	ref, err := property.DecodeWeakRef(testsupport.WeakRefBytes(0, keyPID, key))
	if err != nil {
		t.Fatalf("DecodeWeakRef: %v", err)
	}
	return ref
}
