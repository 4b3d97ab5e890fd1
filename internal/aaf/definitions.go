package aaf

import (
	"aafkit/internal/aaf/aaferr"
	"aafkit/internal/aaf/property"
	"aafkit/internal/aaf/resolver"
	"aafkit/internal/aaf/types"
)

// DataDefinition resolves a weak reference held by obj into
// Dictionary::DataDefinitions and returns the definition's identification.
func (f *File) DataDefinition(obj *resolver.Object, pid uint16) (types.AUID, error) {
	return f.definition(obj, pid, types.PIDDictionaryDataDefinitions)
}

// OperationDefinition resolves obj's pid into Dictionary::OperationDefinitions.
func (f *File) OperationDefinition(obj *resolver.Object, pid uint16) (types.AUID, error) {
	return f.definition(obj, pid, types.PIDDictionaryOperationDefinitions)
}

// ParameterDefinition resolves obj's pid into Dictionary::ParameterDefinitions.
func (f *File) ParameterDefinition(obj *resolver.Object, pid uint16) (types.AUID, error) {
	return f.definition(obj, pid, types.PIDDictionaryParameterDefinitions)
}

// InterpolationDefinition resolves obj's pid into
// Dictionary::InterpolationDefinitions.
func (f *File) InterpolationDefinition(obj *resolver.Object, pid uint16) (types.AUID, error) {
	return f.definition(obj, pid, types.PIDDictionaryInterpolationDefinitions)
}

// definition falls back to the weak reference key when the dictionary does
// not carry the referenced definition; producers routinely omit well-known
// definitions.
func (f *File) definition(obj *resolver.Object, pid, setPID uint16) (types.AUID, error) {
	ref, err := obj.WeakRef(pid)
	if err != nil {
		return types.AUID{}, err
	}
	return f.resolveDefinition(obj, ref, setPID)
}

func (f *File) resolveDefinition(obj *resolver.Object, ref property.WeakRef, setPID uint16) (types.AUID, error) {
	if f.Dictionary != nil {
		if def, err := f.sess.ResolveWeak(f.Dictionary, setPID, ref); err == nil {
			return def.AUID(types.PIDDefinitionObjectIdentification)
		}
	}
	if ref.IdentificationPID != types.PIDDefinitionObjectIdentification {
		return types.AUID{}, aaferr.Wrap(aaferr.ErrReferenceResolution, "aaf", "resolve definition",
			obj.Path(), nil)
	}
	return types.ParseAUID(ref.Identification)
}

// OperationDefinitions returns the members of Dictionary::OperationDefinitions.
func (f *File) OperationDefinitions() []*resolver.Object {
	if f.Dictionary == nil || !f.Dictionary.Has(types.PIDDictionaryOperationDefinitions) {
		return nil
	}
	defs, err := f.Dictionary.Collection(types.PIDDictionaryOperationDefinitions)
	if err != nil {
		return nil
	}
	return defs
}

// ParametersDefined returns the parameter definitions the OperationDefinition
// op declares, resolved through Dictionary::ParameterDefinitions. An absent
// ParametersDefined property yields no parameters.
func (f *File) ParametersDefined(op *resolver.Object) ([]types.AUID, error) {
	if !op.Has(types.PIDOperationDefinitionParametersDefined) {
		return nil, nil
	}
	list, err := op.WeakRefList(types.PIDOperationDefinitionParametersDefined)
	if err != nil {
		return nil, err
	}
	ids := make([]types.AUID, 0, len(list.Identifications))
	for _, key := range list.Identifications {
		ref := property.WeakRef{IdentificationPID: list.IdentificationPID, Identification: key}
		id, err := f.resolveDefinition(op, ref, types.PIDDictionaryParameterDefinitions)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Parameter returns the Parameter of the OperationGroup group whose
// Definition is id.
func (f *File) Parameter(group *resolver.Object, id types.AUID) (*resolver.Object, bool) {
	if !group.Has(types.PIDOperationGroupParameters) {
		return nil, false
	}
	params, err := group.Collection(types.PIDOperationGroupParameters)
	if err != nil {
		return nil, false
	}
	for _, param := range params {
		if def, err := f.ParameterDefinition(param, types.PIDParameterDefinition); err == nil && def == id {
			return param, true
		}
	}
	return nil, false
}

// TaggedValue returns the value of the TaggedValue named name in obj's pid
// collection.
func TaggedValue(obj *resolver.Object, pid uint16, name string) (*resolver.Object, bool) {
	if !obj.Has(pid) {
		return nil, false
	}
	values, err := obj.Collection(pid)
	if err != nil {
		return nil, false
	}
	for _, tv := range values {
		if n, err := tv.Text(types.PIDTaggedValueName); err == nil && n == name {
			return tv, true
		}
	}
	return nil, false
}
