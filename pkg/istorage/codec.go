/*
 * Copyright (c) 2026-present TypeStore authors
 */

package istorage

import (
	"encoding/json"

	"github.com/typestore/typestore/pkg/schemas"
)

// Shared document codec. Validation runs on both directions: writes
// never persist a malformed document, reads never leak externally
// corrupted bytes past the storage layer.

func MarshalTypeDoc(doc *schemas.TypeDoc) ([]byte, error) {
	if err := schemas.ValidTypeDoc(doc); err != nil {
		return nil, err
	}
	return json.Marshal(doc)
}

func UnmarshalTypeDoc(data []byte) (*schemas.TypeDoc, error) {
	doc := &schemas.TypeDoc{}
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, schemas.EnrichError(schemas.ErrInvalidFieldError, "corrupted type document: %v", err)
	}
	if err := schemas.ValidTypeDoc(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func MarshalIndex(idx *schemas.Index) ([]byte, error) {
	return json.Marshal(idx)
}

func UnmarshalIndex(data []byte) (*schemas.Index, error) {
	idx := &schemas.Index{}
	if err := json.Unmarshal(data, idx); err != nil {
		return nil, schemas.EnrichError(schemas.ErrInvalidFieldError, "corrupted index document: %v", err)
	}
	return idx, nil
}
