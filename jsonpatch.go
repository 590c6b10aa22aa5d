package jsondiff

import (
	"encoding/json"

	jsonpatch "github.com/evanphx/json-patch/v5"
	"github.com/pkg/errors"
)

// jsonPatchOp is a single RFC 6902 operation
type jsonPatchOp struct {
	Op    string `json:"op"`
	Path  string `json:"path"`
	Value *Value `json:"value,omitempty"`
}

// JSONPatch renders deltas as an RFC 6902 JSON Patch document. Inserts become
// "add" operations & deletes become "remove". A root insert is a "replace" of
// the whole document, a root delete replaces the document with null
func (ds Deltas) JSONPatch() ([]byte, error) {
	ops, err := ds.jsonPatchOps()
	if err != nil {
		return nil, err
	}
	return json.Marshal(ops)
}

func (ds Deltas) jsonPatchOps() ([]jsonPatchOp, error) {
	ops := make([]jsonPatchOp, 0, len(ds))
	for i, d := range ds {
		if d == nil {
			continue
		}
		op, err := d.jsonPatchOp()
		if err != nil {
			return nil, errors.Wrapf(err, "delta %d", i)
		}
		ops = append(ops, op)
	}
	return ops, nil
}

func (d *Delta) jsonPatchOp() (jsonPatchOp, error) {
	root := len(d.Path) == 0
	switch {
	case d.Type == DTInsert && root:
		v := d.Value
		return jsonPatchOp{Op: "replace", Path: "", Value: &v}, nil
	case d.Type == DTInsert:
		v := d.Value
		return jsonPatchOp{Op: "add", Path: d.Path.String(), Value: &v}, nil
	case d.Type == DTDelete && root:
		null := Null()
		return jsonPatchOp{Op: "replace", Path: "", Value: &null}, nil
	case d.Type == DTDelete:
		return jsonPatchOp{Op: "remove", Path: d.Path.String()}, nil
	default:
		return jsonPatchOp{}, errors.Wrapf(ErrInvalidOperation, "%q", d.Type)
	}
}

// PatchJSON applies deltas to an encoded JSON document using an RFC 6902
// implementation, returning the patched document. It agrees with Patch:
// removing a map key that doesn't exist is allowed. Root operations restart
// the document from the inserted value (or null) instead of going through the
// patch engine
func PatchJSON(doc []byte, ds Deltas) ([]byte, error) {
	var pending []jsonPatchOp
	for i, d := range ds {
		if d == nil {
			continue
		}
		if len(d.Path) == 0 {
			v := Null()
			if d.Type == DTInsert {
				v = d.Value
			} else if d.Type != DTDelete {
				return nil, errors.Wrapf(ErrInvalidOperation, "delta %d: %q", i, d.Type)
			}
			data, err := json.Marshal(v)
			if err != nil {
				return nil, errors.Wrapf(err, "delta %d", i)
			}
			doc, pending = data, nil
			continue
		}
		op, err := d.jsonPatchOp()
		if err != nil {
			return nil, errors.Wrapf(err, "delta %d", i)
		}
		pending = append(pending, op)
	}

	if len(pending) == 0 {
		return doc, nil
	}

	data, err := json.Marshal(pending)
	if err != nil {
		return nil, err
	}
	p, err := jsonpatch.DecodePatch(data)
	if err != nil {
		return nil, errors.Wrap(err, "decoding json patch")
	}

	opts := jsonpatch.NewApplyOptions()
	opts.AllowMissingPathOnRemove = true
	return p.ApplyWithOptions(doc, opts)
}
