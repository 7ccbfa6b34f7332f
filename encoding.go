// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package plutusscript

import (
	"github.com/blinklabs-io/gouroboros/cbor"
)

// OutputEncoding selects how many layers of CBOR bytestring wrapping to
// apply to output script bytes
type OutputEncoding int

const (
	// SingleCbor wraps the raw script bytes in one CBOR bytestring. This is
	// the form scripts take inside ledger data (witness sets, script refs)
	SingleCbor OutputEncoding = iota
	// DoubleCbor wraps the raw script bytes in two nested CBOR bytestrings.
	// This is the form produced by cardano-cli text envelopes
	DoubleCbor
	// PurePlutusScriptBytes returns the raw flat-encoded program bytes
	// without any wrapping
	PurePlutusScriptBytes
)

func (e OutputEncoding) String() string {
	switch e {
	case SingleCbor:
		return "single"
	case DoubleCbor:
		return "double"
	case PurePlutusScriptBytes:
		return "pure"
	}
	return "unknown"
}

// applyEncoding wraps raw script bytes per the requested output encoding. It
// never inspects the bytes being wrapped
func applyEncoding(
	scriptBytes []byte,
	encoding OutputEncoding,
) ([]byte, error) {
	switch encoding {
	case PurePlutusScriptBytes:
		return scriptBytes, nil
	case DoubleCbor:
		innerCbor, err := cbor.Encode(scriptBytes)
		if err != nil {
			return nil, err
		}
		return cbor.Encode(innerCbor)
	case SingleCbor:
		return cbor.Encode(scriptBytes)
	default:
		// Out-of-range values get the single-wrap ledger form
		return cbor.Encode(scriptBytes)
	}
}
