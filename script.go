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
	"errors"

	"github.com/blinklabs-io/gouroboros/cbor"
	"github.com/blinklabs-io/plutigo/data"
	"github.com/blinklabs-io/plutigo/syn"
)

// ErrUnsupportedVersion is returned when script bytes cannot be reduced to a
// flat-encoded UPLC program with a supported Plutus language version
var ErrUnsupportedVersion = errors.New(
	"Unsupported Plutus version or invalid Plutus script bytes",
)

// UnwrapPlutusScript strips nested CBOR bytestring wrappers from the
// provided script bytes until raw program bytes with a supported Plutus
// version are found. The version check runs before each unwrap attempt, so
// already-raw input is returned as-is. A failed CBOR decode or an
// unexpected CBOR shape ends the unwrapping; the bytes held at that point
// get one final version check before the operation fails with
// ErrUnsupportedVersion
func UnwrapPlutusScript(scriptBytes []byte) ([]byte, error) {
	current := scriptBytes
	for {
		if hasSupportedPlutusVersion(current) {
			return current, nil
		}
		var innerBytes []byte
		if _, err := cbor.Decode(current, &innerBytes); err != nil {
			// Not a CBOR bytestring, so there's nothing left to unwrap
			break
		}
		current = innerBytes
	}
	if hasSupportedPlutusVersion(current) {
		return current, nil
	}
	return nil, ErrUnsupportedVersion
}

// NormalizePlutusScript unwraps the provided script bytes to their raw form
// and re-encodes them with the requested output encoding
func NormalizePlutusScript(
	scriptBytes []byte,
	encoding OutputEncoding,
) ([]byte, error) {
	rawScript, err := UnwrapPlutusScript(scriptBytes)
	if err != nil {
		return nil, err
	}
	return applyEncoding(rawScript, encoding)
}

// ApplyArgsToPlutusScript applies the provided CBOR-encoded Plutus data
// arguments to a parameterized script and re-serializes the result with the
// requested output encoding. Arguments are applied in order, left to right.
// Errors from the underlying UPLC and Plutus data codecs are returned
// unmodified
func ApplyArgsToPlutusScript(
	args [][]byte,
	scriptBytes []byte,
	encoding OutputEncoding,
) ([]byte, error) {
	program, err := applyArgsToProgram(args, scriptBytes)
	if err != nil {
		return nil, err
	}
	appliedBytes, err := syn.Encode[syn.DeBruijn](program)
	if err != nil {
		return nil, err
	}
	return applyEncoding(appliedBytes, encoding)
}

// applyArgsToProgram unwraps and parses a script, then folds the provided
// arguments onto the program body as nested applications. The program
// version is carried over untouched
func applyArgsToProgram(
	args [][]byte,
	scriptBytes []byte,
) (*syn.Program[syn.DeBruijn], error) {
	rawScript, err := UnwrapPlutusScript(scriptBytes)
	if err != nil {
		return nil, err
	}
	program, err := syn.Decode[syn.DeBruijn](rawScript)
	if err != nil {
		return nil, err
	}
	term := program.Term
	for _, argBytes := range args {
		arg, err := data.Decode(argBytes)
		if err != nil {
			return nil, err
		}
		term = &syn.Apply[syn.DeBruijn]{
			Function: term,
			Argument: &syn.Constant{
				Con: &syn.Data{
					Inner: arg,
				},
			},
		}
	}
	return &syn.Program[syn.DeBruijn]{
		Version: program.Version,
		Term:    term,
	}, nil
}
