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
	"math/big"
	"testing"

	"github.com/blinklabs-io/gouroboros/cbor"
	"github.com/blinklabs-io/plutigo/data"
	"github.com/blinklabs-io/plutigo/syn"
	"github.com/stretchr/testify/require"
)

// dataTerm lifts a Plutus data value into a UPLC constant term
func dataTerm(pd data.PlutusData) syn.Term[syn.DeBruijn] {
	return &syn.Constant{
		Con: &syn.Data{
			Inner: pd,
		},
	}
}

// testProgramBytes returns the flat encoding of a minimal parameterized
// test program along with its body term for building expected results
func testProgramBytes(t *testing.T) ([]byte, syn.Term[syn.DeBruijn]) {
	t.Helper()
	body := dataTerm(data.NewInteger(big.NewInt(42)))
	program := &syn.Program[syn.DeBruijn]{
		Version: [3]uint32{1, 1, 0},
		Term:    body,
	}
	programBytes, err := syn.Encode[syn.DeBruijn](program)
	require.NoError(t, err, "encode test program")
	return programBytes, body
}

func TestApplyArgsToPlutusScript(t *testing.T) {
	programBytes, body := testProgramBytes(t)
	argData := data.NewInteger(big.NewInt(7))
	argCbor, err := data.Encode(argData)
	require.NoError(t, err, "encode test argument")
	// Expected program wraps the original body in a single application node
	expectedProgram := &syn.Program[syn.DeBruijn]{
		Version: [3]uint32{1, 1, 0},
		Term: &syn.Apply[syn.DeBruijn]{
			Function: body,
			Argument: dataTerm(argData),
		},
	}
	expectedBytes, err := syn.Encode[syn.DeBruijn](expectedProgram)
	require.NoError(t, err, "encode expected program")

	result, err := ApplyArgsToPlutusScript(
		[][]byte{argCbor},
		programBytes,
		PurePlutusScriptBytes,
	)
	require.NoError(t, err)
	require.Equal(t, expectedBytes, result)
}

func TestApplyArgsToPlutusScriptWrappedInput(t *testing.T) {
	programBytes, body := testProgramBytes(t)
	argData := data.NewByteString([]byte{0xca, 0xfe})
	argCbor, err := data.Encode(argData)
	require.NoError(t, err, "encode test argument")
	// Double-wrap the input script to verify it gets unwrapped before
	// parsing
	singleWrapped, err := cbor.Encode(programBytes)
	require.NoError(t, err)
	doubleWrapped, err := cbor.Encode(singleWrapped)
	require.NoError(t, err)

	expectedProgram := &syn.Program[syn.DeBruijn]{
		Version: [3]uint32{1, 1, 0},
		Term: &syn.Apply[syn.DeBruijn]{
			Function: body,
			Argument: dataTerm(argData),
		},
	}
	expectedFlat, err := syn.Encode[syn.DeBruijn](expectedProgram)
	require.NoError(t, err, "encode expected program")
	expectedSingle, err := cbor.Encode(expectedFlat)
	require.NoError(t, err)
	expectedDouble, err := cbor.Encode(expectedSingle)
	require.NoError(t, err)

	result, err := ApplyArgsToPlutusScript(
		[][]byte{argCbor},
		doubleWrapped,
		DoubleCbor,
	)
	require.NoError(t, err)
	require.Equal(t, expectedDouble, result)
}

func TestApplyArgsToPlutusScriptArgOrder(t *testing.T) {
	programBytes, body := testProgramBytes(t)
	firstArg := data.NewInteger(big.NewInt(1))
	secondArg := data.NewInteger(big.NewInt(2))
	firstArgCbor, err := data.Encode(firstArg)
	require.NoError(t, err)
	secondArgCbor, err := data.Encode(secondArg)
	require.NoError(t, err)
	// Arguments apply left to right, so the second argument becomes the
	// outermost application
	expectedProgram := &syn.Program[syn.DeBruijn]{
		Version: [3]uint32{1, 1, 0},
		Term: &syn.Apply[syn.DeBruijn]{
			Function: &syn.Apply[syn.DeBruijn]{
				Function: body,
				Argument: dataTerm(firstArg),
			},
			Argument: dataTerm(secondArg),
		},
	}
	expectedBytes, err := syn.Encode[syn.DeBruijn](expectedProgram)
	require.NoError(t, err, "encode expected program")

	result, err := ApplyArgsToPlutusScript(
		[][]byte{firstArgCbor, secondArgCbor},
		programBytes,
		PurePlutusScriptBytes,
	)
	require.NoError(t, err)
	require.Equal(t, expectedBytes, result)
}

func TestApplyArgsToPlutusScriptConstrArg(t *testing.T) {
	programBytes, body := testProgramBytes(t)
	// Constructor-shaped arguments are the common case for script params
	// and exercise the full constant flat encoding on re-serialization
	argData := data.NewConstr(
		0,
		data.NewInteger(big.NewInt(9)),
		data.NewByteString([]byte{0x01, 0x02}),
	)
	argCbor, err := data.Encode(argData)
	require.NoError(t, err, "encode test argument")
	expectedProgram := &syn.Program[syn.DeBruijn]{
		Version: [3]uint32{1, 1, 0},
		Term: &syn.Apply[syn.DeBruijn]{
			Function: body,
			Argument: dataTerm(argData),
		},
	}
	expectedBytes, err := syn.Encode[syn.DeBruijn](expectedProgram)
	require.NoError(t, err, "encode expected program")

	result, err := ApplyArgsToPlutusScript(
		[][]byte{argCbor},
		programBytes,
		PurePlutusScriptBytes,
	)
	require.NoError(t, err)
	require.Equal(t, expectedBytes, result)
}

func TestApplyArgsToPlutusScriptNoArgs(t *testing.T) {
	programBytes, _ := testProgramBytes(t)
	// No arguments means a straight re-serialization of the program
	result, err := ApplyArgsToPlutusScript(
		nil,
		programBytes,
		PurePlutusScriptBytes,
	)
	require.NoError(t, err)
	require.Equal(t, programBytes, result)
}

func TestApplyArgsToPlutusScriptMalformedArg(t *testing.T) {
	programBytes, _ := testProgramBytes(t)
	_, err := ApplyArgsToPlutusScript(
		[][]byte{{0xff}},
		programBytes,
		SingleCbor,
	)
	require.Error(t, err)
	// Argument decode failures come from the Plutus data codec, not the
	// unwrapper
	require.False(t, errors.Is(err, ErrUnsupportedVersion))
}

func TestApplyArgsToPlutusScriptInvalidScript(t *testing.T) {
	_, err := ApplyArgsToPlutusScript(
		nil,
		[]byte{0x02, 0x00, 0x00},
		SingleCbor,
	)
	require.ErrorIs(t, err, ErrUnsupportedVersion)
}
