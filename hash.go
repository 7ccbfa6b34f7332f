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
	"fmt"

	lcommon "github.com/blinklabs-io/gouroboros/ledger/common"
)

// HashPlutusScript computes the ledger script hash for the provided script
// bytes. The script is first normalized to the single-wrapped form the
// ledger stores, since the hash input is the script-ref type byte followed
// by those bytes. The script type selects the type byte and must be one of
// the ledger/common ScriptRefTypePlutusV* constants
func HashPlutusScript(
	scriptBytes []byte,
	scriptType uint,
) (lcommon.ScriptHash, error) {
	normalized, err := NormalizePlutusScript(scriptBytes, SingleCbor)
	if err != nil {
		return lcommon.ScriptHash{}, err
	}
	var script lcommon.Script
	switch scriptType {
	case lcommon.ScriptRefTypePlutusV1:
		script = lcommon.PlutusV1Script(normalized)
	case lcommon.ScriptRefTypePlutusV2:
		script = lcommon.PlutusV2Script(normalized)
	case lcommon.ScriptRefTypePlutusV3:
		script = lcommon.PlutusV3Script(normalized)
	default:
		return lcommon.ScriptHash{}, fmt.Errorf(
			"unknown script type %d",
			scriptType,
		)
	}
	return script.Hash(), nil
}

// ScriptHashToBech32 encodes a script hash as a CIP-0005 bech32 string with
// "script" prefix
func ScriptHashToBech32(scriptHash lcommon.ScriptHash) string {
	return scriptHash.Bech32("script")
}
