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

// Supported UPLC language versions, as the leading (major, minor, patch)
// triple of a flat-encoded program. Plutus V1 and V2 both use 1.0.0, while
// Plutus V3 uses 1.1.0
var supportedPlutusVersions = [][3]byte{
	{1, 0, 0},
	{1, 1, 0},
}

// hasSupportedPlutusVersion checks whether the provided bytes start with a
// supported UPLC version triple. It never errors: inputs shorter than three
// bytes simply don't match
func hasSupportedPlutusVersion(scriptBytes []byte) bool {
	if len(scriptBytes) < 3 {
		return false
	}
	for _, version := range supportedPlutusVersions {
		if scriptBytes[0] == version[0] &&
			scriptBytes[1] == version[1] &&
			scriptBytes[2] == version[2] {
			return true
		}
	}
	return false
}
