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

// Package plutusscript provides utilities for working with serialized Plutus
// scripts outside of a running node.
//
// Serialized Plutus scripts are seen in the wild with zero, one, or two
// layers of CBOR bytestring wrapping, depending on where they came from
// (CIP-0057 blueprints, cardano-cli text envelopes, raw ledger data). This
// package normalizes between those representations, applies constructor
// arguments to parameterized scripts, and computes ledger script hashes.
//
// The heavy lifting is delegated to external libraries: CBOR via
// github.com/blinklabs-io/gouroboros/cbor and UPLC program handling via
// github.com/blinklabs-io/plutigo.
package plutusscript
