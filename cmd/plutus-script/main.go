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

package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"

	plutusscript "github.com/blinklabs-io/plutus-script"

	lcommon "github.com/blinklabs-io/gouroboros/ledger/common"
)

type globalFlags struct {
	flagset    *flag.FlagSet
	encoding   string
	scriptType string
}

func newGlobalFlags() *globalFlags {
	f := &globalFlags{
		flagset: flag.NewFlagSet(os.Args[0], flag.ExitOnError),
	}
	f.flagset.StringVar(
		&f.encoding,
		"encoding",
		"single",
		"output encoding: single, double, or pure",
	)
	f.flagset.StringVar(
		&f.scriptType,
		"type",
		"v3",
		"Plutus script type for hashing: v1, v2, or v3",
	)
	return f
}

func main() {
	f := newGlobalFlags()
	err := f.flagset.Parse(os.Args[1:])
	if err != nil {
		fmt.Printf("failed to parse command args: %s\n", err)
		os.Exit(1)
	}

	if len(f.flagset.Args()) > 0 {
		switch f.flagset.Arg(0) {
		case "normalize":
			runNormalize(f)
		case "apply":
			runApply(f)
		case "hash":
			runHash(f)
		default:
			fmt.Printf("Unknown subcommand: %s\n", f.flagset.Arg(0))
			os.Exit(1)
		}
	} else {
		fmt.Printf(
			"You must specify a subcommand (normalize, apply, or hash)\n",
		)
		os.Exit(1)
	}
}

func outputEncoding(f *globalFlags) plutusscript.OutputEncoding {
	switch f.encoding {
	case "single":
		return plutusscript.SingleCbor
	case "double":
		return plutusscript.DoubleCbor
	case "pure":
		return plutusscript.PurePlutusScriptBytes
	default:
		fmt.Printf("Invalid encoding specified: %s\n", f.encoding)
		os.Exit(1)
	}
	return plutusscript.SingleCbor
}

func scriptBytesArg(f *globalFlags, pos int) []byte {
	if len(f.flagset.Args()) <= pos {
		fmt.Printf("You must specify the script bytes as hex\n")
		os.Exit(1)
	}
	scriptBytes, err := hex.DecodeString(f.flagset.Arg(pos))
	if err != nil {
		fmt.Printf("failed to parse script hex: %s\n", err)
		os.Exit(1)
	}
	return scriptBytes
}

func runNormalize(f *globalFlags) {
	scriptBytes := scriptBytesArg(f, 1)
	normalized, err := plutusscript.NormalizePlutusScript(
		scriptBytes,
		outputEncoding(f),
	)
	if err != nil {
		fmt.Printf("failed to normalize script: %s\n", err)
		os.Exit(1)
	}
	fmt.Printf("%x\n", normalized)
}

func runApply(f *globalFlags) {
	scriptBytes := scriptBytesArg(f, 1)
	var args [][]byte
	for _, argHex := range f.flagset.Args()[2:] {
		argBytes, err := hex.DecodeString(argHex)
		if err != nil {
			fmt.Printf("failed to parse argument hex: %s\n", err)
			os.Exit(1)
		}
		args = append(args, argBytes)
	}
	applied, err := plutusscript.ApplyArgsToPlutusScript(
		args,
		scriptBytes,
		outputEncoding(f),
	)
	if err != nil {
		fmt.Printf("failed to apply arguments to script: %s\n", err)
		os.Exit(1)
	}
	fmt.Printf("%x\n", applied)
}

func runHash(f *globalFlags) {
	scriptBytes := scriptBytesArg(f, 1)
	var scriptType uint
	switch f.scriptType {
	case "v1":
		scriptType = lcommon.ScriptRefTypePlutusV1
	case "v2":
		scriptType = lcommon.ScriptRefTypePlutusV2
	case "v3":
		scriptType = lcommon.ScriptRefTypePlutusV3
	default:
		fmt.Printf("Invalid script type specified: %s\n", f.scriptType)
		os.Exit(1)
	}
	scriptHash, err := plutusscript.HashPlutusScript(scriptBytes, scriptType)
	if err != nil {
		fmt.Printf("failed to hash script: %s\n", err)
		os.Exit(1)
	}
	fmt.Printf("%s\n", scriptHash.String())
	fmt.Printf("%s\n", plutusscript.ScriptHashToBech32(scriptHash))
}
