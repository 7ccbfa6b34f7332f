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
	"github.com/blinklabs-io/plutigo/cek"
	"github.com/blinklabs-io/plutigo/syn"
)

// EvaluatePlutusScript applies the provided CBOR-encoded Plutus data
// arguments to a script and runs the resulting program, returning the
// execution units consumed. A zero budget selects the default machine
// budget
func EvaluatePlutusScript(
	args [][]byte,
	scriptBytes []byte,
	budget lcommon.ExUnits,
) (lcommon.ExUnits, error) {
	var usedExUnits lcommon.ExUnits
	program, err := applyArgsToProgram(args, scriptBytes)
	if err != nil {
		return usedExUnits, err
	}
	machineBudget := cek.DefaultExBudget
	if budget.Steps > 0 || budget.Memory > 0 {
		machineBudget = cek.ExBudget{
			Cpu: budget.Steps,
			Mem: budget.Memory,
		}
	}
	machine := cek.NewMachine[syn.DeBruijn](program.Version, 200)
	machine.ExBudget = machineBudget
	if _, err := machine.Run(program.Term); err != nil {
		return usedExUnits, fmt.Errorf("execute script: %w", err)
	}
	consumedBudget := machineBudget.Sub(&machine.ExBudget)
	usedExUnits.Memory = consumedBudget.Mem
	usedExUnits.Steps = consumedBudget.Cpu
	return usedExUnits, nil
}
