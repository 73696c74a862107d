// SPDX-License-Identifier: MPL-2.0

package baselined

// Gap at 1 is accepted by the baseline; the gap at 2 is new.

type Step int // want `type baselined\.Step: value 2 in \[0, 3\) has no named constant`

const (
	StepZero  Step = 0
	StepCount Step = 3
)

func (Step) Bounds() (Step, Step) { return StepZero, StepCount }

func (s Step) String() string { return "step" }
