package element

// Engine codes. Code 0 is the ground reference: it carries no properties
// and never enters the retained component list.
const (
	CodeGround           int32 = 0
	CodeResistor         int32 = 1
	CodeCapacitor        int32 = 2
	CodeInductor         int32 = 3
	CodeVDC              int32 = 4
	CodeVAC              int32 = 5
	CodeIDC              int32 = 6
	CodeIAC              int32 = 7
	CodeSwitch           int32 = 12
	CodeTransformer      int32 = 14
	CodeCoupledInductors int32 = 15
	CodeRectifier        int32 = 54
	CodeLogicInput       int32 = 200
	CodeLogicOutput      int32 = 201
	CodeOrGate           int32 = 202
	CodeYesGate          int32 = 203
	CodeAndGate          int32 = 204
	CodeNoGate           int32 = 205
	CodeXorGate          int32 = 206
	CodeXnorGate         int32 = 207
	CodeNandGate         int32 = 208
	CodeNorGate          int32 = 209
	CodeImpGate          int32 = 211
	CodeNimpGate         int32 = 212
	CodeHalfAdder        int32 = 220
	CodeFullAdder        int32 = 221
	CodeHalfSubtractor   int32 = 222
	CodeFullSubtractor   int32 = 223
	CodeMultiplier       int32 = 224
	CodeDFlipflop        int32 = 225
	CodeTFlipflop        int32 = 226
	CodeRealTFlipflop    int32 = 227
	CodeJKFlipflop       int32 = 228
)

// propArity is the number of scalar properties the engine expects per code.
var propArity = map[int32]int{
	CodeGround:           0,
	CodeResistor:         1,
	CodeCapacitor:        1,
	CodeInductor:         1,
	CodeVDC:              1,
	CodeSwitch:           1,
	CodeTransformer:      1, // turn ratio n = Vp/Vs
	CodeCoupledInductors: 3, // L1 L2 k
	CodeRectifier:        0,
	CodeLogicInput:       1, // output state
	CodeLogicOutput:      0,
	CodeOrGate:           0,
	CodeYesGate:          0,
	CodeAndGate:          0,
	CodeNoGate:           0,
	CodeXorGate:          0,
	CodeXnorGate:         0,
	CodeNandGate:         0,
	CodeNorGate:          0,
	CodeImpGate:          0,
	CodeNimpGate:         0,
	CodeHalfAdder:        0,
	CodeFullAdder:        0,
	CodeHalfSubtractor:   0,
	CodeFullSubtractor:   0,
	CodeMultiplier:       0,
	CodeDFlipflop:        0,
	CodeTFlipflop:        0,
	CodeRealTFlipflop:    0,
	CodeJKFlipflop:       0,
}

// branchCounts is the number of current branches the engine reports per
// code. Entries for codes 5-7 were never confirmed against the engine;
// sampling clamps the branch total upward to the pin total, so an undercount
// here cannot shrink the current buffer below what the engine writes.
var branchCounts = map[int32]int{
	CodeVDC:              1,
	CodeVAC:              1,
	CodeIDC:              1,
	CodeIAC:              1,
	CodeSwitch:           1,
	CodeTransformer:      2,
	CodeCoupledInductors: 2,
}

// PropArity returns the property count the engine expects for code. The
// second return is false when the code has no table entry.
func PropArity(code int32) (int, bool) {
	n, ok := propArity[code]
	return n, ok
}

// BranchCount returns the number of current branches the engine reports for
// code, zero when unknown.
func BranchCount(code int32) int {
	return branchCounts[code]
}
