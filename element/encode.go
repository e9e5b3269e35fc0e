package element

import (
	"github.com/physicslab/phyengine"
	"github.com/physicslab/phyengine/errors"
)

// Property keys as stored by the hosting save format.
const (
	keyResistance  = "电阻"
	keyCapacitance = "电容"
	keyInductance  = "电感"
	keyVoltage     = "电压"
	keySwitch      = "开关"
	keyPrimaryV    = "输入电压"
	keySecondaryV  = "输出电压"
	keyInductance1 = "电感1"
	keyInductance2 = "电感2"
	keyCoupling    = "耦合系数"
)

// noPropModels maps model IDs whose codes take no properties.
var noPropModels = map[string]int32{
	"Rectifier":       CodeRectifier,
	"Logic Output":    CodeLogicOutput,
	"Or Gate":         CodeOrGate,
	"Yes Gate":        CodeYesGate,
	"And Gate":        CodeAndGate,
	"No Gate":         CodeNoGate,
	"Xor Gate":        CodeXorGate,
	"Xnor Gate":       CodeXnorGate,
	"Nand Gate":       CodeNandGate,
	"Nor Gate":        CodeNorGate,
	"Imp Gate":        CodeImpGate,
	"Nimp Gate":       CodeNimpGate,
	"Half Adder":      CodeHalfAdder,
	"Full Adder":      CodeFullAdder,
	"Half Subtractor": CodeHalfSubtractor,
	"Full Subtractor": CodeFullSubtractor,
	"Multiplier":      CodeMultiplier,
	"D Flipflop":      CodeDFlipflop,
	"T Flipflop":      CodeTFlipflop,
	"Real-T Flipflop": CodeRealTFlipflop,
	"JK Flipflop":     CodeJKFlipflop,
}

// switchModels all share the switch code; they differ only mechanically.
var switchModels = map[string]bool{
	"Simple Switch": true,
	"Push Switch":   true,
	"Air Switch":    true,
}

// Encode returns the engine code and extracted scalar properties for e, or
// an unsupported-element error when the model ID has no mapping.
func Encode(e phyengine.Element) (int32, []float64, error) {
	modelID := e.ModelID()

	switch modelID {
	case "Ground Component":
		return CodeGround, nil, nil

	case "Resistor":
		v, err := requiredFloat(e, modelID, keyResistance)
		if err != nil {
			return 0, nil, err
		}
		return CodeResistor, []float64{v}, nil

	case "Basic Capacitor":
		v, err := requiredFloat(e, modelID, keyCapacitance)
		if err != nil {
			return 0, nil, err
		}
		return CodeCapacitor, []float64{v}, nil

	case "Basic Inductor":
		v, err := requiredFloat(e, modelID, keyInductance)
		if err != nil {
			return 0, nil, err
		}
		return CodeInductor, []float64{v}, nil

	case "Battery Source":
		// Internal resistance is not modeled; add an explicit Resistor
		// when it matters.
		v, err := requiredFloat(e, modelID, keyVoltage)
		if err != nil {
			return 0, nil, err
		}
		return CodeVDC, []float64{v}, nil

	case "Transformer":
		vp, err := requiredFloat(e, modelID, keyPrimaryV)
		if err != nil {
			return 0, nil, err
		}
		vs, err := requiredFloat(e, modelID, keySecondaryV)
		if err != nil {
			return 0, nil, err
		}
		if vs == 0 {
			return 0, nil, errors.InvalidProperty(modelID, keySecondaryV, "must be non-zero")
		}
		return CodeTransformer, []float64{vp / vs}, nil

	case "Mutual Inductor":
		l1, err := requiredFloat(e, modelID, keyInductance1)
		if err != nil {
			return 0, nil, err
		}
		l2, err := requiredFloat(e, modelID, keyInductance2)
		if err != nil {
			return 0, nil, err
		}
		k, err := requiredFloat(e, modelID, keyCoupling)
		if err != nil {
			return 0, nil, err
		}
		return CodeCoupledInductors, []float64{l1, l2, k}, nil

	case "Logic Input":
		state, err := requiredSwitch(e, modelID, keySwitch)
		if err != nil {
			return 0, nil, err
		}
		return CodeLogicInput, []float64{state}, nil
	}

	if switchModels[modelID] {
		state, err := requiredSwitch(e, modelID, keySwitch)
		if err != nil {
			return 0, nil, err
		}
		return CodeSwitch, []float64{state}, nil
	}

	if code, ok := noPropModels[modelID]; ok {
		return code, nil, nil
	}

	return 0, nil, errors.UnsupportedElement(modelID)
}

// requiredFloat extracts a named numeric property.
func requiredFloat(e phyengine.Element, modelID, key string) (float64, error) {
	v, ok := e.Property(key)
	if !ok || v == nil {
		return 0, errors.MissingProperty(modelID, key)
	}
	f, ok := toFloat(v)
	if !ok {
		return 0, errors.InvalidPropertyType(modelID, key, v)
	}
	return f, nil
}

// requiredSwitch extracts a boolean-like property, coerced to 0 or 1 by a
// nonzero test.
func requiredSwitch(e phyengine.Element, modelID, key string) (float64, error) {
	f, err := requiredFloat(e, modelID, key)
	if err != nil {
		return 0, err
	}
	if f != 0 {
		return 1, nil
	}
	return 0, nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case bool:
		if n {
			return 1, true
		}
		return 0, true
	}
	return 0, false
}
