// Package element maps circuit components onto the Phy-Engine numeric
// element codes.
//
// Every supported component model ID has one engine code, a fixed number of
// scalar properties the engine expects for that code, and a number of
// current branches the engine reports back. The table is static and
// read-only; Encode performs the model-specific property extraction,
// including the transformer turn-ratio derivation and the 0/1 coercion of
// switch-like properties.
//
// Property keys are the ones the hosting save format stores, which are
// Chinese (电阻 for resistance, 电压 for voltage, and so on). The bridge
// does not rename them: the component model is external and shared with the
// save-file layer.
package element
