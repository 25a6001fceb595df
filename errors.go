package bip39toolkit

import "errors"

// ErrSelfTest is returned when a freshly produced share set fails its
// verification. It signals a defect in the sharing pipeline, not bad user
// input: the operation must be abandoned and none of the shares used.
var ErrSelfTest = errors.New("bip39toolkit: share self-test failed")
