// Package couple defines the couple config domain: the raw parsed mapping, the
// validated Config record consumed by token building, the parser contract, and
// the validation rules that gate generation. Parsing implementations live under
// internal/couple to keep decoding details out of the public API.
package couple
