// Package minspace reads and writes the minspace token-stream file.
//
// Layout, little-endian throughout:
//
//	offset 0   count      u64
//	offset 8   max_value  u64
//	offset 16  payload    count × u32 (narrow) or count × u64 (wide)
//
// The payload width is not stored; readers derive it from the header with
// WidthFor, exactly as the writer chose it.
package minspace
