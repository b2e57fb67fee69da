// Package sudoku validates 9x9 Sudoku boards with bit sets.
//
// Each board is checked against three 81-bit sets, one per unit kind. Bit
// unit*9 + digit-1 records that digit has been placed in that row, column
// or box; placing it again is a conflict.
//
// ValidateAll checks many boards concurrently. Every board owns its sets,
// so workers share nothing but the resource.Controller that bounds them.
package sudoku
