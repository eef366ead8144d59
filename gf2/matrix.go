//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package gf2

import (
	"fmt"
)

// Matrix implements a rows×cols bit matrix stored as row vectors.
type Matrix struct {
	Rows int
	Cols int
	Data []Vector
}

// NewMatrix creates a zero matrix.
func NewMatrix(rows, cols int) *Matrix {
	m := &Matrix{
		Rows: rows,
		Cols: cols,
		Data: make([]Vector, rows),
	}
	for i := range m.Data {
		m.Data[i] = NewVector(cols)
	}
	return m
}

func (m *Matrix) String() string {
	return fmt.Sprintf("%dx%d", m.Rows, m.Cols)
}

// Get returns the bit at row i, column j.
func (m *Matrix) Get(i, j int) uint {
	return m.Data[i].Bit(j)
}

// Set sets the bit at row i, column j.
func (m *Matrix) Set(i, j int, b uint) {
	m.Data[i].SetBit(j, b)
}

// Column returns the column j as a vector of Rows bits.
func (m *Matrix) Column(j int) Vector {
	col := NewVector(m.Rows)
	for i := 0; i < m.Rows; i++ {
		col.SetBit(i, m.Get(i, j))
	}
	return col
}

// MulVec computes the matrix-vector product m·v. The result bit i is
// the parity of row i and v.
func (m *Matrix) MulVec(v Vector) Vector {
	result := NewVector(m.Rows)
	tmp := NewVector(m.Cols)
	for i, row := range m.Data {
		result.SetBit(i, tmp.And(row, v).Parity())
	}
	return result
}

// Rank computes the rank of the matrix with Gaussian elimination.
func (m *Matrix) Rank() int {
	rows := make([]Vector, m.Rows)
	for i, row := range m.Data {
		rows[i] = row.Copy()
	}

	var rank int
	for col := 0; col < m.Cols && rank < m.Rows; col++ {
		pivot := -1
		for i := rank; i < m.Rows; i++ {
			if rows[i].Bit(col) == 1 {
				pivot = i
				break
			}
		}
		if pivot < 0 {
			continue
		}
		rows[rank], rows[pivot] = rows[pivot], rows[rank]
		for i := rank + 1; i < m.Rows; i++ {
			if rows[i].Bit(col) == 1 {
				rows[i].Xor(rows[i], rows[rank])
			}
		}
		rank++
	}
	return rank
}
