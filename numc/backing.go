package numc

import (
	"fmt"

	"github.com/csotherden/numc/internal/iter"
)

// makeBacking allocates a fresh, zero-valued concrete slice for kind.
func makeBacking(kind Kind, n int) interface{} {
	switch kind {
	case Int8:
		return make([]int8, n)
	case Int16:
		return make([]int16, n)
	case Int32:
		return make([]int32, n)
	case Int64:
		return make([]int64, n)
	case Uint8:
		return make([]uint8, n)
	case Uint16:
		return make([]uint16, n)
	case Uint32:
		return make([]uint32, n)
	case Uint64:
		return make([]uint64, n)
	case Float32:
		return make([]float32, n)
	case Float64:
		return make([]float64, n)
	}
	panic("numc: makeBacking: invalid kind")
}

// elemSlice reslices data (one of the concrete backing types) starting at
// element index off.
func elemSlice(kind Kind, data interface{}, off int) interface{} {
	switch kind {
	case Int8:
		return data.([]int8)[off:]
	case Int16:
		return data.([]int16)[off:]
	case Int32:
		return data.([]int32)[off:]
	case Int64:
		return data.([]int64)[off:]
	case Uint8:
		return data.([]uint8)[off:]
	case Uint16:
		return data.([]uint16)[off:]
	case Uint32:
		return data.([]uint32)[off:]
	case Uint64:
		return data.([]uint64)[off:]
	case Float32:
		return data.([]float32)[off:]
	case Float64:
		return data.([]float64)[off:]
	}
	panic("numc: elemSlice: invalid kind")
}

// zeroN zeroes the first n elements of data (one of the concrete backing
// types), used by the sum axis-reduce fast path which must start from a
// zeroed accumulator before the fused row-add kernel runs.
func zeroN(kind Kind, data interface{}, n int) {
	switch kind {
	case Int8:
		s := data.([]int8)[:n]
		for i := range s {
			s[i] = 0
		}
	case Int16:
		s := data.([]int16)[:n]
		for i := range s {
			s[i] = 0
		}
	case Int32:
		s := data.([]int32)[:n]
		for i := range s {
			s[i] = 0
		}
	case Int64:
		s := data.([]int64)[:n]
		for i := range s {
			s[i] = 0
		}
	case Uint8:
		s := data.([]uint8)[:n]
		for i := range s {
			s[i] = 0
		}
	case Uint16:
		s := data.([]uint16)[:n]
		for i := range s {
			s[i] = 0
		}
	case Uint32:
		s := data.([]uint32)[:n]
		for i := range s {
			s[i] = 0
		}
	case Uint64:
		s := data.([]uint64)[:n]
		for i := range s {
			s[i] = 0
		}
	case Float32:
		s := data.([]float32)[:n]
		for i := range s {
			s[i] = 0
		}
	case Float64:
		s := data.([]float64)[:n]
		for i := range s {
			s[i] = 0
		}
	default:
		panic("numc: zeroN: invalid kind")
	}
}

// setElem writes v (the interface{} a reduce.FullFn or reduce.DotFn
// returns, dynamically typed as kind's concrete Go type) into data[idx].
func setElem(kind Kind, data interface{}, idx int, v interface{}) {
	switch kind {
	case Int8:
		data.([]int8)[idx] = v.(int8)
	case Int16:
		data.([]int16)[idx] = v.(int16)
	case Int32:
		data.([]int32)[idx] = v.(int32)
	case Int64:
		data.([]int64)[idx] = v.(int64)
	case Uint8:
		data.([]uint8)[idx] = v.(uint8)
	case Uint16:
		data.([]uint16)[idx] = v.(uint16)
	case Uint32:
		data.([]uint32)[idx] = v.(uint32)
	case Uint64:
		data.([]uint64)[idx] = v.(uint64)
	case Float32:
		data.([]float32)[idx] = v.(float32)
	case Float64:
		data.([]float64)[idx] = v.(float64)
	default:
		panic("numc: setElem: invalid kind")
	}
}

func fillBacking(kind Kind, data interface{}, scalar float64) {
	switch kind {
	case Int8:
		s := data.([]int8)
		for i := range s {
			s[i] = int8(scalar)
		}
	case Int16:
		s := data.([]int16)
		for i := range s {
			s[i] = int16(scalar)
		}
	case Int32:
		s := data.([]int32)
		for i := range s {
			s[i] = int32(scalar)
		}
	case Int64:
		s := data.([]int64)
		for i := range s {
			s[i] = int64(scalar)
		}
	case Uint8:
		s := data.([]uint8)
		for i := range s {
			s[i] = uint8(scalar)
		}
	case Uint16:
		s := data.([]uint16)
		for i := range s {
			s[i] = uint16(scalar)
		}
	case Uint32:
		s := data.([]uint32)
		for i := range s {
			s[i] = uint32(scalar)
		}
	case Uint64:
		s := data.([]uint64)
		for i := range s {
			s[i] = uint64(scalar)
		}
	case Float32:
		s := data.([]float32)
		for i := range s {
			s[i] = float32(scalar)
		}
	case Float64:
		s := data.([]float64)
		for i := range s {
			s[i] = scalar
		}
	default:
		panic("numc: fillBacking: invalid kind")
	}
}

func backingLen(kind Kind, data interface{}) (int, error) {
	switch kind {
	case Int8:
		s, ok := data.([]int8)
		if !ok {
			return 0, fmt.Errorf("expected []int8")
		}
		return len(s), nil
	case Int16:
		s, ok := data.([]int16)
		if !ok {
			return 0, fmt.Errorf("expected []int16")
		}
		return len(s), nil
	case Int32:
		s, ok := data.([]int32)
		if !ok {
			return 0, fmt.Errorf("expected []int32")
		}
		return len(s), nil
	case Int64:
		s, ok := data.([]int64)
		if !ok {
			return 0, fmt.Errorf("expected []int64")
		}
		return len(s), nil
	case Uint8:
		s, ok := data.([]uint8)
		if !ok {
			return 0, fmt.Errorf("expected []uint8")
		}
		return len(s), nil
	case Uint16:
		s, ok := data.([]uint16)
		if !ok {
			return 0, fmt.Errorf("expected []uint16")
		}
		return len(s), nil
	case Uint32:
		s, ok := data.([]uint32)
		if !ok {
			return 0, fmt.Errorf("expected []uint32")
		}
		return len(s), nil
	case Uint64:
		s, ok := data.([]uint64)
		if !ok {
			return 0, fmt.Errorf("expected []uint64")
		}
		return len(s), nil
	case Float32:
		s, ok := data.([]float32)
		if !ok {
			return 0, fmt.Errorf("expected []float32")
		}
		return len(s), nil
	case Float64:
		s, ok := data.([]float64)
		if !ok {
			return 0, fmt.Errorf("expected []float64")
		}
		return len(s), nil
	}
	return 0, fmt.Errorf("invalid kind")
}

func copyBacking(kind Kind, dst, src interface{}, n int) {
	switch kind {
	case Int8:
		copy(dst.([]int8)[:n], src.([]int8))
	case Int16:
		copy(dst.([]int16)[:n], src.([]int16))
	case Int32:
		copy(dst.([]int32)[:n], src.([]int32))
	case Int64:
		copy(dst.([]int64)[:n], src.([]int64))
	case Uint8:
		copy(dst.([]uint8)[:n], src.([]uint8))
	case Uint16:
		copy(dst.([]uint16)[:n], src.([]uint16))
	case Uint32:
		copy(dst.([]uint32)[:n], src.([]uint32))
	case Uint64:
		copy(dst.([]uint64)[:n], src.([]uint64))
	case Float32:
		copy(dst.([]float32)[:n], src.([]float32))
	case Float64:
		copy(dst.([]float64)[:n], src.([]float64))
	}
}

// gatherInto walks src in C-order with the ND iterator (so it works whether
// src is contiguous, a transposed view, or a slice) and writes each element
// sequentially into dstData, a freshly-allocated contiguous buffer of the
// same kind and size.
func gatherInto(dstData interface{}, src *Array) {
	it := iter.New(src.shape, -1, src.elemStrides())
	srcData := src.Data()
	switch src.kind {
	case Int8:
		d, s := dstData.([]int8), srcData.([]int8)
		i := 0
		for off := it.Start(); !it.Done(); off = it.Next() {
			d[i] = s[off[0]]
			i++
		}
	case Int16:
		d, s := dstData.([]int16), srcData.([]int16)
		i := 0
		for off := it.Start(); !it.Done(); off = it.Next() {
			d[i] = s[off[0]]
			i++
		}
	case Int32:
		d, s := dstData.([]int32), srcData.([]int32)
		i := 0
		for off := it.Start(); !it.Done(); off = it.Next() {
			d[i] = s[off[0]]
			i++
		}
	case Int64:
		d, s := dstData.([]int64), srcData.([]int64)
		i := 0
		for off := it.Start(); !it.Done(); off = it.Next() {
			d[i] = s[off[0]]
			i++
		}
	case Uint8:
		d, s := dstData.([]uint8), srcData.([]uint8)
		i := 0
		for off := it.Start(); !it.Done(); off = it.Next() {
			d[i] = s[off[0]]
			i++
		}
	case Uint16:
		d, s := dstData.([]uint16), srcData.([]uint16)
		i := 0
		for off := it.Start(); !it.Done(); off = it.Next() {
			d[i] = s[off[0]]
			i++
		}
	case Uint32:
		d, s := dstData.([]uint32), srcData.([]uint32)
		i := 0
		for off := it.Start(); !it.Done(); off = it.Next() {
			d[i] = s[off[0]]
			i++
		}
	case Uint64:
		d, s := dstData.([]uint64), srcData.([]uint64)
		i := 0
		for off := it.Start(); !it.Done(); off = it.Next() {
			d[i] = s[off[0]]
			i++
		}
	case Float32:
		d, s := dstData.([]float32), srcData.([]float32)
		i := 0
		for off := it.Start(); !it.Done(); off = it.Next() {
			d[i] = s[off[0]]
			i++
		}
	case Float64:
		d, s := dstData.([]float64), srcData.([]float64)
		i := 0
		for off := it.Start(); !it.Done(); off = it.Next() {
			d[i] = s[off[0]]
			i++
		}
	}
}
