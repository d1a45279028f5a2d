// Code generated by gentypelist for arities 2..12; see typelist.go for arities 0 and 1.
// DO NOT EDIT.

package typelist

import "github.com/mwatts/wazerobridge/api"

// Params2 is a parameter tuple of arity 2.
type Params2[T0 api.Number, T1 api.Number] struct {
	P0 T0
	P1 T1
}

func (p Params2[T0, T1]) Types() []api.ValueType {
	return []api.ValueType{api.ValueTypeOf[T0](), api.ValueTypeOf[T1]()}
}

func (p Params2[T0, T1]) Pack() []api.Slot {
	return []api.Slot{api.Encode(p.P0), api.Encode(p.P1)}
}

// Results2 is a result tuple of arity 2.
type Results2[R0 api.Number, R1 api.Number] struct {
	R0 R0
	R1 R1
}

func (r Results2[R0, R1]) Types() []api.ValueType {
	return []api.ValueType{api.ValueTypeOf[R0](), api.ValueTypeOf[R1]()}
}

func (Results2[R0, R1]) FromBuffer(buf []api.Slot) Results2[R0, R1] {
	return Results2[R0, R1]{
		R0: api.Decode[R0](buf[0]),
		R1: api.Decode[R1](buf[1]),
	}
}

// CStruct2 is the ABI-compatible aggregate for a 2-ary return.
type CStruct2 struct {
	F0 api.Slot
	F1 api.Slot
}

func (r Results2[R0, R1]) PackCStruct() CStruct2 {
	return CStruct2{
		F0: api.Encode(r.R0),
		F1: api.Encode(r.R1),
	}
}

// UnpackCStruct2 is the inverse of Results2.PackCStruct.
func UnpackCStruct2[R0 api.Number, R1 api.Number](c CStruct2) Results2[R0, R1] {
	return Results2[R0, R1]{
		R0: api.Decode[R0](c.F0),
		R1: api.Decode[R1](c.F1),
	}
}

// Params3 is a parameter tuple of arity 3.
type Params3[T0 api.Number, T1 api.Number, T2 api.Number] struct {
	P0 T0
	P1 T1
	P2 T2
}

func (p Params3[T0, T1, T2]) Types() []api.ValueType {
	return []api.ValueType{api.ValueTypeOf[T0](), api.ValueTypeOf[T1](), api.ValueTypeOf[T2]()}
}

func (p Params3[T0, T1, T2]) Pack() []api.Slot {
	return []api.Slot{api.Encode(p.P0), api.Encode(p.P1), api.Encode(p.P2)}
}

// Results3 is a result tuple of arity 3.
type Results3[R0 api.Number, R1 api.Number, R2 api.Number] struct {
	R0 R0
	R1 R1
	R2 R2
}

func (r Results3[R0, R1, R2]) Types() []api.ValueType {
	return []api.ValueType{api.ValueTypeOf[R0](), api.ValueTypeOf[R1](), api.ValueTypeOf[R2]()}
}

func (Results3[R0, R1, R2]) FromBuffer(buf []api.Slot) Results3[R0, R1, R2] {
	return Results3[R0, R1, R2]{
		R0: api.Decode[R0](buf[0]),
		R1: api.Decode[R1](buf[1]),
		R2: api.Decode[R2](buf[2]),
	}
}

// CStruct3 is the ABI-compatible aggregate for a 3-ary return.
type CStruct3 struct {
	F0 api.Slot
	F1 api.Slot
	F2 api.Slot
}

func (r Results3[R0, R1, R2]) PackCStruct() CStruct3 {
	return CStruct3{
		F0: api.Encode(r.R0),
		F1: api.Encode(r.R1),
		F2: api.Encode(r.R2),
	}
}

// UnpackCStruct3 is the inverse of Results3.PackCStruct.
func UnpackCStruct3[R0 api.Number, R1 api.Number, R2 api.Number](c CStruct3) Results3[R0, R1, R2] {
	return Results3[R0, R1, R2]{
		R0: api.Decode[R0](c.F0),
		R1: api.Decode[R1](c.F1),
		R2: api.Decode[R2](c.F2),
	}
}

// Params4 is a parameter tuple of arity 4.
type Params4[T0 api.Number, T1 api.Number, T2 api.Number, T3 api.Number] struct {
	P0 T0
	P1 T1
	P2 T2
	P3 T3
}

func (p Params4[T0, T1, T2, T3]) Types() []api.ValueType {
	return []api.ValueType{api.ValueTypeOf[T0](), api.ValueTypeOf[T1](), api.ValueTypeOf[T2](), api.ValueTypeOf[T3]()}
}

func (p Params4[T0, T1, T2, T3]) Pack() []api.Slot {
	return []api.Slot{api.Encode(p.P0), api.Encode(p.P1), api.Encode(p.P2), api.Encode(p.P3)}
}

// Results4 is a result tuple of arity 4.
type Results4[R0 api.Number, R1 api.Number, R2 api.Number, R3 api.Number] struct {
	R0 R0
	R1 R1
	R2 R2
	R3 R3
}

func (r Results4[R0, R1, R2, R3]) Types() []api.ValueType {
	return []api.ValueType{api.ValueTypeOf[R0](), api.ValueTypeOf[R1](), api.ValueTypeOf[R2](), api.ValueTypeOf[R3]()}
}

func (Results4[R0, R1, R2, R3]) FromBuffer(buf []api.Slot) Results4[R0, R1, R2, R3] {
	return Results4[R0, R1, R2, R3]{
		R0: api.Decode[R0](buf[0]),
		R1: api.Decode[R1](buf[1]),
		R2: api.Decode[R2](buf[2]),
		R3: api.Decode[R3](buf[3]),
	}
}

// CStruct4 is the ABI-compatible aggregate for a 4-ary return.
type CStruct4 struct {
	F0 api.Slot
	F1 api.Slot
	F2 api.Slot
	F3 api.Slot
}

func (r Results4[R0, R1, R2, R3]) PackCStruct() CStruct4 {
	return CStruct4{
		F0: api.Encode(r.R0),
		F1: api.Encode(r.R1),
		F2: api.Encode(r.R2),
		F3: api.Encode(r.R3),
	}
}

// UnpackCStruct4 is the inverse of Results4.PackCStruct.
func UnpackCStruct4[R0 api.Number, R1 api.Number, R2 api.Number, R3 api.Number](c CStruct4) Results4[R0, R1, R2, R3] {
	return Results4[R0, R1, R2, R3]{
		R0: api.Decode[R0](c.F0),
		R1: api.Decode[R1](c.F1),
		R2: api.Decode[R2](c.F2),
		R3: api.Decode[R3](c.F3),
	}
}

// Params5 is a parameter tuple of arity 5.
type Params5[T0 api.Number, T1 api.Number, T2 api.Number, T3 api.Number, T4 api.Number] struct {
	P0 T0
	P1 T1
	P2 T2
	P3 T3
	P4 T4
}

func (p Params5[T0, T1, T2, T3, T4]) Types() []api.ValueType {
	return []api.ValueType{api.ValueTypeOf[T0](), api.ValueTypeOf[T1](), api.ValueTypeOf[T2](), api.ValueTypeOf[T3](), api.ValueTypeOf[T4]()}
}

func (p Params5[T0, T1, T2, T3, T4]) Pack() []api.Slot {
	return []api.Slot{api.Encode(p.P0), api.Encode(p.P1), api.Encode(p.P2), api.Encode(p.P3), api.Encode(p.P4)}
}

// Results5 is a result tuple of arity 5.
type Results5[R0 api.Number, R1 api.Number, R2 api.Number, R3 api.Number, R4 api.Number] struct {
	R0 R0
	R1 R1
	R2 R2
	R3 R3
	R4 R4
}

func (r Results5[R0, R1, R2, R3, R4]) Types() []api.ValueType {
	return []api.ValueType{api.ValueTypeOf[R0](), api.ValueTypeOf[R1](), api.ValueTypeOf[R2](), api.ValueTypeOf[R3](), api.ValueTypeOf[R4]()}
}

func (Results5[R0, R1, R2, R3, R4]) FromBuffer(buf []api.Slot) Results5[R0, R1, R2, R3, R4] {
	return Results5[R0, R1, R2, R3, R4]{
		R0: api.Decode[R0](buf[0]),
		R1: api.Decode[R1](buf[1]),
		R2: api.Decode[R2](buf[2]),
		R3: api.Decode[R3](buf[3]),
		R4: api.Decode[R4](buf[4]),
	}
}

// CStruct5 is the ABI-compatible aggregate for a 5-ary return.
type CStruct5 struct {
	F0 api.Slot
	F1 api.Slot
	F2 api.Slot
	F3 api.Slot
	F4 api.Slot
}

func (r Results5[R0, R1, R2, R3, R4]) PackCStruct() CStruct5 {
	return CStruct5{
		F0: api.Encode(r.R0),
		F1: api.Encode(r.R1),
		F2: api.Encode(r.R2),
		F3: api.Encode(r.R3),
		F4: api.Encode(r.R4),
	}
}

// UnpackCStruct5 is the inverse of Results5.PackCStruct.
func UnpackCStruct5[R0 api.Number, R1 api.Number, R2 api.Number, R3 api.Number, R4 api.Number](c CStruct5) Results5[R0, R1, R2, R3, R4] {
	return Results5[R0, R1, R2, R3, R4]{
		R0: api.Decode[R0](c.F0),
		R1: api.Decode[R1](c.F1),
		R2: api.Decode[R2](c.F2),
		R3: api.Decode[R3](c.F3),
		R4: api.Decode[R4](c.F4),
	}
}

// Params6 is a parameter tuple of arity 6.
type Params6[T0 api.Number, T1 api.Number, T2 api.Number, T3 api.Number, T4 api.Number, T5 api.Number] struct {
	P0 T0
	P1 T1
	P2 T2
	P3 T3
	P4 T4
	P5 T5
}

func (p Params6[T0, T1, T2, T3, T4, T5]) Types() []api.ValueType {
	return []api.ValueType{api.ValueTypeOf[T0](), api.ValueTypeOf[T1](), api.ValueTypeOf[T2](), api.ValueTypeOf[T3](), api.ValueTypeOf[T4](), api.ValueTypeOf[T5]()}
}

func (p Params6[T0, T1, T2, T3, T4, T5]) Pack() []api.Slot {
	return []api.Slot{api.Encode(p.P0), api.Encode(p.P1), api.Encode(p.P2), api.Encode(p.P3), api.Encode(p.P4), api.Encode(p.P5)}
}

// Results6 is a result tuple of arity 6.
type Results6[R0 api.Number, R1 api.Number, R2 api.Number, R3 api.Number, R4 api.Number, R5 api.Number] struct {
	R0 R0
	R1 R1
	R2 R2
	R3 R3
	R4 R4
	R5 R5
}

func (r Results6[R0, R1, R2, R3, R4, R5]) Types() []api.ValueType {
	return []api.ValueType{api.ValueTypeOf[R0](), api.ValueTypeOf[R1](), api.ValueTypeOf[R2](), api.ValueTypeOf[R3](), api.ValueTypeOf[R4](), api.ValueTypeOf[R5]()}
}

func (Results6[R0, R1, R2, R3, R4, R5]) FromBuffer(buf []api.Slot) Results6[R0, R1, R2, R3, R4, R5] {
	return Results6[R0, R1, R2, R3, R4, R5]{
		R0: api.Decode[R0](buf[0]),
		R1: api.Decode[R1](buf[1]),
		R2: api.Decode[R2](buf[2]),
		R3: api.Decode[R3](buf[3]),
		R4: api.Decode[R4](buf[4]),
		R5: api.Decode[R5](buf[5]),
	}
}

// CStruct6 is the ABI-compatible aggregate for a 6-ary return.
type CStruct6 struct {
	F0 api.Slot
	F1 api.Slot
	F2 api.Slot
	F3 api.Slot
	F4 api.Slot
	F5 api.Slot
}

func (r Results6[R0, R1, R2, R3, R4, R5]) PackCStruct() CStruct6 {
	return CStruct6{
		F0: api.Encode(r.R0),
		F1: api.Encode(r.R1),
		F2: api.Encode(r.R2),
		F3: api.Encode(r.R3),
		F4: api.Encode(r.R4),
		F5: api.Encode(r.R5),
	}
}

// UnpackCStruct6 is the inverse of Results6.PackCStruct.
func UnpackCStruct6[R0 api.Number, R1 api.Number, R2 api.Number, R3 api.Number, R4 api.Number, R5 api.Number](c CStruct6) Results6[R0, R1, R2, R3, R4, R5] {
	return Results6[R0, R1, R2, R3, R4, R5]{
		R0: api.Decode[R0](c.F0),
		R1: api.Decode[R1](c.F1),
		R2: api.Decode[R2](c.F2),
		R3: api.Decode[R3](c.F3),
		R4: api.Decode[R4](c.F4),
		R5: api.Decode[R5](c.F5),
	}
}

// Params7 is a parameter tuple of arity 7.
type Params7[T0 api.Number, T1 api.Number, T2 api.Number, T3 api.Number, T4 api.Number, T5 api.Number, T6 api.Number] struct {
	P0 T0
	P1 T1
	P2 T2
	P3 T3
	P4 T4
	P5 T5
	P6 T6
}

func (p Params7[T0, T1, T2, T3, T4, T5, T6]) Types() []api.ValueType {
	return []api.ValueType{api.ValueTypeOf[T0](), api.ValueTypeOf[T1](), api.ValueTypeOf[T2](), api.ValueTypeOf[T3](), api.ValueTypeOf[T4](), api.ValueTypeOf[T5](), api.ValueTypeOf[T6]()}
}

func (p Params7[T0, T1, T2, T3, T4, T5, T6]) Pack() []api.Slot {
	return []api.Slot{api.Encode(p.P0), api.Encode(p.P1), api.Encode(p.P2), api.Encode(p.P3), api.Encode(p.P4), api.Encode(p.P5), api.Encode(p.P6)}
}

// Results7 is a result tuple of arity 7.
type Results7[R0 api.Number, R1 api.Number, R2 api.Number, R3 api.Number, R4 api.Number, R5 api.Number, R6 api.Number] struct {
	R0 R0
	R1 R1
	R2 R2
	R3 R3
	R4 R4
	R5 R5
	R6 R6
}

func (r Results7[R0, R1, R2, R3, R4, R5, R6]) Types() []api.ValueType {
	return []api.ValueType{api.ValueTypeOf[R0](), api.ValueTypeOf[R1](), api.ValueTypeOf[R2](), api.ValueTypeOf[R3](), api.ValueTypeOf[R4](), api.ValueTypeOf[R5](), api.ValueTypeOf[R6]()}
}

func (Results7[R0, R1, R2, R3, R4, R5, R6]) FromBuffer(buf []api.Slot) Results7[R0, R1, R2, R3, R4, R5, R6] {
	return Results7[R0, R1, R2, R3, R4, R5, R6]{
		R0: api.Decode[R0](buf[0]),
		R1: api.Decode[R1](buf[1]),
		R2: api.Decode[R2](buf[2]),
		R3: api.Decode[R3](buf[3]),
		R4: api.Decode[R4](buf[4]),
		R5: api.Decode[R5](buf[5]),
		R6: api.Decode[R6](buf[6]),
	}
}

// CStruct7 is the ABI-compatible aggregate for a 7-ary return.
type CStruct7 struct {
	F0 api.Slot
	F1 api.Slot
	F2 api.Slot
	F3 api.Slot
	F4 api.Slot
	F5 api.Slot
	F6 api.Slot
}

func (r Results7[R0, R1, R2, R3, R4, R5, R6]) PackCStruct() CStruct7 {
	return CStruct7{
		F0: api.Encode(r.R0),
		F1: api.Encode(r.R1),
		F2: api.Encode(r.R2),
		F3: api.Encode(r.R3),
		F4: api.Encode(r.R4),
		F5: api.Encode(r.R5),
		F6: api.Encode(r.R6),
	}
}

// UnpackCStruct7 is the inverse of Results7.PackCStruct.
func UnpackCStruct7[R0 api.Number, R1 api.Number, R2 api.Number, R3 api.Number, R4 api.Number, R5 api.Number, R6 api.Number](c CStruct7) Results7[R0, R1, R2, R3, R4, R5, R6] {
	return Results7[R0, R1, R2, R3, R4, R5, R6]{
		R0: api.Decode[R0](c.F0),
		R1: api.Decode[R1](c.F1),
		R2: api.Decode[R2](c.F2),
		R3: api.Decode[R3](c.F3),
		R4: api.Decode[R4](c.F4),
		R5: api.Decode[R5](c.F5),
		R6: api.Decode[R6](c.F6),
	}
}

// Params8 is a parameter tuple of arity 8.
type Params8[T0 api.Number, T1 api.Number, T2 api.Number, T3 api.Number, T4 api.Number, T5 api.Number, T6 api.Number, T7 api.Number] struct {
	P0 T0
	P1 T1
	P2 T2
	P3 T3
	P4 T4
	P5 T5
	P6 T6
	P7 T7
}

func (p Params8[T0, T1, T2, T3, T4, T5, T6, T7]) Types() []api.ValueType {
	return []api.ValueType{api.ValueTypeOf[T0](), api.ValueTypeOf[T1](), api.ValueTypeOf[T2](), api.ValueTypeOf[T3](), api.ValueTypeOf[T4](), api.ValueTypeOf[T5](), api.ValueTypeOf[T6](), api.ValueTypeOf[T7]()}
}

func (p Params8[T0, T1, T2, T3, T4, T5, T6, T7]) Pack() []api.Slot {
	return []api.Slot{api.Encode(p.P0), api.Encode(p.P1), api.Encode(p.P2), api.Encode(p.P3), api.Encode(p.P4), api.Encode(p.P5), api.Encode(p.P6), api.Encode(p.P7)}
}

// Results8 is a result tuple of arity 8.
type Results8[R0 api.Number, R1 api.Number, R2 api.Number, R3 api.Number, R4 api.Number, R5 api.Number, R6 api.Number, R7 api.Number] struct {
	R0 R0
	R1 R1
	R2 R2
	R3 R3
	R4 R4
	R5 R5
	R6 R6
	R7 R7
}

func (r Results8[R0, R1, R2, R3, R4, R5, R6, R7]) Types() []api.ValueType {
	return []api.ValueType{api.ValueTypeOf[R0](), api.ValueTypeOf[R1](), api.ValueTypeOf[R2](), api.ValueTypeOf[R3](), api.ValueTypeOf[R4](), api.ValueTypeOf[R5](), api.ValueTypeOf[R6](), api.ValueTypeOf[R7]()}
}

func (Results8[R0, R1, R2, R3, R4, R5, R6, R7]) FromBuffer(buf []api.Slot) Results8[R0, R1, R2, R3, R4, R5, R6, R7] {
	return Results8[R0, R1, R2, R3, R4, R5, R6, R7]{
		R0: api.Decode[R0](buf[0]),
		R1: api.Decode[R1](buf[1]),
		R2: api.Decode[R2](buf[2]),
		R3: api.Decode[R3](buf[3]),
		R4: api.Decode[R4](buf[4]),
		R5: api.Decode[R5](buf[5]),
		R6: api.Decode[R6](buf[6]),
		R7: api.Decode[R7](buf[7]),
	}
}

// CStruct8 is the ABI-compatible aggregate for a 8-ary return.
type CStruct8 struct {
	F0 api.Slot
	F1 api.Slot
	F2 api.Slot
	F3 api.Slot
	F4 api.Slot
	F5 api.Slot
	F6 api.Slot
	F7 api.Slot
}

func (r Results8[R0, R1, R2, R3, R4, R5, R6, R7]) PackCStruct() CStruct8 {
	return CStruct8{
		F0: api.Encode(r.R0),
		F1: api.Encode(r.R1),
		F2: api.Encode(r.R2),
		F3: api.Encode(r.R3),
		F4: api.Encode(r.R4),
		F5: api.Encode(r.R5),
		F6: api.Encode(r.R6),
		F7: api.Encode(r.R7),
	}
}

// UnpackCStruct8 is the inverse of Results8.PackCStruct.
func UnpackCStruct8[R0 api.Number, R1 api.Number, R2 api.Number, R3 api.Number, R4 api.Number, R5 api.Number, R6 api.Number, R7 api.Number](c CStruct8) Results8[R0, R1, R2, R3, R4, R5, R6, R7] {
	return Results8[R0, R1, R2, R3, R4, R5, R6, R7]{
		R0: api.Decode[R0](c.F0),
		R1: api.Decode[R1](c.F1),
		R2: api.Decode[R2](c.F2),
		R3: api.Decode[R3](c.F3),
		R4: api.Decode[R4](c.F4),
		R5: api.Decode[R5](c.F5),
		R6: api.Decode[R6](c.F6),
		R7: api.Decode[R7](c.F7),
	}
}

// Params9 is a parameter tuple of arity 9.
type Params9[T0 api.Number, T1 api.Number, T2 api.Number, T3 api.Number, T4 api.Number, T5 api.Number, T6 api.Number, T7 api.Number, T8 api.Number] struct {
	P0 T0
	P1 T1
	P2 T2
	P3 T3
	P4 T4
	P5 T5
	P6 T6
	P7 T7
	P8 T8
}

func (p Params9[T0, T1, T2, T3, T4, T5, T6, T7, T8]) Types() []api.ValueType {
	return []api.ValueType{api.ValueTypeOf[T0](), api.ValueTypeOf[T1](), api.ValueTypeOf[T2](), api.ValueTypeOf[T3](), api.ValueTypeOf[T4](), api.ValueTypeOf[T5](), api.ValueTypeOf[T6](), api.ValueTypeOf[T7](), api.ValueTypeOf[T8]()}
}

func (p Params9[T0, T1, T2, T3, T4, T5, T6, T7, T8]) Pack() []api.Slot {
	return []api.Slot{api.Encode(p.P0), api.Encode(p.P1), api.Encode(p.P2), api.Encode(p.P3), api.Encode(p.P4), api.Encode(p.P5), api.Encode(p.P6), api.Encode(p.P7), api.Encode(p.P8)}
}

// Results9 is a result tuple of arity 9.
type Results9[R0 api.Number, R1 api.Number, R2 api.Number, R3 api.Number, R4 api.Number, R5 api.Number, R6 api.Number, R7 api.Number, R8 api.Number] struct {
	R0 R0
	R1 R1
	R2 R2
	R3 R3
	R4 R4
	R5 R5
	R6 R6
	R7 R7
	R8 R8
}

func (r Results9[R0, R1, R2, R3, R4, R5, R6, R7, R8]) Types() []api.ValueType {
	return []api.ValueType{api.ValueTypeOf[R0](), api.ValueTypeOf[R1](), api.ValueTypeOf[R2](), api.ValueTypeOf[R3](), api.ValueTypeOf[R4](), api.ValueTypeOf[R5](), api.ValueTypeOf[R6](), api.ValueTypeOf[R7](), api.ValueTypeOf[R8]()}
}

func (Results9[R0, R1, R2, R3, R4, R5, R6, R7, R8]) FromBuffer(buf []api.Slot) Results9[R0, R1, R2, R3, R4, R5, R6, R7, R8] {
	return Results9[R0, R1, R2, R3, R4, R5, R6, R7, R8]{
		R0: api.Decode[R0](buf[0]),
		R1: api.Decode[R1](buf[1]),
		R2: api.Decode[R2](buf[2]),
		R3: api.Decode[R3](buf[3]),
		R4: api.Decode[R4](buf[4]),
		R5: api.Decode[R5](buf[5]),
		R6: api.Decode[R6](buf[6]),
		R7: api.Decode[R7](buf[7]),
		R8: api.Decode[R8](buf[8]),
	}
}

// CStruct9 is the ABI-compatible aggregate for a 9-ary return.
type CStruct9 struct {
	F0 api.Slot
	F1 api.Slot
	F2 api.Slot
	F3 api.Slot
	F4 api.Slot
	F5 api.Slot
	F6 api.Slot
	F7 api.Slot
	F8 api.Slot
}

func (r Results9[R0, R1, R2, R3, R4, R5, R6, R7, R8]) PackCStruct() CStruct9 {
	return CStruct9{
		F0: api.Encode(r.R0),
		F1: api.Encode(r.R1),
		F2: api.Encode(r.R2),
		F3: api.Encode(r.R3),
		F4: api.Encode(r.R4),
		F5: api.Encode(r.R5),
		F6: api.Encode(r.R6),
		F7: api.Encode(r.R7),
		F8: api.Encode(r.R8),
	}
}

// UnpackCStruct9 is the inverse of Results9.PackCStruct.
func UnpackCStruct9[R0 api.Number, R1 api.Number, R2 api.Number, R3 api.Number, R4 api.Number, R5 api.Number, R6 api.Number, R7 api.Number, R8 api.Number](c CStruct9) Results9[R0, R1, R2, R3, R4, R5, R6, R7, R8] {
	return Results9[R0, R1, R2, R3, R4, R5, R6, R7, R8]{
		R0: api.Decode[R0](c.F0),
		R1: api.Decode[R1](c.F1),
		R2: api.Decode[R2](c.F2),
		R3: api.Decode[R3](c.F3),
		R4: api.Decode[R4](c.F4),
		R5: api.Decode[R5](c.F5),
		R6: api.Decode[R6](c.F6),
		R7: api.Decode[R7](c.F7),
		R8: api.Decode[R8](c.F8),
	}
}

// Params10 is a parameter tuple of arity 10.
type Params10[T0 api.Number, T1 api.Number, T2 api.Number, T3 api.Number, T4 api.Number, T5 api.Number, T6 api.Number, T7 api.Number, T8 api.Number, T9 api.Number] struct {
	P0 T0
	P1 T1
	P2 T2
	P3 T3
	P4 T4
	P5 T5
	P6 T6
	P7 T7
	P8 T8
	P9 T9
}

func (p Params10[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9]) Types() []api.ValueType {
	return []api.ValueType{api.ValueTypeOf[T0](), api.ValueTypeOf[T1](), api.ValueTypeOf[T2](), api.ValueTypeOf[T3](), api.ValueTypeOf[T4](), api.ValueTypeOf[T5](), api.ValueTypeOf[T6](), api.ValueTypeOf[T7](), api.ValueTypeOf[T8](), api.ValueTypeOf[T9]()}
}

func (p Params10[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9]) Pack() []api.Slot {
	return []api.Slot{api.Encode(p.P0), api.Encode(p.P1), api.Encode(p.P2), api.Encode(p.P3), api.Encode(p.P4), api.Encode(p.P5), api.Encode(p.P6), api.Encode(p.P7), api.Encode(p.P8), api.Encode(p.P9)}
}

// Results10 is a result tuple of arity 10.
type Results10[R0 api.Number, R1 api.Number, R2 api.Number, R3 api.Number, R4 api.Number, R5 api.Number, R6 api.Number, R7 api.Number, R8 api.Number, R9 api.Number] struct {
	R0 R0
	R1 R1
	R2 R2
	R3 R3
	R4 R4
	R5 R5
	R6 R6
	R7 R7
	R8 R8
	R9 R9
}

func (r Results10[R0, R1, R2, R3, R4, R5, R6, R7, R8, R9]) Types() []api.ValueType {
	return []api.ValueType{api.ValueTypeOf[R0](), api.ValueTypeOf[R1](), api.ValueTypeOf[R2](), api.ValueTypeOf[R3](), api.ValueTypeOf[R4](), api.ValueTypeOf[R5](), api.ValueTypeOf[R6](), api.ValueTypeOf[R7](), api.ValueTypeOf[R8](), api.ValueTypeOf[R9]()}
}

func (Results10[R0, R1, R2, R3, R4, R5, R6, R7, R8, R9]) FromBuffer(buf []api.Slot) Results10[R0, R1, R2, R3, R4, R5, R6, R7, R8, R9] {
	return Results10[R0, R1, R2, R3, R4, R5, R6, R7, R8, R9]{
		R0: api.Decode[R0](buf[0]),
		R1: api.Decode[R1](buf[1]),
		R2: api.Decode[R2](buf[2]),
		R3: api.Decode[R3](buf[3]),
		R4: api.Decode[R4](buf[4]),
		R5: api.Decode[R5](buf[5]),
		R6: api.Decode[R6](buf[6]),
		R7: api.Decode[R7](buf[7]),
		R8: api.Decode[R8](buf[8]),
		R9: api.Decode[R9](buf[9]),
	}
}

// CStruct10 is the ABI-compatible aggregate for a 10-ary return.
type CStruct10 struct {
	F0 api.Slot
	F1 api.Slot
	F2 api.Slot
	F3 api.Slot
	F4 api.Slot
	F5 api.Slot
	F6 api.Slot
	F7 api.Slot
	F8 api.Slot
	F9 api.Slot
}

func (r Results10[R0, R1, R2, R3, R4, R5, R6, R7, R8, R9]) PackCStruct() CStruct10 {
	return CStruct10{
		F0: api.Encode(r.R0),
		F1: api.Encode(r.R1),
		F2: api.Encode(r.R2),
		F3: api.Encode(r.R3),
		F4: api.Encode(r.R4),
		F5: api.Encode(r.R5),
		F6: api.Encode(r.R6),
		F7: api.Encode(r.R7),
		F8: api.Encode(r.R8),
		F9: api.Encode(r.R9),
	}
}

// UnpackCStruct10 is the inverse of Results10.PackCStruct.
func UnpackCStruct10[R0 api.Number, R1 api.Number, R2 api.Number, R3 api.Number, R4 api.Number, R5 api.Number, R6 api.Number, R7 api.Number, R8 api.Number, R9 api.Number](c CStruct10) Results10[R0, R1, R2, R3, R4, R5, R6, R7, R8, R9] {
	return Results10[R0, R1, R2, R3, R4, R5, R6, R7, R8, R9]{
		R0: api.Decode[R0](c.F0),
		R1: api.Decode[R1](c.F1),
		R2: api.Decode[R2](c.F2),
		R3: api.Decode[R3](c.F3),
		R4: api.Decode[R4](c.F4),
		R5: api.Decode[R5](c.F5),
		R6: api.Decode[R6](c.F6),
		R7: api.Decode[R7](c.F7),
		R8: api.Decode[R8](c.F8),
		R9: api.Decode[R9](c.F9),
	}
}

// Params11 is a parameter tuple of arity 11.
type Params11[T0 api.Number, T1 api.Number, T2 api.Number, T3 api.Number, T4 api.Number, T5 api.Number, T6 api.Number, T7 api.Number, T8 api.Number, T9 api.Number, T10 api.Number] struct {
	P0 T0
	P1 T1
	P2 T2
	P3 T3
	P4 T4
	P5 T5
	P6 T6
	P7 T7
	P8 T8
	P9 T9
	P10 T10
}

func (p Params11[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10]) Types() []api.ValueType {
	return []api.ValueType{api.ValueTypeOf[T0](), api.ValueTypeOf[T1](), api.ValueTypeOf[T2](), api.ValueTypeOf[T3](), api.ValueTypeOf[T4](), api.ValueTypeOf[T5](), api.ValueTypeOf[T6](), api.ValueTypeOf[T7](), api.ValueTypeOf[T8](), api.ValueTypeOf[T9](), api.ValueTypeOf[T10]()}
}

func (p Params11[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10]) Pack() []api.Slot {
	return []api.Slot{api.Encode(p.P0), api.Encode(p.P1), api.Encode(p.P2), api.Encode(p.P3), api.Encode(p.P4), api.Encode(p.P5), api.Encode(p.P6), api.Encode(p.P7), api.Encode(p.P8), api.Encode(p.P9), api.Encode(p.P10)}
}

// Results11 is a result tuple of arity 11.
type Results11[R0 api.Number, R1 api.Number, R2 api.Number, R3 api.Number, R4 api.Number, R5 api.Number, R6 api.Number, R7 api.Number, R8 api.Number, R9 api.Number, R10 api.Number] struct {
	R0 R0
	R1 R1
	R2 R2
	R3 R3
	R4 R4
	R5 R5
	R6 R6
	R7 R7
	R8 R8
	R9 R9
	R10 R10
}

func (r Results11[R0, R1, R2, R3, R4, R5, R6, R7, R8, R9, R10]) Types() []api.ValueType {
	return []api.ValueType{api.ValueTypeOf[R0](), api.ValueTypeOf[R1](), api.ValueTypeOf[R2](), api.ValueTypeOf[R3](), api.ValueTypeOf[R4](), api.ValueTypeOf[R5](), api.ValueTypeOf[R6](), api.ValueTypeOf[R7](), api.ValueTypeOf[R8](), api.ValueTypeOf[R9](), api.ValueTypeOf[R10]()}
}

func (Results11[R0, R1, R2, R3, R4, R5, R6, R7, R8, R9, R10]) FromBuffer(buf []api.Slot) Results11[R0, R1, R2, R3, R4, R5, R6, R7, R8, R9, R10] {
	return Results11[R0, R1, R2, R3, R4, R5, R6, R7, R8, R9, R10]{
		R0: api.Decode[R0](buf[0]),
		R1: api.Decode[R1](buf[1]),
		R2: api.Decode[R2](buf[2]),
		R3: api.Decode[R3](buf[3]),
		R4: api.Decode[R4](buf[4]),
		R5: api.Decode[R5](buf[5]),
		R6: api.Decode[R6](buf[6]),
		R7: api.Decode[R7](buf[7]),
		R8: api.Decode[R8](buf[8]),
		R9: api.Decode[R9](buf[9]),
		R10: api.Decode[R10](buf[10]),
	}
}

// CStruct11 is the ABI-compatible aggregate for a 11-ary return.
type CStruct11 struct {
	F0 api.Slot
	F1 api.Slot
	F2 api.Slot
	F3 api.Slot
	F4 api.Slot
	F5 api.Slot
	F6 api.Slot
	F7 api.Slot
	F8 api.Slot
	F9 api.Slot
	F10 api.Slot
}

func (r Results11[R0, R1, R2, R3, R4, R5, R6, R7, R8, R9, R10]) PackCStruct() CStruct11 {
	return CStruct11{
		F0: api.Encode(r.R0),
		F1: api.Encode(r.R1),
		F2: api.Encode(r.R2),
		F3: api.Encode(r.R3),
		F4: api.Encode(r.R4),
		F5: api.Encode(r.R5),
		F6: api.Encode(r.R6),
		F7: api.Encode(r.R7),
		F8: api.Encode(r.R8),
		F9: api.Encode(r.R9),
		F10: api.Encode(r.R10),
	}
}

// UnpackCStruct11 is the inverse of Results11.PackCStruct.
func UnpackCStruct11[R0 api.Number, R1 api.Number, R2 api.Number, R3 api.Number, R4 api.Number, R5 api.Number, R6 api.Number, R7 api.Number, R8 api.Number, R9 api.Number, R10 api.Number](c CStruct11) Results11[R0, R1, R2, R3, R4, R5, R6, R7, R8, R9, R10] {
	return Results11[R0, R1, R2, R3, R4, R5, R6, R7, R8, R9, R10]{
		R0: api.Decode[R0](c.F0),
		R1: api.Decode[R1](c.F1),
		R2: api.Decode[R2](c.F2),
		R3: api.Decode[R3](c.F3),
		R4: api.Decode[R4](c.F4),
		R5: api.Decode[R5](c.F5),
		R6: api.Decode[R6](c.F6),
		R7: api.Decode[R7](c.F7),
		R8: api.Decode[R8](c.F8),
		R9: api.Decode[R9](c.F9),
		R10: api.Decode[R10](c.F10),
	}
}

// Params12 is a parameter tuple of arity 12.
type Params12[T0 api.Number, T1 api.Number, T2 api.Number, T3 api.Number, T4 api.Number, T5 api.Number, T6 api.Number, T7 api.Number, T8 api.Number, T9 api.Number, T10 api.Number, T11 api.Number] struct {
	P0 T0
	P1 T1
	P2 T2
	P3 T3
	P4 T4
	P5 T5
	P6 T6
	P7 T7
	P8 T8
	P9 T9
	P10 T10
	P11 T11
}

func (p Params12[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11]) Types() []api.ValueType {
	return []api.ValueType{api.ValueTypeOf[T0](), api.ValueTypeOf[T1](), api.ValueTypeOf[T2](), api.ValueTypeOf[T3](), api.ValueTypeOf[T4](), api.ValueTypeOf[T5](), api.ValueTypeOf[T6](), api.ValueTypeOf[T7](), api.ValueTypeOf[T8](), api.ValueTypeOf[T9](), api.ValueTypeOf[T10](), api.ValueTypeOf[T11]()}
}

func (p Params12[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11]) Pack() []api.Slot {
	return []api.Slot{api.Encode(p.P0), api.Encode(p.P1), api.Encode(p.P2), api.Encode(p.P3), api.Encode(p.P4), api.Encode(p.P5), api.Encode(p.P6), api.Encode(p.P7), api.Encode(p.P8), api.Encode(p.P9), api.Encode(p.P10), api.Encode(p.P11)}
}

// Results12 is a result tuple of arity 12.
type Results12[R0 api.Number, R1 api.Number, R2 api.Number, R3 api.Number, R4 api.Number, R5 api.Number, R6 api.Number, R7 api.Number, R8 api.Number, R9 api.Number, R10 api.Number, R11 api.Number] struct {
	R0 R0
	R1 R1
	R2 R2
	R3 R3
	R4 R4
	R5 R5
	R6 R6
	R7 R7
	R8 R8
	R9 R9
	R10 R10
	R11 R11
}

func (r Results12[R0, R1, R2, R3, R4, R5, R6, R7, R8, R9, R10, R11]) Types() []api.ValueType {
	return []api.ValueType{api.ValueTypeOf[R0](), api.ValueTypeOf[R1](), api.ValueTypeOf[R2](), api.ValueTypeOf[R3](), api.ValueTypeOf[R4](), api.ValueTypeOf[R5](), api.ValueTypeOf[R6](), api.ValueTypeOf[R7](), api.ValueTypeOf[R8](), api.ValueTypeOf[R9](), api.ValueTypeOf[R10](), api.ValueTypeOf[R11]()}
}

func (Results12[R0, R1, R2, R3, R4, R5, R6, R7, R8, R9, R10, R11]) FromBuffer(buf []api.Slot) Results12[R0, R1, R2, R3, R4, R5, R6, R7, R8, R9, R10, R11] {
	return Results12[R0, R1, R2, R3, R4, R5, R6, R7, R8, R9, R10, R11]{
		R0: api.Decode[R0](buf[0]),
		R1: api.Decode[R1](buf[1]),
		R2: api.Decode[R2](buf[2]),
		R3: api.Decode[R3](buf[3]),
		R4: api.Decode[R4](buf[4]),
		R5: api.Decode[R5](buf[5]),
		R6: api.Decode[R6](buf[6]),
		R7: api.Decode[R7](buf[7]),
		R8: api.Decode[R8](buf[8]),
		R9: api.Decode[R9](buf[9]),
		R10: api.Decode[R10](buf[10]),
		R11: api.Decode[R11](buf[11]),
	}
}

// CStruct12 is the ABI-compatible aggregate for a 12-ary return.
type CStruct12 struct {
	F0 api.Slot
	F1 api.Slot
	F2 api.Slot
	F3 api.Slot
	F4 api.Slot
	F5 api.Slot
	F6 api.Slot
	F7 api.Slot
	F8 api.Slot
	F9 api.Slot
	F10 api.Slot
	F11 api.Slot
}

func (r Results12[R0, R1, R2, R3, R4, R5, R6, R7, R8, R9, R10, R11]) PackCStruct() CStruct12 {
	return CStruct12{
		F0: api.Encode(r.R0),
		F1: api.Encode(r.R1),
		F2: api.Encode(r.R2),
		F3: api.Encode(r.R3),
		F4: api.Encode(r.R4),
		F5: api.Encode(r.R5),
		F6: api.Encode(r.R6),
		F7: api.Encode(r.R7),
		F8: api.Encode(r.R8),
		F9: api.Encode(r.R9),
		F10: api.Encode(r.R10),
		F11: api.Encode(r.R11),
	}
}

// UnpackCStruct12 is the inverse of Results12.PackCStruct.
func UnpackCStruct12[R0 api.Number, R1 api.Number, R2 api.Number, R3 api.Number, R4 api.Number, R5 api.Number, R6 api.Number, R7 api.Number, R8 api.Number, R9 api.Number, R10 api.Number, R11 api.Number](c CStruct12) Results12[R0, R1, R2, R3, R4, R5, R6, R7, R8, R9, R10, R11] {
	return Results12[R0, R1, R2, R3, R4, R5, R6, R7, R8, R9, R10, R11]{
		R0: api.Decode[R0](c.F0),
		R1: api.Decode[R1](c.F1),
		R2: api.Decode[R2](c.F2),
		R3: api.Decode[R3](c.F3),
		R4: api.Decode[R4](c.F4),
		R5: api.Decode[R5](c.F5),
		R6: api.Decode[R6](c.F6),
		R7: api.Decode[R7](c.F7),
		R8: api.Decode[R8](c.F8),
		R9: api.Decode[R9](c.F9),
		R10: api.Decode[R10](c.F10),
		R11: api.Decode[R11](c.F11),
	}
}

