// Package boarding is the root of a small library for decoding
// binary-partitioned boarding-pass seat strings.
//
// A seat string such as "FBFBBFFRLR" is two bisection recipes glued
// together: seven front/back steps that narrow 128 rows down to one, then
// three left/right steps that narrow 8 seats down to one. The seat ID is
// row*8 + column.
//
// Subpackages:
//
//	bsp/       — Space, a half-open integer range that is halved on demand
//	boarding/  — alphabets, Layout, Decoder and the immutable Pass
//	seatmap/   — cabin occupancy grid: vacancies, vacant blocks, own seat
//	manifest/  — batch reader: parallel decode, abort/skip policy, aggregates
//	cmd/boarding — command-line front end
//
// Quick example:
//
//	p, _ := boarding.Decode("FBFBBFFRLR")
//	fmt.Println(p.ID()) // 357
//
//	go get github.com/katalvlaran/boarding
package boarding
