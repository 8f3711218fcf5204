package autodesign

import (
	"fmt"

	"Dogbone/internal/geometry/lattice"
	"Dogbone/internal/geometry/volume"
	"Dogbone/internal/specimen"
)

type Input struct {
	specimen.Params
	TargetVoidFraction float64 `json:"target_void_fraction"`
}

type Result struct {
	RecommendedOffset float64 `json:"recommended_offset"`
	AchievedFraction  float64 `json:"achieved_fraction"`
	Notes             string  `json:"notes"`
}

const (
	offsetMin = 0.0
	offsetMax = 5.0
	// bisection depth; the estimator is linear in offset so this converges
	// far past float display precision.
	searchIterations = 40
)

// Density searches the lattice density offset that brings the estimated
// void fraction to the requested target. Only the offset-calibrated
// families are tunable this way.
func Density(in Input) (Result, error) {
	if in.TargetVoidFraction <= 0 || in.TargetVoidFraction >= 1 {
		return Result{}, fmt.Errorf("invalid input")
	}
	switch in.LatticeType {
	case lattice.None, lattice.VerticalStrut, lattice.VerticalHole:
		return Result{}, fmt.Errorf("lattice type %q is not density tunable", in.LatticeType)
	}

	at := func(offset float64) float64 {
		lp := in.LatticeParams()
		lp.Offset = offset
		return volume.VoidFraction(in.LatticeType, lp)
	}

	lo, hi := offsetMin, offsetMax
	if in.TargetVoidFraction <= at(lo) {
		return Result{
			RecommendedOffset: lo,
			AchievedFraction:  at(lo),
			Notes:             "Target below the family's base fraction; minimum offset returned.",
		}, nil
	}
	if in.TargetVoidFraction >= at(hi) {
		return Result{
			RecommendedOffset: hi,
			AchievedFraction:  at(hi),
			Notes:             "Target above the family's reachable range; maximum offset returned.",
		}, nil
	}
	for i := 0; i < searchIterations; i++ {
		mid := (lo + hi) / 2
		if at(mid) < in.TargetVoidFraction {
			lo = mid
		} else {
			hi = mid
		}
	}
	offset := (lo + hi) / 2
	return Result{
		RecommendedOffset: offset,
		AchievedFraction:  at(offset),
		Notes:             "Offset selected to match the target void fraction.",
	}, nil
}
